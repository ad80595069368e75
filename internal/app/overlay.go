package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"
)

var overlayColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}

// drawOverlay annotates the frame with the current finger count, the wall
// clock, and the arduino connection status. Purely informational: it has no
// bearing on control flow.
func (a *App) drawOverlay(frame *gocv.Mat, count int) {
	gocv.PutText(frame,
		fmt.Sprintf("Fingers: %d", count),
		image.Pt(20, 50), gocv.FontHersheySimplex, 1, overlayColor, 2)

	gocv.PutText(frame,
		time.Now().Format("2006/01/02 15:04:05"),
		image.Pt(20, 90), gocv.FontHersheySimplex, 0.6, overlayColor, 2)

	gocv.PutText(frame,
		"Arduino: "+a.arduino.State().String(),
		image.Pt(20, 130), gocv.FontHersheySimplex, 0.6, overlayColor, 2)
}
