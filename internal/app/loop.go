package app

import (
	"context"

	"gocv.io/x/gocv"

	"github.com/handpilot/handpilot/internal/gesture"
	"github.com/handpilot/handpilot/internal/store"
)

// loop runs the per-frame cycle: acquire, mirror, detect, count, send,
// annotate, show, poll for a stop request. One iteration's effects complete
// (or are defined as failed) before the next begins; there is no buffering
// across iterations. A panic inside an iteration is recovered and logged so
// the caller's cleanup still runs.
func (a *App) loop(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorw("runtime fault, stopping", "panic", r)
		}
	}()

	for {
		// Stop requests are observed at the iteration boundary only.
		select {
		case <-ctx.Done():
			a.log.Infow("interrupt received, stopping")
			return
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			// End of stream is a graceful stop, not an error condition.
			a.log.Infow("frame source exhausted", "reason", err.Error())
			return
		}

		count, err := a.processFrame(frame)
		if err != nil {
			frame.Close()
			a.log.Errorw("detection cycle failed, stopping", "error", err)
			return
		}

		a.drawOverlay(frame, count)
		a.display.Show(frame)
		frame.Close()

		if a.display.PollKey() == keyEsc {
			a.log.Infow("exit requested")
			return
		}
	}
}

// processFrame mirrors the frame, detects hands, and derives and transmits
// the finger count. Only the first reported hand is used. A frame with no
// hands yields count 0 with no send attempted. A failed send is logged by
// the controller and otherwise ignored here.
func (a *App) processFrame(frame *gocv.Mat) (int, error) {
	// Mirror so on-screen movement matches the operator's own.
	gocv.Flip(*frame, frame, 1)

	hands, err := a.det.Detect(frame)
	if err != nil {
		return 0, err
	}

	if len(hands) == 0 {
		return 0, nil
	}

	count := gesture.Count(&hands[0])

	sent := false
	if a.arduino.IsConnected() {
		sent = a.arduino.Send(count)
	}

	a.recordTransition(count, sent)

	return count, nil
}

// recordTransition appends a history event when the detected count changes
// from the previously recorded one. Storage problems are logged and never
// affect the loop.
func (a *App) recordTransition(count int, sent bool) {
	if a.history == nil || count == a.lastRecorded {
		return
	}
	a.lastRecorded = count

	event := &store.Event{FingerCount: count, Sent: sent}
	if err := a.history.Events().Create(event); err != nil {
		a.log.Warnw("recording gesture event", "error", err)
	}
}
