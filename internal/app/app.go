// Package app wires the capture, detection, counting, and serial components
// into the per-frame control loop.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/handpilot/handpilot/internal/arduino"
	"github.com/handpilot/handpilot/internal/capture"
	"github.com/handpilot/handpilot/internal/detector"
	"github.com/handpilot/handpilot/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	CameraIndex int
	WindowName  string
	Detector    detector.Config
	Arduino     arduino.Config
	// History is optional; nil disables gesture event recording.
	History *store.Store
}

// App owns the camera, detector, display, and command link, and drives them
// through the single-threaded control loop. No component it owns is touched
// by any other goroutine for the duration of Run.
type App struct {
	config  Config
	camera  capture.Camera
	det     detector.Detector
	arduino *arduino.Controller
	display Display
	history *store.Store
	log     *zap.SugaredLogger

	// lastRecorded is the finger count of the most recent history event,
	// or -1 before the first detection.
	lastRecorded int
}

// New creates a new App instance with the given configuration.
func New(config Config, log *zap.SugaredLogger) *App {
	a := &App{
		config:       config,
		camera:       capture.NewCamera(config.CameraIndex),
		arduino:      arduino.NewController(config.Arduino, log),
		display:      NewWindowDisplay(config.WindowName),
		history:      config.History,
		log:          log,
		lastRecorded: -1,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.det = mp
		log.Infow("using MediaPipe hand detection")
	} else {
		log.Warnw("MediaPipe not available, using mock detector", "error", err)
		a.det = detector.NewMockDetector()
	}

	return a
}

// SetCamera replaces the frame source. Used by tests.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDetector replaces the hand detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.det = d
}

// SetDisplay replaces the display surface. Used by tests.
func (a *App) SetDisplay(d Display) {
	a.display = d
}

// Arduino returns the command channel controller.
func (a *App) Arduino() *arduino.Controller {
	return a.arduino
}

// Run drives the control loop until the context is cancelled, the operator
// presses ESC, or the camera stops producing frames. A camera that fails to
// open aborts the run; an unreachable arduino does not. The cleanup sequence
// runs exactly once on every exit path, including a fault mid-iteration.
func (a *App) Run(ctx context.Context) error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("initialize camera: %w", err)
	}
	defer a.cleanup()

	if !a.arduino.Connect() {
		a.log.Warnw("arduino unavailable, continuing in camera-only mode",
			"port", a.config.Arduino.Port)
	}

	a.log.Infow("gesture controller started", "camera_index", a.config.CameraIndex)
	a.loop(ctx)
	return nil
}

// cleanup releases every resource the loop holds. Run defers it so it
// executes exactly once no matter how the loop ends.
func (a *App) cleanup() {
	if err := a.camera.Close(); err != nil {
		a.log.Warnw("closing camera", "error", err)
	}
	if err := a.display.Close(); err != nil {
		a.log.Warnw("closing display", "error", err)
	}
	if a.det != nil {
		if err := a.det.Close(); err != nil {
			a.log.Warnw("closing detector", "error", err)
		}
	}
	a.arduino.Disconnect()
	a.log.Infow("cleanup completed")
}
