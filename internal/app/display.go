package app

import "gocv.io/x/gocv"

// keyEsc is the operator's exit key.
const keyEsc = 27

// Display presents annotated frames to the operator and reports keypresses.
type Display interface {
	// Show renders the frame. The frame remains owned by the caller.
	Show(frame *gocv.Mat)

	// PollKey waits briefly for a keypress and returns its code, or -1.
	PollKey() int

	// Close destroys the display surface. Safe to call when nothing was shown.
	Close() error
}

// windowDisplay shows frames in a GoCV highgui window. The window is created
// lazily on the first Show so constructing an App stays side-effect free.
type windowDisplay struct {
	name   string
	window *gocv.Window
}

// NewWindowDisplay creates a Display backed by a named on-screen window.
func NewWindowDisplay(name string) Display {
	return &windowDisplay{name: name}
}

func (d *windowDisplay) Show(frame *gocv.Mat) {
	if d.window == nil {
		d.window = gocv.NewWindow(d.name)
	}
	d.window.IMShow(*frame)
}

func (d *windowDisplay) PollKey() int {
	if d.window == nil {
		return -1
	}
	return d.window.WaitKey(1)
}

func (d *windowDisplay) Close() error {
	if d.window == nil {
		return nil
	}
	err := d.window.Close()
	d.window = nil
	return err
}
