package capture

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MockCamera plays back pre-recorded frames for testing. Once the frame list
// is exhausted it reports end-of-stream, like a disconnected device.
type MockCamera struct {
	frames  []*gocv.Mat
	index   int
	loop    bool
	running bool
	reads   int
	closes  int
}

// NewMockCamera creates a MockCamera over the given frame sequence.
// With loop set, playback restarts from the first frame instead of ending.
func NewMockCamera(frames []*gocv.Mat, loop bool) *MockCamera {
	return &MockCamera{
		frames: frames,
		loop:   loop,
	}
}

func (c *MockCamera) Open() error {
	c.running = true
	c.index = 0
	return nil
}

func (c *MockCamera) Close() error {
	c.running = false
	c.closes++
	return nil
}

func (c *MockCamera) ReadFrame() (*gocv.Mat, error) {
	if !c.running {
		return nil, ErrCameraNotOpen
	}

	if c.index >= len(c.frames) {
		if !c.loop || len(c.frames) == 0 {
			return nil, fmt.Errorf("no more frames")
		}
		c.index = 0
	}

	// Clone the frame so the original isn't modified
	frame := c.frames[c.index].Clone()
	c.index++
	c.reads++

	return &frame, nil
}

func (c *MockCamera) IsOpen() bool {
	return c.running
}

// Reads returns how many frames were successfully read.
func (c *MockCamera) Reads() int {
	return c.reads
}

// Closes returns how many times Close was called.
func (c *MockCamera) Closes() int {
	return c.closes
}

// SetFrames replaces the frame sequence
func (c *MockCamera) SetFrames(frames []*gocv.Mat) {
	c.frames = frames
	c.index = 0
}

// Reset restarts playback from the beginning
func (c *MockCamera) Reset() {
	c.index = 0
}
