package app

import "gocv.io/x/gocv"

// MockDisplay records shown frames and plays back scripted keypresses for
// loop tests.
type MockDisplay struct {
	shown  int
	keys   []int
	closes int
}

// NewMockDisplay creates a MockDisplay with no queued keypresses.
func NewMockDisplay() *MockDisplay {
	return &MockDisplay{}
}

// QueueKey appends a key code to return from a future PollKey call.
func (d *MockDisplay) QueueKey(key int) {
	d.keys = append(d.keys, key)
}

func (d *MockDisplay) Show(frame *gocv.Mat) {
	d.shown++
}

func (d *MockDisplay) PollKey() int {
	if len(d.keys) == 0 {
		return -1
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

func (d *MockDisplay) Close() error {
	d.closes++
	return nil
}

// Shown returns how many frames were displayed.
func (d *MockDisplay) Shown() int {
	return d.shown
}

// Closes returns how many times Close was called.
func (d *MockDisplay) Closes() int {
	return d.closes
}
