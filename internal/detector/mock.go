package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// The preset hands below use pixel coordinates of a 640x480 mirrored frame
// with a right hand facing the camera, palm outward. Extended fingers point
// up (tip Y above the PIP joint); the extended thumb points right (tip X
// beyond the IP joint).

// OpenPalmHand returns a preset Hand with all five fingers extended.
func OpenPalmHand() Hand {
	hand := Hand{
		Points:     make([]Point, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point{X: 320, Y: 420}

	// Thumb extended to the right
	hand.Points[ThumbCMC] = Point{X: 360, Y: 400}
	hand.Points[ThumbMCP] = Point{X: 390, Y: 380}
	hand.Points[ThumbIP] = Point{X: 410, Y: 360}
	hand.Points[ThumbTip] = Point{X: 430, Y: 350}

	// Index finger extended upward
	hand.Points[IndexMCP] = Point{X: 350, Y: 330}
	hand.Points[IndexPIP] = Point{X: 355, Y: 280}
	hand.Points[IndexDIP] = Point{X: 357, Y: 240}
	hand.Points[IndexTip] = Point{X: 358, Y: 200}

	// Middle finger extended upward
	hand.Points[MiddleMCP] = Point{X: 320, Y: 325}
	hand.Points[MiddlePIP] = Point{X: 320, Y: 270}
	hand.Points[MiddleDIP] = Point{X: 320, Y: 225}
	hand.Points[MiddleTip] = Point{X: 320, Y: 180}

	// Ring finger extended upward
	hand.Points[RingMCP] = Point{X: 290, Y: 330}
	hand.Points[RingPIP] = Point{X: 285, Y: 280}
	hand.Points[RingDIP] = Point{X: 283, Y: 240}
	hand.Points[RingTip] = Point{X: 282, Y: 205}

	// Pinky finger extended upward
	hand.Points[PinkyMCP] = Point{X: 260, Y: 340}
	hand.Points[PinkyPIP] = Point{X: 252, Y: 300}
	hand.Points[PinkyDIP] = Point{X: 248, Y: 270}
	hand.Points[PinkyTip] = Point{X: 245, Y: 240}

	return hand
}

// FistHand returns a preset Hand with all fingers curled into a fist.
func FistHand() Hand {
	hand := Hand{
		Points:     make([]Point, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	hand.Points[Wrist] = Point{X: 320, Y: 420}

	// Thumb folded across the palm, tip left of the IP joint
	hand.Points[ThumbCMC] = Point{X: 355, Y: 400}
	hand.Points[ThumbMCP] = Point{X: 380, Y: 385}
	hand.Points[ThumbIP] = Point{X: 400, Y: 375}
	hand.Points[ThumbTip] = Point{X: 380, Y: 368}

	// Index finger curled, tip below its PIP joint
	hand.Points[IndexMCP] = Point{X: 350, Y: 330}
	hand.Points[IndexPIP] = Point{X: 352, Y: 310}
	hand.Points[IndexDIP] = Point{X: 350, Y: 335}
	hand.Points[IndexTip] = Point{X: 348, Y: 360}

	// Middle finger curled
	hand.Points[MiddleMCP] = Point{X: 320, Y: 325}
	hand.Points[MiddlePIP] = Point{X: 320, Y: 305}
	hand.Points[MiddleDIP] = Point{X: 320, Y: 332}
	hand.Points[MiddleTip] = Point{X: 320, Y: 358}

	// Ring finger curled
	hand.Points[RingMCP] = Point{X: 290, Y: 330}
	hand.Points[RingPIP] = Point{X: 288, Y: 312}
	hand.Points[RingDIP] = Point{X: 288, Y: 338}
	hand.Points[RingTip] = Point{X: 289, Y: 362}

	// Pinky finger curled
	hand.Points[PinkyMCP] = Point{X: 260, Y: 340}
	hand.Points[PinkyPIP] = Point{X: 258, Y: 325}
	hand.Points[PinkyDIP] = Point{X: 258, Y: 348}
	hand.Points[PinkyTip] = Point{X: 260, Y: 368}

	return hand
}

// ThreeFingerHand returns a preset Hand showing three extended fingers
// (index, middle, ring) with the thumb and pinky retracted.
func ThreeFingerHand() Hand {
	hand := OpenPalmHand()

	// Fold the thumb back across the palm
	hand.Points[ThumbIP] = Point{X: 400, Y: 375}
	hand.Points[ThumbTip] = Point{X: 380, Y: 368}

	// Curl the pinky, tip below its PIP joint
	hand.Points[PinkyPIP] = Point{X: 258, Y: 325}
	hand.Points[PinkyDIP] = Point{X: 258, Y: 348}
	hand.Points[PinkyTip] = Point{X: 260, Y: 368}

	return hand
}
