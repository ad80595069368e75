// Package gesture derives the discrete gesture signal from detected hand landmarks.
package gesture

import "github.com/handpilot/handpilot/internal/detector"

// Fingertips of the four non-thumb fingers. Each fingertip's reference joint
// is the landmark two joints proximal to it, which is its tip index minus 2.
var fingertips = [...]int{
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// Count returns the number of extended fingers on the hand, 0 to 5.
//
// The heuristic assumes the frame was mirrored before detection and that a
// right hand faces the camera: the thumb counts as extended when its tip sits
// further right than its IP joint. Each other finger counts as extended when
// its tip sits above the joint two below it (image origin is top-left, so
// "above" means a numerically smaller Y).
//
// Count is a total function: a hand without the full 21-landmark set yields
// 0, never an error.
func Count(hand *detector.Hand) int {
	if !hand.Valid() {
		return 0
	}

	extended := 0

	if hand.Points[detector.ThumbTip].X > hand.Points[detector.ThumbIP].X {
		extended++
	}

	for _, tip := range fingertips {
		if hand.Points[tip].Y < hand.Points[tip-2].Y {
			extended++
		}
	}

	return extended
}
