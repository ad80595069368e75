package gesture

import (
	"testing"

	"github.com/handpilot/handpilot/internal/detector"
)

func TestCount_PresetHands(t *testing.T) {
	tests := []struct {
		name string
		hand detector.Hand
		want int
	}{
		{
			name: "open palm counts five",
			hand: detector.OpenPalmHand(),
			want: 5,
		},
		{
			name: "fist counts zero",
			hand: detector.FistHand(),
			want: 0,
		},
		{
			name: "three finger hand counts three",
			hand: detector.ThreeFingerHand(),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(&tt.hand)
			if got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCount_SingleFingers(t *testing.T) {
	t.Run("thumb only", func(t *testing.T) {
		hand := detector.FistHand()
		// Extend the thumb: tip right of the IP joint
		hand.Points[detector.ThumbTip] = detector.Point{X: 430, Y: 350}

		if got := Count(&hand); got != 1 {
			t.Errorf("Count() = %d, want 1", got)
		}
	})

	t.Run("index only", func(t *testing.T) {
		hand := detector.FistHand()
		// Extend the index finger: tip above its PIP joint
		hand.Points[detector.IndexTip] = detector.Point{X: 358, Y: 200}

		if got := Count(&hand); got != 1 {
			t.Errorf("Count() = %d, want 1", got)
		}
	})

	t.Run("folding one finger of an open palm", func(t *testing.T) {
		hand := detector.OpenPalmHand()
		// Curl the middle finger below its PIP joint
		hand.Points[detector.MiddleTip] = detector.Point{X: 320, Y: 358}

		if got := Count(&hand); got != 4 {
			t.Errorf("Count() = %d, want 4", got)
		}
	})
}

func TestCount_DegenerateHands(t *testing.T) {
	tests := []struct {
		name string
		hand *detector.Hand
	}{
		{
			name: "nil hand",
			hand: nil,
		},
		{
			name: "empty hand",
			hand: &detector.Hand{},
		},
		{
			name: "too few landmarks",
			hand: &detector.Hand{Points: make([]detector.Point, 20)},
		},
		{
			name: "too many landmarks",
			hand: &detector.Hand{Points: make([]detector.Point, 22)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.hand); got != 0 {
				t.Errorf("Count() = %d, want 0 for degenerate input", got)
			}
		})
	}
}

func TestCount_Deterministic(t *testing.T) {
	hand := detector.ThreeFingerHand()

	first := Count(&hand)
	for i := 0; i < 10; i++ {
		if got := Count(&hand); got != first {
			t.Fatalf("Count() = %d on repeat call, want %d", got, first)
		}
	}
}

func TestCount_RangeIsBounded(t *testing.T) {
	hands := []detector.Hand{
		detector.OpenPalmHand(),
		detector.FistHand(),
		detector.ThreeFingerHand(),
	}

	for _, hand := range hands {
		got := Count(&hand)
		if got < 0 || got > 5 {
			t.Errorf("Count() = %d, want value in [0,5]", got)
		}
	}
}
