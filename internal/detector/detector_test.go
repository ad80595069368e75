package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestHand_Valid(t *testing.T) {
	t.Run("full landmark set is valid", func(t *testing.T) {
		hand := OpenPalmHand()
		if !hand.Valid() {
			t.Error("expected hand with 21 landmarks to be valid")
		}
	})

	t.Run("short landmark set is invalid", func(t *testing.T) {
		hand := Hand{Points: make([]Point, 10)}
		if hand.Valid() {
			t.Error("expected hand with 10 landmarks to be invalid")
		}
	})

	t.Run("oversized landmark set is invalid", func(t *testing.T) {
		hand := Hand{Points: make([]Point, NumLandmarks+1)}
		if hand.Valid() {
			t.Error("expected hand with 22 landmarks to be invalid")
		}
	})

	t.Run("nil hand is invalid", func(t *testing.T) {
		var hand *Hand
		if hand.Valid() {
			t.Error("expected nil hand to be invalid")
		}
	})

	t.Run("empty hand is invalid", func(t *testing.T) {
		hand := Hand{}
		if hand.Valid() {
			t.Error("expected hand with no landmarks to be invalid")
		}
	})
}

func TestJSONHand_ToHand(t *testing.T) {
	t.Run("scales normalized coordinates to pixels", func(t *testing.T) {
		jh := jsonHand{
			Points:     make([]jsonPoint, NumLandmarks),
			Handedness: "Left",
			Score:      0.87,
		}
		jh.Points[Wrist] = jsonPoint{X: 0.5, Y: 0.25, Z: 0.1}
		jh.Points[IndexTip] = jsonPoint{X: 1.0, Y: 1.0, Z: 0.0}

		hand := jh.toHand(640, 480)

		if !hand.Valid() {
			t.Fatal("converted hand should be valid")
		}
		if math.Abs(hand.Points[Wrist].X-320.0) > epsilon {
			t.Errorf("wrist X = %f, want 320", hand.Points[Wrist].X)
		}
		if math.Abs(hand.Points[Wrist].Y-120.0) > epsilon {
			t.Errorf("wrist Y = %f, want 120", hand.Points[Wrist].Y)
		}
		if math.Abs(hand.Points[Wrist].Z-64.0) > epsilon {
			t.Errorf("wrist Z = %f, want 64", hand.Points[Wrist].Z)
		}
		if math.Abs(hand.Points[IndexTip].X-640.0) > epsilon {
			t.Errorf("index tip X = %f, want 640", hand.Points[IndexTip].X)
		}
		if hand.Handedness != "Left" {
			t.Errorf("handedness = %q, want %q", hand.Handedness, "Left")
		}
		if hand.Score != 0.87 {
			t.Errorf("score = %f, want 0.87", hand.Score)
		}
	})

	t.Run("preserves partial landmark count", func(t *testing.T) {
		jh := jsonHand{Points: make([]jsonPoint, 5)}

		hand := jh.toHand(640, 480)

		if len(hand.Points) != 5 {
			t.Errorf("expected 5 points preserved, got %d", len(hand.Points))
		}
		if hand.Valid() {
			t.Error("truncated hand must remain invalid")
		}
	})
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 0 {
			t.Errorf("expected no hands, got %d", len(hands))
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()
		mock.SetHands([]Hand{OpenPalmHand(), FistHand()})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Fatalf("expected 2 hands, got %d", len(hands))
		}
		if !hands[0].Valid() || !hands[1].Valid() {
			t.Error("preset hands should carry the full landmark set")
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()
		wantErr := errors.New("detection failed")
		mock.SetError(wantErr)

		hands, err := mock.Detect(nil)

		if !errors.Is(err, wantErr) {
			t.Errorf("expected configured error, got %v", err)
		}
		if hands != nil {
			t.Error("expected nil hands on error")
		}
	})

	t.Run("close is a no-op", func(t *testing.T) {
		mock := NewMockDetector()
		if err := mock.Close(); err != nil {
			t.Errorf("unexpected error from Close: %v", err)
		}
	})
}
