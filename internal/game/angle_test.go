package game

import (
	"math"
	"testing"
)

func TestByteAngle_Headings(t *testing.T) {
	tests := []struct {
		a      ByteAngle
		dx, dy float64
	}{
		{0, 0, -1},   // up
		{64, 1, 0},   // right
		{128, 0, 1},  // down
		{192, -1, 0}, // left
	}
	for _, tt := range tests {
		dx, dy := tt.a.Heading()
		if math.Abs(dx-tt.dx) > 1e-12 || math.Abs(dy-tt.dy) > 1e-12 {
			t.Errorf("aim %d: heading (%v,%v), want (%v,%v)", tt.a, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestByteAngle_Radians(t *testing.T) {
	if r := ByteAngle(0).Radians(); math.Abs(r-math.Pi/2) > 1e-12 {
		t.Fatalf("aim 0 should be π/2, got %v", r)
	}
	if r := ByteAngle(64).Radians(); r != 0 {
		t.Fatalf("aim 64 should be 0, got %v", r)
	}
	if r := ByteAngle(32).Radians(); math.Abs(r-math.Pi/4) > 1e-12 {
		t.Fatalf("aim 32 should be π/4, got %v", r)
	}
}

func TestByteAngle_RotateWraps(t *testing.T) {
	if got := ByteAngle(254).Rotate(2); got != 0 {
		t.Fatalf("254+2 should wrap to 0, got %d", got)
	}
	if got := ByteAngle(0).Rotate(-2); got != 254 {
		t.Fatalf("0-2 should wrap to 254, got %d", got)
	}
	a := ByteAngle(10)
	for i := 0; i < 128; i++ {
		a = a.Rotate(DefaultAimStep)
	}
	if a != 10 {
		t.Fatalf("a full turn should come back to 10, got %d", a)
	}
}

func TestByteAngle_ClockwiseOnScreen(t *testing.T) {
	// A small clockwise turn from up leans the heading to the right.
	dx, dy := ByteAngle(0).Rotate(8).Heading()
	if dx <= 0 || dy >= 0 {
		t.Fatalf("expected up-right heading, got (%v,%v)", dx, dy)
	}
}
