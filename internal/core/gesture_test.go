package core

import "testing"

func TestGestureDisplacement(t *testing.T) {
	g := Gesture{StartX: 10, StartY: 6, EndX: 4, EndY: 9}

	if g.DX() != -6 {
		t.Errorf("DX() = %d, want -6", g.DX())
	}
	if g.DY() != 3 {
		t.Errorf("DY() = %d, want 3", g.DY())
	}
	if g.Manhattan() != 9 {
		t.Errorf("Manhattan() = %d, want 9", g.Manhattan())
	}
}

func TestGestureTapIsZero(t *testing.T) {
	g := Gesture{StartX: 5, StartY: 5, EndX: 5, EndY: 5}
	if g.Manhattan() != 0 {
		t.Errorf("a press-and-release in place should have zero distance, got %d", g.Manhattan())
	}
}
