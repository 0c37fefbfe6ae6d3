package core

// Gesture represents a completed pointer gesture: the coordinates where the
// pointer went down and where it was released, in raw pointer units.
// The engine decides whether it was a tap or a directional drag.
type Gesture struct {
	StartX, StartY int
	EndX, EndY     int
}

// DX returns the horizontal displacement of the gesture.
func (g Gesture) DX() int {
	return g.EndX - g.StartX
}

// DY returns the vertical displacement of the gesture.
func (g Gesture) DY() int {
	return g.EndY - g.StartY
}

// Manhattan returns the Manhattan distance covered by the gesture.
func (g Gesture) Manhattan() int {
	return Abs(g.DX()) + Abs(g.DY())
}
