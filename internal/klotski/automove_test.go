package klotski

import "testing"

func TestAutoMoveSingleCandidate(t *testing.T) {
	g := newDefaultGame(t)
	p := g.Board().Piece('9')

	// Bottom-left corner: only right is open.
	if !g.AutoMove(p) {
		t.Fatal("AutoMove should move '9'")
	}
	if p.X != 1 || p.Y != 4 {
		t.Errorf("piece 9 at (%d,%d), want (1,4)", p.X, p.Y)
	}
	if g.Moves() != 1 {
		t.Errorf("counter = %d, want 1", g.Moves())
	}
}

func TestAutoMoveNoCandidates(t *testing.T) {
	g := newDefaultGame(t)
	p := g.Board().Piece('1')

	// '1' is wedged in the opening position.
	if g.AutoMove(p) {
		t.Error("AutoMove on a blocked piece should do nothing")
	}
	if g.Moves() != 0 || g.LastMoved() != PieceNone {
		t.Error("state must be unchanged")
	}
}

func TestAutoMoveTooManyCandidatesDoesNothing(t *testing.T) {
	// A single 1x1 piece in open space can move all four ways: ambiguous.
	g, err := New(4, 5, "0x0000_0b00_0000_0000_0000", Goal{PieceID: 'b', X: 0, Y: 0})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	p := g.Board().Piece('b')

	if g.AutoMove(p) {
		t.Error("AutoMove with four open directions should do nothing")
	}
	if p.X != 1 || p.Y != 1 {
		t.Errorf("piece b moved to (%d,%d)", p.X, p.Y)
	}
}

func TestAutoMoveToggleAvoidance(t *testing.T) {
	g := newDefaultGame(t)
	p := g.Board().Piece('7')

	// Move '7' down; it now has exactly two open directions, up and right,
	// and its streak is [Down].
	if !g.MoveIfPossible(p, 0, 1) {
		t.Fatal("setup move failed")
	}

	// A tap must not pick up (the negation of Down, first in enumeration
	// order); it toggles to the second candidate, right.
	if !g.AutoMove(p) {
		t.Fatal("AutoMove should move '7'")
	}
	if p.X != 2 || p.Y != 4 {
		t.Errorf("piece 7 at (%d,%d), want (2,4)", p.X, p.Y)
	}
	if g.Moves() != 1 {
		t.Errorf("counter = %d, want 1 (same streak)", g.Moves())
	}
}

func TestAutoMoveNotMidStreakPicksFirstCandidate(t *testing.T) {
	// 'b' sits in the top-left corner with exactly right and down open.
	g, err := New(4, 5, "0xb0c0_0000_0000_0000_0000", Goal{PieceID: 'b', X: 3, Y: 4})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	pb := g.Board().Piece('b')
	pc := g.Board().Piece('c')

	// 'c' owns the streak, so 'b' is not mid-streak and the first
	// candidate in enumeration order (right) wins.
	if !g.MoveIfPossible(pc, 0, 1) {
		t.Fatal("setup move failed")
	}
	if !g.AutoMove(pb) {
		t.Fatal("AutoMove should move 'b'")
	}
	if pb.X != 1 || pb.Y != 0 {
		t.Errorf("piece b at (%d,%d), want (1,0)", pb.X, pb.Y)
	}
}
