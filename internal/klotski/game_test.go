package klotski

import (
	"errors"
	"testing"
)

func newDefaultGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(4, 5, defaultEncoding, Goal{PieceID: '1', X: 1, Y: 3})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// checkInvariants verifies that all pieces are in bounds and pairwise
// non-overlapping.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	for i, p := range b.Pieces {
		if p.X < 0 || p.Y < 0 || p.X+p.W > b.Width || p.Y+p.H > b.Height {
			t.Fatalf("piece %c out of bounds: %+v", p.ID, *p)
		}
		for _, q := range b.Pieces[i+1:] {
			if p.Rect().Intersects(q.Rect()) {
				t.Fatalf("pieces %c and %c overlap: %+v vs %+v", p.ID, q.ID, *p, *q)
			}
		}
	}
}

func TestIsMovableBounds(t *testing.T) {
	g := newDefaultGame(t)
	b := g.Board()

	// '9' sits in the bottom-left corner: only right is open.
	p := b.Piece('9')
	tests := []struct {
		name     string
		dx, dy   int
		expected bool
	}{
		{"left into wall", -1, 0, false},
		{"down into wall", 0, 1, false},
		{"up into piece 4", 0, -1, false},
		{"right into gap", 1, 0, true},
		{"two right lands in gap", 2, 0, true},
		{"three right hits piece a", 3, 0, false},
		{"far off board", 10, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsMovable(p, tc.dx, tc.dy); got != tc.expected {
				t.Errorf("IsMovable(9, %d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestMoveIfPossibleIllegalIsSilent(t *testing.T) {
	g := newDefaultGame(t)
	p1 := g.Board().Piece('1')

	// '1' is fully wedged in the opening position.
	for _, d := range directions {
		if g.MoveIfPossible(p1, d.DX, d.DY) {
			t.Errorf("MoveIfPossible(1, %d, %d) should be illegal", d.DX, d.DY)
		}
	}

	if g.Moves() != 0 {
		t.Errorf("illegal moves must not change the counter, got %d", g.Moves())
	}
	if g.LastMoved() != PieceNone {
		t.Errorf("illegal moves must not touch history, lastMoved = %v", g.LastMoved())
	}
	if len(g.Streak()) != 0 {
		t.Errorf("illegal moves must not touch the streak, got %v", g.Streak())
	}
}

func TestMoveCounterCancel(t *testing.T) {
	g := newDefaultGame(t)
	p := g.Board().Piece('9')

	if !g.MoveIfPossible(p, 1, 0) {
		t.Fatal("expected right move to succeed")
	}
	if g.Moves() != 1 {
		t.Fatalf("after first move, counter = %d, want 1", g.Moves())
	}
	if g.LastMoved() != '9' {
		t.Fatalf("lastMoved = %v, want '9'", g.LastMoved())
	}

	// Moving straight back cancels: counter returns to 0 and the marker is
	// the cancelled sentinel, not the piece id.
	if !g.MoveIfPossible(p, -1, 0) {
		t.Fatal("expected left move to succeed")
	}
	if g.Moves() != 0 {
		t.Errorf("after cancel, counter = %d, want 0", g.Moves())
	}
	if g.LastMoved() != PieceCancelled {
		t.Errorf("after cancel, lastMoved = %v, want PieceCancelled", g.LastMoved())
	}
	if len(g.Streak()) != 0 {
		t.Errorf("after cancel, streak = %v, want empty", g.Streak())
	}
	if got := g.Message(); got != "Move 1: Cancelled" {
		t.Errorf("Message() = %q, want %q", got, "Move 1: Cancelled")
	}

	// The next move of the same piece starts a fresh streak and counts.
	if !g.MoveIfPossible(p, 1, 0) {
		t.Fatal("expected right move to succeed")
	}
	if g.Moves() != 1 || g.LastMoved() != '9' {
		t.Errorf("after re-move, counter = %d lastMoved = %v", g.Moves(), g.LastMoved())
	}
}

func TestStreakCollapseAndCancel(t *testing.T) {
	g := newDefaultGame(t)
	p := g.Board().Piece('7')

	// Down then right: a two-entry streak, still one counted move.
	if !g.MoveIfPossible(p, 0, 1) || !g.MoveIfPossible(p, 1, 0) {
		t.Fatal("setup moves failed")
	}
	if g.Moves() != 1 {
		t.Fatalf("counter = %d, want 1", g.Moves())
	}
	if s := g.Streak(); len(s) != 2 || s[0] != (Delta{0, 1}) || s[1] != (Delta{1, 0}) {
		t.Fatalf("streak = %v, want [Down Right]", s)
	}
	if got := g.Message(); got != "Move 1: piece 7 moved Down and Right" {
		t.Errorf("Message() = %q", got)
	}

	// Undoing the second vector collapses the streak back to one entry.
	if !g.MoveIfPossible(p, -1, 0) {
		t.Fatal("left move failed")
	}
	if g.Moves() != 1 || g.LastMoved() != '7' {
		t.Errorf("collapse must not change counter or marker: %d %v", g.Moves(), g.LastMoved())
	}
	if s := g.Streak(); len(s) != 1 || s[0] != (Delta{0, 1}) {
		t.Errorf("streak = %v, want [Down]", s)
	}

	// Undoing the remaining vector is a full cancel.
	if !g.MoveIfPossible(p, 0, -1) {
		t.Fatal("up move failed")
	}
	if g.Moves() != 0 || g.LastMoved() != PieceCancelled {
		t.Errorf("after cancel: counter = %d lastMoved = %v", g.Moves(), g.LastMoved())
	}
}

func TestNoOverlapAfterAnyAcceptedMove(t *testing.T) {
	g := newDefaultGame(t)
	b := g.Board()

	// Walk the board deterministically, trying every piece and direction.
	for round := 0; round < 50; round++ {
		for _, p := range b.Pieces {
			for _, d := range directions {
				if g.MoveIfPossible(p, d.DX, d.DY) {
					checkInvariants(t, b)
				}
			}
		}
	}
}

func TestWinMessage(t *testing.T) {
	// '1' drops onto the goal cell (1,3) on the last of five counted
	// moves; alternating pieces makes every move start a new streak.
	g, err := New(4, 5, "0x200a_2000_0110_0110_0000", Goal{PieceID: '1', X: 1, Y: 3})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	b := g.Board()

	if g.Won() {
		t.Fatal("game must not start in a won state")
	}

	moves := []struct {
		id     rune
		dx, dy int
	}{
		{'a', 0, 1},
		{'2', 0, 1},
		{'a', 0, 1},
		{'2', 0, 1},
		{'1', 0, 1},
	}
	for _, m := range moves {
		if !g.MoveIfPossible(b.Piece(m.id), m.dx, m.dy) {
			t.Fatalf("move %c (%d,%d) failed", m.id, m.dx, m.dy)
		}
	}

	if g.Moves() != 5 {
		t.Fatalf("counter = %d, want 5", g.Moves())
	}
	if !g.Won() {
		t.Fatal("expected win condition")
	}
	want := "Congratulations! You reached the goal in 5 moves!"
	if got := g.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestInstructionalMessageBeforeFirstMove(t *testing.T) {
	g := newDefaultGame(t)
	if g.Message() == "" {
		t.Error("expected an instructional message before the first move")
	}
	if g.LastMoved() != PieceNone {
		t.Errorf("lastMoved = %v, want PieceNone", g.LastMoved())
	}
}

func TestResetRestoresInitialConfiguration(t *testing.T) {
	g := newDefaultGame(t)

	g.MoveIfPossible(g.Board().Piece('9'), 1, 0)
	g.MoveIfPossible(g.Board().Piece('7'), 0, 1)

	g.Reset()

	if got := Encode(g.Board()); got != defaultEncoding {
		t.Errorf("after Reset, board = %q, want %q", got, defaultEncoding)
	}
	if g.Moves() != 0 || g.LastMoved() != PieceNone || len(g.Streak()) != 0 {
		t.Error("Reset must clear all history state")
	}
}

func TestLoadIsTransactional(t *testing.T) {
	g := newDefaultGame(t)
	g.MoveIfPossible(g.Board().Piece('9'), 1, 0)

	before := Encode(g.Board())
	err := g.Load("0x123")
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}

	if got := Encode(g.Board()); got != before {
		t.Errorf("failed Load must not mutate the board: %q vs %q", got, before)
	}
	if g.Moves() != 1 || g.LastMoved() != '9' {
		t.Errorf("failed Load must not touch history: %d %v", g.Moves(), g.LastMoved())
	}
}

func TestLoadReplacesResetSnapshot(t *testing.T) {
	g := newDefaultGame(t)

	custom := "0x0110_0110_2003_2003_4005"
	if err := g.Load(custom); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if g.Moves() != 0 || g.LastMoved() != PieceNone {
		t.Error("Load must reset history")
	}

	g.MoveIfPossible(g.Board().Piece('1'), 0, 1)
	g.Reset()

	if got := Encode(g.Board()); got != custom {
		t.Errorf("Reset after Load should restore the loaded board, got %q", got)
	}
}

func TestApplyGestureDispatch(t *testing.T) {
	// '9' can only move right, so a tap resolves unambiguously.
	g := newDefaultGame(t)
	p := g.Board().Piece('9')
	if !g.ApplyGesture(p, 1, -1) {
		t.Fatal("tap should auto-move '9'")
	}
	if p.X != 1 || p.Y != 4 {
		t.Errorf("piece 9 at (%d,%d), want (1,4)", p.X, p.Y)
	}

	// A long horizontal drag is an explicit move along the dominant axis.
	g = newDefaultGame(t)
	p = g.Board().Piece('9')
	if !g.ApplyGesture(p, 6, 2) {
		t.Fatal("drag right should move '9'")
	}
	if p.X != 1 {
		t.Errorf("piece 9 X = %d, want 1", p.X)
	}

	// Equal magnitudes resolve vertically, here an illegal move: no-op.
	g = newDefaultGame(t)
	p = g.Board().Piece('9')
	if g.ApplyGesture(p, 4, 4) {
		t.Error("vertical drag on '9' should be a no-op")
	}
	if g.Moves() != 0 {
		t.Errorf("counter = %d, want 0", g.Moves())
	}

	if g.ApplyGesture(nil, 0, 0) {
		t.Error("gesture on empty cell should be a no-op")
	}
}
