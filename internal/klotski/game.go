package klotski

import "github.com/vovakirdan/tui-klotski/internal/core"

// TapThreshold is the Manhattan pointer displacement below which a gesture
// counts as a tap and goes through the auto-move resolver instead of an
// explicit directional drag.
const TapThreshold = 4

// Game owns the board state and the move history: the last-moved marker,
// the streak of recent displacement vectors for the active piece (at most
// two), and the move counter. All mutation goes through MoveIfPossible,
// AutoMove, Reset and Load; those are never called concurrently because the
// shell serializes input events.
type Game struct {
	board   *Board
	initial *Board // snapshot for reset, kept verbatim
	goal    Goal

	lastMoved rune
	streak    []Delta
	moves     int
}

// New creates a game from an encoded board. The goal names the piece that
// must reach the target cell.
func New(width, height int, encoded string, goal Goal) (*Game, error) {
	pieces, err := ParseBoard(encoded, width, height)
	if err != nil {
		return nil, err
	}
	b := &Board{Width: width, Height: height, Pieces: pieces}
	return &Game{
		board:     b,
		initial:   b.clone(),
		goal:      goal,
		lastMoved: PieceNone,
	}, nil
}

// Board returns the current board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Goal returns the win condition.
func (g *Game) Goal() Goal {
	return g.goal
}

// Moves returns the current move count. It can decrease: a round-trip of
// the same piece along the same axis counts as nothing having happened.
func (g *Game) Moves() int {
	return g.moves
}

// LastMoved returns the id of the last-moved piece, or one of the PieceNone
// and PieceCancelled markers.
func (g *Game) LastMoved() rune {
	return g.lastMoved
}

// Streak returns a copy of the pending displacement vectors for the
// currently active piece.
func (g *Game) Streak() []Delta {
	out := make([]Delta, len(g.streak))
	copy(out, g.streak)
	return out
}

// Won reports whether the goal piece sits at the target cell.
func (g *Game) Won() bool {
	p := g.board.Piece(g.goal.PieceID)
	return p != nil && p.X == g.goal.X && p.Y == g.goal.Y
}

// MoveIfPossible applies the displacement iff it is legal. An illegal move
// is a silent no-op: no counter change, no history change, no re-render.
// Returns true when the board changed.
func (g *Game) MoveIfPossible(p *Piece, dx, dy int) bool {
	if p == nil || !g.board.IsMovable(p, dx, dy) {
		return false
	}
	g.doMove(p, dx, dy)
	return true
}

// doMove unconditionally displaces the piece, then updates the history and
// counter. The cases are checked against the history state as it was before
// this move's piece id is recorded:
//
//  1. a different piece than last time starts a new streak and counts a move
//  2. a single-entry streak undone by its exact negation is a cancel: the
//     counter goes back down and the last-moved marker becomes PieceCancelled
//  3. a two-entry streak whose second vector is negated collapses back to one
//  4. anything else appends to the streak (which therefore never exceeds two)
func (g *Game) doMove(p *Piece, dx, dy int) {
	p.X += dx
	p.Y += dy

	d := Delta{DX: dx, DY: dy}
	switch {
	case g.lastMoved != p.ID:
		g.streak = append(g.streak[:0], d)
		g.lastMoved = p.ID
		g.moves++
	case len(g.streak) == 1 && g.streak[0] == d.Negate():
		g.streak = g.streak[:0]
		g.lastMoved = PieceCancelled
		g.moves--
	case len(g.streak) == 2 && g.streak[1] == d.Negate():
		g.streak = g.streak[:1]
	default:
		g.streak = append(g.streak, d)
	}
}

// ApplyGesture dispatches a completed pointer gesture on the given piece.
// Displacements below TapThreshold are taps and go through the auto-move
// resolver; anything larger is an explicit drag along its dominant axis.
// Returns true when the board changed.
func (g *Game) ApplyGesture(p *Piece, dx, dy int) bool {
	if p == nil {
		return false
	}
	if core.Abs(dx)+core.Abs(dy) < TapThreshold {
		return g.AutoMove(p)
	}
	if core.Abs(dx) > core.Abs(dy) {
		return g.MoveIfPossible(p, core.Sign(dx), 0)
	}
	return g.MoveIfPossible(p, 0, core.Sign(dy))
}

// Reset restores the originally loaded configuration and clears all history.
func (g *Game) Reset() {
	g.board = g.initial.clone()
	g.resetHistory()
}

// Load replaces the board with a custom encoded configuration. On a parse
// error the current board and history stay fully intact. On success the new
// configuration also becomes the reset snapshot.
func (g *Game) Load(encoded string) error {
	pieces, err := ParseBoard(encoded, g.board.Width, g.board.Height)
	if err != nil {
		return err
	}
	b := &Board{Width: g.board.Width, Height: g.board.Height, Pieces: pieces}
	g.board = b
	g.initial = b.clone()
	g.resetHistory()
	return nil
}

func (g *Game) resetHistory() {
	g.lastMoved = PieceNone
	g.streak = g.streak[:0]
	g.moves = 0
}
