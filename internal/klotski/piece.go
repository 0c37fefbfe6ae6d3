// Package klotski implements the sliding-block puzzle engine: board state,
// move validation and application, the tap auto-move heuristic, the
// back-and-forth move-counting policy, win detection, and the compact board
// encoding. It contains pure logic with no UI dependencies; the platform
// layer feeds it pointer gestures and reads back pieces and status text.
package klotski

import "github.com/vovakirdan/tui-klotski/internal/core"

// Last-moved markers that are distinct from any real piece id.
// PieceNone means no move has been made yet; PieceCancelled means the most
// recent move exactly undid the one before it.
const (
	PieceNone      rune = 0
	PieceCancelled rune = -1
)

// Piece is a rectangular block on the grid. The id is a single character,
// unique within a board. Position is the top-left cell.
type Piece struct {
	ID   rune
	X, Y int
	W, H int
}

// Rect returns the piece's bounding rectangle.
func (p *Piece) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Delta is a unit displacement vector for a move.
type Delta struct {
	DX, DY int
}

// Negate returns the opposite displacement.
func (d Delta) Negate() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// Direction returns the human-readable name of the displacement.
func (d Delta) Direction() string {
	if d.DX == 0 {
		if d.DY > 0 {
			return "Down"
		}
		return "Up"
	}
	if d.DX > 0 {
		return "Right"
	}
	return "Left"
}

// Goal is the win condition: the goal piece sitting with its top-left
// corner at the target cell.
type Goal struct {
	PieceID rune
	X, Y    int
}
