package klotski

import (
	"fmt"
	"strings"
)

// Message builds the status line for the current board and history.
// It is a pure read: before the first move it instructs, after a
// self-cancelling move it reports the cancel, on a win it congratulates,
// and otherwise it names the active piece and the pending direction(s).
func (g *Game) Message() string {
	switch {
	case g.lastMoved == PieceNone:
		return "Click a piece next to a gap to move it, or drag it in a direction."
	case g.lastMoved == PieceCancelled:
		return fmt.Sprintf("Move %d: Cancelled", g.moves+1)
	case g.Won():
		return fmt.Sprintf("Congratulations! You reached the goal in %d moves!", g.moves)
	default:
		names := make([]string, len(g.streak))
		for i, d := range g.streak {
			names[i] = d.Direction()
		}
		return fmt.Sprintf("Move %d: piece %c moved %s", g.moves, g.lastMoved, strings.Join(names, " and "))
	}
}
