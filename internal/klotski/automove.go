package klotski

// directions is the fixed enumeration order for auto-move candidates:
// left, up, right, down.
var directions = [4]Delta{
	{DX: -1, DY: 0},
	{DX: 0, DY: -1},
	{DX: 1, DY: 0},
	{DX: 0, DY: 1},
}

// AutoMove resolves a tap on a piece into a direction, when that can be
// done unambiguously:
//
//   - exactly one movable direction: take it
//   - none, or three or more: do nothing — only corner- and edge-constrained
//     single-axis pieces auto-move
//   - exactly two: normally the first candidate in enumeration order, but
//     when the piece is mid-streak and that candidate would undo the
//     streak's first recorded move, the second candidate is taken instead,
//     so repeated taps toggle to the direction not already explored
//
// Returns true when the board changed.
func (g *Game) AutoMove(p *Piece) bool {
	if p == nil {
		return false
	}

	var candidates []Delta
	for _, d := range directions {
		if g.board.IsMovable(p, d.DX, d.DY) {
			candidates = append(candidates, d)
		}
	}

	switch len(candidates) {
	case 1:
		return g.MoveIfPossible(p, candidates[0].DX, candidates[0].DY)
	case 2:
		pick := candidates[0]
		if g.lastMoved == p.ID && len(g.streak) > 0 && g.streak[0] == candidates[0].Negate() {
			pick = candidates[1]
		}
		return g.MoveIfPossible(p, pick.DX, pick.DY)
	default:
		return false
	}
}
