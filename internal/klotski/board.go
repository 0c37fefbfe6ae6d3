package klotski

// Board holds the authoritative piece list on a fixed-size grid.
// Piece order is first-appearance order from the codec; it has no semantic
// meaning but stays stable for rendering.
type Board struct {
	Width  int
	Height int
	Pieces []*Piece
}

// Piece returns the piece with the given id, or nil.
func (b *Board) Piece(id rune) *Piece {
	for _, p := range b.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PieceAt returns the piece covering cell (x, y), or nil for an empty cell.
func (b *Board) PieceAt(x, y int) *Piece {
	for _, p := range b.Pieces {
		if p.Rect().Contains(x, y) {
			return p
		}
	}
	return nil
}

// isOutOfBounds reports whether moving p by (dx, dy) would push any part of
// it outside the board.
func (b *Board) isOutOfBounds(p *Piece, dx, dy int) bool {
	return p.X+dx < 0 || p.Y+dy < 0 || p.X+dx+p.W > b.Width || p.Y+dy+p.H > b.Height
}

// IsMovable reports whether p can be displaced by (dx, dy): the moved
// rectangle must stay on the board and overlap no other piece. Correct for
// arbitrary integer displacements, though play only ever uses unit moves.
func (b *Board) IsMovable(p *Piece, dx, dy int) bool {
	if b.isOutOfBounds(p, dx, dy) {
		return false
	}
	moved := p.Rect().Translate(dx, dy)
	for _, other := range b.Pieces {
		if other == p {
			continue
		}
		if moved.Intersects(other.Rect()) {
			return false
		}
	}
	return true
}

// clone returns a deep value copy of the board.
func (b *Board) clone() *Board {
	pieces := make([]*Piece, len(b.Pieces))
	for i, p := range b.Pieces {
		cp := *p
		pieces[i] = &cp
	}
	return &Board{Width: b.Width, Height: b.Height, Pieces: pieces}
}
