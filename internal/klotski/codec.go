package klotski

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLength is returned when an encoded board does not contain
// exactly width*height cells after stripping the prefix and separators.
var ErrInvalidLength = errors.New("invalid board length")

// ParseBoard parses the compact textual board encoding into a piece list.
// The format is an ASCII string with an optional "0x" prefix and optional
// '_' separators; the remainder must be exactly width*height characters in
// row-major order. '0' denotes an empty cell, any other character a piece
// id. A piece's rectangle is reconstructed incrementally: the first
// occurrence of an id creates a 1x1 piece at that cell, later occurrences
// widen it to max(w, x-origin.x+1) by max(h, y-origin.y+1). Same-id cells
// that do not form a solid rectangle are not rejected; they silently become
// their bounding rectangle. Piece order is first-appearance order.
func ParseBoard(text string, width, height int) ([]*Piece, error) {
	s := strings.TrimPrefix(text, "0x")
	s = strings.ReplaceAll(s, "_", "")

	cells := []rune(s)
	if len(cells) != width*height {
		return nil, fmt.Errorf("klotski: %w: got %d cells, want %d", ErrInvalidLength, len(cells), width*height)
	}

	var pieces []*Piece
	byID := make(map[rune]*Piece)
	for i, r := range cells {
		if r == '0' {
			continue
		}
		x, y := i%width, i/width
		p, ok := byID[r]
		if !ok {
			p = &Piece{ID: r, X: x, Y: y, W: 1, H: 1}
			byID[r] = p
			pieces = append(pieces, p)
			continue
		}
		if w := x - p.X + 1; w > p.W {
			p.W = w
		}
		if h := y - p.Y + 1; h > p.H {
			p.H = h
		}
	}

	return pieces, nil
}

// Encode renders a board back into the textual encoding, with the "0x"
// prefix and a '_' separator between rows. Encode and ParseBoard round-trip.
func Encode(b *Board) string {
	cells := make([]rune, b.Width*b.Height)
	for i := range cells {
		cells[i] = '0'
	}
	for _, p := range b.Pieces {
		for y := p.Y; y < p.Y+p.H; y++ {
			for x := p.X; x < p.X+p.W; x++ {
				if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
					cells[y*b.Width+x] = p.ID
				}
			}
		}
	}

	rows := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = string(cells[y*b.Width : (y+1)*b.Width])
	}
	return "0x" + strings.Join(rows, "_")
}
