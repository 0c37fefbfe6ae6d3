package klotski

import (
	"errors"
	"testing"
)

// defaultEncoding is the classic Hakoiri-Musume starting position.
const defaultEncoding = "0x2113_2113_4556_4786_900a"

func TestParseDefaultBoard(t *testing.T) {
	pieces, err := ParseBoard(defaultEncoding, 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}

	want := []Piece{
		{ID: '2', X: 0, Y: 0, W: 1, H: 2},
		{ID: '1', X: 1, Y: 0, W: 2, H: 2},
		{ID: '3', X: 3, Y: 0, W: 1, H: 2},
		{ID: '4', X: 0, Y: 2, W: 1, H: 2},
		{ID: '5', X: 1, Y: 2, W: 2, H: 1},
		{ID: '6', X: 3, Y: 2, W: 1, H: 2},
		{ID: '7', X: 1, Y: 3, W: 1, H: 1},
		{ID: '8', X: 2, Y: 3, W: 1, H: 1},
		{ID: '9', X: 0, Y: 4, W: 1, H: 1},
		{ID: 'a', X: 3, Y: 4, W: 1, H: 1},
	}

	if len(pieces) != len(want) {
		t.Fatalf("got %d pieces, want %d", len(pieces), len(want))
	}
	for i, w := range want {
		if *pieces[i] != w {
			t.Errorf("piece %d = %+v, want %+v", i, *pieces[i], w)
		}
	}
}

func TestParseBoardPrefixAndSeparatorsOptional(t *testing.T) {
	bare, err := ParseBoard("2113211345564786900a", 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard() without prefix failed: %v", err)
	}
	full, err := ParseBoard(defaultEncoding, 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard() with prefix failed: %v", err)
	}

	if len(bare) != len(full) {
		t.Fatalf("piece counts differ: %d vs %d", len(bare), len(full))
	}
	for i := range bare {
		if *bare[i] != *full[i] {
			t.Errorf("piece %d differs: %+v vs %+v", i, *bare[i], *full[i])
		}
	}
}

func TestParseBoardInvalidLength(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", "0x2113"},
		{"too long", defaultEncoding + "00"},
		{"empty", ""},
		{"separators only", "0x____"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.text, 4, 5)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("error = %v, want ErrInvalidLength", err)
			}
		})
	}
}

// Same-id cells that do not form a solid rectangle are accepted and become
// their max-extent rectangle. This mirrors the incremental reconstruction
// and is deliberate: the codec does not validate shapes.
func TestParseBoardBoundingBoxReconstruction(t *testing.T) {
	// 'b' covers an L-shape: (0,0), (1,0), (0,1).
	pieces, err := ParseBoard("0xbb00_b000_0000_0000_0000", 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	p := pieces[0]
	if p.X != 0 || p.Y != 0 || p.W != 2 || p.H != 2 {
		t.Errorf("L-shaped id should become its 2x2 bounding box, got %+v", *p)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	pieces, err := ParseBoard(defaultEncoding, 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	b := &Board{Width: 4, Height: 5, Pieces: pieces}

	encoded := Encode(b)
	if encoded != defaultEncoding {
		t.Errorf("Encode() = %q, want %q", encoded, defaultEncoding)
	}

	again, err := ParseBoard(encoded, 4, 5)
	if err != nil {
		t.Fatalf("ParseBoard(Encode()) failed: %v", err)
	}

	// Order-independent comparison of the piece sets.
	byID := make(map[rune]Piece, len(pieces))
	for _, p := range pieces {
		byID[p.ID] = *p
	}
	if len(again) != len(pieces) {
		t.Fatalf("round-trip piece count %d, want %d", len(again), len(pieces))
	}
	for _, p := range again {
		if w, ok := byID[p.ID]; !ok || w != *p {
			t.Errorf("round-trip piece %c = %+v, want %+v", p.ID, *p, w)
		}
	}
}
