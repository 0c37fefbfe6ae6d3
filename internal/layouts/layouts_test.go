package layouts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinLayouts(t *testing.T) {
	all := List()
	if len(all) == 0 {
		t.Fatal("no built-in layouts")
	}

	for _, l := range all {
		t.Run(l.ID, func(t *testing.T) {
			if err := l.Validate(); err != nil {
				t.Fatalf("Validate() failed: %v", err)
			}
			g, err := l.NewGame()
			if err != nil {
				t.Fatalf("NewGame() failed: %v", err)
			}
			if g.Board().Width != l.Width || g.Board().Height != l.Height {
				t.Errorf("board is %dx%d, want %dx%d",
					g.Board().Width, g.Board().Height, l.Width, l.Height)
			}
			if g.Board().Piece(l.GoalPiece()) == nil {
				t.Errorf("goal piece %q missing from board", l.Goal.Piece)
			}
		})
	}
}

func TestDefaultIsClassic(t *testing.T) {
	d := Default()
	if d.ID != "classic" {
		t.Errorf("Default().ID = %q, want %q", d.ID, "classic")
	}
	if d.Width != DefaultWidth || d.Height != DefaultHeight {
		t.Errorf("default dimensions %dx%d, want %dx%d", d.Width, d.Height, DefaultWidth, DefaultHeight)
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get("classic"); !ok {
		t.Error("Get(classic) should succeed")
	}
	if _, ok := Get("no-such-layout"); ok {
		t.Error("Get(no-such-layout) should fail")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	content := `id: mine
name: My Layout
board: 0x0110_0110_2003_2003_4005
goal:
  piece: "1"
  x: 1
  y: 3
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if l.ID != "mine" || l.Width != DefaultWidth || l.Height != DefaultHeight {
		t.Errorf("unexpected layout: %+v", l)
	}
	if _, err := l.NewGame(); err != nil {
		t.Errorf("NewGame() failed: %v", err)
	}
}

func TestLoadFileRejectsBrokenLayout(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad board length", "id: x\nname: X\nboard: 0x123\ngoal: {piece: \"1\", x: 0, y: 0}\n"},
		{"goal piece missing", "id: x\nname: X\nboard: 0x0110_0110_2003_2003_4005\ngoal: {piece: \"z\", x: 0, y: 0}\n"},
		{"goal out of bounds", "id: x\nname: X\nboard: 0x0110_0110_2003_2003_4005\ngoal: {piece: \"1\", x: 3, y: 3}\n"},
		{"not yaml", "{{{{"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad"+string(rune('a'+i))+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFromEncoding(t *testing.T) {
	l := FromEncoding("0x0110_0110_2003_2003_4005")
	if err := l.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if l.Goal.Piece != "1" {
		t.Errorf("custom layout should inherit the classic goal, got %q", l.Goal.Piece)
	}
}
