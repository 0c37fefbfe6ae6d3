// Package layouts provides named board scenarios for the puzzle. Built-in
// layouts are shipped as embedded YAML; additional layouts can be loaded
// from user-supplied files. The board itself is always expressed in the
// codec's compact encoding, which stays the single interchange format.
package layouts

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-klotski/internal/klotski"
)

// Default board dimensions when a layout does not override them.
const (
	DefaultWidth  = 4
	DefaultHeight = 5
)

//go:embed builtin.yaml
var builtinYAML []byte

// GoalSpec is the YAML form of a win condition.
type GoalSpec struct {
	Piece string `yaml:"piece"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// Layout describes one playable scenario: an encoded board plus its goal.
type Layout struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Board  string   `yaml:"board"`
	Width  int      `yaml:"width,omitempty"`
	Height int      `yaml:"height,omitempty"`
	Goal   GoalSpec `yaml:"goal"`
}

type layoutFile struct {
	Layouts []Layout `yaml:"layouts"`
}

var builtin []Layout

func init() {
	var f layoutFile
	if err := yaml.Unmarshal(builtinYAML, &f); err != nil {
		panic(fmt.Sprintf("layouts: embedded builtin.yaml is broken: %v", err))
	}
	for i := range f.Layouts {
		f.Layouts[i].applyDefaults()
		if err := f.Layouts[i].Validate(); err != nil {
			panic(fmt.Sprintf("layouts: embedded layout %q is broken: %v", f.Layouts[i].ID, err))
		}
	}
	builtin = f.Layouts
}

func (l *Layout) applyDefaults() {
	if l.Width == 0 {
		l.Width = DefaultWidth
	}
	if l.Height == 0 {
		l.Height = DefaultHeight
	}
}

// GoalPiece returns the goal piece id as a rune.
func (l Layout) GoalPiece() rune {
	r, _ := utf8.DecodeRuneInString(l.Goal.Piece)
	return r
}

// Validate checks that the layout parses and its goal is coherent: the goal
// piece must exist and must fit on the board at the target cell.
func (l Layout) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("layouts: missing id")
	}
	pieces, err := klotski.ParseBoard(l.Board, l.Width, l.Height)
	if err != nil {
		return err
	}
	if l.Goal.Piece == "" {
		return fmt.Errorf("layouts: %s: missing goal piece", l.ID)
	}

	goalID := l.GoalPiece()
	for _, p := range pieces {
		if p.ID != goalID {
			continue
		}
		if l.Goal.X < 0 || l.Goal.Y < 0 || l.Goal.X+p.W > l.Width || l.Goal.Y+p.H > l.Height {
			return fmt.Errorf("layouts: %s: goal cell (%d,%d) does not fit piece %c", l.ID, l.Goal.X, l.Goal.Y, goalID)
		}
		return nil
	}
	return fmt.Errorf("layouts: %s: goal piece %q not on board", l.ID, l.Goal.Piece)
}

// NewGame builds a fresh engine instance for this layout.
func (l Layout) NewGame() (*klotski.Game, error) {
	return klotski.New(l.Width, l.Height, l.Board, klotski.Goal{
		PieceID: l.GoalPiece(),
		X:       l.Goal.X,
		Y:       l.Goal.Y,
	})
}

// List returns the built-in layouts in declaration order.
func List() []Layout {
	out := make([]Layout, len(builtin))
	copy(out, builtin)
	return out
}

// Get returns the built-in layout with the given id.
func Get(id string) (Layout, bool) {
	for _, l := range builtin {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// Default returns the classic layout, the first built-in.
func Default() Layout {
	return builtin[0]
}

// LoadFile reads a single layout from a YAML file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layouts: parsing %s: %w", path, err)
	}
	l.applyDefaults()
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// FromEncoding wraps a raw encoded board in an ad-hoc layout using the
// default dimensions and the classic goal.
func FromEncoding(encoded string) Layout {
	l := Layout{
		ID:    "custom",
		Name:  "Custom Board",
		Board: encoded,
		Goal:  Default().Goal,
	}
	l.applyDefaults()
	return l
}
