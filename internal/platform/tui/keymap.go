package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/klotski"
)

// GameAction represents a semantic in-game action derived from keyboard
// input. Pointer gestures bypass this and go straight to the engine.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionMove             // Arrow/hjkl move of the selected piece
	GameActionNextPiece
	GameActionPrevPiece
	GameActionReset
	GameActionBack
	GameActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey translates a key to a game action. For GameActionMove the
// returned delta is the unit displacement to apply to the selected piece.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) (GameAction, klotski.Delta) {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameActionQuit, klotski.Delta{}
	case "left", "h":
		return GameActionMove, klotski.Delta{DX: -1}
	case "up", "k":
		return GameActionMove, klotski.Delta{DY: -1}
	case "right", "l":
		return GameActionMove, klotski.Delta{DX: 1}
	case "down", "j":
		return GameActionMove, klotski.Delta{DY: 1}
	case "tab":
		return GameActionNextPiece, klotski.Delta{}
	case "shift+tab":
		return GameActionPrevPiece, klotski.Delta{}
	case "r":
		return GameActionReset, klotski.Delta{}
	case "b", "esc":
		return GameActionBack, klotski.Delta{}
	}
	return GameActionNone, klotski.Delta{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
