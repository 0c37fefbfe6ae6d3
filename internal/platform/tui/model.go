package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/klotski"
	"github.com/vovakirdan/tui-klotski/internal/layouts"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

// GameModel is the Bubble Tea model for playing one puzzle layout.
// It owns the engine instance and translates terminal input into the
// engine's gesture and move calls.
type GameModel struct {
	game   *klotski.Game
	layout layouts.Layout
	store  *storage.Store
	config core.RuntimeConfig
	screen *core.Screen
	view   *BoardView
	keys   *KeyMapper

	best int // Fewest moves recorded for this layout, 0 if none

	// Pending pointer gesture
	pressed        bool
	pressX, pressY int
	pressID        rune

	selected   rune // Keyboard-selected piece id, 0 when none
	startedAt  time.Time
	solveSaved bool
	backToMenu bool
	quitting   bool
}

// NewGameModel creates a model for the given layout.
func NewGameModel(layout layouts.Layout, store *storage.Store, cfg core.RuntimeConfig) (GameModel, error) {
	game, err := layout.NewGame()
	if err != nil {
		return GameModel{}, err
	}

	best := 0
	if store != nil {
		// Best-effort: the game works without persistence
		best, _ = store.BestMoves(layout.ID)
	}

	return GameModel{
		game:      game,
		layout:    layout,
		store:     store,
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		view:      NewBoardView(cfg.ScreenW, cfg.ScreenH, game),
		keys:      NewKeyMapper(),
		best:      best,
		startedAt: time.Now(),
	}, nil
}

// Init implements tea.Model. The engine is event-driven: no tick loop.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.view = NewBoardView(msg.Width, msg.Height, m.game)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, delta := m.keys.MapGameKey(msg)

	switch action {
	case GameActionQuit:
		m.quitting = true
		return m, tea.Quit

	case GameActionBack:
		m.backToMenu = true
		return m, tea.Quit

	case GameActionReset:
		m.game.Reset()
		m.solveSaved = false
		m.startedAt = time.Now()

	case GameActionNextPiece:
		m.selected = m.cyclePiece(m.selected, 1)

	case GameActionPrevPiece:
		m.selected = m.cyclePiece(m.selected, -1)

	case GameActionMove:
		if p := m.game.Board().Piece(m.selected); p != nil {
			if m.game.MoveIfPossible(p, delta.DX, delta.DY) {
				m.afterMove()
			}
		}
	}

	return m, nil
}

// handleMouse turns a press/release pair into an engine gesture.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.pressed = true
		m.pressX, m.pressY = msg.X, msg.Y
		m.pressID = 0
		if cx, cy, ok := m.view.CellAt(msg.X, msg.Y); ok {
			if p := m.game.Board().PieceAt(cx, cy); p != nil {
				m.pressID = p.ID
				m.selected = p.ID
			}
		}

	case tea.MouseActionRelease:
		if !m.pressed {
			break
		}
		m.pressed = false
		p := m.game.Board().Piece(m.pressID)
		gest := core.Gesture{StartX: m.pressX, StartY: m.pressY, EndX: msg.X, EndY: msg.Y}
		// Terminal cells are roughly twice as tall as wide; doubling dy
		// keeps drag distances comparable on both axes.
		if m.game.ApplyGesture(p, gest.DX(), gest.DY()*2) {
			m.afterMove()
		}
	}

	return m, nil
}

// afterMove records the solve when the goal has just been reached.
func (m *GameModel) afterMove() {
	if !m.game.Won() || m.solveSaved {
		return
	}
	m.solveSaved = true
	if m.store == nil {
		return
	}
	duration := int(time.Since(m.startedAt).Seconds())
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveSolve(m.layout.ID, m.game.Moves(), duration)
	if m.best == 0 || m.game.Moves() < m.best {
		m.best = m.game.Moves()
	}
}

// cyclePiece moves the keyboard selection forward or backward through the
// piece list.
func (m GameModel) cyclePiece(current rune, step int) rune {
	pieces := m.game.Board().Pieces
	if len(pieces) == 0 {
		return 0
	}
	idx := -1
	for i, p := range pieces {
		if p.ID == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(pieces)) % len(pieces)
	return pieces[idx].ID
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.game, m.layout.Name, m.selected, m.best)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the user left the game with Esc.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a standalone Bubble Tea program for one layout.
func Run(layout layouts.Layout, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(layout, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer gestures drive the puzzle
	)

	_, err = p.Run()
	return err
}
