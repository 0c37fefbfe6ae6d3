package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/klotski"
)

// Screen size of one board cell. Terminal characters are roughly twice as
// tall as wide, so 6x3 keeps cells close to square on screen.
const (
	CellW = 6
	CellH = 3
)

// piecePalette is cycled through for non-goal pieces, by piece order.
var piecePalette = []core.Color{
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
}

// BoardView maps between board cells and screen coordinates and draws the
// current game state into a screen buffer.
type BoardView struct {
	originX int
	originY int
	boardW  int
	boardH  int
}

// NewBoardView centers the board of the given game on a screen of the given
// dimensions.
func NewBoardView(screenW, screenH int, g *klotski.Game) *BoardView {
	b := g.Board()
	frameW := b.Width*CellW + 1
	frameH := b.Height*CellH + 1
	return &BoardView{
		originX: core.Max(0, (screenW-frameW)/2),
		originY: core.Max(0, (screenH-frameH-4)/2),
		boardW:  b.Width,
		boardH:  b.Height,
	}
}

// CellAt converts screen coordinates to a board cell.
// Returns false when the position is outside the playing field.
func (v *BoardView) CellAt(sx, sy int) (int, int, bool) {
	sx -= v.originX + 1
	sy -= v.originY + 1
	if sx < 0 || sy < 0 {
		return 0, 0, false
	}
	cx, cy := sx/CellW, sy/CellH
	if cx >= v.boardW || cy >= v.boardH {
		return 0, 0, false
	}
	return cx, cy, true
}

// Draw renders the board, the status line and the key help into the screen.
func (v *BoardView) Draw(s *core.Screen, g *klotski.Game, title string, selected rune, best int) {
	s.Clear()

	b := g.Board()
	frame := core.NewRect(v.originX, v.originY, b.Width*CellW+1, b.Height*CellH+1)
	s.DrawBox(frame, core.ColorGray)

	s.DrawTextColored(v.originX+2, v.originY, " "+title+" ", core.ColorBrightWhite)

	v.drawGoalMarker(s, g)

	for i, p := range b.Pieces {
		v.drawPiece(s, g, p, i, selected)
	}

	// Status area below the board
	statusY := frame.Bottom() + 1
	s.DrawText(v.originX, statusY, fmt.Sprintf("Moves: %d", g.Moves()))
	if best > 0 {
		s.DrawTextColored(v.originX+12, statusY, fmt.Sprintf("Best: %d", best), core.ColorGray)
	}
	msgColor := core.ColorDefault
	if g.Won() {
		msgColor = core.ColorBrightGreen
	}
	s.DrawTextColored(v.originX, statusY+1, g.Message(), msgColor)
	s.DrawTextColored(v.originX, statusY+2,
		"Click/drag piece  Tab: select  Arrows: move  R: reset  Q: quit",
		core.ColorGray)
}

// drawGoalMarker dots the empty cells of the goal area so the player can
// see where the goal piece has to go.
func (v *BoardView) drawGoalMarker(s *core.Screen, g *klotski.Game) {
	goal := g.Goal()
	p := g.Board().Piece(goal.PieceID)
	if p == nil {
		return
	}
	for cy := goal.Y; cy < goal.Y+p.H; cy++ {
		for cx := goal.X; cx < goal.X+p.W; cx++ {
			if g.Board().PieceAt(cx, cy) != nil {
				continue
			}
			mx := v.originX + 1 + cx*CellW + CellW/2 - 1
			my := v.originY + 1 + cy*CellH + CellH/2 - 1
			s.SetCell(mx, my, core.Cell{Rune: '·', Color: core.ColorGray})
		}
	}
}

func (v *BoardView) drawPiece(s *core.Screen, g *klotski.Game, p *klotski.Piece, index int, selected rune) {
	color := piecePalette[index%len(piecePalette)]
	if p.ID == g.Goal().PieceID {
		color = core.ColorBrightRed
	}
	if p.ID == selected {
		color = core.ColorBrightWhite
	}

	box := core.NewRect(
		v.originX+1+p.X*CellW,
		v.originY+1+p.Y*CellH,
		p.W*CellW-1,
		p.H*CellH-1,
	)
	s.DrawBox(box, color)

	// Piece id centered in the box
	cx := box.X + box.W/2
	cy := box.Y + box.H/2
	s.SetCell(cx, cy, core.Cell{Rune: p.ID, Color: color})
}
