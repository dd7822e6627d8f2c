package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Visual characters for rendering
const (
	StackGlyph = '█'
	PieceGlyph = '▓'
	EmptyGlyph = '·'
)

const panelWidth = 18

// palette colors cells by their shape value, cycling past the end.
var palette = []core.Color{
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorGreen,
	core.ColorRed,
	core.ColorBlue,
	core.ColorOrange,
}

func colorFor(v int) core.Color {
	if v <= 0 {
		return core.ColorDefault
	}
	return palette[(v-1)%len(palette)]
}

// layout places the board box and the side panel on the screen.
type layout struct {
	boardX, boardY int
	boardW, boardH int
	cell           int
	panelX         int
	showPanel      bool
	fits           bool
	needW, needH   int
}

func computeLayout(cfg config.BlockfallConfig, screenW, screenH int) layout {
	l := layout{
		cell:   cfg.Board.CellSize,
		boardW: cfg.Board.Columns*cfg.Board.CellSize + 2,
		boardH: cfg.Board.Rows + 2,
	}
	l.needW, l.needH = l.boardW, l.boardH
	l.fits = screenW >= l.needW && screenH >= l.needH

	total := l.boardW
	if screenW >= l.boardW+2+panelWidth {
		l.showPanel = true
		total += 2 + panelWidth
	}
	l.boardX = max((screenW-total)/2, 0)
	l.boardY = max((screenH-l.boardH)/2, 0)
	l.panelX = l.boardX + l.boardW + 2
	return l
}

// Render draws the board, the active piece, the side panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	if g.eng == nil {
		return
	}
	if g.screenTooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout
	dst.DrawBoxColor(core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH), core.ColorGray)

	board := g.eng.Board()
	rows, cols := board.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v := board.Cell(x, y); v > 0 {
				g.drawCell(dst, x, y, StackGlyph, colorFor(v))
			} else {
				g.drawCell(dst, x, y, EmptyGlyph, core.ColorGray)
			}
		}
	}

	inside := core.NewRect(0, 0, cols, rows)
	piece := g.eng.ActivePiece()
	for _, p := range g.eng.PieceCells() {
		if !inside.Contains(p.X, p.Y) {
			continue
		}
		v := piece.Shape[p.Y-piece.Position.Y][p.X-piece.Position.X]
		g.drawCell(dst, p.X, p.Y, PieceGlyph, colorFor(v))
	}

	if l.showPanel {
		g.renderPanel(dst)
	}

	switch {
	case g.State().GameOver:
		g.boardMessage(dst, 0, "GAME OVER", core.ColorBrightRed)
		g.boardMessage(dst, 1, "R restart", core.ColorWhite)
	case g.paused:
		g.boardMessage(dst, 0, "PAUSED", core.ColorBrightYellow)
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, glyph rune, c core.Color) {
	l := g.layout
	sx := l.boardX + 1 + x*l.cell
	for i := 0; i < l.cell; i++ {
		dst.SetWithColor(sx+i, l.boardY+1+y, glyph, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	l := g.layout
	x, y := l.panelX, l.boardY+1

	dst.DrawTextColor(x, y, g.Title(), core.ColorBrightWhite)
	lines := []string{
		fmt.Sprintf("Lines    %d", g.eng.ClearedRows()),
		fmt.Sprintf("Pieces   %d", g.eng.PiecesPlaced()),
		fmt.Sprintf("Gravity  %dms", g.eng.PieceDropInterval().Milliseconds()),
		fmt.Sprintf("Catalog  %s", g.cfg.Catalog),
	}
	if g.cfg.Difficulty.Preset != "" {
		lines = append(lines, fmt.Sprintf("Preset   %s", g.cfg.Difficulty.Preset))
	}
	for i, line := range lines {
		dst.DrawText(x, y+2+i, line)
	}
}

// boardMessage centers text inside the board box, offset rows below the
// middle row.
func (g *Game) boardMessage(dst *core.Screen, offset int, text string, c core.Color) {
	l := g.layout
	n := len([]rune(text))
	x := l.boardX + (l.boardW-n)/2
	y := l.boardY + l.boardH/2 + offset
	dst.DrawTextColor(x, y, text, c)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))
	dst.DrawTextCenteredColor(mid-1, "Terminal too small", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d",
		g.layout.needW, g.layout.needH, g.runtime.ScreenW, g.runtime.ScreenH))
}
