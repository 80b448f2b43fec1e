package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth    = 3 // Glyph plus a decoration on each side
	hudHeight    = 3
	footerHeight = 2
	minHUDWidth  = 44
)

// glyphs draws item kinds in kind order.
var glyphs = []rune{'●', '■', '▲', '◆', '★', '♥', '✚', '♣'}

// Glyph returns the symbol for an item kind.
func Glyph(k engine.Kind) rune {
	return glyphs[int(k)%len(glyphs)]
}

// boardSize returns the size of the framed board in screen cells.
func boardSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := boardSize(g.cfg.Board.Width, g.cfg.Board.Height)
	frameRect := core.NewRect(0, 0, bw, bh).CenterIn(core.NewRect(0, hudHeight, g.screenW, bh))

	g.renderHUD(dst)
	dst.DrawBox(frameRect, core.ColorGray)
	g.renderBoard(dst, frameRect.X+1, frameRect.Y+1)
	g.renderFooter(dst, frameRect.Bottom())
	g.renderOverlay(dst, frameRect)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, score and level or endless info.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	left := fmt.Sprintf("Score: %d", g.score)

	var right string
	if g.mode == ModeCampaign {
		right = fmt.Sprintf("Level %d/%d  Target %d/%d  Moves %d",
			g.levelIndex+1, len(g.cfg.Levels), g.levelScore, g.target, g.movesLeft)
	} else {
		right = fmt.Sprintf("Gems %d  Turns %d", g.kinds, g.turns)
		if g.movesLeft >= 0 {
			right += fmt.Sprintf("  Moves %d", g.movesLeft)
		}
	}

	hud := core.NewRect(0, 0, max(minHUDWidth, len(left)+len([]rune(right))+2), 1).
		CenterIn(core.NewRect(0, 1, g.screenW, 1))
	dst.DrawTextColored(hud.X, 1, left, core.ColorBrightYellow)
	dst.DrawText(hud.Right()-len([]rune(right)), 1, right)

	if g.mode == ModeCampaign {
		if level, ok := g.cfg.Level(g.levelIndex); ok {
			dst.DrawTextCentered(2, level.Name, core.ColorCyan)
		}
	}
}

// renderBoard draws items with the cursor, selection and animation highlights.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	board := g.board
	f, animating := g.current()
	if animating {
		board = f.board
	}
	if board == nil {
		return
	}

	for _, c := range board.Coords() {
		x := ox + c.X*cellWidth
		y := oy + c.Y

		cell, _ := board.At(c)
		glyph, color := ' ', core.ColorDefault
		if cell.Filled {
			glyph, color = Glyph(cell.Item.Kind), core.ItemColor(int(cell.Item.Kind))
		}

		left, right, decoColor := ' ', ' ', core.ColorDefault
		switch {
		case animating && f.highlight[c] && f.kind == frameMatched:
			glyph, color = '✶', core.ColorBrightWhite
		case animating && f.highlight[c] && f.kind == frameSwap:
			left, right, decoColor = '›', '‹', core.ColorBrightYellow
		case animating && f.highlight[c] && f.kind == frameSettled:
			left, decoColor = '+', core.ColorGray
		case !animating && g.selection != nil && *g.selection == c:
			left, right, decoColor = '<', '>', core.ColorBrightYellow
		case !animating && g.cursor == c:
			left, right, decoColor = '[', ']', core.ColorBrightWhite
		case !animating && g.hint != nil && (g.hint.A == c || g.hint.B == c):
			left, right, decoColor = '(', ')', core.ColorGray
		}

		dst.SetColored(x, y, left, decoColor)
		dst.SetColored(x+1, y, glyph, color)
		dst.SetColored(x+2, y, right, decoColor)
	}
}

// renderFooter draws the status line and key help under the board.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.status != "" {
		dst.DrawTextCentered(y, g.status, core.ColorOrange)
	}
	dst.DrawTextCentered(y+1, "Arrows: move  Space: select/swap  Esc: cancel  P: pause  Q: quit", core.ColorGray)
}

// renderOverlay draws the pause, level clear and game over banners.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect) {
	var lines []string
	color := core.ColorBrightWhite

	switch {
	case g.won:
		lines = []string{"ALL LEVELS CLEARED!", fmt.Sprintf("Final score: %d", g.score), "R: play again  Q: quit"}
		color = core.ColorGreen
	case g.gameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Final score: %d", g.score), "R: restart  Q: quit"}
		color = core.ColorRed
	case g.levelCleared:
		lines = []string{"LEVEL CLEARED!"}
		if next, ok := g.cfg.Level(g.levelIndex + 1); ok {
			lines = append(lines, "Next: "+next.Name)
		}
		color = core.ColorGreen
	case g.paused:
		lines = []string{"PAUSED", "P: resume"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2).CenterIn(board)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}
