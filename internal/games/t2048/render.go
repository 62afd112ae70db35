package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 5 // Minimum width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// cellWidthFor widens cells when a tile no longer fits.
func cellWidthFor(b Board) int {
	return max(cellWidth, len(strconv.Itoa(MaxTile(b)))+1)
}

// boardRect returns the on-screen area of the grid, borders included.
func (g *Game) boardRect() core.Rect {
	size := g.state.Tiles.Size()
	cw := cellWidthFor(g.state.Tiles)
	w := size*cw + 1
	h := size*cellHeight + 1
	return core.NewRect((g.screenW-w)/2, hudHeight+1, w, h)
}

// minScreenSize returns the smallest screen that fits the board and HUD.
func (g *Game) minScreenSize() (int, int) {
	size := g.cfg.Board.Size
	if g.state.Tiles.Size() > 0 {
		size = g.state.Tiles.Size()
	}
	w := size*cellWidthFor(g.state.Tiles) + 1
	h := size*cellHeight + 1
	// Room for the HUD line "Level 10/10  Target: 8192" and the controls line
	return max(w, 28) + 2, hudHeight + 1 + h + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	dst.DrawTextCenteredColor(board.Bottom()+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColor(y, "Window too small", core.ColorRed)
	minW, minH := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the score, best score and level info.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	left := min(board.X, (g.screenW-28)/2)
	right := max(board.Right(), left+28)
	width := right - left

	title := "2048"
	dst.DrawTextColor(left+(width-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(left, 1, "Score: "+FormatScore(g.state.Score))
	best := "Best: " + FormatScore(g.state.BestScore)
	dst.DrawTextColor(right-len(best), 1, best, core.ColorCyan)

	// Level/Target info (campaign) or Max tile (endless)
	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, LevelCount(), g.currentTarget)
	} else {
		info = fmt.Sprintf("Endless  Max: %d  Moves: %d", MaxTile(g.state.Tiles), g.state.MoveCount)
	}
	if g.winBanner > 0 {
		info = "2048 reached! Keep going"
		dst.DrawTextColor(left+(width-len(info))/2, 2, info, core.ColorBrightGreen)
		return
	}
	dst.DrawTextColor(left+(width-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the N×N grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	size := g.state.Tiles.Size()
	cw := cellWidthFor(g.state.Tiles)

	for y := range size + 1 {
		for x := range size + 1 {
			px := r.X + x*cw
			py := r.Y + y*cellHeight
			dst.SetColor(px, py, gridCorner(x, y, size), core.ColorGray)

			// Horizontal line to the right
			if x < size {
				for i := 1; i < cw; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}

			// Vertical line down
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for row := range size {
		for col := range size {
			t := g.state.Tiles.At(row, col)
			if t.IsEmpty() {
				continue
			}

			cell := core.NewRect(r.X+col*cw+1, r.Y+row*cellHeight+1, cw-1, cellHeight-1)
			val := strconv.Itoa(t.Value)
			color := tileColor(t.Value)

			if h, ok := g.highlightAt(row, col); ok {
				color = highlightColor(h)
				if h.kind == HintMerged {
					dst.FillRectColor(cell, ' ', color)
				}
			}

			pad := max(0, (cell.W-len(val))/2)
			dst.DrawTextColor(cell.X+pad, cell.Y, val, color)
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// tileColor maps a tile value to its palette color.
func tileColor(value int) core.Color {
	switch {
	case value <= 2:
		return core.ColorWhite
	case value == 4:
		return core.ColorBrightWhite
	case value == 8:
		return core.ColorOrange
	case value == 16:
		return core.ColorBrightRed
	case value == 32:
		return core.ColorRed
	case value == 64:
		return core.ColorMagenta
	case value <= 256:
		return core.ColorYellow
	case value <= 1024:
		return core.ColorBrightYellow
	case value == 2048:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightCyan
	}
}

// highlightColor fades a highlight back toward the normal palette.
func highlightColor(h highlight) core.Color {
	if h.progress() > 0.75 {
		return core.ColorDefault
	}
	if h.kind == HintNew {
		return core.ColorBrightGreen
	}
	return core.ColorBrightMagenta
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
		return
	}

	if g.state.IsGameOver {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.state.Tiles))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredAt(centerX, centerY, maxLen+4, len(lines)+2)

	// Clear area behind overlay
	dst.FillRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	inner := box.Inset(1)
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, inner.Y+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
