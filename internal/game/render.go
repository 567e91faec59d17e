package game

import (
	"fmt"

	"github.com/mdanilov/blockfall/internal/core"
)

// hudHeight is the number of screen rows above the playfield.
const hudHeight = 2

// pieceColors maps board color tags to screen colors in the classic
// terminal palette order.
var pieceColors = [numColors + 1]core.Color{
	core.ColorDefault,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorWhite,
}

// Render draws the HUD, the walled playfield and any status overlay.
// Board cells are drawn two runes wide so the field looks square in a
// terminal. Only the visible rows appear; the buffer stays off screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	boxW := 2*g.board.Width() + 2
	boxH := g.board.Height() + 2
	if dst.Width() < boxW || dst.Height() < hudHeight+boxH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	box := core.NewRect((dst.Width()-boxW)/2, hudHeight, boxW, boxH)
	dst.DrawBoxColored(box, core.ColorGray)
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			v := g.board.cells[y+bufferRows][x]
			if v == 0 {
				continue
			}
			c := pieceColors[v]
			dst.SetCell(box.X+1+2*x, box.Y+1+y, '█', c)
			dst.SetCell(box.X+2+2*x, box.Y+1+y, '█', c)
		}
	}

	switch {
	case g.status == StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(0, 0, fmt.Sprintf(" Blockfall - Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box over the playfield.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
