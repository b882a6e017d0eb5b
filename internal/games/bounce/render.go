package bounce

import (
	"fmt"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	HUDRule    = '─'
)

// hudRows is the number of rows above the field.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	g.renderHUD(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)

	if g.phase == StateGameOver {
		g.renderGameOver(dst)
	}
}

// renderHUD draws score, lives and high score above the field.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives), core.ColorRed)

	best := fmt.Sprintf("High Score: %d", g.highScore)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)

	dst.DrawHLine(0, 1, dst.Width(), HUDRule)
}

// cellX maps a world x coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	col := int(x / g.bounds.Width * float64(dst.Width()))
	return core.Clamp(col, 0, dst.Width()-1)
}

// cellY maps a world y coordinate to a screen row below the HUD.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	rows := dst.Height() - hudRows
	row := hudRows + int(y/g.bounds.Height*float64(rows))
	return core.Clamp(row, hudRows, dst.Height()-1)
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	x0 := g.cellX(dst, g.paddle.X)
	x1 := g.cellX(dst, g.paddle.X+g.paddle.Width)
	y := g.cellY(dst, g.paddle.Y)

	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y, PaddleChar, g.paddle.Color)
	}
}

// renderBalls draws all balls.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.balls {
		dst.SetColored(g.cellX(dst, b.X), g.cellY(dst, b.Y), BallChar, b.Color)
	}
}

// renderGameOver draws the end-of-game panel over the field.
func (g *Game) renderGameOver(dst *core.Screen) {
	const w, h = 26, 9

	x0 := (dst.Width() - w) / 2
	y0 := max((dst.Height()-h)/2, hudRows)

	dst.FillRect(x0, y0, w, h, ' ')
	dst.DrawBox(x0, y0, w, h)

	dst.DrawTextCentered(y0+1, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(y0+3, fmt.Sprintf("Your Score: %d", g.score), core.ColorWhite)
	if g.newHigh {
		dst.DrawTextCentered(y0+4, fmt.Sprintf("New High Score: %d", g.highScore), core.ColorBrightYellow)
	} else {
		dst.DrawTextCentered(y0+4, fmt.Sprintf("High Score: %d", g.highScore), core.ColorWhite)
	}
	dst.DrawTextCentered(y0+6, "Press R to Restart", core.ColorYellow)
	dst.DrawTextCentered(y0+7, "Press Q to Quit", core.ColorYellow)
}
