package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Visual characters for rendering
const (
	GroundTopChar = '▀'
	GroundChar    = '█'
	PadChar       = '═'
	FlameChar     = '▼'
	SideFlameChar = '•'
	LegLeftChar   = '/'
	LegRightChar  = '\\'
)

// noseGlyphs points the vehicle nose by heading, clockwise from straight up.
var noseGlyphs = []rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (min %dx%d)", MinScreenW, MinScreenH), core.ColorRed)
		return
	}
	if g.stage == nil {
		if g.setupErr != nil {
			dst.DrawTextCentered(dst.Height()/2, "Level setup failed", core.ColorRed)
			dst.DrawTextCentered(dst.Height()/2+1, g.setupErr.Error(), core.ColorGray)
		}
		if g.complete {
			g.drawCenteredMessage(dst, "MISSION COMPLETE", fmt.Sprintf("Score: %d", g.board.Score), core.ColorBrightGreen)
		}
		return
	}

	g.drawTerrain(dst)
	g.drawPad(dst)
	g.drawVehicle(dst)
	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case g.gameOver && g.complete:
		g.drawCenteredMessage(dst, "MISSION COMPLETE", fmt.Sprintf("Score: %d  |  Press R to restart", g.board.Score), core.ColorBrightGreen)
	case g.gameOver:
		_, detail := StatusMessage(g.flight)
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", detail, g.board.Score), core.ColorBrightRed)
	case g.flight.Status == StatusLanded:
		title, _ := StatusMessage(g.flight)
		g.drawCenteredMessage(dst, title, fmt.Sprintf("+%d points  |  Enter for next level", g.lastAward), core.ColorBrightGreen)
	case g.flight.Status.IsCrash():
		title, detail := StatusMessage(g.flight)
		g.drawCenteredMessage(dst, title, fmt.Sprintf("%s  |  Enter to retry", detail), core.ColorBrightRed)
	}
}

// cell converts a world point to a screen cell.
func (g *Game) cell(p core.Vec2) (int, int) {
	f := g.cfg.Field
	return int(math.Floor(p.X / f.CellW)), int(math.Floor(p.Y/f.CellH)) + f.HUDRows
}

// drawTerrain fills every column from the profile height down to the bottom.
func (g *Game) drawTerrain(dst *core.Screen) {
	f := g.cfg.Field
	for col := 0; col < dst.Width(); col++ {
		x := (float64(col) + 0.5) * f.CellW
		_, top := g.cell(core.V(x, g.stage.Profile.HeightAt(x)))
		if top < f.HUDRows {
			top = f.HUDRows
		}
		dst.SetColor(col, top, GroundTopChar, core.ColorGray)
		dst.DrawVLine(col, top+1, dst.Height()-top-1, GroundChar, core.ColorGray)
	}
}

func (g *Game) drawPad(dst *core.Screen) {
	left, right := g.stage.Zone.PadSpan()
	x0, row := g.cell(core.V(left, g.stage.Zone.TopY-g.stage.Entities.Pad.Height))
	x1, _ := g.cell(core.V(right, g.stage.Zone.TopY))
	dst.DrawHLine(x0, row, max(1, x1-x0), PadChar, core.ColorBrightYellow)
}

func (g *Game) drawVehicle(dst *core.Screen) {
	body := g.stage.Vehicle()
	cx, cy := g.cell(body.Position())

	color := core.ColorBrightWhite
	switch {
	case g.flight.Status == StatusLanded:
		color = core.ColorBrightGreen
	case g.flight.Status.IsCrash():
		color = core.ColorBrightRed
	}

	dst.SetColor(cx, cy, noseGlyph(body.Angle()), color)
	dst.SetColor(cx-1, cy, LegLeftChar, color)
	dst.SetColor(cx+1, cy, LegRightChar, color)

	if g.engines.Main {
		dst.SetColor(cx, cy+1, FlameChar, core.ColorOrange)
	}
	if g.engines.Left {
		dst.SetColor(cx+2, cy, SideFlameChar, core.ColorOrange)
	}
	if g.engines.Right {
		dst.SetColor(cx-2, cy, SideFlameChar, core.ColorOrange)
	}
}

// noseGlyph picks the arrow closest to the vehicle's heading.
func noseGlyph(angle float64) rune {
	a := NormalizeAngle(angle)
	if a < 0 {
		a += 2 * math.Pi
	}
	idx := int(math.Round(a/(math.Pi/4))) % len(noseGlyphs)
	return noseGlyphs[idx]
}

func (g *Game) drawHUD(dst *core.Screen) {
	t := g.Telemetry()

	fuelColor := core.ColorGreen
	switch {
	case t.Fuel < 10:
		fuelColor = core.ColorBrightRed
	case t.Fuel < 30:
		fuelColor = core.ColorYellow
	}

	speedColor := core.ColorGreen
	if t.Speed >= t.MaxLandingSpeed {
		speedColor = core.ColorBrightRed
	}

	x := 1
	x = drawField(dst, x, "FUEL", fmt.Sprintf("%5.1f", t.Fuel), fuelColor)
	x = drawField(dst, x, "ALT", fmt.Sprintf("%4.0f", t.Altitude), core.ColorWhite)
	x = drawField(dst, x, "H", fmt.Sprintf("%+6.1f", t.HorizontalSpeed), speedColor)
	x = drawField(dst, x, "V", fmt.Sprintf("%+6.1f", t.VerticalSpeed), speedColor)
	x = drawField(dst, x, "LVL", fmt.Sprintf("%d", t.Level), core.ColorCyan)
	x = drawField(dst, x, "LIVES", fmt.Sprintf("%d", t.Lives), core.ColorCyan)
	drawField(dst, x, "SCORE", fmt.Sprintf("%d", t.Score), core.ColorBrightYellow)
}

// drawField draws one "LABEL value" pair and returns the next free column.
func drawField(dst *core.Screen, x int, label, value string, c core.Color) int {
	dst.DrawTextColor(x, 0, label, core.ColorGray)
	x += len(label) + 1
	dst.DrawTextColor(x, 0, value, c)
	return x + len(value) + 2
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawFrame(boxX, boxY, boxW, boxH, c)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawTextColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
