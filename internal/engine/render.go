package engine

import (
	"fmt"

	"github.com/mohamedayman15069/Agar/internal/core"
)

// DrawTo renders the current world into a screen buffer. The arena is
// scaled to fit inside a border, with one HUD line at the top.
func (w *World) DrawTo(s *core.Screen) {
	s.Clear()

	border := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(border, core.ColorGray)

	innerW := border.W - 2
	innerH := border.H - 2
	if innerW <= 0 || innerH <= 0 {
		return
	}

	toScreen := func(p core.Vec2) (int, int) {
		x := border.X + 1 + int(p.X/w.arenaSize*float64(innerW))
		y := border.Y + 1 + int(p.Y/w.arenaSize*float64(innerH))
		return core.Clamp(x, border.X+1, border.Right()-2),
			core.Clamp(y, border.Y+1, border.Bottom()-2)
	}

	for _, p := range w.pellets {
		x, y := toScreen(p.Pos)
		s.Set(x, y, '·', core.ColorGreen)
	}
	for _, f := range w.foods {
		x, y := toScreen(f.Pos)
		s.Set(x, y, '•', core.ColorOrange)
	}
	for _, v := range w.viruses {
		x, y := toScreen(v.Pos)
		s.Set(x, y, '*', core.ColorCyan)
	}
	for _, bot := range w.bots {
		for i := range bot.Cells {
			x, y := toScreen(bot.Cells[i].Pos)
			s.Set(x, y, 'x', core.ColorRed)
		}
	}
	for i := range w.agent.Cells {
		x, y := toScreen(w.agent.Cells[i].Pos)
		s.Set(x, y, 'O', core.ColorBrightBlue)
	}

	hud := fmt.Sprintf(" tick %d  mass %.0f  bots %d ", w.tick, w.agent.Mass(), len(w.bots))
	s.DrawText(1, 0, hud, core.ColorWhite)
}

// Render draws the world to stdout. This is the engine's own rendering
// used by the environment's human render mode.
func (w *World) Render() {
	s := core.NewScreen(80, 24)
	w.DrawTo(s)
	fmt.Println(s.String())
}
