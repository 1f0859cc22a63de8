package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedayman15069/Agar/internal/core"
	"github.com/mohamedayman15069/Agar/internal/env"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawObservation renders a full observation into the screen buffer:
// one HUD line at the top, then the arena scaled into a bordered box.
func drawObservation(s *core.Screen, obs env.FullObservation, arenaSize float64,
	target core.Vec2, steps int, reward float64) {

	s.Clear()

	border := core.NewRect(0, 1, s.Width(), s.Height()-1)
	s.DrawBox(border, core.ColorGray)

	innerW := border.W - 2
	innerH := border.H - 2
	if innerW <= 0 || innerH <= 0 {
		return
	}

	toScreen := func(x, y float64) (int, int) {
		sx := border.X + 1 + int(x/arenaSize*float64(innerW))
		sy := border.Y + 1 + int(y/arenaSize*float64(innerH))
		return core.Clamp(sx, border.X+1, border.Right()-2),
			core.Clamp(sy, border.Y+1, border.Bottom()-2)
	}

	for _, p := range obs.Pellets {
		x, y := toScreen(p.X, p.Y)
		s.Set(x, y, '·', core.ColorGreen)
	}
	for _, f := range obs.Foods {
		x, y := toScreen(f.X, f.Y)
		s.Set(x, y, '•', core.ColorOrange)
	}
	for _, v := range obs.Viruses {
		x, y := toScreen(v.X, v.Y)
		s.Set(x, y, '*', core.ColorCyan)
	}
	for _, other := range obs.Others {
		for _, c := range other {
			x, y := toScreen(c.X, c.Y)
			s.Set(x, y, 'x', core.ColorRed)
		}
	}

	var mass float64
	for _, c := range obs.Agent {
		mass += c.Mass
		x, y := toScreen(c.X, c.Y)
		s.Set(x, y, 'O', core.ColorBrightBlue)
	}

	tx, ty := toScreen(target.X, target.Y)
	s.Set(tx, ty, '+', core.ColorYellow)

	hud := fmt.Sprintf(" steps %d  mass %.0f  reward %.1f ", steps, mass, reward)
	s.DrawText(1, 0, hud, core.ColorWhite)
}
