package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var plain = lipgloss.NewStyle()

// StyleFor returns the foreground style a cell of color c is rendered with.
func StyleFor(c core.Color) lipgloss.Style {
	n, ok := c.Palette()
	if !ok {
		return plain
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(n)))
}

// RenderScreen turns a painted buffer into terminal output. Each row is cut
// into runs of one color so a style is applied once per run, not per cell.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	style := func(c core.Color) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = StyleFor(c)
			styles[c] = st
		}
		return st
	}

	lines := make([]string, s.Height())
	var line, run strings.Builder
	for y := range lines {
		line.Reset()
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			line.WriteString(style(color).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
