package tui

import (
	"strings"

	"github.com/Avyukt27/Scoundrel-TUI/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same role and attributes to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same look
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Role != start.Role || cell.Attr != start.Attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(start.Role, start.Attr).Render(run.String()))
		}
	}
	return sb.String()
}
