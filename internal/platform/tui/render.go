package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/birdfeed/internal/core"
)

// Handheld greens, lightest first.
var shadeColors = [4]lipgloss.Color{
	core.ShadeWhite: lipgloss.Color("#9BBC0F"),
	core.ShadeLight: lipgloss.Color("#8BAC0F"),
	core.ShadeDark:  lipgloss.Color("#306230"),
	core.ShadeBlack: lipgloss.Color("#0F380F"),
}

// Theme contains the styles used to draw the game and its chrome.
type Theme struct {
	Cells  [4]lipgloss.Style // indexed by core.Shade
	Frame  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Title  lipgloss.Style
	Dim    lipgloss.Style
	Active lipgloss.Style
}

// NewTheme builds the styles for a renderer. Over SSH each session has its
// own renderer so color support is detected per client.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	paper := shadeColors[core.ShadeWhite]

	var t Theme
	for s, c := range shadeColors {
		t.Cells[s] = r.NewStyle().Foreground(c).Background(paper)
	}
	t.Cells[core.ShadeBlack] = t.Cells[core.ShadeBlack].Bold(true)

	t.Frame = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(shadeColors[core.ShadeDark])
	t.Status = r.NewStyle().Foreground(shadeColors[core.ShadeLight])
	t.Help = r.NewStyle().Foreground(lipgloss.Color("241"))
	t.Title = r.NewStyle().Bold(true).Foreground(shadeColors[core.ShadeWhite])
	t.Dim = r.NewStyle().Foreground(lipgloss.Color("241"))
	t.Active = r.NewStyle().
		Bold(true).
		Foreground(shadeColors[core.ShadeBlack]).
		Background(shadeColors[core.ShadeWhite]).
		Padding(0, 1)
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same shade to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			shade := s.GetCell(x, y).Shade

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Shade != shade {
					break
				}
				r := cell.Rune
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
				x++
			}

			style := theme.Cells[core.ShadeWhite]
			if int(shade) < len(theme.Cells) {
				style = theme.Cells[shade]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
