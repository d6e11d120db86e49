package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphPlay    = "▶"
	glyphPause   = "❚❚"
	glyphRefresh = "↻"
)

// styles is the set of lipgloss styles derived from a Theme.
type styles struct {
	title    lipgloss.Style
	button   lipgloss.Style
	status   lipgloss.Style
	running  lipgloss.Style
	finished lipgloss.Style
	hint     lipgloss.Style
	help     lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title).
			MarginBottom(1),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Button).
			Padding(0, 3),
		status:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		finished: lipgloss.NewStyle().Bold(true).Foreground(t.TextPulse),
		hint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Foreground(t.Muted).
			Padding(0, 2),
		barFull:  lipgloss.NewStyle().Foreground(t.Ring),
		barEmpty: lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// progressBar renders fraction of width as filled cells.
func (s styles) progressBar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return s.barFull.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled))
}
