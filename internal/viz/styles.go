package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles derived from one theme.
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	selected lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	key      lipgloss.Style
	graph    lipgloss.Style
	panel    lipgloss.Style
	canvas   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		subtle:   lipgloss.NewStyle().Foreground(t.Muted),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		running:  lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		paused:   lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		key:      lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		graph:    lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(64),
		canvas: lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 2),
	}
}

// ProgressBar renders a slider track with the knob at fraction f.
func ProgressBar(f float64, width int) string {
	if width < 1 {
		return ""
	}
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	filled := int(f * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// hints renders "key action" pairs separated by two spaces.
func (s styles) hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]) + s.subtle.Render(" "+pairs[i+1]))
	}
	return b.String()
}
