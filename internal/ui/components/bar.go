package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar renders a horizontal meter. fraction is clamped to [0, 1].
func Bar(width int, fraction float64, fill lipgloss.Color) string {
	if width < 1 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	on := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled))
	off := lipgloss.NewStyle().Foreground(barTrack).Render(strings.Repeat("░", width-filled))
	return on + off
}
