package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Pink     = lipgloss.Color("#f5c2e7")
	Blue     = lipgloss.Color("#89b4fa")
	Red      = lipgloss.Color("#f38ba8")
	Teal     = lipgloss.Color("#94e2d5")
	Overlay  = lipgloss.Color("#7f849c")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Warn  = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// ChantColor maps a preset color name to the palette. Unknown names fall
// back to Peach.
func ChantColor(name string) lipgloss.Color {
	switch name {
	case "orange", "amber":
		return Peach
	case "yellow":
		return Yellow
	case "pink":
		return Pink
	case "blue":
		return Blue
	case "red":
		return Red
	case "emerald":
		return Teal
	case "slate":
		return Overlay
	default:
		return Peach
	}
}
