package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	ColorFgMuted = lipgloss.Color("#636B78")
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBorder  = lipgloss.Color("#3F4451")
)

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	BoardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder)

	// Board cells
	HeadStyle  = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	BodyStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
	FoodStyle  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	EmptyStyle = lipgloss.NewStyle().Foreground(ColorFgMuted)

	// Status lines
	BannerStyle   = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	GameOverStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorFgMuted)
)
