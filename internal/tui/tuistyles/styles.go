package tuistyles

import "github.com/charmbracelet/lipgloss"

// Color palette. Shielded/taxed match the original chart colors
// (blue for shielded, amber for taxed).
var (
	ColorPrimary    = lipgloss.Color("39")  // blue
	ColorAccent     = lipgloss.Color("213") // pink
	ColorSuccess    = lipgloss.Color("42")  // green
	ColorDanger     = lipgloss.Color("196") // red
	ColorInfo       = lipgloss.Color("45")  // cyan
	ColorForeground = lipgloss.Color("252")
	ColorMuted      = lipgloss.Color("241")
	ColorBorder     = lipgloss.Color("238")

	ColorShielded = lipgloss.Color("33")  // blue bars
	ColorTaxed    = lipgloss.Color("214") // amber bars
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)
)
