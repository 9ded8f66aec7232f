package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorUser    = lipgloss.Color("#83a598")
	colorPal     = lipgloss.Color("#8ec07c")
	colorWarn    = lipgloss.Color("#fb4934")
	colorDim     = lipgloss.Color("#928374")
	colorHeading = lipgloss.Color("#fe8019")
)

type styles struct {
	user    lipgloss.Style
	pal     lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
	heading lipgloss.Style
}

func newStyles(enabled bool) styles {
	if !enabled {
		plain := lipgloss.NewStyle()
		return styles{user: plain, pal: plain, warn: plain, dim: plain, heading: plain}
	}
	return styles{
		user:    lipgloss.NewStyle().Foreground(colorUser).Bold(true),
		pal:     lipgloss.NewStyle().Foreground(colorPal).Bold(true),
		warn:    lipgloss.NewStyle().Foreground(colorWarn).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(colorDim),
		heading: lipgloss.NewStyle().Foreground(colorHeading).Bold(true),
	}
}
