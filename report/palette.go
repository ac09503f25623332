package report

import "github.com/charmbracelet/lipgloss"

// Palette holds the styles for text rendering. It is a plain value
// injected by the caller; the zero Palette renders unstyled text, which
// is the no-color mode.
type Palette struct {
	Header  lipgloss.Style
	Dim     lipgloss.Style
	Mean    lipgloss.Style
	StdDev  lipgloss.Style
	Min     lipgloss.Style
	Max     lipgloss.Style
	Rate    lipgloss.Style
	Success lipgloss.Style
}

// DefaultPalette returns the standard bright ANSI palette.
func DefaultPalette() Palette {
	return Palette{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Mean:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		StdDev:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Min:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Max:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Rate:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// PlainPalette returns a palette that applies no styling.
func PlainPalette() Palette {
	return Palette{}
}
