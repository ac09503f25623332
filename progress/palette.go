package progress

import "github.com/charmbracelet/lipgloss"

// Palette holds the styles used to render the progress line. It is a
// plain value injected at construction, so no global formatting state
// exists. The zero Palette renders unstyled text.
type Palette struct {
	Spinner  lipgloss.Style
	Label    lipgloss.Style
	Estimate lipgloss.Style
	Bracket  lipgloss.Style
	Empty    lipgloss.Style
	Percent  lipgloss.Style

	// Gradient colors the filled bar cells by horizontal position, in
	// six fixed bands from left to right.
	Gradient [6]lipgloss.Style
}

// DefaultPalette returns the standard bright ANSI palette.
func DefaultPalette() Palette {
	return Palette{
		Spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Estimate: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Bracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Percent:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Gradient: [6]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // bright red
			lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // bright yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // bright green
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // bright cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // bright blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // bright magenta
		},
	}
}

// PlainPalette returns a palette that applies no styling, for dumb or
// no-color terminals.
func PlainPalette() Palette {
	return Palette{}
}

// bandStyle maps a horizontal cell position to one of the six gradient
// bands. The mapping depends only on position, never on sample values.
func (b *Bar) bandStyle(i int) lipgloss.Style {
	ratio := float64(i) / float64(b.width)

	switch {
	case ratio < 0.16:
		return b.palette.Gradient[0]
	case ratio < 0.33:
		return b.palette.Gradient[1]
	case ratio < 0.50:
		return b.palette.Gradient[2]
	case ratio < 0.66:
		return b.palette.Gradient[3]
	case ratio < 0.83:
		return b.palette.Gradient[4]
	default:
		return b.palette.Gradient[5]
	}
}
