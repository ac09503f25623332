// Package progress renders an in-place terminal progress line with a
// spinner, a color-graded bar, and a remaining-time estimate.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// DefaultWidth is the bar width in cells when the terminal is wide
// enough, or when the writer is not a terminal at all.
const DefaultWidth = 50

const minWidth = 10

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Bar renders one overwriting terminal line tracking completion toward a
// fixed total. The elapsed-time baseline for the remaining-time estimate
// is captured lazily on the first Update call, not at construction, so
// no estimate is shown before the first item completes.
//
// Bar never fails: a degraded terminal just shows garbled control
// sequences.
type Bar struct {
	out          io.Writer
	palette      Palette
	total        int
	current      int
	width        int
	spinnerIndex int
	startTime    time.Time
	started      bool
}

// NewBar returns a bar for the given total, clamped to the width of the
// terminal behind out when that is detectable.
func NewBar(out io.Writer, total int, palette Palette) *Bar {
	return &Bar{
		out:     out,
		palette: palette,
		total:   total,
		width:   detectWidth(out),
	}
}

// detectWidth leaves room for the spinner, estimate, percentage, and
// counter around the bar itself.
func detectWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok {
		return DefaultWidth
	}

	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth
	}

	width := cols - 40
	if width > DefaultWidth {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}

	return width
}

// Update redraws the line for the given completed count. The spinner
// advances by one frame per call; the remaining-time estimate appears
// only while 0 < count < total, extrapolated linearly from the mean
// per-item pace observed since the first Update.
func (b *Bar) Update(count int) {
	if !b.started {
		b.startTime = time.Now()
		b.started = true
	}

	b.current = count
	fraction := float64(b.current) / float64(b.total)
	pos := int(float64(b.width) * fraction)

	estimate := ""
	if b.current > 0 && b.current < b.total {
		elapsed := time.Since(b.startTime).Seconds()
		pace := elapsed / float64(b.current)
		estimate = formatSeconds(pace * float64(b.total-b.current))
	}

	frame := spinnerFrames[b.spinnerIndex%len(spinnerFrames)]
	b.spinnerIndex++

	var line strings.Builder

	line.WriteString("\r")
	line.WriteString(b.palette.Spinner.Render(frame))
	line.WriteString(" ")

	if estimate != "" {
		line.WriteString(b.palette.Label.Render("ETA "))
		line.WriteString(b.palette.Estimate.Render(estimate))
		line.WriteString("  ")
	}

	line.WriteString(b.palette.Bracket.Render("["))

	for i := 0; i < b.width; i++ {
		switch {
		case i < pos:
			line.WriteString(b.bandStyle(i).Render("█"))
		case i == pos:
			line.WriteString(b.bandStyle(i).Render("▓"))
		default:
			line.WriteString(b.palette.Empty.Render("░"))
		}
	}

	line.WriteString(b.palette.Bracket.Render("]"))
	line.WriteString(" ")
	line.WriteString(b.palette.Percent.Render(fmt.Sprintf("%3d%%", int(fraction*100))))
	line.WriteString(b.palette.Label.Render(fmt.Sprintf(" (%d/%d)", b.current, b.total)))

	fmt.Fprint(b.out, line.String())
}

// Finish forces one final full redraw and terminates the line.
func (b *Bar) Finish() {
	b.Update(b.total)
	fmt.Fprintln(b.out)
}

// Clear blanks out the progress line.
func (b *Bar) Clear() {
	fmt.Fprintf(b.out, "\r%s\r", strings.Repeat(" ", b.width+60))
}

// EraseLines moves the cursor up n terminal lines, erasing each one.
// Used to remove phase headers and the finished bar before the summary
// is printed.
func EraseLines(w io.Writer, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprint(w, "\x1b[F\x1b[K")
	}
}

// formatSeconds renders a duration in the most natural unit.
func formatSeconds(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.1fs", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm %ds", int(seconds/60), int(seconds)%60)
	default:
		return fmt.Sprintf("%dh %dm", int(seconds/3600), int(seconds/60)%60)
	}
}
