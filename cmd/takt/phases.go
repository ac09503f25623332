package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/taktdev/takt/progress"
)

// warmupMarker completes the "Warming up..." line once the warmup phase
// finishes. Warmup iterations are not individually reported.
type warmupMarker struct {
	out io.Writer
	ok  lipgloss.Style
}

func (m *warmupMarker) Update(int) {}

func (m *warmupMarker) Finish() {
	fmt.Fprintf(m.out, "%s\n\n", m.ok.Render("✓"))
}

// measurePhase prints the measurement header before the first bar draw,
// then delegates to the progress bar. Finish leaves the line blank so
// the headers above can be erased cleanly.
type measurePhase struct {
	out     io.Writer
	bar     *progress.Bar
	header  lipgloss.Style
	started bool
}

func (m *measurePhase) Update(count int) {
	if !m.started {
		fmt.Fprintln(m.out, m.header.Render("Benchmarking..."))
		m.started = true
	}

	m.bar.Update(count)
}

func (m *measurePhase) Finish() {
	m.bar.Finish()
	m.bar.Clear()
}
