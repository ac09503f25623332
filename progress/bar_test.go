package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBar(total int) (*Bar, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewBar(&buf, total, PlainPalette()), &buf
}

func TestUpdateRendersCounterAndPercent(t *testing.T) {
	bar, buf := newTestBar(10)

	bar.Update(3)

	out := buf.String()
	assert.Contains(t, out, "(3/10)")
	assert.Contains(t, out, "30%")
	assert.Contains(t, out, "[")
	assert.Contains(t, out, "]")
}

func TestNoEstimateAtZero(t *testing.T) {
	bar, buf := newTestBar(10)

	bar.Update(0)

	assert.NotContains(t, buf.String(), "ETA")
}

func TestNoEstimateAtTotal(t *testing.T) {
	bar, buf := newTestBar(10)

	bar.Update(5)
	buf.Reset()
	bar.Update(10)

	assert.NotContains(t, buf.String(), "ETA")
	assert.Contains(t, buf.String(), "100%")
}

func TestEstimateShownMidRun(t *testing.T) {
	bar, buf := newTestBar(10)

	bar.Update(1)
	time.Sleep(2 * time.Millisecond)
	buf.Reset()
	bar.Update(5)

	assert.Contains(t, buf.String(), "ETA")
}

func TestSpinnerAdvancesPerCall(t *testing.T) {
	bar, buf := newTestBar(100)

	bar.Update(1)
	first := buf.String()
	buf.Reset()
	bar.Update(2)
	second := buf.String()

	assert.Contains(t, first, spinnerFrames[0])
	assert.Contains(t, second, spinnerFrames[1])
}

func TestSpinnerWraps(t *testing.T) {
	bar, buf := newTestBar(1000)

	for i := 1; i <= len(spinnerFrames); i++ {
		buf.Reset()
		bar.Update(i)
	}

	buf.Reset()
	bar.Update(len(spinnerFrames) + 1)

	assert.Contains(t, buf.String(), spinnerFrames[0])
}

func TestBarCellCounts(t *testing.T) {
	bar, buf := newTestBar(10)

	bar.Update(5)
	out := buf.String()

	// Half-way on a 50-cell bar: 25 filled, one boundary, 24 empty.
	assert.Equal(t, 25, strings.Count(out, "█"))
	assert.Equal(t, 1, strings.Count(out, "▓"))
	assert.Equal(t, 24, strings.Count(out, "░"))
}

func TestFinishDrawsFullBarAndNewline(t *testing.T) {
	bar, buf := newTestBar(4)

	bar.Update(2)
	buf.Reset()
	bar.Finish()

	out := buf.String()
	assert.Contains(t, out, "(4/4)")
	assert.Contains(t, out, "100%")
	assert.NotContains(t, out, "▓", "a complete bar has no boundary cell")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestClearBlanksLine(t *testing.T) {
	bar, buf := newTestBar(4)

	bar.Update(2)
	buf.Reset()
	bar.Clear()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r"))
	assert.True(t, strings.HasSuffix(out, "\r"))
	assert.Equal(t, strings.Repeat(" ", bar.width+60), strings.Trim(out, "\r"))
}

func TestEraseLines(t *testing.T) {
	var buf bytes.Buffer

	EraseLines(&buf, 3)

	assert.Equal(t, strings.Repeat("\x1b[F\x1b[K", 3), buf.String())
}

func TestNonTerminalWriterGetsDefaultWidth(t *testing.T) {
	bar, _ := newTestBar(10)

	assert.Equal(t, DefaultWidth, bar.width)
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.4, "0.4s"},
		{5, "5.0s"},
		{59.9, "59.9s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
		{3600, "1h 0m"},
		{7290, "2h 1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSeconds(tt.input), "input %v", tt.input)
	}
}
