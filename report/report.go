// Package report renders benchmark aggregates as colored text or
// machine-readable JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/taktdev/takt/bench"
)

// Generate writes the human-readable summary for one result, styled by
// the given palette.
func Generate(w io.Writer, res *bench.Result, p Palette) error {
	if res == nil || res.Iterations == 0 {
		return fmt.Errorf("no samples to report")
	}

	fmt.Fprintf(w, "\n%s%s\n", p.Header.Render("Benchmark: "), res.Command)

	fmt.Fprintf(w, "  %s %s   %s %s\n",
		p.Mean.Render(fmt.Sprintf("μ=%.3f ms", res.MeanMs)),
		p.Dim.Render("(mean)"),
		p.StdDev.Render(fmt.Sprintf("σ=%.3f ms", res.StdDevMs)),
		p.Dim.Render("(std)"),
	)

	fmt.Fprintf(w, "  %s %s   %s %s\n",
		p.Min.Render(fmt.Sprintf("↓ %.3f ms", res.MinMs)),
		p.Dim.Render("(min)"),
		p.Max.Render(fmt.Sprintf("↑ %.3f ms", res.MaxMs)),
		p.Dim.Render("(max)"),
	)

	fmt.Fprintf(w, "  %s %s    %s\n",
		p.Rate.Render(fmt.Sprintf("λ=%.0f ops/s", res.OpsPerSec())),
		p.Dim.Render("(rate)"),
		p.Dim.Render(fmt.Sprintf("(%d iters)", res.Iterations)),
	)

	fmt.Fprintf(w, "  %s\n\n", p.Dim.Render(fmt.Sprintf(
		"med=%.3f ms  p95=%.3f ms  p99=%.3f ms",
		res.MedianMs, res.P95Ms, res.P99Ms,
	)))

	return nil
}

// GenerateJSON writes the machine-readable result to w. Duration fields
// carry a fixed three decimals; ops_per_sec is rounded to a whole
// number. These precisions are part of the output contract.
func GenerateJSON(w io.Writer, res *bench.Result) error {
	payload := struct {
		Command    string      `json:"command"`
		MeanMs     json.Number `json:"mean_ms"`
		StdDevMs   json.Number `json:"std_dev_ms"`
		MinMs      json.Number `json:"min_ms"`
		MaxMs      json.Number `json:"max_ms"`
		OpsPerSec  json.Number `json:"ops_per_sec"`
		Iterations int         `json:"iterations"`
	}{
		Command:    res.Command,
		MeanMs:     fixed(res.MeanMs, 3),
		StdDevMs:   fixed(res.StdDevMs, 3),
		MinMs:      fixed(res.MinMs, 3),
		MaxMs:      fixed(res.MaxMs, 3),
		OpsPerSec:  fixed(res.OpsPerSec(), 0),
		Iterations: res.Iterations,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(payload)
}

// fixed renders a float with an exact decimal count, preserved verbatim
// through json.Number.
func fixed(v float64, prec int) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', prec, 64))
}
