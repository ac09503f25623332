package bench

import "github.com/taktdev/takt/stats"

// Result is the read-only aggregate of one measured session, computed
// once after every sample has been collected. All durations are in
// milliseconds.
type Result struct {
	Command    string
	Iterations int
	MeanMs     float64
	StdDevMs   float64
	MinMs      float64
	MaxMs      float64
	MedianMs   float64
	P95Ms      float64
	P99Ms      float64
}

func newResult(command string, samples []float64) *Result {
	return &Result{
		Command:    command,
		Iterations: len(samples),
		MeanMs:     stats.Mean(samples),
		StdDevMs:   stats.StdDev(samples),
		MinMs:      stats.Min(samples),
		MaxMs:      stats.Max(samples),
		MedianMs:   stats.Median(samples),
		P95Ms:      stats.Percentile(samples, 95),
		P99Ms:      stats.Percentile(samples, 99),
	}
}

// OpsPerSec returns the throughput implied by the mean (1000 / mean ms),
// or 0 when the mean itself is 0.
func (r *Result) OpsPerSec() float64 {
	if r.MeanMs <= 0 {
		return 0
	}

	return 1000 / r.MeanMs
}
