// Package stats provides pure statistical reductions over sequences of
// numeric samples. Functions never mutate their input, and reordering
// the input never changes a result.
package stats

import (
	"math"
	"slices"
)

// Number covers the built-in numeric types samples may arrive in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of all values as a float64.
func Sum[T Number](values []T) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}

	return sum
}

// Mean returns the arithmetic average, or 0 for an empty sequence.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	return Sum(values) / float64(len(values))
}

// Median returns the middle value of a sorted copy of the sequence. For
// an even count it averages the two central elements. Empty input yields
// 0.
func Median[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
	}

	return float64(sorted[mid])
}

// Variance returns the population variance (divided by N, not N-1).
// Sequences shorter than 2 have no defined spread and yield 0.
func Variance[T Number](values []T) float64 {
	if len(values) < 2 {
		return 0
	}

	avg := Mean(values)

	var sum float64

	for _, v := range values {
		diff := float64(v) - avg
		sum += diff * diff
	}

	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, or 0 for sequences
// shorter than 2.
func StdDev[T Number](values []T) float64 {
	return math.Sqrt(Variance(values))
}

// Min returns the smallest value, or the type's zero value for an empty
// sequence.
func Min[T Number](values []T) T {
	var m T
	if len(values) == 0 {
		return m
	}

	m = values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest value, or the type's zero value for an empty
// sequence.
func Max[T Number](values []T) T {
	var m T
	if len(values) == 0 {
		return m
	}

	m = values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// Percentile returns the p-th percentile of the sequence using linear
// interpolation between closest ranks: index = p/100 * (n-1), with the
// fractional part weighting the two neighbors. p is clamped to [0, 100].
// Empty input yields 0.
func Percentile[T Number](values []T, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	index := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return float64(sorted[lower])
	}

	weight := index - float64(lower)

	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// Range returns max - min, or the type's zero value for an empty
// sequence.
func Range[T Number](values []T) T {
	if len(values) == 0 {
		var zero T
		return zero
	}

	return Max(values) - Min(values)
}
