// Package meminfo samples resident-set-size usage of the current
// process and of its waited-for children.
package meminfo

import "fmt"

// Usage holds RSS readings in kilobytes. Fields are zero on platforms
// without a supported sampling path; callers should treat zero as "not
// available" and omit the reading.
type Usage struct {
	PeakRSSKB      uint64 // high-water mark of this process
	CurrentRSSKB   uint64 // current resident set of this process
	ChildPeakRSSKB uint64 // high-water mark among waited-for children
}

// Snapshot returns the current usage readings.
func Snapshot() Usage {
	return snapshot()
}

// FormatKB renders a kilobyte count in a human-readable unit.
func FormatKB(kb uint64) string {
	switch {
	case kb < 1024:
		return fmt.Sprintf("%d KB", kb)
	case kb < 1024*1024:
		return fmt.Sprintf("%.2f MB", float64(kb)/1024)
	default:
		return fmt.Sprintf("%.2f GB", float64(kb)/(1024*1024))
	}
}
