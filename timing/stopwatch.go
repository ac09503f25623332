// Package timing provides a monotonic stopwatch and a named-section
// profiler for wall-clock measurement.
package timing

import "time"

// Stopwatch measures wall-clock time between Start and Stop. Readings
// come from the runtime's monotonic clock, so they are immune to
// wall-clock adjustments. Elapsed values may be read while the stopwatch
// is still running, which returns time since Start. The zero value is
// ready to use.
type Stopwatch struct {
	startTime time.Time
	endTime   time.Time
	running   bool
	started   bool
}

// Start begins (or restarts) the measurement.
func (s *Stopwatch) Start() {
	s.startTime = time.Now()
	s.running = true
	s.started = true
}

// Stop freezes the measurement. Elapsed readings after Stop return the
// Start-to-Stop interval.
func (s *Stopwatch) Stop() {
	s.endTime = time.Now()
	s.running = false
}

// Reset returns the stopwatch to its initial state. Elapsed readings
// after Reset are zero until Start is called again.
func (s *Stopwatch) Reset() {
	s.running = false
	s.started = false
}

// Running reports whether the stopwatch has been started and not yet
// stopped.
func (s *Stopwatch) Running() bool {
	return s.running
}

func (s *Stopwatch) elapsed() time.Duration {
	if !s.started {
		return 0
	}

	if s.running {
		return time.Since(s.startTime)
	}

	return s.endTime.Sub(s.startTime)
}

// ElapsedSeconds returns the elapsed time in seconds.
func (s *Stopwatch) ElapsedSeconds() float64 {
	return s.elapsed().Seconds()
}

// ElapsedMilliseconds returns the elapsed time in milliseconds with
// fractional precision preserved.
func (s *Stopwatch) ElapsedMilliseconds() float64 {
	return float64(s.elapsed().Nanoseconds()) / 1e6
}

// ElapsedMicroseconds returns the elapsed time in microseconds.
func (s *Stopwatch) ElapsedMicroseconds() float64 {
	return float64(s.elapsed().Nanoseconds()) / 1e3
}

// ElapsedNanoseconds returns the elapsed time in nanoseconds.
func (s *Stopwatch) ElapsedNanoseconds() float64 {
	return float64(s.elapsed().Nanoseconds())
}
