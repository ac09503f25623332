package timing

// Profiler accumulates elapsed-time samples under named sections. It is
// not safe for concurrent use; callers are expected to drive it from a
// single goroutine.
type Profiler struct {
	sections map[string][]float64
	active   map[string]*Stopwatch
}

// NewProfiler returns an empty Profiler.
func NewProfiler() *Profiler {
	return &Profiler{
		sections: make(map[string][]float64),
		active:   make(map[string]*Stopwatch),
	}
}

// Start opens a timed section. Starting an already-open section restarts
// its stopwatch.
func (p *Profiler) Start(name string) {
	sw := &Stopwatch{}
	sw.Start()
	p.active[name] = sw
}

// Stop closes a section and records its elapsed milliseconds. Stopping a
// section that was never started is a no-op.
func (p *Profiler) Stop(name string) {
	sw, ok := p.active[name]
	if !ok {
		return
	}

	sw.Stop()
	p.sections[name] = append(p.sections[name], sw.ElapsedMilliseconds())
	delete(p.active, name)
}

// Add records an externally measured duration, in milliseconds, under a
// section.
func (p *Profiler) Add(name string, ms float64) {
	p.sections[name] = append(p.sections[name], ms)
}

// Samples returns the recorded samples for a section, in record order.
func (p *Profiler) Samples(name string) []float64 {
	return p.sections[name]
}

// Total returns the summed milliseconds recorded under a section.
func (p *Profiler) Total(name string) float64 {
	var sum float64
	for _, ms := range p.sections[name] {
		sum += ms
	}

	return sum
}

// Clear drops all recorded and in-flight sections.
func (p *Profiler) Clear() {
	p.sections = make(map[string][]float64)
	p.active = make(map[string]*Stopwatch)
}
