package bench

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taktdev/takt/runner"
	"github.com/taktdev/takt/timing"
)

// Reporter receives progress for one phase. The warmup and measured
// phases are reported as two independent sessions; each reporter is
// driven from its first Update through Finish exactly once.
type Reporter interface {
	Update(count int)
	Finish()
}

// Session runs one benchmark from warmup through aggregation. Sessions
// are single-use and strictly sequential: exactly one child process
// exists at any time, and Run blocks on each child before starting the
// next. Construct a new Session to run again.
type Session struct {
	cfg    Config
	run    runner.Runner
	logger *slog.Logger

	// Optional per-phase reporters; nil disables reporting for that
	// phase.
	WarmupProgress  Reporter
	MeasureProgress Reporter

	done bool
}

// NewSession wires a validated configuration to a runner. The session
// depends only on the Runner interface, never on a concrete execution
// mode.
func NewSession(cfg Config, r runner.Runner, logger *slog.Logger) *Session {
	return &Session{cfg: cfg, run: r, logger: logger}
}

// Run executes the warmup phase, then exactly Iterations measured runs,
// then reduces the samples into a Result. The stopwatch brackets only
// the Execute call, so spawn and teardown of the measured child are part
// of each sample while bookkeeping between iterations is not.
//
// Every measured iteration yields exactly one sample, including
// iterations whose spawn failed or whose child died abnormally: the
// session measures invocation latency, not the command's success. There
// is no timeout; a child that never exits blocks the session.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	if s.done {
		return nil, errors.New("bench: session already run")
	}
	s.done = true

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	prof := timing.NewProfiler()

	prof.Start("warmup")

	for i := 0; i < s.cfg.Warmup; i++ {
		status := s.run.Execute(ctx)
		if status == runner.ExitSpawnFailure {
			s.logger.Warn("warmup spawn failed", slog.Int("iteration", i+1))
		}

		if s.WarmupProgress != nil {
			s.WarmupProgress.Update(i + 1)
		}
	}

	prof.Stop("warmup")

	if s.WarmupProgress != nil && s.cfg.Warmup > 0 {
		s.WarmupProgress.Finish()
	}

	samples := make([]float64, 0, s.cfg.Iterations)

	prof.Start("measure")

	for i := 0; i < s.cfg.Iterations; i++ {
		var sw timing.Stopwatch

		sw.Start()
		status := s.run.Execute(ctx)
		sw.Stop()

		samples = append(samples, sw.ElapsedMilliseconds())

		switch status {
		case runner.ExitSpawnFailure:
			s.logger.Warn("spawn failed", slog.Int("iteration", i+1))
		case runner.ExitKilled:
			s.logger.Warn("command terminated by signal",
				slog.Int("iteration", i+1))
		}

		if s.MeasureProgress != nil {
			s.MeasureProgress.Update(i + 1)
		}
	}

	prof.Stop("measure")

	if s.MeasureProgress != nil {
		s.MeasureProgress.Finish()
	}

	s.logger.Debug("phases complete",
		slog.Float64("warmup_ms", prof.Total("warmup")),
		slog.Float64("measure_ms", prof.Total("measure")),
		slog.Int("samples", len(samples)),
	)

	return newResult(s.cfg.Command.Text(), samples), nil
}
