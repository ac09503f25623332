// Package bench drives the warmup and measured phases of a benchmark
// session and reduces the collected samples into an aggregate result.
package bench

import (
	"errors"
	"strings"
)

// Configuration errors. These are the only failures the engine surfaces
// to the process level; anything that goes wrong inside a measured
// iteration is absorbed as a sample instead.
var (
	ErrEmptyCommand  = errors.New("bench: empty command")
	ErrBadIterations = errors.New("bench: iterations must be at least 1")
	ErrBadWarmup     = errors.New("bench: warmup must be non-negative")
)

// Command identifies what to benchmark: an argument vector for direct
// execution, or the raw string handed verbatim to the shell when Shell
// is set. Raw always carries the display form.
type Command struct {
	Argv  []string
	Raw   string
	Shell bool
}

// Text returns the display form of the command.
func (c Command) Text() string {
	if !c.Shell && c.Raw == "" {
		return strings.Join(c.Argv, " ")
	}

	return c.Raw
}

// Config holds one session's resolved inputs. It is created once from
// validated user input and treated as immutable for the whole run.
type Config struct {
	Warmup     int
	Iterations int
	Command    Command
}

// Validate rejects bad configurations before any process is spawned. In
// particular a command that tokenized to nothing is a fatal error, never
// a silent no-op.
func (c Config) Validate() error {
	if c.Warmup < 0 {
		return ErrBadWarmup
	}

	if c.Iterations < 1 {
		return ErrBadIterations
	}

	if c.Command.Shell {
		if strings.TrimSpace(c.Command.Raw) == "" {
			return ErrEmptyCommand
		}
	} else if len(c.Command.Argv) == 0 {
		return ErrEmptyCommand
	}

	return nil
}
