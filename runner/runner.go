// Package runner spawns one child process per call and reports its exit
// status. The child's standard output and standard error are discarded
// so they cannot interleave with the progress display or distort timing
// through terminal I/O.
package runner

import (
	"context"
	"errors"
	"os/exec"
)

// Exit status sentinels. Real exit codes occupy 0-255, so negative
// values are reserved for failures of the spawn itself.
const (
	// ExitSpawnFailure means the OS could not create the child process:
	// executable not found, permission denied, or resource exhaustion.
	ExitSpawnFailure = -1

	// ExitKilled means the child was terminated by a signal, on
	// platforms that report that distinctly; elsewhere the platform's
	// plain exit code is returned instead.
	ExitKilled = -2
)

// Runner executes one child process per call, blocking until the child
// terminates. A failed spawn returns a sentinel status rather than an
// error: a single failed iteration must not abort a long benchmark
// session, and the elapsed time of the attempt is still a valid sample.
type Runner interface {
	Execute(ctx context.Context) int
}

// ExecRunner runs a program directly, without a shell. The program is
// argv[0], resolved through the executable search path, and the child
// inherits the parent's environment.
type ExecRunner struct {
	argv []string
}

// NewExec returns a direct-execution runner for the given argument
// vector. The vector must be non-empty; validating that is the caller's
// job and happens before any benchmark session starts.
func NewExec(argv []string) *ExecRunner {
	return &ExecRunner{argv: argv}
}

// Execute spawns the program and blocks until it exits.
func (r *ExecRunner) Execute(ctx context.Context) int {
	return run(exec.CommandContext(ctx, r.argv[0], r.argv[1:]...))
}

// ShellRunner hands a raw command string to the platform shell, enabling
// pipes and globs at the cost of shell startup overhead added to every
// iteration.
type ShellRunner struct {
	command string
}

// NewShell returns a shell-mode runner for the raw command string.
func NewShell(command string) *ShellRunner {
	return &ShellRunner{command: command}
}

// Execute spawns the shell and blocks until it exits.
func (r *ShellRunner) Execute(ctx context.Context) int {
	return run(shellCommand(ctx, r.command))
}

// run starts the child and waits for it. Stdout and Stderr are left nil
// so os/exec connects them to the null device.
func run(cmd *exec.Cmd) int {
	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return decodeExit(exitErr)
	}

	return ExitSpawnFailure
}
