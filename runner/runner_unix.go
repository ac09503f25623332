//go:build !windows

package runner

import (
	"context"
	"os/exec"
	"syscall"
)

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	return exec.CommandContext(ctx, "/bin/sh", "-c", command)
}

// decodeExit distinguishes a child killed by a signal from a clean
// non-zero exit.
func decodeExit(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ExitKilled
	}

	return err.ExitCode()
}
