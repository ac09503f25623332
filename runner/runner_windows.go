//go:build windows

package runner

import (
	"context"
	"os"
	"os/exec"
)

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	shell := os.Getenv("COMSPEC")
	if shell == "" {
		shell = "cmd.exe"
	}

	return exec.CommandContext(ctx, shell, "/C", command)
}

// decodeExit returns the exit code as-is: Windows has no signal
// semantics to fold into a distinct sentinel.
func decodeExit(err *exec.ExitError) int {
	return err.ExitCode()
}
