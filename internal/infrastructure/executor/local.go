package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// LocalExecutor runs commands on the host shell with the operator's stdio.
type LocalExecutor struct {
	shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLocalExecutor builds a new executor, shell defaults to $SHELL then /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{
		shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Shell returns the interpreter commands are handed to.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Execute implements ports.CommandExecutor. A non-zero exit is returned as an
// execution failure carrying the exit code.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := e.command(ctx, command)
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        true,
		DurationMS: duration,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		failure := &domain.Error{
			Kind:     domain.ErrKindExecutionFailure,
			Message:  fmt.Sprintf("command exited with status %d", result.ExitCode),
			ExitCode: result.ExitCode,
		}
		result.Err = failure
		return result, failure
	}
	if err != nil {
		result.Ran = false
		result.ExitCode = -1
		failure := &domain.Error{
			Kind:     domain.ErrKindExecutionFailure,
			Message:  "could not start " + e.shell,
			Cause:    err,
			ExitCode: 1,
		}
		result.Err = failure
		return result, failure
	}
	return result, nil
}

func (e *LocalExecutor) command(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, e.shell, "-c", command)
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
