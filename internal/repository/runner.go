package repository

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/bluecolored/gitversion/internal/domain"
)

// DefaultCommandTimeout bounds every external command.
const DefaultCommandTimeout = 10 * time.Second

// waitDelay caps how long Wait blocks on inherited pipes after the process is killed.
const waitDelay = time.Second

// CommandRunner runs a single external process and captures its output.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (domain.CommandResult, error)
}

// execRunner is the os/exec implementation of CommandRunner.
type execRunner struct {
	// timeout for command execution
	timeout time.Duration
}

// NewCommandRunner creates a CommandRunner bounded by the given timeout.
func NewCommandRunner(timeout time.Duration) CommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &execRunner{timeout: timeout}
}

// Run executes the command and waits for it to finish. A non-zero exit code is
// reported in the result, not as an error; the caller decides what counts as failure.
func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) (domain.CommandResult, error) {
	command := domain.FormatCommand(name, args...)
	parent := ctx
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.CommandResult{
		Command: command,
		Stdout:  strings.TrimSpace(stdout.String()),
		Stderr:  strings.TrimSpace(stderr.String()),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		// A command that exits cleanly as the deadline passes is not a timeout.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			result.TimedOut = true
			return result, &domain.TimeoutError{Command: command, Timeout: r.firedTimeout(parent, start)}
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, nil
		}
		return result, &domain.CommandError{Command: command, Stderr: result.Stderr, ExitCode: result.ExitCode, Err: err}
	}
	return result, nil
}

// firedTimeout reports the bound that expired: the caller's deadline when it is
// tighter than the runner's own timeout.
func (r *execRunner) firedTimeout(parent context.Context, start time.Time) time.Duration {
	if deadline, ok := parent.Deadline(); ok {
		if bound := deadline.Sub(start); bound < r.timeout {
			return bound
		}
	}
	return r.timeout
}
