package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrTimeout matches any TimeoutError.
	ErrTimeout = errors.New("command timed out")
	// ErrCommand matches any CommandError.
	ErrCommand = errors.New("command failed")
)

// TimeoutError is returned when an external command does not finish in time.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("failed to execute command: '%s' (timed out after %v)", e.Command, e.Timeout)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// CommandError is returned when an external command writes to stderr or exits non-zero.
type CommandError struct {
	Command  string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return fmt.Sprintf("command '%s' failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command '%s' exited with code %d", e.Command, e.ExitCode)
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandResult captures the outcome of one external process.
type CommandResult struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// FormatCommand joins a command and its arguments the way it would be typed.
func FormatCommand(name string, args ...string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
