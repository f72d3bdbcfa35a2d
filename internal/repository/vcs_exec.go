package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bluecolored/gitversion/internal/domain"
	"go.uber.org/zap"
)

const (
	gitBinary    = "git"
	tagRefPrefix = "refs/tags/"
)

// execVcs implements VcsQuery by shelling out to the git binary.
type execVcs struct {
	runner       CommandRunner
	dir          string
	strictStderr bool
	logger       *zap.Logger
}

// NewExecVcs creates a VcsQuery backed by the git CLI. With strictStderr any
// output on stderr fails the command, even when git exits with code 0.
func NewExecVcs(runner CommandRunner, dir string, strictStderr bool, logger *zap.Logger) VcsQuery {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &execVcs{
		runner:       runner,
		dir:          dir,
		strictStderr: strictStderr,
		logger:       logger,
	}
}

// CurrentHash returns the full hash of HEAD.
func (v *execVcs) CurrentHash(ctx context.Context) (string, error) {
	return v.git(ctx, "rev-parse", "--verify", "HEAD")
}

// IsClean reports whether the porcelain status is empty.
func (v *execVcs) IsClean(ctx context.Context) (bool, error) {
	out, err := v.git(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// LastTag returns the nearest tag reachable from HEAD, or "" when there is none.
func (v *execVcs) LastTag(ctx context.Context) (string, error) {
	res, err := v.runner.Run(ctx, v.dir, gitBinary, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", err
	}
	// git reports a missing tag on stderr; that is the only stderr we accept.
	if isNoTagMessage(res.Stderr) {
		return "", nil
	}
	return v.check(res)
}

// CommitsSince counts commits reachable from HEAD but not from tag. No tag means no count.
func (v *execVcs) CommitsSince(ctx context.Context, tag string) (int, error) {
	if tag == "" {
		return 0, nil
	}
	// A fully qualified ref cannot be read as an option or a revision range.
	args := []string{"rev-list", "--count", tagRefPrefix + tag + "..HEAD"}
	out, err := v.git(ctx, args...)
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(out)
	if err != nil || count < 0 {
		return 0, &domain.CommandError{
			Command: domain.FormatCommand(gitBinary, args...),
			Err:     fmt.Errorf("unexpected commit count %q", out),
		}
	}
	return count, nil
}

func (v *execVcs) git(ctx context.Context, args ...string) (string, error) {
	res, err := v.runner.Run(ctx, v.dir, gitBinary, args...)
	if err != nil {
		return "", err
	}
	return v.check(res)
}

// check applies the stderr policy to a finished command.
func (v *execVcs) check(res domain.CommandResult) (string, error) {
	if res.Stderr != "" {
		if v.strictStderr || res.ExitCode != 0 {
			return "", &domain.CommandError{Command: res.Command, Stderr: res.Stderr, ExitCode: res.ExitCode}
		}
		v.logger.Warn("command wrote to stderr",
			zap.String("command", res.Command),
			zap.String("stderr", res.Stderr))
	}
	if res.ExitCode != 0 {
		return "", &domain.CommandError{Command: res.Command, ExitCode: res.ExitCode}
	}
	return res.Stdout, nil
}

func isNoTagMessage(stderr string) bool {
	msg := strings.ToLower(stderr)
	return strings.Contains(msg, "no names found") || strings.Contains(msg, "no tags can describe")
}
