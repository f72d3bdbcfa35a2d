package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// gogitVcs implements VcsQuery in-process with go-git.
type gogitVcs struct {
	repo *git.Repository
}

// NewGoGitVcs opens the repository containing dir.
func NewGoGitVcs(dir string) (VcsQuery, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gogitVcs{repo: repo}, nil
}

func opError(op string, err error) error {
	return &domain.CommandError{Command: op, Err: err}
}

// CurrentHash returns the full hash of HEAD.
func (r *gogitVcs) CurrentHash(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	head, err := r.repo.Head()
	if err != nil {
		return "", opError("rev-parse HEAD", fmt.Errorf("failed to get HEAD: %w", err))
	}
	return head.Hash().String(), nil
}

// IsClean reports whether the worktree has no staged, unstaged or untracked changes.
func (r *gogitVcs) IsClean(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	w, err := r.repo.Worktree()
	if err != nil {
		return false, opError("status", fmt.Errorf("failed to get worktree: %w", err))
	}
	status, err := w.Status()
	if err != nil {
		return false, opError("status", fmt.Errorf("failed to get status: %w", err))
	}
	return status.IsClean(), nil
}

// LastTag returns the tag on the most recent tagged ancestor of HEAD, or "" if none.
// It walks history in committer-time order, which only approximates git describe:
// describe picks the tag with the fewest commits to HEAD, so the two can disagree
// across merges with skewed commit timestamps.
func (r *gogitVcs) LastTag(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tagged, err := r.taggedCommits()
	if err != nil {
		return "", opError("describe --tags", err)
	}
	if len(tagged) == 0 {
		return "", nil
	}
	head, err := r.repo.Head()
	if err != nil {
		return "", opError("describe --tags", fmt.Errorf("failed to get HEAD: %w", err))
	}
	commits, err := r.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", opError("describe --tags", fmt.Errorf("failed to get commits: %w", err))
	}
	defer commits.Close()
	var found string
	err = commits.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tag, ok := tagged[c.Hash]; ok {
			found = tag
			return storer.ErrStop
		}
		return nil
	})
	if err != nil && err != storer.ErrStop {
		if ctx.Err() != nil {
			return "", err
		}
		return "", opError("describe --tags", fmt.Errorf("failed to iterate commits: %w", err))
	}
	return found, nil
}

// CommitsSince counts commits reachable from HEAD and not from tag.
func (r *gogitVcs) CommitsSince(ctx context.Context, tag string) (int, error) {
	if tag == "" {
		return 0, nil
	}
	op := "rev-list --count " + tag + "..HEAD"
	tagRef, err := r.repo.Tag(tag)
	if err != nil {
		return 0, opError(op, fmt.Errorf("failed to get tag %s: %w", tag, err))
	}
	tagCommitHash, err := r.resolveTagCommit(tagRef)
	if err != nil {
		return 0, opError(op, fmt.Errorf("failed to resolve tag %s: %w", tag, err))
	}
	reachable, err := r.ancestors(ctx, tagCommitHash)
	if err != nil {
		return 0, wrapWalkError(ctx, op, err)
	}
	head, err := r.repo.Head()
	if err != nil {
		return 0, opError(op, fmt.Errorf("failed to get HEAD: %w", err))
	}
	commits, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return 0, opError(op, fmt.Errorf("failed to get commits: %w", err))
	}
	defer commits.Close()
	var count int
	err = commits.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := reachable[c.Hash]; !ok {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, wrapWalkError(ctx, op, err)
	}
	return count, nil
}

// ancestors collects every commit reachable from hash, inclusive.
func (r *gogitVcs) ancestors(ctx context.Context, hash plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	commits, err := r.repo.Log(&git.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("failed to get commits: %w", err)
	}
	defer commits.Close()
	seen := make(map[plumbing.Hash]struct{})
	err = commits.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// taggedCommits maps commit hashes to the preferred tag pointing at them.
func (r *gogitVcs) taggedCommits() (map[plumbing.Hash]string, error) {
	tagRefs, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	tagged := make(map[plumbing.Hash]string)
	if err := tagRefs.ForEach(func(ref *plumbing.Reference) error {
		hash, err := r.resolveTagCommit(ref)
		if err != nil {
			return nil // Skip tags that do not point at a commit
		}
		name := ref.Name().Short()
		if current, ok := tagged[hash]; !ok || preferTag(name, current) {
			tagged[hash] = name
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tagged, nil
}

// resolveTagCommit resolves a tag reference to its commit hash.
func (r *gogitVcs) resolveTagCommit(tagRef *plumbing.Reference) (plumbing.Hash, error) {
	// Try as lightweight tag first
	if commit, err := r.repo.CommitObject(tagRef.Hash()); err == nil {
		return commit.Hash, nil
	}
	// Try as annotated tag
	if tagObj, err := r.repo.TagObject(tagRef.Hash()); err == nil {
		if commit, err := r.repo.CommitObject(tagObj.Target); err == nil {
			return commit.Hash, nil
		}
	}
	return plumbing.Hash{}, fmt.Errorf("failed to resolve commit for tag")
}

// preferTag picks the higher semantic version when several tags share a commit.
func preferTag(candidate, current string) bool {
	cv, cErr := semver.NewVersion(candidate)
	ov, oErr := semver.NewVersion(current)
	switch {
	case cErr == nil && oErr == nil:
		return cv.GreaterThan(ov)
	case cErr == nil:
		return true
	case oErr == nil:
		return false
	default:
		return candidate > current
	}
}

func wrapWalkError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return err
	}
	return opError(op, fmt.Errorf("failed to iterate commits: %w", err))
}
