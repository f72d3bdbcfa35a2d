package usecase

import (
	"context"
	"fmt"

	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/bluecolored/gitversion/internal/repository"
	"go.uber.org/zap"
)

// DefaultTagPrefix is stripped from tags like v1.2.3.
const DefaultTagPrefix = "v"

// ResolveVersionUseCase derives the build version from version-control state.

type ResolveVersionUseCase struct {
	Vcs       repository.VcsQuery
	TagPrefix string
	Logger    *zap.Logger
}

// Execute runs the queries in order and composes {base}[-{commits}][-dirty].
// Any failing query aborts the derivation; there is no fallback version.
func (uc *ResolveVersionUseCase) Execute(ctx context.Context) (*domain.BuildVersion, error) {
	logger := uc.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	hash, err := uc.Vcs.CurrentHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current commit: %w", err)
	}
	clean, err := uc.Vcs.IsClean(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get working tree status: %w", err)
	}
	lastTag, err := uc.Vcs.LastTag(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last tag: %w", err)
	}
	commits := 0
	if lastTag != "" {
		commits, err = uc.Vcs.CommitsSince(ctx, lastTag)
		if err != nil {
			return nil, fmt.Errorf("failed to count commits since %s: %w", lastTag, err)
		}
	}
	version := &domain.BuildVersion{
		Base:    domain.BaseFromTag(lastTag, uc.tagPrefix()),
		Commits: commits,
		Dirty:   !clean,
		Hash:    hash,
	}
	if !version.IsDev() {
		if _, err := version.Semver(); err != nil {
			logger.Warn("base version is not a semantic version",
				zap.String("tag", lastTag),
				zap.String("base", version.Base))
		}
	}
	dirty := ""
	if version.Dirty {
		dirty = " (dirty)"
	}
	logger.Info("Git hash: " + hash + dirty)
	logger.Info("Version: " + version.String())
	return version, nil
}

func (uc *ResolveVersionUseCase) tagPrefix() string {
	if uc.TagPrefix == "" {
		return DefaultTagPrefix
	}
	return uc.TagPrefix
}
