package repository

import "context"

// VcsQuery defines the version-control queries needed to derive a build version.

type VcsQuery interface {
	CurrentHash(ctx context.Context) (string, error)
	IsClean(ctx context.Context) (bool, error)
	LastTag(ctx context.Context) (string, error)
	CommitsSince(ctx context.Context, tag string) (int, error)
}
