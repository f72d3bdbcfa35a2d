package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	// VersionFilePermissions defines the permissions for written version files
	VersionFilePermissions = 0644
	// VersionDirPermissions defines the permissions for created parent directories
	VersionDirPermissions = 0755
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// VersionFileRepository persists rendered version coordinates for downstream tooling.
type VersionFileRepository interface {
	Write(ctx context.Context, path string, data []byte) error
}

// lockedFileRepository writes files atomically while holding an exclusive file lock.
type lockedFileRepository struct {
	fs          afero.Fs
	lockTimeout time.Duration
}

// NewVersionFileRepository creates a VersionFileRepository on top of fs.
// Locks are taken on the host filesystem next to the target path.
func NewVersionFileRepository(fs afero.Fs) VersionFileRepository {
	return &lockedFileRepository{
		fs:          fs,
		lockTimeout: LockTimeout,
	}
}

// Write replaces path with data. Concurrent writers to the same path are serialized.
func (r *lockedFileRepository) Write(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	dir := filepath.Dir(path)
	if err := r.fs.MkdirAll(dir, VersionDirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	lock := flock.New(lockFilename(path))
	lockCtx, cancel := context.WithTimeout(ctx, r.lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, LockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock within timeout")
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to unlock file: %v\n", unlockErr)
		}
	}()
	// Write atomically using temp file
	tempFile := path + ".tmp"
	if err := afero.WriteFile(r.fs, tempFile, data, VersionFilePermissions); err != nil {
		return fmt.Errorf("failed to write temp version file: %w", err)
	}
	if err := r.fs.Rename(tempFile, path); err != nil {
		if removeErr := r.fs.Remove(tempFile); removeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove temp file: %v\n", removeErr)
		}
		return fmt.Errorf("failed to rename version file: %w", err)
	}
	return nil
}

// lockFilename returns the hidden lock file used for path.
func lockFilename(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}
