package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFileRepository_Write(t *testing.T) {
	t.Run("Should write file and create parent directories", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "build", "version.properties")
		repo := NewVersionFileRepository(afero.NewOsFs())
		err := repo.Write(context.Background(), path, []byte("version=1.0.0\n"))
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "version=1.0.0\n", string(data))
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
	t.Run("Should replace existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "VERSION")
		repo := NewVersionFileRepository(afero.NewOsFs())
		require.NoError(t, repo.Write(context.Background(), path, []byte("1.0.0\n")))
		require.NoError(t, repo.Write(context.Background(), path, []byte("1.0.1\n")))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0.1\n", string(data))
	})
	t.Run("Should serialize concurrent writers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "VERSION")
		repo := NewVersionFileRepository(afero.NewOsFs())
		var wg sync.WaitGroup
		errs := make(chan error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.Write(context.Background(), path, []byte("2.0.0\n"))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2.0.0\n", string(data))
	})
	t.Run("Should reject empty path", func(t *testing.T) {
		repo := NewVersionFileRepository(afero.NewOsFs())
		assert.Error(t, repo.Write(context.Background(), "", []byte("x")))
	})
}

func TestLockFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("build", ".VERSION.lock"), lockFilename(filepath.Join("build", "VERSION")))
}
