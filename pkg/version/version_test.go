package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	t.Run("Should prefer ldflags values", func(t *testing.T) {
		oldVersion, oldCommit, oldDate := Version, CommitHash, BuildDate
		t.Cleanup(func() { Version, CommitHash, BuildDate = oldVersion, oldCommit, oldDate })
		Version, CommitHash, BuildDate = "1.2.3", "abc123", "2024-01-01"
		info := Info()
		assert.Equal(t, "1.2.3", info.Version)
		assert.Equal(t, "abc123", info.Commit)
		assert.Equal(t, "2024-01-01", info.BuildDate)
	})
	t.Run("Should never return empty values", func(t *testing.T) {
		info := Info()
		assert.NotEmpty(t, info.Version)
		assert.NotEmpty(t, info.Commit)
		assert.NotEmpty(t, info.BuildDate)
		assert.Contains(t, Summary(), info.Version)
	})
}
