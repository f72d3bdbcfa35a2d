package domain

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevBaseVersion is the base version used when no tag is reachable from HEAD.
const DevBaseVersion = "dev"

// DirtySuffix marks a version built from a working tree with uncommitted changes.
const DirtySuffix = "dirty"

// BuildVersion is the version derived for the current build from git state.
type BuildVersion struct {
	Base    string
	Commits int
	Dirty   bool
	Hash    string
}

// BaseFromTag strips a single leading prefix from the tag. An empty tag yields DevBaseVersion.
func BaseFromTag(tag, prefix string) string {
	if tag == "" {
		return DevBaseVersion
	}
	return strings.TrimPrefix(tag, prefix)
}

// String composes {base}[-{commits}][-dirty].
func (v BuildVersion) String() string {
	var b strings.Builder
	b.WriteString(v.Base)
	if v.Commits != 0 {
		b.WriteString("-")
		b.WriteString(strconv.Itoa(v.Commits))
	}
	if v.Dirty {
		b.WriteString("-")
		b.WriteString(DirtySuffix)
	}
	return b.String()
}

// IsDev reports whether no tag was found.
func (v BuildVersion) IsDev() bool {
	return v.Base == DevBaseVersion
}

// Semver parses the base version. Dev and non-semver tags return an error.
func (v BuildVersion) Semver() (*semver.Version, error) {
	return semver.StrictNewVersion(v.Base)
}
