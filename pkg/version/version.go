// Package version exposes build metadata of the gitversion binary itself,
// stamped via -ldflags or read from the embedded module build info.
package version

import (
	"runtime/debug"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// BuildInfo is the resolved metadata of the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	Modified  bool
}

// Info merges ldflags values with the vcs settings recorded by the Go toolchain.
func Info() BuildInfo {
	info := BuildInfo{Version: Version, Commit: CommitHash, BuildDate: BuildDate}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Summary returns a human-friendly version string for CLI output.
func Summary() string {
	info := Info()
	if info.Modified {
		return info.Version + " (modified)"
	}
	return info.Version
}
