// Package version exposes the build metadata stamped into the lifeline
// binary.
package version

import (
	"fmt"
	"runtime"
)

// Name is the product name reported alongside the build metadata.
const Name = "lifeline"

// Stamped at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the one-line human form used by the version command.
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, go: %s)",
		Name, Version, GitCommit, BuildDate, runtime.Version())
}

// Short returns just the version string (e.g. "0.1.0" or "dev").
func Short() string {
	return Version
}

// Map returns the build metadata keyed for JSON output.
func Map() map[string]string {
	return map[string]string{
		"name":       Name,
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	}
}
