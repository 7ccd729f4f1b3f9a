// Package strategies ships the built-in lifecycle strategy variants and
// their registration plumbing. Hosts call RegisterBuiltin once before the
// first lifecycle.Active call; which variant actually runs is decided by
// configuration, never by this package.
package strategies

import "github.com/lifeline-sh/lifeline/pkg/lifecycle"

// Selection keys of the built-in variants.
const (
	// NameExec re-executes the current binary in place.
	NameExec = "exec"
	// NameSystemd restarts the host's systemd unit.
	NameSystemd = "systemd"
	// NameDocker exits cleanly and relies on the container restart policy.
	NameDocker = "docker"
	// NameOpenRC restarts the host's OpenRC service.
	NameOpenRC = "openrc"
	// NameWindowsService restarts the host's Windows service.
	NameWindowsService = "windows-service"
)

// Configuration keys consumed by individual variants.
const (
	keySystemdUnit    = "lifecycle.systemd_unit"
	keyOpenRCService  = "lifecycle.openrc_service"
	keyWindowsService = "lifecycle.windows_service"
)

// RestartsCaller reports whether the named built-in variant restarts the
// invoking process itself instead of asking an external supervisor. A host
// embedding the library restarts itself on purpose; a standalone driver
// process must not select these variants for its own restart.
func RestartsCaller(name string) bool {
	return name == NameExec || name == NameDocker
}

// RegisterBuiltin registers every variant available on this platform with
// the process-wide lifecycle registry.
func RegisterBuiltin() error {
	for name, f := range builtin() {
		if err := lifecycle.Register(name, f); err != nil {
			return err
		}
	}
	return nil
}
