//go:build !windows

package strategies

import (
	"os"
	"os/exec"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

func builtin() map[string]lifecycle.Factory {
	return map[string]lifecycle.Factory{
		NameExec:    newExec,
		NameSystemd: newSystemd,
		NameDocker:  newDocker,
		NameOpenRC:  newOpenRC,
	}
}

// Detect suggests the selection key that best matches the current runtime
// environment. It is a hint for operators filling in the strategy
// configuration; the resolver itself never auto-detects.
func Detect() string {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return NameDocker
	}
	if _, err := os.Stat("/run/systemd/system"); err == nil {
		return NameSystemd
	}
	if _, err := exec.LookPath("rc-service"); err == nil {
		return NameOpenRC
	}
	return NameExec
}
