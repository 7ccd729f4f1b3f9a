//go:build windows

package strategies

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

func builtin() map[string]lifecycle.Factory {
	return map[string]lifecycle.Factory{
		NameExec:           newExec,
		NameWindowsService: newWindowsService,
		NameDocker:         newDocker,
	}
}

// Detect suggests the selection key that best matches the current runtime
// environment. It is a hint for operators filling in the strategy
// configuration; the resolver itself never auto-detects.
func Detect() string {
	exe, err := os.Executable()
	if err == nil {
		service := strings.TrimSuffix(filepath.Base(exe), ".exe")
		if exec.Command("sc", "query", service).Run() == nil {
			return NameWindowsService
		}
	}
	return NameExec
}
