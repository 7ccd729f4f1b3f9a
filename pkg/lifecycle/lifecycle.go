// Package lifecycle provides the pluggable abstraction for controlling the
// lifecycle of the running host process: restarting it and replacing the
// installed artifact for in-place upgrades.
//
// How a process is restarted or upgraded depends entirely on how it was
// launched (systemd unit, container, Windows service, plain executable), so
// exactly one Strategy variant is active per process. The variant is chosen
// once, at first resolution, from the lifecycle.strategy configuration key;
// hosts register the variants they ship before resolving. All other code
// depends only on the Strategy surface, never on a concrete variant.
//
// Optional operations are modeled as narrow interfaces (Restarter,
// ArtifactReplacer, StatusNotifier) so that callers can discover support
// with a type check instead of invoking an operation that may restart the
// process out from under them. See CanRestart and CanReplaceArtifact.
package lifecycle

import (
	"os"

	"github.com/spf13/viper"
)

// Configuration keys consumed by this package.
const (
	// KeyStrategy names the registered variant to activate. Unset selects
	// the inert default variant.
	KeyStrategy = "lifecycle.strategy"

	// KeyArtifact is the file-system path of the installed artifact the
	// running process was launched from.
	KeyArtifact = "lifecycle.artifact"
)

// DefaultName is the name reported by the default variant.
const DefaultName = "default"

// Strategy is the lifecycle-control abstraction. Each variant corresponds
// to one host-launch mechanism.
//
// Variants advertise the optional operations they support by implementing
// Restarter, ArtifactReplacer, or StatusNotifier.
type Strategy interface {
	// Name returns the variant's registration name.
	Name() string

	// LocateArtifact returns the path of the installed artifact and whether
	// it is known. The location is resolved on every call, never cached, so
	// an artifact that appears or disappears on disk is reflected here.
	LocateArtifact() (string, bool)
}

// Base is the default variant and the embeddable starting point for
// concrete ones. It locates the artifact through configuration and supports
// no optional operations: a process running under Base can be inspected but
// not restarted or upgraded in place.
type Base struct {
	cfg *viper.Viper
}

// NewBase returns a Base reading the artifact location from cfg. A nil cfg
// is accepted and always reports an unknown location.
func NewBase(cfg *viper.Viper) *Base {
	return &Base{cfg: cfg}
}

// Name implements Strategy.
func (b *Base) Name() string { return DefaultName }

// LocateArtifact reads KeyArtifact and verifies the file exists on disk.
// An unset key or a missing file reports an unknown location.
func (b *Base) LocateArtifact() (string, bool) {
	if b.cfg == nil {
		return "", false
	}
	path := b.cfg.GetString(KeyArtifact)
	if path == "" {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
