package lifecycle

import (
	"context"
	"fmt"
)

// CanRestart reports whether s can restart the host process. It never
// invokes the operation.
func CanRestart(s Strategy) bool {
	_, ok := s.(Restarter)
	return ok
}

// CanReplaceArtifact reports whether s can replace the installed artifact.
// It is false whenever the artifact location is unknown: without a location
// there is nothing to replace, no matter what the variant implements.
func CanReplaceArtifact(s Strategy) bool {
	if _, known := s.LocateArtifact(); !known {
		return false
	}
	_, ok := s.(ArtifactReplacer)
	return ok
}

// Restart restarts the host process through s. It fails with ErrUnsupported
// when CanRestart(s) is false; any other error is an operational failure
// from the variant. On a synchronous restart this call never returns.
func Restart(ctx context.Context, s Strategy) error {
	r, ok := s.(Restarter)
	if !ok {
		return fmt.Errorf("strategy %q: restart: %w", s.Name(), ErrUnsupported)
	}
	return r.Restart(ctx)
}

// ReplaceArtifact overwrites the installed artifact with the file at
// newPath. It fails with ErrUnsupported exactly when CanReplaceArtifact(s)
// is false, including the case where the variant implements the operation
// but the artifact location is unknown.
func ReplaceArtifact(ctx context.Context, s Strategy, newPath string) error {
	r, ok := s.(ArtifactReplacer)
	if !ok {
		return fmt.Errorf("strategy %q: replace artifact: %w", s.Name(), ErrUnsupported)
	}
	if _, known := s.LocateArtifact(); !known {
		return fmt.Errorf("strategy %q: replace artifact: location unknown: %w", s.Name(), ErrUnsupported)
	}
	return r.ReplaceArtifact(ctx, newPath)
}

// NotifyReady forwards readiness to the process manager when s supports
// status notification, and does nothing otherwise.
func NotifyReady(s Strategy) {
	if n, ok := s.(StatusNotifier); ok {
		n.OnReady()
	}
}

// NotifyStopping forwards the beginning of shutdown to the process manager
// when s supports status notification, and does nothing otherwise.
func NotifyStopping(s Strategy) {
	if n, ok := s.(StatusNotifier); ok {
		n.OnStopping()
	}
}

// NotifyStatus forwards a status line to the process manager when s
// supports status notification, and does nothing otherwise.
func NotifyStatus(s Strategy, status string) {
	if n, ok := s.(StatusNotifier); ok {
		n.OnStatusUpdate(status)
	}
}
