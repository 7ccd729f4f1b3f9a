package lifecycle

import "context"

// Restarter is implemented by variants that can restart the host process.
type Restarter interface {
	// Restart requests a restart of the host process. It may return nil
	// after scheduling an asynchronous restart, or never return at all when
	// the process image is replaced synchronously. Callers must not expect
	// control to come back from a successful synchronous restart, and no
	// cleanup scheduled after the call is guaranteed to run.
	Restart(ctx context.Context) error
}

// ArtifactReplacer is implemented by variants that can overwrite the
// installed artifact with a replacement file, typically to perform an
// in-place upgrade that takes effect on the next restart.
type ArtifactReplacer interface {
	// ReplaceArtifact overwrites the located artifact with the file at
	// newPath. The running process is not touched.
	ReplaceArtifact(ctx context.Context, newPath string) error
}

// StatusNotifier is implemented by variants that forward host lifecycle
// progress to the supervising process manager (e.g. sd_notify under
// systemd). Hosts call the Notify helpers around startup and shutdown;
// variants without the capability ignore them.
type StatusNotifier interface {
	// OnReady signals that the host finished starting up.
	OnReady()

	// OnStopping signals that the host began shutting down.
	OnStopping()

	// OnStatusUpdate forwards a one-line human-readable status.
	OnStatusUpdate(status string)
}
