package lifecycle

import (
	"errors"
	"fmt"
)

// ErrUnsupported reports invocation of an optional operation on a variant
// that does not support it. Callers are expected to consult CanRestart or
// CanReplaceArtifact first; hitting this error is a bug in the caller, not
// an environmental failure.
var ErrUnsupported = errors.New("operation not supported by active lifecycle strategy")

// ErrUnknownStrategy reports a selection key with no registered factory.
var ErrUnknownStrategy = errors.New("no lifecycle strategy registered under that name")

// SelectionError is returned when the configured strategy cannot be
// resolved or constructed. It is fatal to process startup: a misconfigured
// lifecycle strategy means the operator's deployment assumption is broken,
// and falling back silently would hide it.
type SelectionError struct {
	// Key is the selection key that failed to resolve.
	Key string
	// Err is the underlying cause.
	Err error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("lifecycle: selecting strategy %q: %v", e.Key, e.Err)
}

func (e *SelectionError) Unwrap() error { return e.Err }
