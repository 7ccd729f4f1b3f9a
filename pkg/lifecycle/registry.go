package lifecycle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Factory constructs a Strategy variant. The logger passed in is named
// after the registration key. A factory failure aborts resolution; it is
// never retried.
type Factory func(cfg *viper.Viper, logger *zap.Logger) (Strategy, error)

// Registry maps selection keys to variant factories and owns the single
// resolved Strategy for its scope. The package-level Register and Active
// operate on the process-wide registry, which is what hosts normally use;
// separate Registry values exist so tests can resolve in isolation.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	logger    *zap.Logger

	resolveOnce sync.Once
	active      Strategy
	resolveErr  error
}

// NewRegistry creates an empty registry. A nil logger disables registration
// logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger,
	}
}

// Register adds a variant factory under the given selection key. Duplicate
// and empty keys are rejected. Registration after the registry has resolved
// has no effect on the active strategy.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("lifecycle: strategy name must not be empty")
	}
	if f == nil {
		return fmt.Errorf("lifecycle: strategy %q: nil factory", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("lifecycle: strategy %q already registered", name)
	}
	r.factories[name] = f
	r.logger.Info("lifecycle strategy registered", zap.String("name", name))
	return nil
}

// Active returns the registry's Strategy, resolving it on the first call.
//
// The first caller reads the selection key from cfg and constructs the
// variant; every later call returns the same instance without re-reading
// configuration, regardless of the arguments passed. Concurrent first
// callers are serialized and all observe the same fully constructed value.
//
// Resolution failure is sticky: the error from the first attempt is
// returned to every subsequent caller. Repairing the configuration at
// runtime cannot revive a process that failed selection; restart it.
func (r *Registry) Active(cfg *viper.Viper, logger *zap.Logger) (Strategy, error) {
	r.resolveOnce.Do(func() {
		if logger == nil {
			logger = r.logger
		}
		r.active, r.resolveErr = r.resolve(cfg, logger)
	})
	if r.resolveErr != nil {
		return nil, r.resolveErr
	}
	return r.active, nil
}

func (r *Registry) resolve(cfg *viper.Viper, logger *zap.Logger) (Strategy, error) {
	var key string
	if cfg != nil {
		key = cfg.GetString(KeyStrategy)
	}

	if key == "" {
		logger.Info("no lifecycle strategy configured, using default")
		return NewBase(cfg), nil
	}

	r.mu.RLock()
	f, ok := r.factories[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &SelectionError{Key: key, Err: ErrUnknownStrategy}
	}

	s, err := f(cfg, logger.Named(key))
	if err != nil {
		return nil, &SelectionError{Key: key, Err: err}
	}

	logger.Info("lifecycle strategy resolved",
		zap.String("name", s.Name()),
		zap.Bool("can_restart", CanRestart(s)),
		zap.Bool("can_replace_artifact", CanReplaceArtifact(s)))
	return s, nil
}

// std is the process-wide registry behind the package-level functions.
var std = NewRegistry(nil)

// Register adds a variant factory to the process-wide registry. Hosts
// register every variant they ship before the first Active call.
func Register(name string, f Factory) error {
	return std.Register(name, f)
}

// Active returns the process-wide Strategy, resolving it on the first call.
// See Registry.Active for the resolution and failure semantics.
func Active(cfg *viper.Viper, logger *zap.Logger) (Strategy, error) {
	return std.Active(cfg, logger)
}
