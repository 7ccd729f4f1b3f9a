package lifecycle

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestRegister(t *testing.T) {
	reg := NewRegistry(testLogger())

	f := func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return &fakeStrategy{name: "alpha"}, nil
	}
	if err := reg.Register("alpha", f); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Duplicate registration should fail.
	if err := reg.Register("alpha", f); err == nil {
		t.Fatal("Register() expected error for duplicate, got nil")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	reg := NewRegistry(testLogger())
	err := reg.Register("", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return &fakeStrategy{}, nil
	})
	if err == nil {
		t.Fatal("Register() expected error for empty name, got nil")
	}
}

func TestRegisterNilFactory(t *testing.T) {
	reg := NewRegistry(testLogger())
	if err := reg.Register("alpha", nil); err == nil {
		t.Fatal("Register() expected error for nil factory, got nil")
	}
}

func TestActiveDefault(t *testing.T) {
	reg := NewRegistry(testLogger())

	s, err := reg.Active(viper.New(), nil)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if s.Name() != DefaultName {
		t.Errorf("Name() = %q, want %q", s.Name(), DefaultName)
	}
	if CanRestart(s) {
		t.Error("default variant reports CanRestart() = true")
	}
	if CanReplaceArtifact(s) {
		t.Error("default variant reports CanReplaceArtifact() = true")
	}
}

func TestActiveNilConfig(t *testing.T) {
	reg := NewRegistry(testLogger())
	s, err := reg.Active(nil, nil)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if s.Name() != DefaultName {
		t.Errorf("Name() = %q, want %q", s.Name(), DefaultName)
	}
}

func TestActiveSelectsRegistered(t *testing.T) {
	reg := NewRegistry(testLogger())
	want := &restartOnly{fakeStrategy: fakeStrategy{name: "svc"}}
	reg.Register("svc", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return want, nil
	})

	cfg := viper.New()
	cfg.Set(KeyStrategy, "svc")

	s, err := reg.Active(cfg, nil)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if s != Strategy(want) {
		t.Fatal("Active() returned a different instance than the factory produced")
	}
	// Variant overrides restart only.
	if !CanRestart(s) {
		t.Error("CanRestart() = false for a restart-capable variant")
	}
	if CanReplaceArtifact(s) {
		t.Error("CanReplaceArtifact() = true for a variant without the operation")
	}
}

func TestActiveIdempotentUnderConcurrency(t *testing.T) {
	reg := NewRegistry(testLogger())

	var constructions int32
	reg.Register("svc", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		atomic.AddInt32(&constructions, 1)
		return &fakeStrategy{name: "svc"}, nil
	})

	cfg := viper.New()
	cfg.Set(KeyStrategy, "svc")

	const callers = 64
	results := make([]Strategy, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := reg.Active(cfg, nil)
			if err != nil {
				t.Errorf("Active() error = %v", err)
				return
			}
			results[i] = s
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&constructions); n != 1 {
		t.Fatalf("factory ran %d times, want 1", n)
	}
	for i := 1; i < callers; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d observed a different instance", i)
		}
	}
}

func TestActiveUnknownKey(t *testing.T) {
	reg := NewRegistry(testLogger())

	cfg := viper.New()
	cfg.Set(KeyStrategy, "does.not.Exist")

	s, err := reg.Active(cfg, nil)
	if err == nil {
		t.Fatal("Active() returned nil error for an unknown selection key")
	}
	if s != nil {
		t.Error("Active() returned a strategy alongside an error")
	}

	var selErr *SelectionError
	if !errors.As(err, &selErr) {
		t.Fatalf("Active() error = %T, want *SelectionError", err)
	}
	if selErr.Key != "does.not.Exist" {
		t.Errorf("SelectionError.Key = %q, want %q", selErr.Key, "does.not.Exist")
	}
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Error("SelectionError does not wrap ErrUnknownStrategy")
	}
	if !strings.Contains(err.Error(), "does.not.Exist") {
		t.Errorf("error %q does not reference the selection key", err.Error())
	}
}

func TestActiveFactoryFailure(t *testing.T) {
	reg := NewRegistry(testLogger())
	cause := errors.New("unit name missing")
	reg.Register("svc", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return nil, cause
	})

	cfg := viper.New()
	cfg.Set(KeyStrategy, "svc")

	_, err := reg.Active(cfg, nil)
	if !errors.Is(err, cause) {
		t.Fatalf("Active() error = %v, want wrapped construction failure", err)
	}
}

func TestActiveFailureIsSticky(t *testing.T) {
	reg := NewRegistry(testLogger())

	cfg := viper.New()
	cfg.Set(KeyStrategy, "svc")

	_, first := reg.Active(cfg, nil)
	if first == nil {
		t.Fatal("Active() expected error for unregistered strategy")
	}

	// Registering after the failed resolution must not revive the registry.
	reg.Register("svc", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return &fakeStrategy{name: "svc"}, nil
	})

	_, second := reg.Active(cfg, nil)
	if !errors.Is(second, first) && second.Error() != first.Error() {
		t.Fatalf("second Active() error = %v, want the first failure %v", second, first)
	}
}

func TestActiveIgnoresLateConfigChanges(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register("svc", func(_ *viper.Viper, _ *zap.Logger) (Strategy, error) {
		return &fakeStrategy{name: "svc"}, nil
	})

	cfg := viper.New()
	s1, err := reg.Active(cfg, nil)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}

	// Selecting a variant after resolution must not swap the instance.
	cfg.Set(KeyStrategy, "svc")
	s2, err := reg.Active(cfg, nil)
	if err != nil {
		t.Fatalf("Active() error = %v", err)
	}
	if s1 != s2 {
		t.Fatal("Active() re-resolved after configuration changed")
	}
	if s2.Name() != DefaultName {
		t.Errorf("Name() = %q, want the originally resolved %q", s2.Name(), DefaultName)
	}
}
