//go:build windows

package strategies

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// execStrategy serves hosts launched as a plain executable with no
// supervisor. Windows has no exec(2) equivalent, so Restart spawns a
// replacement process and exits the current one.
type execStrategy struct {
	*lifecycle.Base
	logger *zap.Logger
}

func newExec(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	return &execStrategy{Base: lifecycle.NewBase(cfg), logger: logger}, nil
}

func (s *execStrategy) Name() string { return NameExec }

// Restart starts a fresh copy of the current binary and exits this process.
// It never returns on success.
func (s *execStrategy) Restart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	s.logger.Info("starting replacement process", zap.String("exe", exe))
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start replacement process: %w", err)
	}

	_ = s.logger.Sync()
	os.Exit(0)
	return nil // unreachable
}

func (s *execStrategy) ReplaceArtifact(ctx context.Context, newPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dst, known := s.LocateArtifact()
	if !known {
		return errors.New("artifact location unknown")
	}
	if err := replaceFile(dst, newPath); err != nil {
		return fmt.Errorf("replace artifact %q: %w", dst, err)
	}
	s.logger.Info("artifact replaced",
		zap.String("path", dst),
		zap.String("source", newPath))
	return nil
}
