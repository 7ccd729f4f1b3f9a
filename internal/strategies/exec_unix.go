//go:build !windows

package strategies

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// execStrategy serves hosts launched as a plain executable with no
// supervisor. Restart replaces the process image; upgrades overwrite the
// configured artifact and take effect on the next restart.
type execStrategy struct {
	*lifecycle.Base
	logger *zap.Logger
}

func newExec(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	return &execStrategy{Base: lifecycle.NewBase(cfg), logger: logger}, nil
}

func (s *execStrategy) Name() string { return NameExec }

// Restart re-executes the current binary with the same arguments and
// environment. On success the process image is replaced and this call
// never returns.
func (s *execStrategy) Restart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	s.logger.Info("re-executing binary", zap.String("exe", exe))
	_ = s.logger.Sync()
	return syscall.Exec(exe, os.Args, os.Environ())
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
