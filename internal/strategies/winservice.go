//go:build windows

package strategies

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// serviceStrategy serves hosts installed as a Windows service. Restart goes
// through sc.exe; sc has no restart verb, so it is a stop followed by a
// start.
type serviceStrategy struct {
	*lifecycle.Base
	service string
	logger  *zap.Logger
}

func newWindowsService(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	var service string
	if cfg != nil {
		service = cfg.GetString(keyWindowsService)
	}
	if service == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("derive service name: %w", err)
		}
		service = strings.TrimSuffix(filepath.Base(exe), ".exe")
	}
	return &serviceStrategy{
		Base:    lifecycle.NewBase(cfg),
		service: service,
		logger:  logger,
	}, nil
}

func (s *serviceStrategy) Name() string { return NameWindowsService }

func (s *serviceStrategy) Restart(ctx context.Context) error {
	s.logger.Info("requesting service restart", zap.String("service", s.service))

	stop := exec.CommandContext(ctx, "sc", "stop", s.service)
	if err := stop.Run(); err != nil {
		return fmt.Errorf("sc stop %s: %w", s.service, err)
	}
	// Don't wait on the start; the service manager is about to kill us.
	start := exec.CommandContext(ctx, "sc", "start", s.service)
	if err := start.Start(); err != nil {
		return fmt.Errorf("sc start %s: %w", s.service, err)
	}
	return nil
}
