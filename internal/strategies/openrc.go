//go:build !windows

package strategies

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// openrcStrategy serves hosts supervised by OpenRC. Restart goes through
// rc-service.
type openrcStrategy struct {
	*lifecycle.Base
	service string
	logger  *zap.Logger
}

func newOpenRC(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	var service string
	if cfg != nil {
		service = cfg.GetString(keyOpenRCService)
	}
	if service == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("derive service name: %w", err)
		}
		service = filepath.Base(exe)
	}
	return &openrcStrategy{
		Base:    lifecycle.NewBase(cfg),
		service: service,
		logger:  logger,
	}, nil
}

func (s *openrcStrategy) Name() string { return NameOpenRC }

// Restart asks OpenRC to restart the service. rc-service is started but
// not waited on, because OpenRC stops this very process as part of the
// restart.
func (s *openrcStrategy) Restart(ctx context.Context) error {
	s.logger.Info("requesting service restart", zap.String("service", s.service))
	cmd := exec.CommandContext(ctx, "rc-service", s.service, "restart")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("rc-service %s restart: %w", s.service, err)
	}
	return nil
}
