package strategies

import (
	"context"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// dockerStrategy serves hosts running as the top process of a container
// with a restart policy (e.g. --restart=unless-stopped).
type dockerStrategy struct {
	*lifecycle.Base
	logger *zap.Logger
}

func newDocker(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	return &dockerStrategy{Base: lifecycle.NewBase(cfg), logger: logger}, nil
}

func (s *dockerStrategy) Name() string { return NameDocker }

// Restart exits the process cleanly; the container runtime's restart policy
// brings a fresh instance up. It never returns.
func (s *dockerStrategy) Restart(_ context.Context) error {
	s.logger.Info("exiting for container restart policy")
	_ = s.logger.Sync()
	os.Exit(0)
	return nil // unreachable
}
