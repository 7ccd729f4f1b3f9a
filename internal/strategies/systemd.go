//go:build !windows

package strategies

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

// systemdStrategy serves hosts running as a systemd unit. Restart goes
// through systemctl; lifecycle progress is forwarded over the sd_notify
// socket when systemd provides one.
type systemdStrategy struct {
	*lifecycle.Base
	unit   string
	logger *zap.Logger
}

func newSystemd(cfg *viper.Viper, logger *zap.Logger) (lifecycle.Strategy, error) {
	var unit string
	if cfg != nil {
		unit = cfg.GetString(keySystemdUnit)
	}
	if unit == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("derive unit name: %w", err)
		}
		unit = filepath.Base(exe)
	}
	return &systemdStrategy{
		Base:   lifecycle.NewBase(cfg),
		unit:   unit,
		logger: logger,
	}, nil
}

func (s *systemdStrategy) Name() string { return NameSystemd }

// Restart asks systemd to restart the unit. The restart happens
// asynchronously: systemctl is started but not waited on, because systemd
// will stop this very process as part of the restart.
func (s *systemdStrategy) Restart(ctx context.Context) error {
	s.logger.Info("requesting unit restart", zap.String("unit", s.unit))
	cmd := exec.CommandContext(ctx, "systemctl", "restart", s.unit)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("systemctl restart %s: %w", s.unit, err)
	}
	return nil
}

func (s *systemdStrategy) OnReady()    { s.notify("READY=1") }
func (s *systemdStrategy) OnStopping() { s.notify("STOPPING=1") }

func (s *systemdStrategy) OnStatusUpdate(status string) {
	s.notify("STATUS=" + status)
}

// notify sends one sd_notify datagram. Failures are logged and dropped;
// status updates are advisory and must never take the host down.
func (s *systemdStrategy) notify(state string) {
	socket := os.Getenv("NOTIFY_SOCKET")
	if socket == "" {
		return
	}
	conn, err := net.Dial("unixgram", socket)
	if err != nil {
		s.logger.Debug("sd_notify dial failed", zap.Error(err))
		return
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(state)); err != nil {
		s.logger.Debug("sd_notify write failed", zap.Error(err))
	}
}
