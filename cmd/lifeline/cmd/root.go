// Package cmd implements the lifeline command tree. The CLI is a host for
// the lifecycle layer: it loads configuration, registers the built-in
// strategy variants, and drives the active strategy's operations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lifeline-sh/lifeline/internal/config"
	"github.com/lifeline-sh/lifeline/internal/logging"
	"github.com/lifeline-sh/lifeline/internal/strategies"
	"github.com/lifeline-sh/lifeline/pkg/lifecycle"
)

var (
	cfgFile  string
	logLevel string
	logFile  string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lifeline",
	Short: "Inspect and drive the host process lifecycle strategy",
	Long: `lifeline resolves the lifecycle strategy configured for this process
(systemd unit, container, plain executable) and exposes its capabilities:
restarting the process and replacing the installed artifact in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(loggingOptions(cfg, logLevel, logFile))
		if err != nil {
			return err
		}
		return strategies.RegisterBuiltin()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., ~/.lifeline, /etc/lifeline)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

// Logging configuration keys. The --log-level and --log-file flags take
// precedence over the file values when set.
const (
	keyLogLevel   = "logging.level"
	keyLogFile    = "logging.file"
	keyLogMaxSize = "logging.max_size_mb"
	keyLogMaxAge  = "logging.max_age_days"
	keyLogConsole = "logging.console"
)

func loggingOptions(cfg *config.Config, levelFlag, fileFlag string) logging.Options {
	opts := logging.Options{
		Level:      cfg.GetString(keyLogLevel),
		FilePath:   cfg.GetString(keyLogFile),
		MaxSizeMB:  cfg.GetInt(keyLogMaxSize),
		MaxAgeDays: cfg.GetInt(keyLogMaxAge),
		Console:    cfg.GetBool(keyLogConsole),
	}
	if levelFlag != "" {
		opts.Level = levelFlag
	}
	if fileFlag != "" {
		opts.FilePath = fileFlag
	}
	return opts
}

// activeStrategy resolves the process-wide strategy from the loaded
// configuration.
func activeStrategy() (lifecycle.Strategy, error) {
	s, err := lifecycle.Active(cfg.Viper(), logger)
	if err != nil {
		return nil, fmt.Errorf("resolve lifecycle strategy: %w", err)
	}
	return s, nil
}
