package cmd

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/lifeline-sh/lifeline/internal/config"
)

func TestLoggingOptionsFromConfig(t *testing.T) {
	v := viper.New()
	v.Set(keyLogLevel, "warn")
	v.Set(keyLogFile, "/var/log/lifeline/lifeline.log")
	v.Set(keyLogMaxSize, 25)
	v.Set(keyLogMaxAge, 7)
	v.Set(keyLogConsole, true)

	opts := loggingOptions(config.New(v), "", "")
	if opts.Level != "warn" {
		t.Errorf("Level = %q, want %q", opts.Level, "warn")
	}
	if opts.FilePath != "/var/log/lifeline/lifeline.log" {
		t.Errorf("FilePath = %q, want the configured path", opts.FilePath)
	}
	if opts.MaxSizeMB != 25 {
		t.Errorf("MaxSizeMB = %d, want 25", opts.MaxSizeMB)
	}
	if opts.MaxAgeDays != 7 {
		t.Errorf("MaxAgeDays = %d, want 7", opts.MaxAgeDays)
	}
	if !opts.Console {
		t.Error("Console = false, want true")
	}
}

func TestLoggingOptionsFlagsOverrideConfig(t *testing.T) {
	v := viper.New()
	v.Set(keyLogLevel, "warn")
	v.Set(keyLogFile, "/var/log/lifeline/lifeline.log")

	opts := loggingOptions(config.New(v), "debug", "/tmp/override.log")
	if opts.Level != "debug" {
		t.Errorf("Level = %q, want the flag value", opts.Level)
	}
	if opts.FilePath != "/tmp/override.log" {
		t.Errorf("FilePath = %q, want the flag value", opts.FilePath)
	}
}

func TestLoggingOptionsUnsetLeavesDefaults(t *testing.T) {
	opts := loggingOptions(config.New(viper.New()), "", "")
	if opts.Level != "" || opts.FilePath != "" {
		t.Errorf("Level/FilePath = %q/%q, want empty so the logger applies its defaults", opts.Level, opts.FilePath)
	}
	if opts.MaxSizeMB != 0 || opts.MaxAgeDays != 0 {
		t.Errorf("rotation overrides = %d/%d, want zero", opts.MaxSizeMB, opts.MaxAgeDays)
	}
}
