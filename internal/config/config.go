// Package config wraps viper with the small typed surface the rest of the
// module consumes, and owns file and environment loading for the lifeline
// process.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys (e.g. LIFELINE_LIFECYCLE_STRATEGY for lifecycle.strategy).
const EnvPrefix = "LIFELINE"

// Config is a read-only view over a viper instance.
type Config struct {
	v *viper.Viper
}

// New wraps an existing viper instance. A nil instance is replaced with an
// empty one so lookups return zero values instead of panicking.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// Load reads the configuration for the process. With an explicit path the
// file must exist and parse; with an empty path the default locations are
// searched and a missing file is fine. Environment variables with the
// LIFELINE_ prefix override file values either way.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		return New(v), nil
	}

	v.SetConfigName("lifeline")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".lifeline"))
	}
	v.AddConfigPath("/etc/lifeline")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return New(v), nil
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the int value for key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the bool value for key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the duration value for key.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// IsSet reports whether key has a value from any source.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Sub returns the subtree under key. A missing subtree yields an empty
// Config, never nil.
func (c *Config) Sub(key string) *Config {
	sub := c.v.Sub(key)
	if sub == nil {
		sub = viper.New()
	}
	return New(sub)
}

// Unmarshal decodes the full configuration into out.
func (c *Config) Unmarshal(out any) error { return c.v.Unmarshal(out) }

// Viper exposes the underlying viper instance for collaborators that take
// one directly, such as the lifecycle resolver and strategy factories.
func (c *Config) Viper() *viper.Viper { return c.v }
