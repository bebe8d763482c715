package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/hooks/internal/errors"
)

const (
	// FileName is the default configuration file name.
	FileName = "hooks.toml"

	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "hooks"
)

// Config is the resolved hooks.toml configuration.
type Config struct {
	// Debug enables UseDebugValue logging and render diagnostics.
	Debug bool `toml:"debug"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Metrics configures the Prometheus collector.
	Metrics MetricsConfig `toml:"metrics"`

	// path is where the config was loaded from; empty for defaults.
	path string
}

// MetricsConfig configures metrics collection and exposition.
type MetricsConfig struct {
	// Namespace prefixes every metric name.
	Namespace string `toml:"namespace"`

	// Addr is the listen address for the /metrics endpoint. Empty disables it.
	Addr string `toml:"addr"`
}

// New returns a configuration with defaults applied.
func New() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads the configuration at path. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.New("E040").WithDetail(path).Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.New("E040").WithDetail(path).Wrap(err)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New("E041").WithDetailf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultNamespace
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New("E041").WithDetailf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
