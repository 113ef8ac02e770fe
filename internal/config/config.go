// Package config loads runtime settings for the peak server and CLI.
//
// Precedence is environment over file over defaults. The file is YAML and
// is optional; its path comes from --config or PEAK_CONFIG.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigFile wraps any failure reading or parsing the YAML file.
var ErrConfigFile = errors.New("config file")

type Config struct {
	Addr              string `yaml:"addr"`
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
	DefaultDuration   int    `yaml:"default_duration"`
	DefaultInput      string `yaml:"default_input"`
	ShutdownTimeoutMs int    `yaml:"shutdown_timeout_ms"`
	CORSOrigin        string `yaml:"cors_origin"`
}

func Default() *Config {
	return &Config{
		Addr:              ":5001",
		LogLevel:          "info",
		LogFormat:         "text",
		DefaultDuration:   30,
		DefaultInput:      "neutral",
		ShutdownTimeoutMs: 10000,
		CORSOrigin:        "*",
	}
}

// Load builds the configuration from defaults, the optional file at path
// (falling back to PEAK_CONFIG when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("PEAK_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML file over the defaults without consulting the
// environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	// Unmarshal only touches keys present in the document.
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parse %s: %w", ErrConfigFile, path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Addr = envStr("PEAK_ADDR", c.Addr)
	c.LogLevel = strings.ToLower(envStr("PEAK_LOG_LEVEL", c.LogLevel))
	c.LogFormat = strings.ToLower(envStr("PEAK_LOG_FORMAT", c.LogFormat))
	c.DefaultDuration = envInt("PEAK_DEFAULT_DURATION", c.DefaultDuration)
	c.DefaultInput = envStr("PEAK_DEFAULT_INPUT", c.DefaultInput)
	c.ShutdownTimeoutMs = envInt("PEAK_SHUTDOWN_TIMEOUT_MS", c.ShutdownTimeoutMs)
	c.CORSOrigin = envStr("PEAK_CORS_ORIGIN", c.CORSOrigin)
}

func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("PEAK_ADDR must be host:port, got %q", c.Addr)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("PEAK_LOG_LEVEL must be one of debug|info|warn|error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("PEAK_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.DefaultDuration < 1 {
		return fmt.Errorf("PEAK_DEFAULT_DURATION must be positive, got %d", c.DefaultDuration)
	}
	if c.ShutdownTimeoutMs < 0 {
		return fmt.Errorf("PEAK_SHUTDOWN_TIMEOUT_MS must not be negative, got %d", c.ShutdownTimeoutMs)
	}
	return nil
}

// ShutdownTimeout is the grace period for in-flight requests on stop.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}
