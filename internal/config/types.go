package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default config values.
const (
	DefaultConfigFilePath                 = "config/config.yml"
	DefaultServerPort                     = ":8080"
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
	DefaultMetricsEnabled                 = true
	DefaultMetricsPath                    = "/metrics"
	DefaultRateLimitRequestsPerSecond     = 20.0
	DefaultRateLimitBurst                 = 40
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds all configuration related to the HTTP server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// RateLimitConfig throttles the mutating API endpoints. A zero rate disables throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		Metrics: MetricsConfig{
			Enabled: DefaultMetricsEnabled,
			Path:    DefaultMetricsPath,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: DefaultRateLimitRequestsPerSecond,
			Burst:             DefaultRateLimitBurst,
		},
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || (strings.HasPrefix(c.Server.Port, ":") && len(c.Server.Port) == 1) {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.Server.ReadTimeoutSeconds < 0 {
		return errors.New("server read timeout seconds (config key: server.read_timeout_seconds) cannot be negative")
	}
	if c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server write timeout seconds (config key: server.write_timeout_seconds) cannot be negative")
	}
	if c.Server.IdleTimeoutSeconds < 0 {
		return errors.New("server idle timeout seconds (config key: server.idle_timeout_seconds) cannot be negative")
	}
	if c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New(
			"server read header timeout seconds (config key: server.read_header_timeout_seconds) cannot be negative",
		)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path (config key: metrics.path) must start with '/': '%s'", c.Metrics.Path)
	}

	if c.RateLimit.RequestsPerSecond < 0 {
		return errors.New("rate limit (config key: rate_limit.requests_per_second) cannot be negative")
	}
	if c.RateLimit.RequestsPerSecond > 0 && c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst (config key: rate_limit.burst) must be at least 1 when rate limiting is enabled")
	}

	return nil
}
