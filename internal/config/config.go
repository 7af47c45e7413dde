// Package config implements application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from a YAML file on top of Default().
// A missing file is only tolerated when no explicit path was given.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	if err != nil {
		if os.IsNotExist(err) && (filePath == "" || filePath == DefaultConfigFilePath) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	type partialConfig struct {
		Server    *ServerConfig    `yaml:"server"`
		Logger    *LoggerConfig    `yaml:"logger"`
		Metrics   *MetricsConfig   `yaml:"metrics"`
		RateLimit *RateLimitConfig `yaml:"rate_limit"`
	}
	var pCfg partialConfig

	if err := yaml.Unmarshal(fileBytes, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
	}

	if pCfg.Server != nil {
		if pCfg.Server.Port != "" {
			cfg.Server.Port = pCfg.Server.Port
		}
		if pCfg.Server.ReadTimeoutSeconds != 0 {
			cfg.Server.ReadTimeoutSeconds = pCfg.Server.ReadTimeoutSeconds
		}
		if pCfg.Server.WriteTimeoutSeconds != 0 {
			cfg.Server.WriteTimeoutSeconds = pCfg.Server.WriteTimeoutSeconds
		}
		if pCfg.Server.IdleTimeoutSeconds != 0 {
			cfg.Server.IdleTimeoutSeconds = pCfg.Server.IdleTimeoutSeconds
		}
		if pCfg.Server.ReadHeaderTimeoutSeconds != 0 {
			cfg.Server.ReadHeaderTimeoutSeconds = pCfg.Server.ReadHeaderTimeoutSeconds
		}
	}
	if pCfg.Logger != nil {
		if pCfg.Logger.Level != "" {
			cfg.Logger.Level = LogLevel(strings.ToLower(string(pCfg.Logger.Level)))
		}
		if pCfg.Logger.Format != "" {
			cfg.Logger.Format = LogFormat(strings.ToLower(string(pCfg.Logger.Format)))
		}
	}
	if pCfg.Metrics != nil {
		cfg.Metrics.Enabled = pCfg.Metrics.Enabled
		if pCfg.Metrics.Path != "" {
			cfg.Metrics.Path = pCfg.Metrics.Path
		}
	}
	if pCfg.RateLimit != nil {
		cfg.RateLimit = *pCfg.RateLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", loadPath, err)
	}

	return cfg, nil
}
