// pkg/config/log.go

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// LogConfig is read from the environment before the command tree exists.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// LoadLogConfig loads LogConfig from LOG_LEVEL and LOG_DEV.
func LoadLogConfig() (*LogConfig, error) {
	var cfg LogConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	return &cfg, nil
}

// LoadLogConfigOrDefault falls back to info-level production logging when
// the environment cannot be decoded.
func LoadLogConfigOrDefault() *LogConfig {
	cfg, err := LoadLogConfig()
	if err != nil {
		return &LogConfig{Level: "info"}
	}
	return cfg
}
