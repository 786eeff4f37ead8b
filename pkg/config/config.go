// Package config provides the configuration surface for the diligent server:
// typed sections with built-in defaults, a YAML loader, environment
// overrides, and a validator. Values are read once at startup; the resulting
// Config is treated as read-only afterward.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Config is the root configuration object.
type Config struct {
	Server     *ServerConfig     `yaml:"server"`
	Queue      *QueueConfig      `yaml:"queue"`
	Resilience *ResilienceConfig `yaml:"resilience"`
	Pipeline   *PipelineConfig   `yaml:"pipeline"`
	Synthesis  *SynthesisConfig  `yaml:"synthesis"`
	Collectors *CollectorsConfig `yaml:"collectors"`
}

// Initialize loads configuration from configDir/diligent.yaml (if present),
// applies environment overrides, validates, and returns the result.
// A missing file is not an error: defaults apply.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "diligent.yaml")
	if _, err := os.Stat(path); err == nil {
		loaded, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		cfg = Merge(cfg, loaded)
		slog.Info("Loaded configuration file", "path", path)
	} else {
		slog.Info("No configuration file found, using defaults", "path", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:     DefaultServerConfig(),
		Queue:      DefaultQueueConfig(),
		Resilience: DefaultResilienceConfig(),
		Pipeline:   DefaultPipelineConfig(),
		Synthesis:  DefaultSynthesisConfig(),
		Collectors: DefaultCollectorsConfig(),
	}
}
