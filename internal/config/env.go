// Package config loads runtime settings: process-level knobs from the
// environment and puzzle parameters from an optional YAML file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from ADVENT_* environment variables.
type Env struct {
	InputDir   string `env:"ADVENT_INPUT_DIR" envDefault:"data"`
	LogLevel   string `env:"ADVENT_LOG_LEVEL" envDefault:"info"`
	LogPretty  bool   `env:"ADVENT_LOG_PRETTY" envDefault:"true"`
	ConfigPath string `env:"ADVENT_CONFIG"`
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// LoadEnvFrom parses Env from the given variables instead of the process
// environment.
func LoadEnvFrom(vars map[string]string) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
