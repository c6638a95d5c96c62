package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/wizzomafizzo/commitlint/internal/constants"
)

// Env holds overrides read from COMMITLINT_* environment variables.
type Env struct {
	History  *bool  `envconfig:"HISTORY"`
	Config   string `envconfig:"CONFIG"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	NoColor  bool   `envconfig:"NO_COLOR"`
}

// LoadEnv reads the environment overrides.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(constants.EnvPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return env, nil
}

// ApplyEnv layers the environment overrides onto c.
func (c *Config) ApplyEnv(env Env) {
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.History != nil {
		c.History.Enabled = *env.History
	}
}
