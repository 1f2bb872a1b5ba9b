package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. They seed CLI flag defaults;
// explicit flags still win.
type Env struct {
	DBPath   string `env:"KENG_DB" envDefault:"~/.keng/keng.db"`
	FPS      int    `env:"KENG_FPS" envDefault:"60"`
	LogPath  string `env:"KENG_LOG"`
	LogLevel string `env:"KENG_LOG_LEVEL" envDefault:"info"`
	SSHAddr  string `env:"KENG_SSH_ADDR" envDefault:":23234"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the environment settings with defaults applied.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
