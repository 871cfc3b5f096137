package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

type Config struct {
	Addr         string `env:"ADDR"          envDefault:":8080"`
	SettingsFile string `env:"SETTINGS_FILE"`
	DBPath       string `env:"DB_PATH"`
	LogFormat    string `env:"LOG_FORMAT"    envDefault:"text"`
	LogLevel     string `env:"LOG_LEVEL"     envDefault:"info"`
}

// LoadDotEnv merges a local .env file into the process environment when one
// exists. Missing file is fine; the OS environment is used as-is.
func LoadDotEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Debug("No .env file found, using OS environment")
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
