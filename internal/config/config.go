package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8080"`
	DataDir       string     `env:"DATA_DIR" envDefault:"data"`
	HuntFile      string     `env:"HUNT_FILE"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir        string     `env:"SPA_DIR" envDefault:"../web/dist"`
	JWTSecret     string     `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	AdminPassword string     `env:"ADMIN_PASSWORD" envDefault:"letmein"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
