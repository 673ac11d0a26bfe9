package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config se arma desde variables de entorno (y .env si existe).
// Sin DB_DSN ni REDIS_URL se usa el store en memoria (modo dev).
type Config struct {
	Port        string        `env:"PORT" default:"8080"`
	DatabaseDSN string        `env:"DB_DSN"`
	RedisURL    string        `env:"REDIS_URL"`
	RedisPrefix string        `env:"REDIS_PREFIX" default:"medtracker:"`
	TickPeriod  time.Duration `env:"TICK_INTERVAL" default:"60s"`
	Timezone    string        `env:"TIMEZONE" default:"Local"`
	LogLevel    string        `env:"LOG_LEVEL" default:"info"`
	LogFormat   string        `env:"LOG_FORMAT" default:"text"`
	AppName     string        `env:"APP_NAME" default:"medication-tracker"`
}

// Load devuelve también si se leyó un .env, para loguearlo una vez creado el logger.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, dotenv, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, dotenv, err
	}
	return &cfg, dotenv, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if cfg.TickPeriod <= 0 {
		return fmt.Errorf("TICK_INTERVAL must be positive, got %s", cfg.TickPeriod)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return nil
}

// Location es la zona horaria usada para mostrar el historial.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
