package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds environment-driven configuration.
type Config struct {
	Port             string        `env:"PORT,default=8080" validate:"required,numeric"`
	StoreBackend     string        `env:"STORE_BACKEND,default=postgres" validate:"oneof=postgres memory"`
	DatabaseURL      string        `env:"DATABASE_URL" validate:"required_if=StoreBackend postgres"`
	DatabaseDriver   string        `env:"DATABASE_DRIVER,default=pgx" validate:"oneof=pgx postgres"`
	AutoCreateSchema bool          `env:"AUTO_CREATE_SCHEMA,default=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat        string        `env:"LOG_FORMAT,default=text" validate:"oneof=text json"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS,default=*"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from a local .env file (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
