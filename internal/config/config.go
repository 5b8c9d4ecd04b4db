package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DotEnvFile is loaded into the environment when present in the working directory.
var DotEnvFile = ".env"

type App struct {
	Port            string        `env:"API_PORT" envDefault:"5000"`
	DBDriver        string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBConnectionURL string        `env:"DB_CONNECTION_URL" envDefault:"database.db"`
	SessionSecret   string        `env:"SESSION_SECRET,required"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SecureCookie    bool          `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

func NewApp() (App, error) {
	if _, err := os.Stat(DotEnvFile); err == nil {
		if err := godotenv.Load(DotEnvFile); err != nil {
			return App{}, fmt.Errorf("load %s: %w", DotEnvFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("stat %s: %w", DotEnvFile, err)
	}

	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.DBDriver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.SessionSecret, validation.Required, validation.Length(16, 0)),
		validation.Field(&a.SessionTTL, validation.Required, validation.Min(time.Minute)),
		validation.Field(&a.BcryptCost, validation.Min(4), validation.Max(31)),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}
