package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Solver struct {
		// DefaultPrecision applies when a request does not carry one.
		DefaultPrecision float64 `env:"SOLVER_DEFAULT_PRECISION" envDefault:"1e-5"`
		// MaxDegree rejects oversized polynomials before isolation.
		MaxDegree int `env:"SOLVER_MAX_DEGREE" envDefault:"64"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Environment == "development" && cfg.Logging.Level == "" {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
