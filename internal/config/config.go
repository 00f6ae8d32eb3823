package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all client configuration, read from the environment.
type Config struct {
	// APIBaseURL is the base URL of the Socratic backend.
	APIBaseURL string `env:"SOCRATIC_API_URL" envDefault:"http://localhost:8000"`

	// HTTPTimeout is the per-request timeout for backend calls.
	HTTPTimeout time.Duration `env:"SOCRATIC_HTTP_TIMEOUT" envDefault:"60s"`

	// DBPath overrides the default SQLite database location.
	DBPath string `env:"SOCRATIC_DB"`

	// LogFile is where the application log is written. The TUI owns
	// stdout, so logs always go to a file.
	LogFile string `env:"SOCRATIC_LOG_FILE"`

	// QuizTimer enables the per-quiz countdown (2 minutes per question).
	QuizTimer bool `env:"SOCRATIC_QUIZ_TIMER" envDefault:"true"`
}

// Load reads configuration from a .env file (if present) and the
// environment. Environment variables win over .env entries.
func Load() (*Config, error) {
	// Missing .env is fine; godotenv never overrides existing vars.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SOCRATIC_API_URL %q is not a valid URL", c.APIBaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("SOCRATIC_HTTP_TIMEOUT must be positive")
	}
	return nil
}
