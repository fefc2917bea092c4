package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration, populated from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret   string `env:"JWT_SECRET"`
	Domain      string `env:"DOMAIN"`

	SMTPHost    string `env:"SMTP_HOST"`
	SMTPPort    string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser    string `env:"SMTP_USERNAME"`
	SMTPPass    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SENDER_EMAIL"`
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Accounts left unverified longer than PurgeAfter are removed by the
	// cleanup job.
	PurgeSchedule string        `env:"PURGE_SCHEDULE" envDefault:"@daily"`
	PurgeAfter    time.Duration `env:"PURGE_AFTER" envDefault:"720h"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// MailEnabled reports whether enough SMTP settings are present to send
// verification emails.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}
