package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogFile     string `env:"LOG_FILE"`

	// SMTP Transport Configuration
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPSecure   bool   `env:"SMTP_SECURE" envDefault:"true"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// Contact Pipeline Configuration
	ContactEmail string        `env:"CONTACT_EMAIL"`
	SiteName     string        `env:"SITE_NAME" envDefault:"Portfolio"`
	SiteURL      string        `env:"PUBLIC_SITE_URL"`
	MailTimeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"30s"`

	// Rate Limit Configuration
	RateLimitIPMax       int           `env:"RATE_LIMIT_IP_MAX" envDefault:"3"`
	RateLimitIPWindow    time.Duration `env:"RATE_LIMIT_IP_WINDOW" envDefault:"1h"`
	RateLimitEmailMax    int           `env:"RATE_LIMIT_EMAIL_MAX" envDefault:"36"`
	RateLimitEmailWindow time.Duration `env:"RATE_LIMIT_EMAIL_WINDOW" envDefault:"24h"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. godotenv does not overwrite variables
	// that are already set, so the real environment always wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// MissingSMTPVars returns the names of mandatory mail variables that are not
// set. A non-empty result means no send may be attempted.
func (c *Config) MissingSMTPVars() []string {
	var missing []string
	if c.SMTPUser == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.SMTPPassword == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if c.ContactEmail == "" {
		missing = append(missing, "CONTACT_EMAIL")
	}
	return missing
}

// MissingOptionalVars returns the names of optional mail variables that are
// not set. These degrade the service but do not block sends.
func (c *Config) MissingOptionalVars() []string {
	var missing []string
	if c.SMTPFrom == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if c.SiteURL == "" {
		missing = append(missing, "PUBLIC_SITE_URL")
	}
	return missing
}

// FromAddress returns the display-from address, falling back to the
// authenticated user.
func (c *Config) FromAddress() string {
	if c.SMTPFrom != "" {
		return c.SMTPFrom
	}
	return c.SMTPUser
}
