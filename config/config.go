package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// Contact delivery (Resend)
	ResendAPIKey     string `env:"RESEND_API_KEY"`
	ContactFromEmail string `env:"CONTACT_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	ContactFromName  string `env:"CONTACT_FROM_NAME" envDefault:"Portfolio Contact"`
	ContactEmailTo   string `env:"CONTACT_TO_EMAIL"`
	ContactSubject   string `env:"CONTACT_SUBJECT" envDefault:"New Message from Portfolio"`

	AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:8080"`
	SiteContentFile string   `env:"SITE_CONTENT_FILE"`
	ContentS3       S3Config `envPrefix:"SITE_CONTENT_S3_"`

	Log       LogConfig       `envPrefix:"LOG_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
}

// LogConfig controls the slog handler and the optional rotating log file.
type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	File       string `env:"FILE"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"28"`
}

// S3Config points at a content file kept in an S3-compatible bucket.
type S3Config struct {
	Bucket          string `env:"BUCKET"`
	Key             string `env:"KEY" envDefault:"portfolio.yaml"`
	Region          string `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

type TelemetryConfig struct {
	Endpoint    string `env:"EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"portfolio-site"`
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production reads the real environment
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact submissions will fail with a configuration error.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_TO_EMAIL is missing. Contact submissions will fail with a configuration error.")
	}

	return cfg, nil
}

// IsProduction reports whether strict production behaviour (release mode, CORS) applies.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// ContactSender formats the fixed sender identity as "Name <address>".
func (c *Config) ContactSender() string {
	if c.ContactFromName == "" {
		return c.ContactFromEmail
	}
	return fmt.Sprintf("%s <%s>", c.ContactFromName, c.ContactFromEmail)
}
