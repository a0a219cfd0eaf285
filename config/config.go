package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment     string
	Port            string
	DBUrl           string
	SeedFile        string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Email           EmailConfig
}

// EmailConfig holds the settings for signup confirmation emails.
// Provider "noop" (the default) logs instead of sending.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		DBUrl:           os.Getenv("DATABASE_URL"),
		SeedFile:        os.Getenv("SEED_FILE"),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout: 10 * time.Second,
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = "activities@mergington.edu"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Mergington High School"
	}
	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			log.Printf("Warning: invalid SHUTDOWN_TIMEOUT %q, using %s", s, cfg.ShutdownTimeout)
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	// DBUrl stays empty when unset: the signup log is optional.
	return cfg, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
