package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	DBPath           string `envconfig:"DB_PATH" default:"data/vitalis.db"`
	SecretKey        string `envconfig:"SECRET_KEY"`
	TZ               string `envconfig:"TZ" default:"UTC"`
	CookieSecure     bool   `envconfig:"COOKIE_SECURE" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat        string `envconfig:"LOG_FORMAT" default:"console"`
	ReminderSchedule string `envconfig:"REMINDER_SCHEDULE" default:"0 8 * * *"`
	ReminderLeadDays int    `envconfig:"REMINDER_LEAD_DAYS" default:"2"`
	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// Load reads VITALIS_* variables, after an optional .env file.
func Load() (*Config, error) {
	cfg, err := LoadTooling()
	if err != nil {
		return nil, err
	}
	if err := ValidateSecretKey(cfg.SecretKey); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTooling is Load without the secret key check, for maintenance commands
// that never issue tokens.
func LoadTooling() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("vitalis", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.ReminderLeadDays < 0 {
		return nil, fmt.Errorf("VITALIS_REMINDER_LEAD_DAYS must be non-negative, got %d", cfg.ReminderLeadDays)
	}
	return &cfg, nil
}

func ValidateSecretKey(secret string) error {
	value := strings.TrimSpace(secret)
	if value == "" {
		return errors.New("VITALIS_SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[value]; insecure {
		return errors.New("VITALIS_SECRET_KEY uses an insecure placeholder")
	}
	if len(value) < minSecretKeyLength {
		return fmt.Errorf("VITALIS_SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return nil
}

// Location resolves TZ, falling back to UTC when the zone is unknown.
func (cfg *Config) Location() (*time.Location, bool) {
	location, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		return time.UTC, false
	}
	return location, true
}
