// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the client SDK.
type Config struct {
	// Application
	AppMode string `mapstructure:"APP_MODE" validate:"oneof=debug release test"`

	// Backend API
	APIBaseURL     string        `mapstructure:"API_BASE_URL" validate:"required,url"`
	APITimeout     time.Duration `mapstructure:"API_TIMEOUT_SECONDS"`
	APIBearerToken string        `mapstructure:"API_BEARER_TOKEN"`

	// Draft store (local cache)
	DraftDBPath      string        `mapstructure:"DRAFT_DB_PATH" validate:"required"`
	DraftKeyPrefix   string        `mapstructure:"DRAFT_KEY_PREFIX" validate:"required"`
	DraftMaxAge      time.Duration `mapstructure:"DRAFT_MAX_AGE_HOURS"`
	DraftAutosaveLag time.Duration `mapstructure:"DRAFT_AUTOSAVE_DEBOUNCE_MS"`

	// Cron Jobs
	DraftSweepSchedule string `mapstructure:"DRAFT_SWEEP_SCHEDULE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=console json"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	// Set default values
	v.SetDefault("APP_MODE", "debug")

	v.SetDefault("API_BASE_URL", "http://localhost:8000")
	v.SetDefault("API_TIMEOUT_SECONDS", 30)
	v.SetDefault("API_BEARER_TOKEN", "")

	v.SetDefault("DRAFT_DB_PATH", "hireme_drafts.db")
	v.SetDefault("DRAFT_KEY_PREFIX", "hireme_profile_")
	v.SetDefault("DRAFT_MAX_AGE_HOURS", 24)
	v.SetDefault("DRAFT_AUTOSAVE_DEBOUNCE_MS", 2000)
	v.SetDefault("DRAFT_SWEEP_SCHEDULE", "@hourly")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.APITimeout = time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second
	cfg.DraftMaxAge = time.Duration(v.GetInt("DRAFT_MAX_AGE_HOURS")) * time.Hour
	cfg.DraftAutosaveLag = time.Duration(v.GetInt("DRAFT_AUTOSAVE_DEBOUNCE_MS")) * time.Millisecond

	if err := validator.New().Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return nil, fmt.Errorf("invalid configuration: field %s failed on the '%s' rule", first.Field(), first.Tag())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
