// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied where the file and environment are silent.
const (
	DefaultEmbedTimeout = 30 * time.Second
	DefaultRunTimeout   = 5 * time.Minute
)

// Config holds the scorer's runtime configuration. Values can come from a
// JSON file, with environment variables taking precedence for the
// credentials and connection settings.
type Config struct {
	DatabaseURL    string `json:"database_url,omitempty" validate:"required"`
	GeminiAPIKey   string `json:"api_key,omitempty" validate:"required"`
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// Classification cutoffs; per-category overrides come through here from
	// assessment configuration.
	StrengthThreshold    float64 `json:"strength_threshold,omitempty" validate:"gte=0,lte=1"`
	ImprovementThreshold float64 `json:"improvement_threshold,omitempty" validate:"gte=0,lte=1,ltefield=StrengthThreshold"`

	EmbedTimeoutSeconds int `json:"embed_timeout_seconds,omitempty" validate:"gte=0"`
	RunTimeoutSeconds   int `json:"run_timeout_seconds,omitempty" validate:"gte=0"`
}

// Load reads configuration from an optional JSON file, overlays environment
// variables, and applies defaults. Pass an empty path to configure from the
// environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.EmbeddingModel = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StrengthThreshold == 0 {
		c.StrengthThreshold = 0.70
	}
	if c.ImprovementThreshold == 0 {
		c.ImprovementThreshold = 0.40
	}
	if c.EmbedTimeoutSeconds == 0 {
		c.EmbedTimeoutSeconds = int(DefaultEmbedTimeout.Seconds())
	}
	if c.RunTimeoutSeconds == 0 {
		c.RunTimeoutSeconds = int(DefaultRunTimeout.Seconds())
	}
}

// Validate checks the configuration after loading and defaulting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range validationErrors {
				return fmt.Errorf("config error: field %s failed %s validation", fe.Field(), fe.Tag())
			}
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// EmbedTimeout returns the per-embedding-call timeout.
func (c *Config) EmbedTimeout() time.Duration {
	return time.Duration(c.EmbedTimeoutSeconds) * time.Second
}

// RunTimeout returns the overall per-scoring-run timeout.
func (c *Config) RunTimeout() time.Duration {
	return time.Duration(c.RunTimeoutSeconds) * time.Second
}
