// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// ClassifierConfig provides settings for the intent classifier and its
// underlying chat-completion client.
type ClassifierConfig interface {
	GetGroqAPIKey() string
	GetGroqBaseURL() string
	GetGroqModel() string
	GetAIFailureMode() string
	GetAITimeout() time.Duration
	GetAIRequestsPerSecond() float64
}

// FailureMode values for the intent classifier.
const (
	// FailureModeDegrade substitutes a neutral default result when the
	// classifier call fails, so a scoring run always completes.
	FailureModeDegrade = "degrade"
	// FailureModeFail propagates classifier failures and aborts the run.
	FailureModeFail = "fail"
)

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	DatabaseURL         string
	CORSAllowAll        bool
	CORSOrigins         []string
	CORSAllowCreds      bool
	GroqAPIKey          string
	GroqBaseURL         string
	GroqModel           string
	AIFailureMode       string
	AITimeout           time.Duration
	AIRequestsPerSecond float64
}

// Load reads configuration from the environment, applying defaults.
// A .env file is honored when present (development convenience).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                 getEnv("ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":3010"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		CORSAllowAll:        getEnvBool("CORS_ALLOW_ALL", true),
		CORSOrigins:         getEnvList("CORS_ORIGINS"),
		CORSAllowCreds:      getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		GroqAPIKey:          os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:           getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		AIFailureMode:       getEnv("SCORING_AI_FAILURE_MODE", FailureModeDegrade),
		AITimeout:           getEnvDuration("SCORING_AI_TIMEOUT", 30*time.Second),
		AIRequestsPerSecond: getEnvFloat("SCORING_AI_RPS", 2),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	switch cfg.AIFailureMode {
	case FailureModeDegrade, FailureModeFail:
	default:
		return nil, fmt.Errorf("SCORING_AI_FAILURE_MODE must be %q or %q, got %q",
			FailureModeDegrade, FailureModeFail, cfg.AIFailureMode)
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }

func (c *Config) GetGroqAPIKey() string { return c.GroqAPIKey }
func (c *Config) GetGroqBaseURL() string { return c.GroqBaseURL }
func (c *Config) GetGroqModel() string { return c.GroqModel }
func (c *Config) GetAIFailureMode() string { return c.AIFailureMode }
func (c *Config) GetAITimeout() time.Duration { return c.AITimeout }
func (c *Config) GetAIRequestsPerSecond() float64 { return c.AIRequestsPerSecond }

// =============================================================================
// Env helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
