package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string

	// Server
	Port  string
	Debug bool

	// Matching
	DefaultTopN      int // shortlist size when the caller does not pass topN
	MatchConcurrency int // parallel scoring workers per batch

	// Authentication
	JWTSecret string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Matching
		DefaultTopN:      getEnvInt("MATCH_DEFAULT_TOP_N", 20),
		MatchConcurrency: getEnvInt("MATCH_CONCURRENCY", 8),

		// Authentication
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// ProjectID is required for Firestore
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore"}
	}

	if c.DefaultTopN <= 0 {
		return &ConfigError{Field: "MATCH_DEFAULT_TOP_N", Message: "MATCH_DEFAULT_TOP_N must be positive"}
	}
	if c.MatchConcurrency <= 0 {
		return &ConfigError{Field: "MATCH_CONCURRENCY", Message: "MATCH_CONCURRENCY must be positive"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
