package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration carries everything the current
// environment requires. The Gemini key is only enforced outside tests so the
// suite can construct configs without vendor credentials.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}
	if cfg.MongoURI == "" {
		errors = append(errors, "MONGO_URI must not be empty")
	}
	if cfg.MongoDatabase == "" {
		errors = append(errors, "MONGO_DATABASE must not be empty")
	}
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errors = append(errors, "REDIS_URL or REDIS_HOST and REDIS_PORT must be set")
	}

	if !IsTest() && cfg.GeminiAPIKey == "" {
		errors = append(errors, "GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
