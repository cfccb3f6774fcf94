package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// MongoDB configuration
	MongoURI      string
	MongoUser     string
	MongoPassword string
	MongoDatabase string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Generation service configuration
	GeminiAPIKey string
	GeminiAPIURL string
	ImageAPIURL  string
	SessionTag   string
}

// LoadConfig creates a new Config instance from environment variables. In
// development a .env file is loaded first; sensitive values may also come
// from *_FILE secret files.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; plain env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort:    envOr("SERVER_PORT", "8080"),
		ServerHost:    envOr("SERVER_HOST", "0.0.0.0"),
		MongoURI:      envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoUser:     os.Getenv("MONGO_USER"),
		MongoPassword: secretValue("MONGO_PASSWORD"),
		MongoDatabase: envOr("MONGO_DATABASE", "recipewreck"),
		RedisHost:     envOr("REDIS_HOST", "localhost"),
		RedisPort:     envOr("REDIS_PORT", "6379"),
		RedisPassword: secretValue("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		GeminiAPIKey:  secretValue("GEMINI_API_KEY"),
		GeminiAPIURL:  envOr("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"),
		ImageAPIURL:   envOr("IMAGE_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash-preview-image-generation:generateContent"),
		SessionTag:    envOr("SESSION_TAG", "onboarding-demo"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envOr returns the environment variable value or a default when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// secretValue resolves a sensitive value from the environment or, when a
// KEY_FILE variable is set, from the file it points at.
func secretValue(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if file := os.Getenv(key + "_FILE"); file != "" {
		if data, err := os.ReadFile(file); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}
