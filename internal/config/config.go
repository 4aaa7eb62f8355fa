// Package config provides configuration for the mark server.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Gemini settings
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from the environment, reading a .env file
// first when one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:  getEnv("DATABASE_URL", "file:mark.db?cache=shared&mode=rwc"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LLMTimeout:   time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
