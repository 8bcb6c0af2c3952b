package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort           string
	JWTSecret            string
	Environment          string
	SessionDir           string
	VendorTimeoutSeconds int
}

var AppConfig *Config

func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// .env file is optional, continue without it
	}

	AppConfig = &Config{
		ServerPort:           getEnv("PORT", "8080"),
		JWTSecret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		SessionDir:           getEnv("SESSION_DIR", ".civic-sessions"),
		VendorTimeoutSeconds: getEnvInt("VENDOR_TIMEOUT_SECONDS", 30),
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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
