// Package config loads client configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client settings. The ask and upload endpoints share
// one base URL unless INFOGENIE_UPLOAD_BASE_URL splits them out.
type Config struct {
	BaseURL        string
	UploadBaseURL  string
	RequestTimeout time.Duration
	WatchDir       string
}

// Load reads configuration from a .env file if present, then from
// environment variables.
func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	base := getEnvOrDefault("INFOGENIE_API_BASE_URL", "http://localhost:8000")

	return &Config{
		BaseURL:        base,
		UploadBaseURL:  getEnvOrDefault("INFOGENIE_UPLOAD_BASE_URL", base),
		RequestTimeout: time.Duration(getEnvAsIntOrDefault("INFOGENIE_REQUEST_TIMEOUT_SECONDS", 60)) * time.Second,
		WatchDir:       getEnvOrDefault("INFOGENIE_WATCH_DIR", ""),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
