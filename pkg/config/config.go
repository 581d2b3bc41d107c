package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Base URLs of the external services the client orchestrates.
	AuthBaseURL         string
	JournalBaseURL      string
	AppointmentsBaseURL string
	SentimentBaseURL    string

	// DemoMode serves all data operations from in-memory fixtures
	// instead of the network.
	DemoMode bool

	// SessionDBPath is the local durable store holding the session keys.
	SessionDBPath string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	demoMode := false
	if raw := os.Getenv("DEMO_MODE"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			demoMode = parsed
		}
	}

	authBase := getEnv("AUTH_BASE_URL", "http://localhost:8080/api")

	return &Config{
		Port:                getEnv("PORT", "3000"),
		AuthBaseURL:         authBase,
		JournalBaseURL:      getEnv("JOURNAL_BASE_URL", authBase),
		AppointmentsBaseURL: getEnv("APPOINTMENTS_BASE_URL", authBase),
		SentimentBaseURL:    getEnv("SENTIMENT_BASE_URL", "http://127.0.0.1:8000"),
		DemoMode:            demoMode,
		SessionDBPath:       getEnv("SESSION_DB_PATH", "mindcare-session.db"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
