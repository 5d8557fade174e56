package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// WinnerScoreThreshold is the minimum mean score a project needs to
	// qualify for an award. Zero or negative falls back to the ranking
	// engine default.
	WinnerScoreThreshold float64

	// BcryptCost tunes password hashing work. Zero uses the bcrypt default.
	BcryptCost int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "laureate"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName:          service,
		HTTPPort:             port,
		PostgresDSN:          os.Getenv("POSTGRES_DSN"),
		WinnerScoreThreshold: envFloat("WINNER_SCORE_THRESHOLD", 0),
		BcryptCost:           envInt("BCRYPT_COST", 0),
	}, nil
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
