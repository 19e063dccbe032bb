package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Model
	ModelPath         string
	PredictionTimeout time.Duration

	// Roster
	PlayersPath string

	// Prediction cache
	CacheCapacity int
}

// Load loads configuration from environment variables. Everything has a
// development default; the model weights file is only read on first use, so
// a missing MODEL_PATH does not fail startup.
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		ModelPath:         getEnv("MODEL_PATH", "models/shot_model.json"),
		PredictionTimeout: getEnvDuration("PREDICTION_TIMEOUT", 5*time.Second),

		PlayersPath: getEnv("PLAYERS_PATH", "data/players.json"),

		CacheCapacity: getEnvInt("CACHE_CAPACITY", 1000),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
