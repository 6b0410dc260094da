package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	DBPath                string
	DBDriver              string
	SnapcraftIOURI        string
	ChartTTL              time.Duration
	GRPCPort              int
	GRPCReflectionEnabled bool
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	portStr := getEnv("GRPC_PORT", "50051")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 50051
	}

	reflectionStr := getEnv("GRPC_REFLECTION_ENABLED", "false")
	reflection, err := strconv.ParseBool(reflectionStr)
	if err != nil {
		reflection = false
	}

	ttlStr := getEnv("CHART_TTL_HOURS", "24")
	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		DBPath:                getEnv("DB_PATH", "./data/ratings.db"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite3"),
		SnapcraftIOURI:        getEnv("SNAPCRAFT_IO_URI", "https://api.snapcraft.io"),
		ChartTTL:              time.Duration(ttlHours) * time.Hour,
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
