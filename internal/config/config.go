package config

import "os"

// Config holds application configuration.
type Config struct {
	Address  string
	DBPath   string
	SeedPath string
	LogLevel string
}

// NewConfig loads configuration from environment variables.
func NewConfig() *Config {
	return &Config{
		Address:  getEnv("API_ADDRESS", ":8080"),
		DBPath:   getEnv("DB_PATH", "data/deals.db"),
		SeedPath: getEnv("SEED_DEALS_PATH", "data/seed_deals.json"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
