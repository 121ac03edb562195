package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	DataPath string
	Addr     string
	LogLevel string
	LogDev   bool
}

// Load reads an optional .env file and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] Ignoring unreadable .env: %v", err)
	}

	return &Config{
		DataPath: getEnv("LISTINGS_DATA_PATH", "data/listings.json"),
		Addr:     getEnv("LISTINGS_ADDR", ":8080"),
		LogLevel: getEnv("LISTINGS_LOG_LEVEL", "info"),
		LogDev:   getEnvBool("LISTINGS_LOG_DEV", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
