package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	GinMode      string
	FrontendURLs []string

	// Skyscanner via RapidAPI
	RapidAPIKey  string
	RapidAPIHost string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
}

// Load loads configuration from environment variables
func Load() *Config {
	// .env is optional; production sets env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),

		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "skyscanner44.p.rapidapi.com"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "rushed"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
	}

	cfg.FrontendURLs = []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			cfg.FrontendURLs = append(cfg.FrontendURLs, u)
		}
	}

	if cfg.RapidAPIKey == "" {
		log.Println("⚠️  RAPIDAPI_KEY not set, search will use fallback data")
	}

	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
