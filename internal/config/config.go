package config

import (
	"os"
	"time"
)

// DefaultJWTSecret is the fallback signing secret for local development.
// Production deployments must set JWT_SECRET.
const DefaultJWTSecret = "farmgate-dev-secret"

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Demo data
	SeedDemoData bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h")),

		SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
