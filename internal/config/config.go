package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings read from the environment (and .env).
type Config struct {
	Port    string
	AppName string

	// DBDriver selects the persistence mirror: "postgres", "sqlite" or "" for memory only.
	DBDriver    string
	DatabaseURL string
	DBVerbose   bool

	JWTSecret     string
	AuthEnabled   bool
	AdminEmail    string
	AdminPassword string
	ClerkEmail    string
	ClerkPassword string

	SeedDemoData       bool
	StrictTransactions bool
}

const defaultJWTSecret = "your-super-secret-key-change-in-production"

func Load() Config {
	return Config{
		Port:               getEnv("PORT", "3000"),
		AppName:            getEnv("APP_NAME", "Inventory Tracker v1.0"),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", "")),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBVerbose:          parseBool(os.Getenv("DB_VERBOSE"), false),
		JWTSecret:          getEnv("JWT_SECRET", defaultJWTSecret),
		AuthEnabled:        parseBool(os.Getenv("AUTH_ENABLED"), true),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		ClerkEmail:         getEnv("CLERK_EMAIL", ""),
		ClerkPassword:      getEnv("CLERK_PASSWORD", ""),
		SeedDemoData:       parseBool(os.Getenv("SEED_DEMO_DATA"), true),
		StrictTransactions: parseBool(os.Getenv("STRICT_TRANSACTIONS"), false),
	}
}

// UsesDefaultSecret reports whether JWT_SECRET was left unset.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string, fallback bool) bool {
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
