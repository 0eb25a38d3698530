// Package config loads process configuration from the environment once at
// startup. The resulting Config is immutable and passed explicitly to the
// components that need it; no package keeps its own os.Getenv calls.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting of the server process.
type Config struct {
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string

	// TokenSecret signs access tokens; TokenAlgorithm names the HMAC
	// variant (HS256/HS384/HS512); TokenTTL is the fixed token lifetime.
	TokenSecret    string
	TokenAlgorithm string
	TokenTTL       time.Duration

	ListenAddr string
}

// Load reads an optional .env file and the environment, and validates the
// settings the server cannot run without.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseHost:     getenv("DATABASE_HOSTNAME", "localhost"),
		DatabasePort:     getenv("DATABASE_PORT", "5432"),
		DatabaseUser:     getenv("DATABASE_USERNAME", "postgres"),
		DatabasePassword: os.Getenv("DATABASE_PASSWORD"),
		DatabaseName:     getenv("DATABASE_NAME", "cookcal"),
		TokenSecret:      os.Getenv("SECRET"),
		TokenAlgorithm:   getenv("ALGORITHM", "HS256"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
	}

	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("SECRET is not set")
	}

	minutes := getenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	m, err := strconv.Atoi(minutes)
	if err != nil || m <= 0 {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %q", minutes)
	}
	cfg.TokenTTL = time.Duration(m) * time.Minute

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost, c.DatabasePort, c.DatabaseUser, c.DatabasePassword, c.DatabaseName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
