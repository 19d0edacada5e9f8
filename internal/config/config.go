// Package config loads the tool's credentials from the process environment,
// with an optional .env file for local use.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// TokenEnvVar is the environment variable holding the API bearer token
const TokenEnvVar = "X_BEARER_TOKEN"

// ErrMissingToken indicates the bearer token is not configured
var ErrMissingToken = errors.New("missing " + TokenEnvVar + " environment variable")

// Config holds everything the CLI needs beyond its flags
type Config struct {
	BearerToken string
}

// Load reads configuration from a .env file (if present) and the process
// environment. A missing token is a fatal configuration error.
func Load() (*Config, error) {
	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	token := os.Getenv(TokenEnvVar)
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Config{BearerToken: token}, nil
}
