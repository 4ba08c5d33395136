package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	EnvAPIBaseURL   = "TODOCLI_API_URL"
	EnvHTTPTimeout  = "TODOCLI_HTTP_TIMEOUT"
	EnvStateDBPath  = "TODOCLI_STATE_DB"
	EnvPingInterval = "TODOCLI_PING_INTERVAL"
)

// parseEnv overlays cfg with values found in the environment. A .env file
// in the working directory is loaded first if present; it is fine for it
// to be missing. Durations use time.ParseDuration syntax; unparsable
// values are ignored so a bad variable cannot take the client down.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv(EnvStateDBPath); v != "" {
		cfg.StateDBPath = v
	}
	if v := os.Getenv(EnvPingInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PingInterval = d
		}
	}
}
