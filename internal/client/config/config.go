// Package config assembles the runtime settings of the todocli client from
// layered sources: built-in defaults, a JSON file, the environment (with
// optional .env support), and command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the todocli client.
//
// Fields:
//   - APIBaseURL: base URL of the task service HTTP endpoint.
//   - HTTPTimeout: per-request round-trip timeout.
//   - StateDBPath: sqlite file holding persisted session state.
//   - PingInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL   string
	HTTPTimeout  time.Duration
	StateDBPath  string
	PingInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.HTTPTimeout = 15 * time.Second
	c.StateDBPath = "todocli.db"
	c.PingInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
