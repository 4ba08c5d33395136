package config

import (
	"encoding/json"
	"os"

	"github.com/artembredak/todocli/internal/flagx"
	"github.com/artembredak/todocli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL   string         `json:"api_base_url"`
	HTTPTimeout  timex.Duration `json:"http_timeout"`
	StateDBPath  string         `json:"state_db_path"`
	PingInterval timex.Duration `json:"ping_interval"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when absent, nothing is loaded. Only
// fields actually present in the file override earlier layers. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.PingInterval.Duration != 0 {
		cfg.PingInterval = jc.PingInterval.Duration
	}
}
