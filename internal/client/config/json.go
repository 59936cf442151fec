package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/blogcli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are specified as integer seconds. After parsing, set values are copied
// into the runtime Config.
type JsonConfig struct {
	ServerBaseURL     string `json:"server_base_url"`
	UploadBasePath    string `json:"upload_base_path"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	DatabasePath      string `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given, nothing is loaded. Read or unmarshal errors panic (the
// caller asked for a config file that cannot be used).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.UploadBasePath != "" {
		cfg.UploadBasePath = jc.UploadBasePath
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
