// Package config handles configuration for the blogcli client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the blogcli CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the blog API (no trailing slash needed).
//   - UploadBasePath: base URL that bare image filenames resolve against.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local sqlite file (credential + feed cache).
type Config struct {
	ServerBaseURL  string
	UploadBasePath string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.UploadBasePath = "http://localhost:5000/uploads"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "blog.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
