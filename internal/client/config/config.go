package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the REST API.
//   - GRPCAddr: address of the gRPC health endpoint.
//   - Timeout: per-request deadline.
type Config struct {
	ServerURL string
	GRPCAddr  string
	Timeout   time.Duration
}

// LoadDefaults populates c with defaults matching a locally running server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.GRPCAddr = "localhost:50051"
	c.Timeout = 10 * time.Second
}

// LoadConfig returns the defaults overlaid with the file at path.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path == "" {
		return cfg, nil
	}
	if err := parseFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
