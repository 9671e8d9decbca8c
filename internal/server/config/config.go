// Package config handles configuration for the gophsocial server:
// defaults, an optional JSON or YAML file, then command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the REST API.
//   - EndpointAddrGRPC: bind address of the gRPC health endpoint; empty disables it.
//   - HomepageFile: HTML file returned verbatim by GET /index.
//   - StaticDir: directory served for paths no route matches.
//   - MaxUploadSize: upper bound for a multipart post body, in bytes.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	HomepageFile     string
	StaticDir        string
	MaxUploadSize    int64
	ShutdownTimeout  time.Duration
	LogLevel         string
	LogFormat        string
}

const megabyte = 1 << 20

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.HomepageFile = "homepage.html"
	c.StaticDir = "images"
	c.MaxUploadSize = 10 * megabyte
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
