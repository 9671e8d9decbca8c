package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/flagx"
	"github.com/dmitrijs2005/gophsocial/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations use
// timex.Duration so both "5s" and integer nanoseconds are accepted.
type FileConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC *string        `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	HomepageFile     string         `json:"homepage_file" yaml:"homepage_file"`
	StaticDir        string         `json:"static_dir" yaml:"static_dir"`
	MaxUploadSize    int64          `json:"max_upload_size" yaml:"max_upload_size"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel         string         `json:"log_level" yaml:"log_level"`
	LogFormat        string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays values from the file named by -c/-config onto config.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// Only fields present in the file are applied; endpoint_addr_grpc may be set
// to an empty string to disable the gRPC endpoint. An unreadable or malformed
// file panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.HomepageFile != "" {
		config.HomepageFile = c.HomepageFile
	}
	if c.StaticDir != "" {
		config.StaticDir = c.StaticDir
	}
	if c.MaxUploadSize > 0 {
		config.MaxUploadSize = c.MaxUploadSize
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
}
