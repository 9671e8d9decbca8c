package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the CLI configuration.
type FileConfig struct {
	ServerURL string         `json:"server_url" yaml:"server_url"`
	GRPCAddr  string         `json:"grpc_addr" yaml:"grpc_addr"`
	Timeout   timex.Duration `json:"timeout" yaml:"timeout"`
}

func parseFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.GRPCAddr != "" {
		cfg.GRPCAddr = fc.GRPCAddr
	}
	if fc.Timeout.Duration > 0 {
		cfg.Timeout = fc.Timeout.Duration
	}
	return nil
}
