package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/avjensen/realkredit-compare/internal/config"
	"github.com/avjensen/realkredit-compare/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize int64                `yaml:"maxBodySize"`
	Logging     config.LoggingConfig `yaml:"logging"`
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:     constants.DefaultServerAddress,
		MaxBodySize: constants.DefaultMaxBodySizeBytes,
		Logging:     config.LoggingConfig{},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}
}
