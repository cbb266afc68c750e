// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir     = "/data"
	DefaultJPEGQuality = 90
)

type Config struct {
	DataDir     string `yaml:"data_dir"`
	JPEGQuality int    `yaml:"jpeg_quality"`
}

// Load reads the yaml config at path. A missing file is not an error; the
// defaults apply so the tool works without any configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.JPEGQuality == 0 {
		cfg.JPEGQuality = DefaultJPEGQuality
	}

	return &cfg, nil
}
