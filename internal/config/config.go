package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run paths. Defaults mirror the layout the scraping
// pipeline writes to.
type Config struct {
	MPDir  string `yaml:"mp_dir"`
	PLDir  string `yaml:"pl_dir"`
	OutDir string `yaml:"out_dir"`
}

func Default() Config {
	return Config{
		MPDir:  "data/mp",
		PLDir:  "data/pl",
		OutDir: "docs/data",
	}
}

// Load layers the YAML file at path over the defaults. A missing file
// only errors when the path was given explicitly; unset fields keep
// their defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if file.MPDir != "" {
		cfg.MPDir = file.MPDir
	}
	if file.PLDir != "" {
		cfg.PLDir = file.PLDir
	}
	if file.OutDir != "" {
		cfg.OutDir = file.OutDir
	}
	return cfg, nil
}
