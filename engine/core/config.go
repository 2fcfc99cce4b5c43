package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/batch2d/engine/colors"
	"gopkg.in/yaml.v3"
)

// DefaultConfig is used for every field a config file leaves out.
func DefaultConfig() Config {
	return Config{
		Title:      "batch2d",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
}

// LoadConfig reads a YAML config over DefaultConfig. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %s: invalid window size %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
