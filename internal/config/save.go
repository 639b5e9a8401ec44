package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SetDisplay records the display toggles to persist.
func (c *Config) SetDisplay(axes, grid, info bool) {
	c.Display.Axes = axes
	c.Display.Grid = grid
	c.Display.Info = info
}

// Save writes the config back to the file it was loaded from, or to the
// user's config directory.
func (c *Config) Save() error {
	if c.path != "" {
		return c.SaveTo(c.path)
	}
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Logging flags last one session only.
	out := *c
	if c.fileLogging != nil {
		out.Logging = *c.fileLogging
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
