// Package config handles viewer configuration loading and persistence.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds all viewer settings.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Display  DisplayConfig  `yaml:"display"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`

	// path is the file the config was loaded from, if any.
	path string
	// fileLogging is Logging before flag overrides; Save writes it back.
	fileLogging *LoggingConfig
}

// ViewportConfig holds the window size in logical pixels.
type ViewportConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// DisplayConfig holds the persisted display toggles and colors.
type DisplayConfig struct {
	Axes       bool   `yaml:"axes"`
	Grid       bool   `yaml:"grid"`
	Info       bool   `yaml:"info"`
	Background string `yaml:"background"` // #rrggbb
	Text       string `yaml:"text"`       // #rrggbb
}

// SceneConfig lists the objects to show. Empty means the demo scene.
type SceneConfig struct {
	Boxes []BoxConfig `yaml:"boxes"`
}

// BoxConfig is one box object, Z up.
type BoxConfig struct {
	Name   string     `yaml:"name"`
	Center [3]float32 `yaml:"center"`
	Size   [3]float32 `yaml:"size"`
	Color  string     `yaml:"color"` // #rrggbb, empty for the default gray
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds diagnostic settings.
type DebugConfig struct {
	// PickDumpDir, when set, receives a PNG of every picking pass.
	PickDumpDir string `yaml:"pick_dump_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Display: DisplayConfig{
			Axes:       true,
			Grid:       false,
			Info:       true,
			Background: "#ffffff",
			Text:       "#000000",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// ParseColor parses a #rrggbb color.
func ParseColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
