package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagWidth  = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")
	flagGrid   = flag.Bool("grid", false, "Show the reference grid")
	flagNoAxes = flag.Bool("no-axes", false, "Hide the world axes")
	flagNoInfo = flag.Bool("no-info", false, "Hide the info panel")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
	if *flagGrid {
		cfg.Display.Grid = true
	}
	if *flagNoAxes {
		cfg.Display.Axes = false
	}
	if *flagNoInfo {
		cfg.Display.Info = false
	}
}
