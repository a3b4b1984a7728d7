package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSize      = flag.Int("size", 0, "Tile resolution (cells per tile edge)")
	flagLevels    = flag.Int("levels", 0, "Number of clipmap LOD levels")
	flagWidth     = flag.Int("width", 0, "Preview window width")
	flagHeight    = flag.Int("height", 0, "Preview window height")
	flagWireframe = flag.Bool("wireframe", false, "Render the preview as wireframe")
	flagSolid     = flag.Bool("solid", false, "Render the preview with filled triangles")
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
	if *flagSize > 0 {
		cfg.Terrain.TileResolution = *flagSize
	}
	if *flagLevels > 0 {
		cfg.Terrain.Levels = *flagLevels
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
	if *flagWireframe {
		cfg.Preview.Wireframe = true
	}
	if *flagSolid {
		cfg.Preview.Wireframe = false
	}
}
