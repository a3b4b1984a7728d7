// Package config handles terraclip configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the clipmap generation parameters.
type TerrainConfig struct {
	// TileResolution is the cell count along one edge of a tile patch.
	TileResolution int `yaml:"tile_resolution"`
	// Levels is the number of concentric LOD rings placed around the viewer.
	Levels int `yaml:"levels"`
}

// PreviewConfig holds the preview window settings.
type PreviewConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	VSync     bool `yaml:"vsync"`
	Wireframe bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			TileResolution: 32,
			Levels:         7,
		},
		Preview: PreviewConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			Wireframe: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
