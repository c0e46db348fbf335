package config

import "path/filepath"

const (
	userConfigDir  = ".config/colorpick"
	configFileName = "config.yaml"
	dbFileName     = "colorpick.db"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: filepath.Join("~", userConfigDir, dbFileName),
		},
		Capture: CaptureConfig{
			Source:      SourceScreen,
			EventBuffer: 64,
		},
		Magnifier: MagnifierConfig{
			Size: 128,
			Zoom: 3,
		},
		Naming: NamingConfig{
			Language: "fr",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
