package config

// Config is the full colorpick configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Capture   CaptureConfig   `yaml:"capture"`
	Magnifier MagnifierConfig `yaml:"magnifier"`
	Naming    NamingConfig    `yaml:"naming"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// StorageConfig selects where history and palettes are kept.
type StorageConfig struct {
	// Path of the SQLite database. A leading "~/" expands to the home
	// directory.
	Path string `yaml:"path"`

	// Ephemeral keeps everything in memory; nothing survives the process.
	Ephemeral bool `yaml:"ephemeral"`
}

// Capture sources.
const (
	SourceScreen = "screen"
	SourceFile   = "file"
)

// CaptureConfig selects where frames come from.
type CaptureConfig struct {
	Source      string `yaml:"source"`       // "screen" or "file"
	Display     int    `yaml:"display"`      // screen index for "screen"
	File        string `yaml:"file"`         // image path for "file"
	EventBuffer int    `yaml:"event_buffer"` // capture channel capacity
}

// MagnifierConfig sizes the loupe.
type MagnifierConfig struct {
	Size int `yaml:"size"`
	Zoom int `yaml:"zoom"`
}

// NamingConfig selects the color-name table.
type NamingConfig struct {
	Language string `yaml:"language"`
}

// LoggingConfig sets the log level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}
