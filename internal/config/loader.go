package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorpick/internal/logging"
)

// For mocking in tests
var (
	osUserHomeDir = os.UserHomeDir
	osLookupEnv   = os.LookupEnv
)

// Load builds the configuration from defaults, the user file and, when
// explicitPath is not empty, the given file. The explicit file must exist.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	userPath, err := UserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userPath); err == nil {
		if err := mergeFile(&cfg, userPath); err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userPath, err)
		}
	}

	if explicitPath != "" {
		if err := mergeFile(&cfg, explicitPath); err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserConfigPath returns ~/.config/colorpick/config.yaml.
func UserConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

// mergeFile decodes path over cfg; keys absent from the file keep their
// current values.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return merge(cfg, data)
}

func merge(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	if level, ok := osLookupEnv(logging.EnvLevel); ok && level != "" {
		cfg.Logging.Level = level
	}
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Storage.Path, &c.Capture.File} {
		if !strings.HasPrefix(*p, "~/") {
			continue
		}
		home, err := osUserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot expand %s: %w", *p, err)
		}
		*p = filepath.Join(home, (*p)[2:])
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !c.Storage.Ephemeral && strings.TrimSpace(c.Storage.Path) == "" {
		return errors.New("storage.path is required unless storage.ephemeral is set")
	}

	switch c.Capture.Source {
	case SourceScreen:
		if c.Capture.Display < 0 {
			return fmt.Errorf("capture.display must not be negative, got %d", c.Capture.Display)
		}
	case SourceFile:
		if strings.TrimSpace(c.Capture.File) == "" {
			return errors.New("capture.file is required when capture.source is \"file\"")
		}
	default:
		return fmt.Errorf("capture.source must be %q or %q, got %q", SourceScreen, SourceFile, c.Capture.Source)
	}
	if c.Capture.EventBuffer <= 0 {
		return fmt.Errorf("capture.event_buffer must be positive, got %d", c.Capture.EventBuffer)
	}

	if c.Magnifier.Size <= 0 {
		return fmt.Errorf("magnifier.size must be positive, got %d", c.Magnifier.Size)
	}
	if c.Magnifier.Zoom <= 0 {
		return fmt.Errorf("magnifier.zoom must be positive, got %d", c.Magnifier.Zoom)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
