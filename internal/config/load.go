package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would produce a degenerate projection.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v must be in (0, 180)", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip range near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.Distance < 0:
		return fmt.Errorf("%w: negative camera distance %v", ErrInvalid, c.Camera.Distance)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	var candidates []string
	for _, dir := range []string{".", ConfigDir()} {
		for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "s3")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "s3")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "s3")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "s3")
	}
}

// loadFromFile merges a YAML or TOML file into cfg, picking the decoder by
// file extension.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}
