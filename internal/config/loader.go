package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search path.
const FileName = "arbolin.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.arbolin/arbolin.yaml -> ./configs/arbolin.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if p := UserConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Arena.Width <= 0 || g.Arena.Height <= 0:
		return fmt.Errorf("arena must have a positive size")
	case g.Player.Size <= 0 || g.Player.Speed < 0:
		return fmt.Errorf("player size must be positive and speed non-negative")
	case g.Sprouts.MinLive < 0 || g.Sprouts.PickupRadius <= 0:
		return fmt.Errorf("sprouts min_live must be >= 0 and pickup_radius > 0")
	case g.Ability.Charge <= 0:
		return fmt.Errorf("ability charge must be positive")
	case g.Secrets.Dwell <= 0:
		return fmt.Errorf("secrets dwell must be positive")
	case c.Server.Capacity <= 0:
		return fmt.Errorf("server capacity must be positive")
	}
	return nil
}

// HomeDir returns ~/.arbolin, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arbolin")
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}
