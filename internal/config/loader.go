package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the pacman configuration.
// Search order: customPath -> ~/.pacman/configs/pacman.yaml -> ./configs/pacman.yaml -> embedded default
func LoadPacman(customPath string) (PacmanConfig, error) {
	var cfg PacmanConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg = DefaultPacmanConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pacman.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "pacman.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	cfg = DefaultPacmanConfig()
	if err := yaml.Unmarshal(defaultPacmanYAML, &cfg); err != nil {
		return DefaultPacmanConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (PacmanConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PacmanConfig{}, false
	}
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PacmanConfig{}, false
	}
	if cfg.Validate() != nil {
		return PacmanConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "configs", filename)
}

// Validate checks the values the simulation cannot run without.
func (c PacmanConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: invalid grid %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Speed.PacmanBase <= 0 || c.Speed.GhostBase <= 0 {
		return fmt.Errorf("config: movement intervals must be positive")
	}
	if c.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Lives)
	}
	if _, err := parseMode(c.Timing.FirstMode); err != nil {
		return err
	}
	for i, g := range c.Spawn.Ghosts {
		if _, err := parseIdentity(g.Identity); err != nil {
			return fmt.Errorf("config: ghost %d: %w", i, err)
		}
	}
	return nil
}
