package pacman

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Options select the configuration a game is built from.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	Map        string // map ID or path; overrides grid.map
}

// Setup is a fully resolved configuration: everything a deterministic run needs.
type Setup struct {
	Config     config.PacmanConfig
	Difficulty config.DifficultyPreset
	Map        *maps.Map
	Grid       *sim.Grid
}

// LoadSetup loads the configuration, applies the preset and loads the map.
// A map that cannot be loaded is an error the caller should treat as fatal.
func LoadSetup(opts Options) (*Setup, error) {
	cfg, err := config.LoadPacman(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset := opts.Difficulty
	if preset == "" {
		preset = config.DifficultyNormal
	}
	config.ApplyPacmanPreset(&cfg, preset)
	if opts.Map != "" {
		cfg.Grid.Map = opts.Map
	}
	return NewSetup(cfg, preset)
}

// NewSetup builds a setup from an already loaded configuration.
func NewSetup(cfg config.PacmanConfig, preset config.DifficultyPreset) (*Setup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := maps.Resolve(cfg.Grid.Map, cfg.Grid.MapDir)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", cfg.Grid.Map, err)
	}
	grid, err := m.Grid(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.TileSize)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateSpawns(grid); err != nil {
		return nil, err
	}
	return &Setup{Config: cfg, Difficulty: preset, Map: m, Grid: grid}, nil
}

// SetupFromYAML rebuilds a setup from a stored configuration snapshot.
func SetupFromYAML(data string, preset config.DifficultyPreset) (*Setup, error) {
	cfg := config.DefaultPacmanConfig()
	if err := yaml.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse stored config: %w", err)
	}
	return NewSetup(cfg, preset)
}

// ConfigYAML serializes the effective configuration, presets applied.
func (s *Setup) ConfigYAML() (string, error) {
	data, err := yaml.Marshal(s.Config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}

// Package-level setup and logger, set by the CLI before the frontend starts.
var (
	setupMu     sync.RWMutex
	activeSetup *Setup
	logger      = log.New(io.Discard)
)

// Configure installs the setup used by games created from the registry.
func Configure(s *Setup) {
	setupMu.Lock()
	defer setupMu.Unlock()
	activeSetup = s
}

// SetLogger sets the logger used for state transitions.
func SetLogger(l *log.Logger) {
	setupMu.Lock()
	defer setupMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func currentSetup() (*Setup, *log.Logger) {
	setupMu.RLock()
	s, l := activeSetup, logger
	setupMu.RUnlock()
	if s != nil {
		return s, l
	}

	s, err := NewSetup(config.DefaultPacmanConfig(), config.DifficultyNormal)
	if err != nil {
		panic(fmt.Sprintf("pacman: default setup: %v", err))
	}
	return s, l
}
