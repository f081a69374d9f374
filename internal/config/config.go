// Package config provides YAML-based configuration loading and difficulty
// presets for the pacman game.
package config

// PacmanConfig contains all configuration for the pacman game.
type PacmanConfig struct {
	Grid         GridConfig    `yaml:"grid"`
	Speed        SpeedConfig   `yaml:"speed"`
	Timing       TimingConfig  `yaml:"timing"`
	Scoring      ScoringConfig `yaml:"scoring"`
	Spawn        SpawnConfig   `yaml:"spawn"`
	Lives        int           `yaml:"lives"`
	StartLevel   int           `yaml:"start_level"`
	FreezeSpeed  bool          `yaml:"freeze_speed"`
	ShyThreshold int           `yaml:"shy_threshold"`
	AmbushAhead  int           `yaml:"ambush_ahead"`
	FlankAhead   int           `yaml:"flank_ahead"`
}

// GridConfig fixes the maze dimensions for the process lifetime.
type GridConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TileSize int    `yaml:"tile_size"` // pixels per tile
	Map      string `yaml:"map"`       // map ID or path
	MapDir   string `yaml:"map_dir"`
}

// SpeedConfig holds movement intervals in seconds per cell.
type SpeedConfig struct {
	PacmanBase float64 `yaml:"pacman_base"`
	PacmanMin  float64 `yaml:"pacman_min"`
	GhostBase  float64 `yaml:"ghost_base"`
	GhostMin   float64 `yaml:"ghost_min"`
	LevelStep  float64 `yaml:"level_step"`
}

// TimingConfig holds durations in seconds.
type TimingConfig struct {
	ResumeDelay    float64   `yaml:"resume_delay"`
	FrightenedBase float64   `yaml:"frightened_base"`
	FirstMode      string    `yaml:"first_mode"` // "scatter" or "chase"
	ModeSchedule   []float64 `yaml:"mode_schedule"`
	FruitDuration  float64   `yaml:"fruit_duration"`
}

// ScoringConfig defines score deltas.
type ScoringConfig struct {
	Pellet          int   `yaml:"pellet"`
	PowerPellet     int   `yaml:"power_pellet"`
	GhostTable      []int `yaml:"ghost_table"`
	FruitThresholds []int `yaml:"fruit_thresholds"`
}

// Point is a grid cell.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GhostSpawn places one ghost.
type GhostSpawn struct {
	Identity string `yaml:"identity"` // blinky, pinky, inky, clyde
	Name     string `yaml:"name,omitempty"`
	Start    Point  `yaml:"start"`
	Scatter  Point  `yaml:"scatter"`
}

// SpawnConfig holds the fixed cells of the maze.
type SpawnConfig struct {
	Pacman    Point        `yaml:"pacman"`
	Ghosts    []GhostSpawn `yaml:"ghosts"`
	GhostHome Point        `yaml:"ghost_home"`
	Fruit     Point        `yaml:"fruit"`
}
