package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default configuration for the classic maze.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Grid: GridConfig{
			Width:    28,
			Height:   31,
			TileSize: 16,
			Map:      "classic",
		},
		Speed: SpeedConfig{
			PacmanBase: 0.20,
			PacmanMin:  0.10,
			GhostBase:  0.25,
			GhostMin:   0.12,
			LevelStep:  0.03,
		},
		Timing: TimingConfig{
			ResumeDelay:    2.0,
			FrightenedBase: 7.0,
			FirstMode:      "scatter",
			ModeSchedule:   []float64{7, 20, 7, 20, 5, 20, 5},
			FruitDuration:  9.5,
		},
		Scoring: ScoringConfig{
			Pellet:          10,
			PowerPellet:     50,
			GhostTable:      []int{200, 400, 800, 1600},
			FruitThresholds: []int{70, 170},
		},
		Spawn: SpawnConfig{
			Pacman:    Point{X: 13, Y: 23},
			GhostHome: Point{X: 13, Y: 14},
			Fruit:     Point{X: 13, Y: 17},
			Ghosts: []GhostSpawn{
				{Identity: "blinky", Start: Point{X: 13, Y: 11}, Scatter: Point{X: 26, Y: 1}},
				{Identity: "pinky", Start: Point{X: 13, Y: 14}, Scatter: Point{X: 1, Y: 1}},
				{Identity: "inky", Start: Point{X: 11, Y: 14}, Scatter: Point{X: 26, Y: 29}},
				{Identity: "clyde", Start: Point{X: 15, Y: 14}, Scatter: Point{X: 1, Y: 29}},
			},
		},
		Lives:        3,
		StartLevel:   1,
		ShyThreshold: 8,
		AmbushAhead:  4,
		FlankAhead:   2,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPacmanYAML
}
