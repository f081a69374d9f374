package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// SimConfig converts the YAML configuration into simulation settings.
// Call Validate first; unknown identities or modes fall back to defaults here.
func (c PacmanConfig) SimConfig() sim.Config {
	first, _ := parseMode(c.Timing.FirstMode)

	ghosts := make([]sim.GhostSpec, 0, len(c.Spawn.Ghosts))
	for _, g := range c.Spawn.Ghosts {
		id, _ := parseIdentity(g.Identity)
		name := g.Name
		if name == "" {
			name = id.String()
		}
		ghosts = append(ghosts, sim.GhostSpec{
			Name:    name,
			ID:      id,
			Start:   g.Start.Coord(),
			Scatter: g.Scatter.Coord(),
		})
	}

	return sim.Config{
		PacmanStart: c.Spawn.Pacman.Coord(),
		Ghosts:      ghosts,
		GhostHome:   c.Spawn.GhostHome.Coord(),
		FruitCell:   c.Spawn.Fruit.Coord(),

		Lives:      c.Lives,
		StartLevel: max(1, c.StartLevel),

		PacmanSpeed:    c.Speed.PacmanBase,
		PacmanMinSpeed: c.Speed.PacmanMin,
		GhostSpeed:     c.Speed.GhostBase,
		GhostMinSpeed:  c.Speed.GhostMin,
		LevelStep:      c.Speed.LevelStep,
		FreezeSpeed:    c.FreezeSpeed,

		FrightenedBase: c.Timing.FrightenedBase,
		ResumeDelay:    c.Timing.ResumeDelay,
		FirstMode:      first,
		ModeSchedule:   append([]float64(nil), c.Timing.ModeSchedule...),

		Scoring: sim.Scoring{
			Pellet:      c.Scoring.Pellet,
			PowerPellet: c.Scoring.PowerPellet,
			Ghosts:      append([]int(nil), c.Scoring.GhostTable...),
		},
		FruitThresholds: append([]int(nil), c.Scoring.FruitThresholds...),
		FruitDuration:   c.Timing.FruitDuration,

		ShyThreshold: c.ShyThreshold,
		AmbushAhead:  c.AmbushAhead,
		FlankAhead:   c.FlankAhead,
	}
}

// ValidateSpawns checks every configured cell against the loaded grid.
// Pacman must also start on a cell he can walk.
func (c PacmanConfig) ValidateSpawns(g *sim.Grid) error {
	check := func(name string, p Point) error {
		if !g.InBounds(p.Coord()) {
			return fmt.Errorf("config: %s (%d,%d) outside %dx%d grid", name, p.X, p.Y, g.W, g.H)
		}
		return nil
	}

	if err := check("spawn.pacman", c.Spawn.Pacman); err != nil {
		return err
	}
	if !g.WalkableForPacman(c.Spawn.Pacman.Coord()) {
		return fmt.Errorf("config: spawn.pacman (%d,%d) is not walkable", c.Spawn.Pacman.X, c.Spawn.Pacman.Y)
	}
	if err := check("spawn.ghost_home", c.Spawn.GhostHome); err != nil {
		return err
	}
	if err := check("spawn.fruit", c.Spawn.Fruit); err != nil {
		return err
	}
	for i, gs := range c.Spawn.Ghosts {
		if err := check(fmt.Sprintf("spawn.ghosts[%d].start", i), gs.Start); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("spawn.ghosts[%d].scatter", i), gs.Scatter); err != nil {
			return err
		}
	}
	return nil
}

// Coord converts to a simulation cell.
func (p Point) Coord() sim.Coord {
	return sim.C(p.X, p.Y)
}

func parseMode(name string) (sim.GhostMode, error) {
	switch strings.ToLower(name) {
	case "", "scatter":
		return sim.ModeScatter, nil
	case "chase":
		return sim.ModeChase, nil
	default:
		return sim.ModeScatter, fmt.Errorf("config: unknown first_mode %q", name)
	}
}

func parseIdentity(name string) (sim.Identity, error) {
	for _, id := range []sim.Identity{sim.Blinky, sim.Pinky, sim.Inky, sim.Clyde} {
		if strings.EqualFold(name, id.String()) {
			return id, nil
		}
	}
	return sim.Blinky, fmt.Errorf("unknown ghost identity %q", name)
}
