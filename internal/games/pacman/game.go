// Package pacman adapts the maze-chase simulation to the platform's Game
// interface: fixed ticks become elapsed seconds, input frames become turn
// intents, and the maze is drawn into a character screen.
package pacman

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Registry IDs of the two ghost movement strategies.
const (
	IDGreedy = "pacman"
	IDAStar  = "pacman_astar"
)

// Game implements registry.Game.
type Game struct {
	id       string
	strategy sim.Strategy
	fixed    *Setup // when set, overrides the package-level setup

	setup *Setup
	log   *log.Logger
	rt    core.RuntimeConfig
	rng   *rand.Rand
	sim   *sim.Game
	tick  uint64

	lastState sim.GameState
	lastLevel int
	recorder  *Recorder
}

// New creates a game whose ghosts use the one-step greedy resolver.
func New() *Game {
	return &Game{id: IDGreedy, strategy: sim.Greedy{}}
}

// NewAStar creates a game whose ghosts use full A* search.
func NewAStar() *Game {
	return &Game{id: IDAStar, strategy: sim.AStar{}}
}

// NewVariant creates a game by registry ID using a fixed setup.
// It is used for headless runs that must not depend on package state.
func NewVariant(id string, setup *Setup) (*Game, error) {
	var g *Game
	switch id {
	case IDGreedy:
		g = New()
	case IDAStar:
		g = NewAStar()
	default:
		return nil, fmt.Errorf("pacman: unknown variant %q", id)
	}
	g.fixed = setup
	return g, nil
}

func init() {
	registry.Register(IDGreedy, func() registry.Game {
		return New()
	})
	registry.Register(IDAStar, func() registry.Game {
		return NewAStar()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDAStar {
		return T("TITLE_ASTAR")
	}
	return T("TITLE")
}

// Reset builds a fresh simulation from the current setup.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.setup, g.log = currentSetup()
	if g.fixed != nil {
		g.setup = g.fixed
	}
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.sim = sim.NewGame(g.setup.Grid, g.setup.Config.SimConfig(), g.strategy, cfg.Seed)
	g.lastState = g.sim.State()
	g.lastLevel = g.sim.Level()

	g.log.Debug("game reset",
		"variant", g.id,
		"map", g.setup.Map.ID,
		"seed", cfg.Seed,
		"difficulty", g.setup.Difficulty,
	)
}

// AttachRecorder makes every subsequent Step record its input frame.
func (g *Game) AttachRecorder(r *Recorder) {
	g.recorder = r
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.recorder != nil {
		g.recorder.Observe(in)
	}
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.sim.State() == sim.StateGameOver {
		rt := g.rt
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		g.log.Info("game restarted", "seed", rt.Seed)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.sim.TogglePause()
	}
	if d, ok := intentFromInput(in); ok {
		g.sim.SetIntent(d)
	}

	g.sim.Update(g.rt.TickSeconds())
	g.observeTransitions()

	return core.StepResult{State: g.State()}
}

// intentFromInput picks one direction. With several pressed the Up, Left,
// Down, Right order decides.
func intentFromInput(in core.InputFrame) (sim.Direction, bool) {
	for _, d := range sim.Directions {
		if in.Has(actionFor(d)) {
			return d, true
		}
	}
	return 0, false
}

func actionFor(d sim.Direction) core.Action {
	switch d {
	case sim.DirUp:
		return core.ActionUp
	case sim.DirLeft:
		return core.ActionLeft
	case sim.DirDown:
		return core.ActionDown
	default:
		return core.ActionRight
	}
}

func (g *Game) observeTransitions() {
	state, level := g.sim.State(), g.sim.Level()

	if level != g.lastLevel {
		g.log.Info("level advanced", "level", level, "score", g.sim.Score())
		g.lastLevel = level
	}
	if state == g.lastState {
		return
	}

	switch state {
	case sim.StateGameOver:
		g.log.Info("game over", "score", g.sim.Score(), "level", level, "tick", g.tick)
	case sim.StateRestarting:
		g.log.Debug("life lost", "lives", g.sim.Lives())
	default:
		g.log.Debug("state changed", "from", g.lastState, "to", state)
	}
	g.lastState = state
}

// State returns the platform-level view of the game.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	state := g.sim.State()
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		Level:    g.sim.Level(),
		GameOver: state == sim.StateGameOver,
		Paused:   state == sim.StatePaused,
	}
}

// Sim exposes the underlying simulation for pixel frontends.
func (g *Game) Sim() *sim.Game { return g.sim }

// Setup returns the setup the current round was built from.
func (g *Game) Setup() *Setup { return g.setup }

// Snapshot returns the simulation snapshot for determinism verification.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}
