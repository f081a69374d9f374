package sim

import (
	"math"
	"math/rand"
)

// GameState is the global state, orthogonal to per-ghost modes.
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateRestarting
	StateFrightened
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateRestarting:
		return "Restarting"
	case StateFrightened:
		return "Frightened"
	default:
		return "Unknown"
	}
}

// Message selects the status text a frontend should show.
type Message uint8

const (
	MessageNone Message = iota
	MessageReady
	MessageLevelCleared
	MessagePaused
	MessageGameOver
)

type fruitState struct {
	active bool
	kind   Fruit
	timer  Timer
	next   int // index into Config.FruitThresholds
}

// Game is the orchestrator. It exclusively owns the grid, Pacman, the ghosts
// and the mode scheduler, and advances them in a fixed order on Update.
type Game struct {
	cfg       Config
	grid      *Grid
	strategy  Strategy
	rng       *rand.Rand
	pacman    *Pacman
	ghosts    []*Ghost
	scheduler *ModeScheduler

	state   GameState
	resume  GameState
	level   int
	tick    uint64
	message Message

	pacmanTimer  Timer
	ghostTimer   Timer
	frightTimer  Timer
	restartTimer Timer
	ghostsEaten  int

	fruit fruitState
}

// NewGame creates a game on grid. A nil strategy means Greedy.
func NewGame(grid *Grid, cfg Config, strategy Strategy, seed int64) *Game {
	if strategy == nil {
		strategy = Greedy{}
	}
	g := &Game{
		cfg:       cfg,
		grid:      grid,
		strategy:  strategy,
		rng:       rand.New(rand.NewSource(seed)),
		pacman:    NewPacman("Pacman", cfg.PacmanStart, cfg.Lives),
		scheduler: NewModeScheduler(cfg.FirstMode, cfg.ModeSchedule),
		level:     max(1, cfg.StartLevel),
		state:     StatePlaying,
	}
	for _, spec := range cfg.Ghosts {
		g.ghosts = append(g.ghosts, NewGhost(spec, g.scheduler.Mode()))
	}
	return g
}

// SetIntent buffers a turn for Pacman.
func (g *Game) SetIntent(d Direction) {
	if g.state == StateGameOver {
		return
	}
	g.pacman.SetIntent(d)
}

// SetPaused pauses a running game or resumes a paused one.
// Restarting and GameOver ignore it.
func (g *Game) SetPaused(paused bool) {
	switch {
	case paused && g.running():
		g.resume = g.state
		g.state = StatePaused
		g.message = MessagePaused
	case !paused && g.state == StatePaused:
		g.state = g.resume
		g.message = MessageNone
	}
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.SetPaused(g.state != StatePaused)
}

func (g *Game) running() bool {
	return g.state == StatePlaying || g.state == StateFrightened
}

// Update advances the simulation by dt seconds. Every timer fires at most
// once per call.
func (g *Game) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		return
	}

	switch g.state {
	case StatePaused, StateGameOver:
		return
	case StateRestarting:
		g.tick++
		g.restartTimer.Advance(dt)
		if g.restartTimer.Due(g.cfg.ResumeDelay) {
			g.resetRound()
		}
		return
	}
	g.tick++

	g.pacmanTimer.Advance(dt)
	g.ghostTimer.Advance(dt)
	g.scheduler.Advance(dt)
	g.frightTimer.Advance(dt)
	if g.fruit.active {
		g.fruit.timer.Advance(dt)
	}

	if g.state == StateFrightened && g.frightTimer.Due(g.FrightenedDuration()) {
		g.exitFrightened()
	}
	if g.fruit.active && g.fruit.timer.Due(g.cfg.FruitDuration) {
		g.fruit.active = false
	}

	if g.pacmanTimer.Due(g.PacmanInterval()) {
		g.pacmanTimer.Reset()
		g.stepPacman()
		if !g.running() {
			return
		}
	}

	if g.ghostTimer.Due(g.GhostInterval()) {
		g.ghostTimer.Reset()
		g.stepGhosts()
		if !g.running() {
			return
		}
	}

	if g.scheduler.Due() {
		mode := g.scheduler.Switch()
		for _, gh := range g.ghosts {
			if !gh.Mode.Special() {
				gh.Mode = mode
			}
		}
	}
}

func (g *Game) stepPacman() {
	g.pacman.Move(g.grid)

	switch g.pacman.Consume(g.grid, g.cfg.Scoring) {
	case TilePowerPellet:
		g.enterFrightened()
		g.maybeSpawnFruit()
	case TilePellet:
		g.maybeSpawnFruit()
	}

	if g.fruit.active && g.pacman.Pos == g.cfg.FruitCell {
		g.pacman.EatFruit(g.fruit.kind)
		g.fruit.active = false
	}

	g.resolveCollisions()

	if g.state != StateGameOver && len(g.grid.EdibleCells()) > 0 && g.pacman.HasWin(g.grid) {
		g.advanceLevel()
	}
}

func (g *Game) stepGhosts() {
	ctx := g.targetContext()
	for _, gh := range g.ghosts {
		if gh.Mode == ModeEaten && gh.Pos == g.cfg.GhostHome {
			gh.Mode = g.scheduler.Mode()
			continue
		}
		gh.MoveToward(g.grid, g.targetFor(gh, ctx), g.strategy)
	}
	g.resolveCollisions()
}

func (g *Game) targetContext() TargetContext {
	ctx := TargetContext{
		Pacman:       g.pacman.Pos,
		Facing:       g.pacman.Dir,
		Pursuer:      g.pacman.Pos,
		ShyThreshold: g.cfg.ShyThreshold,
		AmbushAhead:  g.cfg.AmbushAhead,
		FlankAhead:   g.cfg.FlankAhead,
	}
	for _, gh := range g.ghosts {
		if gh.ID == Blinky {
			ctx.Pursuer = gh.Pos
			break
		}
	}
	return ctx
}

func (g *Game) targetFor(gh *Ghost, ctx TargetContext) Coord {
	switch gh.Mode {
	case ModeChase:
		return ChaseTarget(gh, ctx)
	case ModeScatter:
		return gh.Scatter
	case ModeFrightened:
		return C(g.rng.Intn(g.grid.W), g.rng.Intn(g.grid.H))
	default:
		return g.cfg.GhostHome
	}
}

// resolveCollisions handles every ghost sharing Pacman's cell.
func (g *Game) resolveCollisions() {
	for _, gh := range g.ghosts {
		if gh.Pos != g.pacman.Pos {
			continue
		}
		switch gh.Mode {
		case ModeFrightened:
			gh.Mode = ModeEaten
			g.pacman.EatGhost(g.cfg.Scoring.Ghosts, g.ghostsEaten)
			g.ghostsEaten++
		case ModeEaten:
		default:
			g.loseLife()
			return
		}
	}
}

func (g *Game) loseLife() {
	g.pacman.Lives--
	if g.pacman.Lives <= 0 {
		g.pacman.Lives = 0
		g.state = StateGameOver
		g.message = MessageGameOver
		return
	}
	g.state = StateRestarting
	g.restartTimer.Reset()
	g.message = MessageReady
}

// enterFrightened opens a frightened window. With a zero-length window the
// pellet only scores and ghosts keep their mode.
func (g *Game) enterFrightened() {
	if g.FrightenedDuration() <= 0 {
		return
	}
	g.state = StateFrightened
	g.frightTimer.Reset()
	for _, gh := range g.ghosts {
		if gh.Mode != ModeEaten {
			gh.Mode = ModeFrightened
		}
	}
	g.ghostsEaten = 0
}

func (g *Game) exitFrightened() {
	mode := g.scheduler.Mode()
	for _, gh := range g.ghosts {
		if gh.Mode == ModeFrightened {
			gh.Mode = mode
		}
	}
	g.ghostsEaten = 0
	g.state = StatePlaying
}

func (g *Game) maybeSpawnFruit() {
	th := g.cfg.FruitThresholds
	if g.cfg.FruitDuration <= 0 || g.fruit.next >= len(th) {
		return
	}
	if g.pacman.ConsumedCount() < th[g.fruit.next] {
		return
	}
	g.fruit = fruitState{
		active: true,
		kind:   FruitForLevel(g.level),
		next:   g.fruit.next + 1,
	}
}

func (g *Game) advanceLevel() {
	g.level++
	g.pacman.ClearConsumed()
	g.fruit = fruitState{}
	g.state = StateRestarting
	g.restartTimer.Reset()
	g.message = MessageLevelCleared
}

// resetRound puts every entity back at its start. Level, score, lives and
// consumed pellets are kept.
func (g *Game) resetRound() {
	g.pacman.respawn(g.cfg.PacmanStart)
	g.scheduler.Reset()
	for _, gh := range g.ghosts {
		gh.respawn(g.scheduler.Mode())
	}
	g.pacmanTimer.Reset()
	g.ghostTimer.Reset()
	g.frightTimer.Reset()
	g.restartTimer.Reset()
	g.ghostsEaten = 0
	g.fruit.active = false
	g.state = StatePlaying
	g.message = MessageNone
}

func (g *Game) speedLevel() int {
	if g.cfg.FreezeSpeed {
		return max(1, g.cfg.StartLevel)
	}
	return g.level
}

// PacmanInterval is the current seconds-per-move for Pacman.
func (g *Game) PacmanInterval() float64 {
	return SpeedForLevel(g.cfg.PacmanSpeed, g.cfg.PacmanMinSpeed, g.speedLevel(), g.cfg.LevelStep)
}

// GhostInterval is the current seconds-per-move for ghosts.
func (g *Game) GhostInterval() float64 {
	return SpeedForLevel(g.cfg.GhostSpeed, g.cfg.GhostMinSpeed, g.speedLevel(), g.cfg.LevelStep)
}

// FrightenedDuration is the frightened window length at the current level.
func (g *Game) FrightenedDuration() float64 {
	return FrightenedDuration(g.cfg.FrightenedBase, g.level)
}

// FrightenedRemaining returns the seconds left in the frightened window,
// or 0 outside it.
func (g *Game) FrightenedRemaining() float64 {
	if g.state != StateFrightened && !(g.state == StatePaused && g.resume == StateFrightened) {
		return 0
	}
	return math.Max(0, g.FrightenedDuration()-g.frightTimer.Elapsed)
}

// Grid returns the static map.
func (g *Game) Grid() *Grid { return g.grid }

// Pacman returns the player. Callers must treat it as read-only.
func (g *Game) Pacman() *Pacman { return g.pacman }

// Ghosts returns the ghosts in spawn order. Callers must treat them as read-only.
func (g *Game) Ghosts() []*Ghost { return g.ghosts }

// State returns the global game state.
func (g *Game) State() GameState { return g.state }

// GlobalMode returns the scheduler's current chase/scatter mode.
func (g *Game) GlobalMode() GhostMode { return g.scheduler.Mode() }

// Level returns the 1-based level counter.
func (g *Game) Level() int { return g.level }

// Tick returns the number of Update calls that advanced the simulation.
// Paused and GameOver updates are not counted.
func (g *Game) Tick() uint64 { return g.tick }

// Message returns the status text selector.
func (g *Game) Message() Message { return g.message }

// Score is Pacman's score.
func (g *Game) Score() int { return g.pacman.Score }

// Lives is Pacman's remaining lives.
func (g *Game) Lives() int { return g.pacman.Lives }

// GhostsEaten returns how many ghosts were eaten in the current frightened window.
func (g *Game) GhostsEaten() int { return g.ghostsEaten }

// HasWin reports whether every pellet on the grid has been consumed.
func (g *Game) HasWin() bool { return g.pacman.HasWin(g.grid) }

// Fruit returns the active bonus item, if any.
func (g *Game) Fruit() (Fruit, Coord, bool) {
	return g.fruit.kind, g.cfg.FruitCell, g.fruit.active
}
