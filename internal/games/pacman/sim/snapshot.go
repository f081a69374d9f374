package sim

// GhostSnapshot is the observable state of one ghost.
type GhostSnapshot struct {
	Name string
	Pos  Coord
	Dir  Direction
	Mode GhostMode
}

// Snapshot captures the observable game state for determinism tests and replay checks.
type Snapshot struct {
	Tick       uint64
	Level      int
	Score      int
	Lives      int
	State      GameState
	GlobalMode GhostMode
	PacmanPos  Coord
	PacmanDir  Direction
	Consumed   int
	Ghosts     []GhostSnapshot
	FruitShown bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Level:      g.level,
		Score:      g.pacman.Score,
		Lives:      g.pacman.Lives,
		State:      g.state,
		GlobalMode: g.scheduler.Mode(),
		PacmanPos:  g.pacman.Pos,
		PacmanDir:  g.pacman.Dir,
		Consumed:   g.pacman.ConsumedCount(),
		FruitShown: g.fruit.active,
	}
	for _, gh := range g.ghosts {
		s.Ghosts = append(s.Ghosts, GhostSnapshot{Name: gh.Name, Pos: gh.Pos, Dir: gh.Dir, Mode: gh.Mode})
	}
	return s
}
