package sim

// Identity selects a ghost's chase targeting rule.
type Identity uint8

const (
	Blinky Identity = iota // pursuer
	Pinky                  // ambusher
	Inky                   // flanker
	Clyde                  // shy pursuer
)

func (id Identity) String() string {
	switch id {
	case Blinky:
		return "Blinky"
	case Pinky:
		return "Pinky"
	case Inky:
		return "Inky"
	case Clyde:
		return "Clyde"
	default:
		return "Unknown"
	}
}

// GhostMode is the per-ghost behavior tag.
type GhostMode uint8

const (
	ModeChase GhostMode = iota
	ModeScatter
	ModeFrightened
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeChase:
		return "Chase"
	case ModeScatter:
		return "Scatter"
	case ModeFrightened:
		return "Frightened"
	case ModeEaten:
		return "Eaten"
	default:
		return "Unknown"
	}
}

// Special reports whether the mode is outside the chase/scatter schedule.
func (m GhostMode) Special() bool {
	return m == ModeFrightened || m == ModeEaten
}

// Ghost is an adversary. Target holds the cell it steered toward on its last move.
type Ghost struct {
	Name    string
	ID      Identity
	Pos     Coord
	Dir     Direction
	Mode    GhostMode
	Scatter Coord
	Target  Coord

	start Coord
}

// NewGhost creates a ghost at start, facing Left, in the given mode.
func NewGhost(spec GhostSpec, mode GhostMode) *Ghost {
	return &Ghost{
		Name:    spec.Name,
		ID:      spec.ID,
		Pos:     spec.Start,
		Dir:     DirLeft,
		Mode:    mode,
		Scatter: spec.Scatter,
		Target:  spec.Start,
		start:   spec.Start,
	}
}

// MoveToward asks the strategy for a step toward target and applies it.
// Returns false when the ghost could not move.
func (gh *Ghost) MoveToward(g *Grid, target Coord, s Strategy) bool {
	gh.Target = target
	d, ok := s.Next(g, gh.Pos, gh.Dir, target)
	if !ok {
		return false
	}
	gh.Pos = g.Wrap(gh.Pos.Step(d, 1))
	gh.Dir = d
	return true
}

func (gh *Ghost) respawn(mode GhostMode) {
	gh.Pos = gh.start
	gh.Dir = DirLeft
	gh.Mode = mode
	gh.Target = gh.start
}
