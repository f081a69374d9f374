package sim

// TargetContext is the global state chase targeting reads.
type TargetContext struct {
	Pacman       Coord
	Facing       Direction
	Pursuer      Coord // position of the Blinky ghost, or Pacman if there is none
	ShyThreshold int
	AmbushAhead  int
	FlankAhead   int
}

// ChaseTarget returns the chase-mode target for a ghost. Unknown identities
// target their own scatter cell.
func ChaseTarget(gh *Ghost, ctx TargetContext) Coord {
	switch gh.ID {
	case Blinky:
		return ctx.Pacman
	case Pinky:
		return ctx.Pacman.Step(ctx.Facing, ctx.AmbushAhead)
	case Inky:
		ahead := ctx.Pacman.Step(ctx.Facing, ctx.FlankAhead)
		return ahead.Add(ahead.Sub(ctx.Pursuer).Scale(2))
	case Clyde:
		if gh.Pos.Manhattan(ctx.Pacman) > ctx.ShyThreshold {
			return ctx.Pacman
		}
		return gh.Scatter
	default:
		return gh.Scatter
	}
}
