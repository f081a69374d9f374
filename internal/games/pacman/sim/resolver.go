package sim

// Strategy picks a ghost's next direction toward a target cell.
// ok is false when the ghost cannot move this tick.
type Strategy interface {
	Next(g *Grid, from Coord, facing Direction, target Coord) (d Direction, ok bool)
}

// Greedy is the one-step resolver: among the non-reverse ghost-walkable
// neighbours (wrapped on both axes) it takes the one closest to the target by
// Manhattan distance, ties going to the earlier entry of Directions.
// In a dead end the ghost turns back; if even that is blocked it stays put.
type Greedy struct{}

func (Greedy) Next(g *Grid, from Coord, facing Direction, target Coord) (Direction, bool) {
	back := facing.Opposite()
	best, bestDist, found := facing, 0, false

	for _, d := range Directions {
		if d == back {
			continue
		}
		n := g.Wrap(from.Step(d, 1))
		if !g.WalkableForGhost(n) {
			continue
		}
		dist := n.Manhattan(target)
		if !found || dist < bestDist {
			best, bestDist, found = d, dist, true
		}
	}
	if found {
		return best, true
	}

	if g.WalkableForGhost(g.Wrap(from.Step(back, 1))) {
		return back, true
	}
	return facing, false
}
