package sim

import "github.com/zyedidia/generic/mapset"

// Pacman is the player entity. It owns the set of consumed pellet cells.
type Pacman struct {
	Name  string
	Pos   Coord
	Dir   Direction
	Lives int
	Score int

	pending    Direction
	hasPending bool
	consumed   mapset.Set[Coord]
}

// NewPacman creates Pacman at start, facing Left.
func NewPacman(name string, start Coord, lives int) *Pacman {
	return &Pacman{
		Name:     name,
		Pos:      start,
		Dir:      DirLeft,
		Lives:    lives,
		consumed: mapset.New[Coord](),
	}
}

// SetIntent buffers a turn to be applied on the next movement tick that allows it.
func (p *Pacman) SetIntent(d Direction) {
	p.pending = d
	p.hasPending = true
}

// Intent returns the buffered turn, if any.
func (p *Pacman) Intent() (Direction, bool) {
	return p.pending, p.hasPending
}

// Next returns the cell one step in d: X wraps, Y clamps.
func (p *Pacman) Next(g *Grid, d Direction) Coord {
	return g.WrapClamp(p.Pos.Step(d, 1))
}

// Move applies the buffered turn when its target is walkable, then advances
// one cell along the facing if possible. Returns whether the position changed.
func (p *Pacman) Move(g *Grid) bool {
	if p.hasPending && g.WalkableForPacman(p.Next(g, p.pending)) {
		p.Dir = p.pending
		p.hasPending = false
	}

	next := p.Next(g, p.Dir)
	if next == p.Pos || !g.WalkableForPacman(next) {
		return false
	}
	p.Pos = next
	return true
}

// Consume eats the pellet under Pacman if it has not been eaten yet and
// returns its type. TileFloor means nothing was consumed.
func (p *Pacman) Consume(g *Grid, sc Scoring) TileType {
	t, ok := g.Tile(p.Pos)
	if !ok || !t.Type.Edible() || p.consumed.Has(p.Pos) {
		return TileFloor
	}

	p.consumed.Put(p.Pos)
	switch t.Type {
	case TilePellet:
		p.Score += sc.Pellet
	case TilePowerPellet:
		p.Score += sc.PowerPellet
	}
	return t.Type
}

// EatGhost scores the n-th ghost (0-based) of the current frightened window.
// Counts past the end of the table reuse its last entry.
func (p *Pacman) EatGhost(table []int, n int) int {
	if len(table) == 0 {
		return 0
	}
	pts := table[min(max(n, 0), len(table)-1)]
	p.Score += pts
	return pts
}

// EatFruit scores a bonus item.
func (p *Pacman) EatFruit(f Fruit) int {
	pts := f.Points()
	p.Score += pts
	return pts
}

// Consumed reports whether the cell's pellet has been eaten.
func (p *Pacman) Consumed(c Coord) bool {
	return p.consumed.Has(c)
}

// ConsumedCount returns how many pellets have been eaten this level.
func (p *Pacman) ConsumedCount() int {
	return p.consumed.Size()
}

// ClearConsumed forgets every eaten pellet.
func (p *Pacman) ClearConsumed() {
	p.consumed = mapset.New[Coord]()
}

// HasWin is true once every pellet and power pellet has been consumed.
func (p *Pacman) HasWin(g *Grid) bool {
	for _, c := range g.EdibleCells() {
		if !p.consumed.Has(c) {
			return false
		}
	}
	return true
}

// respawn puts Pacman back at start without touching lives, score or pellets.
func (p *Pacman) respawn(start Coord) {
	p.Pos = start
	p.Dir = DirLeft
	p.hasPending = false
}
