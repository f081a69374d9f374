// Package sim is the deterministic maze-chase simulation: grid, entities,
// ghost targeting and movement, the mode scheduler and the game orchestrator.
// It has no UI or I/O dependencies; frontends read its state and push intents.
package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Coord is a grid cell. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Step returns the cell n tiles away in direction d. No wrapping is applied.
func (c Coord) Step(d Direction, n int) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(o Coord) int {
	return core.Abs(c.X-o.X) + core.Abs(c.Y-o.Y)
}
