package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// ErrUndersized is returned when a map has fewer rows or columns than the
// configured grid dimensions.
var ErrUndersized = errors.New("map smaller than grid dimensions")

// TileType classifies a grid cell. It never changes after load.
type TileType uint8

const (
	TileFloor TileType = iota
	TileWall
	TilePellet
	TilePowerPellet
	TileGhostGate
)

func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TilePellet:
		return "Pellet"
	case TilePowerPellet:
		return "PowerPellet"
	case TileGhostGate:
		return "GhostGate"
	default:
		return "Unknown"
	}
}

// Edible reports whether Pacman can consume the tile.
func (t TileType) Edible() bool {
	return t == TilePellet || t == TilePowerPellet
}

// TileTypeFromRune maps a map character to its tile type.
// Unrecognized characters are floor.
func TileTypeFromRune(r rune) TileType {
	switch r {
	case '#':
		return TileWall
	case '.':
		return TilePellet
	case 'o':
		return TilePowerPellet
	case '=':
		return TileGhostGate
	default:
		return TileFloor
	}
}

// Tile is one immutable cell of the grid.
type Tile struct {
	Pos  Coord
	Size int
	Type TileType
}

// PixelX returns the tile's left edge in pixels.
func (t Tile) PixelX() int { return t.Pos.X * t.Size }

// PixelY returns the tile's top edge in pixels.
func (t Tile) PixelY() int { return t.Pos.Y * t.Size }

// WalkableForPacman: walls and ghost gates block Pacman.
func (t Tile) WalkableForPacman() bool {
	return t.Type != TileWall && t.Type != TileGhostGate
}

// WalkableForGhost: only walls block ghosts.
func (t Tile) WalkableForGhost() bool {
	return t.Type != TileWall
}

// Grid is the static tile map, stored row-major: index = y*W + x.
type Grid struct {
	W        int
	H        int
	TileSize int
	Tiles    []Tile

	edible []Coord
}

// NewGrid builds a grid from map rows. Only the first h rows and w columns
// are used; any row shorter than w, or fewer than h rows, is an error.
func NewGrid(rows []string, w, h, tileSize int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", w, h)
	}
	if len(rows) < h {
		return nil, fmt.Errorf("%w: %d rows, need %d", ErrUndersized, len(rows), h)
	}

	g := &Grid{
		W:        w,
		H:        h,
		TileSize: tileSize,
		Tiles:    make([]Tile, 0, w*h),
	}
	for y := 0; y < h; y++ {
		row := []rune(strings.TrimRight(rows[y], "\r"))
		if len(row) < w {
			return nil, fmt.Errorf("%w: row %d has %d columns, need %d", ErrUndersized, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			t := Tile{Pos: C(x, y), Size: tileSize, Type: TileTypeFromRune(row[x])}
			g.Tiles = append(g.Tiles, t)
			if t.Type.Edible() {
				g.edible = append(g.edible, t.Pos)
			}
		}
	}
	return g, nil
}

// ParseGrid reads a plain text map, one row per line.
func ParseGrid(r io.Reader, w, h, tileSize int) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return NewGrid(rows, w, h, tileSize)
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Tile returns the tile at c. The second result is false out of bounds.
func (g *Grid) Tile(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.Tiles[c.Y*g.W+c.X], true
}

// WalkableForPacman is false for out-of-bounds cells.
func (g *Grid) WalkableForPacman(c Coord) bool {
	t, ok := g.Tile(c)
	return ok && t.WalkableForPacman()
}

// WalkableForGhost is false for out-of-bounds cells.
func (g *Grid) WalkableForGhost(c Coord) bool {
	t, ok := g.Tile(c)
	return ok && t.WalkableForGhost()
}

// Wrap folds c onto the grid on both axes (ghost topology).
func (g *Grid) Wrap(c Coord) Coord {
	return Coord{X: core.Mod(c.X, g.W), Y: core.Mod(c.Y, g.H)}
}

// WrapClamp wraps X and clamps Y (Pacman topology).
func (g *Grid) WrapClamp(c Coord) Coord {
	return Coord{X: core.Mod(c.X, g.W), Y: core.Clamp(c.Y, 0, g.H-1)}
}

// TorusDistance is the Manhattan distance when both axes wrap.
func (g *Grid) TorusDistance(a, b Coord) int {
	dx := core.Abs(a.X - b.X)
	dy := core.Abs(a.Y - b.Y)
	return core.Min(dx, g.W-dx) + core.Min(dy, g.H-dy)
}

// EdibleCells returns every pellet and power pellet position in row-major order.
func (g *Grid) EdibleCells() []Coord {
	return g.edible
}

// PixelWidth returns the grid width in pixels.
func (g *Grid) PixelWidth() int { return g.W * g.TileSize }

// PixelHeight returns the grid height in pixels.
func (g *Grid) PixelHeight() int { return g.H * g.TileSize }
