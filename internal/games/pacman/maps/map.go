// Package maps loads maze layouts for the pacman simulation.
// A layout is a block of text rows; '#' wall, '.' pellet, 'o' power pellet,
// '=' ghost gate, anything else floor.
package maps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// ClassicID is the identifier of the built-in default maze.
const ClassicID = "classic"

// ErrNotFound is returned when a map id cannot be resolved.
var ErrNotFound = errors.New("map not found")

//go:embed builtin/*
var builtinFS embed.FS

// Map is a parsed layout with its descriptive fields.
type Map struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// Width returns the length of the longest row in runes.
func (m *Map) Width() int {
	w := 0
	for _, r := range m.Rows {
		w = max(w, len([]rune(r)))
	}
	return w
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return len(m.Rows)
}

// Grid builds a simulation grid using the top-left w x h cells.
func (m *Map) Grid(w, h, tileSize int) (*sim.Grid, error) {
	g, err := sim.NewGrid(m.Rows, w, h, tileSize)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}
	return g, nil
}

// Stats counts the tiles of each kind in the layout.
type Stats struct {
	Walls        int
	Pellets      int
	PowerPellets int
	Gates        int
}

func (m *Map) Stats() Stats {
	var s Stats
	for _, row := range m.Rows {
		for _, r := range row {
			switch sim.TileTypeFromRune(r) {
			case sim.TileWall:
				s.Walls++
			case sim.TilePellet:
				s.Pellets++
			case sim.TilePowerPellet:
				s.PowerPellets++
			case sim.TileGhostGate:
				s.Gates++
			}
		}
	}
	return s
}

// Builtin returns the embedded maps sorted by ID.
func Builtin() []*Map {
	var out []*Map
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(path.Ext(e.Name())) {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			continue
		}
		m, err := parseByExtension(data, e.Name())
		if err != nil {
			continue
		}
		m.FilePath = "embedded:" + e.Name()
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Classic returns the embedded default maze.
func Classic() *Map {
	m, err := BuiltinByID(ClassicID)
	if err != nil {
		panic(fmt.Sprintf("maps: embedded %s map missing: %v", ClassicID, err))
	}
	return m
}

// BuiltinByID looks up an embedded map.
func BuiltinByID(id string) (*Map, error) {
	id = strings.ToLower(id)
	for _, m := range Builtin() {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
