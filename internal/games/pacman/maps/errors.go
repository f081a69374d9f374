package maps

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"

// ErrUndersized is returned by Map.Grid when the layout is smaller than the
// requested grid.
var ErrUndersized = sim.ErrUndersized
