package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// hudHeight is the number of rows above the maze; one status row sits below it.
const hudHeight = 2

var tileGlyphs = map[sim.TileType]struct {
	r rune
	c core.Color
}{
	sim.TileWall:        {'█', core.ColorBlue},
	sim.TilePellet:      {'·', core.ColorWhite},
	sim.TilePowerPellet: {'●', core.ColorBrightWhite},
	sim.TileGhostGate:   {'─', core.ColorPink},
	sim.TileFloor:       {' ', core.ColorDefault},
}

var ghostColors = map[sim.Identity]core.Color{
	sim.Blinky: core.ColorBrightRed,
	sim.Pinky:  core.ColorPink,
	sim.Inky:   core.ColorBrightCyan,
	sim.Clyde:  core.ColorOrange,
}

// MinScreenSize returns the terminal size needed to draw the maze.
func (g *Game) MinScreenSize() (int, int) {
	grid := g.sim.Grid()
	return grid.W, grid.H + hudHeight + 1
}

// Render draws the maze, entities, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	g.renderHUD(dst)

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, T("TOO_SMALL"), core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(T("RESIZE"), minW, minH), core.ColorGray)
		return
	}

	ox := core.Max(0, (dst.Width()-minW)/2)
	oy := hudHeight
	g.renderMaze(dst, ox, oy)
	g.renderFruit(dst, ox, oy)
	g.renderPacman(dst, ox, oy)
	g.renderGhosts(dst, ox, oy)
	g.renderStatus(dst, oy+g.sim.Grid().H)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf(T("SCORE"), g.sim.Score()), core.ColorBrightWhite)
	lives := fmt.Sprintf(T("LIVES"), g.sim.Lives())
	level := fmt.Sprintf(T("LEVEL"), g.sim.Level())
	dst.DrawTextCentered(0, lives, core.ColorBrightYellow)
	dst.DrawTextColored(dst.Width()-len([]rune(level))-1, 0, level, core.ColorBrightWhite)

	if g.sim.State() == sim.StateFrightened {
		dst.DrawTextCentered(1, fmt.Sprintf(T("FRIGHTENED"), g.sim.FrightenedRemaining()), core.ColorBrightBlue)
	}
}

func (g *Game) renderMaze(dst *core.Screen, ox, oy int) {
	grid := g.sim.Grid()
	pac := g.sim.Pacman()
	blink := core.Mod(int(g.tick/15), 2) == 1

	for _, t := range grid.Tiles {
		glyph := tileGlyphs[t.Type]
		r, c := glyph.r, glyph.c
		switch {
		case t.Type.Edible() && pac.Consumed(t.Pos):
			r = ' '
		case t.Type == sim.TilePowerPellet && blink:
			r = ' '
		}
		dst.SetColored(ox+t.Pos.X, oy+t.Pos.Y, r, c)
	}
}

func (g *Game) renderFruit(dst *core.Screen, ox, oy int) {
	if _, cell, ok := g.sim.Fruit(); ok {
		dst.SetColored(ox+cell.X, oy+cell.Y, '%', core.ColorBrightRed)
	}
}

func (g *Game) renderPacman(dst *core.Screen, ox, oy int) {
	p := g.sim.Pacman()
	dst.SetColored(ox+p.Pos.X, oy+p.Pos.Y, pacmanGlyph(p.Dir), core.ColorBrightYellow)
}

// pacmanGlyph draws the mouth open toward the facing.
func pacmanGlyph(d sim.Direction) rune {
	switch d {
	case sim.DirUp:
		return 'v'
	case sim.DirDown:
		return '^'
	case sim.DirRight:
		return '<'
	default:
		return '>'
	}
}

func (g *Game) renderGhosts(dst *core.Screen, ox, oy int) {
	for _, gh := range g.sim.Ghosts() {
		r, c := GhostAppearance(gh, g.sim.FrightenedRemaining())
		dst.SetColored(ox+gh.Pos.X, oy+gh.Pos.Y, r, c)
	}
}

// GhostAppearance selects a ghost's glyph and color from its mode.
// Frightened ghosts flash white during their last two seconds.
func GhostAppearance(gh *sim.Ghost, frightenedLeft float64) (rune, core.Color) {
	switch gh.Mode {
	case sim.ModeFrightened:
		if frightenedLeft > 0 && frightenedLeft < 2 && int(frightenedLeft*4)%2 == 0 {
			return 'M', core.ColorBrightWhite
		}
		return 'M', core.ColorBrightBlue
	case sim.ModeEaten:
		return '"', core.ColorWhite
	default:
		if c, ok := ghostColors[gh.ID]; ok {
			return 'M', c
		}
		return 'M', core.ColorGray
	}
}

func (g *Game) renderStatus(dst *core.Screen, y int) {
	text, c := StatusText(g.sim)
	if text != "" {
		dst.DrawTextCentered(y, text, c)
	}
}

// StatusText returns the win/loss/status line for the simulation's current message.
func StatusText(s *sim.Game) (string, core.Color) {
	switch s.Message() {
	case sim.MessageReady:
		return T("READY"), core.ColorBrightYellow
	case sim.MessageLevelCleared:
		return fmt.Sprintf(T("LEVEL_CLEARED"), s.Level()-1), core.ColorBrightGreen
	case sim.MessagePaused:
		return fmt.Sprintf("%s - %s", T("PAUSED"), T("PRESS_P")), core.ColorBrightCyan
	case sim.MessageGameOver:
		return fmt.Sprintf("%s  %s  %s", T("GAME_OVER"), fmt.Sprintf(T("FINAL_SCORE"), s.Score()), T("PRESS_R")), core.ColorBrightRed
	default:
		return "", core.ColorDefault
	}
}
