// Package gui is a pixel frontend built on Ebiten. It drives the same
// fixed-tick pacman.Game as the terminal frontend and draws the simulation
// state with vector shapes at the configured tile size.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// hudPixels is the height of the text strip above the maze.
const hudPixels = 32

var (
	colorWall   = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	colorPellet = color.RGBA{R: 255, G: 184, B: 174, A: 255}
	colorGate   = core.ColorPink.ToRGBA()
	colorPacman = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	colorFruit  = color.RGBA{R: 222, G: 0, B: 0, A: 255}
)

// Options configure a windowed run.
type Options struct {
	Session  *pacman.Session  // optional recording
	Playback *pacman.Playback // optional; replaces the keyboard
	Logger   *log.Logger
	Scale    float64 // window scale factor, 0 means 2
}

// Window implements ebiten.Game.
type Window struct {
	game     *pacman.Game
	session  *pacman.Session
	playback *pacman.Playback
	log      *log.Logger
	rt       core.RuntimeConfig
	state    core.GameState
}

// NewWindow wraps a game that has already been Reset with rt.
func NewWindow(g *pacman.Game, rt core.RuntimeConfig, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:     g,
		session:  opts.Session,
		playback: opts.Playback,
		log:      logger,
		rt:       rt,
		state:    g.State(),
	}
}

// Update runs one simulation tick. Ebiten calls it TickRate times a second.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := inputFrame(inpututil.IsKeyJustPressed)
	if w.playback != nil {
		next, ok := w.playback.Next()
		if !ok {
			return nil
		}
		in = next
	} else if !w.state.GameOver {
		delete(in.Actions, core.ActionRestart)
	}

	w.state = w.game.Step(in).State

	if w.session != nil && !w.session.Finished() {
		if err := w.session.Tick(); err != nil {
			w.log.Error("recording failed", "err", err)
			w.session = nil
		}
	}
	return nil
}

// keyBindings maps keys to actions, arrows and WASD alike.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

func inputFrame(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if pressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}

// Draw paints the maze, entities and HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	s := w.game.Sim()
	if s == nil {
		return
	}
	grid := s.Grid()
	size := float32(grid.TileSize)
	pac := s.Pacman()
	blink := (s.Tick()/15)%2 == 1

	for _, t := range grid.Tiles {
		px, py := float32(t.PixelX()), float32(t.PixelY()+hudPixels)
		cx, cy := px+size/2, py+size/2
		switch t.Type {
		case sim.TileWall:
			vector.DrawFilledRect(screen, px, py, size, size, colorWall, false)
		case sim.TileGhostGate:
			vector.DrawFilledRect(screen, px, cy-size/8, size, size/4, colorGate, false)
		case sim.TilePellet:
			if !pac.Consumed(t.Pos) {
				vector.DrawFilledCircle(screen, cx, cy, size/8, colorPellet, true)
			}
		case sim.TilePowerPellet:
			if !pac.Consumed(t.Pos) && !blink {
				vector.DrawFilledCircle(screen, cx, cy, size/3, colorPellet, true)
			}
		}
	}

	if _, cell, ok := s.Fruit(); ok {
		cx, cy := w.center(grid, cell)
		vector.DrawFilledCircle(screen, cx, cy, size/3, colorFruit, true)
	}

	cx, cy := w.center(grid, pac.Pos)
	vector.DrawFilledCircle(screen, cx, cy, size/2-1, colorPacman, true)

	for _, gh := range s.Ghosts() {
		_, c := pacman.GhostAppearance(gh, s.FrightenedRemaining())
		cx, cy := w.center(grid, gh.Pos)
		vector.DrawFilledCircle(screen, cx, cy, size/2-1, c.ToRGBA(), true)
		vector.DrawFilledRect(screen, cx-size/2+1, cy, size-2, size/2-1, c.ToRGBA(), false)
	}

	w.drawHUD(screen, s)
}

func (w *Window) center(grid *sim.Grid, c sim.Coord) (float32, float32) {
	size := grid.TileSize
	return float32(c.X*size + size/2), float32(c.Y*size + size/2 + hudPixels)
}

func (w *Window) drawHUD(screen *ebiten.Image, s *sim.Game) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(pacman.T("SCORE"), s.Score())+"   "+
		fmt.Sprintf(pacman.T("LIVES"), s.Lives())+"   "+fmt.Sprintf(pacman.T("LEVEL"), s.Level()), 4, 0)

	line := ""
	if s.State() == sim.StateFrightened {
		line = fmt.Sprintf(pacman.T("FRIGHTENED"), s.FrightenedRemaining())
	}
	if text, _ := pacman.StatusText(s); text != "" {
		line = text
	}
	if w.playback != nil {
		played, total := w.playback.Progress()
		line = fmt.Sprintf(pacman.T("REPLAY"), played, total) + "  " + line
	}
	ebitenutil.DebugPrintAt(screen, line, 4, 14)
}

// Layout returns the native resolution: the maze plus the HUD strip.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := w.game.Sim().Grid()
	return grid.PixelWidth(), grid.PixelHeight() + hudPixels
}

// Run opens a window and plays until it is closed or q is pressed.
// An unfinished recording is closed as a quit.
func Run(g *pacman.Game, rt core.RuntimeConfig, opts Options) error {
	w := NewWindow(g, rt, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	lw, lh := w.Layout(0, 0)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowSize(int(float64(lw)*scale), int(float64(lh)*scale))
	ebiten.SetTPS(rt.TickRate)

	err := ebiten.RunGame(w)
	if opts.Session != nil && !opts.Session.Finished() {
		if ferr := opts.Session.Finish(storage.OutcomeQuit); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
