package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

// Recording receives a call after every simulated tick.
type Recording interface {
	Tick() error
	Finish(outcome string) error
	Finished() bool
}

// InputSource replaces the keyboard during replay playback.
type InputSource interface {
	Next() (core.InputFrame, bool)
	Progress() (played, total int)
}

// Options configure a game run.
type Options struct {
	Recording Recording   // optional
	Playback  InputSource // optional; when set keyboard movement is ignored
	Logger    *log.Logger // optional
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	recording  Recording
	playback   InputSource
	log        *log.Logger
	held       bool // playback paused
	replayDone bool
	quitting   bool
}

// NewModel creates a model for a game that has already been Reset with cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		recording:  opts.Recording,
		playback:   opts.Playback,
		log:        logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.playback != nil {
		if action == core.ActionPause {
			m.held = !m.held
		}
		return m, nil
	}

	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The maze keeps its size;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	if m.playback != nil {
		if m.held || m.replayDone {
			return m, tickCmd(m.config)
		}
		next, ok := m.playback.Next()
		if !ok {
			m.replayDone = true
			m.log.Info("replay finished", "score", m.gameState.Score)
			return m, tickCmd(m.config)
		}
		in = next
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.recording != nil && !m.recording.Finished() {
		if err := m.recording.Tick(); err != nil {
			m.log.Error("recording failed", "err", err)
			m.recording = nil
		}
	}

	m.inputFrame = core.NewInputFrame()
	return m, tickCmd(m.config)
}

// saveScreenshot saves the current screen to ~/.pacman/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pacman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

func (m Model) footer() string {
	if m.playback == nil {
		return m.help.View(m.keys.Keys)
	}
	played, total := m.playback.Progress()
	status := fmt.Sprintf("replay %d/%d  p: hold  q: quit", played, total)
	switch {
	case m.replayDone:
		status = fmt.Sprintf("replay finished at %d frames, score %d  q: quit", total, m.gameState.Score)
	case m.held:
		status = fmt.Sprintf("replay held at %d/%d  p: resume  q: quit", played, total)
	}
	return footerStyle.Render(status)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState { return m.gameState }

// Run plays game in the terminal until the user quits. game must already
// be Reset with cfg. An unfinished recording is closed as a quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if opts.Recording != nil && !opts.Recording.Finished() {
		if ferr := opts.Recording.Finish(storage.OutcomeQuit); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
