package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

type stubGame struct {
	steps    int
	last     core.InputFrame
	gameOver bool
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) {}
func (g *stubGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "STUB") }
func (g *stubGame) State() core.GameState        { return core.GameState{GameOver: g.gameOver, Score: g.steps} }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.State()}
}

type stubRecording struct {
	ticks    int
	finished bool
}

func (r *stubRecording) Tick() error         { r.ticks++; return nil }
func (r *stubRecording) Finish(string) error { r.finished = true; return nil }
func (r *stubRecording) Finished() bool      { return r.finished }

type stubSource struct {
	frames []core.InputFrame
	pos    int
}

func (s *stubSource) Next() (core.InputFrame, bool) {
	if s.pos >= len(s.frames) {
		return core.InputFrame{}, false
	}
	s.pos++
	return s.frames[s.pos-1], true
}

func (s *stubSource) Progress() (int, int) { return s.pos, len(s.frames) }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 40, 20
	return cfg
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runes("w"), core.ActionUp, false},
		{runes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runes("d"), core.ActionRight, false},
		{runes("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runes("r"), core.ActionRestart, false},
		{runes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestModelFeedsKeysOnNextTick(t *testing.T) {
	g := &stubGame{}
	rec := &stubRecording{}
	var m tea.Model = NewModel(g, testRuntime(), Options{Recording: rec})

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(TickMsg{})
	if !g.last.Has(core.ActionLeft) {
		t.Errorf("expected Left on first tick, got %v", g.last.List())
	}

	m, _ = m.Update(TickMsg{})
	if len(g.last.List()) != 0 {
		t.Errorf("input must be cleared after a tick, got %v", g.last.List())
	}
	if rec.ticks != 2 {
		t.Errorf("recording ticks = %d, expected 2", rec.ticks)
	}

	// Restart is only passed through after game over.
	m, _ = m.Update(runes("r"))
	m, _ = m.Update(TickMsg{})
	if g.last.Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	view := m.View()
	if !strings.Contains(view, "STUB") || !strings.Contains(view, "up") {
		t.Errorf("view missing game or help:\n%s", view)
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Error("quit key should return a command")
	}
}

func TestModelPlayback(t *testing.T) {
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	src := &stubSource{frames: []core.InputFrame{left, core.NewInputFrame()}}
	g := &stubGame{}

	var m tea.Model = NewModel(g, testRuntime(), Options{Playback: src})

	m, _ = m.Update(runes("d")) // keyboard movement is ignored
	m, _ = m.Update(TickMsg{})
	if !g.last.Has(core.ActionLeft) || g.last.Has(core.ActionRight) {
		t.Errorf("expected recorded Left only, got %v", g.last.List())
	}

	m, _ = m.Update(runes("p"))
	m, _ = m.Update(TickMsg{})
	if g.steps != 1 {
		t.Errorf("held playback stepped: steps = %d", g.steps)
	}

	m, _ = m.Update(runes("p"))
	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(TickMsg{})
	if g.steps != 2 {
		t.Errorf("steps = %d, expected 2", g.steps)
	}
	if !strings.Contains(m.View(), "replay finished") {
		t.Errorf("expected finished footer:\n%s", m.View())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	var m tea.Model = NewModel(g, testRuntime(), Options{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	mm := m.(Model)
	if mm.screen.Width() != 60 || mm.screen.Height() != 30-footerHeight {
		t.Errorf("screen = %dx%d", mm.screen.Width(), mm.screen.Height())
	}
	if g.steps != 0 {
		t.Error("resize must not step the game")
	}
}

func TestMenuNavigation(t *testing.T) {
	var m tea.Model = NewMenuModel(testRuntime(), config.DifficultyHard)
	mm := m.(MenuModel)
	if mm.Difficulty() != config.DifficultyHard {
		t.Fatalf("Difficulty() = %s", mm.Difficulty())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if view := m.View(); !strings.Contains(view, "fixed (constant speed)") {
		t.Errorf("fixed preset should be labelled, got:\n%s", view)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if d := m.(MenuModel).Difficulty(); d != config.DifficultyEasy {
		t.Errorf("difficulty should wrap to easy, got %s", d)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := m.(MenuModel).result(); !res.WantsReplays {
		t.Errorf("expected replays request, got %+v", res)
	}
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = NewMenuModel(testRuntime(), config.DifficultyNormal)
	m, _ = m.Update(runes("q"))
	if res := m.(MenuModel).result(); !res.Quit {
		t.Errorf("expected quit, got %+v", res)
	}
}

func TestReplaysModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.CreateSession(storage.Session{GameID: "pacman", MapID: "classic", Seed: 1, TickRate: 60})
	if err != nil {
		t.Fatal(err)
	}

	var m tea.Model = NewReplaysModel(store, 100, 30)
	if n := len(m.(ReplaysModel).sessions); n != 1 {
		t.Fatalf("sessions = %d, expected 1", n)
	}
	if !strings.Contains(m.View(), "classic") {
		t.Errorf("view missing session row:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(ReplaysModel).watch != id {
		t.Errorf("watch = %q, expected %q", m.(ReplaysModel).watch, id)
	}

	m = NewReplaysModel(store, 100, 30)
	m, _ = m.Update(runes("x"))
	if n := len(m.(ReplaysModel).sessions); n != 0 {
		t.Errorf("sessions after delete = %d", n)
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'a', core.ColorPink)
	s.SetColored(1, 0, 'b', core.ColorPink)
	s.Set(2, 0, 'c')
	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
