package pacman

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

func defaultSetup(t *testing.T) *Setup {
	t.Helper()
	s, err := NewSetup(config.DefaultPacmanConfig(), config.DifficultyNormal)
	if err != nil {
		t.Fatalf("NewSetup() failed: %v", err)
	}
	return s
}

// corridorSetup is a 5x3 maze with one ghost two cells right of Pacman.
func corridorSetup(t *testing.T) *Setup {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corridor.map")
	if err := os.WriteFile(path, []byte("#####\n#   #\n#####\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultPacmanConfig()
	cfg.Grid = config.GridConfig{Width: 5, Height: 3, TileSize: 8, Map: path}
	cfg.Spawn = config.SpawnConfig{
		Pacman:    config.Point{X: 1, Y: 1},
		GhostHome: config.Point{X: 2, Y: 1},
		Fruit:     config.Point{X: 2, Y: 1},
		Ghosts: []config.GhostSpawn{
			{Identity: "blinky", Start: config.Point{X: 3, Y: 1}, Scatter: config.Point{X: 3, Y: 1}},
		},
	}
	cfg.Speed = config.SpeedConfig{PacmanBase: 0.01, PacmanMin: 0.01, GhostBase: 0.01, GhostMin: 0.01, LevelStep: 0.03}
	cfg.Lives = 1

	s, err := NewSetup(cfg, config.DifficultyNormal)
	if err != nil {
		t.Fatalf("NewSetup() failed: %v", err)
	}
	return s
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 40, TickRate: 60, Seed: seed}
}

func TestNewSetupRejectsSpawnOutsideGrid(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Spawn.Pacman = config.Point{X: 40, Y: 50}

	_, err := NewSetup(cfg, config.DifficultyNormal)
	if err == nil || !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("NewSetup() error = %v, expected a config error", err)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDGreedy, IDAStar} {
		if !registry.Exists(id) {
			t.Errorf("%s is not registered", id)
		}
	}
	g, err := registry.Create(IDAStar)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != IDAStar {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestDeterminism(t *testing.T) {
	setup := defaultSetup(t)
	inputs := ScriptedInputs(99, 1200, 15)

	for _, id := range []string{IDGreedy, IDAStar} {
		t.Run(id, func(t *testing.T) {
			g1, _ := NewVariant(id, setup)
			g2, _ := NewVariant(id, setup)
			g1.Reset(runtimeConfig(12345))
			g2.Reset(runtimeConfig(12345))

			snap1 := Replay(g1, 1200, inputs)
			snap2 := Replay(g2, 1200, inputs)

			if !reflect.DeepEqual(snap1, snap2) {
				t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
			}
			if snap1.Tick == 0 || snap1.Tick > 1200 {
				t.Errorf("Tick = %d, expected 1..1200", snap1.Tick)
			}
		})
	}
}

func TestRecordAndReplay(t *testing.T) {
	setup := defaultSetup(t)

	g1, _ := NewVariant(IDGreedy, setup)
	g1.Reset(runtimeConfig(7))
	rec := NewRecorder()
	g1.AttachRecorder(rec)
	want := Replay(g1, 900, ScriptedInputs(7, 900, 20))

	if rec.Frames() != 900 {
		t.Fatalf("Frames() = %d, expected 900", rec.Frames())
	}
	records := rec.Drain()
	if len(records) == 0 {
		t.Fatal("expected recorded inputs")
	}
	if len(rec.Drain()) != 0 {
		t.Error("Drain() should forget returned records")
	}

	g2, _ := NewVariant(IDGreedy, setup)
	g2.Reset(runtimeConfig(7))
	got := Replay(g2, 900, records)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("replay diverged:\n%+v\n%+v", got, want)
	}
}

func TestPauseToggle(t *testing.T) {
	g, _ := NewVariant(IDGreedy, defaultSetup(t))
	g.Reset(runtimeConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused after pause action")
	}
	before := g.Snapshot().PacmanPos
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().PacmanPos != before {
		t.Error("Pacman moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected resumed after second pause action")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, _ := NewVariant(IDGreedy, corridorSetup(t))
	g.Reset(runtimeConfig(3))

	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatalf("expected game over, got %+v", g.Snapshot())
	}

	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Error("game over must persist without restart")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	st := g.State()
	if st.GameOver || st.Lives != 1 || st.Score != 0 {
		t.Errorf("unexpected state after restart: %+v", st)
	}
}

func TestIntentPriority(t *testing.T) {
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	in.Set(core.ActionLeft)

	d, ok := intentFromInput(in)
	if !ok || actionFor(d) != core.ActionLeft {
		t.Errorf("intentFromInput() = %v, %v; expected Left", d, ok)
	}

	if _, ok := intentFromInput(core.NewInputFrame()); ok {
		t.Error("empty frame should not produce an intent")
	}
}

func TestRender(t *testing.T) {
	SetLanguage("en")
	g, _ := NewVariant(IDGreedy, defaultSetup(t))
	g.Reset(runtimeConfig(1))

	screen := core.NewScreen(40, 40)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Lives: 3") {
		t.Errorf("HUD missing lives: %q", screen.Row(0))
	}

	ox := (40 - 28) / 2
	if r := screen.Get(ox+13, hudHeight+23); r != '>' {
		t.Errorf("expected Pacman facing left at start, got %q", r)
	}
	if c := screen.GetCell(ox, hudHeight); c.Rune != '█' || c.Color != core.ColorBlue {
		t.Errorf("expected wall at maze origin, got %+v", c)
	}
	if c := screen.GetCell(ox+13, hudHeight+11); c.Rune != 'M' || c.Color != core.ColorBrightRed {
		t.Errorf("expected red ghost at its start, got %+v", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	SetLanguage("en")
	g, _ := NewVariant(IDGreedy, defaultSetup(t))
	g.Reset(runtimeConfig(1))

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too small notice:\n%s", screen.String())
	}
}

func TestLanguages(t *testing.T) {
	defer SetLanguage("en")

	if got := SetLanguage("es_ES.UTF-8"); got != "es" {
		t.Errorf("SetLanguage() = %q, expected es", got)
	}
	if T("PAUSED") != "Pausa" {
		t.Errorf("T(PAUSED) = %q", T("PAUSED"))
	}
	for _, info := range registry.List() {
		if info.ID == IDAStar && info.Title != "Pacman (fantasmas A*)" {
			t.Errorf("registry title should follow the language, got %q", info.Title)
		}
	}
	if got := SetLanguage("xx"); got != DefaultLanguage {
		t.Errorf("unknown language should fall back, got %q", got)
	}
	if fmt.Sprintf(T("SCORE"), 120) != "Score: 120" {
		t.Errorf("T(SCORE) = %q", fmt.Sprintf(T("SCORE"), 120))
	}
	if !reflect.DeepEqual(Languages(), []string{"en", "es"}) {
		t.Errorf("Languages() = %v", Languages())
	}
}

func TestSetupConfigYAMLRoundTrip(t *testing.T) {
	s := defaultSetup(t)
	data, err := s.ConfigYAML()
	if err != nil {
		t.Fatalf("ConfigYAML() failed: %v", err)
	}
	s2, err := SetupFromYAML(data, config.DifficultyNormal)
	if err != nil {
		t.Fatalf("SetupFromYAML() failed: %v", err)
	}
	if !reflect.DeepEqual(s.Config, s2.Config) {
		t.Error("config changed across YAML round trip")
	}
}
