package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg PacmanConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPacmanConfig()) {
		t.Errorf("embedded yaml and DefaultPacmanConfig differ:\n%+v\n%+v", cfg, DefaultPacmanConfig())
	}
}

func TestDefaultSimConfig(t *testing.T) {
	got := DefaultPacmanConfig().SimConfig()
	want := sim.DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SimConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("lives: 5\nscoring:\n  ghost_table: [100, 300]\ntiming:\n  first_mode: chase\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() failed: %v", err)
	}
	if cfg.Lives != 5 {
		t.Errorf("Lives = %d, want 5", cfg.Lives)
	}
	if !reflect.DeepEqual(cfg.Scoring.GhostTable, []int{100, 300}) {
		t.Errorf("GhostTable = %v", cfg.Scoring.GhostTable)
	}
	// Unset fields keep their defaults.
	if cfg.Grid.Width != 28 || cfg.Scoring.Pellet != 10 {
		t.Errorf("defaults lost: %+v", cfg.Grid)
	}
	if cfg.SimConfig().FirstMode != sim.ModeChase {
		t.Errorf("FirstMode = %v, want Chase", cfg.SimConfig().FirstMode)
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	if _, err := LoadPacman(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  ghosts:\n    - identity: sue\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPacman(path); err == nil {
		t.Error("expected validation error for unknown identity")
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
		level  int
		freeze bool
	}{
		{DifficultyEasy, 5, 1, false},
		{DifficultyNormal, 3, 1, false},
		{DifficultyHard, 2, 3, false},
		{DifficultyFixed, 3, 1, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			ApplyPacmanPreset(&cfg, tc.preset)
			if cfg.Lives != tc.lives || cfg.StartLevel != tc.level || cfg.FreezeSpeed != tc.freeze {
				t.Errorf("got lives=%d level=%d freeze=%v", cfg.Lives, cfg.StartLevel, cfg.FreezeSpeed)
			}
		})
	}

	cfg := DefaultPacmanConfig()
	cfg.Lives = 1
	ApplyPacmanPreset(&cfg, DifficultyHard)
	if cfg.Lives != 1 {
		t.Errorf("hard preset must keep at least one life, got %d", cfg.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestValidateSpawns(t *testing.T) {
	grid, err := sim.NewGrid([]string{
		"#####",
		"#   #",
		"#####",
	}, 5, 3, 8)
	if err != nil {
		t.Fatal(err)
	}

	base := DefaultPacmanConfig()
	base.Spawn = SpawnConfig{
		Pacman:    Point{X: 1, Y: 1},
		GhostHome: Point{X: 2, Y: 1},
		Fruit:     Point{X: 2, Y: 1},
		Ghosts:    []GhostSpawn{{Identity: "blinky", Start: Point{X: 3, Y: 1}, Scatter: Point{X: 4, Y: 2}}},
	}
	if err := base.ValidateSpawns(grid); err != nil {
		t.Fatalf("ValidateSpawns() = %v", err)
	}

	tests := []struct {
		name   string
		modify func(*SpawnConfig)
	}{
		{"pacman outside", func(s *SpawnConfig) { s.Pacman = Point{X: 40, Y: 50} }},
		{"pacman in wall", func(s *SpawnConfig) { s.Pacman = Point{X: 0, Y: 0} }},
		{"ghost home outside", func(s *SpawnConfig) { s.GhostHome = Point{X: -1, Y: 1} }},
		{"fruit outside", func(s *SpawnConfig) { s.Fruit = Point{X: 2, Y: 3} }},
		{"ghost start outside", func(s *SpawnConfig) { s.Ghosts[0].Start = Point{X: 5, Y: 1} }},
		{"ghost scatter outside", func(s *SpawnConfig) { s.Ghosts[0].Scatter = Point{X: 1, Y: 9} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			cfg.Spawn.Ghosts = append([]GhostSpawn(nil), base.Spawn.Ghosts...)
			tc.modify(&cfg.Spawn)
			if err := cfg.ValidateSpawns(grid); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
