package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// newLogger builds the command logger. Interactive frontends own the
// terminal, so without --log they log nowhere; headless commands log to stderr.
func newLogger(headless bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	if headless {
		w = os.Stderr
	}
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(expandHome(flagLogPath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// difficultyFlag parses --difficulty, exiting on an unknown preset.
func difficultyFlag() config.DifficultyPreset {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	return preset
}

// mustLoadSetup loads config and map. A map that cannot be loaded is fatal.
func mustLoadSetup(preset config.DifficultyPreset) *pacman.Setup {
	setup, err := pacman.LoadSetup(pacman.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		Map:        flagMap,
	})
	if err != nil {
		log.Fatal("cannot start game", "err", err)
	}
	return setup
}

// runtimeConfig sizes the screen from the terminal and picks the seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the replay database, warning instead of failing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("replay database unavailable", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	return store
}
