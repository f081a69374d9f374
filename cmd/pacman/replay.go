package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/gui"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify or watch a recorded session",
	Long: `Re-runs a recorded session from its seed, configuration and inputs.

By default the run is headless and the final score is compared with the
stored one; a mismatch exits with status 1. With --watch the session is
played back in the terminal (or a window with --gui).

A unique ID prefix is enough.

Examples:
  pacman replay 3f2a91c0
  pacman replay 3f2a --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the session back instead of verifying it")
	replayCmd.Flags().BoolVar(&flagGUI, "gui", false, "Watch in a pixel window")
}

func runReplay(_ *cobra.Command, args []string) {
	logger, closeLog := newLogger(!flagWatch)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagWatch {
		if err := watchReplay(store, args[0], runtimeConfig(), logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !verifyReplay(store, args[0], logger) {
		os.Exit(1)
	}
}

// verifyReplay re-runs a session headless and reports whether it reproduces
// the stored score.
func verifyReplay(store *storage.Store, id string, logger *log.Logger) bool {
	g, rt, playback, sess, err := pacman.LoadReplay(store, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	pacman.SetLogger(logger)
	g.Reset(rt)

	for {
		in, ok := playback.Next()
		if !ok {
			break
		}
		g.Step(in)
	}
	snap := g.Snapshot()
	printSnapshot(snap)
	fmt.Println()

	if sess.Outcome == storage.OutcomeRecording {
		styleSubtle.Printf("Session %s was never finished; nothing to verify.\n", sess.ID)
		return true
	}
	if snap.Score != sess.Score {
		styleBad.Printf("MISMATCH: stored score %d, replayed %d\n", sess.Score, snap.Score)
		return false
	}
	styleGood.Printf("OK: score %d reproduced over %d ticks\n", snap.Score, sess.Ticks)
	return true
}

// watchReplay plays a stored session back in the chosen frontend.
func watchReplay(store *storage.Store, id string, screen core.RuntimeConfig, logger *log.Logger) error {
	g, rt, playback, sess, err := pacman.LoadReplay(store, id)
	if err != nil {
		return err
	}
	pacman.SetLogger(logger)
	rt.ScreenW, rt.ScreenH = screen.ScreenW, screen.ScreenH
	g.Reset(rt)

	logger.Info("watching replay", "id", sess.ID, "ticks", sess.Ticks)
	if flagGUI {
		return gui.Run(g, rt, gui.Options{Playback: playback, Logger: logger})
	}
	return tui.Run(g, rt, tui.Options{Playback: playback, Logger: logger})
}
