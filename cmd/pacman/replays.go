package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Lists the sessions stored in the replay database, newest first.

On a terminal an interactive browser opens: Enter watches a replay,
x deletes one. When output is redirected a plain list is printed.

Examples:
  pacman replays
  pacman replays --limit 5 | cat`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to print when not interactive")
}

func runReplays(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		printSessions(store)
		return
	}

	if _, err := browseReplays(store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// browseReplays runs the browser until the user goes back or quits.
// Watching a replay returns to the browser afterwards.
func browseReplays(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	if store == nil {
		return true, fmt.Errorf("replay database unavailable")
	}
	for {
		res, err := tui.RunReplays(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return false, err
		}
		if res.Watch == "" {
			return res.Back, nil
		}
		if err := watchReplay(store, res.Watch, cfg, logger); err != nil {
			logger.Error("replay failed", "id", res.Watch, "err", err)
		}
	}
}

func printSessions(store *storage.Store) {
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No recorded sessions.")
		fmt.Println()
		fmt.Println("Play with 'pacman play --record' to keep one.")
		return
	}

	fmt.Printf("  %-8s  %-13s  %-10s  %-8s  %-7s  %-3s  %-10s  %s\n",
		"ID", "Variant", "Map", "Preset", "Score", "Lvl", "Outcome", "Date")
	for _, s := range sessions {
		fmt.Printf("  %s  %-13s  %-10s  %-8s  %-7d  %-3d  %-10s  %s\n",
			styleID.Sprint(s.ID[:min(8, len(s.ID))]), s.GameID, s.MapID, s.Difficulty,
			s.Score, s.Level, s.Outcome, styleSubtle.Sprint(s.CreatedAt.Format("2006-01-02 15:04")))
	}
}
