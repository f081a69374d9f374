package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

// runMenu is the root command: menu, game, back to menu.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(false)
	defer closeLog()

	store := openStore(logger)
	cfg := runtimeConfig()
	preset := difficultyFlag()

	for {
		res, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = res.Config
		preset = res.Difficulty

		if res.Quit {
			break
		}

		if res.WantsReplays {
			back, err := browseReplays(store, cfg, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if back {
				continue
			}
			break
		}

		setup := mustLoadSetup(preset)
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playGame(res.GameID, setup, cfg, store, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
