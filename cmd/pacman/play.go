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
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagGUI    bool
	flagRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The variant selects the ghost movement strategy:
  pacman        - ghosts take the greedy one-step move toward their target
  pacman_astar  - ghosts follow full A* paths

Controls:
  Arrows/WASD  - Turn (buffered until the turn is possible)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Two extra lives
  normal - As configured
  hard   - Start at level 3 with one life less
  fixed  - Speeds stay at the starting level

Examples:
  pacman play
  pacman play pacman_astar --difficulty hard
  pacman play --map ./mazes/tiny.map
  pacman play --gui --record`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a pixel window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session into the replay database")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := pacman.IDGreedy
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(false)
	defer closeLog()

	setup := mustLoadSetup(difficultyFlag())

	var store *storage.Store
	if flagRecord {
		store = openStore(logger)
	}

	runErr := playGame(gameID, setup, runtimeConfig(), store, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playGame creates the variant from the registry and runs it in the chosen
// frontend. A nil store disables recording.
func playGame(gameID string, setup *pacman.Setup, rt core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	pacman.Configure(setup)
	pacman.SetLogger(logger)

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	g, ok := created.(*pacman.Game)
	if !ok {
		return fmt.Errorf("variant %q is not a pacman game", gameID)
	}
	g.Reset(rt)

	var sess *pacman.Session
	if store != nil {
		sess, err = pacman.StartSession(store, g, rt)
		if err != nil {
			logger.Warn("recording disabled", "err", err)
			sess = nil
		} else {
			logger.Info("recording session", "id", sess.ID())
		}
	}

	if flagGUI {
		return gui.Run(g, rt, gui.Options{Session: sess, Logger: logger})
	}

	opts := tui.Options{Logger: logger}
	if sess != nil {
		opts.Recording = sess
	}
	return tui.Run(g, rt, opts)
}
