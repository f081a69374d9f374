// pacman is a maze-chase game for the terminal, with an optional pixel window.
//
// Usage:
//
//	pacman                   - Start menu to pick a variant and difficulty
//	pacman list              - List game variants
//	pacman play [variant]    - Play a variant directly
//	pacman maps              - List available maps
//	pacman simulate          - Run a headless deterministic game
//	pacman replays           - Browse recorded sessions
//	pacman replay <id>       - Verify or watch a recorded session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set replay database path (default: ~/.pacman/replays.db)
//	--log <path>    - Write logs to a file
//	--debug         - Log debug messages
//	--lang <code>   - Interface language (default: $LANG)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagDebug      bool
	flagLang       string
	flagConfig     string
	flagDifficulty string
	flagMap        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pacman - a maze chase in your terminal",
	Long: `Guide Pacman through the maze, eat every pellet and avoid the four ghosts.
Power pellets turn the ghosts blue for a few seconds so you can eat them.

Without a subcommand a menu lets you pick the ghost strategy and difficulty.

Examples:
  pacman
  pacman play --difficulty hard
  pacman play pacman_astar --map ./mazes/tiny.map --record
  pacman simulate --ticks 3600 --seed 42
  pacman replays`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pacman.SetLanguage(flagLang)
	},
	Run: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.pacman/replays.db", "Path to replay database")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log debug messages")
	pf.StringVar(&flagLang, "lang", "", "Interface language (en, es)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagMap, "map", "", "Map ID or path to a .map/.yaml file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}
