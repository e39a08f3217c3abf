// arcade runs three pixel arcade games (Breakout, Galaxy Shooter, Tetris)
// in the terminal, over SSH or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade replays [game]    - Browse recorded sessions
//	arcade replay <id>       - Re-simulate a recording and verify it
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/replays.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pixel-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/shooter"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case errors.Is(err, errMismatch):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pixel Arcade - Breakout, Galaxy Shooter and Tetris",
	Long: `Pixel Arcade plays three classic arcade games in your terminal,
over SSH, or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  replays  - Browse recorded sessions
  replay   - Verify a recorded session

Examples:
  arcade list
  arcade play tetris
  arcade play breakout --backend window --record
  arcade menu
  arcade serve --ssh :2222
  arcade replay 3f2c9a1e-...`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
}
