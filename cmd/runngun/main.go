// runngun is a side-scrolling run-and-gun game played in the terminal.
//
// Usage:
//
//	runngun play                  - Play the built-in level (or --level <file>)
//	runngun list                  - List registered games
//	runngun scores                - Show high scores
//	runngun sim                   - Run a headless, scripted simulation
//	runngun level validate <file> - Check a level file
//	runngun level show [file]     - Print a level's grid and roster
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible drops
//	--db <path>          - Set database path (default: ~/.runngun/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/runngun/internal/games/runngun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runngun",
	Short: "Run & Gun - a side-scrolling shooter in your terminal",
	Long: `Run & Gun is a terminal side-scroller: cross the level, shoot walkers
and turrets, and grab the upgrades they drop.

Available commands:
  play     - Play a level
  list     - Show registered games
  scores   - View high scores
  sim      - Run a headless simulation and print its hash
  level    - Validate or inspect level files

Examples:
  runngun play
  runngun play --difficulty hard
  runngun play --level ./levels/caves.yaml
  runngun scores --interactive
  runngun sim --ticks 3600 --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate requested from the terminal")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runngun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelCmd)
}
