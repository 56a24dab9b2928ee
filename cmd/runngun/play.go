package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
	"github.com/vovakirdan/runngun/internal/games/runngun"
	"github.com/vovakirdan/runngun/internal/platform/tui"
	"github.com/vovakirdan/runngun/internal/registry"
	"github.com/vovakirdan/runngun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start a run on the built-in level or a level file.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  J/F/X            - Fire
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Without --difficulty a menu asks for one.

Difficulty options:
  easy   - More hit points, slower turrets, frequent drops
  normal - Config values as written
  hard   - Fewer hit points, faster turrets, rare drops

Examples:
  runngun play
  runngun play --difficulty hard
  runngun play --level ./levels/caves.yaml
  runngun play --config ./my-runngun.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level YAML file")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a key counts as held after its last repeat (default from config)")
}

// applyGameFlags hands the command-line game settings to the game package.
func applyGameFlags() {
	runngun.SetConfigPath(flagConfig)
	runngun.SetLevelPath(flagLevel)
	runngun.SetDifficultyPreset(flagDifficulty)
}

// checkPlayFiles loads the config and level files named on the command line
// and returns the config. The game falls back to built-in data on a broken
// file, so mistakes have to be caught here.
func checkPlayFiles(configPath, levelPath string) (config.RunGunConfig, error) {
	cfg, err := config.LoadRunGun(configPath)
	if err != nil {
		return cfg, err
	}
	if levelPath != "" {
		if _, err := runngun.LoadLevelFile(levelPath); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := checkPlayFiles(flagConfig, flagLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagDifficulty == "" {
		preset, selErr := tui.RunDifficultySelector(width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if preset == nil {
			return
		}
		flagDifficulty = string(*preset)
	}
	applyGameFlags()

	game, err := registry.Create("runngun")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	holdTicks := flagHoldTicks
	if !cmd.Flags().Changed("hold-ticks") {
		holdTicks = cfg.Input.HoldTicks
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "runngun")

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: 60,
			Seed:     flagSeed,
		},
		FPS:       flagFPS,
		HoldTicks: holdTicks,
		Logger:    logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
