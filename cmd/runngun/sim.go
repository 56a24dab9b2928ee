package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
	"github.com/vovakirdan/runngun/internal/games/runngun"
)

var (
	flagSimTicks   int
	flagSimScript  string
	flagSimProfile string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI, driven by a scripted input
pattern, and print the final state and snapshot hash. Two runs with the same
seed, script and level always print the same hash.

Scripts:
  idle    - No input
  run     - Hold right and jump every 45 ticks
  gunner  - Hold right and fire, jump every 45 ticks, back off now and then

Examples:
  runngun sim --ticks 3600 --seed 42
  runngun sim --script idle --level ./levels/caves.yaml
  runngun sim --ticks 100000 --profile cpu`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimScript, "script", "gunner", "Input script: idle, run, gunner")
	simCmd.Flags().StringVar(&flagSimProfile, "profile", "", "Write a profile to the working directory: cpu, mem")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level YAML file")
}

// inputScript produces the input for a tick.
type inputScript func(tick int) core.InputFrame

func scriptByName(name string) (inputScript, error) {
	switch name {
	case "idle":
		return func(int) core.InputFrame { return core.NewInputFrame() }, nil
	case "run":
		return func(tick int) core.InputFrame {
			in := core.NewInputFrame()
			in.Hold(core.ActionRight)
			if tick%45 == 0 {
				in.Set(core.ActionJump)
			}
			return in
		}, nil
	case "gunner":
		return func(tick int) core.InputFrame {
			in := core.NewInputFrame()
			if tick%300 > 240 {
				in.Hold(core.ActionLeft)
				return in
			}
			in.Hold(core.ActionRight)
			in.Hold(core.ActionFire)
			if tick%45 == 0 {
				in.Set(core.ActionJump)
			}
			return in
		}, nil
	default:
		return nil, fmt.Errorf("unknown script %q", name)
	}
}

// simResult is the outcome of a headless run.
type simResult struct {
	Ticks    int
	Score    int
	State    runngun.SessionState
	Restarts int
	Hash     uint64
}

// simulate runs a fresh session for n ticks. A finished run stops early.
func simulate(cfg config.RunGunConfig, level *runngun.Level, seed int64, n int, script inputScript) (simResult, error) {
	s, err := runngun.NewSession(cfg, level, core.NewSimpleRNG(seed), 320, 176)
	if err != nil {
		return simResult{}, err
	}

	res := simResult{}
	for i := 0; i < n; i++ {
		r := s.Tick(script(i))
		if r.Restarted {
			res.Restarts++
		}
		if r.Ended {
			break
		}
	}

	res.Ticks = int(s.Ticks())
	res.Score = s.Score()
	res.State = s.State()
	res.Hash = s.Snapshot().Hash()
	return res, nil
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "sim")

	script, err := scriptByName(flagSimScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadRunGun(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyRunGunPreset(&cfg, preset)
	}

	level := runngun.DefaultLevel()
	if flagLevel != "" {
		if level, err = runngun.LoadLevelFile(flagLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	switch flagSimProfile {
	case "":
	case "cpu":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	case "mem":
		p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile mode %q\n", flagSimProfile)
		os.Exit(1)
	}

	logger.Debug("simulating", "level", level.ID, "script", flagSimScript, "seed", seed, "ticks", flagSimTicks)
	res, err := simulate(cfg, level, seed, flagSimTicks, script)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	logger.Info("simulation done", "ticks", res.Ticks, "state", res.State)

	fmt.Printf("level:  %s\n", level.ID)
	fmt.Printf("ticks:  %d\n", res.Ticks)
	fmt.Printf("state:  %s\n", res.State)
	fmt.Printf("score:  %d\n", res.Score)
	fmt.Printf("hash:   %016x\n", res.Hash)
}
