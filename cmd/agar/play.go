package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/envs"
	"github.com/mohamedayman15069/Agar/internal/platform/tui"
	"github.com/mohamedayman15069/Agar/internal/storage"
)

var (
	flagPlayConfig     string
	flagPlayDifficulty string
	flagTickRate       int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Steer the agent interactively",
	Long: `Run an interactive arena session in the terminal.

Controls:
  Arrows/WASD - Move the target point
  Space       - Split
  F           - Feed
  R           - Restart (after the episode ends)
  Q/Ctrl+C    - Quit

Examples:
  agar play
  agar play --difficulty trivial
  agar play --config ./my-env.yaml`,
	Run: runPlayCmd,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to environment config YAML")
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Difficulty preset: normal, empty, trivial")
	playCmd.Flags().IntVar(&flagTickRate, "fps", 15, "Environment steps per second")
}

func runPlayCmd(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagPlayConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagPlayDifficulty != "" {
		cfg.Difficulty = flagPlayDifficulty
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open episodes database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(tui.Options{
		EnvID:    envs.FullID,
		Config:   cfg,
		Store:    store,
		Width:    width,
		Height:   height,
		TickRate: flagTickRate,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
