package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/mohamedayman15069/Agar/internal/config"
	"github.com/mohamedayman15069/Agar/internal/engine"
	"github.com/mohamedayman15069/Agar/internal/env"
	"github.com/mohamedayman15069/Agar/internal/registry"
	"github.com/mohamedayman15069/Agar/internal/storage"
)

var (
	flagEpisodes   int
	flagMaxSteps   int
	flagDifficulty string
	flagEnvConfig  string
	flagNoSave     bool
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout <env-id>",
	Short: "Run random-policy episodes",
	Long: `Run one or more episodes with a uniform random policy and record
the results.

Examples:
  agar rollout agario-grid-v0
  agar rollout agario-full-v0 --episodes 10 --difficulty trivial
  agar rollout agario-ram-v0 --max-steps 500 --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runRollout,
}

func init() {
	rolloutCmd.Flags().IntVar(&flagEpisodes, "episodes", 1, "Number of episodes to run")
	rolloutCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 1000, "Step limit per episode")
	rolloutCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, empty, trivial")
	rolloutCmd.Flags().StringVar(&flagEnvConfig, "config", "", "Path to environment config YAML")
	rolloutCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not persist episode results")
}

func runRollout(cmd *cobra.Command, args []string) {
	envID := args[0]
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rollout",
	})

	if !registry.Exists(envID) {
		logger.Error("unknown environment", "id", envID)
		fmt.Fprintln(os.Stderr, "Run 'agar list' to see registered environments.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagEnvConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if flagDifficulty != "" {
		cfg.Difficulty = flagDifficulty
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	var store *storage.Store
	if !flagNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episodes database", "error", err)
		} else {
			defer store.Close()
		}
	}

	rng := rand.New(rand.NewSource(pickSeed(cfg.Seed)))
	rewards := make([]float64, 0, flagEpisodes)

	for ep := 0; ep < flagEpisodes; ep++ {
		// A distinct seed per episode keeps episodes independent but
		// reproducible from the top-level seed.
		epCfg := cfg
		epCfg.Seed = rng.Int63()

		e, err := registry.Make(envID, epCfg)
		if err != nil {
			if errors.Is(err, env.ErrUnavailable) {
				logger.Fatal("encoding not available in this build", "id", envID, "error", err)
			}
			logger.Fatal("cannot build environment", "id", envID, "error", err)
		}

		total, steps, terminated, err := runEpisode(e, rng, flagMaxSteps)
		if err != nil {
			// Step after reset cannot fail by contract; treat as fatal.
			logger.Fatal("step failed", "error", err)
		}
		rewards = append(rewards, total)

		logger.Info("episode finished",
			"episode", ep+1,
			"id", e.EpisodeID(),
			"steps", steps,
			"reward", fmt.Sprintf("%.2f", total),
			"terminated", terminated,
		)

		if store != nil {
			if _, err := store.SaveEpisode(storage.EpisodeResult{
				EpisodeID:   e.EpisodeID(),
				EnvID:       envID,
				Difficulty:  epCfg.Difficulty,
				Steps:       steps,
				TotalReward: total,
				Terminated:  terminated,
			}); err != nil {
				logger.Warn("could not save episode", "error", err)
			}
		}
	}

	if len(rewards) > 1 {
		logger.Info("rollout summary",
			"episodes", len(rewards),
			"mean_reward", fmt.Sprintf("%.2f", stat.Mean(rewards, nil)),
			"stddev", fmt.Sprintf("%.2f", stat.StdDev(rewards, nil)),
		)
	}
}

// runEpisode drives one episode with uniformly random actions.
func runEpisode(e *env.Env, rng *rand.Rand, maxSteps int) (total float64, steps int, terminated bool, err error) {
	arena := e.Config().ArenaSize
	e.Reset()

	for steps < maxSteps {
		action := env.Action{
			X:         rng.Float64() * arena,
			Y:         rng.Float64() * arena,
			Directive: engine.Directive(rng.Intn(3)),
		}

		_, reward, done, info, stepErr := e.Step(action)
		if stepErr != nil {
			return total, steps, terminated, stepErr
		}

		total += reward
		steps = info.StepCount
		if done {
			terminated = true
			break
		}
	}
	return total, steps, terminated, nil
}

// pickSeed returns the given seed, or a time-based one when zero.
func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
