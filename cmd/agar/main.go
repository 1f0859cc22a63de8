// agar is a CLI for the agar arena learning environment.
//
// Usage:
//
//	agar list               - List registered environments
//	agar rollout <env-id>   - Run random-policy episodes
//	agar play               - Steer the agent interactively in the terminal
//	agar serve              - Serve interactive sessions over SSH
//	agar scores <env-id>    - Show recorded episode results
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible episodes
//	--db <path>     - Episodes database path (default: ~/.agar/episodes.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import to register the environment variants
	_ "github.com/mohamedayman15069/Agar/internal/envs"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agar",
	Short: "Agar arena learning environment",
	Long: `A multiplayer arena simulation exposed through the episodic
reset/step interface used by reinforcement-learning training loops.

Available commands:
  list     - Show all registered environment variants
  rollout  - Run random-policy episodes and record results
  play     - Steer the agent interactively in the terminal
  serve    - Serve interactive sessions over SSH
  scores   - View recorded episode results

Examples:
  agar list
  agar rollout agario-grid-v0 --episodes 5 --difficulty trivial
  agar play --difficulty trivial
  agar serve --ssh :2222
  agar scores agario-grid-v0`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.agar/episodes.db", "Path to episodes database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
