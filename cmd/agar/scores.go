package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohamedayman15069/Agar/internal/registry"
	"github.com/mohamedayman15069/Agar/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <env-id>",
	Short: "Show recorded episode results",
	Long: `Display the top 10 episodes by total reward for an environment.

Examples:
  agar scores agario-grid-v0
  agar scores agario-full-v0`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	envID := args[0]

	if !registry.Exists(envID) {
		fmt.Fprintf(os.Stderr, "Error: unknown environment %q\n", envID)
		fmt.Fprintln(os.Stderr, "Run 'agar list' to see registered environments.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episodes database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	episodes, err := store.TopEpisodes(envID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top episodes - %s\n", envID)
	fmt.Println()

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'agar rollout %s' to record the first one.\n", envID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "Rank", "Reward", "Steps", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "----", "------", "-----", "----------", "----")
	for i, ep := range episodes {
		dateStr := ep.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10.2f  %-6d  %-10s  %s\n", i+1, ep.TotalReward, ep.Steps, ep.Difficulty, dateStr)
	}

	stats, err := store.Stats(envID)
	if err == nil && stats.Episodes > 0 {
		fmt.Println()
		fmt.Printf("Episodes: %d  Best: %.2f  Avg reward: %.2f  Avg steps: %.1f\n",
			stats.Episodes, stats.BestReward, stats.AvgReward, stats.AvgSteps)
	}
}
