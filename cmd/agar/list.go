package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamedayman15069/Agar/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered environments",
	Long:  `Shows all environment variants registered in this build.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	ids := registry.List()

	if len(ids) == 0 {
		fmt.Println("No environments registered.")
		return
	}

	fmt.Println("Registered environments:")
	fmt.Println()
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
	fmt.Println()
	fmt.Println("Run 'agar rollout <id>' to run random episodes.")
}
