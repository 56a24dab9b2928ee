package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runngun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered on the platform.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Features")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "--------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, strings.Join(g.Capabilities, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'runngun play' to start.")
}
