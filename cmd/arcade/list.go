package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its playfield size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Playfield")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "---------")

	for _, g := range games {
		field := fmt.Sprintf("%.0fx%.0f", g.Playfield.W, g.Playfield.H)
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, field)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
