package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	styleHeader = color.Style{color.FgYellow, color.OpBold}
	styleID     = color.Style{color.FgCyan}
	styleSubtle = color.Style{color.FgGray}
	styleGood   = color.Style{color.FgGreen, color.OpBold}
	styleBad    = color.Style{color.FgRed, color.OpBold}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows the registered variants. They differ in how ghosts move.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	styleHeader.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %s  %s\n", styleID.Sprintf("%-*s", maxIDLen, g.ID), g.Title)
	}

	fmt.Println()
	styleSubtle.Println("Run 'pacman play <id>' to play a variant.")
}
