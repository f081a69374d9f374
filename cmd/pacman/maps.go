package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/maps"
)

var flagMapDir string

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List available maps",
	Long: `Lists the built-in maps and any maps found under --dir.

Map files are plain text layouts (.map, .txt) or YAML documents with
id, name and layout fields (.yaml, .yml). Layout characters:
  #  wall
  .  pellet
  o  power pellet
  =  ghost gate
  anything else is floor

Examples:
  pacman maps
  pacman maps --dir ./mazes
  pacman play --map ./mazes/tiny.map`,
	Run: runMaps,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapDir, "dir", "", "Directory to scan for map files")
}

func runMaps(_ *cobra.Command, _ []string) {
	all := maps.Builtin()
	if flagMapDir != "" {
		found, err := maps.NewLoader(flagMapDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", flagMapDir, err)
			os.Exit(1)
		}
		all = append(all, found...)
	}

	styleHeader.Println("Available maps:")
	fmt.Println()
	fmt.Printf("  %-14s  %-22s  %-7s  %-7s  %-5s  %s\n", "ID", "Name", "Size", "Pellets", "Power", "Source")
	fmt.Printf("  %-14s  %-22s  %-7s  %-7s  %-5s  %s\n", "--", "----", "----", "-------", "-----", "------")

	for _, m := range all {
		stats := m.Stats()
		source := "built-in"
		if m.FilePath != "" {
			source = m.FilePath
		}
		size := fmt.Sprintf("%dx%d", m.Width(), m.Height())
		fmt.Printf("  %s  %-22s  %-7s  %-7d  %-5d  %s\n",
			styleID.Sprintf("%-14s", m.ID), m.Name, size, stats.Pellets, stats.PowerPellets, styleSubtle.Sprint(source))
	}
}
