package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/layouts"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built-in layouts",
	Long:  `Shows a list of all built-in puzzle layouts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	all := layouts.List()

	if len(all) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "----")

	// Print layouts
	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, l.ID, size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'klotski play <id>' to play a layout.")
}
