package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/layouts"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <layout>",
	Short: "Show best solves for a layout",
	Long: `Display the top 10 solves for the specified layout, fewest moves
first.

Examples:
  klotski scores classic
  klotski scores ambush`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	layoutID := args[0]

	layout, ok := layouts.Get(layoutID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'klotski list' to see available layouts.")
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	solves, err := store.BestSolves(layoutID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solves - %s\n", layout.Name)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'klotski play %s' to set the first record!\n", layoutID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-7s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-7s  %s\n", "----", "-----", "----", "----")

	// Print solves
	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-7d  %-7s  %s\n", i+1, entry.Moves, timeStr, dateStr)
	}

	fmt.Println()
	best, err := store.BestMoves(layoutID)
	if err == nil && best > 0 {
		fmt.Printf("Best: %d moves\n", best)
	}
}
