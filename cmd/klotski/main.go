// klotski is a terminal sliding-block puzzle in the Klotski family.
//
// Usage:
//
//	klotski list              - List built-in layouts
//	klotski play [layout]     - Play a layout (default: classic)
//	klotski menu              - Start menu to pick layouts interactively
//	klotski serve             - Start SSH server for remote play
//	klotski scores <layout>   - Show best solves for a layout
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.klotski/solves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klotski",
	Short: "Klotski - Sliding-block puzzles in your terminal",
	Long: `Klotski is a terminal sliding-block puzzle game. Slide the pieces
around until the goal piece reaches the marked cells, in as few
moves as you can.

Available commands:
  list     - Show all built-in layouts
  play     - Play a specific layout directly
  menu     - Interactive layout picker menu
  serve    - Start SSH server for remote play
  scores   - View best solves

Examples:
  klotski list
  klotski play classic
  klotski play --board 0x2113_2113_4556_4786_900a
  klotski menu
  klotski serve --ssh :2222
  klotski scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.klotski/solves.db", "Path to solves database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
