package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/layouts"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var (
	flagBoard      string
	flagLayoutFile string
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a puzzle layout",
	Long: `Start playing the specified layout. With no argument the classic
layout is used.

Controls:
  Click        - Auto-move the piece next to a gap
  Drag         - Move a piece in the drag direction
  Tab          - Cycle piece selection
  Arrows/hjkl  - Move the selected piece
  R            - Reset the board
  Q/Ctrl+C     - Quit

Examples:
  klotski play
  klotski play ambush
  klotski play --board 0x2113_2113_4556_4786_900a
  klotski play --file ./my-layout.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Encoded board to play instead of a named layout")
	playCmd.Flags().StringVar(&flagLayoutFile, "file", "", "Path to a custom layout YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	layout, err := resolveLayout(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early, keep defaults when not a terminal
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	runErr := tui.Run(layout, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLayout picks the layout from the --board / --file flags or the
// positional layout id, in that priority order.
func resolveLayout(args []string) (layouts.Layout, error) {
	if flagBoard != "" {
		l := layouts.FromEncoding(flagBoard)
		if err := l.Validate(); err != nil {
			return layouts.Layout{}, err
		}
		return l, nil
	}

	if flagLayoutFile != "" {
		return layouts.LoadFile(flagLayoutFile)
	}

	if len(args) == 0 {
		return layouts.Default(), nil
	}

	l, ok := layouts.Get(args[0])
	if !ok {
		return layouts.Layout{}, fmt.Errorf("unknown layout %q, run 'klotski list' to see available layouts", args[0])
	}
	return l, nil
}
