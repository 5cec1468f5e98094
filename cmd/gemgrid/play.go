package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ninakotova/gemgrid/internal/platform/tui"
	"github.com/ninakotova/gemgrid/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start an interactive game in the current terminal.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Select a tile; select an adjacent one to swap
  Esc          - Cancel the armed selection
  ?            - Toggle help
  Q/Ctrl+C     - Quit (the run is saved)

The swap direction steers gravity: tiles fall toward the second cell you
picked, and new tiles enter from the opposite edge.

Examples:
  gemgrid play
  gemgrid play --seed 42
  gemgrid play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with the run (default: OS user)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; use 'gemgrid simulate' otherwise")
		os.Exit(1)
	}

	cfg := loadConfig()

	player := flagPlayer
	if player == "" {
		if u, err := user.Current(); err == nil {
			player = u.Username
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, flagSeed, store, player)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
