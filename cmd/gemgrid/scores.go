package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninakotova/gemgrid/internal/platform/tui"
	"github.com/ninakotova/gemgrid/internal/storage"
)

var (
	flagScoresTop         int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top recorded runs, best score first.

Examples:
  gemgrid scores
  gemgrid scores --top 25
  gemgrid scores --interactive`,
	Run: runScoresCmd,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresTop, "top", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse runs in a scrollable table")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemgrid play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %-5s  %s\n",
		"Rank", "Player", "Score", "Turns", "Cascade", "Orbs", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %-5s  %s\n",
		"----", "------", "-----", "-----", "-------", "----", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-8d  %-5d  %s\n",
			i+1, player, r.Score, r.Turns, r.MaxCascade, r.OrbsScored,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d runs\n", stats.HighScore, stats.RunsCount)
	}
}
