// gemgrid is a terminal tile-matching puzzle with player-steered gravity.
//
// Usage:
//
//	gemgrid play              - Play in the local terminal
//	gemgrid simulate          - Run headless games for balance testing
//	gemgrid serve             - Start SSH server for remote play
//	gemgrid scores            - Show the best recorded runs
//	gemgrid rules             - Print the active rules configuration
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible games (0 = time-based)
//	--db <path>      - Runs database path (default: ~/.gemgrid/runs.db)
//	--config <path>  - Custom rules config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninakotova/gemgrid/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemgrid",
	Short: "gemgrid - a terminal puzzle of swaps, gravity and cascades",
	Long: `gemgrid is a turn-based tile-matching puzzle for the terminal.
Swap adjacent tiles to line up three or more of a color; the direction of
your swap decides which way the whole board falls afterwards.

Available commands:
  play      - Play in the local terminal
  simulate  - Run headless games for balance testing
  serve     - Start SSH server for remote play
  scores    - View the best recorded runs
  rules     - Print the active rules configuration

Examples:
  gemgrid play
  gemgrid play --seed 42
  gemgrid simulate --runs 20 --turns 100
  gemgrid serve --ssh :2222
  gemgrid scores --top 10`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemgrid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadConfig loads the rules config honoring the global --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.Default()
	}
	return cfg
}
