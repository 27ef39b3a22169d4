// colorquest is a color recognition game for children, played in the terminal.
//
// Usage:
//
//	colorquest               - Play (same as "colorquest play")
//	colorquest play          - Play in this terminal
//	colorquest history       - Show the ranked history
//	colorquest colors        - Show the color palette
//	colorquest serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.colorquest/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorquest",
	Short: "Color Quest - learn your colors in the terminal",
	Long: `Color Quest is a color recognition game for children.

Enter your name, pick a level and find the tile matching the color
name shown on screen. Every right answer scores a point; finished
games are kept in a ranked history.

Available commands:
  play     - Play in this terminal (default)
  history  - Show or clear the ranked history
  colors   - Show the color palette
  serve    - Start SSH server for remote play

Examples:
  colorquest
  colorquest history --limit 10
  colorquest serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorquest/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(serveCmd)
}
