// sokoban is a terminal Sokoban game.
//
// Usage:
//
//	sokoban play              - Play in the current terminal
//	sokoban levels [file]     - Validate and describe a level file
//	sokoban scores [level]    - Show recorded highscores
//	sokoban serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Path to a config YAML file
//	--db <path>     - Set database path (default: ~/.sokoban/scores.db)
//	--fps <rate>    - Set tick rate (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - Push boxes onto targets in your terminal",
	Long: `Sokoban is a terminal rendition of the classic box-pushing puzzle.

Available commands:
  play     - Play in the current terminal
  levels   - Validate and describe a level file
  scores   - View recorded highscores
  serve    - Start SSH server for remote play

Examples:
  sokoban play
  sokoban play --levels ./my-levels.txt
  sokoban levels ./my-levels.txt
  sokoban scores
  sokoban serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
