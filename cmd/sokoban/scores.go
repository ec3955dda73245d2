package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/makery/sokoban/internal/config"
	"github.com/makery/sokoban/internal/highscore"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded highscores",
	Long: `Display recorded highscores.

Without an argument the best score of every level is shown;
with a level number only that level's best score.

Examples:
  sokoban scores
  sokoban scores 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Scores.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := highscore.Open(dbPath, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		number, convErr := strconv.Atoi(args[0])
		if convErr != nil || number < 1 {
			fmt.Fprintf(os.Stderr, "Error: invalid level number %q\n", args[0])
			os.Exit(1)
		}

		rec, recErr := store.ForLevel(number)
		if recErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", recErr)
			os.Exit(1)
		}
		if rec == nil {
			fmt.Printf("No score recorded for level %d yet.\n", number)
			return
		}
		fmt.Printf("Level %d best: %d moves by %s (%s)\n",
			rec.Level, rec.Moves, rec.Player, rec.CreatedAt.Format("2006-01-02 15:04"))
		return
	}

	records, err := store.Top(100)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'sokoban play' to set the first highscore!")
		return
	}

	fmt.Println("Highscores")
	fmt.Println()
	fmt.Printf("  %-6s  %-6s  %-15s  %s\n", "Level", "Moves", "Player", "Date")
	fmt.Printf("  %-6s  %-6s  %-15s  %s\n", "-----", "-----", "------", "----")

	seen := make(map[int]bool)
	for _, rec := range records {
		// Top is ordered by level then moves; keep the best per level.
		if seen[rec.Level] {
			continue
		}
		seen[rec.Level] = true
		fmt.Printf("  %-6d  %-6d  %-15s  %s\n",
			rec.Level, rec.Moves, rec.Player, rec.CreatedAt.Format("2006-01-02 15:04"))
	}
}
