package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/makery/sokoban/internal/config"
	"github.com/makery/sokoban/internal/highscore"
	"github.com/makery/sokoban/internal/platform/tui"
)

var (
	flagLevels      string
	flagFastStart   bool
	flagNoHighscore bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrow keys / WASD - Move the player
  Enter/Space       - Confirm
  Esc               - Back to the start screen
  Ctrl+C            - Quit

Examples:
  sokoban play
  sokoban play --levels ./my-levels.txt
  sokoban play --fast-start
  sokoban play --no-highscore`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a level file (default: built-in levels)")
	playCmd.Flags().BoolVar(&flagFastStart, "fast-start", false, "Skip the start screen and play immediately")
	playCmd.Flags().BoolVar(&flagNoHighscore, "no-highscore", false, "Disable the highscore store")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	levelsPath := cfg.Levels.Path
	if flagLevels != "" {
		levelsPath = flagLevels
	}
	fastStart := cfg.Game.FastStart || flagFastStart
	tickRate := cfg.Game.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	dbPath := cfg.Scores.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	// Open the highscore store. The game still works without it.
	var store highscore.Store
	if cfg.Scores.Enabled && !flagNoHighscore {
		sqlStore, storeErr := highscore.Open(dbPath, cfg.Scores.ReadOnly)
		if storeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", storeErr)
		} else {
			store = sqlStore
		}
	}

	runErr := tui.Run(tui.Options{
		LevelsPath:  levelsPath,
		Store:       store,
		FastStart:   fastStart,
		TickRate:    tickRate,
		SplashTicks: cfg.Game.SplashTicks,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
