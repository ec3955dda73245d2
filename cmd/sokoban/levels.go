package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makery/sokoban/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [file]",
	Short: "Validate and describe a level file",
	Long: `Parse a level file and print a short report per level.

Without an argument the built-in level set is described.

Examples:
  sokoban levels
  sokoban levels ./my-levels.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	src := level.DefaultSource()
	name := "built-in levels"
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
			os.Exit(1)
		}
		src = data
		name = args[0]
	}

	levels, err := level.ParseLevels(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d level(s)\n", name, len(levels))
	fmt.Println()
	fmt.Printf("  %-6s  %-8s  %s\n", "Level", "Size", "Boxes")
	fmt.Printf("  %-6s  %-8s  %s\n", "-----", "----", "-----")
	for _, lvl := range levels {
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-6d  %-8s  %d\n", lvl.Number(), size, len(lvl.Boxes()))
	}
}
