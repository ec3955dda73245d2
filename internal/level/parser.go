package level

import (
	"errors"
	"fmt"
	"strings"
)

// Marker introduces a level block in a level file. Lines before the first
// marker are ignored, which leaves room for file headers and comments.
const Marker = "Level:"

// Parse errors. Callers match them with errors.Is.
var (
	ErrNoLevelsFound = errors.New("level: no level blocks found")
	ErrMalformedGrid = errors.New("level: malformed grid")
	ErrUnknownSymbol = errors.New("level: unknown symbol")
)

// ParseLevels parses a level file into an ordered slice of levels.
// Blocks are introduced by a line equal to Marker; the lines until the
// next marker or end of file form the grid rows. Parsing fails fast on
// the first malformed block.
func ParseLevels(src []byte) ([]*Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")

	var levels []*Level
	var block []string
	var blockLine int
	inBlock := false

	flush := func() error {
		if !inBlock {
			return nil
		}
		lvl, err := parseBlock(block, blockLine, len(levels)+1)
		if err != nil {
			return err
		}
		levels = append(levels, lvl)
		block = nil
		return nil
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == Marker {
			if err := flush(); err != nil {
				return nil, err
			}
			inBlock = true
			blockLine = i + 1
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("%w (a level file must contain at least one %q line)", ErrNoLevelsFound, Marker)
	}
	return levels, nil
}

// parseBlock turns the raw lines of one block into a validated Level.
// startLine is the 1-based line number of the block's marker, number the
// 1-based level number, both used in error messages only.
func parseBlock(raw []string, startLine, number int) (*Level, error) {
	// Trailing blank lines separate blocks visually and are not grid rows.
	end := len(raw)
	for end > 0 && strings.TrimSpace(raw[end-1]) == "" {
		end--
	}
	raw = raw[:end]

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: level %d (line %d) has no grid rows", ErrMalformedGrid, number, startLine)
	}

	width := len(raw[0])
	rows := make([][]Symbol, len(raw))
	for y, line := range raw {
		if len(line) != width {
			return nil, fmt.Errorf("%w: level %d row %d is %d cells wide, want %d",
				ErrMalformedGrid, number, y+1, len(line), width)
		}
		row := make([]Symbol, width)
		for x := 0; x < width; x++ {
			s := Symbol(line[x])
			if !s.Valid() {
				return nil, fmt.Errorf("%w: %q at level %d row %d column %d",
					ErrUnknownSymbol, line[x], number, y+1, x+1)
			}
			row[x] = s
		}
		rows[y] = row
	}

	lvl := &Level{number: number, width: width, height: len(rows), rows: rows}
	if err := validate(lvl); err != nil {
		return nil, err
	}
	return lvl, nil
}

// validate checks the level invariants: exactly one player start and a
// matching count of boxes and targets. Violations are reported, never
// silently corrected.
func validate(l *Level) error {
	players, boxes, targets := 0, 0, 0
	for _, row := range l.rows {
		for _, s := range row {
			switch {
			case s == SymbolPlayer || s == SymbolPlayerOnTarget:
				players++
			}
			if s.Box() {
				boxes++
			}
			if s.Target() {
				targets++
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: level %d has %d player starts, want exactly 1",
			ErrMalformedGrid, l.number, players)
	}
	if boxes != targets {
		return fmt.Errorf("%w: level %d has %d boxes but %d targets",
			ErrMalformedGrid, l.number, boxes, targets)
	}
	return nil
}
