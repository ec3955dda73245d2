// Package level implements the Sokoban level model: the ASCII block
// format, parsing and serialization, and the ordered level collection.
package level

import "strings"

// Symbol is a single cell of the level grid.
type Symbol byte

const (
	SymbolFloor          Symbol = ' ' // walkable, nothing on it
	SymbolWall           Symbol = '#'
	SymbolTarget         Symbol = '.' // a box must end up here
	SymbolBox            Symbol = '$'
	SymbolBoxOnTarget    Symbol = '*'
	SymbolPlayer         Symbol = '@'
	SymbolPlayerOnTarget Symbol = '+'
)

// Valid reports whether s is part of the level alphabet.
func (s Symbol) Valid() bool {
	switch s {
	case SymbolFloor, SymbolWall, SymbolTarget, SymbolBox,
		SymbolBoxOnTarget, SymbolPlayer, SymbolPlayerOnTarget:
		return true
	}
	return false
}

// Target reports whether the cell is a push target (with or without a box
// or the player currently standing on it).
func (s Symbol) Target() bool {
	return s == SymbolTarget || s == SymbolBoxOnTarget || s == SymbolPlayerOnTarget
}

// Box reports whether a box starts on this cell.
func (s Symbol) Box() bool {
	return s == SymbolBox || s == SymbolBoxOnTarget
}

// Coord is a grid position. X grows to the right, Y downward, both 0-based.
type Coord struct {
	X, Y int
}

// Level is one puzzle board definition. Levels are created by ParseLevels
// and are immutable afterwards.
type Level struct {
	number int
	width  int
	height int
	rows   [][]Symbol
}

// Number returns the 1-based level number within its collection.
func (l *Level) Number() int { return l.number }

// Width returns the grid width in cells.
func (l *Level) Width() int { return l.width }

// Height returns the grid height in cells.
func (l *Level) Height() int { return l.height }

// At returns the symbol at the given position, or SymbolWall for
// out-of-bounds coordinates so callers never walk off the grid.
func (l *Level) At(x, y int) Symbol {
	if y < 0 || y >= l.height || x < 0 || x >= l.width {
		return SymbolWall
	}
	return l.rows[y][x]
}

// Targets returns all target cells in row-major order.
func (l *Level) Targets() []Coord {
	var out []Coord
	for y, row := range l.rows {
		for x, s := range row {
			if s.Target() {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Boxes returns the start positions of all boxes in row-major order.
func (l *Level) Boxes() []Coord {
	var out []Coord
	for y, row := range l.rows {
		for x, s := range row {
			if s.Box() {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// PlayerStart returns the player's start position. The second return is
// false only for the zero Level; parsed levels always have exactly one.
func (l *Level) PlayerStart() (Coord, bool) {
	for y, row := range l.rows {
		for x, s := range row {
			if s == SymbolPlayer || s == SymbolPlayerOnTarget {
				return Coord{X: x, Y: y}, true
			}
		}
	}
	return Coord{}, false
}

// Wall reports whether the cell at (x, y) is a wall.
func (l *Level) Wall(x, y int) bool {
	return l.At(x, y) == SymbolWall
}

// Text renders the level back into the ASCII grid format it was parsed
// from, start positions included. ParseLevels is a left-inverse of Text:
// parsing Marker + "\n" + Text() reproduces the grid exactly.
func (l *Level) Text() string {
	var sb strings.Builder
	sb.Grow((l.width + 1) * l.height)
	for y, row := range l.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range row {
			sb.WriteByte(byte(s))
		}
	}
	return sb.String()
}

// TextWith renders the level grid with live actor positions overlaid in
// place of the parsed start positions.
func (l *Level) TextWith(player Coord, boxes []Coord) string {
	boxSet := make(map[Coord]bool, len(boxes))
	for _, b := range boxes {
		boxSet[b] = true
	}

	var sb strings.Builder
	sb.Grow((l.width + 1) * l.height)
	for y, row := range l.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, s := range row {
			c := Coord{X: x, Y: y}
			out := staticSymbol(s)
			switch {
			case boxSet[c]:
				if out == SymbolTarget {
					out = SymbolBoxOnTarget
				} else {
					out = SymbolBox
				}
			case c == player:
				if out == SymbolTarget {
					out = SymbolPlayerOnTarget
				} else {
					out = SymbolPlayer
				}
			}
			sb.WriteByte(byte(out))
		}
	}
	return sb.String()
}

// staticSymbol strips start positions from a cell, leaving walls, targets
// and floor.
func staticSymbol(s Symbol) Symbol {
	switch s {
	case SymbolBox, SymbolPlayer:
		return SymbolFloor
	case SymbolBoxOnTarget, SymbolPlayerOnTarget:
		return SymbolTarget
	}
	return s
}

// Equal reports structural equality of the two level grids. The level
// number is not compared.
func (l *Level) Equal(other *Level) bool {
	if other == nil || l.width != other.width || l.height != other.height {
		return false
	}
	for y := range l.rows {
		for x := range l.rows[y] {
			if l.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}
