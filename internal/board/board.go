// Package board tracks the live actor layout of a Sokoban level and
// decides when a level is solved. It contains pure game logic with no
// rendering or platform dependencies.
package board

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/makery/sokoban/internal/level"
)

// Direction is one of the four orthogonal move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// DirectionFromKey maps a canonical key token to a direction.
func DirectionFromKey(key string) (Direction, bool) {
	switch key {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}

// Snapshot is the live actor layout at one instant: the player position
// and the set of box positions.
type Snapshot struct {
	Player level.Coord
	Boxes  mapset.Set[level.Coord]
}

// IsSolved reports whether the snapshot solves the level: every target
// cell holds a box and no box sits on a non-target cell. Pure function of
// its inputs.
func IsSolved(lvl *level.Level, snap Snapshot) bool {
	targets := lvl.Targets()
	if snap.Boxes.Size() != len(targets) {
		return false
	}
	for _, t := range targets {
		if !snap.Boxes.Has(t) {
			return false
		}
	}
	return true
}

// Live is the mutable actor layout for one level in play. It applies the
// Sokoban movement rules: the player walks on floor and target cells and
// pushes a single box at a time, never into a wall or another box.
type Live struct {
	lvl    *level.Level
	player level.Coord
	boxes  mapset.Set[level.Coord]
}

// NewLive places the level's actors at their start positions.
func NewLive(lvl *level.Level) *Live {
	b := &Live{lvl: lvl}
	b.Reset()
	return b
}

// Reset puts all actors back to the level's start layout.
func (b *Live) Reset() {
	start, _ := b.lvl.PlayerStart()
	b.player = start
	b.boxes = mapset.New[level.Coord]()
	for _, c := range b.lvl.Boxes() {
		b.boxes.Put(c)
	}
}

// Level returns the level this board was built from.
func (b *Live) Level() *level.Level { return b.lvl }

// Player returns the current player position.
func (b *Live) Player() level.Coord { return b.player }

// BoxAt reports whether a box currently occupies the given cell.
func (b *Live) BoxAt(c level.Coord) bool { return b.boxes.Has(c) }

// Move attempts to move the player one cell in the given direction,
// pushing a box when one is in the way and the cell beyond it is free.
// It returns true only when the player actually moved.
func (b *Live) Move(d Direction) bool {
	dx, dy := d.Delta()
	next := level.Coord{X: b.player.X + dx, Y: b.player.Y + dy}

	if b.lvl.Wall(next.X, next.Y) {
		return false
	}

	if b.boxes.Has(next) {
		beyond := level.Coord{X: next.X + dx, Y: next.Y + dy}
		if b.lvl.Wall(beyond.X, beyond.Y) || b.boxes.Has(beyond) {
			return false
		}
		b.boxes.Remove(next)
		b.boxes.Put(beyond)
	}

	b.player = next
	return true
}

// Snapshot returns a copy of the current actor layout. The box set is
// copied so later moves do not alias the returned value.
func (b *Live) Snapshot() Snapshot {
	boxes := mapset.New[level.Coord]()
	b.boxes.Each(func(c level.Coord) {
		boxes.Put(c)
	})
	return Snapshot{Player: b.player, Boxes: boxes}
}

// Text renders the board's current layout through the level model,
// actors overlaid at their live positions.
func (b *Live) Text() string {
	var boxes []level.Coord
	b.boxes.Each(func(c level.Coord) {
		boxes = append(boxes, c)
	})
	return b.lvl.TextWith(b.player, boxes)
}
