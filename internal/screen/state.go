// Package screen implements the game's screen-state machine: one state
// per game phase, a controller owning the shared context, and the
// collaborator contracts for the world, input and notification sinks.
package screen

import (
	"github.com/makery/sokoban/internal/board"
	"github.com/makery/sokoban/internal/level"
)

// State is one phase of the game flow. Enter runs once when the state
// becomes active, Tick once per simulation step.
type State interface {
	Enter(c *Controller)
	Tick(c *Controller)
}

// World is the rendering/world collaborator. States place and move
// actors through it; how they are drawn is not the state machine's
// concern.
type World interface {
	// PlaceLevel puts the level's actors at their start positions.
	PlaceLevel(lvl *level.Level)

	// RemoveAllActors clears every actor from the world.
	RemoveAllActors()

	// SetBackground switches the backdrop for the active screen.
	SetBackground(name string)

	// Snapshot returns the live actor layout. ok is false when no level
	// is placed.
	Snapshot() (snap board.Snapshot, ok bool)

	// MovePlayer applies one player move, pushing a box when the rules
	// allow it. Returns true only when the player actually moved.
	MovePlayer(d board.Direction) bool
}

// Input is the abstract input collaborator: the most recently pressed
// key as a canonical token ("up", "enter", "a", ...) or "" when nothing
// was pressed since the last query.
type Input interface {
	LastKey() string
}

// Notifier is the pluggable notification sink for user-visible
// warnings. *log.Logger from charmbracelet/log satisfies it.
type Notifier interface {
	Warn(msg any, keyvals ...any)
}

// isConfirm reports whether the key token confirms/advances a screen.
func isConfirm(key string) bool {
	return key == "enter" || key == "space"
}
