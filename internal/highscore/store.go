// Package highscore persists the best move counts per level and player.
// The Store contract keeps the backend swappable; the SQLite
// implementation in this package is the file-backed default.
package highscore

import (
	"errors"
	"time"
)

// Store errors. Callers match them with errors.Is.
var (
	// ErrUnavailable means the backend cannot be reached at all, e.g.
	// the database file is missing and cannot be created.
	ErrUnavailable = errors.New("highscore: store unavailable")
	// ErrReadOnly means the backend serves reads but forbids writes.
	ErrReadOnly = errors.New("highscore: store is read-only")
)

// Record is one highscore entry: the best (lowest) move count a player
// achieved on a level.
type Record struct {
	Level     int
	Player    string
	Moves     int
	CreatedAt time.Time
}

// Store is the capability contract the screen controller consumes.
// Implementations must keep only the minimum move count per
// (level, player) pair, ties keeping the earlier record.
type Store interface {
	// ForLevel returns the best record for the level, or nil when no
	// record exists.
	ForLevel(levelNumber int) (*Record, error)

	// Set stores the record unless an existing record for the same
	// (level, player) pair already has a lower or equal move count.
	// Returns ErrReadOnly when the backend forbids writes.
	Set(rec Record) error

	// Top returns up to limit records ordered best-first.
	Top(limit int) ([]Record, error)

	// ReadOnly reports whether Set and SetPlayerName are rejected.
	ReadOnly() bool

	// SupportsPlayerNameChange reports whether this backend lets the
	// local player identity be changed at all. A read-only backend may
	// still display a name while rejecting changes.
	SupportsPlayerNameChange() bool

	// PlayerName returns the local player identity used to tag new
	// records, or the empty string when none has been set.
	PlayerName() (string, error)

	// SetPlayerName changes the local player identity. Returns
	// ErrReadOnly on read-only backends.
	SetPlayerName(name string) error

	// Close releases the backend handle.
	Close() error
}
