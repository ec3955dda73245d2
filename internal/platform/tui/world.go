package tui

import (
	"github.com/makery/sokoban/internal/board"
	"github.com/makery/sokoban/internal/level"
	"github.com/makery/sokoban/internal/screen"
)

// gameWorld implements screen.World over a live board. It is the
// rendering surface the states place actors into; the model reads it
// back when drawing.
type gameWorld struct {
	live       *board.Live
	background string
}

var _ screen.World = (*gameWorld)(nil)

func (w *gameWorld) PlaceLevel(lvl *level.Level) {
	w.live = board.NewLive(lvl)
}

func (w *gameWorld) RemoveAllActors() {
	w.live = nil
}

func (w *gameWorld) SetBackground(name string) {
	w.background = name
}

func (w *gameWorld) Snapshot() (board.Snapshot, bool) {
	if w.live == nil {
		return board.Snapshot{}, false
	}
	return w.live.Snapshot(), true
}

func (w *gameWorld) MovePlayer(d board.Direction) bool {
	if w.live == nil {
		return false
	}
	return w.live.Move(d)
}

// Board returns the live board for rendering, or nil outside of play.
func (w *gameWorld) Board() *board.Live { return w.live }
