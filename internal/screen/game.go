package screen

import (
	"github.com/makery/sokoban/internal/board"
	"github.com/makery/sokoban/internal/highscore"
)

// GameState is the playing screen. It places the current level's actors
// on entry, applies movement per tick and watches for the win condition.
type GameState struct{}

func (g *GameState) Enter(c *Controller) {
	c.SetNumberOfMoves(0)
	c.SetLevelComplete(false)

	lvl := c.CurrentLevel()
	if lvl == nil {
		c.notifier.Warn("no level to play", "level", c.CurrentLevelNumber())
		return
	}
	c.World().SetBackground("game")
	c.World().PlaceLevel(lvl)
}

func (g *GameState) Tick(c *Controller) {
	lvl := c.CurrentLevel()
	if lvl == nil {
		c.SetState(c.StartState(), true)
		return
	}

	switch key := c.Input().LastKey(); key {
	case "":

	case "escape":
		c.SetState(c.StartState(), true)
		return

	default:
		if d, ok := board.DirectionFromKey(key); ok {
			if c.World().MovePlayer(d) {
				c.IncrementNumberOfMoves()
			}
		}
	}

	snap, ok := c.World().Snapshot()
	if !ok || !board.IsSolved(lvl, snap) {
		return
	}

	c.SetLevelComplete(true)
	g.recordHighscore(c)
	c.SetState(c.LevelCompleteState(), true)
}

// recordHighscore submits the finished level's move count. The store
// keeps the record only if it beats the stored best.
func (g *GameState) recordHighscore(c *Controller) {
	if !c.HighscoreAvailable() || c.HighscoreReadOnly() {
		return
	}
	rec := highscore.Record{
		Level:  c.CurrentLevelNumber(),
		Player: c.PlayerName(),
		Moves:  c.NumberOfMoves(),
	}
	if err := c.SetHighscore(rec); err != nil {
		c.notifier.Warn("could not save highscore", "level", rec.Level, "error", err)
	}
}
