package screen

import "github.com/makery/sokoban/internal/highscore"

// LevelCompleteState shows the result of a solved level. Confirm moves
// on to the next level's splash, or to the game-complete screen after
// the last level.
type LevelCompleteState struct {
	best *highscore.Record
}

func (s *LevelCompleteState) Enter(c *Controller) {
	s.best = c.HighscoreForCurrentLevel()
	c.World().SetBackground("level_complete")
}

func (s *LevelCompleteState) Tick(c *Controller) {
	if !isConfirm(c.Input().LastKey()) {
		return
	}
	if c.GameComplete() {
		c.SetState(c.GameCompleteState(), true)
		return
	}
	c.SetCurrentLevelNumber(c.CurrentLevelNumber() + 1)
	c.SetNumberOfMoves(0)
	c.SetState(c.LevelSplashState(), true)
}

// Best returns the stored best record for the finished level, or nil.
func (s *LevelCompleteState) Best() *highscore.Record { return s.best }
