package screen

// StartState is the entry menu. A confirm key begins a new run: through
// name entry when the highscore store accepts a player name, directly to
// the level splash otherwise.
type StartState struct{}

func (s *StartState) Enter(c *Controller) {
	// A visit to the start screen begins a fresh run.
	c.SetCurrentLevelNumber(1)
	c.SetNumberOfMoves(0)
	c.SetLevelComplete(false)
	c.World().SetBackground("start")
}

func (s *StartState) Tick(c *Controller) {
	if !isConfirm(c.Input().LastKey()) {
		return
	}
	if c.HighscoreAvailable() && c.CanSetPlayerName() {
		c.SetState(c.EnterNameState(), true)
		return
	}
	c.SetState(c.LevelSplashState(), true)
}
