package screen

// GameCompleteState congratulates the player after the last level.
// Confirm leads to the highscore table when one is available, back to
// the start menu otherwise.
type GameCompleteState struct{}

func (s *GameCompleteState) Enter(c *Controller) {
	c.World().SetBackground("game_complete")
}

func (s *GameCompleteState) Tick(c *Controller) {
	if !isConfirm(c.Input().LastKey()) {
		return
	}
	if c.HighscoreAvailable() {
		c.SetState(c.HighscoreState(), true)
		return
	}
	c.SetState(c.StartState(), true)
}
