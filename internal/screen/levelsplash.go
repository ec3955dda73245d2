package screen

// DefaultSplashTicks is how many ticks the level splash stays up before
// advancing on its own.
const DefaultSplashTicks = 90

// LevelSplashState announces the upcoming level ("Level n") and moves on
// after any key press or a short countdown.
type LevelSplashState struct {
	// AutoAdvanceTicks overrides the countdown length; 0 means
	// DefaultSplashTicks.
	AutoAdvanceTicks int

	remaining int
}

func (s *LevelSplashState) Enter(c *Controller) {
	s.remaining = s.AutoAdvanceTicks
	if s.remaining <= 0 {
		s.remaining = DefaultSplashTicks
	}
	c.World().SetBackground("splash")
}

func (s *LevelSplashState) Tick(c *Controller) {
	s.remaining--
	if c.Input().LastKey() != "" || s.remaining <= 0 {
		c.SetState(c.GameState(), true)
	}
}
