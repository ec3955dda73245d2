package screen

// MaxPlayerNameLen bounds the highscore player name.
const MaxPlayerNameLen = 15

// EnterNameState collects the player name used to tag new highscore
// records. The buffer is prefilled with the stored name.
type EnterNameState struct {
	name []rune
}

func (s *EnterNameState) Enter(c *Controller) {
	s.name = []rune(c.PlayerName())
	c.World().SetBackground("enter_name")
}

func (s *EnterNameState) Tick(c *Controller) {
	key := c.Input().LastKey()
	switch {
	case key == "":

	case isConfirm(key):
		if len(s.name) == 0 {
			return
		}
		if err := c.SetPlayerName(string(s.name)); err != nil {
			c.notifier.Warn("could not save player name", "error", err)
		}
		c.SetState(c.LevelSplashState(), true)

	case key == "backspace":
		if len(s.name) > 0 {
			s.name = s.name[:len(s.name)-1]
		}

	default:
		r := []rune(key)
		if len(r) == 1 && r[0] >= ' ' && len(s.name) < MaxPlayerNameLen {
			s.name = append(s.name, r[0])
		}
	}
}

// Name returns the buffer contents, for display.
func (s *EnterNameState) Name() string { return string(s.name) }
