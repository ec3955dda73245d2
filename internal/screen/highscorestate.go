package screen

import "github.com/makery/sokoban/internal/highscore"

// highscoreScreenLimit caps how many records the highscore screen loads.
const highscoreScreenLimit = 20

// HighscoreState shows the stored records. Confirm or escape returns to
// the start menu.
type HighscoreState struct {
	records []highscore.Record
}

func (s *HighscoreState) Enter(c *Controller) {
	s.records = c.TopHighscores(highscoreScreenLimit)
	c.World().SetBackground("highscore")
}

func (s *HighscoreState) Tick(c *Controller) {
	key := c.Input().LastKey()
	if isConfirm(key) || key == "escape" {
		c.SetState(c.StartState(), true)
	}
}

// Records returns the loaded records, for display.
func (s *HighscoreState) Records() []highscore.Record { return s.records }
