package screen

import (
	"errors"
	"fmt"
	"os"

	"github.com/makery/sokoban/internal/highscore"
	"github.com/makery/sokoban/internal/level"
)

// Load errors. Both degrade to an empty level collection; the process
// keeps running.
var (
	ErrLevelsNotFound = errors.New("screen: level file not found")
	ErrNoLevels       = errors.New("screen: no levels loaded")
)

// Options configures a Controller.
type Options struct {
	// Store is the highscore backend. nil disables highscore features.
	Store highscore.Store

	// FastStart skips the menu flow and enters the game directly at
	// level 1, for testing and level design.
	FastStart bool
}

// Controller owns the level collection, the shared screen context and
// the active state, and drives the per-tick dispatch. It is constructed
// explicitly; there is no package-level instance.
type Controller struct {
	world    World
	input    Input
	notifier Notifier

	levels *level.Collection
	store  highscore.Store

	startState         *StartState
	enterNameState     *EnterNameState
	levelSplashState   *LevelSplashState
	gameState          *GameState
	levelCompleteState *LevelCompleteState
	gameCompleteState  *GameCompleteState
	highscoreState     *HighscoreState

	state State

	currentLevelNumber int
	numberOfMoves      int
	levelComplete      bool
	fastStart          bool
}

// New creates a controller wired to its collaborators. Levels are loaded
// separately with LoadLevels; the machine starts with Start.
func New(world World, input Input, notifier Notifier, opts Options) *Controller {
	c := &Controller{
		world:              world,
		input:              input,
		notifier:           notifier,
		store:              opts.Store,
		fastStart:          opts.FastStart,
		currentLevelNumber: 1,
	}

	c.startState = &StartState{}
	c.enterNameState = &EnterNameState{}
	c.levelSplashState = &LevelSplashState{}
	c.gameState = &GameState{}
	c.levelCompleteState = &LevelCompleteState{}
	c.gameCompleteState = &GameCompleteState{}
	c.highscoreState = &HighscoreState{}

	return c
}

// LoadLevels reads and parses the level file. A missing file or a parse
// failure is reported through the notifier and leaves the collection
// empty; the controller stays usable.
func (c *Controller) LoadLevels(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.levels = nil
		c.notifier.Warn("could not find level file", "path", path, "error", err)
		return fmt.Errorf("%w: %s", ErrLevelsNotFound, path)
	}
	return c.LoadLevelSource(data)
}

// LoadLevelSource parses levels from the given source text.
func (c *Controller) LoadLevelSource(src []byte) error {
	levels, err := level.ParseLevels(src)
	if err != nil {
		c.levels = nil
		c.notifier.Warn("could not load levels", "error", err)
		if errors.Is(err, level.ErrNoLevelsFound) {
			return fmt.Errorf("%w: %v", ErrNoLevels, err)
		}
		return fmt.Errorf("screen: cannot load levels: %w", err)
	}
	c.levels = level.NewCollection(levels)
	return nil
}

// Start selects the initial state: the start menu, or the game directly
// when fast-start mode is on.
func (c *Controller) Start() {
	if c.fastStart {
		c.SetState(c.gameState, true)
		return
	}
	c.SetState(c.startState, true)
}

// SetState makes the given state active. When clearWorld is true all
// actors and the background are removed before the new state's Enter
// runs; passing false keeps the world for same-screen refreshes.
func (c *Controller) SetState(s State, clearWorld bool) {
	if clearWorld {
		c.world.RemoveAllActors()
		c.world.SetBackground("")
	}
	c.state = s
	s.Enter(c)
}

// Tick delegates one simulation step to the active state. It is a no-op
// until Start has been called.
func (c *Controller) Tick() {
	if c.state != nil {
		c.state.Tick(c)
	}
}

// ActiveState returns the currently active state, or nil before Start.
func (c *Controller) ActiveState() State { return c.state }

// State accessors, one per screen.

func (c *Controller) StartState() *StartState                 { return c.startState }
func (c *Controller) EnterNameState() *EnterNameState         { return c.enterNameState }
func (c *Controller) LevelSplashState() *LevelSplashState     { return c.levelSplashState }
func (c *Controller) GameState() *GameState                   { return c.gameState }
func (c *Controller) LevelCompleteState() *LevelCompleteState { return c.levelCompleteState }
func (c *Controller) GameCompleteState() *GameCompleteState   { return c.gameCompleteState }
func (c *Controller) HighscoreState() *HighscoreState         { return c.highscoreState }

// World returns the world collaborator.
func (c *Controller) World() World { return c.world }

// Input returns the input collaborator.
func (c *Controller) Input() Input { return c.input }

// NumberOfLevels returns the size of the loaded level collection.
func (c *Controller) NumberOfLevels() int { return c.levels.Len() }

// CurrentLevelNumber returns the 1-based number of the current level.
func (c *Controller) CurrentLevelNumber() int { return c.currentLevelNumber }

// SetCurrentLevelNumber sets the current level number, clamped to
// [1, numberOfLevels] (or 1 when no levels are loaded).
func (c *Controller) SetCurrentLevelNumber(n int) {
	highest := c.levels.Len()
	if highest < 1 {
		highest = 1
	}
	if n < 1 {
		n = 1
	}
	if n > highest {
		n = highest
	}
	c.currentLevelNumber = n
}

// CurrentLevel returns the current level, or nil when levels could not
// be loaded.
func (c *Controller) CurrentLevel() *level.Level {
	return c.levels.Get(c.currentLevelNumber)
}

// Level returns the level with the given number, or nil when out of
// range.
func (c *Controller) Level(number int) *level.Level {
	return c.levels.Get(number)
}

// NumberOfMoves returns the moves made in the current level.
func (c *Controller) NumberOfMoves() int { return c.numberOfMoves }

// SetNumberOfMoves sets the move counter.
func (c *Controller) SetNumberOfMoves(n int) { c.numberOfMoves = n }

// IncrementNumberOfMoves adds one move.
func (c *Controller) IncrementNumberOfMoves() { c.numberOfMoves++ }

// LevelComplete reports whether the current level has been solved.
func (c *Controller) LevelComplete() bool { return c.levelComplete }

// SetLevelComplete sets the level-complete flag.
func (c *Controller) SetLevelComplete(complete bool) { c.levelComplete = complete }

// GameComplete reports whether the last level has been solved.
func (c *Controller) GameComplete() bool {
	return c.levelComplete && c.currentLevelNumber >= c.levels.Len()
}

// HighscoreAvailable reports whether a highscore store is wired in.
func (c *Controller) HighscoreAvailable() bool { return c.store != nil }

// HighscoreReadOnly reports whether highscores cannot be written.
func (c *Controller) HighscoreReadOnly() bool {
	if c.store == nil {
		return true
	}
	return c.store.ReadOnly()
}

// CanSetPlayerName reports whether the player identity can be changed.
func (c *Controller) CanSetPlayerName() bool {
	return c.store != nil && !c.store.ReadOnly() && c.store.SupportsPlayerNameChange()
}

// PlayerName returns the current player's name, or "" when no store is
// available or none has been set.
func (c *Controller) PlayerName() string {
	if c.store == nil {
		return ""
	}
	name, err := c.store.PlayerName()
	if err != nil {
		c.notifier.Warn("could not read player name", "error", err)
		return ""
	}
	return name
}

// SetPlayerName stores the current player's name. Ignored without a
// store.
func (c *Controller) SetPlayerName(name string) error {
	if c.store == nil {
		return nil
	}
	return c.store.SetPlayerName(name)
}

// HighscoreForLevel returns the best record for the level, or nil.
func (c *Controller) HighscoreForLevel(number int) *highscore.Record {
	if c.store == nil {
		return nil
	}
	rec, err := c.store.ForLevel(number)
	if err != nil {
		c.notifier.Warn("could not read highscore", "level", number, "error", err)
		return nil
	}
	return rec
}

// HighscoreForCurrentLevel returns the best record for the current
// level, or nil.
func (c *Controller) HighscoreForCurrentLevel() *highscore.Record {
	return c.HighscoreForLevel(c.currentLevelNumber)
}

// SetHighscore stores the record. The store keeps only the minimum move
// count per (level, player) pair.
func (c *Controller) SetHighscore(rec highscore.Record) error {
	if c.store == nil {
		return nil
	}
	return c.store.Set(rec)
}

// TopHighscores returns up to limit stored records, best first.
func (c *Controller) TopHighscores(limit int) []highscore.Record {
	if c.store == nil {
		return nil
	}
	records, err := c.store.Top(limit)
	if err != nil {
		c.notifier.Warn("could not read highscores", "error", err)
		return nil
	}
	return records
}
