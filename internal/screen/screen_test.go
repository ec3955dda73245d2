package screen

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/makery/sokoban/internal/board"
	"github.com/makery/sokoban/internal/highscore"
	"github.com/makery/sokoban/internal/level"
)

// Two one-push levels: "right" solves each.
const testLevels = "Level:\n#####\n#@$.#\n#####\n\nLevel:\n######\n# @$.#\n######\n"

type fakeWorld struct {
	live       *board.Live
	background string
	cleared    int
}

func (w *fakeWorld) PlaceLevel(lvl *level.Level) { w.live = board.NewLive(lvl) }

func (w *fakeWorld) RemoveAllActors() {
	w.live = nil
	w.cleared++
}

func (w *fakeWorld) SetBackground(name string) { w.background = name }

func (w *fakeWorld) Snapshot() (board.Snapshot, bool) {
	if w.live == nil {
		return board.Snapshot{}, false
	}
	return w.live.Snapshot(), true
}

func (w *fakeWorld) MovePlayer(d board.Direction) bool {
	if w.live == nil {
		return false
	}
	return w.live.Move(d)
}

type scriptedInput struct {
	keys []string
}

func (in *scriptedInput) push(keys ...string) { in.keys = append(in.keys, keys...) }

func (in *scriptedInput) LastKey() string {
	if len(in.keys) == 0 {
		return ""
	}
	key := in.keys[0]
	in.keys = in.keys[1:]
	return key
}

type recordingNotifier struct {
	warnings []string
}

func (n *recordingNotifier) Warn(msg any, keyvals ...any) {
	n.warnings = append(n.warnings, fmt.Sprint(msg))
}

func newTestController(t *testing.T, src string, opts Options) (*Controller, *fakeWorld, *scriptedInput, *recordingNotifier) {
	t.Helper()
	world := &fakeWorld{}
	input := &scriptedInput{}
	notifier := &recordingNotifier{}
	c := New(world, input, notifier, opts)
	if src != "" {
		if err := c.LoadLevelSource([]byte(src)); err != nil {
			t.Fatalf("LoadLevelSource() failed: %v", err)
		}
	}
	return c, world, input, notifier
}

func openTestStore(t *testing.T) *highscore.SQLiteStore {
	t.Helper()
	store, err := highscore.Open(filepath.Join(t.TempDir(), "scores.db"), false)
	if err != nil {
		t.Fatalf("highscore.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFullRunReachesGameComplete(t *testing.T) {
	store := openTestStore(t)
	c, _, input, _ := newTestController(t, testLevels, Options{Store: store})

	c.Start()
	if c.ActiveState() != State(c.StartState()) {
		t.Fatal("Initial state should be the start menu")
	}

	// Start -> EnterName (store available and writable).
	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.EnterNameState()) {
		t.Fatal("Confirm on start should lead to name entry")
	}

	// Type a name and submit.
	input.push("a", "b", "enter")
	c.Tick()
	c.Tick()
	c.Tick()
	if c.ActiveState() != State(c.LevelSplashState()) {
		t.Fatal("Submitted name should lead to the level splash")
	}
	if got := c.PlayerName(); got != "ab" {
		t.Fatalf("Player name = %q, want %q", got, "ab")
	}

	// Splash -> Game on any key.
	input.push("x")
	c.Tick()
	if c.ActiveState() != State(c.GameState()) {
		t.Fatal("Key press on splash should start the game")
	}
	if c.CurrentLevelNumber() != 1 {
		t.Fatalf("Should be playing level 1, got %d", c.CurrentLevelNumber())
	}

	// One push solves level 1.
	input.push("right")
	c.Tick()
	if c.ActiveState() != State(c.LevelCompleteState()) {
		t.Fatal("Solving the level should lead to the level-complete screen")
	}
	if !c.LevelComplete() {
		t.Error("Level-complete flag should be set")
	}

	// Advance to level 2.
	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.LevelSplashState()) {
		t.Fatal("More levels remain, confirm should lead to the next splash")
	}
	if c.CurrentLevelNumber() != 2 {
		t.Fatalf("Should have advanced to level 2, got %d", c.CurrentLevelNumber())
	}

	input.push("x")
	c.Tick()
	input.push("right")
	c.Tick()
	if c.ActiveState() != State(c.LevelCompleteState()) {
		t.Fatal("Solving level 2 should lead to the level-complete screen")
	}

	// Last level: confirm leads to game complete, then highscore, then start.
	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.GameCompleteState()) {
		t.Fatal("No levels remain, confirm should lead to game complete")
	}

	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.HighscoreState()) {
		t.Fatal("Confirm on game complete should show the highscore table")
	}

	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.StartState()) {
		t.Fatal("Confirm on highscore should return to the start menu")
	}

	// Both levels were recorded with one move each.
	for _, lvlNum := range []int{1, 2} {
		rec, err := store.ForLevel(lvlNum)
		if err != nil || rec == nil {
			t.Fatalf("Expected a record for level %d, got %v, %v", lvlNum, rec, err)
		}
		if rec.Moves != 1 || rec.Player != "ab" {
			t.Errorf("Level %d record = %+v, want 1 move by %q", lvlNum, rec, "ab")
		}
	}
}

func TestStartWithoutHighscoreSkipsNameEntry(t *testing.T) {
	c, _, input, _ := newTestController(t, testLevels, Options{})

	c.Start()
	input.push("enter")
	c.Tick()

	if c.ActiveState() != State(c.LevelSplashState()) {
		t.Error("Without a store, confirm on start should skip name entry")
	}
}

func TestFastStartEntersGameDirectly(t *testing.T) {
	c, world, _, _ := newTestController(t, testLevels, Options{FastStart: true})

	c.Start()
	if c.ActiveState() != State(c.GameState()) {
		t.Fatal("Fast start should enter the game state directly")
	}
	if c.CurrentLevelNumber() != 1 {
		t.Errorf("Fast start should play level 1, got %d", c.CurrentLevelNumber())
	}
	if world.live == nil {
		t.Error("Game entry should place the level's actors")
	}
}

func TestEscapeReturnsToStart(t *testing.T) {
	c, _, input, _ := newTestController(t, testLevels, Options{FastStart: true})

	c.Start()
	input.push("escape")
	c.Tick()

	if c.ActiveState() != State(c.StartState()) {
		t.Error("Escape during play should return to the start menu")
	}
}

func TestMoveCounterResetsOnGameEntry(t *testing.T) {
	c, _, input, _ := newTestController(t, testLevels, Options{FastStart: true})

	c.Start()
	input.push("up") // blocked by wall, no move
	c.Tick()
	if c.NumberOfMoves() != 0 {
		t.Errorf("Blocked move should not count, got %d", c.NumberOfMoves())
	}

	input.push("right")
	c.Tick()
	// Level solved; re-entering the game resets the counter.
	c.SetState(c.GameState(), true)
	if c.NumberOfMoves() != 0 {
		t.Errorf("Move counter should reset on game entry, got %d", c.NumberOfMoves())
	}
}

func TestSplashAutoAdvance(t *testing.T) {
	c, _, _, _ := newTestController(t, testLevels, Options{})
	c.LevelSplashState().AutoAdvanceTicks = 3

	c.SetState(c.LevelSplashState(), true)
	c.Tick()
	c.Tick()
	if c.ActiveState() != State(c.LevelSplashState()) {
		t.Fatal("Splash should still be up before the countdown ends")
	}
	c.Tick()
	if c.ActiveState() != State(c.GameState()) {
		t.Error("Splash should auto-advance into the game")
	}
}

func TestTransitionClearsWorld(t *testing.T) {
	c, world, input, _ := newTestController(t, testLevels, Options{FastStart: true})

	c.Start()
	if world.live == nil {
		t.Fatal("Level should be placed")
	}

	cleared := world.cleared
	input.push("escape")
	c.Tick()
	if world.cleared != cleared+1 {
		t.Error("Transition should clear the world before entering the new state")
	}
}

func TestEmptyLevelSource(t *testing.T) {
	c, _, _, notifier := newTestController(t, "", Options{})

	err := c.LoadLevelSource([]byte("no markers here\n"))
	if !errors.Is(err, ErrNoLevels) {
		t.Fatalf("Expected ErrNoLevels, got %v", err)
	}
	if len(notifier.warnings) == 0 {
		t.Error("Load failure should be reported through the notifier")
	}

	if c.NumberOfLevels() != 0 {
		t.Errorf("NumberOfLevels() = %d, want 0", c.NumberOfLevels())
	}
	if c.CurrentLevel() != nil {
		t.Error("CurrentLevel() should be nil without levels")
	}

	// The machine keeps running: the game state falls back to start.
	c.Start()
	c.Tick()
	c.SetState(c.GameState(), true)
	c.Tick()
	if c.ActiveState() != State(c.StartState()) {
		t.Error("Game state without a level should return to start")
	}
}

func TestLoadLevelsMissingFile(t *testing.T) {
	c, _, _, notifier := newTestController(t, "", Options{})

	err := c.LoadLevels(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrLevelsNotFound) {
		t.Fatalf("Expected ErrLevelsNotFound, got %v", err)
	}
	if len(notifier.warnings) == 0 {
		t.Error("Missing file should be reported through the notifier")
	}
	if c.NumberOfLevels() != 0 {
		t.Errorf("NumberOfLevels() = %d, want 0", c.NumberOfLevels())
	}
}

func TestSetCurrentLevelNumberClamps(t *testing.T) {
	c, _, _, _ := newTestController(t, testLevels, Options{})

	c.SetCurrentLevelNumber(0)
	if c.CurrentLevelNumber() != 1 {
		t.Errorf("Clamp low: got %d, want 1", c.CurrentLevelNumber())
	}

	c.SetCurrentLevelNumber(99)
	if c.CurrentLevelNumber() != 2 {
		t.Errorf("Clamp high: got %d, want 2", c.CurrentLevelNumber())
	}

	empty, _, _, _ := newTestController(t, "", Options{})
	empty.SetCurrentLevelNumber(5)
	if empty.CurrentLevelNumber() != 1 {
		t.Errorf("Clamp with no levels: got %d, want 1", empty.CurrentLevelNumber())
	}
}

func TestGameCompleteWithoutStoreReturnsToStart(t *testing.T) {
	c, _, input, _ := newTestController(t, testLevels, Options{})

	c.SetState(c.GameCompleteState(), true)
	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.StartState()) {
		t.Error("Game complete without a store should return to start")
	}
}

func TestReadOnlyStoreSkipsNameEntryAndRecording(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	rw, err := highscore.Open(dbPath, false)
	if err != nil {
		t.Fatalf("highscore.Open() failed: %v", err)
	}
	rw.Set(highscore.Record{Level: 1, Player: "ada", Moves: 40})
	rw.Close()

	ro, err := highscore.Open(dbPath, true)
	if err != nil {
		t.Fatalf("highscore.Open() read-only failed: %v", err)
	}
	defer ro.Close()

	c, _, input, notifier := newTestController(t, testLevels, Options{Store: ro})

	c.Start()
	input.push("enter")
	c.Tick()
	if c.ActiveState() != State(c.LevelSplashState()) {
		t.Fatal("Read-only store cannot take a name, should skip name entry")
	}

	input.push("x", "right")
	c.Tick()
	c.Tick()
	if c.ActiveState() != State(c.LevelCompleteState()) {
		t.Fatal("Level should complete")
	}

	// The stored record is untouched and no write error was raised.
	rec, _ := ro.ForLevel(1)
	if rec == nil || rec.Moves != 40 {
		t.Errorf("Read-only record should be untouched, got %+v", rec)
	}
	for _, w := range notifier.warnings {
		t.Errorf("Unexpected warning: %s", w)
	}
}
