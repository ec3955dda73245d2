package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/makery/sokoban/internal/level"
	"github.com/makery/sokoban/internal/screen"
)

const testLevelSource = level.Marker + `
#####
#@$.#
#####
`

func TestKeyToken(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space"},
		{tea.KeyMsg{Type: tea.KeyEscape}, "escape"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, "a"},
	}
	for _, tc := range cases {
		if got := keyToken(tc.msg); got != tc.want {
			t.Errorf("keyToken(%q) = %q, want %q", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeyBufferDeliversOnce(t *testing.T) {
	var b keyBuffer
	b.Push("up")
	b.Push("down") // replaces the undelivered key
	if got := b.LastKey(); got != "down" {
		t.Fatalf("LastKey() = %q, want %q", got, "down")
	}
	if got := b.LastKey(); got != "" {
		t.Fatalf("second LastKey() = %q, want empty", got)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		LevelSource: []byte(testLevelSource),
		TickRate:    60,
		Logger:      log.New(io.Discard),
	})
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(key)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelStartToSplash(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	if _, ok := m.Controller().ActiveState().(*screen.StartState); !ok {
		t.Fatalf("after Init, active state = %T, want *screen.StartState", m.Controller().ActiveState())
	}
	if view := m.View(); !strings.Contains(view, "SOKOBAN") {
		t.Errorf("start view missing title:\n%s", view)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	// No store, so name entry is skipped.
	if _, ok := m.Controller().ActiveState().(*screen.LevelSplashState); !ok {
		t.Fatalf("after confirm, active state = %T, want *screen.LevelSplashState", m.Controller().ActiveState())
	}
	if view := m.View(); !strings.Contains(view, "Level 1") {
		t.Errorf("splash view missing level number:\n%s", view)
	}
}

func TestModelRendersBoardDuringPlay(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	if _, ok := m.Controller().ActiveState().(*screen.GameState); !ok {
		t.Fatalf("active state = %T, want *screen.GameState", m.Controller().ActiveState())
	}
	view := m.View()
	if !strings.Contains(view, "Moves: 0") {
		t.Errorf("game view missing move counter:\n%s", view)
	}
}

func TestModelQuitsOnCtrlC(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not produce a quit command")
	}
	model := next.(Model)
	if view := model.View(); view != "" {
		t.Errorf("quitting view = %q, want empty", view)
	}
}

func TestGameWorldMoveWithoutLevel(t *testing.T) {
	var w gameWorld
	if w.MovePlayer(0) {
		t.Error("MovePlayer succeeded with no level placed")
	}
	if _, ok := w.Snapshot(); ok {
		t.Error("Snapshot reported ok with no level placed")
	}
}
