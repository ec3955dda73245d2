package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/makery/sokoban/internal/highscore"
	"github.com/makery/sokoban/internal/level"
	"github.com/makery/sokoban/internal/screen"
)

// Options configures a game session.
type Options struct {
	// LevelsPath points at a level file; empty uses LevelSource.
	LevelsPath string

	// LevelSource is parsed when LevelsPath is empty; nil uses the
	// embedded default level set.
	LevelSource []byte

	// Store is the highscore backend; nil disables highscores.
	Store highscore.Store

	// FastStart skips the menu flow and starts playing level 1.
	FastStart bool

	// TickRate is the simulation rate in ticks per second.
	TickRate int

	// SplashTicks overrides the level splash countdown.
	SplashTicks int

	// Logger receives controller warnings. nil creates a default one.
	Logger *log.Logger
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	ctrl     *screen.Controller
	world    *gameWorld
	keys     *keyBuffer
	keymap   GameKeyMap
	help     help.Model
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel builds the controller, its collaborators and the Bubble Tea
// model around them.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sokoban"})
	}

	world := &gameWorld{}
	keys := &keyBuffer{}
	ctrl := screen.New(world, keys, logger, screen.Options{
		Store:     opts.Store,
		FastStart: opts.FastStart,
	})
	if opts.SplashTicks > 0 {
		ctrl.LevelSplashState().AutoAdvanceTicks = opts.SplashTicks
	}

	// Load failures are warned through the logger; the menu still runs
	// with an empty collection.
	if opts.LevelsPath != "" {
		_ = ctrl.LoadLevels(opts.LevelsPath)
	} else {
		src := opts.LevelSource
		if src == nil {
			src = level.DefaultSource()
		}
		_ = ctrl.LoadLevelSource(src)
	}

	return Model{
		ctrl:     ctrl,
		world:    world,
		keys:     keys,
		keymap:   DefaultGameKeyMap(),
		help:     help.New(),
		tickRate: opts.TickRate,
	}
}

// Controller exposes the screen controller, mainly for tests.
func (m Model) Controller() *screen.Controller { return m.ctrl }

// Init starts the state machine and the tick loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.keys.Push(keyToken(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteByte('\n')

	switch s := m.ctrl.ActiveState().(type) {
	case *screen.StartState:
		sb.WriteString(titleStyle.Render("SOKOBAN"))
		sb.WriteString("\n\n")
		sb.WriteString("Push every box onto a target.\n\n")
		sb.WriteString(statusStyle.Render("Press Enter to start"))
		if m.ctrl.NumberOfLevels() == 0 {
			sb.WriteString("\n\n")
			sb.WriteString(dimStyle.Render("No levels loaded — check the level file."))
		}
		if !m.ctrl.HighscoreAvailable() {
			sb.WriteString("\n")
			sb.WriteString(dimStyle.Render("Highscores are unavailable."))
		}

	case *screen.EnterNameState:
		sb.WriteString(titleStyle.Render("Who is playing?"))
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("Name: %s█\n\n", s.Name()))
		sb.WriteString(dimStyle.Render("Type your name, Enter to continue"))

	case *screen.LevelSplashState:
		sb.WriteString(titleStyle.Render(fmt.Sprintf("Level %d", m.ctrl.CurrentLevelNumber())))
		sb.WriteString("\n\n")
		sb.WriteString(dimStyle.Render(fmt.Sprintf("of %d", m.ctrl.NumberOfLevels())))

	case *screen.GameState:
		header := fmt.Sprintf("Level %d/%d   Moves: %d",
			m.ctrl.CurrentLevelNumber(), m.ctrl.NumberOfLevels(), m.ctrl.NumberOfMoves())
		sb.WriteString(statusStyle.Render(header))
		sb.WriteString("\n\n")
		if b := m.world.Board(); b != nil {
			sb.WriteString(renderBoard(b))
		}

	case *screen.LevelCompleteState:
		sb.WriteString(titleStyle.Render(fmt.Sprintf("Level %d complete!", m.ctrl.CurrentLevelNumber())))
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("Moves: %d\n", m.ctrl.NumberOfMoves()))
		if best := s.Best(); best != nil {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("Best: %d (%s)\n", best.Moves, best.Player)))
		}
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render("Press Enter to continue"))

	case *screen.GameCompleteState:
		sb.WriteString(titleStyle.Render("Congratulations!"))
		sb.WriteString("\n\n")
		sb.WriteString("You solved every level.\n\n")
		sb.WriteString(statusStyle.Render("Press Enter to continue"))

	case *screen.HighscoreState:
		sb.WriteString(titleStyle.Render("Highscores"))
		sb.WriteString("\n\n")
		sb.WriteString(renderHighscoreTable(s.Records()))
		sb.WriteString("\n\n")
		sb.WriteString(statusStyle.Render("Press Enter to return"))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keymap))
	sb.WriteByte('\n')
	return sb.String()
}

// Run starts the terminal session and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program error: %w", err)
	}
	return nil
}
