package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/makery/sokoban/internal/board"
	"github.com/makery/sokoban/internal/highscore"
	"github.com/makery/sokoban/internal/level"
)

// Cell and chrome styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	wallStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	targetStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	boxStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	boxOnTargetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	playerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// renderBoard draws the live board, actors overlaid on the level grid.
func renderBoard(b *board.Live) string {
	lvl := b.Level()
	player := b.Player()

	var sb strings.Builder
	for y := 0; y < lvl.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < lvl.Width(); x++ {
			c := level.Coord{X: x, Y: y}
			target := lvl.At(x, y).Target()
			switch {
			case b.BoxAt(c) && target:
				sb.WriteString(boxOnTargetStyle.Render("*"))
			case b.BoxAt(c):
				sb.WriteString(boxStyle.Render("$"))
			case c == player:
				sb.WriteString(playerStyle.Render("@"))
			case lvl.Wall(x, y):
				sb.WriteString(wallStyle.Render("#"))
			case target:
				sb.WriteString(targetStyle.Render("."))
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// renderHighscoreTable formats the records with a bubbles table.
func renderHighscoreTable(records []highscore.Record) string {
	if len(records) == 0 {
		return dimStyle.Render("No highscores recorded yet.")
	}

	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Moves", Width: 6},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		date := ""
		if !rec.CreatedAt.IsZero() {
			date = rec.CreatedAt.Format("2006-01-02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", rec.Level),
			rec.Player,
			fmt.Sprintf("%d", rec.Moves),
			date,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("11"))
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
