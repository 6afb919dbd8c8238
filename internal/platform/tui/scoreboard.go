package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hellno/tiny-slither/internal/storage"
)

const maxScoreboardRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard view.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns the bindings for the one-line help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	scoreboardFrameStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	scoreboardStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// scoreboardModel shows the high-score table for one game.
type scoreboardModel struct {
	title string
	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap
	stats *storage.GameStats
}

// NewScoreboard builds the scoreboard model from stored scores.
func NewScoreboard(store *storage.Store, gameID, title string) (tea.Model, error) {
	entries, err := store.TopScores(gameID, maxScoreboardRows)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: %w", err)
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 15)),
	)

	return scoreboardModel{
		title: title,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		stats: stats,
	}, nil
}

func (m scoreboardModel) Init() tea.Cmd {
	return nil
}

func (m scoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m scoreboardModel) View() string {
	header := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores — %s", m.title))
	stats := scoreboardStatStyle.Render(fmt.Sprintf(
		"games: %d  best: %d  avg: %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
	))

	body := m.table.View()
	if m.stats.GamesCount == 0 {
		body = scoreboardStatStyle.Render("No scores recorded yet. Play a round to set the first one!")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		stats,
		scoreboardFrameStyle.Render(body),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive scoreboard and blocks until it is
// dismissed.
func RunScoreboard(store *storage.Store, gameID, title string) error {
	model, err := NewScoreboard(store, gameID, title)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
