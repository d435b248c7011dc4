package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tennis/internal/storage"
)

// Results layout constants
const (
	maxResults   = 100 // Max sets to load
	tableReserve = 10  // Rows kept for title, record line, help and margins
)

// ResultsModel is the Bubble Tea model for the finished-sets screen.
type ResultsModel struct {
	store    *storage.Store
	teamName string // Whose record is summarized above the table
	sets     []storage.SetResult
	record   *storage.TeamStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	width    int
	height   int

	quitting  bool
	goingBack bool
}

// NewResultsModel creates a results screen. store may be nil.
func NewResultsModel(store *storage.Store, teamName string, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		store:    store,
		teamName: teamName,
		keys:     DefaultResultsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Type", Width: 8},
		{Title: "Players", Width: 24},
		{Title: "Score", Width: 6},
		{Title: "Winner", Width: 12},
		{Title: "Rules", Width: 10},
	}

	// Give spare width to the players column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := m.width - 6 - used; extra > 0 {
		columns[2].Width += min(extra, 16)
	}

	height := m.height - tableReserve
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(colorAccent).
		Background(colorSelect).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads recent sets and the team record from the store.
func (m *ResultsModel) load() {
	m.sets, m.record, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	sets, err := m.store.RecentSets(maxResults)
	if err != nil {
		m.loadErr = err
	} else {
		m.sets = sets
	}

	if m.teamName != "" {
		if rec, err := m.store.TeamRecord(m.teamName); err == nil && rec.Played > 0 {
			m.record = &rec
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sets.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.sets))
	for i, s := range m.sets {
		rows[i] = table.Row{
			s.CreatedAt.Format("Jan 02 15:04"),
			s.GameType,
			s.LeftName + " v " + s.RightName,
			s.Score(),
			s.WinnerName,
			rulesShort(s),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// rulesShort abbreviates the rules a set was played under, e.g. "AD TB".
func rulesShort(s storage.SetResult) string {
	parts := []string{"NO-AD"}
	if s.Advantage {
		parts[0] = "AD"
	}
	if s.Tiebreak {
		parts = append(parts, "TB")
	}
	return strings.Join(parts, " ")
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("FINISHED SETS"), m.width))
	b.WriteString("\n\n")

	if m.record != nil {
		line := fmt.Sprintf("%s: %d played, %d won, %d lost  (games %d-%d)",
			m.record.Name, m.record.Played, m.record.Won, m.record.Lost(),
			m.record.GamesWon, m.record.GamesLost)
		b.WriteString(centerText(mutedStyle.Render(line), m.width))
		b.WriteString("\n\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Results are not being recorded.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	case len(m.sets) == 0:
		return emptyStyle.Render("No sets recorded yet.\nFinish a set to see it here!")
	}
	return m.table.View()
}

// Sets returns the loaded results.
func (m ResultsModel) Sets() []storage.SetResult {
	return m.sets
}

// IsGoingBack returns true if user wants to go back to setup.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
