package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

const nameCharLimit = 16

// Setup rows in display order.
const (
	rowGameType = iota
	rowAdvantage
	rowTiebreak
	rowLeftName
	rowRightName
	rowStart
	rowCount
)

// SetupResult holds the choices made on the setup screen.
type SetupResult struct {
	GameType  tennis.GameType
	Rules     tennis.RuleConfig
	LeftName  string
	RightName string
}

// SetupModel is the Bubble Tea model for choosing the match format.
type SetupModel struct {
	gameType tennis.GameType
	rules    tennis.RuleConfig
	defaults [2]string // Used when a name input is left empty
	names    [2]textinput.Model
	cursor   int
	keys     SetupKeyMap
	help     help.Model
	width    int
	height   int

	quitting    bool
	started     bool
	wantResults bool
}

// NewSetupModel creates a setup screen prefilled from cfg.
func NewSetupModel(cfg tennis.Config, width, height int) SetupModel {
	m := SetupModel{
		gameType: cfg.GameType,
		rules:    cfg.Rules,
		defaults: [2]string{cfg.LeftName, cfg.RightName},
		keys:     DefaultSetupKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	if !m.gameType.Valid() {
		m.gameType = tennis.Singles
	}

	for i, name := range m.defaults {
		ti := textinput.New()
		ti.CharLimit = nameCharLimit
		ti.Width = nameCharLimit
		ti.Placeholder = name
		ti.Prompt = ""
		ti.SetValue(name)
		m.names[i] = ti
	}
	m.help.Width = width
	return m
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKey processes navigation and toggles. Keys on a name row that are not
// navigation go to the text input.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Results):
		m.wantResults = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.Start):
		if m.cursor == rowLeftName || m.cursor == rowRightName {
			return m.moveCursor(1)
		}
		m.started = true
		return m, nil
	}

	if m.editingName() {
		return m.updateInputs(msg)
	}

	if key.Matches(msg, m.keys.Toggle) {
		m.toggle()
		return m, nil
	}
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) moveCursor(delta int) (tea.Model, tea.Cmd) {
	m.cursor = (m.cursor + delta + rowCount) % rowCount
	// Advantage is fixed for doubles.
	if m.cursor == rowAdvantage && m.gameType == tennis.Doubles {
		m.cursor = (m.cursor + delta + rowCount) % rowCount
	}

	var cmd tea.Cmd
	for i := range m.names {
		if m.cursor == rowLeftName+i {
			cmd = m.names[i].Focus()
		} else {
			m.names[i].Blur()
		}
	}
	return m, cmd
}

func (m *SetupModel) toggle() {
	switch m.cursor {
	case rowGameType:
		if m.gameType == tennis.Singles {
			m.gameType = tennis.Doubles
		} else {
			m.gameType = tennis.Singles
		}
	case rowAdvantage:
		if m.gameType != tennis.Doubles {
			m.rules.Advantage = !m.rules.Advantage
		}
	case rowTiebreak:
		m.rules.TiebreakAtSixAll = !m.rules.TiebreakAtSixAll
	}
}

func (m SetupModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.names))
	for i := range m.names {
		m.names[i], cmds[i] = m.names[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m SetupModel) editingName() bool {
	return m.cursor == rowLeftName || m.cursor == rowRightName
}

// nameLabels returns the input labels for the current format.
func (m SetupModel) nameLabels() [2]string {
	if m.gameType == tennis.Doubles {
		return [2]string{"Team A", "Team B"}
	}
	return [2]string{"Your name", "Opponent name"}
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E N N I S   S C O R E"), m.width))
	b.WriteString("\n\n")

	advantage := onOff(m.rules.Advantage)
	if m.gameType == tennis.Doubles {
		advantage = mutedStyle.Render("No-Ad (doubles)")
	}
	labels := m.nameLabels()

	rows := [rowCount][2]string{
		rowGameType:  {"Game type", m.gameType.Title()},
		rowAdvantage: {"Advantage", advantage},
		rowTiebreak:  {"Tiebreak at 6-6", onOff(m.rules.TiebreakAtSixAll)},
		rowLeftName:  {labels[0], m.names[0].View()},
		rowRightName: {labels[1], m.names[1].View()},
		rowStart:     {"", "[ Start ]"},
	}

	var lines []string
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render(">") + " "
		}
		lines = append(lines, cursor+padRight(row[0], 16)+row[1])
	}
	block := strings.Join(lines, "\n")
	b.WriteString(centerText(block, m.width))
	b.WriteString("\n\n")

	if m.gameType == tennis.Doubles {
		b.WriteString(centerText(mutedStyle.Render("Doubles uses No-Ad at deuce"), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Result returns the chosen format. Empty names fall back to the defaults.
func (m SetupModel) Result() SetupResult {
	r := SetupResult{
		GameType: m.gameType,
		Rules:    m.rules,
	}
	names := [2]string{}
	for i := range m.names {
		names[i] = strings.TrimSpace(m.names[i].Value())
		if names[i] == "" {
			names[i] = m.defaults[i]
		}
	}
	r.LeftName, r.RightName = names[0], names[1]
	return r
}

// Started returns true if the user pressed start.
func (m SetupModel) Started() bool {
	return m.started
}

// WantsResults returns true if the user asked for the results screen.
func (m SetupModel) WantsResults() bool {
	return m.wantResults
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
