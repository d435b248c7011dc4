package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/storage"
	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

// Options configures a scoreboard session.
type Options struct {
	Config config.TennisConfig
	Store  *storage.Store // May be nil; results are then not recorded
	Logger *log.Logger    // May be nil
	Width  int
	Height int
}

type screen int

const (
	screenSetup screen = iota
	screenScore
	screenResults
)

// SessionModel manages the full session flow: setup -> score -> setup,
// with the results screen reachable from setup.
// One match lives for the whole session; starting from setup resets it.
type SessionModel struct {
	store   *storage.Store
	logger  *log.Logger
	screen  screen
	setup   SetupModel
	score   ScoreModel
	results ResultsModel
	width   int
	height  int

	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mc := opts.Config.MatchConfig()
	match := tennis.New(mc)

	return SessionModel{
		store:  opts.Store,
		logger: logger,
		setup:  NewSetupModel(mc, opts.Width, opts.Height),
		score:  NewScoreModel(match, opts.Store, logger, opts.Width, opts.Height),
		width:  opts.Width,
		height: opts.Height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case FlashExpiredMsg:
		// Flashes belong to the score screen even if the user left it.
		newScore, cmd := m.score.Update(msg)
		m.score = newScore.(ScoreModel)
		return m, cmd
	}

	switch m.screen {
	case screenScore:
		return m.updateScore(msg)
	case screenResults:
		return m.updateResults(msg)
	default:
		return m.updateSetup(msg)
	}
}

// updateSetup handles updates when on the setup screen.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setupModel, ok := newSetup.(SetupModel); ok {
		m.setup = setupModel
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.WantsResults() {
		m.setup.wantResults = false
		m.results = NewResultsModel(m.store, m.setup.Result().LeftName, m.width, m.height)
		m.screen = screenResults
		return m, m.results.Init()
	}

	if m.setup.Started() {
		m.setup.started = false
		score, err := m.score.Start(m.setup.Result())
		if err != nil {
			// Start resets the match first, so this only fires on a bug.
			m.logger.Error("could not start match", "error", err)
			return m, cmd
		}
		m.score = score
		m.score.width, m.score.height = m.width, m.height
		m.score.help.Width = m.width
		m.screen = screenScore
		return m, m.score.Init()
	}

	return m, cmd
}

// updateScore handles updates when on the score screen.
func (m SessionModel) updateScore(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScore, cmd := m.score.Update(msg)
	if scoreModel, ok := newScore.(ScoreModel); ok {
		m.score = scoreModel
	}

	if m.score.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.score.BackToSetup() {
		m.score.backToSetup = false
		m.setup.width, m.setup.height = m.width, m.height
		m.setup.help.Width = m.width
		m.screen = screenSetup
		return m, m.setup.Init()
	}

	return m, cmd
}

// updateResults handles updates when on the results screen.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newResults, cmd := m.results.Update(msg)
	if resultsModel, ok := newResults.(ResultsModel); ok {
		m.results = resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.results.IsGoingBack() {
		m.screen = screenSetup
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenScore:
		return m.score.View()
	case screenResults:
		return m.results.View()
	default:
		return m.setup.View()
	}
}

// Run starts a local scoreboard session on the terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
