package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tennis/internal/storage"
	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

// eventFeed buffers engine events until the model processes them.
// The match calls push synchronously from inside a command.
type eventFeed struct {
	pending []tennis.Event
}

func (f *eventFeed) push(e tennis.Event) {
	f.pending = append(f.pending, e)
}

func (f *eventFeed) drain() []tennis.Event {
	events := f.pending
	f.pending = nil
	return events
}

// ScoreModel is the Bubble Tea model for the live scoreboard.
type ScoreModel struct {
	match   *tennis.Match
	matchID uuid.UUID // Record key for the set being played
	saved   bool      // A row exists for matchID
	feed    *eventFeed
	store   *storage.Store
	logger  *log.Logger
	keys    ScoreKeyMap
	help    help.Model
	width   int
	height  int

	flash    string
	flashSeq int

	quitting    bool
	backToSetup bool
}

// NewScoreModel creates a scoreboard for match and subscribes to its events.
// store and logger may be nil.
func NewScoreModel(match *tennis.Match, store *storage.Store, logger *log.Logger, width, height int) ScoreModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	feed := &eventFeed{}
	match.Subscribe(feed.push)

	h := help.New()
	h.Width = width

	return ScoreModel{
		match:   match,
		matchID: uuid.New(),
		feed:    feed,
		store:   store,
		logger:  logger,
		keys:    DefaultScoreKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
}

// Start resets the match and applies the choices made on the setup screen.
func (m ScoreModel) Start(choice SetupResult) (ScoreModel, error) {
	m.match.ResetMatch()

	if err := m.match.SetGameType(choice.GameType); err != nil {
		return m, fmt.Errorf("tui: cannot set game type: %w", err)
	}
	if err := m.match.ConfigureRules(choice.Rules); err != nil {
		return m, fmt.Errorf("tui: cannot configure rules: %w", err)
	}
	if err := m.match.RenameTeam(tennis.Left, choice.LeftName); err != nil {
		return m, fmt.Errorf("tui: cannot rename team: %w", err)
	}
	if err := m.match.RenameTeam(tennis.Right, choice.RightName); err != nil {
		return m, fmt.Errorf("tui: cannot rename team: %w", err)
	}

	m.feed.drain()
	m.matchID = uuid.New()
	m.saved = false
	m.flash = ""
	m.backToSetup = false
	m.quitting = false

	m.logger.Info("match started",
		"match", m.matchID,
		"type", choice.GameType,
		"advantage", !m.match.NoAdActive(),
		"tiebreak", choice.Rules.TiebreakAtSixAll,
		"left", choice.LeftName,
		"right", choice.RightName,
	)
	return m, nil
}

// Init initializes the score model.
func (m ScoreModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FlashExpiredMsg:
		if msg.Seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey maps keys to engine commands.
func (m ScoreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToSetup = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.PointLeft):
		m.match.Point(tennis.Left)

	case key.Matches(msg, m.keys.PointRight):
		m.match.Point(tennis.Right)

	case key.Matches(msg, m.keys.Undo):
		if !m.match.Undo() {
			return m, m.setFlash("Nothing to undo")
		}

	case key.Matches(msg, m.keys.ResetGame):
		m.match.ResetCurrentGame()

	case key.Matches(msg, m.keys.ResetMatch):
		m.match.ResetMatch()

	default:
		return m, nil
	}

	return m, m.processEvents()
}

// processEvents reacts to everything the last command emitted.
// Later events overwrite the flash of earlier ones, so a set point
// shows the set result rather than the game.
func (m *ScoreModel) processEvents() tea.Cmd {
	var flash string

	for _, ev := range m.feed.drain() {
		switch e := ev.(type) {
		case tennis.PointScored:
			m.logger.Debug("point", "side", e.Side, "left", m.match.LeftLabel(), "right", m.match.RightLabel())

		case tennis.PointRejected:
			flash = "Set is over - undo or reset the match"

		case tennis.GameWon:
			name := m.match.Team(e.Side).Name
			if e.Tiebreak {
				flash = fmt.Sprintf("Tiebreak to %s", name)
			} else {
				flash = fmt.Sprintf("Game %s  %d-%d", name, e.Games[tennis.Left], e.Games[tennis.Right])
			}
			m.logger.Debug("game won", "side", e.Side, "games", e.Games, "tiebreak", e.Tiebreak)

		case tennis.TiebreakStarted:
			flash = "Tiebreak!"
			m.logger.Debug("tiebreak started")

		case tennis.SetWon:
			flash = fmt.Sprintf("Set %s  %d-%d", e.Team.Name, e.Games[tennis.Left], e.Games[tennis.Right])
			m.logger.Info("set finished", "match", m.matchID, "winner", e.Team.Name, "games", e.Games)
			m.saveResult()

		case tennis.Undone:
			flash = "Undo"
			// Undo may reopen a recorded set or land on another finished state.
			if m.match.SetFinished() {
				m.saveResult()
			} else {
				m.forgetResult()
			}

		case tennis.GameReset:
			flash = "Game reset"

		case tennis.MatchReset:
			flash = "New match"
			m.matchID = uuid.New()
			m.saved = false
			m.logger.Info("match reset", "match", m.matchID)

		case tennis.RulesChanged:
			m.logger.Debug("rules changed", "type", e.GameType, "rules", e.Rules)
		}
	}

	if flash == "" {
		return nil
	}
	return m.setFlash(flash)
}

func (m *ScoreModel) setFlash(text string) tea.Cmd {
	m.flash = text
	m.flashSeq++
	return flashCmd(m.flashSeq)
}

// saveResult records the finished set. Saving is best-effort; the
// scoreboard keeps working without a store.
func (m *ScoreModel) saveResult() {
	if m.store == nil {
		return
	}
	r, ok := storage.ResultFromMatch(m.matchID, m.match)
	if !ok {
		return
	}
	id, err := m.store.SaveSetResult(r)
	if err != nil {
		m.logger.Warn("could not save set", "error", err)
		return
	}
	m.saved = true
	m.logger.Debug("set saved", "id", id, "score", r.Score())
}

// forgetResult removes the record of a set that undo has reopened.
func (m *ScoreModel) forgetResult() {
	if m.store == nil || !m.saved {
		return
	}
	if err := m.store.DeleteSet(m.matchID); err != nil {
		m.logger.Warn("could not delete reopened set", "match", m.matchID, "error", err)
		return
	}
	m.saved = false
	m.logger.Debug("set record removed", "match", m.matchID)
}

// View renders the scoreboard.
func (m ScoreModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.rulesLine()), m.width))
	b.WriteString("\n\n")

	if m.match.InTiebreak() {
		b.WriteString(centerText(tiebreakStyle.Render("TIEBREAK"), m.width))
		b.WriteString("\n\n")
	}

	cards := make([]string, 0, 3)
	for i, side := range tennis.Sides {
		if i > 0 {
			cards = append(cards, "   ")
		}
		cards = append(cards, scoreCard(
			m.match.Team(side).Name,
			m.match.Games(side),
			m.match.Label(side),
			m.match.CurrentlyWinning(side),
			m.match.IsCurrentWinner(side),
		))
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Center, cards...), m.width))
	b.WriteString("\n\n")

	if w, ok := m.match.Winner(); ok {
		banner := fmt.Sprintf("%s WINS THE SET  %d-%d",
			strings.ToUpper(w.Name), m.match.Games(tennis.Left), m.match.Games(tennis.Right))
		b.WriteString(centerText(bannerStyle.Render(banner), m.width))
	}
	b.WriteString("\n")

	b.WriteString(centerText(flashStyle.Render(m.flash), m.width))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// rulesLine describes the active format, e.g. "SINGLES · Advantage · Tiebreak at 6-6".
func (m ScoreModel) rulesLine() string {
	deuce := "Advantage"
	if m.match.NoAdActive() {
		deuce = "No-Ad"
	}
	tiebreak := "No tiebreak"
	if m.match.Rules().TiebreakAtSixAll {
		tiebreak = "Tiebreak at 6-6"
	}
	return strings.ToUpper(m.match.GameType().Title()) + " · " + deuce + " · " + tiebreak
}

// Match returns the match being scored.
func (m ScoreModel) Match() *tennis.Match {
	return m.match
}

// MatchID returns the record key of the current set.
func (m ScoreModel) MatchID() uuid.UUID {
	return m.matchID
}

// Flash returns the current event message, if any.
func (m ScoreModel) Flash() string {
	return m.flash
}

// BackToSetup returns true if the user asked to return to the setup screen.
func (m ScoreModel) BackToSetup() bool {
	return m.backToSetup
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreModel) IsQuitting() bool {
	return m.quitting
}
