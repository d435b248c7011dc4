package tennis

import (
	"fmt"
	"strconv"
)

// Point labels.
const (
	LabelLove      = "Love"
	LabelDeuce     = "Deuce"
	LabelAdvantage = "AD"
	LabelBehind    = "-"
)

var pointNames = [...]string{LabelLove, "15", "30", "40"}

// Label returns the display label for side's points in the current game.
// An invalid side has no label.
func (m *Match) Label(side Side) string {
	if !side.Valid() {
		return ""
	}
	p := m.points[side]
	o := m.points[side.Opponent()]

	if m.inTiebreak {
		return strconv.Itoa(p)
	}

	if p >= deucePointsNeeded && o >= deucePointsNeeded {
		switch {
		case p == o:
			return LabelDeuce
		case p == o+1:
			return LabelAdvantage
		case o == p+1:
			return LabelBehind
		}
	}

	if p < len(pointNames) {
		return pointNames[p]
	}
	// Only seen if a state slips past game evaluation.
	return fmt.Sprintf("+%d", p-deucePointsNeeded)
}

// LeftLabel returns Label(Left).
func (m *Match) LeftLabel() string {
	return m.Label(Left)
}

// RightLabel returns Label(Right).
func (m *Match) RightLabel() string {
	return m.Label(Right)
}

// Points returns side's points in the current game or tiebreak.
func (m *Match) Points(side Side) int {
	if !side.Valid() {
		return 0
	}
	return m.points[side]
}

// Games returns the games side has won in the set.
func (m *Match) Games(side Side) int {
	if !side.Valid() {
		return 0
	}
	return m.games[side]
}

// CurrentlyWinning reports whether side leads on games, or on points when
// games are level. An exact tie on both is false for both sides.
func (m *Match) CurrentlyWinning(side Side) bool {
	if !side.Valid() {
		return false
	}
	other := side.Opponent()
	if m.games[side] != m.games[other] {
		return m.games[side] > m.games[other]
	}
	return m.points[side] > m.points[other]
}

// IsCurrentWinner reports whether the set is over and side's team won it.
func (m *Match) IsCurrentWinner(side Side) bool {
	if !side.Valid() {
		return false
	}
	w, ok := m.Winner()
	return ok && w.ID == m.teams[side].ID
}

// Winner returns the team that won the set, if the set is finished.
func (m *Match) Winner() (Team, bool) {
	if !m.setFinished {
		return Team{}, false
	}
	return m.teams[m.winner], true
}

// SetFinished reports whether the set has been decided.
func (m *Match) SetFinished() bool {
	return m.setFinished
}

// InTiebreak reports whether a tiebreak game is in progress.
func (m *Match) InTiebreak() bool {
	return m.inTiebreak
}

// NoAdActive reports whether deuce is decided by a single point.
// Doubles always plays no-ad.
func (m *Match) NoAdActive() bool {
	return !m.rules.Advantage || m.gameType == Doubles
}

// CanUndo reports whether Undo would restore anything.
func (m *Match) CanUndo() bool {
	_, ok := m.history.Peek()
	return ok
}

// Team returns the team playing on side, or the zero Team for an invalid side.
func (m *Match) Team(side Side) Team {
	if !side.Valid() {
		return Team{}
	}
	return m.teams[side]
}

// GameType returns the configured game type.
func (m *Match) GameType() GameType {
	return m.gameType
}

// Rules returns the configured scoring rules.
func (m *Match) Rules() RuleConfig {
	return m.rules
}

// HistoryCap returns the maximum undo depth.
func (m *Match) HistoryCap() int {
	return m.history.Cap()
}

// State returns a copy of the current match state.
func (m *Match) State() State {
	return State{
		Points:      m.points,
		Games:       m.games,
		InTiebreak:  m.inTiebreak,
		SetFinished: m.setFinished,
		Winner:      m.winner,
		HistoryLen:  m.history.Len(),
	}
}
