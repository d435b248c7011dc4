package tennis

// Scoring thresholds.
const (
	gamesForSet       = 6
	tiebreakPoints    = 7
	minWinningMargin  = 2
	pointsForGame     = 4
	deucePointsNeeded = 3
)

// Config contains everything needed to create a Match.
type Config struct {
	GameType        GameType
	Rules           RuleConfig
	LeftName        string
	RightName       string
	HistoryCapacity int
}

// DefaultConfig returns a singles match with advantage scoring and no tiebreak.
func DefaultConfig() Config {
	return Config{
		GameType:        Singles,
		Rules:           DefaultRules(),
		LeftName:        "ME",
		RightName:       "OPP",
		HistoryCapacity: DefaultHistoryCapacity,
	}
}

// Match tracks the score of one set.
// It is not safe for concurrent use; callers serialize access.
type Match struct {
	gameType GameType
	rules    RuleConfig
	teams    [2]Team

	points      [2]int
	games       [2]int
	inTiebreak  bool
	setFinished bool
	winner      Side

	history   *History
	listeners []Listener
}

// New creates a match with all counters at zero and no history.
func New(cfg Config) *Match {
	if !cfg.GameType.Valid() {
		cfg.GameType = Singles
	}
	return &Match{
		gameType: cfg.GameType,
		rules:    cfg.Rules,
		teams:    [2]Team{NewTeam(cfg.LeftName), NewTeam(cfg.RightName)},
		history:  NewHistory(cfg.HistoryCapacity),
	}
}

// Subscribe registers a listener for state transitions.
func (m *Match) Subscribe(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

func (m *Match) emit(e Event) {
	for _, l := range m.listeners {
		l(e)
	}
}

// Started reports whether any scoring command has been applied since the
// last match reset.
func (m *Match) Started() bool {
	return m.history.Len() > 0 ||
		m.points != [2]int{} ||
		m.games != [2]int{}
}

// ConfigureRules replaces the scoring rules. Only allowed before the first point.
func (m *Match) ConfigureRules(rules RuleConfig) error {
	if m.Started() {
		return ErrMatchInProgress
	}
	m.rules = rules
	m.emit(RulesChanged{Rules: m.rules, GameType: m.gameType})
	return nil
}

// SetGameType switches between singles and doubles. Only allowed before the first point.
func (m *Match) SetGameType(t GameType) error {
	if m.Started() {
		return ErrMatchInProgress
	}
	if !t.Valid() {
		t = Singles
	}
	m.gameType = t
	m.emit(RulesChanged{Rules: m.rules, GameType: m.gameType})
	return nil
}

// RenameTeam changes a side's display name. The team identity is kept.
// Only allowed before the first point.
func (m *Match) RenameTeam(side Side, name string) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	if m.Started() {
		return ErrMatchInProgress
	}
	m.teams[side].Name = name
	return nil
}

// Point awards a point to side and resolves any finished game or set.
// Returns false without changing state if the set is already finished.
// An invalid side is ignored and emits nothing.
func (m *Match) Point(side Side) bool {
	if !side.Valid() {
		return false
	}
	if m.setFinished {
		m.emit(PointRejected{Side: side})
		return false
	}

	m.pushHistory()
	m.points[side]++
	m.emit(PointScored{Side: side})

	m.evaluateGame()
	return true
}

// Undo restores the most recent snapshot. Returns false if there is nothing to undo.
func (m *Match) Undo() bool {
	snap, ok := m.history.Pop()
	if !ok {
		return false
	}

	m.points = snap.Points
	m.games = snap.Games
	m.setFinished = false
	m.winner = Left
	m.inTiebreak = m.rules.TiebreakAtSixAll && m.sixAll()
	if side, done := m.setWinner(); done {
		m.inTiebreak = false
		m.setFinished = true
		m.winner = side
	}

	m.emit(Undone{Restored: snap})
	return true
}

// ResetCurrentGame zeroes both point counters. Games, tiebreak mode and the
// set outcome are untouched. The previous points can be restored with Undo.
func (m *Match) ResetCurrentGame() {
	m.pushHistory()
	m.points = [2]int{}
	m.emit(GameReset{})
}

// ResetMatch wipes all counters, the set outcome and the undo history.
func (m *Match) ResetMatch() {
	m.points = [2]int{}
	m.games = [2]int{}
	m.inTiebreak = false
	m.setFinished = false
	m.winner = Left
	m.history.Clear()
	m.emit(MatchReset{})
}

func (m *Match) pushHistory() {
	m.history.Push(Snapshot{
		Points: m.points,
		Games:  m.games,
	})
}

// evaluateGame applies the game-completion rules in priority order.
func (m *Match) evaluateGame() {
	if m.rules.TiebreakAtSixAll && !m.inTiebreak && m.sixAll() {
		m.enterTiebreak()
	}

	if m.inTiebreak {
		m.evaluateTiebreak()
		return
	}

	lead, margin := m.pointLead()
	l, r := m.points[Left], m.points[Right]

	if m.NoAdActive() {
		if l >= deucePointsNeeded && r >= deucePointsNeeded && margin > 0 {
			m.winGame(lead)
			return
		}
	}

	if (l >= pointsForGame || r >= pointsForGame) && margin >= minWinningMargin {
		m.winGame(lead)
	}
}

// evaluateTiebreak ends the tiebreak, and with it the set, once a side has
// at least seven points and a two-point margin.
func (m *Match) evaluateTiebreak() {
	lead, margin := m.pointLead()
	if m.points[lead] < tiebreakPoints || margin < minWinningMargin {
		return
	}

	m.games[lead]++
	m.points = [2]int{}
	m.inTiebreak = false
	m.emit(GameWon{Side: lead, Games: m.games, Tiebreak: true})
	m.finishSet(lead)
}

func (m *Match) winGame(side Side) {
	m.games[side]++
	m.points = [2]int{}
	m.emit(GameWon{Side: side, Games: m.games})

	if winner, done := m.setWinner(); done {
		m.finishSet(winner)
		return
	}
	if m.rules.TiebreakAtSixAll && m.sixAll() {
		m.enterTiebreak()
	}
}

func (m *Match) enterTiebreak() {
	m.inTiebreak = true
	m.emit(TiebreakStarted{})
}

func (m *Match) finishSet(side Side) {
	m.setFinished = true
	m.winner = side
	m.emit(SetWon{Side: side, Team: m.teams[side], Games: m.games})
}

// setWinner evaluates set completion against the current games.
// With the tiebreak enabled the set ends at six games with a two-game margin
// or at seven games with any lead (7-5, or 7-6 from a tiebreak).
// Without it there is no ceiling: six or more games and a two-game margin.
//
// Accepting 7-6 with any lead deliberately departs from the plain
// "seven games and a two-game margin" rule. The two only disagree at 7-6
// outside a tiebreak, which is reachable solely by resetting the game after
// a won tiebreak and then undoing; the set must read as finished again there.
func (m *Match) setWinner() (Side, bool) {
	lead := Left
	if m.games[Right] > m.games[Left] {
		lead = Right
	}
	most := m.games[lead]
	diff := most - m.games[lead.Opponent()]

	if m.rules.TiebreakAtSixAll {
		if (most == gamesForSet && diff >= minWinningMargin) || (most > gamesForSet && diff > 0) {
			return lead, true
		}
		return lead, false
	}

	if most >= gamesForSet && diff >= minWinningMargin {
		return lead, true
	}
	return lead, false
}

// pointLead returns the side ahead on points and the size of the lead.
// Ties report Left with a zero margin.
func (m *Match) pointLead() (Side, int) {
	diff := m.points[Left] - m.points[Right]
	if diff < 0 {
		return Right, -diff
	}
	return Left, diff
}

func (m *Match) sixAll() bool {
	return m.games[Left] == gamesForSet && m.games[Right] == gamesForSet
}
