package tennis

// Event is a state transition published by a Match.
// The platform layer subscribes to drive feedback such as flashes or sounds.
type Event interface {
	matchEvent()
}

// Listener receives events synchronously, in the order they happen.
type Listener func(Event)

// PointScored is sent after a point is added to a side.
type PointScored struct {
	Side Side
}

func (PointScored) matchEvent() {}

// PointRejected is sent when a point arrives after the set has finished.
type PointRejected struct {
	Side Side
}

func (PointRejected) matchEvent() {}

// GameWon is sent when a side wins a game (including the tiebreak game).
type GameWon struct {
	Side     Side
	Games    [2]int
	Tiebreak bool
}

func (GameWon) matchEvent() {}

// TiebreakStarted is sent when games reach six-all with the tiebreak enabled.
type TiebreakStarted struct{}

func (TiebreakStarted) matchEvent() {}

// SetWon is sent once when the set-ending condition fires.
type SetWon struct {
	Side  Side
	Team  Team
	Games [2]int
}

func (SetWon) matchEvent() {}

// Undone is sent after a snapshot has been restored.
type Undone struct {
	Restored Snapshot
}

func (Undone) matchEvent() {}

// GameReset is sent after the current game's points are cleared.
type GameReset struct{}

func (GameReset) matchEvent() {}

// MatchReset is sent after the whole match is wiped.
type MatchReset struct{}

func (MatchReset) matchEvent() {}

// RulesChanged is sent when the rules or game type are changed during setup.
type RulesChanged struct {
	Rules    RuleConfig
	GameType GameType
}

func (RulesChanged) matchEvent() {}
