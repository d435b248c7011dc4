package tennis

import (
	"errors"
	"testing"
)

// play applies a sequence of points written as 'L'/'R' runes.
func play(t *testing.T, m *Match, seq string) {
	t.Helper()
	for _, r := range seq {
		switch r {
		case 'L':
			m.Point(Left)
		case 'R':
			m.Point(Right)
		default:
			t.Fatalf("bad point %q in sequence %q", r, seq)
		}
	}
}

// winGames gives side n straight love games.
func winGames(m *Match, side Side, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < 4; j++ {
			m.Point(side)
		}
	}
}

func newMatch(gameType GameType, advantage, tiebreak bool) *Match {
	cfg := DefaultConfig()
	cfg.GameType = gameType
	cfg.Rules = RuleConfig{Advantage: advantage, TiebreakAtSixAll: tiebreak}
	return New(cfg)
}

func TestNewMatchStartsEmpty(t *testing.T) {
	m := New(DefaultConfig())

	st := m.State()
	if st.Points != [2]int{} || st.Games != [2]int{} {
		t.Errorf("State() = %+v, expected zero counters", st)
	}
	if st.InTiebreak || st.SetFinished {
		t.Errorf("State() = %+v, expected no tiebreak and unfinished set", st)
	}
	if m.CanUndo() {
		t.Error("CanUndo() = true on a new match")
	}
	if m.Team(Left).ID == m.Team(Right).ID {
		t.Error("teams should have distinct identities")
	}
	if m.Started() {
		t.Error("Started() = true on a new match")
	}
}

func TestAdvantageLabelProgression(t *testing.T) {
	m := newMatch(Singles, true, false)

	steps := []struct {
		side  Side
		left  string
		right string
	}{
		{Left, "15", "Love"},
		{Left, "30", "Love"},
		{Left, "40", "Love"},
		{Right, "40", "15"},
		{Right, "40", "30"},
		{Right, "Deuce", "Deuce"},
		{Left, "AD", "-"},
		{Right, "Deuce", "Deuce"},
		{Right, "-", "AD"},
		{Left, "Deuce", "Deuce"},
		{Left, "AD", "-"},
	}

	if got := m.LeftLabel() + "/" + m.RightLabel(); got != "Love/Love" {
		t.Fatalf("initial labels = %s, expected Love/Love", got)
	}

	for i, step := range steps {
		m.Point(step.side)
		if m.LeftLabel() != step.left || m.RightLabel() != step.right {
			t.Errorf("after point %d: labels = %s/%s, expected %s/%s",
				i+1, m.LeftLabel(), m.RightLabel(), step.left, step.right)
		}
		if m.Games(Left) != 0 || m.Games(Right) != 0 {
			t.Fatalf("after point %d: game ended early at %d-%d", i+1, m.Games(Left), m.Games(Right))
		}
	}

	m.Point(Left)
	if m.Games(Left) != 1 || m.Games(Right) != 0 {
		t.Errorf("games = %d-%d, expected 1-0", m.Games(Left), m.Games(Right))
	}
	if m.Points(Left) != 0 || m.Points(Right) != 0 {
		t.Errorf("points = %d-%d, expected reset to 0-0", m.Points(Left), m.Points(Right))
	}
}

func TestAdvantageNeedsTwoPointMargin(t *testing.T) {
	tests := []struct {
		name      string
		seq       string
		leftGames int
		rightGame int
	}{
		{"love game", "LLLL", 1, 0},
		{"game from forty-thirty", "LLLRR" + "L", 1, 0},
		{"deuce then one point", "LLLRRRL", 0, 0},
		{"deuce then two points", "LLLRRRLL", 1, 0},
		{"long deuce", "LLLRRR" + "LRLRLRRL" + "RR", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(Singles, true, false)
			play(t, m, tt.seq)
			if m.Games(Left) != tt.leftGames || m.Games(Right) != tt.rightGame {
				t.Errorf("games = %d-%d, expected %d-%d",
					m.Games(Left), m.Games(Right), tt.leftGames, tt.rightGame)
			}
		})
	}
}

func TestNoAdDecidingPoint(t *testing.T) {
	tests := []struct {
		name     string
		gameType GameType
		advOn    bool
		winner   Side
	}{
		{"singles no-ad left", Singles, false, Left},
		{"singles no-ad right", Singles, false, Right},
		{"doubles forces no-ad", Doubles, true, Right},
		{"doubles without advantage", Doubles, false, Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(tt.gameType, tt.advOn, false)
			if !m.NoAdActive() {
				t.Fatal("NoAdActive() = false, expected true")
			}

			for _, r := range "LLLRRR" {
				side := Left
				if r == 'R' {
					side = Right
				}
				m.Point(side)
				if m.LeftLabel() == LabelAdvantage || m.RightLabel() == LabelAdvantage {
					t.Fatalf("advantage label observed under no-ad scoring")
				}
			}
			if m.LeftLabel() != LabelDeuce || m.RightLabel() != LabelDeuce {
				t.Fatalf("labels = %s/%s, expected Deuce/Deuce", m.LeftLabel(), m.RightLabel())
			}

			m.Point(tt.winner)
			if m.Games(tt.winner) != 1 || m.Games(tt.winner.Opponent()) != 0 {
				t.Errorf("games = %d-%d, expected deciding point to win the game",
					m.Games(Left), m.Games(Right))
			}
			if m.Points(Left) != 0 || m.Points(Right) != 0 {
				t.Errorf("points = %d-%d, expected 0-0", m.Points(Left), m.Points(Right))
			}
		})
	}
}

func TestSinglesWithAdvantageIsNotNoAd(t *testing.T) {
	m := newMatch(Singles, true, false)
	if m.NoAdActive() {
		t.Error("NoAdActive() = true for singles with advantage")
	}
}

func TestSetCompletionWithoutTiebreak(t *testing.T) {
	tests := []struct {
		name     string
		left     int // Must be >= right
		right    int
		finished bool
	}{
		{"six-love", 6, 0, true},
		{"six-four", 6, 4, true},
		{"five-five", 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(Singles, true, false)
			for i := 0; i < tt.right; i++ {
				winGames(m, Left, 1)
				winGames(m, Right, 1)
			}
			winGames(m, Left, tt.left-tt.right)
			if m.SetFinished() != tt.finished {
				t.Errorf("SetFinished() = %v at %d-%d, expected %v",
					m.SetFinished(), m.Games(Left), m.Games(Right), tt.finished)
			}
		})
	}
}

func TestLongSetHasNoCeiling(t *testing.T) {
	m := newMatch(Singles, true, false)

	// Trade games up to 10-10.
	for i := 0; i < 10; i++ {
		winGames(m, Left, 1)
		winGames(m, Right, 1)
	}
	if m.SetFinished() {
		t.Fatalf("set finished at %d-%d", m.Games(Left), m.Games(Right))
	}
	if m.InTiebreak() {
		t.Fatal("tiebreak entered with tiebreak disabled")
	}

	winGames(m, Right, 1)
	if m.SetFinished() {
		t.Fatal("set finished with a one-game margin")
	}
	winGames(m, Right, 1)
	if !m.SetFinished() {
		t.Fatalf("set not finished at %d-%d", m.Games(Left), m.Games(Right))
	}
	if !m.IsCurrentWinner(Right) || m.IsCurrentWinner(Left) {
		t.Error("expected right to be the current winner")
	}
	if m.Games(Left) != 10 || m.Games(Right) != 12 {
		t.Errorf("games = %d-%d, expected 10-12", m.Games(Left), m.Games(Right))
	}
}

// toSixAll trades games so the score reaches 6-6 without anyone winning.
func toSixAll(m *Match) {
	for i := 0; i < 6; i++ {
		winGames(m, Left, 1)
		winGames(m, Right, 1)
	}
}

func TestTiebreakEntry(t *testing.T) {
	m := newMatch(Singles, true, true)

	winGames(m, Left, 5)
	winGames(m, Right, 6)
	if m.InTiebreak() {
		t.Fatal("tiebreak entered at 5-6")
	}
	winGames(m, Left, 1)
	if !m.InTiebreak() {
		t.Fatalf("InTiebreak() = false at %d-%d", m.Games(Left), m.Games(Right))
	}
	if m.LeftLabel() != "0" || m.RightLabel() != "0" {
		t.Errorf("tiebreak labels = %s/%s, expected 0/0", m.LeftLabel(), m.RightLabel())
	}
}

func TestTiebreakResolution(t *testing.T) {
	tests := []struct {
		name   string
		seq    string
		winner Side
	}{
		{"seven-five to left", "LLLLRRRRR" + "LLL", Left},
		{"seven-love to right", "RRRRRRR", Right},
		{"extended twelve-ten", "LRLRLRLRLRLR" + "LRLRLRLR" + "RR", Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(Singles, true, true)
			toSixAll(m)
			if !m.InTiebreak() {
				t.Fatal("expected tiebreak at 6-6")
			}

			play(t, m, tt.seq)

			if !m.SetFinished() {
				t.Fatalf("set not finished, points %d-%d", m.Points(Left), m.Points(Right))
			}
			if m.InTiebreak() {
				t.Error("InTiebreak() = true after tiebreak ended")
			}
			if m.Games(tt.winner) != 7 || m.Games(tt.winner.Opponent()) != 6 {
				t.Errorf("games = %d-%d, expected 7-6 to %s", m.Games(Left), m.Games(Right), tt.winner)
			}
			if !m.IsCurrentWinner(tt.winner) {
				t.Errorf("IsCurrentWinner(%s) = false", tt.winner)
			}
			w, ok := m.Winner()
			if !ok || w.ID != m.Team(tt.winner).ID {
				t.Errorf("Winner() = %v, %v; expected %s team", w, ok, tt.winner)
			}
		})
	}
}

func TestTiebreakSevenSixNotEnough(t *testing.T) {
	m := newMatch(Singles, true, true)
	toSixAll(m)

	play(t, m, "LLLLLLRRRRRR")
	m.Point(Left)
	if m.SetFinished() {
		t.Fatalf("set finished at tiebreak points %d-%d", m.Points(Left), m.Points(Right))
	}
	if m.LeftLabel() != "7" || m.RightLabel() != "6" {
		t.Errorf("labels = %s/%s, expected raw tiebreak counts 7/6", m.LeftLabel(), m.RightLabel())
	}
}

func TestSevenFiveWithTiebreakEnabled(t *testing.T) {
	m := newMatch(Singles, true, true)

	for i := 0; i < 5; i++ {
		winGames(m, Left, 1)
		winGames(m, Right, 1)
	}
	winGames(m, Left, 1)
	if m.SetFinished() {
		t.Fatal("set finished at 6-5")
	}
	winGames(m, Left, 1)
	if !m.SetFinished() || !m.IsCurrentWinner(Left) {
		t.Errorf("expected left to win 7-5, got %d-%d finished=%v",
			m.Games(Left), m.Games(Right), m.SetFinished())
	}
	if m.InTiebreak() {
		t.Error("no tiebreak expected at 7-5")
	}
}

func TestPointAfterSetFinishedIsRejected(t *testing.T) {
	m := newMatch(Singles, true, false)
	winGames(m, Left, 6)
	if !m.SetFinished() {
		t.Fatal("expected finished set at 6-0")
	}

	before := m.State()
	var rejected int
	m.Subscribe(func(e Event) {
		if _, ok := e.(PointRejected); ok {
			rejected++
		}
	})

	if m.Point(Right) {
		t.Error("Point() = true after set finished")
	}
	if m.State() != before {
		t.Errorf("State() changed after rejected point: %+v -> %+v", before, m.State())
	}
	if rejected != 1 {
		t.Errorf("PointRejected events = %d, expected 1", rejected)
	}
}

func TestCurrentlyWinning(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		left  bool
		right bool
	}{
		{"exact tie", "", false, false},
		{"tied points and games", "LR", false, false},
		{"points lead", "LLR", true, false},
		{"games lead beats points", "LLLL" + "RRR", true, false},
		{"tied games, right ahead on points", "LLLL" + "RRRR" + "R", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMatch(Singles, true, false)
			play(t, m, tt.seq)
			if m.CurrentlyWinning(Left) != tt.left {
				t.Errorf("CurrentlyWinning(Left) = %v, expected %v", m.CurrentlyWinning(Left), tt.left)
			}
			if m.CurrentlyWinning(Right) != tt.right {
				t.Errorf("CurrentlyWinning(Right) = %v, expected %v", m.CurrentlyWinning(Right), tt.right)
			}
		})
	}
}

func TestUndoRestoresPreviousPoint(t *testing.T) {
	m := newMatch(Singles, true, false)
	play(t, m, "LLR")

	if !m.Undo() {
		t.Fatal("Undo() = false with history")
	}
	if m.Points(Left) != 2 || m.Points(Right) != 0 {
		t.Errorf("points = %d-%d, expected 2-0", m.Points(Left), m.Points(Right))
	}
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	m := newMatch(Singles, true, false)
	if m.Undo() {
		t.Error("Undo() = true on empty history")
	}
	if m.State() != (State{}) {
		t.Errorf("State() = %+v, expected zero state", m.State())
	}
}

func TestUndoUnfinishesSet(t *testing.T) {
	m := newMatch(Singles, true, false)
	winGames(m, Left, 6)
	if !m.SetFinished() {
		t.Fatal("expected set finished")
	}

	m.Undo()
	if m.SetFinished() {
		t.Error("SetFinished() = true after undoing the set point")
	}
	if _, ok := m.Winner(); ok {
		t.Error("Winner() reported after undo")
	}
	if m.Games(Left) != 5 || m.Points(Left) != 3 {
		t.Errorf("games/points = %d/%d, expected 5/3", m.Games(Left), m.Points(Left))
	}

	// Play the set point again.
	m.Point(Left)
	if !m.SetFinished() || !m.IsCurrentWinner(Left) {
		t.Error("expected set to finish again")
	}
}

func TestUndoAfterTiebreakRestoresTiebreak(t *testing.T) {
	m := newMatch(Singles, true, true)
	toSixAll(m)
	play(t, m, "LLLLLLL")
	if !m.SetFinished() {
		t.Fatal("expected set finished after 7-0 tiebreak")
	}

	m.Undo()
	if !m.InTiebreak() {
		t.Error("InTiebreak() = false after undoing the tiebreak point")
	}
	if m.SetFinished() {
		t.Error("SetFinished() = true after undo")
	}
	if m.Points(Left) != 6 || m.Games(Left) != 6 || m.Games(Right) != 6 {
		t.Errorf("state = %+v, expected 6-6 games and 6 tiebreak points", m.State())
	}
}

func TestUndoReFinishesSetAfterGameReset(t *testing.T) {
	m := newMatch(Singles, true, true)
	toSixAll(m)
	play(t, m, "RRRRRRR")

	// A game reset after the set is over is undoable and must leave
	// the 6-7 result standing.
	m.ResetCurrentGame()
	m.Undo()

	if !m.SetFinished() || !m.IsCurrentWinner(Right) {
		t.Errorf("expected right to remain winner, state %+v", m.State())
	}
	if m.InTiebreak() {
		t.Error("InTiebreak() = true on a finished set")
	}
}

func TestUndoWalksBackThroughHistory(t *testing.T) {
	m := newMatch(Singles, true, false)
	play(t, m, "LLLL" + "RR")

	var undone int
	for m.Undo() {
		undone++
	}
	if undone != 6 {
		t.Errorf("undo steps = %d, expected 6", undone)
	}
	if m.State() != (State{}) {
		t.Errorf("State() = %+v, expected initial state", m.State())
	}
}

func TestHistoryCapacityBoundsUndo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryCapacity = 10
	m := New(cfg)

	// 12 points: L wins a game on the 4th, then the rest alternate.
	play(t, m, "LLLL"+"LRLRLRLR")

	var undone int
	for m.Undo() {
		undone++
	}
	if undone != 10 {
		t.Errorf("undo steps = %d, expected capacity 10", undone)
	}
	// The oldest retained snapshot is the state before point 3.
	if m.Points(Left) != 2 || m.Games(Left) != 0 {
		t.Errorf("state = %+v, expected points 2-0 and no games", m.State())
	}
}

func TestResetCurrentGame(t *testing.T) {
	m := newMatch(Singles, true, false)
	play(t, m, "LLLL"+"LR")

	m.ResetCurrentGame()
	if m.Points(Left) != 0 || m.Points(Right) != 0 {
		t.Errorf("points = %d-%d, expected 0-0", m.Points(Left), m.Points(Right))
	}
	if m.Games(Left) != 1 {
		t.Errorf("Games(Left) = %d, expected games untouched", m.Games(Left))
	}

	m.Undo()
	if m.Points(Left) != 1 || m.Points(Right) != 1 {
		t.Errorf("points = %d-%d after undo, expected 1-1", m.Points(Left), m.Points(Right))
	}
}

func TestResetCurrentGameKeepsTiebreak(t *testing.T) {
	m := newMatch(Singles, true, true)
	toSixAll(m)
	play(t, m, "LLR")

	m.ResetCurrentGame()
	if !m.InTiebreak() {
		t.Error("InTiebreak() = false after resetting the tiebreak points")
	}
}

func TestResetMatch(t *testing.T) {
	m := newMatch(Singles, true, false)
	winGames(m, Left, 6)

	m.ResetMatch()
	if m.State() != (State{}) {
		t.Errorf("State() = %+v, expected zero state", m.State())
	}
	if m.CanUndo() {
		t.Error("CanUndo() = true after ResetMatch")
	}
	if m.Started() {
		t.Error("Started() = true after ResetMatch")
	}
}

func TestSetupLockedAfterFirstPoint(t *testing.T) {
	m := newMatch(Singles, true, false)
	leftID := m.Team(Left).ID

	if err := m.RenameTeam(Left, "Ana"); err != nil {
		t.Fatalf("RenameTeam() before play: %v", err)
	}
	if err := m.ConfigureRules(RuleConfig{Advantage: false, TiebreakAtSixAll: true}); err != nil {
		t.Fatalf("ConfigureRules() before play: %v", err)
	}
	if err := m.SetGameType(Doubles); err != nil {
		t.Fatalf("SetGameType() before play: %v", err)
	}
	if m.Team(Left).ID != leftID {
		t.Error("RenameTeam() changed the team identity")
	}

	m.Point(Left)

	if err := m.RenameTeam(Left, "Bea"); !errors.Is(err, ErrMatchInProgress) {
		t.Errorf("RenameTeam() = %v, expected ErrMatchInProgress", err)
	}
	if err := m.ConfigureRules(DefaultRules()); !errors.Is(err, ErrMatchInProgress) {
		t.Errorf("ConfigureRules() = %v, expected ErrMatchInProgress", err)
	}
	if err := m.SetGameType(Singles); !errors.Is(err, ErrMatchInProgress) {
		t.Errorf("SetGameType() = %v, expected ErrMatchInProgress", err)
	}
	if m.Team(Left).Name != "Ana" || m.GameType() != Doubles || m.Rules().Advantage {
		t.Error("rejected setup command changed state")
	}

	m.ResetMatch()
	if err := m.ConfigureRules(DefaultRules()); err != nil {
		t.Errorf("ConfigureRules() after reset: %v", err)
	}
}

func TestSameNameTeamsAreDistinct(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LeftName = "Sam"
	cfg.RightName = "Sam"
	m := New(cfg)

	winGames(m, Right, 6)
	if m.IsCurrentWinner(Left) {
		t.Error("IsCurrentWinner(Left) = true for a same-named losing team")
	}
	if !m.IsCurrentWinner(Right) {
		t.Error("IsCurrentWinner(Right) = false")
	}
}

func TestInvalidSideIsIgnored(t *testing.T) {
	m := newMatch(Singles, true, false)
	events := recordEvents(m)
	bogus := Side(2)

	if bogus.Valid() {
		t.Fatal("Side(2).Valid() = true")
	}
	if m.Point(bogus) {
		t.Error("Point() accepted an invalid side")
	}
	if m.Started() || m.CanUndo() || len(*events) != 0 {
		t.Errorf("invalid point changed state: started %v, canUndo %v, events %d",
			m.Started(), m.CanUndo(), len(*events))
	}
	if err := m.RenameTeam(bogus, "X"); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("RenameTeam() = %v, expected ErrInvalidSide", err)
	}
	if m.Label(bogus) != "" || m.Points(bogus) != 0 || m.Games(bogus) != 0 {
		t.Error("queries for an invalid side should return zero values")
	}
	if m.CurrentlyWinning(bogus) || m.IsCurrentWinner(bogus) || m.Team(bogus) != (Team{}) {
		t.Error("an invalid side should never be winning")
	}

	m.Point(Left)
	if !m.CanUndo() {
		t.Error("CanUndo() = false after a point")
	}
}
