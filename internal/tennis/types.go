// Package tennis implements the scoring engine for a single tennis set.
// It has no UI or storage dependencies; the platform layer feeds it commands
// and reads back labels, games and the set outcome.
package tennis

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMatchInProgress is returned by setup commands once a point has been scored.
var ErrMatchInProgress = errors.New("tennis: match already in progress")

// ErrInvalidSide is returned when a command names neither Left nor Right.
var ErrInvalidSide = errors.New("tennis: invalid side")

// Side identifies one of the two competitors.
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in display order.
var Sides = [2]Side{Left, Right}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Valid reports whether s is Left or Right.
func (s Side) Valid() bool {
	return s == Left || s == Right
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// GameType selects singles or doubles play.
type GameType string

const (
	Singles GameType = "singles"
	Doubles GameType = "doubles"
)

// Valid reports whether t is a known game type.
func (t GameType) Valid() bool {
	return t == Singles || t == Doubles
}

// Title returns the display name ("Singles", "Doubles").
func (t GameType) Title() string {
	switch t {
	case Doubles:
		return "Doubles"
	default:
		return "Singles"
	}
}

// Team is one side of the match: a player or a doubles pair.
// ID is stable for the lifetime of the match, so two teams with the
// same name are still distinguishable.
type Team struct {
	ID   uuid.UUID
	Name string
}

// NewTeam creates a team with a fresh identity.
func NewTeam(name string) Team {
	return Team{
		ID:   uuid.New(),
		Name: name,
	}
}

// RuleConfig holds the scoring variants chosen before play.
type RuleConfig struct {
	Advantage        bool `yaml:"advantage"`
	TiebreakAtSixAll bool `yaml:"tiebreak_at_six_all"`
}

// DefaultRules returns advantage scoring without a tiebreak.
func DefaultRules() RuleConfig {
	return RuleConfig{
		Advantage:        true,
		TiebreakAtSixAll: false,
	}
}

// Snapshot is the part of the match state captured before each mutating
// command and restored by Undo.
type Snapshot struct {
	Points [2]int
	Games  [2]int
}

// State is a read-only copy of the full match state, used for rendering
// and in tests.
type State struct {
	Points      [2]int
	Games       [2]int
	InTiebreak  bool
	SetFinished bool
	Winner      Side // Only meaningful when SetFinished is true
	HistoryLen  int
}
