package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// DefaultConfig returns the built-in configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() TennisConfig {
	return TennisConfig{
		Match: MatchSection{
			GameType:  string(tennis.Singles),
			LeftName:  "ME",
			RightName: "OPP",
		},
		Rules: tennis.DefaultRules(),
		History: HistorySection{
			Capacity: tennis.DefaultHistoryCapacity,
		},
		Presets: DefaultPresets(),
	}
}

// DefaultPresets returns the built-in rule presets.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"standard": {
			Description: "Advantage scoring, long set without tiebreak",
			Advantage:   true,
		},
		"no-ad": {
			Description: "Deciding point at deuce",
		},
		"tiebreak": {
			Description:      "Advantage scoring, tiebreak at 6-6",
			Advantage:        true,
			TiebreakAtSixAll: true,
		},
		"doubles": {
			Description:      "Doubles with tiebreak at 6-6 (no-ad at deuce)",
			GameType:         string(tennis.Doubles),
			TiebreakAtSixAll: true,
		},
	}
}
