package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

// PresetNames returns the configured preset names in sorted order.
func (c TennisConfig) PresetNames() []string {
	return slices.Sorted(maps.Keys(c.Presets))
}

// ApplyPreset modifies the config based on a named rule preset.
// A preset with a game type also switches the match format.
func ApplyPreset(cfg *TennisConfig, name string) error {
	p, ok := cfg.Presets[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}

	cfg.Rules = tennis.RuleConfig{
		Advantage:        p.Advantage,
		TiebreakAtSixAll: p.TiebreakAtSixAll,
	}
	if p.GameType != "" {
		cfg.Match.GameType = p.GameType
	}
	return nil
}
