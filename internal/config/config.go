// Package config provides YAML-based scoreboard configuration loading and
// rule presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

// ErrUnknownPreset is returned when a preset name is not defined.
var ErrUnknownPreset = errors.New("config: unknown preset")

// TennisConfig contains all configuration for a scoreboard session.
type TennisConfig struct {
	Match   MatchSection      `yaml:"match"`
	Rules   tennis.RuleConfig `yaml:"rules"`
	History HistorySection    `yaml:"history"`
	Presets map[string]Preset `yaml:"presets"`
}

// MatchSection defines who plays and in which format.
type MatchSection struct {
	GameType  string `yaml:"game_type"` // "singles" or "doubles"
	LeftName  string `yaml:"left_name"`
	RightName string `yaml:"right_name"`
}

// HistorySection defines the undo buffer.
type HistorySection struct {
	Capacity int `yaml:"capacity"`
}

// Preset is a named rule variant.
type Preset struct {
	Description      string `yaml:"description"`
	GameType         string `yaml:"game_type,omitempty"` // empty keeps the configured type
	Advantage        bool   `yaml:"advantage"`
	TiebreakAtSixAll bool   `yaml:"tiebreak_at_six_all"`
}

// Validate checks the configuration for values the engine cannot use.
func (c TennisConfig) Validate() error {
	if !tennis.GameType(c.Match.GameType).Valid() {
		return fmt.Errorf("config: invalid game_type %q", c.Match.GameType)
	}
	if c.History.Capacity <= 0 {
		return fmt.Errorf("config: history capacity must be positive, got %d", c.History.Capacity)
	}
	for name, p := range c.Presets {
		if p.GameType != "" && !tennis.GameType(p.GameType).Valid() {
			return fmt.Errorf("config: preset %q: invalid game_type %q", name, p.GameType)
		}
	}
	return nil
}

// MatchConfig converts the configuration into engine settings.
// Empty names fall back to the engine defaults.
func (c TennisConfig) MatchConfig() tennis.Config {
	mc := tennis.DefaultConfig()
	mc.GameType = tennis.GameType(c.Match.GameType)
	mc.Rules = c.Rules
	mc.HistoryCapacity = c.History.Capacity
	if c.Match.LeftName != "" {
		mc.LeftName = c.Match.LeftName
	}
	if c.Match.RightName != "" {
		mc.RightName = c.Match.RightName
	}
	return mc
}
