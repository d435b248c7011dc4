package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tennis/internal/tennis"
)

func pressSetup(t *testing.T, m SetupModel, keys ...tea.KeyMsg) SetupModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(SetupModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestSetupDefaultsFromConfig(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)
	r := m.Result()

	if r.GameType != tennis.Singles {
		t.Errorf("GameType = %v, expected singles", r.GameType)
	}
	if r.Rules != tennis.DefaultRules() {
		t.Errorf("Rules = %+v, expected defaults", r.Rules)
	}
	if r.LeftName != "ME" || r.RightName != "OPP" {
		t.Errorf("names = %q/%q, expected ME/OPP", r.LeftName, r.RightName)
	}
}

func TestSetupToggles(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)

	// advantage off, tiebreak on
	m = pressSetup(t, m, keyDown, keySpace, keyDown, keySpace)
	r := m.Result()
	if r.Rules.Advantage {
		t.Error("advantage should be toggled off")
	}
	if !r.Rules.TiebreakAtSixAll {
		t.Error("tiebreak should be toggled on")
	}

	// back to game type and switch to doubles
	m = pressSetup(t, m, keyUp, keyUp, keySpace)
	if m.Result().GameType != tennis.Doubles {
		t.Errorf("GameType = %v, expected doubles", m.Result().GameType)
	}
}

func TestSetupDoublesLabelsAndNote(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)

	view := m.View()
	if !strings.Contains(view, "Your name") || !strings.Contains(view, "Opponent name") {
		t.Error("singles setup should ask for your name and opponent name")
	}

	m = pressSetup(t, m, keySpace)
	view = m.View()
	for _, want := range []string{"Team A", "Team B", "Doubles uses No-Ad at deuce", "No-Ad (doubles)"} {
		if !strings.Contains(view, want) {
			t.Errorf("doubles View() missing %q", want)
		}
	}
}

func TestSetupDoublesSkipsAdvantageRow(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)
	m = pressSetup(t, m, keySpace, keyDown)

	if m.cursor != rowTiebreak {
		t.Errorf("cursor = %d, expected tiebreak row %d", m.cursor, rowTiebreak)
	}

	m = pressSetup(t, m, keyUp)
	if m.cursor != rowGameType {
		t.Errorf("cursor = %d, expected game type row %d", m.cursor, rowGameType)
	}
}

func TestSetupNameEditing(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)
	m = pressSetup(t, m, keyDown, keyDown, keyDown) // left name row

	if !m.editingName() {
		t.Fatal("cursor should be on a name row")
	}

	// q goes into the input instead of quitting
	m = pressSetup(t, m, keyRunes("q"))
	if m.IsQuitting() {
		t.Error("q on a name row should not quit")
	}
	if got := m.Result().LeftName; got != "MEq" {
		t.Errorf("LeftName = %q, expected MEq", got)
	}

	// enter moves to the next row rather than starting
	m = pressSetup(t, m, keyEnter)
	if m.Started() || m.cursor != rowRightName {
		t.Errorf("enter on name row: started %v cursor %d", m.Started(), m.cursor)
	}
}

func TestSetupEmptyNameFallsBack(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)
	m.names[1].SetValue("   ")

	if got := m.Result().RightName; got != "OPP" {
		t.Errorf("RightName = %q, expected fallback OPP", got)
	}
}

func TestSetupStartAndResults(t *testing.T) {
	m := NewSetupModel(tennis.DefaultConfig(), 80, 24)

	if m = pressSetup(t, m, keyTab); !m.WantsResults() {
		t.Error("tab should request the results screen")
	}

	m = pressSetup(t, m, keyEnter)
	if !m.Started() {
		t.Error("enter should start the match")
	}
}
