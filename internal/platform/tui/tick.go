// Package tui provides the Bubble Tea integration for the scoreboard.
// It handles the terminal UI loop, key bindings, screens and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long an event message stays on screen.
const flashDuration = 1500 * time.Millisecond

// FlashExpiredMsg is sent when a flash message should be cleared.
// Seq identifies the flash it belongs to, so a newer flash is not cleared early.
type FlashExpiredMsg struct {
	Seq int
}

// flashCmd returns a Bubble Tea command that expires flash seq after flashDuration.
func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return FlashExpiredMsg{Seq: seq}
	})
}
