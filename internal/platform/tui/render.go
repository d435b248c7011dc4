package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by all screens.
var (
	colorAccent = lipgloss.Color("229")
	colorMuted  = lipgloss.Color("241")
	colorBorder = lipgloss.Color("240")
	colorLeader = lipgloss.Color("10")
	colorWinner = lipgloss.Color("11")
	colorSelect = lipgloss.Color("57")
	colorAlert  = lipgloss.Color("208")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	flashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAlert)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(colorWinner).
			Padding(0, 2)

	tiebreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAlert).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorAlert)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(cardWidth).
			Align(lipgloss.Center)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorSelect)
)

const cardWidth = 22

// scoreCard renders one side of the scoreboard.
// The leader gets a highlighted border; the set winner a gold one.
func scoreCard(name string, games int, label string, leading, winner bool) string {
	style := cardStyle
	nameStyle := lipgloss.NewStyle().Bold(true)
	switch {
	case winner:
		style = style.BorderForeground(colorWinner)
		nameStyle = nameStyle.Foreground(colorWinner)
	case leading:
		style = style.BorderForeground(colorLeader)
		nameStyle = nameStyle.Foreground(colorLeader)
	}

	gamesLine := lipgloss.NewStyle().Bold(true).Render(strings.Repeat("●", min(games, 7)))
	if games == 0 {
		gamesLine = mutedStyle.Render("·")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		nameStyle.Render(truncate(name, cardWidth-4)),
		"",
		lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(games)),
		gamesLine,
		"",
		titleStyle.Render(label),
	)
	return style.Render(body)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// truncate shortens s to at most n cells.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
