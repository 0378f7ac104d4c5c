package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/studyhall/studyhall/internal/models"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	headingStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// accentStyle tints text with an entity's stored accent color.
func accentStyle(c models.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
}
