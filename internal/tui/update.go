package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyhall/studyhall/internal/logger"
	"github.com/studyhall/studyhall/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + SessionState(len(tabTitles)) - 1) % SessionState(len(tabTitles))
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
			return m, nil
		}
	}

	return m, nil
}

// listLen returns the length of the list the cursor moves through in the
// current tab.
func (m Model) listLen() int {
	switch m.state {
	case StateHabits:
		return len(m.store.Habits())
	case StateTasks:
		return len(m.store.UpcomingTasks(m.now))
	}
	return 0
}

func (m *Model) toggleSelected() {
	switch m.state {
	case StateHabits:
		habits := m.store.Habits()
		if m.cursor < len(habits) {
			if err := m.store.ToggleHabitCompletion(habits[m.cursor].ID, utils.TodayDateString()); err != nil {
				logger.Error("Failed to toggle habit", "error", err)
			}
		}
	case StateTasks:
		tasks := m.store.UpcomingTasks(m.now)
		if m.cursor < len(tasks) {
			if err := m.store.ToggleTaskCompletion(tasks[m.cursor].ID); err != nil {
				logger.Error("Failed to toggle assignment", "error", err)
			}
		}
	}
}
