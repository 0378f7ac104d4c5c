package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateOverview:
		b.WriteString(m.renderOverview())
	case StateHabits:
		b.WriteString(m.renderHabits())
	case StateTasks:
		b.WriteString(m.renderTasks())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if SessionState(i) == m.state {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	var b strings.Builder

	profile := m.store.Profile()
	b.WriteString(headingStyle.Render(utils.Greeting(m.now)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Level %d  •  %d / %d XP\n\n",
		profile.Level, profile.XP, profile.XPToNextLevel))

	today := utils.TodayDateString()
	done := 0
	habits := m.store.Habits()
	for _, h := range habits {
		if h.Completions[today] {
			done++
		}
	}
	b.WriteString(fmt.Sprintf("Habits today: %d/%d", done, len(habits)))
	if best := utils.BestStreak(habits, m.now); best > 0 {
		b.WriteString(streakStyle.Render(fmt.Sprintf("  🔥 %d day streak", best)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Assignments done today: %d  •  Overall: %.0f%%\n\n",
		m.store.CompletedTodayCount(today), m.store.OverallProgress()))

	b.WriteString(m.renderTodaySchedule())

	return b.String()
}

func (m Model) renderTodaySchedule() string {
	entries := m.store.EntriesForDay(utils.WeekID(m.now), utils.CurrentDayOfWeek())
	if len(entries) == 0 {
		return mutedStyle.Render("No classes today.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Today's classes"))
	b.WriteString("\n")

	current, next := classStatus(entries, m.now)
	for _, e := range entries {
		line := fmt.Sprintf("  %s-%s  %s", e.StartTime, e.EndTime, e.CourseName)
		if e.Location != "" {
			line += mutedStyle.Render("  @ " + e.Location)
		}
		switch e.ID {
		case current:
			line += countdownStyle.Render("  ● now")
		case next:
			if start, err := utils.CombineDateAndTime(utils.TodayDateString(), e.StartTime, m.now.Location()); err == nil {
				line += countdownStyle.Render("  in " + utils.FormatTimeDiff(start.Sub(m.now)))
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// classStatus returns the ids of the entry in progress and the next entry to
// start, either of which may be empty. Entries must be sorted by start time.
func classStatus(entries []models.ScheduleEntry, now time.Time) (current, next string) {
	minutes := now.Hour()*60 + now.Minute()
	for _, e := range entries {
		start, err := utils.ParseTimeToMinutes(e.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseTimeToMinutes(e.EndTime)
		if err != nil {
			continue
		}
		if minutes >= start && minutes < end && current == "" {
			current = e.ID
		}
		if start > minutes && next == "" {
			next = e.ID
		}
	}
	return current, next
}

func (m Model) renderHabits() string {
	habits := m.store.Habits()
	if len(habits) == 0 {
		return mutedStyle.Render("No habits yet. Add one with: studyhall habit add") + "\n"
	}

	today := utils.TodayDateString()
	var b strings.Builder
	for i, h := range habits {
		mark := "[ ]"
		if h.Completions[today] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", mark, h.Icon, accentStyle(h.Color).Render(h.Name))
		if streak := utils.StreakOn(h, m.now); streak > 0 {
			line += streakStyle.Render(fmt.Sprintf("  🔥 %d", streak))
		}
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderTasks() string {
	tasks := m.store.UpcomingTasks(m.now)
	if len(tasks) == 0 {
		return mutedStyle.Render("No upcoming assignments.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, t.Name)
		if subject, ok := m.store.GetSubject(t.SubjectID); ok {
			line += accentStyle(subject.Color).Render("  " + subject.Name)
		}
		line += mutedStyle.Render("  due " + t.DueDate)
		b.WriteString(m.renderRow(i, line))
	}
	return b.String()
}

func (m Model) renderRow(i int, line string) string {
	if i == m.cursor {
		return selectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}
