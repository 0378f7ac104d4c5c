package cli

import (
	"fmt"
	"strings"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/store"
)

// Context is built once in main and handed to every command's Run.
type Context struct {
	Store *store.Store

	// StoragePath is where the active provider keeps its data.
	StoragePath string
}

// matchRef reports whether ref identifies the given id/name pair: an exact
// id or a case-insensitive name.
func matchRef(ref, id, name string) bool {
	if ref == id {
		return true
	}
	return strings.EqualFold(ref, name)
}

// FindHabit resolves a habit by id or name.
func FindHabit(ctx *Context, ref string) (models.Habit, error) {
	for _, h := range ctx.Store.Habits() {
		if matchRef(ref, h.ID, h.Name) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", ref)
}

// FindTask resolves a task by id or name.
func FindTask(ctx *Context, ref string) (models.Task, error) {
	for _, t := range ctx.Store.Tasks() {
		if matchRef(ref, t.ID, t.Name) {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", ref)
}

// FindSubject resolves a subject by id or name.
func FindSubject(ctx *Context, ref string) (models.Subject, error) {
	for _, s := range ctx.Store.Subjects() {
		if matchRef(ref, s.ID, s.Name) {
			return s, nil
		}
	}
	return models.Subject{}, fmt.Errorf("subject not found: %s", ref)
}

// FindGoal resolves a goal by id or name.
func FindGoal(ctx *Context, ref string) (models.Goal, error) {
	for _, g := range ctx.Store.Goals() {
		if matchRef(ref, g.ID, g.Name) {
			return g, nil
		}
	}
	return models.Goal{}, fmt.Errorf("goal not found: %s", ref)
}

// FindGoalCategory resolves a category by id or name.
func FindGoalCategory(ctx *Context, ref string) (models.GoalCategory, error) {
	for _, c := range ctx.Store.GoalCategories() {
		if matchRef(ref, c.ID, c.Name) {
			return c, nil
		}
	}
	return models.GoalCategory{}, fmt.Errorf("category not found: %s", ref)
}

// FindScheduleEntry resolves a schedule entry by id or course name. Course
// names repeat across weeks, so name matches are scoped to the given week.
func FindScheduleEntry(ctx *Context, ref, weekID string) (models.ScheduleEntry, error) {
	for _, e := range ctx.Store.Schedule() {
		if ref == e.ID {
			return e, nil
		}
		if e.WeekID == weekID && strings.EqualFold(ref, e.CourseName) {
			return e, nil
		}
	}
	return models.ScheduleEntry{}, fmt.Errorf("schedule entry not found: %s", ref)
}

// ParsePriority validates a priority flag value.
func ParsePriority(s string) (models.Priority, error) {
	for _, p := range models.Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q (expected Low, Medium, or High)", s)
}

// checkmark renders a completion flag the way lists display it.
func checkmark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
