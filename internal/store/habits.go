package store

import (
	"github.com/google/uuid"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
)

// Habits returns the current habit list. The returned slice is a copy;
// mutate habits only through store operations.
func (s *Store) Habits() []models.Habit {
	habits := make([]models.Habit, len(s.habits))
	copy(habits, s.habits)
	return habits
}

func (s *Store) findHabit(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

// GetHabit looks up a habit by id.
func (s *Store) GetHabit(id string) (models.Habit, bool) {
	i := s.findHabit(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.habits[i], true
}

// AddHabit creates a habit with a fresh id and an empty completion map.
func (s *Store) AddHabit(name, icon string, color models.Color) (models.Habit, error) {
	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Icon:        icon,
		Color:       color,
		Completions: make(map[string]bool),
	}
	s.habits = append(s.habits, habit)
	if err := s.saveHabits(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit replaces the stored habit with the same id. Unknown ids are
// silently ignored.
func (s *Store) UpdateHabit(habit models.Habit) error {
	i := s.findHabit(habit.ID)
	if i < 0 {
		return nil
	}
	s.habits[i] = habit
	return s.saveHabits()
}

// DeleteHabit removes a habit and its completion history.
func (s *Store) DeleteHabit(id string) error {
	i := s.findHabit(id)
	if i < 0 {
		return nil
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	return s.saveHabits()
}

// ToggleHabitCompletion flips the presence of date's key in the habit's
// completion map: inserted when absent, deleted when present. The off->on
// transition awards XP; toggling off never retracts it, so a later re-toggle
// of the same date awards again.
func (s *Store) ToggleHabitCompletion(id, date string) error {
	i := s.findHabit(id)
	if i < 0 {
		return nil
	}

	habit := &s.habits[i]
	if habit.Completions == nil {
		habit.Completions = make(map[string]bool)
	}

	wasCompleted := habit.Completions[date]
	if wasCompleted {
		delete(habit.Completions, date)
	} else {
		habit.Completions[date] = true
	}

	if err := s.saveHabits(); err != nil {
		return err
	}

	if !wasCompleted {
		return s.AddXP(constants.XPHabitCompleted)
	}
	return nil
}
