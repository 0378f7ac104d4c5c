// Package store holds the application's collections in memory and exposes
// one operation per user action. Every mutation persists the affected
// collection to the storage provider before returning; collections are
// independent units of persistence with no cross-collection atomicity.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/logger"
	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

var (
	// ErrCategoryInUse blocks deletion of a goal category that is still
	// assigned to one or more goals.
	ErrCategoryInUse = errors.New("category is assigned to one or more goals")

	// ErrTargetWeekNotEmpty aborts a week clone whose target already has
	// entries. The clone is all-or-nothing; nothing is copied.
	ErrTargetWeekNotEmpty = errors.New("target week already has entries")
)

// Store is constructed once at startup and passed by reference to whatever
// layer needs it. It is not safe for concurrent use.
type Store struct {
	provider storage.Provider

	habits         []models.Habit
	tasks          []models.Task
	subjects       []models.Subject
	goals          []models.Goal
	goalCategories []models.GoalCategory
	schedule       []models.ScheduleEntry
	profile        models.UserProfile
	theme          models.Theme
}

// seedSubjects and seedGoalCategories are the defaults written into a fresh
// store on first load.
func seedSubjects() []models.Subject {
	return []models.Subject{
		{ID: "academics", Name: "Academics", Color: models.ColorBlue},
		{ID: "personal", Name: "Personal", Color: models.ColorGreen},
		{ID: "job", Name: "Job/Internship", Color: models.ColorPurple},
	}
}

func seedGoalCategories() []models.GoalCategory {
	return []models.GoalCategory{
		{ID: "academic", Name: "Academic", Color: models.ColorBlue},
		{ID: "personal", Name: "Personal", Color: models.ColorGreen},
		{ID: "career", Name: "Career", Color: models.ColorPurple},
	}
}

func defaultProfile() models.UserProfile {
	return models.UserProfile{Level: 1, XP: 0, XPToNextLevel: XPToNextLevel(1)}
}

// Open loads every collection from the provider, falling back to documented
// defaults for keys that are missing or fail to parse.
func Open(provider storage.Provider) (*Store, error) {
	s := &Store{provider: provider}

	if err := s.loadCollection(constants.KeyHabits, &s.habits, nil); err != nil {
		return nil, err
	}
	if err := s.loadCollection(constants.KeyTasks, &s.tasks, nil); err != nil {
		return nil, err
	}
	if err := s.loadCollection(constants.KeySubjects, &s.subjects, seedSubjects()); err != nil {
		return nil, err
	}
	if err := s.loadCollection(constants.KeyGoals, &s.goals, nil); err != nil {
		return nil, err
	}
	if err := s.loadCollection(constants.KeyGoalCategories, &s.goalCategories, seedGoalCategories()); err != nil {
		return nil, err
	}
	if err := s.loadCollection(constants.KeySchedule, &s.schedule, nil); err != nil {
		return nil, err
	}

	if err := s.loadProfile(); err != nil {
		return nil, err
	}
	if err := s.loadTheme(); err != nil {
		return nil, err
	}

	return s, nil
}

// loadCollection decodes one collection key into dst. A missing key or a
// value that fails to parse falls back to def (parse failures are logged
// and treated as absent rather than aborting startup).
func (s *Store) loadCollection(key string, dst any, def any) error {
	data, err := s.provider.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return applyDefault(key, dst, def)
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("Stored value is corrupted, falling back to default", "key", key, "error", err)
		return applyDefault(key, dst, def)
	}
	return nil
}

func applyDefault(key string, dst any, def any) error {
	if def == nil {
		return nil
	}
	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to encode default for %s: %w", key, err)
	}
	return json.Unmarshal(raw, dst)
}

func (s *Store) loadProfile() error {
	s.profile = defaultProfile()
	data, err := s.provider.Get(constants.KeyUserProfile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", constants.KeyUserProfile, err)
	}

	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Warn("Stored profile is corrupted, falling back to default", "error", err)
		return nil
	}
	s.profile = p
	return nil
}

func (s *Store) loadTheme() error {
	s.theme = models.ThemeSystem
	data, err := s.provider.Get(constants.KeyTheme)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", constants.KeyTheme, err)
	}

	theme, err := models.ParseTheme(string(data))
	if err != nil {
		logger.Warn("Stored theme is invalid, falling back to system", "error", err)
		return nil
	}
	s.theme = theme
	return nil
}

// persist serializes one collection and writes it under its key.
func (s *Store) persist(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.provider.Set(key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveHabits() error   { return s.persist(constants.KeyHabits, s.habits) }
func (s *Store) saveTasks() error    { return s.persist(constants.KeyTasks, s.tasks) }
func (s *Store) saveSubjects() error { return s.persist(constants.KeySubjects, s.subjects) }
func (s *Store) saveGoals() error    { return s.persist(constants.KeyGoals, s.goals) }
func (s *Store) saveGoalCategories() error {
	return s.persist(constants.KeyGoalCategories, s.goalCategories)
}
func (s *Store) saveSchedule() error { return s.persist(constants.KeySchedule, s.schedule) }
func (s *Store) saveProfile() error  { return s.persist(constants.KeyUserProfile, s.profile) }

// Theme returns the stored display preference.
func (s *Store) Theme() models.Theme {
	return s.theme
}

// SetTheme stores the display preference under its own key, independent of
// domain data.
func (s *Store) SetTheme(theme models.Theme) error {
	if _, err := models.ParseTheme(string(theme)); err != nil {
		return err
	}
	s.theme = theme
	if err := s.provider.Set(constants.KeyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}

// Path returns the location of the underlying storage.
func (s *Store) Path() string {
	return s.provider.Path()
}
