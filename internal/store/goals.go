package store

import (
	"github.com/google/uuid"

	"github.com/studyhall/studyhall/internal/models"
)

// Goals returns the current goal list as a copy.
func (s *Store) Goals() []models.Goal {
	goals := make([]models.Goal, len(s.goals))
	copy(goals, s.goals)
	return goals
}

func (s *Store) findGoal(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

// GetGoal looks up a goal by id.
func (s *Store) GetGoal(id string) (models.Goal, bool) {
	i := s.findGoal(id)
	if i < 0 {
		return models.Goal{}, false
	}
	return s.goals[i], true
}

// AddGoal creates a goal with a fresh id and no milestones.
func (s *Store) AddGoal(name, description, categoryID string) (models.Goal, error) {
	goal := models.Goal{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		Milestones:  []models.Milestone{},
	}
	s.goals = append(s.goals, goal)
	if err := s.saveGoals(); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal replaces the stored goal with the same id.
func (s *Store) UpdateGoal(goal models.Goal) error {
	i := s.findGoal(goal.ID)
	if i < 0 {
		return nil
	}
	s.goals[i] = goal
	return s.saveGoals()
}

// DeleteGoal removes a goal and its milestones.
func (s *Store) DeleteGoal(id string) error {
	i := s.findGoal(id)
	if i < 0 {
		return nil
	}
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	return s.saveGoals()
}

// AddMilestone appends a milestone to the goal's ordered list.
func (s *Store) AddMilestone(goalID, name string) error {
	i := s.findGoal(goalID)
	if i < 0 {
		return nil
	}
	s.goals[i].Milestones = append(s.goals[i].Milestones, models.Milestone{
		ID:   uuid.New().String(),
		Name: name,
	})
	return s.saveGoals()
}

// ToggleMilestoneCompletion flips one milestone's completed flag.
func (s *Store) ToggleMilestoneCompletion(goalID, milestoneID string) error {
	i := s.findGoal(goalID)
	if i < 0 {
		return nil
	}
	for j := range s.goals[i].Milestones {
		if s.goals[i].Milestones[j].ID == milestoneID {
			s.goals[i].Milestones[j].Completed = !s.goals[i].Milestones[j].Completed
			return s.saveGoals()
		}
	}
	return nil
}

// GoalCategories returns the current category list as a copy.
func (s *Store) GoalCategories() []models.GoalCategory {
	categories := make([]models.GoalCategory, len(s.goalCategories))
	copy(categories, s.goalCategories)
	return categories
}

// GetGoalCategory looks up a category by id.
func (s *Store) GetGoalCategory(id string) (models.GoalCategory, bool) {
	for _, c := range s.goalCategories {
		if c.ID == id {
			return c, true
		}
	}
	return models.GoalCategory{}, false
}

// AddGoalCategory creates a category with a fresh id.
func (s *Store) AddGoalCategory(name string, color models.Color) (models.GoalCategory, error) {
	category := models.GoalCategory{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
	s.goalCategories = append(s.goalCategories, category)
	if err := s.saveGoalCategories(); err != nil {
		return models.GoalCategory{}, err
	}
	return category, nil
}

// UpdateGoalCategory replaces the stored category with the same id.
func (s *Store) UpdateGoalCategory(category models.GoalCategory) error {
	for i := range s.goalCategories {
		if s.goalCategories[i].ID == category.ID {
			s.goalCategories[i] = category
			return s.saveGoalCategories()
		}
	}
	return nil
}

// DeleteGoalCategory removes a category. It refuses with ErrCategoryInUse,
// performing no mutation, while any goal still references the category.
func (s *Store) DeleteGoalCategory(id string) error {
	for _, g := range s.goals {
		if g.CategoryID == id {
			return ErrCategoryInUse
		}
	}
	for i := range s.goalCategories {
		if s.goalCategories[i].ID == id {
			s.goalCategories = append(s.goalCategories[:i], s.goalCategories[i+1:]...)
			return s.saveGoalCategories()
		}
	}
	return nil
}
