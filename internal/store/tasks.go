package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
)

// Tasks returns the current task list as a copy.
func (s *Store) Tasks() []models.Task {
	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *Store) findTask(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// GetTask looks up a task by id.
func (s *Store) GetTask(id string) (models.Task, bool) {
	i := s.findTask(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// AddTask creates an incomplete task with a fresh id and no subtasks.
func (s *Store) AddTask(name, subjectID, dueDate string, priority models.Priority) (models.Task, error) {
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("invalid priority %q", priority)
	}
	task := models.Task{
		ID:        uuid.New().String(),
		Name:      name,
		SubjectID: subjectID,
		DueDate:   dueDate,
		Priority:  priority,
		Completed: false,
		CreatedAt: time.Now(),
		Subtasks:  []models.Subtask{},
	}
	s.tasks = append(s.tasks, task)
	if err := s.saveTasks(); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces the stored task with the same id.
func (s *Store) UpdateTask(task models.Task) error {
	i := s.findTask(task.ID)
	if i < 0 {
		return nil
	}
	s.tasks[i] = task
	return s.saveTasks()
}

// DeleteTask removes a task along with its subtasks.
func (s *Store) DeleteTask(id string) error {
	i := s.findTask(id)
	if i < 0 {
		return nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.saveTasks()
}

// ToggleTaskCompletion flips a task's completed flag. The incomplete ->
// complete transition awards XP, checked before the flip; completing the
// same task again after un-completing it awards again, and un-completing
// never retracts XP.
func (s *Store) ToggleTaskCompletion(id string) error {
	i := s.findTask(id)
	if i < 0 {
		return nil
	}

	award := !s.tasks[i].Completed
	if award {
		if err := s.AddXP(constants.XPTaskCompleted); err != nil {
			return err
		}
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.saveTasks()
}

// AddSubtask appends a subtask to the owning task's list. Unknown task ids
// are silently ignored.
func (s *Store) AddSubtask(taskID, name string) error {
	i := s.findTask(taskID)
	if i < 0 {
		return nil
	}
	s.tasks[i].Subtasks = append(s.tasks[i].Subtasks, models.Subtask{
		ID:   uuid.New().String(),
		Name: name,
	})
	return s.saveTasks()
}

// ToggleSubtaskCompletion flips one subtask's completed flag. Subtask
// completion carries no XP.
func (s *Store) ToggleSubtaskCompletion(taskID, subtaskID string) error {
	i := s.findTask(taskID)
	if i < 0 {
		return nil
	}
	for j := range s.tasks[i].Subtasks {
		if s.tasks[i].Subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks[j].Completed = !s.tasks[i].Subtasks[j].Completed
			return s.saveTasks()
		}
	}
	return nil
}

// DeleteSubtask removes one subtask from the owning task.
func (s *Store) DeleteSubtask(taskID, subtaskID string) error {
	i := s.findTask(taskID)
	if i < 0 {
		return nil
	}
	subtasks := s.tasks[i].Subtasks
	for j := range subtasks {
		if subtasks[j].ID == subtaskID {
			s.tasks[i].Subtasks = append(subtasks[:j], subtasks[j+1:]...)
			return s.saveTasks()
		}
	}
	return nil
}

// TasksBySubject returns the tasks referencing a subject, recomputed on
// each call.
func (s *Store) TasksBySubject(subjectID string) []models.Task {
	var tasks []models.Task
	for _, t := range s.tasks {
		if t.SubjectID == subjectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// UpcomingTasks returns up to five incomplete tasks due within the next
// seven days of now (overdue tasks included), soonest first.
func (s *Store) UpcomingTasks(now time.Time) []models.Task {
	horizon := now.AddDate(0, 0, constants.UpcomingTaskDays).Format(constants.DateFormat)

	var upcoming []models.Task
	for _, t := range s.tasks {
		if !t.Completed && t.DueDate != "" && t.DueDate <= horizon {
			upcoming = append(upcoming, t)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate < upcoming[j].DueDate
	})
	if len(upcoming) > constants.UpcomingTaskLimit {
		upcoming = upcoming[:constants.UpcomingTaskLimit]
	}
	return upcoming
}

// CompletedTodayCount counts completed tasks due on the given date.
func (s *Store) CompletedTodayCount(today string) int {
	count := 0
	for _, t := range s.tasks {
		if t.Completed && t.DueDate == today {
			count++
		}
	}
	return count
}

// OverallProgress returns the percentage of all tasks completed, 0 when
// there are no tasks.
func (s *Store) OverallProgress() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range s.tasks {
		if t.Completed {
			done++
		}
	}
	return float64(done) / float64(len(s.tasks)) * 100
}

// Subjects returns the current subject list as a copy.
func (s *Store) Subjects() []models.Subject {
	subjects := make([]models.Subject, len(s.subjects))
	copy(subjects, s.subjects)
	return subjects
}

// GetSubject looks up a subject by id.
func (s *Store) GetSubject(id string) (models.Subject, bool) {
	for _, sub := range s.subjects {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Subject{}, false
}

// AddSubject creates a subject with a fresh id.
func (s *Store) AddSubject(name string, color models.Color) (models.Subject, error) {
	subject := models.Subject{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
	s.subjects = append(s.subjects, subject)
	if err := s.saveSubjects(); err != nil {
		return models.Subject{}, err
	}
	return subject, nil
}
