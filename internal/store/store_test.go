package store

import (
	"errors"
	"testing"
	"time"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/storage"
)

func setupStore(t *testing.T) (*Store, storage.Provider) {
	t.Helper()
	provider := storage.NewFileStore(t.TempDir())
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init provider: %v", err)
	}
	s, err := Open(provider)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s, provider
}

func TestFreshStoreDefaults(t *testing.T) {
	s, _ := setupStore(t)

	if got := len(s.Subjects()); got != 3 {
		t.Errorf("expected 3 seed subjects, got %d", got)
	}
	if got := len(s.GoalCategories()); got != 3 {
		t.Errorf("expected 3 seed goal categories, got %d", got)
	}
	if got := len(s.Habits()); got != 0 {
		t.Errorf("expected no habits, got %d", got)
	}

	profile := s.Profile()
	if profile.Level != 1 || profile.XP != 0 || profile.XPToNextLevel != 100 {
		t.Errorf("unexpected default profile: %+v", profile)
	}
	if s.Theme() != models.ThemeSystem {
		t.Errorf("expected system theme default, got %s", s.Theme())
	}
}

func TestAddXPCascadesLevels(t *testing.T) {
	s, _ := setupStore(t)

	// 500 XP from level 1 crosses thresholds 100, 120, 144 and lands on
	// level 4 with 136 XP toward a 172 threshold.
	if err := s.AddXP(500); err != nil {
		t.Fatalf("failed to add xp: %v", err)
	}

	profile := s.Profile()
	if profile.Level != 4 {
		t.Errorf("expected level 4, got %d", profile.Level)
	}
	if profile.XP != 136 {
		t.Errorf("expected 136 xp, got %d", profile.XP)
	}
	if profile.XPToNextLevel != 172 {
		t.Errorf("expected threshold 172, got %d", profile.XPToNextLevel)
	}
}

func TestAddXPInvariants(t *testing.T) {
	s, _ := setupStore(t)

	for _, amount := range []int{0, 10, 99, 1, 250, 3, 1000, 7} {
		if err := s.AddXP(amount); err != nil {
			t.Fatalf("failed to add %d xp: %v", amount, err)
		}
		p := s.Profile()
		if p.XP < 0 || p.XP >= p.XPToNextLevel {
			t.Errorf("after award %d: xp %d outside [0, %d)", amount, p.XP, p.XPToNextLevel)
		}
		if want := XPToNextLevel(p.Level); p.XPToNextLevel != want {
			t.Errorf("after award %d: threshold %d, formula says %d", amount, p.XPToNextLevel, want)
		}
	}

	if err := s.AddXP(-5); err == nil {
		t.Error("expected error for negative award")
	}
}

func TestAddXPExactThreshold(t *testing.T) {
	s, _ := setupStore(t)

	if err := s.AddXP(100); err != nil {
		t.Fatalf("failed to add xp: %v", err)
	}
	p := s.Profile()
	if p.Level != 2 || p.XP != 0 || p.XPToNextLevel != 120 {
		t.Errorf("expected level 2 with 0/120, got %+v", p)
	}
}

func TestToggleHabitCompletionRoundTrip(t *testing.T) {
	s, _ := setupStore(t)

	habit, err := s.AddHabit("Reading", "book", models.ColorBlue)
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	date := "2026-03-18"
	if err := s.ToggleHabitCompletion(habit.ID, date); err != nil {
		t.Fatalf("failed to toggle habit: %v", err)
	}

	got, _ := s.GetHabit(habit.ID)
	if !got.Completions[date] {
		t.Error("expected completion to be set after first toggle")
	}
	if xp := s.Profile().XP; xp != constants.XPHabitCompleted {
		t.Errorf("expected %d xp after first completion, got %d", constants.XPHabitCompleted, xp)
	}

	// Toggling off restores the original map but keeps the XP.
	if err := s.ToggleHabitCompletion(habit.ID, date); err != nil {
		t.Fatalf("failed to toggle habit off: %v", err)
	}
	got, _ = s.GetHabit(habit.ID)
	if _, present := got.Completions[date]; present {
		t.Error("expected completion key to be deleted after second toggle")
	}
	if xp := s.Profile().XP; xp != constants.XPHabitCompleted {
		t.Errorf("expected xp to stay at %d after un-toggle, got %d", constants.XPHabitCompleted, xp)
	}

	// A third toggle re-creates the key, which awards again.
	if err := s.ToggleHabitCompletion(habit.ID, date); err != nil {
		t.Fatalf("failed to toggle habit back on: %v", err)
	}
	if xp := s.Profile().XP; xp != 2*constants.XPHabitCompleted {
		t.Errorf("expected %d xp after re-completion, got %d", 2*constants.XPHabitCompleted, xp)
	}
}

func TestToggleHabitUnknownIDIsNoOp(t *testing.T) {
	s, _ := setupStore(t)

	if err := s.ToggleHabitCompletion("missing", "2026-03-18"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if xp := s.Profile().XP; xp != 0 {
		t.Errorf("expected no xp for unknown habit, got %d", xp)
	}
}

func TestToggleTaskCompletionAwardsOnce(t *testing.T) {
	s, _ := setupStore(t)

	task, err := s.AddTask("Essay", "academics", "2026-03-20", models.PriorityHigh)
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if err := s.ToggleTaskCompletion(task.ID); err != nil {
		t.Fatalf("failed to toggle task: %v", err)
	}
	if xp := s.Profile().XP; xp != constants.XPTaskCompleted {
		t.Errorf("expected %d xp after completion, got %d", constants.XPTaskCompleted, xp)
	}

	// Un-completing awards nothing and retracts nothing.
	if err := s.ToggleTaskCompletion(task.ID); err != nil {
		t.Fatalf("failed to un-complete task: %v", err)
	}
	got, _ := s.GetTask(task.ID)
	if got.Completed {
		t.Error("expected task to be incomplete after second toggle")
	}
	if xp := s.Profile().XP; xp != constants.XPTaskCompleted {
		t.Errorf("expected xp to stay at %d, got %d", constants.XPTaskCompleted, xp)
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	s, _ := setupStore(t)

	task, err := s.AddTask("Project", "academics", "", models.PriorityMedium)
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	for _, name := range []string{"outline", "draft", "review"} {
		if err := s.AddSubtask(task.ID, name); err != nil {
			t.Fatalf("failed to add subtask %s: %v", name, err)
		}
	}

	got, _ := s.GetTask(task.ID)
	if len(got.Subtasks) != 3 {
		t.Fatalf("expected 3 subtasks, got %d", len(got.Subtasks))
	}
	// Insertion order is preserved.
	if got.Subtasks[0].Name != "outline" || got.Subtasks[2].Name != "review" {
		t.Errorf("unexpected subtask order: %+v", got.Subtasks)
	}

	if err := s.ToggleSubtaskCompletion(task.ID, got.Subtasks[1].ID); err != nil {
		t.Fatalf("failed to toggle subtask: %v", err)
	}
	got, _ = s.GetTask(task.ID)
	if !got.Subtasks[1].Completed {
		t.Error("expected subtask to be completed")
	}
	if xp := s.Profile().XP; xp != 0 {
		t.Errorf("subtask completion must not award xp, got %d", xp)
	}

	if err := s.DeleteSubtask(task.ID, got.Subtasks[0].ID); err != nil {
		t.Fatalf("failed to delete subtask: %v", err)
	}
	got, _ = s.GetTask(task.ID)
	if len(got.Subtasks) != 2 || got.Subtasks[0].Name != "draft" {
		t.Errorf("unexpected subtasks after delete: %+v", got.Subtasks)
	}
}

func TestSetAttendanceTransitions(t *testing.T) {
	s, _ := setupStore(t)

	entry, err := s.AddScheduleEntry(models.ScheduleEntry{
		WeekID:     "2026-12",
		CourseName: "Algorithms",
		DayOfWeek:  models.Monday,
		StartTime:  "09:00",
		EndTime:    "10:30",
	})
	if err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	date := "2026-03-16"

	// unset -> missed: no award
	if err := s.SetAttendance(entry.ID, date, models.AttendanceMissed); err != nil {
		t.Fatalf("failed to mark missed: %v", err)
	}
	if xp := s.Profile().XP; xp != 0 {
		t.Errorf("missed must not award xp, got %d", xp)
	}

	// missed -> attended: awards
	if err := s.SetAttendance(entry.ID, date, models.AttendanceAttended); err != nil {
		t.Fatalf("failed to mark attended: %v", err)
	}
	if xp := s.Profile().XP; xp != constants.XPClassAttended {
		t.Errorf("expected %d xp, got %d", constants.XPClassAttended, xp)
	}

	// attended -> attended: no repeat award
	if err := s.SetAttendance(entry.ID, date, models.AttendanceAttended); err != nil {
		t.Fatalf("failed to re-mark attended: %v", err)
	}
	if xp := s.Profile().XP; xp != constants.XPClassAttended {
		t.Errorf("re-marking attended must not award again, got %d xp", xp)
	}

	// attended -> unset: key removed
	if err := s.SetAttendance(entry.ID, date, models.AttendanceUnset); err != nil {
		t.Fatalf("failed to unmark: %v", err)
	}
	got, _ := s.GetScheduleEntry(entry.ID)
	if _, present := got.Completions[date]; present {
		t.Error("expected attendance key to be removed")
	}

	// unset -> attended after unmark: awards again
	if err := s.SetAttendance(entry.ID, date, models.AttendanceAttended); err != nil {
		t.Fatalf("failed to mark attended again: %v", err)
	}
	if xp := s.Profile().XP; xp != 2*constants.XPClassAttended {
		t.Errorf("expected %d xp after re-attend, got %d", 2*constants.XPClassAttended, xp)
	}

	// Unknown entry id is a silent no-op.
	if err := s.SetAttendance("missing", date, models.AttendanceAttended); err != nil {
		t.Errorf("expected silent no-op for unknown entry, got %v", err)
	}

	// Unknown status is rejected.
	if err := s.SetAttendance(entry.ID, date, models.AttendanceStatus("late")); err == nil {
		t.Error("expected error for unknown attendance status")
	}
}

func TestCloneWeek(t *testing.T) {
	s, _ := setupStore(t)

	first, err := s.AddScheduleEntry(models.ScheduleEntry{
		WeekID:     "2026-10",
		CourseName: "Linear Algebra",
		DayOfWeek:  models.Tuesday,
		StartTime:  "11:00",
		EndTime:    "12:30",
		Location:   "Hall B",
		Instructor: "Dr. Chen",
	})
	if err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if _, err := s.AddScheduleEntry(models.ScheduleEntry{
		WeekID:     "2026-10",
		CourseName: "Statistics",
		DayOfWeek:  models.Thursday,
		StartTime:  "14:00",
		EndTime:    "15:00",
	}); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	// Mark attendance on the source so we can verify clones start clean.
	if err := s.SetAttendance(first.ID, "2026-03-03", models.AttendanceAttended); err != nil {
		t.Fatalf("failed to set attendance: %v", err)
	}

	if err := s.CloneWeek("2026-10", "2026-11"); err != nil {
		t.Fatalf("failed to clone week: %v", err)
	}

	target := s.EntriesForWeek("2026-11")
	if len(target) != 2 {
		t.Fatalf("expected 2 cloned entries, got %d", len(target))
	}
	for _, e := range target {
		if e.ID == first.ID {
			t.Error("cloned entry reused a source id")
		}
		if len(e.Completions) != 0 {
			t.Errorf("cloned entry %s should have empty completions", e.CourseName)
		}
	}
	// Field fidelity on the cloned slot.
	linear := target[0]
	if linear.CourseName != "Linear Algebra" || linear.StartTime != "11:00" ||
		linear.Location != "Hall B" || linear.Instructor != "Dr. Chen" {
		t.Errorf("cloned entry lost fields: %+v", linear)
	}

	// A second clone onto the now-populated week must refuse outright.
	before := len(s.Schedule())
	err = s.CloneWeek("2026-10", "2026-11")
	if !errors.Is(err, ErrTargetWeekNotEmpty) {
		t.Errorf("expected ErrTargetWeekNotEmpty, got %v", err)
	}
	if after := len(s.Schedule()); after != before {
		t.Errorf("refused clone must not mutate: %d entries became %d", before, after)
	}

	// Cloning an empty source week succeeds and copies nothing.
	if err := s.CloneWeek("2026-40", "2026-41"); err != nil {
		t.Errorf("expected empty-source clone to succeed, got %v", err)
	}
	if got := len(s.EntriesForWeek("2026-41")); got != 0 {
		t.Errorf("expected no entries in target, got %d", got)
	}
}

func TestDeleteGoalCategoryGuard(t *testing.T) {
	s, _ := setupStore(t)

	category, err := s.AddGoalCategory("Fitness", models.ColorOrange)
	if err != nil {
		t.Fatalf("failed to add category: %v", err)
	}
	goal, err := s.AddGoal("Run a 10k", "Train twice a week", category.ID)
	if err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}

	before := len(s.GoalCategories())
	if err := s.DeleteGoalCategory(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Errorf("expected ErrCategoryInUse, got %v", err)
	}
	if after := len(s.GoalCategories()); after != before {
		t.Errorf("blocked delete must not mutate: %d categories became %d", before, after)
	}

	if err := s.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("failed to delete goal: %v", err)
	}
	if err := s.DeleteGoalCategory(category.ID); err != nil {
		t.Fatalf("expected unreferenced category to delete, got %v", err)
	}
	if _, ok := s.GetGoalCategory(category.ID); ok {
		t.Error("expected category to be gone")
	}
}

func TestMilestoneProgress(t *testing.T) {
	s, _ := setupStore(t)

	goal, err := s.AddGoal("Thesis", "", "academic")
	if err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}
	for _, name := range []string{"proposal", "research", "defense"} {
		if err := s.AddMilestone(goal.ID, name); err != nil {
			t.Fatalf("failed to add milestone: %v", err)
		}
	}

	got, _ := s.GetGoal(goal.ID)
	if err := s.ToggleMilestoneCompletion(goal.ID, got.Milestones[0].ID); err != nil {
		t.Fatalf("failed to toggle milestone: %v", err)
	}

	got, _ = s.GetGoal(goal.ID)
	if p := got.Progress(); p < 0.333 || p > 0.334 {
		t.Errorf("expected progress 1/3, got %f", p)
	}
}

func TestUpcomingTasks(t *testing.T) {
	s, _ := setupStore(t)
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)

	add := func(name, due string) models.Task {
		t.Helper()
		task, err := s.AddTask(name, "academics", due, models.PriorityMedium)
		if err != nil {
			t.Fatalf("failed to add task %s: %v", name, err)
		}
		return task
	}

	overdue := add("overdue", "2026-03-15")
	add("soon", "2026-03-19")
	add("this week", "2026-03-24")
	add("too far", "2026-03-30")
	done := add("already done", "2026-03-19")
	add("no due date", "")
	if err := s.ToggleTaskCompletion(done.ID); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}

	upcoming := s.UpcomingTasks(now)
	if len(upcoming) != 3 {
		t.Fatalf("expected 3 upcoming tasks, got %d", len(upcoming))
	}
	if upcoming[0].ID != overdue.ID {
		t.Errorf("expected the overdue task first, got %s", upcoming[0].Name)
	}
	for _, task := range upcoming {
		if task.Completed || task.DueDate == "" || task.DueDate > "2026-03-25" {
			t.Errorf("task %q should not be upcoming", task.Name)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	provider := storage.NewFileStore(t.TempDir())
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init provider: %v", err)
	}

	s, err := Open(provider)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	habit, err := s.AddHabit("Journaling", "pen", models.ColorTeal)
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if err := s.ToggleHabitCompletion(habit.ID, "2026-03-18"); err != nil {
		t.Fatalf("failed to toggle habit: %v", err)
	}
	if err := s.SetTheme(models.ThemeDark); err != nil {
		t.Fatalf("failed to set theme: %v", err)
	}

	// A fresh store over the same provider sees everything.
	reopened, err := Open(provider)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	got, ok := reopened.GetHabit(habit.ID)
	if !ok {
		t.Fatal("expected habit to survive a reopen")
	}
	if !got.Completions["2026-03-18"] {
		t.Error("expected completion to survive a reopen")
	}
	if xp := reopened.Profile().XP; xp != constants.XPHabitCompleted {
		t.Errorf("expected %d xp after reopen, got %d", constants.XPHabitCompleted, xp)
	}
	if reopened.Theme() != models.ThemeDark {
		t.Errorf("expected dark theme after reopen, got %s", reopened.Theme())
	}
}

func TestCorruptedValueFallsBackToDefault(t *testing.T) {
	provider := storage.NewFileStore(t.TempDir())
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init provider: %v", err)
	}
	if err := provider.Set(constants.KeyGoals, []byte("{not json")); err != nil {
		t.Fatalf("failed to plant corrupted value: %v", err)
	}
	if err := provider.Set(constants.KeySubjects, []byte("42")); err != nil {
		t.Fatalf("failed to plant corrupted value: %v", err)
	}

	s, err := Open(provider)
	if err != nil {
		t.Fatalf("corrupted values must not fail open: %v", err)
	}
	if got := len(s.Goals()); got != 0 {
		t.Errorf("expected empty goals after corruption, got %d", got)
	}
	if got := len(s.Subjects()); got != 3 {
		t.Errorf("expected seed subjects after corruption, got %d", got)
	}
}

func TestEntriesForDaySorted(t *testing.T) {
	s, _ := setupStore(t)

	for _, start := range []string{"14:00", "09:00", "11:00"} {
		if _, err := s.AddScheduleEntry(models.ScheduleEntry{
			WeekID:     "2026-12",
			CourseName: "Class at " + start,
			DayOfWeek:  models.Wednesday,
			StartTime:  start,
			EndTime:    "23:00",
		}); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	entries := s.EntriesForDay("2026-12", models.Wednesday)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"09:00", "11:00", "14:00"} {
		if entries[i].StartTime != want {
			t.Errorf("position %d: expected %s, got %s", i, want, entries[i].StartTime)
		}
	}
}

func TestAddTaskRejectsInvalidPriority(t *testing.T) {
	s, _ := setupStore(t)

	if _, err := s.AddTask("Essay", "academics", "2026-03-20", models.Priority("Urgent")); err == nil {
		t.Fatal("expected error for unknown priority")
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("task list should be unchanged, got %d entries", len(s.Tasks()))
	}
}
