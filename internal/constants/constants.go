package constants

const (
	AppName           = "studyhall"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/studyhall/studyhall.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// XP awards per qualifying transition
	XPHabitCompleted = 10
	XPTaskCompleted  = 15
	XPClassAttended  = 5

	// Leveling curve: threshold = floor(XPLevelBase * XPLevelGrowth^(level-1))
	XPLevelBase   = 100
	XPLevelGrowth = 1.2

	// Dashboard upcoming-deadline window
	UpcomingTaskDays  = 7
	UpcomingTaskLimit = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "studyhall-"
)

// Storage keys. Each top-level collection persists under its own key.
const (
	KeyHabits         = "habits"
	KeyTasks          = "tasks"
	KeySubjects       = "subjects"
	KeyGoals          = "goals"
	KeyGoalCategories = "goalCategories"
	KeySchedule       = "schedule"
	KeyUserProfile    = "userProfile"
	KeyTheme          = "theme"
)
