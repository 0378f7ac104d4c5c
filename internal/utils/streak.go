package utils

import (
	"sort"
	"time"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
)

// CalculateStreak returns the habit's current streak: the number of
// consecutive completed calendar days ending today or yesterday.
func CalculateStreak(habit models.Habit) int {
	return StreakOn(habit, time.Now())
}

// StreakOn computes the streak as of the given reference time. A streak
// survives an incomplete "today" as long as yesterday was completed; once
// the most recent completion is two or more days old the streak is 0
// regardless of history.
func StreakOn(habit models.Habit, ref time.Time) int {
	dates := make([]string, 0, len(habit.Completions))
	for date, done := range habit.Completions {
		if done {
			dates = append(dates, date)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	// YYYY-MM-DD strings order the same lexically as chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := ref.Format(constants.DateFormat)
	yesterday := ref.AddDate(0, 0, -1).Format(constants.DateFormat)

	streak := 0
	cursor := ref
	switch dates[0] {
	case today:
		streak = 1
		cursor = cursor.AddDate(0, 0, -1)
	case yesterday:
		cursor = cursor.AddDate(0, 0, -1)
	default:
		return 0
	}

	// When today seeded the streak, dates[0] is already counted; otherwise
	// the scan starts at dates[0], which is yesterday.
	i := 0
	if streak > 0 {
		i = 1
	}
	for ; i < len(dates); i++ {
		if dates[i] != cursor.Format(constants.DateFormat) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// BestStreak returns the highest current streak across habits as of ref.
func BestStreak(habits []models.Habit, ref time.Time) int {
	best := 0
	for _, h := range habits {
		if s := StreakOn(h, ref); s > best {
			best = s
		}
	}
	return best
}
