package utils

import (
	"fmt"
	"time"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
)

// TodayDateString returns the current local date as YYYY-MM-DD.
func TodayDateString() string {
	return time.Now().Format(constants.DateFormat)
}

// CurrentDayOfWeek returns the named weekday for the current local time.
func CurrentDayOfWeek() models.DayOfWeek {
	return models.DayOfWeekFor(time.Now().Weekday())
}

// WeekID returns the ISO-8601 week identifier "<isoYear>-<week>" for t.
// The ISO year can differ from the calendar year near year boundaries
// (the Thursday of t's week decides the year). Schedule entries are keyed
// by this string, so its output must stay stable.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%d", year, week)
}

// AddDays returns t shifted by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Monday returns the Monday of t's week at midnight in t's location.
func Monday(t time.Time) time.Time {
	day := int(t.Weekday())
	diff := 1 - day
	if day == 0 { // Sunday belongs to the week that started six days earlier
		diff = -6
	}
	m := t.AddDate(0, 0, diff)
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDateRange formats the Monday-Sunday span containing t using the
// fewest components needed: full dates with years when the week crosses a
// year boundary, "Jan 2 - 8, 2026" within one month, and
// "Jan 27 - Feb 2, 2026" across months of the same year.
func WeekDateRange(t time.Time) string {
	monday := Monday(t)
	sunday := AddDays(monday, 6)

	if monday.Year() != sunday.Year() {
		return fmt.Sprintf("%s - %s", monday.Format("Jan 2, 2006"), sunday.Format("Jan 2, 2006"))
	}
	if monday.Month() == sunday.Month() {
		return fmt.Sprintf("%s - %d, %d", monday.Format("Jan 2"), sunday.Day(), sunday.Year())
	}
	return fmt.Sprintf("%s - %s, %d", monday.Format("Jan 2"), sunday.Format("Jan 2"), t.Year())
}

// Greeting buckets t's hour into a salutation.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string
// (HH:MM) into a single time.Time in the given location.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// FormatTimeDiff renders a countdown to an upcoming event. Durations of an
// hour or more drop the seconds; anything non-positive reads as starting.
func FormatTimeDiff(d time.Duration) string {
	if d <= 0 {
		return "Starting now..."
	}

	total := int(d / time.Second)
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
