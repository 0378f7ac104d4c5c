package models

import (
	"fmt"
	"strings"
	"time"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "Sunday"
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
)

// Weekdays is ordered by time.Weekday index (0 = Sunday).
var Weekdays = [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOfWeekFor maps a time.Weekday to its named day.
func DayOfWeekFor(wd time.Weekday) DayOfWeek {
	return Weekdays[int(wd)]
}

// ParseDayOfWeek accepts full or three-letter day names, case-insensitively.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	lower := strings.ToLower(s)
	for _, d := range Weekdays {
		full := strings.ToLower(string(d))
		if lower == full || (len(lower) == 3 && lower == full[:3]) {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

// AttendanceStatus is the per-date marker on a schedule entry. The zero
// value means unset; unset is never stored in a completion map.
type AttendanceStatus string

const (
	AttendanceUnset    AttendanceStatus = ""
	AttendanceAttended AttendanceStatus = "attended"
	AttendanceMissed   AttendanceStatus = "missed"
)

// ScheduleEntry is one weekly recurring class slot, grouped into calendar
// weeks by WeekID (ISO-week "<year>-<week>" strings).
type ScheduleEntry struct {
	ID          string                      `json:"id"`
	WeekID      string                      `json:"week_id"`
	CourseName  string                      `json:"course_name"`
	DayOfWeek   DayOfWeek                   `json:"day_of_week"`
	StartTime   string                      `json:"start_time"` // HH:MM format
	EndTime     string                      `json:"end_time"`   // HH:MM format
	Location    string                      `json:"location,omitempty"`
	Instructor  string                      `json:"instructor,omitempty"`
	Completions map[string]AttendanceStatus `json:"completions"` // YYYY-MM-DD -> attended|missed
}
