package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/studyhall/studyhall/internal/constants"
	"github.com/studyhall/studyhall/internal/models"
)

// Schedule returns every schedule entry as a copy.
func (s *Store) Schedule() []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, len(s.schedule))
	copy(entries, s.schedule)
	return entries
}

func (s *Store) findEntry(id string) int {
	for i := range s.schedule {
		if s.schedule[i].ID == id {
			return i
		}
	}
	return -1
}

// GetScheduleEntry looks up an entry by id.
func (s *Store) GetScheduleEntry(id string) (models.ScheduleEntry, bool) {
	i := s.findEntry(id)
	if i < 0 {
		return models.ScheduleEntry{}, false
	}
	return s.schedule[i], true
}

// AddScheduleEntry creates a weekly class slot. The entry's ID and
// Completions are assigned here; all other fields are taken as given.
func (s *Store) AddScheduleEntry(entry models.ScheduleEntry) (models.ScheduleEntry, error) {
	entry.ID = uuid.New().String()
	entry.Completions = make(map[string]models.AttendanceStatus)
	s.schedule = append(s.schedule, entry)
	if err := s.saveSchedule(); err != nil {
		return models.ScheduleEntry{}, err
	}
	return entry, nil
}

// UpdateScheduleEntry replaces the stored entry with the same id.
func (s *Store) UpdateScheduleEntry(entry models.ScheduleEntry) error {
	i := s.findEntry(entry.ID)
	if i < 0 {
		return nil
	}
	s.schedule[i] = entry
	return s.saveSchedule()
}

// DeleteScheduleEntry removes an entry and its attendance history.
func (s *Store) DeleteScheduleEntry(id string) error {
	i := s.findEntry(id)
	if i < 0 {
		return nil
	}
	s.schedule = append(s.schedule[:i], s.schedule[i+1:]...)
	return s.saveSchedule()
}

// SetAttendance marks one date on an entry: AttendanceUnset removes the
// date's key, any other status overwrites it. Entering attended from a
// state that was not already attended awards XP; re-marking attended does
// not. Unknown entry ids are silently ignored.
func (s *Store) SetAttendance(entryID, date string, status models.AttendanceStatus) error {
	switch status {
	case models.AttendanceUnset, models.AttendanceAttended, models.AttendanceMissed:
	default:
		return fmt.Errorf("unknown attendance status %q", status)
	}

	i := s.findEntry(entryID)
	if i < 0 {
		return nil
	}

	entry := &s.schedule[i]
	if entry.Completions == nil {
		entry.Completions = make(map[string]models.AttendanceStatus)
	}

	oldStatus := entry.Completions[date]
	if status == models.AttendanceUnset {
		delete(entry.Completions, date)
	} else {
		entry.Completions[date] = status
	}

	if err := s.saveSchedule(); err != nil {
		return err
	}

	if status == models.AttendanceAttended && oldStatus != models.AttendanceAttended {
		return s.AddXP(constants.XPClassAttended)
	}
	return nil
}

// CloneWeek copies every entry of the source week into the target week with
// fresh ids and empty attendance maps. It refuses entirely when the target
// week already has entries; there is no partial copy or per-entry merge.
func (s *Store) CloneWeek(sourceWeekID, targetWeekID string) error {
	for _, e := range s.schedule {
		if e.WeekID == targetWeekID {
			return ErrTargetWeekNotEmpty
		}
	}

	cloned := false
	for _, e := range s.schedule {
		if e.WeekID != sourceWeekID {
			continue
		}
		clone := e
		clone.ID = uuid.New().String()
		clone.WeekID = targetWeekID
		clone.Completions = make(map[string]models.AttendanceStatus)
		s.schedule = append(s.schedule, clone)
		cloned = true
	}

	if !cloned {
		return nil
	}
	return s.saveSchedule()
}

// EntriesForWeek returns the week's entries ordered by weekday then start
// time, recomputed on each call.
func (s *Store) EntriesForWeek(weekID string) []models.ScheduleEntry {
	var entries []models.ScheduleEntry
	for _, e := range s.schedule {
		if e.WeekID == weekID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		di, dj := weekdayIndex(entries[i].DayOfWeek), weekdayIndex(entries[j].DayOfWeek)
		if di != dj {
			return di < dj
		}
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries
}

// EntriesForDay returns one day's entries within a week, ordered by start
// time.
func (s *Store) EntriesForDay(weekID string, day models.DayOfWeek) []models.ScheduleEntry {
	var entries []models.ScheduleEntry
	for _, e := range s.schedule {
		if e.WeekID == weekID && e.DayOfWeek == day {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartTime < entries[j].StartTime
	})
	return entries
}

func weekdayIndex(day models.DayOfWeek) int {
	for i, d := range models.Weekdays {
		if d == day {
			return i
		}
	}
	return len(models.Weekdays)
}
