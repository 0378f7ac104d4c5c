package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/store"
	"github.com/studyhall/studyhall/internal/utils"
)

type ScheduleCmd struct {
	Add    ScheduleAddCmd    `cmd:"" help:"Add a weekly class slot."`
	List   ScheduleListCmd   `cmd:"" help:"Show a week's schedule."`
	Edit   ScheduleEditCmd   `cmd:"" help:"Edit a class slot."`
	Delete ScheduleDeleteCmd `cmd:"" help:"Delete a class slot."`
	Attend ScheduleAttendCmd `cmd:"" help:"Mark a class attended."`
	Miss   ScheduleMissCmd   `cmd:"" help:"Mark a class missed."`
	Unmark ScheduleUnmarkCmd `cmd:"" help:"Clear a class's attendance for a date."`
	Clone  ScheduleCloneCmd  `cmd:"" help:"Clone one week's slots into an empty week."`
	Week   ScheduleWeekCmd   `cmd:"" help:"Show week identifiers and date ranges."`
}

type ScheduleAddCmd struct {
	Course     string `arg:"" help:"Course name."`
	Day        string `required:"" help:"Day of week (e.g. Monday or mon)."`
	Start      string `required:"" help:"Start time (HH:MM)."`
	End        string `required:"" help:"End time (HH:MM)."`
	Week       string `help:"Week id (YYYY-W), default the current week."`
	Location   string `help:"Room or building."`
	Instructor string `help:"Instructor name."`
}

func (c *ScheduleAddCmd) Run(ctx *Context) error {
	day, err := models.ParseDayOfWeek(c.Day)
	if err != nil {
		return err
	}
	if !utils.ValidateTimeFormat(c.Start) || !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("times must be HH:MM")
	}

	weekID := c.Week
	if weekID == "" {
		weekID = utils.WeekID(time.Now())
	}

	entry, err := ctx.Store.AddScheduleEntry(models.ScheduleEntry{
		WeekID:     weekID,
		CourseName: c.Course,
		DayOfWeek:  day,
		StartTime:  c.Start,
		EndTime:    c.End,
		Location:   c.Location,
		Instructor: c.Instructor,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %s on %s %s-%s (week %s)\n", entry.CourseName, entry.DayOfWeek, entry.StartTime, entry.EndTime, entry.WeekID)
	return nil
}

type ScheduleListCmd struct {
	Week string `help:"Week id (YYYY-W), default the current week."`
}

func (c *ScheduleListCmd) Run(ctx *Context) error {
	now := time.Now()
	weekID := c.Week
	if weekID == "" {
		weekID = utils.WeekID(now)
	}
	if weekID == utils.WeekID(now) {
		fmt.Printf("Week %s: %s\n", weekID, utils.WeekDateRange(now))
	} else {
		fmt.Printf("Week %s\n", weekID)
	}

	entries := ctx.Store.EntriesForWeek(weekID)
	if len(entries) == 0 {
		fmt.Println("No classes scheduled.")
		return nil
	}

	var currentDay models.DayOfWeek
	for _, e := range entries {
		if e.DayOfWeek != currentDay {
			currentDay = e.DayOfWeek
			fmt.Printf("%s\n", currentDay)
		}
		line := fmt.Sprintf("  %s-%s  %s", e.StartTime, e.EndTime, e.CourseName)
		if e.Location != "" {
			line += fmt.Sprintf("  @ %s", e.Location)
		}
		fmt.Println(line)
	}
	return nil
}

type ScheduleEditCmd struct {
	Entry      string `arg:"" help:"Entry id or course name (current week)."`
	Week       string `help:"Week the entry lives in, default the current week."`
	Course     string `help:"New course name."`
	Day        string `help:"New day of week."`
	Start      string `help:"New start time (HH:MM)."`
	End        string `help:"New end time (HH:MM)."`
	Location   string `help:"New location."`
	Instructor string `help:"New instructor."`
}

func (c *ScheduleEditCmd) Run(ctx *Context) error {
	weekID := c.Week
	if weekID == "" {
		weekID = utils.WeekID(time.Now())
	}
	entry, err := FindScheduleEntry(ctx, c.Entry, weekID)
	if err != nil {
		return err
	}

	if c.Course != "" {
		entry.CourseName = c.Course
	}
	if c.Day != "" {
		day, err := models.ParseDayOfWeek(c.Day)
		if err != nil {
			return err
		}
		entry.DayOfWeek = day
	}
	if c.Start != "" {
		if !utils.ValidateTimeFormat(c.Start) {
			return fmt.Errorf("start time must be HH:MM")
		}
		entry.StartTime = c.Start
	}
	if c.End != "" {
		if !utils.ValidateTimeFormat(c.End) {
			return fmt.Errorf("end time must be HH:MM")
		}
		entry.EndTime = c.End
	}
	if c.Location != "" {
		entry.Location = c.Location
	}
	if c.Instructor != "" {
		entry.Instructor = c.Instructor
	}

	if err := ctx.Store.UpdateScheduleEntry(entry); err != nil {
		return err
	}
	fmt.Printf("Updated %s\n", entry.CourseName)
	return nil
}

type ScheduleDeleteCmd struct {
	Entry string `arg:"" help:"Entry id or course name (current week)."`
	Week  string `help:"Week the entry lives in, default the current week."`
}

func (c *ScheduleDeleteCmd) Run(ctx *Context) error {
	weekID := c.Week
	if weekID == "" {
		weekID = utils.WeekID(time.Now())
	}
	entry, err := FindScheduleEntry(ctx, c.Entry, weekID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteScheduleEntry(entry.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", entry.CourseName)
	return nil
}

func markAttendance(ctx *Context, ref, week, date string, status models.AttendanceStatus) error {
	weekID := week
	if weekID == "" {
		weekID = utils.WeekID(time.Now())
	}
	entry, err := FindScheduleEntry(ctx, ref, weekID)
	if err != nil {
		return err
	}

	if date == "" {
		date = utils.TodayDateString()
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	if err := ctx.Store.SetAttendance(entry.ID, date, status); err != nil {
		return err
	}

	switch status {
	case models.AttendanceUnset:
		fmt.Printf("Cleared attendance for %s on %s\n", entry.CourseName, date)
	default:
		fmt.Printf("Marked %s %s on %s\n", entry.CourseName, status, date)
	}
	return nil
}

type ScheduleAttendCmd struct {
	Entry string `arg:"" help:"Entry id or course name."`
	Week  string `help:"Week the entry lives in, default the current week."`
	Date  string `help:"Date attended (YYYY-MM-DD), default today."`
}

func (c *ScheduleAttendCmd) Run(ctx *Context) error {
	return markAttendance(ctx, c.Entry, c.Week, c.Date, models.AttendanceAttended)
}

type ScheduleMissCmd struct {
	Entry string `arg:"" help:"Entry id or course name."`
	Week  string `help:"Week the entry lives in, default the current week."`
	Date  string `help:"Date missed (YYYY-MM-DD), default today."`
}

func (c *ScheduleMissCmd) Run(ctx *Context) error {
	return markAttendance(ctx, c.Entry, c.Week, c.Date, models.AttendanceMissed)
}

type ScheduleUnmarkCmd struct {
	Entry string `arg:"" help:"Entry id or course name."`
	Week  string `help:"Week the entry lives in, default the current week."`
	Date  string `help:"Date to clear (YYYY-MM-DD), default today."`
}

func (c *ScheduleUnmarkCmd) Run(ctx *Context) error {
	return markAttendance(ctx, c.Entry, c.Week, c.Date, models.AttendanceUnset)
}

type ScheduleCloneCmd struct {
	From string `help:"Source week id, default the current week."`
	To   string `help:"Target week id, default the following week."`
}

func (c *ScheduleCloneCmd) Run(ctx *Context) error {
	now := time.Now()
	from := c.From
	if from == "" {
		from = utils.WeekID(now)
	}
	to := c.To
	if to == "" {
		to = utils.WeekID(utils.AddDays(now, 7))
	}

	if err := ctx.Store.CloneWeek(from, to); err != nil {
		if errors.Is(err, store.ErrTargetWeekNotEmpty) {
			return fmt.Errorf("week %s already has entries; cloning aborted to prevent duplicates", to)
		}
		return err
	}

	cloned := len(ctx.Store.EntriesForWeek(to))
	fmt.Printf("Cloned %d entries from week %s into week %s\n", cloned, from, to)
	return nil
}

type ScheduleWeekCmd struct {
	Offset int `help:"Weeks from now (negative for past weeks)." default:"0"`
}

func (c *ScheduleWeekCmd) Run(ctx *Context) error {
	at := utils.AddDays(time.Now(), 7*c.Offset)
	fmt.Printf("Week %s: %s\n", utils.WeekID(at), utils.WeekDateRange(at))
	return nil
}
