package cli

import (
	"fmt"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with current streaks."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a date."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
}

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Icon  string `help:"Icon label shown in lists." default:"spark"`
	Color string `help:"Accent color." default:"blue"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	color, err := models.ParseColor(c.Color)
	if err != nil {
		return err
	}

	habit, err := ctx.Store.AddHabit(c.Name, c.Icon, color)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one to start building streaks.")
		return nil
	}

	today := utils.TodayDateString()
	for _, h := range habits {
		streak := utils.CalculateStreak(h)
		streakLabel := ""
		if streak > 0 {
			streakLabel = fmt.Sprintf("  (%d day streak)", streak)
		}
		fmt.Printf("%s %s%s\n", checkmark(h.Completions[today]), h.Name, streakLabel)
	}
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Date  string `help:"Date to toggle (YYYY-MM-DD), default today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.TodayDateString()
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	if err := ctx.Store.ToggleHabitCompletion(habit.ID, date); err != nil {
		return err
	}

	updated, _ := ctx.Store.GetHabit(habit.ID)
	if updated.Completions[date] {
		fmt.Printf("Completed %s for %s\n", habit.Name, date)
	} else {
		fmt.Printf("Unmarked %s for %s\n", habit.Name, date)
	}
	return nil
}

type HabitEditCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
	Name  string `help:"New name."`
	Icon  string `help:"New icon label."`
	Color string `help:"New accent color."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}

	if c.Name != "" {
		habit.Name = c.Name
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}
	if c.Color != "" {
		color, err := models.ParseColor(c.Color)
		if err != nil {
			return err
		}
		habit.Color = color
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id or name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := FindHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
