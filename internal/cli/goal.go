package cli

import (
	"fmt"

	"github.com/studyhall/studyhall/internal/models"
)

type GoalCmd struct {
	Add       GoalAddCmd       `cmd:"" help:"Add a goal."`
	List      GoalListCmd      `cmd:"" help:"List goals with progress."`
	Edit      GoalEditCmd      `cmd:"" help:"Edit a goal."`
	Delete    GoalDeleteCmd    `cmd:"" help:"Delete a goal."`
	Milestone GoalMilestoneCmd `cmd:"" help:"Manage milestones."`
}

type GoalAddCmd struct {
	Name        string `arg:"" help:"Goal name."`
	Description string `help:"Longer description."`
	Category    string `help:"Category id or name."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	categoryID := ""
	if c.Category != "" {
		category, err := FindGoalCategory(ctx, c.Category)
		if err != nil {
			return err
		}
		categoryID = category.ID
	}

	goal, err := ctx.Store.AddGoal(c.Name, c.Description, categoryID)
	if err != nil {
		return err
	}
	fmt.Printf("Added goal: %s\n", goal.Name)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	goals := ctx.Store.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals found.")
		return nil
	}
	for _, g := range goals {
		label := ""
		if category, ok := ctx.Store.GetGoalCategory(g.CategoryID); ok {
			label = fmt.Sprintf(" [%s]", category.Name)
		}
		fmt.Printf("%s%s  %.0f%% (%d milestones)\n", g.Name, label, g.Progress()*100, len(g.Milestones))
		for _, m := range g.Milestones {
			fmt.Printf("    %s %s\n", checkmark(m.Completed), m.Name)
		}
	}
	return nil
}

type GoalEditCmd struct {
	Goal        string `arg:"" help:"Goal id or name."`
	Name        string `help:"New name."`
	Description string `help:"New description."`
	Category    string `help:"New category id or name."`
}

func (c *GoalEditCmd) Run(ctx *Context) error {
	goal, err := FindGoal(ctx, c.Goal)
	if err != nil {
		return err
	}

	if c.Name != "" {
		goal.Name = c.Name
	}
	if c.Description != "" {
		goal.Description = c.Description
	}
	if c.Category != "" {
		category, err := FindGoalCategory(ctx, c.Category)
		if err != nil {
			return err
		}
		goal.CategoryID = category.ID
	}

	if err := ctx.Store.UpdateGoal(goal); err != nil {
		return err
	}
	fmt.Printf("Updated goal: %s\n", goal.Name)
	return nil
}

type GoalDeleteCmd struct {
	Goal string `arg:"" help:"Goal id or name."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	goal, err := FindGoal(ctx, c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteGoal(goal.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal: %s\n", goal.Name)
	return nil
}

type GoalMilestoneCmd struct {
	Add    MilestoneAddCmd    `cmd:"" help:"Append a milestone to a goal."`
	Toggle MilestoneToggleCmd `cmd:"" help:"Toggle a milestone."`
}

type MilestoneAddCmd struct {
	Goal string `arg:"" help:"Goal id or name."`
	Name string `arg:"" help:"Milestone name."`
}

func (c *MilestoneAddCmd) Run(ctx *Context) error {
	goal, err := FindGoal(ctx, c.Goal)
	if err != nil {
		return err
	}
	if err := ctx.Store.AddMilestone(goal.ID, c.Name); err != nil {
		return err
	}
	fmt.Printf("Added milestone to %s: %s\n", goal.Name, c.Name)
	return nil
}

type MilestoneToggleCmd struct {
	Goal      string `arg:"" help:"Goal id or name."`
	Milestone string `arg:"" help:"Milestone id or name."`
}

func (c *MilestoneToggleCmd) Run(ctx *Context) error {
	goal, err := FindGoal(ctx, c.Goal)
	if err != nil {
		return err
	}
	var milestone models.Milestone
	found := false
	for _, m := range goal.Milestones {
		if matchRef(c.Milestone, m.ID, m.Name) {
			milestone = m
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("milestone not found: %s", c.Milestone)
	}
	return ctx.Store.ToggleMilestoneCompletion(goal.ID, milestone.ID)
}
