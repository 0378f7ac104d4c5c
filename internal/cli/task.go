package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/studyhall/studyhall/internal/models"
	"github.com/studyhall/studyhall/internal/utils"
)

type TaskCmd struct {
	Add     TaskAddCmd     `cmd:"" help:"Add a new assignment."`
	List    TaskListCmd    `cmd:"" help:"List assignments."`
	Toggle  TaskToggleCmd  `cmd:"" help:"Toggle an assignment's completion."`
	Edit    TaskEditCmd    `cmd:"" help:"Edit an assignment."`
	Delete  TaskDeleteCmd  `cmd:"" help:"Delete an assignment."`
	Subtask TaskSubtaskCmd `cmd:"" help:"Manage subtasks."`
}

type TaskAddCmd struct {
	Name     string `arg:"" optional:"" help:"Assignment name. Omit to fill in a form."`
	Subject  string `help:"Subject id or name."`
	Due      string `help:"Due date (YYYY-MM-DD)."`
	Priority string `help:"Priority: Low, Medium, or High." default:"Medium"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if c.Name == "" {
		if err := c.promptForm(ctx); err != nil {
			return err
		}
	}

	priority, err := ParsePriority(c.Priority)
	if err != nil {
		return err
	}
	if c.Due != "" && !utils.ValidateDateFormat(c.Due) {
		return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", c.Due)
	}

	subjectID := ""
	if c.Subject != "" {
		subject, err := FindSubject(ctx, c.Subject)
		if err != nil {
			return err
		}
		subjectID = subject.ID
	}

	task, err := ctx.Store.AddTask(c.Name, subjectID, c.Due, priority)
	if err != nil {
		return err
	}
	fmt.Printf("Added assignment: %s\n", task.Name)
	return nil
}

// promptForm collects the task fields interactively when no name was given.
func (c *TaskAddCmd) promptForm(ctx *Context) error {
	subjects := ctx.Store.Subjects()
	subjectOptions := make([]huh.Option[string], 0, len(subjects)+1)
	subjectOptions = append(subjectOptions, huh.NewOption("(none)", ""))
	for _, s := range subjects {
		subjectOptions = append(subjectOptions, huh.NewOption(s.Name, s.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Assignment name").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}).
				Value(&c.Name),
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOptions...).
				Value(&c.Subject),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(models.PriorityLow)),
					huh.NewOption("Medium", string(models.PriorityMedium)),
					huh.NewOption("High", string(models.PriorityHigh)),
				).
				Value(&c.Priority),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, optional)").
				Validate(func(s string) error {
					if s != "" && !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}).
				Value(&c.Due),
		),
	)
	return form.Run()
}

type TaskListCmd struct {
	Subject string `help:"Only show assignments for this subject."`
	All     bool   `help:"Include completed assignments."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	var tasks []models.Task
	if c.Subject != "" {
		subject, err := FindSubject(ctx, c.Subject)
		if err != nil {
			return err
		}
		tasks = ctx.Store.TasksBySubject(subject.ID)
	} else {
		tasks = ctx.Store.Tasks()
	}

	shown := 0
	for _, t := range tasks {
		if t.Completed && !c.All {
			continue
		}
		line := fmt.Sprintf("%s %s", checkmark(t.Completed), t.Name)
		if t.DueDate != "" {
			line += fmt.Sprintf("  due %s", t.DueDate)
		}
		line += fmt.Sprintf("  [%s]", t.Priority)
		fmt.Println(line)
		for _, st := range t.Subtasks {
			fmt.Printf("    %s %s\n", checkmark(st.Completed), st.Name)
		}
		shown++
	}
	if shown == 0 {
		fmt.Println("No assignments found.")
	}
	return nil
}

type TaskToggleCmd struct {
	Task string `arg:"" help:"Assignment id or name."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}
	if err := ctx.Store.ToggleTaskCompletion(task.ID); err != nil {
		return err
	}

	updated, _ := ctx.Store.GetTask(task.ID)
	if updated.Completed {
		fmt.Printf("Completed: %s\n", task.Name)
	} else {
		fmt.Printf("Reopened: %s\n", task.Name)
	}
	return nil
}

type TaskEditCmd struct {
	Task     string `arg:"" help:"Assignment id or name."`
	Name     string `help:"New name."`
	Subject  string `help:"New subject id or name."`
	Due      string `help:"New due date (YYYY-MM-DD)."`
	Priority string `help:"New priority."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}

	if c.Name != "" {
		task.Name = c.Name
	}
	if c.Subject != "" {
		subject, err := FindSubject(ctx, c.Subject)
		if err != nil {
			return err
		}
		task.SubjectID = subject.ID
	}
	if c.Due != "" {
		if !utils.ValidateDateFormat(c.Due) {
			return fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", c.Due)
		}
		task.DueDate = c.Due
	}
	if c.Priority != "" {
		priority, err := ParsePriority(c.Priority)
		if err != nil {
			return err
		}
		task.Priority = priority
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Updated assignment: %s\n", task.Name)
	return nil
}

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Assignment id or name."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted assignment: %s\n", task.Name)
	return nil
}

type TaskSubtaskCmd struct {
	Add    SubtaskAddCmd    `cmd:"" help:"Append a subtask to an assignment."`
	Toggle SubtaskToggleCmd `cmd:"" help:"Toggle a subtask."`
	Delete SubtaskDeleteCmd `cmd:"" help:"Delete a subtask."`
}

type SubtaskAddCmd struct {
	Task string `arg:"" help:"Assignment id or name."`
	Name string `arg:"" help:"Subtask name."`
}

func (c *SubtaskAddCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}
	if err := ctx.Store.AddSubtask(task.ID, c.Name); err != nil {
		return err
	}
	fmt.Printf("Added subtask to %s: %s\n", task.Name, c.Name)
	return nil
}

func findSubtask(task models.Task, ref string) (models.Subtask, error) {
	for _, st := range task.Subtasks {
		if matchRef(ref, st.ID, st.Name) {
			return st, nil
		}
	}
	return models.Subtask{}, fmt.Errorf("subtask not found: %s", ref)
}

type SubtaskToggleCmd struct {
	Task    string `arg:"" help:"Assignment id or name."`
	Subtask string `arg:"" help:"Subtask id or name."`
}

func (c *SubtaskToggleCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}
	subtask, err := findSubtask(task, c.Subtask)
	if err != nil {
		return err
	}
	return ctx.Store.ToggleSubtaskCompletion(task.ID, subtask.ID)
}

type SubtaskDeleteCmd struct {
	Task    string `arg:"" help:"Assignment id or name."`
	Subtask string `arg:"" help:"Subtask id or name."`
}

func (c *SubtaskDeleteCmd) Run(ctx *Context) error {
	task, err := FindTask(ctx, c.Task)
	if err != nil {
		return err
	}
	subtask, err := findSubtask(task, c.Subtask)
	if err != nil {
		return err
	}
	return ctx.Store.DeleteSubtask(task.ID, subtask.ID)
}
