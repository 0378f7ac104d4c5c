package cli

import (
	"fmt"

	"github.com/studyhall/studyhall/internal/models"
)

type SubjectCmd struct {
	Add  SubjectAddCmd  `cmd:"" help:"Add a subject."`
	List SubjectListCmd `cmd:"" help:"List subjects."`
}

type SubjectAddCmd struct {
	Name  string `arg:"" help:"Subject name."`
	Color string `help:"Accent color." default:"blue"`
}

func (c *SubjectAddCmd) Run(ctx *Context) error {
	color, err := models.ParseColor(c.Color)
	if err != nil {
		return err
	}
	subject, err := ctx.Store.AddSubject(c.Name, color)
	if err != nil {
		return err
	}
	fmt.Printf("Added subject: %s\n", subject.Name)
	return nil
}

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *Context) error {
	subjects := ctx.Store.Subjects()
	if len(subjects) == 0 {
		fmt.Println("No subjects found.")
		return nil
	}
	for _, s := range subjects {
		open := 0
		for _, t := range ctx.Store.TasksBySubject(s.ID) {
			if !t.Completed {
				open++
			}
		}
		fmt.Printf("%s (%s)  %d open assignments\n", s.Name, s.Color, open)
	}
	return nil
}
