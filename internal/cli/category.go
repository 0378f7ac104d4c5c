package cli

import (
	"fmt"

	"github.com/studyhall/studyhall/internal/models"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a goal category."`
	List   CategoryListCmd   `cmd:"" help:"List goal categories."`
	Edit   CategoryEditCmd   `cmd:"" help:"Edit a goal category."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete an unused goal category."`
}

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Accent color." default:"blue"`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	color, err := models.ParseColor(c.Color)
	if err != nil {
		return err
	}
	category, err := ctx.Store.AddGoalCategory(c.Name, color)
	if err != nil {
		return err
	}
	fmt.Printf("Added category: %s\n", category.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	categories := ctx.Store.GoalCategories()
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}
	for _, cat := range categories {
		inUse := 0
		for _, g := range ctx.Store.Goals() {
			if g.CategoryID == cat.ID {
				inUse++
			}
		}
		fmt.Printf("%s (%s)  %d goals\n", cat.Name, cat.Color, inUse)
	}
	return nil
}

type CategoryEditCmd struct {
	Category string `arg:"" help:"Category id or name."`
	Name     string `help:"New name."`
	Color    string `help:"New accent color."`
}

func (c *CategoryEditCmd) Run(ctx *Context) error {
	category, err := FindGoalCategory(ctx, c.Category)
	if err != nil {
		return err
	}

	if c.Name != "" {
		category.Name = c.Name
	}
	if c.Color != "" {
		color, err := models.ParseColor(c.Color)
		if err != nil {
			return err
		}
		category.Color = color
	}

	if err := ctx.Store.UpdateGoalCategory(category); err != nil {
		return err
	}
	fmt.Printf("Updated category: %s\n", category.Name)
	return nil
}

type CategoryDeleteCmd struct {
	Category string `arg:"" help:"Category id or name."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	category, err := FindGoalCategory(ctx, c.Category)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteGoalCategory(category.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted category: %s\n", category.Name)
	return nil
}
