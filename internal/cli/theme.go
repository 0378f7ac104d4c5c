package cli

import (
	"fmt"

	"github.com/studyhall/studyhall/internal/models"
)

type ThemeCmd struct {
	Get ThemeGetCmd `cmd:"" help:"Show the stored theme preference." default:"1"`
	Set ThemeSetCmd `cmd:"" help:"Set the theme preference."`
}

type ThemeGetCmd struct{}

func (c *ThemeGetCmd) Run(ctx *Context) error {
	fmt.Println(ctx.Store.Theme())
	return nil
}

type ThemeSetCmd struct {
	Theme string `arg:"" help:"One of light, dark, or system."`
}

func (c *ThemeSetCmd) Run(ctx *Context) error {
	theme, err := models.ParseTheme(c.Theme)
	if err != nil {
		return err
	}
	if err := ctx.Store.SetTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", theme)
	return nil
}
