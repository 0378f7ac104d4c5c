package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyhall/studyhall/internal/utils"
)

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *Context) error {
	profile := ctx.Store.Profile()

	fmt.Printf("%s! You're on Level %d.\n", utils.Greeting(time.Now()), profile.Level)
	fmt.Printf("XP: %d / %d\n", profile.XP, profile.XPToNextLevel)

	// Simple 20-cell progress bar toward the next level.
	filled := 0
	if profile.XPToNextLevel > 0 {
		filled = profile.XP * 20 / profile.XPToNextLevel
	}
	fmt.Printf("[%s%s]\n", strings.Repeat("#", filled), strings.Repeat("-", 20-filled))

	best := utils.BestStreak(ctx.Store.Habits(), time.Now())
	fmt.Printf("Best habit streak: %d days\n", best)
	fmt.Printf("Overall assignment progress: %.0f%%\n", ctx.Store.OverallProgress())
	return nil
}
