package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studyhall/studyhall/internal/tui"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.New(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
