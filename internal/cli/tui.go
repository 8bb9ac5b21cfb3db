package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Uniqwrites1/bible-reader/internal/tui"
)

type TuiCmd struct {
	Plan string `arg:"" optional:"" help:"Plan id (defaults to the most recent plan)."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	var planRef string
	if c.Plan != "" {
		planRef = c.Plan
	} else {
		plans, err := ctx.Store.GetAllPlans()
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			return fmt.Errorf("no plans yet, create one with 'bible-reader plan create'")
		}
		planRef = plans[len(plans)-1].ID
	}

	plan, err := resolvePlan(ctx, planRef)
	if err != nil {
		return err
	}

	model := tui.NewModel(plan, ctx.Ledger, ctx.Catalog)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
