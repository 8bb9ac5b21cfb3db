package cli

import "fmt"

type PlanShowCmd struct {
	ID string `arg:"" help:"Plan id (or unique prefix)."`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, err := resolvePlan(ctx, c.ID)
	if err != nil {
		return err
	}

	done, err := ctx.Ledger.CompletedCount(plan.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", plan.Name, plan.ID)
	fmt.Printf("  %s\n", plan.Description)
	fmt.Printf("  %s to %s (%d days)\n", plan.StartDate, plan.EndDate(), plan.Duration)
	fmt.Printf("  Progress: %d/%d readings\n", done, plan.TotalReadings())
	fmt.Println("  Sections:")
	for _, id := range plan.Sections {
		sec, ok := ctx.Catalog.Section(id)
		if !ok {
			continue
		}
		fmt.Printf("    %-14s %d books, %d chapters\n",
			sec.Name, len(sec.Books), ctx.Catalog.TotalChapters(id))
	}
	return nil
}
