package cli

import "fmt"

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return fmt.Errorf("failed to load plans: %w", err)
	}

	if len(plans) == 0 {
		fmt.Println("No plans yet. Create one with 'bible-reader plan create'.")
		return nil
	}

	for _, plan := range plans {
		done, err := ctx.Ledger.CompletedCount(plan.ID)
		if err != nil {
			return err
		}
		total := plan.TotalReadings()
		pct := 0
		if total > 0 {
			pct = done * 100 / total
		}
		fmt.Printf("%s  %-24s %s to %s  %d/%d readings (%d%%)\n",
			plan.ID, plan.Name, plan.StartDate, plan.EndDate(), done, total, pct)
	}
	return nil
}
