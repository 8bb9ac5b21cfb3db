package cli

import (
	"fmt"

	"github.com/Uniqwrites1/bible-reader/internal/logger"
)

type PlanDeleteCmd struct {
	ID  string `arg:"" help:"Plan id (or unique prefix)."`
	Yes bool   `short:"y" help:"Skip confirmation."`
}

func (c *PlanDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, err := resolvePlan(ctx, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete plan %q and its progress? [y/N]: ", plan.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeletePlan(plan.ID); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	// Progress is owned by the plan; deleting the plan destroys its ledger
	if err := ctx.Ledger.DeleteAll(plan.ID); err != nil {
		return fmt.Errorf("plan deleted but progress cleanup failed: %w", err)
	}
	logger.Info("plan deleted", "id", plan.ID)

	fmt.Printf("Deleted plan %q\n", plan.Name)
	return nil
}
