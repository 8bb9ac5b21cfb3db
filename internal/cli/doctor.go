package cli

import (
	"fmt"

	"github.com/Uniqwrites1/bible-reader/internal/validation"
)

type DoctorCmd struct{}

// Run checks every stored plan's schedule and ledger against the catalog.
func (c *DoctorCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return fmt.Errorf("failed to load plans: %w", err)
	}

	validator := validation.New(ctx.Catalog)
	clean := true

	for _, plan := range plans {
		result := validator.ValidatePlan(plan)

		record, err := ctx.Ledger.Record(plan.ID)
		if err != nil {
			return err
		}
		progressResult := validator.ValidateProgress(plan, record)
		result.Conflicts = append(result.Conflicts, progressResult.Conflicts...)

		if result.HasConflicts() {
			clean = false
			fmt.Printf("Plan %q (%s):\n", plan.Name, plan.ID)
			fmt.Println(result.FormatReport())
			fmt.Println()
		}
	}

	// Progress records whose plan no longer exists
	records, err := ctx.Store.GetAllProgress()
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	known := make(map[string]bool, len(plans))
	for _, plan := range plans {
		known[plan.ID] = true
	}
	for _, record := range records {
		if !known[record.PlanID] {
			clean = false
			fmt.Printf("Progress record for missing plan %s (%d entries)\n", record.PlanID, len(record.Completed))
		}
	}

	if clean {
		fmt.Printf("Checked %d plan(s): no conflicts found.\n", len(plans))
	}
	return nil
}
