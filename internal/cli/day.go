package cli

import "fmt"

type DayCmd struct {
	Plan string `arg:"" help:"Plan id (or unique prefix)."`
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, err := resolvePlan(ctx, c.Plan)
	if err != nil {
		return err
	}

	date, err := parseDate(c.Date)
	if err != nil {
		return err
	}
	dateStr := date.Format("2006-01-02")

	day, ok := plan.DayFor(dateStr)
	if !ok {
		return fmt.Errorf("%s is outside plan %q (%s to %s)", dateStr, plan.Name, plan.StartDate, plan.EndDate())
	}

	daily := plan.Readings[day-1]
	fmt.Printf("%s — day %d of %d (%s):\n\n", plan.Name, day, plan.Duration, daily.Date)

	if len(daily.Sections) == 0 {
		fmt.Println("  Nothing left to read today — all sections are finished.")
		return nil
	}

	for _, sec := range ctx.Catalog.Sections() {
		rng, has := daily.Sections[sec.ID]
		if !has {
			continue
		}
		mark := "[ ]"
		complete, err := ctx.Ledger.IsComplete(plan.ID, day, sec.ID)
		if err != nil {
			return err
		}
		if complete {
			mark = "[x]"
		}
		fmt.Printf("  %s %-14s %s\n", mark, sec.Name, rng.Reference)
	}
	return nil
}
