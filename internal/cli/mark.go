package cli

import (
	"fmt"

	"github.com/Uniqwrites1/bible-reader/internal/logger"
)

type MarkCmd struct {
	Plan    string `arg:"" help:"Plan id (or unique prefix)."`
	Day     int    `arg:"" help:"Day number (1-based)."`
	Section string `arg:"" help:"Section id."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	return mark(ctx, c.Plan, c.Day, c.Section, true)
}

type UnmarkCmd struct {
	Plan    string `arg:"" help:"Plan id (or unique prefix)."`
	Day     int    `arg:"" help:"Day number (1-based)."`
	Section string `arg:"" help:"Section id."`
}

func (c *UnmarkCmd) Run(ctx *Context) error {
	return mark(ctx, c.Plan, c.Day, c.Section, false)
}

func mark(ctx *Context, planRef string, day int, section string, complete bool) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, err := resolvePlan(ctx, planRef)
	if err != nil {
		return err
	}
	sectionID, err := ctx.Catalog.ParseSectionID(section)
	if err != nil {
		return err
	}
	if day < 1 || day > plan.Duration {
		return fmt.Errorf("day %d is outside plan %q (1-%d)", day, plan.Name, plan.Duration)
	}
	if _, ok := plan.Readings[day-1].Sections[sectionID]; !ok {
		return fmt.Errorf("plan %q has no %s reading on day %d", plan.Name, sectionID, day)
	}

	if complete {
		err = ctx.Ledger.MarkComplete(plan.ID, day, sectionID)
	} else {
		err = ctx.Ledger.MarkIncomplete(plan.ID, day, sectionID)
	}
	if err != nil {
		return err
	}
	logger.Debug("reading marked", "plan", plan.ID, "day", day, "section", sectionID, "complete", complete)

	state := "complete"
	if !complete {
		state = "incomplete"
	}
	fmt.Printf("Marked day %d %s %s for %q\n", day, sectionName(ctx.Catalog, sectionID), state, plan.Name)
	return nil
}
