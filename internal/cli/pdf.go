package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Uniqwrites1/bible-reader/internal/report"
)

type PlanPdfCmd struct {
	ID  string `arg:"" help:"Plan id (or unique prefix)."`
	Out string `short:"o" help:"Output file (defaults to <plan-name>.pdf)."`
}

func (c *PlanPdfCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	plan, err := resolvePlan(ctx, c.ID)
	if err != nil {
		return err
	}
	record, err := ctx.Ledger.Record(plan.ID)
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = plan.Name + ".pdf"
	}

	if err := report.WritePlanPDF(plan, record, ctx.Catalog, out); err != nil {
		return err
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	fmt.Printf("PDF written: %s\n", abs)
	return nil
}
