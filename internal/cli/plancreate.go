package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Uniqwrites1/bible-reader/internal/logger"
	"github.com/Uniqwrites1/bible-reader/internal/models"
)

type PlanCreateCmd struct {
	Name     string `short:"n" help:"Plan name."`
	Duration int    `short:"d" help:"Plan duration in days."`
	Sections string `short:"s" help:"Comma-separated sections, or 'all'." default:"all"`
	Start    string `help:"Start date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *PlanCreateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	// Missing name or duration drops into an interactive form
	if c.Name == "" || c.Duration == 0 {
		if err := c.promptForm(ctx); err != nil {
			return err
		}
	}

	sectionIDs, err := parseSections(ctx.Catalog, c.Sections)
	if err != nil {
		return err
	}
	startDate, err := parseDate(c.Start)
	if err != nil {
		return err
	}

	plan, err := ctx.Generator.Generate(c.Name, sectionIDs, c.Duration, startDate)
	if err != nil {
		return err
	}

	if err := ctx.Store.SavePlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	logger.Info("plan created", "id", plan.ID, "duration", plan.Duration, "sections", len(plan.Sections))

	fmt.Printf("Created plan %q (%s)\n", plan.Name, plan.ID)
	fmt.Printf("  %s\n", plan.Description)
	fmt.Printf("  %s to %s, %d readings\n", plan.StartDate, plan.EndDate(), plan.TotalReadings())
	return nil
}

func (c *PlanCreateCmd) promptForm(ctx *Context) error {
	var durationStr string
	selected := []models.SectionID{}
	for _, sec := range ctx.Catalog.Sections() {
		selected = append(selected, sec.ID)
	}

	options := make([]huh.Option[models.SectionID], 0, len(ctx.Catalog.Sections()))
	for _, sec := range ctx.Catalog.Sections() {
		options = append(options, huh.NewOption(sec.Name, sec.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan name").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("plan name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Duration (days)").
				Value(&durationStr).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("duration must be at least 1 day")
					}
					return nil
				}),
			huh.NewMultiSelect[models.SectionID]().
				Title("Sections").
				Options(options...).
				Value(&selected).
				Validate(func(ids []models.SectionID) error {
					if len(ids) == 0 {
						return fmt.Errorf("select at least one section")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	c.Duration = duration

	parts := make([]string, len(selected))
	for i, id := range selected {
		parts[i] = string(id)
	}
	c.Sections = strings.Join(parts, ",")
	return nil
}
