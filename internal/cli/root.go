package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/generator"
	"github.com/Uniqwrites1/bible-reader/internal/models"
	"github.com/Uniqwrites1/bible-reader/internal/progress"
	"github.com/Uniqwrites1/bible-reader/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Generator *generator.Generator
	Ledger    *progress.Ledger
	Catalog   *catalog.Catalog
}

func parseDate(s string) (time.Time, error) {
	if s == "today" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

func parseSections(cat *catalog.Catalog, csv string) ([]models.SectionID, error) {
	if strings.TrimSpace(csv) == "" || strings.EqualFold(csv, "all") {
		return catalog.SectionOrder, nil
	}
	var ids []models.SectionID
	for _, part := range strings.Split(csv, ",") {
		id, err := cat.ParseSectionID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// resolvePlan accepts an exact plan id or a unique prefix of one.
func resolvePlan(ctx *Context, idOrPrefix string) (models.ReadingPlan, error) {
	plan, err := ctx.Store.GetPlan(idOrPrefix)
	if err == nil {
		return plan, nil
	}

	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return models.ReadingPlan{}, err
	}
	var matches []models.ReadingPlan
	for _, p := range plans {
		if strings.HasPrefix(p.ID, idOrPrefix) || p.Name == idOrPrefix {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.ReadingPlan{}, fmt.Errorf("no plan matching %q", idOrPrefix)
	default:
		return models.ReadingPlan{}, fmt.Errorf("%q matches %d plans, use the full id", idOrPrefix, len(matches))
	}
}

func confirm(prompt string) (bool, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

func sectionName(cat *catalog.Catalog, id models.SectionID) string {
	if sec, ok := cat.Section(id); ok {
		return sec.Name
	}
	return string(id)
}
