// Package report renders a plan's schedule to a printable PDF.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/models"
)

// WritePlanPDF writes the full day-by-day schedule with completion
// checkboxes to the given path.
func WritePlanPDF(plan models.ReadingPlan, record models.ProgressRecord, cat *catalog.Catalog, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, plan.Name)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, plan.Description)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%s to %s (%d days)", plan.StartDate, plan.EndDate(), plan.Duration))
	pdf.Ln(10)

	completed := 0
	for _, daily := range plan.Readings {
		if len(daily.Sections) == 0 {
			continue
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Day %d - %s", daily.Day, daily.Date))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		// Emit sections in catalog order so the layout is stable
		for _, sec := range cat.Sections() {
			rng, ok := daily.Sections[sec.ID]
			if !ok {
				continue
			}
			box := "[ ]"
			if record.Has(daily.Day, sec.ID) {
				box = "[x]"
				completed++
			}
			pdf.Cell(0, 6, fmt.Sprintf("  %s  %s: %s", box, sec.Name, rng.Reference))
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %d of %d readings", completed, plan.TotalReadings()))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
