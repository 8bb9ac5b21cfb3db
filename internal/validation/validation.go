// Package validation checks stored plans and progress against the catalog.
// It reports problems as typed conflicts rather than errors so callers can
// present them all at once.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/models"
)

type ConflictType string

const (
	ConflictDayCount       ConflictType = "day_count"
	ConflictDateSequence   ConflictType = "date_sequence"
	ConflictUnknownSection ConflictType = "unknown_section"
	ConflictUnknownBook    ConflictType = "unknown_book"
	ConflictOutOfBounds    ConflictType = "out_of_bounds"
	ConflictCoverage       ConflictType = "coverage"
	ConflictOrphanProgress ConflictType = "orphan_progress"
)

type Conflict struct {
	Type    ConflictType
	Message string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "  [%s] %s\n", c.Type, c.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

type Validator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// ValidatePlan verifies a stored plan's schedule: exactly duration days,
// sequential dates, every range within one known book's bounds, and full
// per-section coverage in book order with no gaps or duplicates.
func (v *Validator) ValidatePlan(plan models.ReadingPlan) ValidationResult {
	var conflicts []Conflict

	if len(plan.Readings) != plan.Duration {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictDayCount,
			Message: fmt.Sprintf("plan %s: %d daily readings for a %d-day duration", plan.ID, len(plan.Readings), plan.Duration),
		})
	}

	start, err := time.Parse("2006-01-02", plan.StartDate)
	if err != nil {
		conflicts = append(conflicts, Conflict{
			Type:    ConflictDateSequence,
			Message: fmt.Sprintf("plan %s: invalid start date %q", plan.ID, plan.StartDate),
		})
	} else {
		for i, daily := range plan.Readings {
			want := start.AddDate(0, 0, i).Format("2006-01-02")
			if daily.Day != i+1 || daily.Date != want {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictDateSequence,
					Message: fmt.Sprintf("plan %s: day %d has index %d, date %s (want %s)", plan.ID, i+1, daily.Day, daily.Date, want),
				})
			}
		}
	}

	conflicts = append(conflicts, v.checkBounds(plan)...)
	conflicts = append(conflicts, v.checkCoverage(plan)...)

	return ValidationResult{Conflicts: conflicts}
}

func (v *Validator) checkBounds(plan models.ReadingPlan) []Conflict {
	var conflicts []Conflict
	for _, daily := range plan.Readings {
		for id, rng := range daily.Sections {
			if _, ok := v.catalog.Section(id); !ok {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictUnknownSection,
					Message: fmt.Sprintf("day %d: unknown section %s", daily.Day, id),
				})
				continue
			}
			book, ok := v.catalog.Book(rng.Book)
			if !ok {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictUnknownBook,
					Message: fmt.Sprintf("day %d, %s: unknown book %q", daily.Day, id, rng.Book),
				})
				continue
			}
			if rng.StartChapter < 1 || rng.EndChapter > book.Chapters || rng.StartChapter > rng.EndChapter {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictOutOfBounds,
					Message: fmt.Sprintf("day %d, %s: %s %d-%d outside 1-%d", daily.Day, id, rng.Book, rng.StartChapter, rng.EndChapter, book.Chapters),
				})
			}
		}
	}
	return conflicts
}

// checkCoverage walks each selected section's ranges in day order and
// compares them against the section's full chapter sequence.
func (v *Validator) checkCoverage(plan models.ReadingPlan) []Conflict {
	var conflicts []Conflict
	for _, id := range plan.Sections {
		sec, ok := v.catalog.Section(id)
		if !ok {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictUnknownSection,
				Message: fmt.Sprintf("plan %s selects unknown section %s", plan.ID, id),
			})
			continue
		}

		bookIndex, chapter := 0, 1
		ok = true
		for _, daily := range plan.Readings {
			rng, has := daily.Sections[id]
			if !has {
				continue
			}
			if bookIndex >= len(sec.Books) ||
				rng.Book != sec.Books[bookIndex].Name ||
				rng.StartChapter != chapter {
				conflicts = append(conflicts, Conflict{
					Type: ConflictCoverage,
					Message: fmt.Sprintf("%s: day %d reads %s but expected %s %d",
						id, daily.Day, rng.Reference, bookName(sec, bookIndex), chapter),
				})
				ok = false
				break
			}
			if rng.EndChapter >= sec.Books[bookIndex].Chapters {
				bookIndex++
				chapter = 1
			} else {
				chapter = rng.EndChapter + 1
			}
		}
		if ok && bookIndex < len(sec.Books) {
			conflicts = append(conflicts, Conflict{
				Type: ConflictCoverage,
				Message: fmt.Sprintf("%s: schedule ends before %s %d",
					id, sec.Books[bookIndex].Name, chapter),
			})
		}
	}
	return conflicts
}

func bookName(sec catalog.Section, i int) string {
	if i >= len(sec.Books) {
		return "(end of section)"
	}
	return sec.Books[i].Name
}

// ValidateProgress flags completion entries that reference (day, section)
// pairs absent from the plan's schedule. Such entries are inert, not
// corrupting, so they surface as conflicts rather than hard errors.
func (v *Validator) ValidateProgress(plan models.ReadingPlan, record models.ProgressRecord) ValidationResult {
	var conflicts []Conflict
	for _, c := range record.Completed {
		if c.Day < 1 || c.Day > len(plan.Readings) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictOrphanProgress,
				Message: fmt.Sprintf("completion for day %d, %s: day outside plan", c.Day, c.SectionID),
			})
			continue
		}
		if _, ok := plan.Readings[c.Day-1].Sections[c.SectionID]; !ok {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictOrphanProgress,
				Message: fmt.Sprintf("completion for day %d, %s: no such reading in schedule", c.Day, c.SectionID),
			})
		}
	}
	return ValidationResult{Conflicts: conflicts}
}
