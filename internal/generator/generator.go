// Package generator produces day-by-day reading schedules from the catalog.
package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/models"
)

var (
	ErrInvalidDuration = errors.New("duration must be at least 1 day")
	ErrNoSections      = errors.New("at least one section must be selected")
)

type Generator struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// cursor tracks a section's position in its book list. chapter is the next
// unscheduled chapter of the book at bookIndex.
type cursor struct {
	bookIndex int
	chapter   int
}

// Generate builds a complete reading plan. Every chapter of every selected
// section is covered exactly once over the plan's duration; each section is
// paced independently at ceil(totalChapters/duration) chapters per day.
//
// A day's reading for a section never spans a book boundary: when the target
// count would cross into the next book, the day ends at the current book's
// last chapter and the next book starts the following day. Sections may
// therefore finish before the last day; no reading is emitted for an
// exhausted section.
func (g *Generator) Generate(name string, sectionIDs []models.SectionID, duration int, startDate time.Time) (models.ReadingPlan, error) {
	if duration < 1 {
		return models.ReadingPlan{}, ErrInvalidDuration
	}
	if len(sectionIDs) == 0 {
		return models.ReadingPlan{}, ErrNoSections
	}

	selected, err := g.catalog.Normalize(sectionIDs)
	if err != nil {
		return models.ReadingPlan{}, err
	}
	if len(selected) == 0 {
		return models.ReadingPlan{}, ErrNoSections
	}

	chaptersPerDay := make(map[models.SectionID]int, len(selected))
	cursors := make(map[models.SectionID]*cursor, len(selected))
	for _, id := range selected {
		total := g.catalog.TotalChapters(id)
		chaptersPerDay[id] = (total + duration - 1) / duration
		cursors[id] = &cursor{bookIndex: 0, chapter: 1}
	}

	readings := make([]models.DailyReading, 0, duration)
	for day := 1; day <= duration; day++ {
		date := startDate.AddDate(0, 0, day-1).Format("2006-01-02")
		daily := models.DailyReading{
			Day:      day,
			Date:     date,
			Sections: make(map[models.SectionID]models.ReadingRange),
		}

		for _, id := range selected {
			sec, _ := g.catalog.Section(id)
			rng, ok := nextRange(sec, cursors[id], chaptersPerDay[id])
			if ok {
				daily.Sections[id] = rng
			}
		}

		readings = append(readings, daily)
	}

	now := time.Now().UTC()
	plan := models.ReadingPlan{
		ID:          "plan-" + uuid.NewString(),
		Name:        name,
		Description: describe(selected, duration),
		Duration:    duration,
		StartDate:   startDate.Format("2006-01-02"),
		Sections:    selected,
		Readings:    readings,
		Created:     now,
		Updated:     now,
	}
	return plan, nil
}

// nextRange takes up to target chapters from the cursor position, clipped to
// the current book, and advances the cursor. Returns false once the section
// has no material left.
func nextRange(sec catalog.Section, cur *cursor, target int) (models.ReadingRange, bool) {
	if cur.bookIndex >= len(sec.Books) {
		return models.ReadingRange{}, false
	}

	book := sec.Books[cur.bookIndex]
	start := cur.chapter
	end := start + target - 1
	if end >= book.Chapters {
		end = book.Chapters
		cur.bookIndex++
		cur.chapter = 1
	} else {
		cur.chapter = end + 1
	}

	return models.ReadingRange{
		Book:         book.Name,
		StartChapter: start,
		EndChapter:   end,
		Reference:    formatReference(book.Name, start, end),
	}, true
}

func formatReference(book string, start, end int) string {
	if start == end {
		return fmt.Sprintf("%s %d", book, start)
	}
	return fmt.Sprintf("%s %d-%d", book, start, end)
}

func describe(sections []models.SectionID, duration int) string {
	if len(sections) == len(catalog.SectionOrder) {
		return fmt.Sprintf("Read the entire Bible in %d days", duration)
	}
	names := ""
	for i, id := range sections {
		if i > 0 {
			names += ", "
		}
		names += string(id)
	}
	return fmt.Sprintf("Custom reading plan: %s in %d days", names, duration)
}
