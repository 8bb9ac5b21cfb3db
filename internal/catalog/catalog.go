// Package catalog holds the canonical book and section reference data used
// by the schedule generator. The catalog is immutable after construction and
// safe to share across calls.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Uniqwrites1/bible-reader/internal/models"
)

// ErrUnknownSection is returned when a selection names a section id that is
// not in the catalog.
var ErrUnknownSection = errors.New("unknown section")

// Book is a named unit of text with a fixed chapter count.
type Book struct {
	Name     string
	Chapters int
}

// Section is one of the six fixed thematic groupings of books.
type Section struct {
	ID    models.SectionID
	Name  string
	Books []Book
}

// Catalog is the full ordered section list plus a by-name book index.
type Catalog struct {
	sections []Section
	byID     map[models.SectionID]int
	books    map[string]Book
}

// SectionOrder is the canonical scheduling order of sections.
var SectionOrder = []models.SectionID{
	models.SectionHistory,
	models.SectionPsalms,
	models.SectionWisdom,
	models.SectionProphets,
	models.SectionNewTestament,
	models.SectionRevelation,
}

// New builds a catalog from an ordered section list.
func New(sections []Section) (*Catalog, error) {
	c := &Catalog{
		sections: sections,
		byID:     make(map[models.SectionID]int, len(sections)),
		books:    make(map[string]Book),
	}
	for i, sec := range sections {
		if _, ok := c.byID[sec.ID]; ok {
			return nil, fmt.Errorf("duplicate section: %s", sec.ID)
		}
		c.byID[sec.ID] = i
		for _, b := range sec.Books {
			if b.Chapters < 1 {
				return nil, fmt.Errorf("book %q has non-positive chapter count %d", b.Name, b.Chapters)
			}
			if _, ok := c.books[b.Name]; ok {
				return nil, fmt.Errorf("book %q appears in more than one section", b.Name)
			}
			c.books[b.Name] = b
		}
	}
	return c, nil
}

// Sections returns the ordered section list.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Section looks up a section by id.
func (c *Catalog) Section(id models.SectionID) (Section, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Book looks up a book by name across all sections.
func (c *Catalog) Book(name string) (Book, bool) {
	b, ok := c.books[name]
	return b, ok
}

// TotalChapters sums the chapter counts of a section's books.
// Returns 0 for an unknown section.
func (c *Catalog) TotalChapters(id models.SectionID) int {
	sec, ok := c.Section(id)
	if !ok {
		return 0
	}
	total := 0
	for _, b := range sec.Books {
		total += b.Chapters
	}
	return total
}

// Normalize dedupes a caller-supplied selection and reorders it to canonical
// catalog order. Caller order is never significant for scheduling.
func (c *Catalog) Normalize(ids []models.SectionID) ([]models.SectionID, error) {
	seen := make(map[models.SectionID]bool, len(ids))
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, id)
		}
		seen[id] = true
	}
	out := make([]models.SectionID, 0, len(seen))
	for _, sec := range c.sections {
		if seen[sec.ID] {
			out = append(out, sec.ID)
		}
	}
	return out, nil
}

// ParseSectionID resolves a user-supplied section name to its id.
func (c *Catalog) ParseSectionID(s string) (models.SectionID, error) {
	id := models.SectionID(s)
	if _, ok := c.byID[id]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q (valid: history, psalms, wisdom, prophets, newTestament, revelation)", ErrUnknownSection, s)
}
