// Package progress tracks per-day, per-section reading completion.
package progress

import (
	"errors"
	"fmt"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/models"
	"github.com/Uniqwrites1/bible-reader/internal/storage"
)

// Ledger records which readings of a plan have been completed. It is
// index-agnostic: it does not check (day, section) pairs against the plan's
// schedule, so callers must pass pairs drawn from the plan's daily readings.
// Out-of-range entries are inert rather than rejected.
type Ledger struct {
	store storage.Provider
	now   func() time.Time
}

func NewLedger(store storage.Provider) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// record loads the plan's progress, or an empty record when none exists yet.
func (l *Ledger) record(planID string) (models.ProgressRecord, error) {
	rec, err := l.store.GetProgress(planID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ProgressRecord{PlanID: planID}, nil
	}
	if err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to load progress: %w", err)
	}
	return rec, nil
}

// MarkComplete adds a completion entry for (day, section). Completing an
// already-complete reading is a no-op and does not touch the store.
func (l *Ledger) MarkComplete(planID string, day int, sectionID models.SectionID) error {
	rec, err := l.record(planID)
	if err != nil {
		return err
	}
	if rec.Has(day, sectionID) {
		return nil
	}

	rec.Completed = append(rec.Completed, models.CompletedReading{
		Day:         day,
		SectionID:   sectionID,
		CompletedAt: l.now().UTC(),
	})
	return l.store.SaveProgress(rec)
}

// MarkIncomplete removes the completion entry for (day, section).
// Removing an absent entry is a no-op.
func (l *Ledger) MarkIncomplete(planID string, day int, sectionID models.SectionID) error {
	rec, err := l.record(planID)
	if err != nil {
		return err
	}
	if !rec.Has(day, sectionID) {
		return nil
	}

	kept := make([]models.CompletedReading, 0, len(rec.Completed)-1)
	for _, c := range rec.Completed {
		if c.Day != day || c.SectionID != sectionID {
			kept = append(kept, c)
		}
	}
	rec.Completed = kept
	return l.store.SaveProgress(rec)
}

// IsComplete reports whether (day, section) is marked complete.
func (l *Ledger) IsComplete(planID string, day int, sectionID models.SectionID) (bool, error) {
	rec, err := l.record(planID)
	if err != nil {
		return false, err
	}
	return rec.Has(day, sectionID), nil
}

// CompletedCount returns how many readings of the plan are complete.
func (l *Ledger) CompletedCount(planID string) (int, error) {
	rec, err := l.record(planID)
	if err != nil {
		return 0, err
	}
	return len(rec.Completed), nil
}

// Record returns the plan's full progress record, empty when none exists.
func (l *Ledger) Record(planID string) (models.ProgressRecord, error) {
	return l.record(planID)
}

// DeleteAll removes the plan's whole progress record. Called when the
// owning plan is deleted.
func (l *Ledger) DeleteAll(planID string) error {
	return l.store.DeleteProgress(planID)
}
