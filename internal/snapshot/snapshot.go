// Package snapshot serializes the whole store to a portable JSON document
// and restores it. This is the only format-sensitive surface of the tool.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/models"
	"github.com/Uniqwrites1/bible-reader/internal/storage"
)

// ErrInvalidSnapshot is returned when an import payload fails to parse or
// lacks the expected shape. Nothing is applied in that case.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the export/import document. Absent keys leave the
// corresponding store untouched on import.
type Snapshot struct {
	Plans      []models.ReadingPlan     `json:"plans,omitempty"`
	Progress   []models.ProgressRecord  `json:"progress,omitempty"`
	Settings   *storage.Settings        `json:"settings,omitempty"`
	ExportedAt time.Time                `json:"exported_at"`
}

// Export serializes plans, progress, and settings from the store.
func Export(store storage.Provider) ([]byte, error) {
	plans, err := store.GetAllPlans()
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	records, err := store.GetAllProgress()
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	settings, err := store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	snap := Snapshot{
		Plans:      plans,
		Progress:   records,
		Settings:   &settings,
		ExportedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// Import parses a snapshot and replaces the stores whose keys are present,
// leaving absent ones untouched. The payload is validated wholesale before
// anything is applied; a malformed snapshot changes nothing.
func Import(store storage.Provider, data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var plans []models.ReadingPlan
	if raw, ok := keys["plans"]; ok {
		if err := json.Unmarshal(raw, &plans); err != nil {
			return fmt.Errorf("%w: malformed plans: %v", ErrInvalidSnapshot, err)
		}
		for _, plan := range plans {
			if plan.ID == "" {
				return fmt.Errorf("%w: plan with empty id", ErrInvalidSnapshot)
			}
			if plan.Duration < 1 {
				return fmt.Errorf("%w: plan %s has non-positive duration", ErrInvalidSnapshot, plan.ID)
			}
		}
	}

	var records []models.ProgressRecord
	if raw, ok := keys["progress"]; ok {
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("%w: malformed progress: %v", ErrInvalidSnapshot, err)
		}
		for _, record := range records {
			if record.PlanID == "" {
				return fmt.Errorf("%w: progress record with empty plan id", ErrInvalidSnapshot)
			}
		}
	}

	var settings *storage.Settings
	if raw, ok := keys["settings"]; ok {
		settings = &storage.Settings{}
		if err := json.Unmarshal(raw, settings); err != nil {
			return fmt.Errorf("%w: malformed settings: %v", ErrInvalidSnapshot, err)
		}
	}

	// Everything parsed; apply store by store.
	if _, ok := keys["plans"]; ok {
		if err := store.ReplacePlans(plans); err != nil {
			return fmt.Errorf("failed to import plans: %w", err)
		}
	}
	if _, ok := keys["progress"]; ok {
		if err := store.ReplaceProgress(records); err != nil {
			return fmt.Errorf("failed to import progress: %w", err)
		}
	}
	if settings != nil {
		if err := store.SaveSettings(*settings); err != nil {
			return fmt.Errorf("failed to import settings: %w", err)
		}
	}
	return nil
}
