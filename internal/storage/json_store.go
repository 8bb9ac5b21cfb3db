package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/models"
)

type Store struct {
	Version  int                              `json:"version"`
	Settings Settings                         `json:"settings"`
	Plans    map[string]models.ReadingPlan    `json:"plans"`
	Progress map[string]models.ProgressRecord `json:"progress"`
}

// JSONStore keeps everything in a single JSON document on disk. Every
// mutation rewrites the whole file.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Plans:    make(map[string]models.ReadingPlan),
		Progress: make(map[string]models.ProgressRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'bible-reader init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Plans == nil {
		s.store.Plans = make(map[string]models.ReadingPlan)
	}
	if s.store.Progress == nil {
		s.store.Progress = make(map[string]models.ProgressRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SavePlan(plan models.ReadingPlan) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Plans[plan.ID]; ok {
		plan.Updated = time.Now().UTC()
	}
	s.store.Plans[plan.ID] = plan
	return s.save()
}

func (s *JSONStore) GetPlan(id string) (models.ReadingPlan, error) {
	if s.store == nil {
		return models.ReadingPlan{}, fmt.Errorf("storage not loaded")
	}

	plan, ok := s.store.Plans[id]
	if !ok {
		return models.ReadingPlan{}, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}

	return plan, nil
}

func (s *JSONStore) GetAllPlans() ([]models.ReadingPlan, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	plans := make([]models.ReadingPlan, 0, len(s.store.Plans))
	for _, plan := range s.store.Plans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Created.Before(plans[j].Created)
	})

	return plans, nil
}

func (s *JSONStore) DeletePlan(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Plans[id]; !ok {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}

	delete(s.store.Plans, id)
	return s.save()
}

func (s *JSONStore) SaveProgress(record models.ProgressRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Progress[record.PlanID] = record
	return s.save()
}

func (s *JSONStore) GetProgress(planID string) (models.ProgressRecord, error) {
	if s.store == nil {
		return models.ProgressRecord{}, fmt.Errorf("storage not loaded")
	}

	record, ok := s.store.Progress[planID]
	if !ok {
		return models.ProgressRecord{}, fmt.Errorf("progress for plan %s: %w", planID, ErrNotFound)
	}

	return record, nil
}

func (s *JSONStore) GetAllProgress() ([]models.ProgressRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	records := make([]models.ProgressRecord, 0, len(s.store.Progress))
	for _, record := range s.store.Progress {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].PlanID < records[j].PlanID
	})

	return records, nil
}

func (s *JSONStore) DeleteProgress(planID string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Deleting an absent record is a no-op so plan deletion can always
	// cascade without checking for a ledger first.
	delete(s.store.Progress, planID)
	return s.save()
}

func (s *JSONStore) ReplacePlans(plans []models.ReadingPlan) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	replaced := make(map[string]models.ReadingPlan, len(plans))
	for _, plan := range plans {
		replaced[plan.ID] = plan
	}
	s.store.Plans = replaced
	return s.save()
}

func (s *JSONStore) ReplaceProgress(records []models.ProgressRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	replaced := make(map[string]models.ProgressRecord, len(records))
	for _, record := range records {
		replaced[record.PlanID] = record
	}
	s.store.Progress = replaced
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
