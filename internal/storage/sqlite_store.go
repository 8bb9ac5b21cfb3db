package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists plans and progress as JSON documents in SQLite rows.
// Plan schedules are immutable blobs, so they are stored whole rather than
// normalized into per-day rows; the indexed columns cover every query the
// tool makes.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS plans (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	start_date TEXT NOT NULL,
	duration   INTEGER NOT NULL,
	created    TEXT NOT NULL,
	data       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS progress (
	plan_id TEXT PRIMARY KEY,
	data    TEXT NOT NULL
);
`

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings on first initialization only
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM settings").Scan(&count); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if count == 0 {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'bible-reader init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; running it on load lets older store
	// files pick up tables added in later versions.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "translation":
			settings.Translation = value
		case "reminder_time":
			settings.ReminderTime = value
		case "notifications":
			settings.Notifications = value == "true"
		}
	}
	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	pairs := map[string]string{
		"translation":   settings.Translation,
		"reminder_time": settings.ReminderTime,
		"notifications": fmt.Sprintf("%t", settings.Notifications),
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for key, value := range pairs {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) SavePlan(plan models.ReadingPlan) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plans WHERE id = ?", plan.ID).Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		plan.Updated = time.Now().UTC()
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO plans (id, name, start_date, duration, created, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, data = excluded.data`,
		plan.ID, plan.Name, plan.StartDate, plan.Duration,
		plan.Created.Format(time.RFC3339), string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetPlan(id string) (models.ReadingPlan, error) {
	if s.db == nil {
		return models.ReadingPlan{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow("SELECT data FROM plans WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return models.ReadingPlan{}, fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.ReadingPlan{}, err
	}

	var plan models.ReadingPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return models.ReadingPlan{}, fmt.Errorf("failed to parse plan %s: %w", id, err)
	}
	return plan, nil
}

func (s *SQLiteStore) GetAllPlans() ([]models.ReadingPlan, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT data FROM plans ORDER BY created")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.ReadingPlan
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var plan models.ReadingPlan
		if err := json.Unmarshal([]byte(data), &plan); err != nil {
			return nil, fmt.Errorf("failed to parse stored plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (s *SQLiteStore) DeletePlan(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	res, err := s.db.Exec("DELETE FROM plans WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("plan %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) SaveProgress(record models.ProgressRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO progress (plan_id, data) VALUES (?, ?)
		ON CONFLICT(plan_id) DO UPDATE SET data = excluded.data`,
		record.PlanID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetProgress(planID string) (models.ProgressRecord, error) {
	if s.db == nil {
		return models.ProgressRecord{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow("SELECT data FROM progress WHERE plan_id = ?", planID).Scan(&data)
	if err == sql.ErrNoRows {
		return models.ProgressRecord{}, fmt.Errorf("progress for plan %s: %w", planID, ErrNotFound)
	}
	if err != nil {
		return models.ProgressRecord{}, err
	}

	var record models.ProgressRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return models.ProgressRecord{}, fmt.Errorf("failed to parse progress for plan %s: %w", planID, err)
	}
	return record, nil
}

func (s *SQLiteStore) GetAllProgress() ([]models.ProgressRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT data FROM progress ORDER BY plan_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ProgressRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var record models.ProgressRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to parse stored progress: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) DeleteProgress(planID string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	// No-op when absent, matching JSONStore
	_, err := s.db.Exec("DELETE FROM progress WHERE plan_id = ?", planID)
	return err
}

func (s *SQLiteStore) ReplacePlans(plans []models.ReadingPlan) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM plans"); err != nil {
		tx.Rollback()
		return err
	}
	for _, plan := range plans {
		data, err := json.Marshal(plan)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to serialize plan %s: %w", plan.ID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO plans (id, name, start_date, duration, created, data) VALUES (?, ?, ?, ?, ?, ?)",
			plan.ID, plan.Name, plan.StartDate, plan.Duration,
			plan.Created.Format(time.RFC3339), string(data),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert plan %s: %w", plan.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ReplaceProgress(records []models.ProgressRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		tx.Rollback()
		return err
	}
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to serialize progress for plan %s: %w", record.PlanID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO progress (plan_id, data) VALUES (?, ?)",
			record.PlanID, string(data),
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert progress for plan %s: %w", record.PlanID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
