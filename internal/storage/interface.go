package storage

import (
	"errors"

	"github.com/Uniqwrites1/bible-reader/internal/models"
)

// ErrNotFound is returned when a plan or progress record does not exist.
var ErrNotFound = errors.New("not found")

// Settings are the user preferences carried in the store and in snapshots.
type Settings struct {
	Translation   string `json:"translation"`
	ReminderTime  string `json:"reminder_time"` // HH:MM format
	Notifications bool   `json:"notifications"`
}

// DefaultSettings returns the settings a fresh store is initialized with.
func DefaultSettings() Settings {
	return Settings{
		Translation:   "ESV",
		ReminderTime:  "08:00",
		Notifications: false,
	}
}

// Provider is the persistence gateway for plans, progress, and settings.
// Implementations are not safe for concurrent use by multiple goroutines;
// the tool targets a single interactive session.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Plans
	SavePlan(models.ReadingPlan) error
	GetPlan(id string) (models.ReadingPlan, error)
	GetAllPlans() ([]models.ReadingPlan, error)
	DeletePlan(id string) error

	// Progress
	SaveProgress(models.ProgressRecord) error
	GetProgress(planID string) (models.ProgressRecord, error)
	GetAllProgress() ([]models.ProgressRecord, error)
	DeleteProgress(planID string) error

	// Bulk replacement, used by snapshot import. Each call atomically
	// swaps the whole corresponding store.
	ReplacePlans([]models.ReadingPlan) error
	ReplaceProgress([]models.ProgressRecord) error

	// Utils
	GetConfigPath() string
}
