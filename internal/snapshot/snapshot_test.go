package snapshot

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/generator"
	"github.com/Uniqwrites1/bible-reader/internal/models"
	"github.com/Uniqwrites1/bible-reader/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func seedStore(t *testing.T, store storage.Provider) models.ReadingPlan {
	t.Helper()
	gen := generator.New(catalog.Default())
	plan, err := gen.Generate("seed", []models.SectionID{models.SectionWisdom}, 10,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := store.SavePlan(plan); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	record := models.ProgressRecord{
		PlanID: plan.ID,
		Completed: []models.CompletedReading{
			{Day: 1, SectionID: models.SectionWisdom, CompletedAt: time.Date(2026, 1, 1, 21, 0, 0, 0, time.UTC)},
		},
	}
	if err := store.SaveProgress(record); err != nil {
		t.Fatalf("SaveProgress failed: %v", err)
	}
	if err := store.SaveSettings(storage.Settings{Translation: "KJV", ReminderTime: "07:00", Notifications: true}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	return plan
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	plan := seedStore(t, src)

	data, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := newTestStore(t)
	if err := Import(dst, data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	got, err := dst.GetPlan(plan.ID)
	if err != nil {
		t.Fatalf("plan missing after import: %v", err)
	}
	if got.Name != plan.Name || len(got.Readings) != len(plan.Readings) {
		t.Errorf("imported plan differs: %+v", got)
	}
	for i := range plan.Readings {
		for id, want := range plan.Readings[i].Sections {
			if got.Readings[i].Sections[id] != want {
				t.Errorf("day %d, %s: schedule changed across round-trip", i+1, id)
			}
		}
	}

	record, err := dst.GetProgress(plan.ID)
	if err != nil {
		t.Fatalf("progress missing after import: %v", err)
	}
	if !record.Has(1, models.SectionWisdom) {
		t.Error("completion lost across round-trip")
	}

	settings, err := dst.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Translation != "KJV" || settings.ReminderTime != "07:00" || !settings.Notifications {
		t.Errorf("settings lost across round-trip: %+v", settings)
	}
}

func TestImportReplacesExistingData(t *testing.T) {
	src := newTestStore(t)
	plan := seedStore(t, src)
	data, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := newTestStore(t)
	seedStore(t, dst) // different plan id, will be replaced
	if err := Import(dst, data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	plans, err := dst.GetAllPlans()
	if err != nil {
		t.Fatalf("GetAllPlans failed: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != plan.ID {
		t.Errorf("import should replace, not merge: %d plans", len(plans))
	}
}

func TestImportAbsentKeysLeaveStoresUntouched(t *testing.T) {
	store := newTestStore(t)
	plan := seedStore(t, store)

	// Only settings present: plans and progress must survive.
	payload := []byte(`{"settings":{"translation":"NIV","reminder_time":"09:00","notifications":false}}`)
	if err := Import(store, payload); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if _, err := store.GetPlan(plan.ID); err != nil {
		t.Errorf("plan lost on settings-only import: %v", err)
	}
	if _, err := store.GetProgress(plan.ID); err != nil {
		t.Errorf("progress lost on settings-only import: %v", err)
	}
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Translation != "NIV" {
		t.Errorf("settings not applied: %+v", settings)
	}
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `{{{`},
		{"plans not a list", `{"plans":{"id":"x"}}`},
		{"plan missing id", `{"plans":[{"name":"x","duration":10}]}`},
		{"plan bad duration", `{"plans":[{"id":"p","name":"x","duration":0}]}`},
		{"progress missing plan id", `{"progress":[{"completed":[]}]}`},
		{"settings wrong shape", `{"settings":[1,2,3]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := newTestStore(t)
			plan := seedStore(t, store)

			err := Import(store, []byte(c.payload))
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Fatalf("got %v, want ErrInvalidSnapshot", err)
			}

			// Nothing was applied
			if _, err := store.GetPlan(plan.ID); err != nil {
				t.Errorf("plan lost after rejected import: %v", err)
			}
			if _, err := store.GetProgress(plan.ID); err != nil {
				t.Errorf("progress lost after rejected import: %v", err)
			}
		})
	}
}

func TestImportValidatesBeforeApplying(t *testing.T) {
	// Valid plans key but invalid progress key: neither may be applied.
	store := newTestStore(t)
	plan := seedStore(t, store)

	payload := `{"plans":[{"id":"new-plan","name":"n","duration":5}],"progress":[{"completed":[]}]}`
	if err := Import(store, []byte(payload)); !errors.Is(err, ErrInvalidSnapshot) {
		t.Fatalf("got %v, want ErrInvalidSnapshot", err)
	}

	if _, err := store.GetPlan("new-plan"); !errors.Is(err, storage.ErrNotFound) {
		t.Error("plans applied despite invalid progress in same payload")
	}
	if _, err := store.GetPlan(plan.ID); err != nil {
		t.Errorf("existing plan lost: %v", err)
	}
}

func TestExportShape(t *testing.T) {
	store := newTestStore(t)
	seedStore(t, store)

	data, err := Export(store)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"plans", "progress", "settings", "exported_at"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("export missing %q key", key)
		}
	}
}
