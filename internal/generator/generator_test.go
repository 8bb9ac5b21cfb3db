package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/Uniqwrites1/bible-reader/internal/catalog"
	"github.com/Uniqwrites1/bible-reader/internal/models"
)

func mustGenerate(t *testing.T, sections []models.SectionID, duration int) models.ReadingPlan {
	t.Helper()
	gen := New(catalog.Default())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	plan, err := gen.Generate("test plan", sections, duration, start)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return plan
}

func TestGenerate_WisdomScenario(t *testing.T) {
	// Wisdom is 51 chapters over 10 days: 6 per day, no range crossing a
	// book boundary, uneven chunks at book ends.
	plan := mustGenerate(t, []models.SectionID{models.SectionWisdom}, 10)

	expected := []models.ReadingRange{
		{Book: "Proverbs", StartChapter: 1, EndChapter: 6, Reference: "Proverbs 1-6"},
		{Book: "Proverbs", StartChapter: 7, EndChapter: 12, Reference: "Proverbs 7-12"},
		{Book: "Proverbs", StartChapter: 13, EndChapter: 18, Reference: "Proverbs 13-18"},
		{Book: "Proverbs", StartChapter: 19, EndChapter: 24, Reference: "Proverbs 19-24"},
		{Book: "Proverbs", StartChapter: 25, EndChapter: 30, Reference: "Proverbs 25-30"},
		{Book: "Proverbs", StartChapter: 31, EndChapter: 31, Reference: "Proverbs 31"},
		{Book: "Ecclesiastes", StartChapter: 1, EndChapter: 6, Reference: "Ecclesiastes 1-6"},
		{Book: "Ecclesiastes", StartChapter: 7, EndChapter: 12, Reference: "Ecclesiastes 7-12"},
		{Book: "Song of Songs", StartChapter: 1, EndChapter: 6, Reference: "Song of Songs 1-6"},
		{Book: "Song of Songs", StartChapter: 7, EndChapter: 8, Reference: "Song of Songs 7-8"},
	}

	if len(plan.Readings) != 10 {
		t.Fatalf("expected 10 daily readings, got %d", len(plan.Readings))
	}
	for i, want := range expected {
		got, ok := plan.Readings[i].Sections[models.SectionWisdom]
		if !ok {
			t.Fatalf("day %d: no wisdom reading", i+1)
		}
		if got != want {
			t.Errorf("day %d: got %+v, want %+v", i+1, got, want)
		}
	}
}

func TestGenerate_DayCountAndDates(t *testing.T) {
	plan := mustGenerate(t, catalog.SectionOrder, 90)

	if len(plan.Readings) != 90 {
		t.Fatalf("expected 90 daily readings, got %d", len(plan.Readings))
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, daily := range plan.Readings {
		if daily.Day != i+1 {
			t.Errorf("reading %d has day index %d", i, daily.Day)
		}
		want := start.AddDate(0, 0, i).Format("2006-01-02")
		if daily.Date != want {
			t.Errorf("day %d: date %s, want %s", daily.Day, daily.Date, want)
		}
	}
}

// checkCoverage verifies that a section's ranges, concatenated in day order,
// cover every chapter of every book exactly once in book order.
func checkCoverage(t *testing.T, plan models.ReadingPlan, id models.SectionID) {
	t.Helper()
	sec, ok := catalog.Default().Section(id)
	if !ok {
		t.Fatalf("unknown section %s", id)
	}

	bookIndex, chapter := 0, 1
	for _, daily := range plan.Readings {
		rng, has := daily.Sections[id]
		if !has {
			continue
		}
		if bookIndex >= len(sec.Books) {
			t.Fatalf("%s: day %d reads %s after section exhausted", id, daily.Day, rng.Reference)
		}
		book := sec.Books[bookIndex]
		if rng.Book != book.Name {
			t.Fatalf("%s: day %d reads %s, expected book %s", id, daily.Day, rng.Book, book.Name)
		}
		if rng.StartChapter != chapter {
			t.Fatalf("%s: day %d starts at %s %d, expected chapter %d", id, daily.Day, rng.Book, rng.StartChapter, chapter)
		}
		if rng.StartChapter > rng.EndChapter || rng.EndChapter > book.Chapters {
			t.Fatalf("%s: day %d range %d-%d outside 1-%d", id, daily.Day, rng.StartChapter, rng.EndChapter, book.Chapters)
		}
		if rng.EndChapter == book.Chapters {
			bookIndex++
			chapter = 1
		} else {
			chapter = rng.EndChapter + 1
		}
	}
	if bookIndex != len(sec.Books) {
		t.Fatalf("%s: schedule ends before %s %d", id, sec.Books[bookIndex].Name, chapter)
	}
}

func TestGenerate_FullCoverageAllSections(t *testing.T) {
	durations := []int{1, 7, 30, 90, 180, 365, 1200}
	for _, d := range durations {
		plan := mustGenerate(t, catalog.SectionOrder, d)
		for _, id := range catalog.SectionOrder {
			checkCoverage(t, plan, id)
		}
		if len(plan.Readings) != d {
			t.Errorf("duration %d: got %d days", d, len(plan.Readings))
		}
	}
}

func TestGenerate_SubsetSelection(t *testing.T) {
	plan := mustGenerate(t, []models.SectionID{models.SectionPsalms, models.SectionRevelation}, 30)

	checkCoverage(t, plan, models.SectionPsalms)
	checkCoverage(t, plan, models.SectionRevelation)

	for _, daily := range plan.Readings {
		for id := range daily.Sections {
			if id != models.SectionPsalms && id != models.SectionRevelation {
				t.Errorf("day %d: unexpected section %s", daily.Day, id)
			}
		}
	}
}

func TestGenerate_CanonicalSectionOrder(t *testing.T) {
	// Caller order is not significant; the plan lists sections in catalog order
	plan := mustGenerate(t, []models.SectionID{
		models.SectionRevelation, models.SectionHistory, models.SectionWisdom,
	}, 30)

	want := []models.SectionID{models.SectionHistory, models.SectionWisdom, models.SectionRevelation}
	if len(plan.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(plan.Sections), len(want))
	}
	for i, id := range want {
		if plan.Sections[i] != id {
			t.Errorf("section %d: got %s, want %s", i, plan.Sections[i], id)
		}
	}
}

func TestGenerate_DuplicateSelectionDeduped(t *testing.T) {
	plan := mustGenerate(t, []models.SectionID{
		models.SectionWisdom, models.SectionWisdom,
	}, 10)
	if len(plan.Sections) != 1 {
		t.Fatalf("expected 1 section after dedup, got %d", len(plan.Sections))
	}
	checkCoverage(t, plan, models.SectionWisdom)
}

func TestGenerate_ExhaustedSectionsStopAppearing(t *testing.T) {
	// Revelation has 22 chapters; over 30 days it reads 1/day and is done
	// after day 22. No reading may appear afterwards.
	plan := mustGenerate(t, []models.SectionID{models.SectionRevelation}, 30)

	for _, daily := range plan.Readings {
		_, has := daily.Sections[models.SectionRevelation]
		if daily.Day <= 22 && !has {
			t.Errorf("day %d: expected a revelation reading", daily.Day)
		}
		if daily.Day > 22 && has {
			t.Errorf("day %d: revelation should be exhausted", daily.Day)
		}
	}
	if len(plan.Readings) != 30 {
		t.Errorf("trailing empty days must still be emitted, got %d", len(plan.Readings))
	}
}

func TestGenerate_SingleDayPlan(t *testing.T) {
	// duration 1 means everything lands on day 1, one range per book start
	plan := mustGenerate(t, []models.SectionID{models.SectionPsalms}, 1)

	rng, ok := plan.Readings[0].Sections[models.SectionPsalms]
	if !ok {
		t.Fatal("day 1: no psalms reading")
	}
	if rng.StartChapter != 1 || rng.EndChapter != 150 {
		t.Errorf("expected Psalms 1-150, got %s", rng.Reference)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := New(catalog.Default())
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	a, err := gen.Generate("p", catalog.SectionOrder, 120, start)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := gen.Generate("p", catalog.SectionOrder, 120, start)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(a.Readings) != len(b.Readings) {
		t.Fatalf("day counts differ: %d vs %d", len(a.Readings), len(b.Readings))
	}
	for i := range a.Readings {
		if a.Readings[i].Date != b.Readings[i].Date {
			t.Errorf("day %d: dates differ", i+1)
		}
		if len(a.Readings[i].Sections) != len(b.Readings[i].Sections) {
			t.Fatalf("day %d: section counts differ", i+1)
		}
		for id, ra := range a.Readings[i].Sections {
			rb, ok := b.Readings[i].Sections[id]
			if !ok || ra != rb {
				t.Errorf("day %d, %s: readings differ", i+1, id)
			}
		}
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	gen := New(catalog.Default())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := gen.Generate("p", catalog.SectionOrder, 0, start); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("duration 0: got %v, want ErrInvalidDuration", err)
	}
	if _, err := gen.Generate("p", catalog.SectionOrder, -5, start); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: got %v, want ErrInvalidDuration", err)
	}
	if _, err := gen.Generate("p", nil, 30, start); !errors.Is(err, ErrNoSections) {
		t.Errorf("no sections: got %v, want ErrNoSections", err)
	}
	if _, err := gen.Generate("p", []models.SectionID{"gospels"}, 30, start); !errors.Is(err, catalog.ErrUnknownSection) {
		t.Errorf("unknown section: got %v, want catalog.ErrUnknownSection", err)
	}
}

func TestGenerate_Descriptions(t *testing.T) {
	full := mustGenerate(t, catalog.SectionOrder, 365)
	if full.Description != "Read the entire Bible in 365 days" {
		t.Errorf("unexpected description: %q", full.Description)
	}

	custom := mustGenerate(t, []models.SectionID{models.SectionWisdom}, 10)
	if custom.Description != "Custom reading plan: wisdom in 10 days" {
		t.Errorf("unexpected description: %q", custom.Description)
	}
}
