package catalog

import (
	"errors"
	"testing"

	"github.com/Uniqwrites1/bible-reader/internal/models"
)

func TestDefault_Integrity(t *testing.T) {
	cat := Default()

	if len(cat.Sections()) != 6 {
		t.Fatalf("expected 6 sections, got %d", len(cat.Sections()))
	}

	books := 0
	chapters := 0
	for _, sec := range cat.Sections() {
		books += len(sec.Books)
		chapters += cat.TotalChapters(sec.ID)
	}
	if books != 66 {
		t.Errorf("expected 66 books, got %d", books)
	}
	if chapters != 1189 {
		t.Errorf("expected 1189 chapters, got %d", chapters)
	}
}

func TestDefault_SectionTotals(t *testing.T) {
	totals := map[models.SectionID]int{
		models.SectionHistory:      478,
		models.SectionPsalms:       150,
		models.SectionWisdom:       51,
		models.SectionProphets:     250,
		models.SectionNewTestament: 238,
		models.SectionRevelation:   22,
	}
	for id, want := range totals {
		if got := Default().TotalChapters(id); got != want {
			t.Errorf("%s: %d chapters, want %d", id, got, want)
		}
	}
}

func TestDefault_SectionOrder(t *testing.T) {
	secs := Default().Sections()
	for i, id := range SectionOrder {
		if secs[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, secs[i].ID, id)
		}
	}
}

func TestNew_RejectsBadData(t *testing.T) {
	_, err := New([]Section{
		{ID: "a", Name: "A", Books: []Book{{Name: "X", Chapters: 3}}},
		{ID: "b", Name: "B", Books: []Book{{Name: "X", Chapters: 5}}},
	})
	if err == nil {
		t.Error("expected error for book in two sections")
	}

	_, err = New([]Section{
		{ID: "a", Name: "A", Books: []Book{{Name: "X", Chapters: 0}}},
	})
	if err == nil {
		t.Error("expected error for zero chapter count")
	}

	_, err = New([]Section{
		{ID: "a", Name: "A", Books: []Book{{Name: "X", Chapters: 1}}},
		{ID: "a", Name: "A again", Books: []Book{{Name: "Y", Chapters: 1}}},
	})
	if err == nil {
		t.Error("expected error for duplicate section id")
	}
}

func TestNormalize(t *testing.T) {
	cat := Default()

	got, err := cat.Normalize([]models.SectionID{
		models.SectionRevelation, models.SectionHistory, models.SectionRevelation,
	})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := []models.SectionID{models.SectionHistory, models.SectionRevelation}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}

	if _, err := cat.Normalize([]models.SectionID{"apocrypha"}); !errors.Is(err, ErrUnknownSection) {
		t.Errorf("got %v, want ErrUnknownSection", err)
	}
}

func TestBookLookup(t *testing.T) {
	cat := Default()

	book, ok := cat.Book("Song of Songs")
	if !ok {
		t.Fatal("Song of Songs not found")
	}
	if book.Chapters != 8 {
		t.Errorf("Song of Songs: %d chapters, want 8", book.Chapters)
	}

	if _, ok := cat.Book("Enoch"); ok {
		t.Error("unexpected book Enoch")
	}
}
