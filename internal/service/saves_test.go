package service

import (
	"errors"
	"testing"
)

func TestSaveAndLoadCareer(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Week = 12
	c.Money = 7777
	c.Songs = append(c.Songs, songFixture("Static"))

	slot, err := SaveCareer(m, "ABC123", "a@example.com", "Before the tour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Key != "before_the_tour" {
		t.Fatalf("slot key = %q, want canonical form", slot.Key)
	}
	if slot.Week != 12 || slot.BandName != "Test Band" {
		t.Fatalf("slot = %+v, want week and band name stamped", slot)
	}

	// Mutate the live career after saving; the snapshot must not follow.
	c.Money = 0

	restored, err := LoadCareer(m, "a@example.com", "before_the_tour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.Money != 7777 || restored.Week != 12 {
		t.Fatalf("restored = %d/%d, want the snapshot values", restored.Money, restored.Week)
	}
	if restored.Code == "ABC123" {
		t.Fatal("restored career must get a fresh code")
	}
	if restored.ID == c.ID {
		t.Fatal("restored career must get a fresh row id")
	}
	if len(restored.Songs) != 1 || restored.Songs[0].Title != "Static" {
		t.Fatalf("restored songs = %+v", restored.Songs)
	}
	// The source career is untouched.
	if c.Money != 0 {
		t.Fatalf("source career mutated by load")
	}
}

func TestSaveCareerOverwritesSlot(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")

	if _, err := SaveCareer(m, "ABC123", "a@example.com", "checkpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Week = 30
	slot, err := SaveCareer(m, "ABC123", "a@example.com", "Checkpoint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot.Week != 30 {
		t.Fatalf("slot week = %d, want the overwrite", slot.Week)
	}
	slots, _ := ListSaves(m, "a@example.com")
	if len(slots) != 1 {
		t.Fatalf("slots = %d, want the same canonical key reused", len(slots))
	}
}

func TestSaveCareerNameRequired(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")

	if _, err := SaveCareer(m, "ABC123", "a@example.com", "   "); !errors.Is(err, ErrSaveNameRequired) {
		t.Fatalf("err = %v, want %v", err, ErrSaveNameRequired)
	}
}

func TestLoadCareerWrongOwner(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")
	if _, err := SaveCareer(m, "ABC123", "a@example.com", "checkpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := LoadCareer(m, "b@example.com", "checkpoint"); !errors.Is(err, ErrSaveNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrSaveNotFound)
	}
}

func TestLoadCareerCorruptData(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")
	if _, err := SaveCareer(m, "ABC123", "a@example.com", "checkpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.slots["checkpoint"].Data = []byte("{truncated")

	if _, err := LoadCareer(m, "a@example.com", "checkpoint"); !errors.Is(err, ErrSaveCorrupt) {
		t.Fatalf("err = %v, want %v", err, ErrSaveCorrupt)
	}
}

func TestDeleteSave(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")
	if _, err := SaveCareer(m, "ABC123", "a@example.com", "checkpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := DeleteSave(m, "a@example.com", "checkpoint"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := DeleteSave(m, "a@example.com", "checkpoint"); !errors.Is(err, ErrSaveNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrSaveNotFound)
	}
}
