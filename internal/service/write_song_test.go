package service

import (
	"errors"
	"testing"

	"github.com/2nist/Band-Manager/internal/rng"
)

func TestWriteSong(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")

	got, err := WriteSong(m, testContent(), "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Songs) != 1 {
		t.Fatalf("songs = %d, want 1", len(got.Songs))
	}
	s := got.Songs[0]
	// Garage tier: no quality bonus, so the roll stays in [58, 83].
	if s.Quality < 58 || s.Quality > 83 {
		t.Fatalf("quality = %d, want within [58, 83]", s.Quality)
	}
	if got.Week != 1 {
		t.Fatalf("week = %d, want the write to consume a week", got.Week)
	}
	if s.Title == "" {
		t.Fatal("song has no title")
	}
	_ = c
}

func TestWriteSongQualityRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m := newMockRepo()
		seedCareer(m, "ABC123", "a@example.com")
		got, err := WriteSong(m, testContent(), "ABC123", "a@example.com", rng.New(seed))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if q := got.Songs[0].Quality; q < 58 || q > 83 {
			t.Fatalf("seed %d: quality = %d, want within [58, 83]", seed, q)
		}
	}
}

func TestWriteSongInsufficientFunds(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Money = 100

	if _, err := WriteSong(m, testContent(), "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want %v", err, ErrInsufficientFunds)
	}
}

func TestWriteSongTitlesUnique(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")
	content := testContent()

	seen := map[string]bool{}
	for i := 0; i < len(content.SongTitles); i++ {
		got, err := WriteSong(m, content, "ABC123", "a@example.com", noEvent())
		if err != nil {
			t.Fatalf("write %d: unexpected error: %v", i, err)
		}
		title := got.Songs[len(got.Songs)-1].Title
		if seen[title] {
			t.Fatalf("title %q reused", title)
		}
		seen[title] = true
	}
}

func TestWriteSongBlockedByPendingEvent(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.CurrentEvent = eventFixture()

	if _, err := WriteSong(m, testContent(), "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrEventPending) {
		t.Fatalf("err = %v, want %v", err, ErrEventPending)
	}
}
