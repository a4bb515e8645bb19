package service

import (
	"errors"
	"testing"
)

func TestResolveEvent(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.CurrentEvent = eventFixture()

	got, err := ResolveEvent(m, "ABC123", "a@example.com", "accept", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Money != 10000 {
		t.Fatalf("money = %d, want the deal's payout applied", got.Money)
	}
	if got.CurrentEvent != nil {
		t.Fatal("pending event not cleared")
	}
	if m.updated == nil {
		t.Fatal("career was not persisted")
	}
}

func TestResolveEventAtMostOnce(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.CurrentEvent = eventFixture()

	if _, err := ResolveEvent(m, "ABC123", "a@example.com", "accept", noEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A duplicate submission finds no pending event.
	if _, err := ResolveEvent(m, "ABC123", "a@example.com", "accept", noEvent()); !errors.Is(err, ErrNoPendingEvent) {
		t.Fatalf("err = %v, want %v", err, ErrNoPendingEvent)
	}
}

func TestResolveEventUnknownChoice(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.CurrentEvent = eventFixture()

	if _, err := ResolveEvent(m, "ABC123", "a@example.com", "bribe", noEvent()); !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("err = %v, want %v", err, ErrUnknownChoice)
	}
	if c.CurrentEvent == nil {
		t.Fatal("a failed resolution must keep the event pending")
	}
}

func TestResolveEventNoPending(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")

	if _, err := ResolveEvent(m, "ABC123", "a@example.com", "accept", noEvent()); !errors.Is(err, ErrNoPendingEvent) {
		t.Fatalf("err = %v, want %v", err, ErrNoPendingEvent)
	}
}

func TestGetPendingEvent(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")

	ev, err := GetPendingEvent(m, "ABC123", "a@example.com")
	if err != nil || ev != nil {
		t.Fatalf("event = %v, err = %v, want nil/nil", ev, err)
	}

	c.CurrentEvent = eventFixture()
	ev, err = GetPendingEvent(m, "ABC123", "a@example.com")
	if err != nil || ev == nil || ev.ID != "ev-test" {
		t.Fatalf("event = %v, err = %v, want the pending fixture", ev, err)
	}
}
