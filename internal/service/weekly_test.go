package service

import (
	"errors"
	"testing"
)

func TestRehearse(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Morale = 50

	got, err := Rehearse(m, testContent(), "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Week != 1 {
		t.Fatalf("week = %d, want 1", got.Week)
	}
	if got.Morale != 53 {
		t.Fatalf("morale = %d, want 53", got.Morale)
	}
}

func TestRestRelievesStress(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Psyche.StressLevel = 40

	got, err := Rest(m, testContent(), "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Psyche.StressLevel != 30 {
		t.Fatalf("stress = %d, want 30", got.Psyche.StressLevel)
	}
}

func TestTrainCooldown(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")
	content := testContent()

	got, err := Train(m, content, "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The advance burns one cooldown week immediately.
	if got.TrainingCooldown != trainingCooldown-1 {
		t.Fatalf("cooldown = %d, want %d", got.TrainingCooldown, trainingCooldown-1)
	}

	if _, err := Train(m, content, "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrTrainingOnCooldown) {
		t.Fatalf("err = %v, want %v", err, ErrTrainingOnCooldown)
	}
}

func TestTrainInsufficientFunds(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Money = 100

	if _, err := Train(m, testContent(), "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want %v", err, ErrInsufficientFunds)
	}
}

func TestPromoteRequiresCatalog(t *testing.T) {
	m := newMockRepo()
	seedCareer(m, "ABC123", "a@example.com")

	if _, err := Promote(m, testContent(), "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrNothingToPromote) {
		t.Fatalf("err = %v, want %v", err, ErrNothingToPromote)
	}
}

func TestPromoteBoostsLatestSong(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Songs = append(c.Songs, songFixture("Static"), songFixture("Neon Exit"))

	got, err := Promote(m, testContent(), "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Songs[1].VideoBoost {
		t.Fatal("latest song did not get the video boost")
	}
	if got.Songs[0].VideoBoost {
		t.Fatal("older song should not be boosted")
	}
	if got.Fame != 5 {
		t.Fatalf("fame = %d, want 5", got.Fame)
	}

	if _, err := Promote(m, testContent(), "ABC123", "a@example.com", noEvent()); !errors.Is(err, ErrPromotionOnCooldown) {
		t.Fatalf("err = %v, want %v", err, ErrPromotionOnCooldown)
	}
}

func TestPromotePrefersAlbum(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.Songs = append(c.Songs, songFixture("Static"))
	c.Albums = append(c.Albums, albumFixture("Debut"))

	got, err := Promote(m, testContent(), "ABC123", "a@example.com", noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// tickAlbums decrements the fresh boost by one during the advance.
	if got.Albums[0].PromoBoost != 2 {
		t.Fatalf("promo boost = %d, want 2 after one week of decay", got.Albums[0].PromoBoost)
	}
	if got.Songs[0].VideoBoost {
		t.Fatal("song should not be boosted when an album exists")
	}
}
