package service

import (
	"errors"
	"testing"
)

var trackList = []string{
	"Static", "Glass Houses", "Neon Exit", "Midnight Freight",
	"Paper Crowns", "Dead Channels", "Cold Reception", "Afterglow",
}

func seedWithSongs(m *mockRepo) {
	c := seedCareer(m, "ABC123", "a@example.com")
	for _, title := range trackList {
		c.Songs = append(c.Songs, songFixture(title))
	}
	c.Songs = append(c.Songs, songFixture("Borrowed Time"))
}

func TestRecordAlbum(t *testing.T) {
	m := newMockRepo()
	seedWithSongs(m)

	got, err := RecordAlbum(m, testContent(), "ABC123", "a@example.com", "Debut", trackList, noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Albums) != 1 {
		t.Fatalf("albums = %d, want 1", len(got.Albums))
	}
	a := got.Albums[0]
	if a.Quality != 70 {
		t.Fatalf("quality = %d, want the track average at garage tier", a.Quality)
	}
	if a.Popularity != 60 {
		t.Fatalf("popularity = %d, want floor(50*1.2) at garage tier", a.Popularity)
	}
	// Created with chart score 80 after the release week's decay tick:
	// floor(70*0.8) + (14-1) + (12-1).
	if a.ChartScore != 80 {
		t.Fatalf("chart score = %d, want 80", a.ChartScore)
	}
	if a.PromoBoost != 11 {
		t.Fatalf("promo boost = %d, want 11 after one decay tick", a.PromoBoost)
	}
	if a.ReleasedWeek != 1 {
		t.Fatalf("released week = %d, want 1", a.ReleasedWeek)
	}
	for _, title := range trackList {
		if !got.SongByTitle(title).InAlbum {
			t.Fatalf("song %q not marked as on an album", title)
		}
	}
	if got.SongByTitle("Borrowed Time").InAlbum {
		t.Fatal("song left off the album must stay loose")
	}
	// 5000 - 4800 recording (500*8*1.2) - 200 expenses, plus 31 streaming
	// royalty per song with the scripted rolls.
	if got.Money != 279 {
		t.Fatalf("money = %d, want 279", got.Money)
	}
}

func TestRecordAlbumQualityUsesStudioBonus(t *testing.T) {
	m := newMockRepo()
	c := seedCareer(m, "ABC123", "a@example.com")
	c.StudioTier = 1
	c.Money = 30000
	titles := make([]string, 0, 10)
	for _, title := range []string{
		"Static", "Glass Houses", "Neon Exit", "Midnight Freight", "Paper Crowns",
		"Dead Channels", "Cold Reception", "Afterglow", "Second Skin", "Hollow Point",
	} {
		c.Songs = append(c.Songs, songFixture(title))
		titles = append(titles, title)
	}

	got, err := RecordAlbum(m, testContent(), "ABC123", "a@example.com", "Sophomore", titles, noEvent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := got.Albums[0]
	// floor(70 + 8*1.5) with ten quality-70 tracks at the tier-1 studio.
	if a.Quality != 82 {
		t.Fatalf("quality = %d, want 82", a.Quality)
	}
	// floor(50*1.2 + 6*2).
	if a.Popularity != 72 {
		t.Fatalf("popularity = %d, want 72", a.Popularity)
	}
}

func TestRecordAlbumValidation(t *testing.T) {
	thirteen := append(append([]string(nil), trackList...),
		"Borrowed Time", "Second Skin", "Hollow Point", "Velvet Knives", "Wires and Wine")
	unknown := append(append([]string(nil), trackList[:7]...), "Ghost Track")

	cases := []struct {
		name   string
		album  string
		tracks []string
		prep   func(m *mockRepo)
		want   error
	}{
		{"empty name", "", trackList, nil, ErrAlbumNameRequired},
		{"seven songs", "Debut", trackList[:7], nil, ErrTooFewSongs},
		{"thirteen songs", "Debut", thirteen, nil, ErrTooManySongs},
		{"unknown song", "Debut", unknown, nil, ErrSongNotFound},
		{"duplicate album", "Debut", trackList, func(m *mockRepo) {
			c, _ := m.GetCareerByCode("ABC123")
			c.Albums = append(c.Albums, albumFixture("Debut"))
		}, ErrAlbumNameTaken},
		{"song reuse", "Second", trackList, func(m *mockRepo) {
			c, _ := m.GetCareerByCode("ABC123")
			c.SongByTitle("Static").InAlbum = true
		}, ErrSongAlreadyOnAlbum},
	}
	for _, tc := range cases {
		m := newMockRepo()
		seedWithSongs(m)
		if tc.prep != nil {
			tc.prep(m)
		}
		_, err := RecordAlbum(m, testContent(), "ABC123", "a@example.com", tc.album, tc.tracks, noEvent())
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestRecordAlbumInsufficientFunds(t *testing.T) {
	m := newMockRepo()
	seedWithSongs(m)
	c, _ := m.GetCareerByCode("ABC123")
	c.Money = 500

	if _, err := RecordAlbum(m, testContent(), "ABC123", "a@example.com", "Debut", trackList, noEvent()); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want %v", err, ErrInsufficientFunds)
	}
}
