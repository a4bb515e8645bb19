package charts

import (
	"testing"

	"github.com/2nist/Band-Manager/internal/game"
)

func TestComputeRanksSongsByScore(t *testing.T) {
	c := &game.CareerState{
		Code: "CHART1",
		Week: 5,
		Songs: []game.Song{
			{Title: "Sleeper", Popularity: 20, WeeklyStreams: 1000},
			{Title: "Hit", Popularity: 90, WeeklyStreams: 6000},
			{Title: "Mid", Popularity: 50, WeeklyStreams: 3000},
		},
		Albums: []game.Album{
			{Name: "Second", ChartScore: 40},
			{Name: "First", ChartScore: 75},
		},
	}

	ch, err := Compute(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Week != 5 {
		t.Fatalf("week = %d, want 5", ch.Week)
	}
	if ch.Songs[0].Title != "Hit" || ch.Songs[0].Rank != 1 {
		t.Fatalf("top song = %+v, want Hit at rank 1", ch.Songs[0])
	}
	// 90*10 + floor(6000*0.1) = 1500
	if ch.Songs[0].Score != 1500 {
		t.Fatalf("top score = %d, want 1500", ch.Songs[0].Score)
	}
	if ch.Songs[2].Title != "Sleeper" || ch.Songs[2].Rank != 3 {
		t.Fatalf("bottom song = %+v, want Sleeper at rank 3", ch.Songs[2])
	}
	if ch.Albums[0].Name != "First" || ch.Albums[1].Rank != 2 {
		t.Fatalf("albums = %+v, want First on top", ch.Albums)
	}
}

func TestComputeEmptyCatalog(t *testing.T) {
	c := &game.CareerState{Code: "CHART2", Week: 1}
	ch, err := Compute(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ch.Songs) != 0 || len(ch.Albums) != 0 {
		t.Fatalf("charts = %+v, want empty", ch)
	}
}
