package charts

import (
	"fmt"
	"math"
	"sort"

	"github.com/2nist/Band-Manager/internal/dedupe"
	"github.com/2nist/Band-Manager/internal/game"
)

// SongEntry is one row of the singles chart.
type SongEntry struct {
	Rank    int    `json:"rank"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
	Streams int    `json:"weekly_streams"`
}

// AlbumEntry is one row of the album chart.
type AlbumEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Charts is the combined weekly ranking for one career.
type Charts struct {
	Week   int          `json:"week"`
	Songs  []SongEntry  `json:"songs"`
	Albums []AlbumEntry `json:"albums"`
}

// songScore combines steady popularity with this week's streaming momentum.
func songScore(s *game.Song) int {
	return s.Popularity*10 + int(math.Floor(float64(s.WeeklyStreams)*0.1))
}

// Compute builds the weekly chart rankings for a career. Concurrent requests
// for the same career and week are collapsed into a single computation.
func Compute(c *game.CareerState) (*Charts, error) {
	key := fmt.Sprintf("%s:%d", c.Code, c.Week)
	v, err, _ := dedupe.ChartGroup.Do(key, func() (interface{}, error) {
		return compute(c), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Charts), nil
}

func compute(c *game.CareerState) *Charts {
	ch := &Charts{Week: c.Week}

	songs := make([]SongEntry, 0, len(c.Songs))
	for i := range c.Songs {
		s := &c.Songs[i]
		songs = append(songs, SongEntry{Title: s.Title, Score: songScore(s), Streams: s.WeeklyStreams})
	}
	sort.SliceStable(songs, func(i, j int) bool { return songs[i].Score > songs[j].Score })
	for i := range songs {
		songs[i].Rank = i + 1
	}
	ch.Songs = songs

	albums := make([]AlbumEntry, 0, len(c.Albums))
	for i := range c.Albums {
		a := &c.Albums[i]
		albums = append(albums, AlbumEntry{Name: a.Name, Score: a.ChartScore})
	}
	sort.SliceStable(albums, func(i, j int) bool { return albums[i].Score > albums[j].Score })
	for i := range albums {
		albums[i].Rank = i + 1
	}
	ch.Albums = albums

	return ch
}
