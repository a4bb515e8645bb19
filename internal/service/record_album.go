package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// AlbumMinSongs and AlbumMaxSongs bound an album's track list.
const (
	AlbumMinSongs = 8
	AlbumMaxSongs = 12
)

// albumPromoBoost is the promotional push a fresh release starts with.
const albumPromoBoost = 12

var (
	ErrAlbumNameRequired  = errors.New("album name is required")
	ErrAlbumNameTaken     = errors.New("an album with that name already exists")
	ErrTooFewSongs        = errors.New("an album needs at least eight songs")
	ErrTooManySongs       = errors.New("an album can carry at most twelve songs")
	ErrSongNotFound       = errors.New("song not found")
	ErrSongAlreadyOnAlbum = errors.New("song is already on an album")
)

// RecordAlbum presses loose singles onto an album. The songs stay in the
// catalog but can never appear on a second album.
func RecordAlbum(repo CareerRepo, content *game.Content, code, ownerEmail, name string, songTitles []string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAlbumNameRequired
	}
	if c.AlbumByName(name) != nil {
		return nil, ErrAlbumNameTaken
	}
	if len(songTitles) < AlbumMinSongs {
		return nil, ErrTooFewSongs
	}
	if len(songTitles) > AlbumMaxSongs {
		return nil, ErrTooManySongs
	}

	picked := make([]*game.Song, 0, len(songTitles))
	qualitySum, popSum := 0, 0
	for _, title := range songTitles {
		s := c.SongByTitle(title)
		if s == nil {
			return nil, ErrSongNotFound
		}
		if s.InAlbum {
			return nil, ErrSongAlreadyOnAlbum
		}
		picked = append(picked, s)
		qualitySum += s.Quality
		popSum += s.Popularity
	}

	studio := content.StudioFor(c.StudioTier)
	cost := studio.RecordCost * len(picked) * 12 / 10
	if c.Money < cost {
		return nil, ErrInsufficientFunds
	}

	n := float64(len(picked))
	quality := int(math.Floor(float64(qualitySum)/n + float64(studio.QualityBonus)*1.5))
	if quality > 100 {
		quality = 100
	}
	popularity := int(math.Floor(float64(popSum)/n*1.2 + float64(studio.PopBonus)*2))
	if popularity > 100 {
		popularity = 100
	}
	album := game.Album{
		Name:       name,
		SongTitles: append([]string(nil), songTitles...),
		Quality:    quality,
		Popularity: popularity,
		ChartScore: popularity,
		PromoBoost: albumPromoBoost,
	}

	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money -= cost
			for _, s := range picked {
				s.InAlbum = true
			}
			album.ReleasedWeek = c.Week
			c.Albums = append(c.Albums, album)
			c.Fame += 3
		},
		Entry:   fmt.Sprintf("Released the album \"%s\" (-$%d).", name, cost),
		Context: game.ContextWrite,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}
