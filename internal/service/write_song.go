package service

import (
	"fmt"

	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// WriteSong spends the week writing and recording a new track at the current
// studio tier. Quality is rolled once at creation and never changes.
func WriteSong(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = rng.Default()
	}
	studio := content.StudioFor(c.StudioTier)
	if c.Money < studio.RecordCost {
		return nil, ErrInsufficientFunds
	}

	title := pickSongTitle(c, content, r)
	quality := 58 + r.Intn(26) + studio.QualityBonus
	if quality > 100 {
		quality = 100
	}
	song := game.Song{
		Title:           title,
		Quality:         quality,
		Popularity:      game.ClampPercent(35 + studio.PopBonus + r.Intn(16)),
		FreshnessWeight: 1 + float64(studio.FreshnessBonus)/100,
	}

	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money -= studio.RecordCost
			c.Songs = append(c.Songs, song)
		},
		Entry:   fmt.Sprintf("Recorded \"%s\" at %s (-$%d).", title, studio.Name, studio.RecordCost),
		Context: game.ContextWrite,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}

// pickSongTitle takes an unused title from the content pool, falling back to
// a numbered title once the pool runs dry.
func pickSongTitle(c *game.CareerState, content *game.Content, r rng.Source) string {
	used := make(map[string]struct{}, len(c.Songs))
	for i := range c.Songs {
		used[c.Songs[i].Title] = struct{}{}
	}
	free := make([]string, 0, len(content.SongTitles))
	for _, t := range content.SongTitles {
		if _, taken := used[t]; !taken {
			free = append(free, t)
		}
	}
	if len(free) == 0 {
		return fmt.Sprintf("Untitled #%d", len(c.Songs)+1)
	}
	return free[r.Intn(len(free))]
}
