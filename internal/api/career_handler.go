package api

import (
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
	"github.com/2nist/Band-Manager/internal/storage"
)

// CareerHandler groups all career-related HTTP handlers.
type CareerHandler struct {
	repo    storage.Repository
	content *game.Content
	rand    rng.Source
}

// NewCareerHandler creates a CareerHandler with the given repository, the
// loaded content tables and a shared random source.
func NewCareerHandler(repo storage.Repository, content *game.Content, rand rng.Source) *CareerHandler {
	if rand == nil {
		rand = rng.Default()
	}
	return &CareerHandler{repo: repo, content: content, rand: rand}
}
