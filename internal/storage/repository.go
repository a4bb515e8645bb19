package storage

import (
	"github.com/2nist/Band-Manager/internal/game"
)

type Repository interface {
	CreateCareer(c *game.CareerState) error
	// GetCareerByCode loads the full aggregate: members, songs and albums.
	GetCareerByCode(code string) (*game.CareerState, error)
	ListCareersByOwner(email string) ([]game.CareerState, error)
	// UpdateCareer persists the whole aggregate and removes member rows that
	// are no longer part of the band (quits and firings).
	UpdateCareer(c *game.CareerState) error
	DeleteCareer(code string) error

	// Save slots (whole-career snapshots).
	UpsertSaveSlot(s *game.SaveSlot) error
	GetSaveSlot(ownerEmail, key string) (*game.SaveSlot, error)
	ListSaveSlots(ownerEmail string) ([]game.SaveSlot, error)
	DeleteSaveSlot(ownerEmail, key string) error

	// Player profiles and leaderboard.
	UpsertProfile(email, displayName string) error
	GetProfileByEmail(email string) (*game.Profile, error)
	BumpProfileStats(email string, careersStarted, weeksSimulated, fame int) error
	GetTopProfiles(limit int) ([]game.Profile, error)
}
