package service

import (
	"errors"

	"github.com/2nist/Band-Manager/internal/game"
)

// CareerRepo is the slice of the storage repository the career services need.
// Kept small so tests can provide an in-memory implementation.
type CareerRepo interface {
	CreateCareer(c *game.CareerState) error
	GetCareerByCode(code string) (*game.CareerState, error)
	ListCareersByOwner(email string) ([]game.CareerState, error)
	UpdateCareer(c *game.CareerState) error
	DeleteCareer(code string) error
	BumpProfileStats(email string, careersStarted, weeksSimulated, fame int) error
}

// SlotRepo is the slice of the storage repository the save services need.
type SlotRepo interface {
	CareerRepo
	UpsertSaveSlot(s *game.SaveSlot) error
	GetSaveSlot(ownerEmail, key string) (*game.SaveSlot, error)
	ListSaveSlots(ownerEmail string) ([]game.SaveSlot, error)
	DeleteSaveSlot(ownerEmail, key string) error
}

var (
	ErrCareerNotFound = errors.New("career not found")
	ErrNotOwner       = errors.New("career belongs to another account")
)

// loadOwnedCareer fetches a career and verifies the caller owns it.
func loadOwnedCareer(repo CareerRepo, code, ownerEmail string) (*game.CareerState, error) {
	c, err := repo.GetCareerByCode(code)
	if err != nil || c == nil {
		return nil, ErrCareerNotFound
	}
	if c.OwnerEmail != ownerEmail {
		return nil, ErrNotOwner
	}
	return c, nil
}
