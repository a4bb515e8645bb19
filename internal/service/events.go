package service

import (
	"errors"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/rng"
)

var (
	ErrNoPendingEvent = errors.New("no event is awaiting a choice")
	ErrUnknownChoice  = errors.New("unknown choice for the pending event")
)

// GetPendingEvent returns the event currently blocking the career, or nil.
func GetPendingEvent(repo CareerRepo, code, ownerEmail string) (*game.Event, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	return c.CurrentEvent, nil
}

// ResolveEvent applies the chosen option of the pending event. The pending
// event is cleared before the aggregate is persisted, so a choice can only
// ever be applied once: a concurrent duplicate resolves against a career
// with no pending event and fails.
func ResolveEvent(repo CareerRepo, code, ownerEmail, choiceID string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	ev := c.CurrentEvent
	if ev == nil {
		return nil, ErrNoPendingEvent
	}
	choice := ev.ChoiceByID(choiceID)
	if choice == nil {
		return nil, ErrUnknownChoice
	}
	if r == nil {
		r = rng.Default()
	}

	engine.ResolveChoice(c, ev, choice, r)
	c.CurrentEvent = nil

	if err := repo.UpdateCareer(c); err != nil {
		return nil, err
	}
	logging.Info("event resolved", logging.Fields{
		constants.LogFieldCareerCode: c.Code,
		constants.LogFieldEventID:    ev.ID,
		constants.LogFieldAction:     choiceID,
	})
	return c, nil
}
