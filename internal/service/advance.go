package service

import (
	"errors"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/rng"
)

// ErrEventPending blocks week-advancing actions while a narrative event is
// waiting for a choice.
var ErrEventPending = errors.New("an event is awaiting a choice")

// advanceAndPersist runs one weekly advance, rolls for a narrative event and
// persists the updated aggregate. All week-consuming actions funnel through
// here so the event state machine and profile stats stay consistent.
func advanceAndPersist(repo CareerRepo, c *game.CareerState, content *game.Content, opts engine.AdvanceOptions, r rng.Source) error {
	if c.CurrentEvent != nil {
		return ErrEventPending
	}
	if r == nil {
		r = rng.Default()
	}
	opts.Rand = r

	engine.AdvanceWeek(c, content, opts)
	maybeTriggerEvent(c, content, r)

	if err := repo.UpdateCareer(c); err != nil {
		return err
	}
	if err := repo.BumpProfileStats(c.OwnerEmail, 0, 1, c.Fame); err != nil {
		logging.Error("failed to bump profile on advance", err, logging.Fields{constants.LogFieldCareerCode: c.Code})
	}
	return nil
}

// maybeTriggerEvent rolls the weekly drama chance and, on a hit, attaches a
// generated event to the career. A crisis roll routes through the
// psychologically biased generator; mundane drama just dents morale.
func maybeTriggerEvent(c *game.CareerState, content *game.Content, r rng.Source) {
	if c.CurrentEvent != nil {
		return
	}
	if r.Float64() >= engine.DramaChance(c) {
		return
	}
	if r.Float64() < engine.CrisisChance(c) {
		if ev := engine.GenerateEvent(c, content, game.EventAuto, r); ev != nil {
			c.CurrentEvent = ev
			c.AppendLog("Something happened: " + ev.Title)
			logging.Info("event triggered", logging.Fields{
				constants.LogFieldCareerCode: c.Code,
				constants.LogFieldEventID:    ev.ID,
				constants.LogFieldWeek:       c.Week,
			})
			return
		}
	}
	c.Morale = game.ClampMorale(c.Morale - 3)
	c.AppendLog("Tension in the rehearsal room. Nothing serious, this time.")
}
