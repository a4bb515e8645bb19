package service

import (
	"errors"
	"fmt"

	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

var (
	ErrInsufficientFunds   = errors.New("not enough money")
	ErrTrainingOnCooldown  = errors.New("training is on cooldown")
	ErrPromotionOnCooldown = errors.New("promotion is on cooldown")
	ErrNothingToPromote    = errors.New("nothing to promote yet")
)

const (
	trainingCost     = 500
	trainingCooldown = 2

	promotionCost     = 1000
	promotionCooldown = 3
)

// Rehearse spends the week practicing: a small morale lift and stage drift.
func Rehearse(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	opts := engine.AdvanceOptions{
		Apply:   func(c *game.CareerState) { c.Morale += 3 },
		Entry:   "The band rehearsed all week.",
		Context: game.ContextRehearse,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}

// Rest takes a week off: morale recovers and stress bleeds away.
func Rest(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Morale += 10
			c.Psyche.StressLevel = game.ClampPercent(c.Psyche.StressLevel - 10)
		},
		Entry:   "Everyone took the week off.",
		Context: game.ContextRest,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}

// Train pays for a week of coached sessions. Gated by a cooldown so it can't
// be spammed into a stat treadmill.
func Train(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if c.TrainingCooldown > 0 {
		return nil, ErrTrainingOnCooldown
	}
	if c.Money < trainingCost {
		return nil, ErrInsufficientFunds
	}
	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money -= trainingCost
			c.TrainingCooldown = trainingCooldown
		},
		Entry:   fmt.Sprintf("Hired a coach for the week (-$%d).", trainingCost),
		Context: game.ContextTrain,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}

// Promote runs a promo push: fame now, and a boost for the latest release.
func Promote(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if c.PromotionCooldown > 0 {
		return nil, ErrPromotionOnCooldown
	}
	if len(c.Songs) == 0 && len(c.Albums) == 0 {
		return nil, ErrNothingToPromote
	}
	if c.Money < promotionCost {
		return nil, ErrInsufficientFunds
	}
	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money -= promotionCost
			c.PromotionCooldown = promotionCooldown
			c.Fame += 5
			if len(c.Albums) > 0 {
				latest := &c.Albums[len(c.Albums)-1]
				latest.PromoBoost += 3
			} else {
				latest := &c.Songs[len(c.Songs)-1]
				latest.VideoBoost = true
			}
		},
		Entry:   fmt.Sprintf("Ran a promo campaign (-$%d).", promotionCost),
		Context: game.ContextPromote,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}
