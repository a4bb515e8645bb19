package service

import (
	"errors"
	"fmt"

	"github.com/2nist/Band-Manager/internal/engine"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrNotFamousYet   = errors.New("the venue won't book a band this small")
	ErrTourBanned     = errors.New("the band is banned from touring right now")
	ErrTourNotFound   = errors.New("tour package not found")
	ErrTourInProgress = errors.New("a tour is already in progress")
)

// BookGig plays a one-night show at a venue. Attendance scales with fame and
// fans up to the venue capacity, with a draw so no two gigs pay the same.
func BookGig(repo CareerRepo, content *game.Content, code, ownerEmail, venueName string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if c.TourBan > 0 {
		return nil, ErrTourBanned
	}
	venue := content.VenueByName(venueName)
	if venue == nil {
		return nil, ErrVenueNotFound
	}
	if c.Fame < venue.MinFame {
		return nil, ErrNotFamousYet
	}
	if r == nil {
		r = rng.Default()
	}

	draw := 20 + c.Fans/5 + c.Fame*2
	// Turnout varies between 70% and 110% of the expected draw.
	draw = int(float64(draw) * (0.7 + r.Float64()*0.4))
	attendance := draw
	if attendance > venue.Capacity {
		attendance = venue.Capacity
	}
	if attendance < 0 {
		attendance = 0
	}
	// The venue keeps 40% of the door.
	payout := venue.BasePayout + attendance*venue.TicketPrice*6/10
	fameGain := 1 + attendance/100
	fanGain := attendance / 4

	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money += payout
			c.Fame += fameGain
			c.Fans += fanGain
			c.Morale += 5
			c.GigsPlayed++
			c.TotalRevenue += payout
		},
		Entry:   fmt.Sprintf("Played %s for %d people (+$%d).", venue.Name, attendance, payout),
		Context: game.ContextGig,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}

// StartTour pays the upfront cost of a tour package and kicks off its first
// week. The remaining weeks pay out passively on subsequent advances.
func StartTour(repo CareerRepo, content *game.Content, code, ownerEmail, tourName string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if c.TourBan > 0 {
		return nil, ErrTourBanned
	}
	if c.ActiveTour != "" {
		return nil, ErrTourInProgress
	}
	pkg := content.TourByName(tourName)
	if pkg == nil {
		return nil, ErrTourNotFound
	}
	if c.Money < pkg.Cost {
		return nil, ErrInsufficientFunds
	}

	opts := engine.AdvanceOptions{
		Apply: func(c *game.CareerState) {
			c.Money -= pkg.Cost
			c.ActiveTour = pkg.Name
			c.TourWeeksRemaining = pkg.Weeks
		},
		Entry:   fmt.Sprintf("Hit the road: %s, %d weeks (-$%d upfront).", pkg.Name, pkg.Weeks, pkg.Cost),
		Context: game.ContextGig,
	}
	if err := advanceAndPersist(repo, c, content, opts, r); err != nil {
		return nil, err
	}
	return c, nil
}
