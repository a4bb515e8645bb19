package engine

import (
	"fmt"
	"math"

	"github.com/2nist/Band-Manager/internal/game"
)

// baseWeeklyExpense is the fixed overhead every band pays per week.
const baseWeeklyExpense = 100

// salaryPerMember is the weekly cost per band member.
const salaryPerMember = 50

// merchFameThreshold gates merchandise revenue: nobody buys shirts for a
// band they have never heard of.
const merchFameThreshold = 50

// weeklyExpenses computes the week's fixed costs: overhead, salaries,
// equipment and transport upkeep, and staff retainers.
func (wc *weekContext) weeklyExpenses() int {
	c := wc.c
	staff := wc.content.ManagerUpkeepFor(c.ManagerTier)
	if c.HasLawyer {
		staff += wc.content.Staff.LawyerUpkeep
	}
	return baseWeeklyExpense +
		len(c.Members)*salaryPerMember +
		wc.content.GearFor(c.GearTier).Upkeep +
		wc.content.TransportFor(c.TransportTier).Upkeep +
		staff
}

// trendStartChance is the weekly probability a market trend begins when none
// is active.
const trendStartChance = 0.12

// tickTrend starts, decrements or clears the market-wide genre trend.
func (wc *weekContext) tickTrend() {
	c := wc.c
	if !c.Trend.Active() {
		if wc.r.Float64() < trendStartChance && len(wc.content.Genres) > 0 {
			genre := wc.content.Genres[wc.r.Intn(len(wc.content.Genres))]
			c.Trend = game.Trend{
				Genre:          genre,
				Modifier:       12 + wc.r.Intn(6), // 12-17%
				WeeksRemaining: 4 + wc.r.Intn(3),  // 4-6 weeks
			}
			wc.note(fmt.Sprintf("%s is trending (+%d%% popularity).", genre, c.Trend.Modifier))
		}
		return
	}
	c.Trend.WeeksRemaining--
	if c.Trend.WeeksRemaining <= 0 {
		wc.note(fmt.Sprintf("The %s trend has faded.", c.Trend.Genre))
		c.Trend = game.Trend{}
	}
}

// tickTour pays out the weekly proceeds of an active tour and counts it down.
func (wc *weekContext) tickTour() int {
	c := wc.c
	if c.TourWeeksRemaining <= 0 || c.ActiveTour == "" {
		return 0
	}
	pkg := wc.content.TourByName(c.ActiveTour)
	if pkg == nil {
		c.ActiveTour = ""
		c.TourWeeksRemaining = 0
		return 0
	}
	c.TourWeeksRemaining--
	c.Fame += pkg.WeeklyFame
	if c.TourWeeksRemaining == 0 {
		c.ActiveTour = ""
		wc.note(fmt.Sprintf("The %s wrapped up. Back home.", pkg.Name))
	}
	return pkg.WeeklyPayout
}

// growFans adds weekly fan growth driven by fame and having a catalog.
func (wc *weekContext) growFans() int {
	c := wc.c
	gain := c.Fame / 10
	if len(c.Songs) > 0 {
		gain += 5
	}
	c.Fans += gain
	return gain
}

// merchRevenue computes merchandise income once the band is famous enough.
func (wc *weekContext) merchRevenue() int {
	c := wc.c
	if c.Fame < merchFameThreshold {
		return 0
	}
	return int(math.Floor(float64(c.Fame)*0.25 + float64(c.Fans)*0.15))
}
