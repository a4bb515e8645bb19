package engine

import (
	"fmt"
	"strings"

	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// AdvanceOptions describe one weekly advance: the direct effects of the
// action that triggered it, a log entry for that action, and the action
// context used for member stat drift.
type AdvanceOptions struct {
	// Apply patches the career with the action's direct effects. It must not
	// touch Week; the engine owns the week increment and will overwrite it.
	Apply func(*game.CareerState)
	// Entry is the action's own log line (may be empty).
	Entry string
	// Context tags what the band spent the week doing.
	Context game.ActionContext
	// Rand is the random source; nil falls back to a time-seeded source.
	Rand rng.Source
}

// --- Week context and helpers ------------------------------------------

type weekContext struct {
	c       *game.CareerState
	content *game.Content
	r       rng.Source
	notes   []string
}

func newWeekContext(c *game.CareerState, content *game.Content, r rng.Source) *weekContext {
	return &weekContext{c: c, content: content, r: r, notes: make([]string, 0, 8)}
}

func (wc *weekContext) note(msg string) { wc.notes = append(wc.notes, msg) }

// AdvanceWeek advances the career by exactly one week: it applies the
// action's direct effects, then layers the passive weekly simulation on top
// in a fixed stage order. It returns the weekly summary line that was also
// appended to the career log.
func AdvanceWeek(c *game.CareerState, content *game.Content, opts AdvanceOptions) string {
	r := opts.Rand
	if r == nil {
		r = rng.Default()
	}

	// Stage 1: the engine owns the week increment.
	c.Week++
	week := c.Week

	// Stage 2: direct effects of the triggering action.
	if opts.Apply != nil {
		opts.Apply(c)
	}
	c.Week = week
	c.Morale = game.ClampMorale(c.Morale)

	wc := newWeekContext(c, content, r)

	// Stage 3: member stat drift and quit rolls.
	wc.driftMembers(opts.Context)

	// Stage 4: weekly expenses.
	expenses := wc.weeklyExpenses()

	// Stage 5: trend lifecycle.
	wc.tickTrend()

	// Stage 6: seasonal bonus (derived, not stored).
	seasonal := seasonalBonus(c.Week)

	// Stage 7: album aging and chart-score decay.
	wc.tickAlbums()

	// Stage 8: song popularity, streams and royalties.
	royalty := wc.tickSongs(seasonal)

	// Active tour proceeds, if any.
	tourIncome := wc.tickTour()

	// Stage 9: fan growth.
	fanGain := wc.growFans()

	// Stage 10: merchandise revenue.
	merch := wc.merchRevenue()

	// Stage 11: money delta and accumulators.
	c.Money += royalty + merch + tourIncome - expenses
	c.TotalRevenue += royalty + tourIncome
	c.TotalMerchandise += merch

	// Stage 12: cooldowns.
	wc.tickCooldowns()

	// Stage 13: log entries, newest-first.
	if opts.Entry != "" {
		c.AppendLog(opts.Entry)
	}
	for _, n := range wc.notes {
		c.AppendLog(n)
	}
	summary := wc.buildSummary(expenses, royalty, merch, fanGain)
	c.AppendLog(summary)
	return summary
}

// seasonalBonus buckets the 13-week cycle: late-cycle weeks are the touring
// season and lift song popularity.
func seasonalBonus(week int) int {
	cycle := week % 13
	switch {
	case cycle >= 9 && cycle <= 12:
		return 6
	case cycle >= 5 && cycle <= 8:
		return 3
	default:
		return 0
	}
}

func (wc *weekContext) tickCooldowns() {
	c := wc.c
	c.TourBan = decToZero(c.TourBan)
	c.TrainingCooldown = decToZero(c.TrainingCooldown)
	c.PromotionCooldown = decToZero(c.PromotionCooldown)
}

func decToZero(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

func (wc *weekContext) buildSummary(expenses, royalty, merch, fanGain int) string {
	parts := []string{fmt.Sprintf("Week %d: -$%d expenses, +$%d royalties", wc.c.Week, expenses, royalty)}
	if merch > 0 {
		parts = append(parts, fmt.Sprintf("+$%d merch", merch))
	}
	if fanGain > 0 {
		parts = append(parts, fmt.Sprintf("+%d fans", fanGain))
	}
	return strings.Join(parts, ", ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
