package engine

import (
	"fmt"

	"github.com/2nist/Band-Manager/internal/game"
)

// statBaseline is the value member stats slowly decay toward when nothing
// pushes them in either direction.
const statBaseline = 5.5

// driftMembers applies contextual stat adjustment, random noise, slow decay
// toward the baseline, and the weekly quit roll.
func (wc *weekContext) driftMembers(ctx game.ActionContext) {
	c := wc.c
	for i := range c.Members {
		m := &c.Members[i]
		applyContextDrift(&m.Stats, ctx)
		applyNoiseAndDecay(&m.Stats, wc)
		clampStats(&m.Stats)
	}
	wc.rollQuits()
}

func applyContextDrift(s *game.MemberStats, ctx game.ActionContext) {
	switch ctx {
	case game.ContextRehearse:
		s.StagePresence += 0.3
		s.Skill += 0.2
	case game.ContextWrite:
		s.Creativity += 0.3
	case game.ContextGig:
		s.StagePresence += 0.25
		s.Skill += 0.15
		s.Drama += 0.2
	case game.ContextRest:
		s.Drama -= 0.4
		s.Morale += 0.5
	case game.ContextTrain:
		s.Skill += 0.4
		s.Reliability += 0.1
	case game.ContextPromote:
		s.StagePresence += 0.1
	}
}

func applyNoiseAndDecay(s *game.MemberStats, wc *weekContext) {
	for _, f := range []*float64{&s.Skill, &s.Creativity, &s.StagePresence, &s.Reliability, &s.Morale, &s.Drama} {
		*f += wc.r.Float64()*0.2 - 0.1
		*f += (statBaseline - *f) * 0.02
	}
}

func clampStats(s *game.MemberStats) {
	s.Skill = game.ClampStat(s.Skill)
	s.Creativity = game.ClampStat(s.Creativity)
	s.StagePresence = game.ClampStat(s.StagePresence)
	s.Reliability = game.ClampStat(s.Reliability)
	s.Morale = game.ClampStat(s.Morale)
	s.Drama = game.ClampStat(s.Drama)
}

// QuitChance returns the probability that a member walks this week. Low band
// morale raises the base rate, and high personal drama compounds it.
func QuitChance(m *game.Member, bandMorale int) float64 {
	base := 0.01
	moralePenalty := 0.0
	if bandMorale < 40 {
		base = 0.03
		moralePenalty = float64(40-bandMorale) * 0.001
	}
	dramaPenalty := 0.0
	if m.Stats.Drama > 7 {
		dramaPenalty = (m.Stats.Drama - 7) * 0.008
	}
	chance := base + dramaPenalty + moralePenalty
	if chance > 0.25 {
		chance = 0.25
	}
	return chance
}

// rollQuits removes at most one member per week. The two-member floor always
// holds: founders stick it out no matter how bad it gets.
func (wc *weekContext) rollQuits() {
	c := wc.c
	if len(c.Members) <= game.MinMembers {
		return
	}
	for i := range c.Members {
		m := &c.Members[i]
		if wc.r.Float64() < QuitChance(m, c.Morale) {
			name := m.Name
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			c.Morale = game.ClampMorale(c.Morale - 8)
			wc.note(fmt.Sprintf("%s quit the band. Morale took a hit.", name))
			return
		}
	}
}

// DramaChance is the probability that this week's advance spawns a narrative
// event. Bigger bands, low morale and long careers all raise it.
func DramaChance(c *game.CareerState) float64 {
	chance := 0.05 + float64(len(c.Members))*0.03 + float64(100-c.Morale)*0.004 + float64(c.Week)*0.0005
	return clampFloat(chance, 0.05, 0.65)
}

// CrisisChance is the probability that a spawned event is a full crisis
// rather than mundane drama. Driven by stress and low morale.
func CrisisChance(c *game.CareerState) float64 {
	chance := 0.02 + float64(c.Psyche.StressLevel)*0.002 + float64(100-c.Morale)*0.001
	return clampFloat(chance, 0.02, 0.28)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
