package engine

import (
	"fmt"

	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// ResolveChoice applies one choice of a pending event to the career. It
// mutates the career in place and returns the outcome log line. The caller
// owns the event lifecycle: clearing CurrentEvent and persisting happen in
// the service layer.
func ResolveChoice(c *game.CareerState, ev *game.Event, choice *game.Choice, r rng.Source) string {
	if r == nil {
		r = rng.Default()
	}

	// Immediate effects.
	c.Money += choice.Immediate.Money
	c.Morale = game.ClampMorale(c.Morale + choice.Immediate.Morale)
	c.Fame = floorZero(c.Fame + choice.Immediate.Fame)
	c.Psyche.StressLevel += choice.Immediate.Stress

	// Psychological axes.
	p := &c.Psyche
	p.AddictionRisk += choice.Psych.AddictionRisk
	p.MoralIntegrity += choice.Psych.MoralIntegrity
	p.Paranoia += choice.Psych.Paranoia
	p.Depression += choice.Psych.Depression
	p.StressLevel += choice.Psych.Stress

	if choice.TourBan > c.TourBan {
		c.TourBan = choice.TourBan
	}

	// Effects on the member the event concerns.
	if ev.MemberUUID != "" {
		if m := c.MemberByUUID(ev.MemberUUID); m != nil {
			m.Stats.Drama = game.ClampStat(m.Stats.Drama + choice.Member.Drama)
			m.Stats.Reliability = game.ClampStat(m.Stats.Reliability + choice.Member.Reliability)
			m.Stats.Morale = game.ClampStat(m.Stats.Morale + choice.Member.Morale)
		}
	}

	// Trauma roll: a lasting psychological consequence.
	if choice.Trauma != nil && r.Float64() < choice.Trauma.Probability {
		p.Depression += 15
		p.StressLevel += 10
		c.AppendLog(choice.Trauma.Description)
	}

	c.Psyche = game.ClampPsyche(c.Psyche)

	// Escalating choices push the arc one stage deeper.
	if choice.Escalates {
		switch ev.Category {
		case game.EventSubstance:
			c.Narrative.SubstanceStage = game.NextSubstanceStage(c.Narrative.SubstanceStage)
		case game.EventCorruption:
			c.Narrative.CorruptionStage = game.NextCorruptionStage(c.Narrative.CorruptionStage)
		}
	}

	outcome := fmt.Sprintf("%s: %s", ev.Title, choice.Text)
	c.AppendLog(outcome)
	return outcome
}
