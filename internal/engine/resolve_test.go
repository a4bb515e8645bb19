package engine

import (
	"strings"
	"testing"

	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

func corruptionAcceptFixture() (*game.Event, *game.Choice) {
	ev := &game.Event{
		ID:       "ev-1",
		Category: game.EventCorruption,
		Title:    "The Offer",
		Choices: []game.Choice{{
			ID:        "accept",
			Text:      "Take the deal",
			Immediate: game.ImmediateEffects{Money: 5000},
			Psych:     game.PsychEffects{MoralIntegrity: -20, Paranoia: 10},
			Escalates: true,
		}},
	}
	return ev, &ev.Choices[0]
}

func TestResolveChoiceAppliesEffects(t *testing.T) {
	c := testCareer(2)
	c.Psyche.MoralIntegrity = 100
	ev, choice := corruptionAcceptFixture()

	out := ResolveChoice(c, ev, choice, quiet())

	if c.Money != 6000 {
		t.Fatalf("money = %d, want 6000", c.Money)
	}
	if c.Psyche.MoralIntegrity != 80 || c.Psyche.Paranoia != 10 {
		t.Fatalf("psyche = %+v, want -20 integrity, +10 paranoia", c.Psyche)
	}
	if c.Narrative.CorruptionStage != game.StageMoralFlexibility {
		t.Fatalf("stage = %s, want escalation past the first compromise", c.Narrative.CorruptionStage)
	}
	if !strings.Contains(out, "The Offer") || c.Log[0] != out {
		t.Fatalf("outcome = %q, log = %v", out, c.Log)
	}
}

func TestResolveChoiceClampsPsyche(t *testing.T) {
	c := testCareer(2)
	c.Psyche.MoralIntegrity = 5
	ev, choice := corruptionAcceptFixture()

	ResolveChoice(c, ev, choice, quiet())

	if c.Psyche.MoralIntegrity != 0 {
		t.Fatalf("integrity = %d, want clamped at 0", c.Psyche.MoralIntegrity)
	}
}

func TestResolveChoiceEscalatesSubstanceToTerminal(t *testing.T) {
	c := testCareer(2)
	c.Narrative.SubstanceStage = game.StageAddicted
	ev := &game.Event{
		Category: game.EventSubstance,
		Title:    "Rock Bottom",
		Choices:  []game.Choice{{ID: "use", Text: "Give in", Escalates: true}},
	}

	ResolveChoice(c, ev, &ev.Choices[0], quiet())

	if c.Narrative.SubstanceStage != game.StageAddicted {
		t.Fatalf("stage = %s, want the terminal stage to hold", c.Narrative.SubstanceStage)
	}
}

func TestResolveChoiceTourBanTakesMax(t *testing.T) {
	c := testCareer(2)
	c.TourBan = 5
	ev := &game.Event{
		Category: game.EventSubstance,
		Title:    "Can't Stop",
		Choices:  []game.Choice{{ID: "seek_help", Text: "Check in", TourBan: 3}},
	}

	ResolveChoice(c, ev, &ev.Choices[0], quiet())

	if c.TourBan != 5 {
		t.Fatalf("tour ban = %d, want existing longer ban kept", c.TourBan)
	}
}

func TestResolveChoiceTraumaRoll(t *testing.T) {
	newFixture := func() (*game.CareerState, *game.Event) {
		c := testCareer(2)
		ev := &game.Event{
			Category: game.EventHorror,
			Title:    "The Shrine",
			Choices: []game.Choice{{
				ID:     "confront",
				Text:   "Face it",
				Trauma: &game.TraumaRisk{Probability: 0.3, Severity: "moderate", Description: "It keeps replaying."},
			}},
		}
		return c, ev
	}

	c, ev := newFixture()
	ResolveChoice(c, ev, &ev.Choices[0], &rng.Script{Seq: []float64{0.1}})
	if c.Psyche.Depression != 15 || c.Psyche.StressLevel != 10 {
		t.Fatalf("psyche = %+v, want trauma applied", c.Psyche)
	}
	if c.Log[1] != "It keeps replaying." {
		t.Fatalf("log = %v, want trauma line before the outcome", c.Log)
	}

	c, ev = newFixture()
	ResolveChoice(c, ev, &ev.Choices[0], &rng.Script{Seq: []float64{0.9}})
	if c.Psyche.Depression != 0 || c.Psyche.StressLevel != 0 {
		t.Fatalf("psyche = %+v, want no trauma on a high roll", c.Psyche)
	}
}

func TestResolveChoiceMemberEffects(t *testing.T) {
	c := testCareer(2)
	target := c.Members[0].MemberUUID
	ev := &game.Event{
		Category:   game.EventSubstance,
		Title:      "First Hit",
		MemberUUID: target,
		Choices: []game.Choice{{
			ID:     "use",
			Text:   "Take it",
			Member: game.MemberEffects{Drama: 1.5, Reliability: -0.5},
		}},
	}

	ResolveChoice(c, ev, &ev.Choices[0], quiet())

	m := c.MemberByUUID(target)
	if m.Stats.Drama != 6.5 || m.Stats.Reliability != 4.5 {
		t.Fatalf("member stats = %+v, want drama 6.5, reliability 4.5", m.Stats)
	}
}
