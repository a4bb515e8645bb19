package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// GenerateEvent builds a narrative event for the career. kind selects the
// category explicitly; game.EventAuto lets the current psychological state
// bias the pick. Returns nil when the content tables are empty.
func GenerateEvent(c *game.CareerState, content *game.Content, kind game.EventKind, r rng.Source) *game.Event {
	if r == nil {
		r = rng.Default()
	}
	ec := content.Events
	if ec.Empty() {
		return nil
	}
	if kind == game.EventAuto || kind == "" {
		kind = pickCategory(c, r)
	}
	switch kind {
	case game.EventSubstance:
		return substanceEvent(c, ec, r)
	case game.EventCorruption:
		return corruptionEvent(c, ec, r)
	case game.EventHorror:
		return horrorEvent(c, ec, r)
	default:
		return nil
	}
}

// pickCategory biases selection by the psychological axes: deep in an
// addiction or corruption spiral, that arc keeps pulling; high stress invites
// the horror pool. Otherwise uniform.
func pickCategory(c *game.CareerState, r rng.Source) game.EventKind {
	p := c.Psyche
	if p.AddictionRisk > 50 && r.Float64() < 0.4 {
		return game.EventSubstance
	}
	if p.MoralIntegrity < 40 && r.Float64() < 0.4 {
		return game.EventCorruption
	}
	if p.StressLevel > 70 && r.Float64() < 0.3 {
		return game.EventHorror
	}
	kinds := []game.EventKind{game.EventSubstance, game.EventCorruption, game.EventHorror}
	return kinds[r.Intn(len(kinds))]
}

func pickCharacter(ec game.EventContent, archetype string, r rng.Source) *game.Character {
	a, ok := ec.Archetypes[archetype]
	if !ok || len(a.Names) == 0 {
		return nil
	}
	ch := &game.Character{
		Archetype: archetype,
		Name:      a.Names[r.Intn(len(a.Names))],
		Traits:    a.Traits,
	}
	if len(a.Dialogues) > 0 {
		ch.Dialogue = a.Dialogues[r.Intn(len(a.Dialogues))]
	}
	return ch
}

func substanceEvent(c *game.CareerState, ec game.EventContent, r rng.Source) *game.Event {
	stage := c.Narrative.SubstanceStage
	if stage == "" {
		stage = game.StageExperimental
	}
	tpl, ok := ec.SubstanceStages[stage]
	if !ok {
		return nil
	}

	use := game.Choice{
		ID:        "use",
		Text:      fmt.Sprintf("Take the %s", tpl.Substance),
		RiskLevel: tpl.Risk,
		Immediate: game.ImmediateEffects{Stress: -tpl.StressRelief},
		Psych: game.PsychEffects{
			AddictionRisk:  tpl.AddictionGain,
			MoralIntegrity: -tpl.IntegrityCost,
		},
		Escalates: true,
	}
	if tpl.TraumaProb > 0 {
		use.Trauma = &game.TraumaRisk{
			Probability: tpl.TraumaProb,
			Severity:    "severe",
			Description: "The blackout left scars that will not fade.",
		}
	}
	refuse := game.Choice{
		ID:        "refuse",
		Text:      "Refuse and walk away",
		RiskLevel: game.RiskLow,
		Immediate: game.ImmediateEffects{Stress: tpl.RefusalStress},
		Psych:     game.PsychEffects{MoralIntegrity: 5},
	}
	choices := []game.Choice{use, refuse}

	// Once the band is past casual use, getting clean is on the table.
	if stage == game.StageDependent || stage == game.StageAddicted {
		choices = append(choices, game.Choice{
			ID:        "seek_help",
			Text:      "Check into a clinic",
			RiskLevel: game.RiskMedium,
			Immediate: game.ImmediateEffects{Money: -15000, Fame: -10},
			Psych: game.PsychEffects{
				AddictionRisk: -40,
				Depression:    -15,
				Stress:        -20,
			},
			// The clinic stay straightens out the bandmate the event concerns.
			Member: game.MemberEffects{
				Drama:       -1.5,
				Reliability: 1,
				Morale:      0.5,
			},
			TourBan: 3,
		})
	}

	ev := &game.Event{
		ID:          uuid.NewString(),
		Category:    game.EventSubstance,
		Title:       tpl.Title,
		Risk:        tpl.Risk,
		Description: tpl.Description,
		Character:   pickCharacter(ec, "dealer", r),
		Choices:     choices,
		Week:        c.Week,
	}
	// The offer comes through a bandmate when one is available.
	if len(c.Members) > 0 {
		ev.MemberUUID = c.Members[r.Intn(len(c.Members))].MemberUUID
	}
	return ev
}

func corruptionEvent(c *game.CareerState, ec game.EventContent, r rng.Source) *game.Event {
	stage := c.Narrative.CorruptionStage
	if stage == "" {
		stage = game.StageFirstCompromise
	}
	tpl, ok := ec.CorruptionStages[stage]
	if !ok {
		return nil
	}

	accept := game.Choice{
		ID:        "accept",
		Text:      "Take the deal",
		RiskLevel: tpl.Risk,
		Immediate: game.ImmediateEffects{Money: tpl.Money},
		Psych: game.PsychEffects{
			MoralIntegrity: -tpl.IntegrityCost,
			Paranoia:       tpl.ParanoiaGain,
		},
		Escalates: true,
	}
	refuse := game.Choice{
		ID:        "refuse",
		Text:      "Turn it down",
		RiskLevel: game.RiskLow,
		Immediate: game.ImmediateEffects{Stress: 10},
		Psych:     game.PsychEffects{MoralIntegrity: 10},
	}
	report := game.Choice{
		ID:        "report",
		Text:      "Report it to the authorities",
		RiskLevel: game.RiskHigh,
		Immediate: game.ImmediateEffects{Fame: 5, Stress: 20},
		Psych: game.PsychEffects{
			MoralIntegrity: 20,
			Paranoia:       25,
		},
	}

	return &game.Event{
		ID:          uuid.NewString(),
		Category:    game.EventCorruption,
		Title:       tpl.Title,
		Risk:        tpl.Risk,
		Description: tpl.Description,
		Character:   pickCharacter(ec, tpl.Archetype, r),
		Choices:     []game.Choice{accept, refuse, report},
		Week:        c.Week,
	}
}

func horrorEvent(c *game.CareerState, ec game.EventContent, r rng.Source) *game.Event {
	if len(ec.HorrorPool) == 0 {
		return nil
	}
	tpl := ec.HorrorPool[r.Intn(len(ec.HorrorPool))]

	confront := game.Choice{
		ID:        "confront",
		Text:      "Face it head on",
		RiskLevel: tpl.Risk,
		Immediate: game.ImmediateEffects{Stress: 15},
		Psych:     game.PsychEffects{Paranoia: 10},
		Trauma: &game.TraumaRisk{
			Probability: 0.3,
			Severity:    "moderate",
			Description: "The confrontation replays in your head for weeks.",
		},
	}
	report := game.Choice{
		ID:        "report",
		Text:      "Go to the police",
		RiskLevel: game.RiskMedium,
		Immediate: game.ImmediateEffects{Stress: 5},
		Psych:     game.PsychEffects{Paranoia: -10},
	}
	ignore := game.Choice{
		ID:        "ignore",
		Text:      "Pretend it never happened",
		RiskLevel: game.RiskHigh,
		Psych: game.PsychEffects{
			Paranoia:   20,
			Depression: 10,
			Stress:     15,
		},
	}

	return &game.Event{
		ID:          uuid.NewString(),
		Category:    game.EventHorror,
		Title:       tpl.Title,
		Risk:        tpl.Risk,
		Description: tpl.Description,
		Character:   pickCharacter(ec, "obsessed_fan", r),
		Choices:     []game.Choice{confront, report, ignore},
		Week:        c.Week,
	}
}
