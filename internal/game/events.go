package game

// EventKind is the discriminator tag for narrative events.
type EventKind string

const (
	EventSubstance  EventKind = "substance"
	EventCorruption EventKind = "corruption"
	EventHorror     EventKind = "horror"
	// EventAuto lets the generator pick a category biased by the current
	// psychological state.
	EventAuto EventKind = "auto"
)

// RiskLevel labels how dangerous an event or a choice is.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskExtreme  RiskLevel = "extreme"
	RiskCritical RiskLevel = "critical"
)

// SubstanceStage is the ordered escalation ladder for substance events.
type SubstanceStage string

const (
	StageExperimental SubstanceStage = "experimental"
	StageRegularUse   SubstanceStage = "regular_use"
	StageDependent    SubstanceStage = "dependent"
	StageAddicted     SubstanceStage = "addicted"
)

// NextSubstanceStage returns the stage after s, or s when already terminal.
func NextSubstanceStage(s SubstanceStage) SubstanceStage {
	switch s {
	case StageExperimental:
		return StageRegularUse
	case StageRegularUse:
		return StageDependent
	case StageDependent, StageAddicted:
		return StageAddicted
	default:
		return StageRegularUse
	}
}

// CorruptionStage is the ordered escalation ladder for corruption events.
type CorruptionStage string

const (
	StageFirstCompromise  CorruptionStage = "first_compromise"
	StageMoralFlexibility CorruptionStage = "moral_flexibility"
	StageActiveCorruption CorruptionStage = "active_corruption"
	StageDeepInvolvement  CorruptionStage = "deep_involvement"
)

// NextCorruptionStage returns the stage after s, or s when already terminal.
func NextCorruptionStage(s CorruptionStage) CorruptionStage {
	switch s {
	case StageFirstCompromise:
		return StageMoralFlexibility
	case StageMoralFlexibility:
		return StageActiveCorruption
	case StageActiveCorruption, StageDeepInvolvement:
		return StageDeepInvolvement
	default:
		return StageMoralFlexibility
	}
}

// Character is the flavor-text persona attached to an event. It carries no
// mechanical effect beyond display.
type Character struct {
	Archetype string   `json:"archetype"`
	Name      string   `json:"name"`
	Dialogue  string   `json:"dialogue"`
	Traits    []string `json:"traits,omitempty"`
}

// ImmediateEffects are applied to the career the moment a choice resolves.
type ImmediateEffects struct {
	Money  int `json:"money,omitempty"`
	Morale int `json:"morale,omitempty"`
	Fame   int `json:"fame,omitempty"`
	Stress int `json:"stress,omitempty"`
}

// PsychEffects shift the psychological axes; each target field is clamped
// to [0,100] after the delta is applied.
type PsychEffects struct {
	AddictionRisk  int `json:"addiction_risk,omitempty"`
	MoralIntegrity int `json:"moral_integrity,omitempty"`
	Paranoia       int `json:"paranoia,omitempty"`
	Depression     int `json:"depression,omitempty"`
	Stress         int `json:"stress,omitempty"`
}

// MemberEffects target the member the event concerns (Event.MemberUUID).
type MemberEffects struct {
	Drama       float64 `json:"drama,omitempty"`
	Reliability float64 `json:"reliability,omitempty"`
	Morale      float64 `json:"morale,omitempty"`
}

// TraumaRisk is a probabilistic lasting consequence rolled at resolution.
type TraumaRisk struct {
	Probability float64 `json:"probability"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
}

type Choice struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	RiskLevel RiskLevel        `json:"risk_level"`
	Immediate ImmediateEffects `json:"immediate_effects"`
	Psych     PsychEffects     `json:"psychological_effects"`
	Member    MemberEffects    `json:"member_effects"`
	Trauma    *TraumaRisk      `json:"trauma_risk,omitempty"`
	// TourBan raises the career's gig ban to at least this many weeks.
	TourBan int `json:"tour_ban,omitempty"`
	// Escalates advances the category's progression stage on resolution.
	Escalates bool `json:"escalates,omitempty"`
}

type Event struct {
	ID          string     `json:"id"`
	Category    EventKind  `json:"category"`
	Title       string     `json:"title"`
	Risk        RiskLevel  `json:"risk"`
	Description string     `json:"description"`
	Character   *Character `json:"character,omitempty"`
	// MemberUUID references the member the event concerns, when any.
	MemberUUID string   `json:"member_uuid,omitempty"`
	Choices    []Choice `json:"choices"`
	Week       int      `json:"week"`
}

// ChoiceByID returns the matching choice or nil.
func (e *Event) ChoiceByID(id string) *Choice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}
