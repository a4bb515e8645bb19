package game

// Content-table types. These are loaded from the server config file
// (band_config.json) and treated as read-only for the lifetime of the
// process; careers store only tier indices into them.

// StudioTier controls recording cost and the bonuses applied to new songs
// and albums. Upkeep feeds the weekly expense formula.
type StudioTier struct {
	Name           string `json:"name"`
	RecordCost     int    `json:"record_cost"`
	QualityBonus   int    `json:"quality_bonus"`
	PopBonus       int    `json:"pop_bonus"`
	FreshnessBonus int    `json:"freshness_bonus"`
	UpgradeCost    int    `json:"upgrade_cost"`
}

type TransportTier struct {
	Name        string `json:"name"`
	UpgradeCost int    `json:"upgrade_cost"`
	Upkeep      int    `json:"upkeep"`
}

type GearTier struct {
	Name        string `json:"name"`
	UpgradeCost int    `json:"upgrade_cost"`
	Upkeep      int    `json:"upkeep"`
}

type Venue struct {
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	TicketPrice int    `json:"ticket_price"`
	BasePayout  int    `json:"base_payout"`
	MinFame     int    `json:"min_fame"`
}

// TourPackage describes a multi-week tour: the upfront cost and the weekly
// proceeds while the tour is running.
type TourPackage struct {
	Name         string `json:"name"`
	Cost         int    `json:"cost"`
	Weeks        int    `json:"weeks"`
	WeeklyPayout int    `json:"weekly_payout"`
	WeeklyFame   int    `json:"weekly_fame"`
}

// StaffRates feed the staff term of the weekly expense formula. ManagerUpkeep
// and ManagerHireCost are indexed by manager tier.
type StaffRates struct {
	ManagerUpkeep   []int `json:"manager_upkeep"`
	ManagerHireCost []int `json:"manager_hire_cost"`
	LawyerUpkeep    int   `json:"lawyer_upkeep"`
	LawyerRetainer  int   `json:"lawyer_retainer"`
}

// Content is the full set of static tables the simulation runs against.
type Content struct {
	StudioTiers    []StudioTier    `json:"studio_tiers"`
	TransportTiers []TransportTier `json:"transport_tiers"`
	GearTiers      []GearTier      `json:"gear_tiers"`
	Venues         []Venue         `json:"venues"`
	Tours          []TourPackage   `json:"tours"`
	Staff          StaffRates      `json:"staff"`
	Genres         []string        `json:"genres"`
	SongTitles     []string        `json:"song_titles"`
	MemberNames    []string        `json:"member_names"`
	Events         EventContent    `json:"events"`
}

// VenueByName returns the venue with the given name or nil.
func (c *Content) VenueByName(name string) *Venue {
	for i := range c.Venues {
		if c.Venues[i].Name == name {
			return &c.Venues[i]
		}
	}
	return nil
}

// TourByName returns the tour package with the given name or nil.
func (c *Content) TourByName(name string) *TourPackage {
	for i := range c.Tours {
		if c.Tours[i].Name == name {
			return &c.Tours[i]
		}
	}
	return nil
}

// StudioFor returns the studio tier for the given index, clamped to the
// table bounds so a malformed save can never index out of range.
func (c *Content) StudioFor(tier int) StudioTier {
	return indexClamped(c.StudioTiers, tier)
}

func (c *Content) TransportFor(tier int) TransportTier {
	return indexClamped(c.TransportTiers, tier)
}

func (c *Content) GearFor(tier int) GearTier {
	return indexClamped(c.GearTiers, tier)
}

// ManagerUpkeepFor returns the weekly manager cost for a tier (0 = none).
func (c *Content) ManagerUpkeepFor(tier int) int {
	if tier <= 0 || len(c.Staff.ManagerUpkeep) == 0 {
		return 0
	}
	if tier >= len(c.Staff.ManagerUpkeep) {
		tier = len(c.Staff.ManagerUpkeep) - 1
	}
	return c.Staff.ManagerUpkeep[tier]
}

func indexClamped[T any](table []T, i int) T {
	var zero T
	if len(table) == 0 {
		return zero
	}
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// --- Event content -----------------------------------------------------

// Archetype is a fixed pool of names and dialogue lines for one recurring
// character type.
type Archetype struct {
	Names     []string `json:"names"`
	Traits    []string `json:"traits"`
	Dialogues []string `json:"dialogues"`
}

// SubstanceTemplate parameterizes one stage of the substance arc.
type SubstanceTemplate struct {
	Title         string    `json:"title"`
	Substance     string    `json:"substance"`
	Risk          RiskLevel `json:"risk"`
	Description   string    `json:"description"`
	AddictionGain int       `json:"addiction_gain"`
	IntegrityCost int       `json:"integrity_cost"`
	StressRelief  int       `json:"stress_relief"`
	RefusalStress int       `json:"refusal_stress"`
	TraumaProb    float64   `json:"trauma_prob"`
}

// CorruptionTemplate parameterizes one stage of the corruption arc.
type CorruptionTemplate struct {
	Title         string    `json:"title"`
	Risk          RiskLevel `json:"risk"`
	Description   string    `json:"description"`
	Money         int       `json:"money"`
	IntegrityCost int       `json:"integrity_cost"`
	ParanoiaGain  int       `json:"paranoia_gain"`
	Archetype     string    `json:"archetype"`
}

// HorrorTemplate is one entry of the stage-independent horror pool.
type HorrorTemplate struct {
	Title       string    `json:"title"`
	Risk        RiskLevel `json:"risk"`
	Description string    `json:"description"`
	Threat      string    `json:"threat"`
}

type EventContent struct {
	Archetypes       map[string]Archetype                   `json:"archetypes"`
	SubstanceStages  map[SubstanceStage]SubstanceTemplate   `json:"substance_stages"`
	CorruptionStages map[CorruptionStage]CorruptionTemplate `json:"corruption_stages"`
	HorrorPool       []HorrorTemplate                       `json:"horror_pool"`
}

// Empty reports whether no event content was configured.
func (ec EventContent) Empty() bool {
	return len(ec.SubstanceStages) == 0 && len(ec.CorruptionStages) == 0 && len(ec.HorrorPool) == 0
}

// DefaultEventContent returns the built-in event tables. The config file may
// override them wholesale; when its events section is empty these are used.
func DefaultEventContent() EventContent {
	return EventContent{
		Archetypes: map[string]Archetype{
			"sleazy_manager": {
				Names:  []string{"Slick Eddie Goldman", "Fast Tony Sterling", "Lucky Diamond", "Sharp Mickey Cross", "Big Sal Stone"},
				Traits: []string{"manipulative", "charismatic", "greedy", "connected"},
				Dialogues: []string{
					`"Trust me, kid, I know what I'm talking about."`,
					`"This is how the business works."`,
					`"You scratch my back, I scratch yours."`,
					`"Everybody wins in this deal."`,
				},
			},
			"dealer": {
				Names:  []string{"The Connection", "Marco", "Vince", "D", "Rex"},
				Traits: []string{"calculating", "dangerous", "business_minded", "territorial"},
				Dialogues: []string{
					`"First taste is free, after that we talk business."`,
					`"I provide a service to creative people."`,
					`"You want to reach new heights? I got your elevation."`,
					`"Cash only, no questions, no problems."`,
				},
			},
			"obsessed_fan": {
				Names:  []string{"Anonymous Admirer", "The One", "Your Shadow", "Forever Devoted", "Connected Soul"},
				Traits: []string{"unstable", "devoted", "intelligent", "dangerous"},
				Dialogues: []string{
					`"You saved my life with your music."`,
					`"We're connected on a spiritual level."`,
					`"I understand you better than anyone."`,
					`"If I can't have you, no one can."`,
				},
			},
			"corrupt_cop": {
				Names:  []string{"Detective Marcus", "Officer Walsh", "Sergeant Price", "Captain Collins", "Detective Blake"},
				Traits: []string{"authoritarian", "corruptible", "violent", "cynical"},
				Dialogues: []string{
					`"We can do this the easy way or the hard way."`,
					`"I didn't see nothing if you didn't see nothing."`,
					`"This badge gives me options you don't have."`,
					`"Around here, I AM the law."`,
				},
			},
			"industry_executive": {
				Names:  []string{"Richard Sterling", "David Chen", "Alexandra Moore", "James Mitchell", "Victoria Banks"},
				Traits: []string{"calculated", "powerful", "ruthless", "experienced"},
				Dialogues: []string{
					`"This is a business, not a hobby."`,
					`"Your talent is valuable, but replaceable."`,
					`"The market decides your worth."`,
					`"Sign or walk, but don't waste my time."`,
				},
			},
		},
		SubstanceStages: map[SubstanceStage]SubstanceTemplate{
			StageExperimental: {
				Title:     "First Hit",
				Substance: "cocaine",
				Risk:      RiskHigh,
				Description: "Your guitarist comes to you after the show, eyes dilated, movements jittery. " +
					`"You HAVE to try this. I've never felt so connected to the music." ` +
					"They hold out a small baggie. Several industry people are watching.",
				AddictionGain: 30,
				IntegrityCost: 10,
				StressRelief:  25,
				RefusalStress: 10,
			},
			StageRegularUse: {
				Title:     "The Routine",
				Substance: "cocaine",
				Risk:      RiskHigh,
				Description: "Your bassist casually leaves a small packet on the studio console. " +
					`"For the long sessions," they say with a knowing smile. ` +
					"It's becoming normal now. The sessions without it feel flat.",
				AddictionGain: 30,
				IntegrityCost: 15,
				StressRelief:  25,
				RefusalStress: 10,
			},
			StageDependent: {
				Title:     "Can't Stop",
				Substance: "various",
				Risk:      RiskExtreme,
				Description: "You're shaking. The tour doesn't start for three days but you feel like " +
					"you're crawling out of your skin. You know exactly where to get what you need. " +
					"The only question is: do you reach out?",
				AddictionGain: 30,
				IntegrityCost: 20,
				StressRelief:  25,
				RefusalStress: 30,
			},
			StageAddicted: {
				Title:     "Rock Bottom",
				Substance: "heroin",
				Risk:      RiskExtreme,
				Description: "You wake up in a bathroom you don't recognize. There's blood on your arm. " +
					"You can't remember last night. Your phone has 47 missed calls from increasingly " +
					"panicked band members and your manager.",
				AddictionGain: 30,
				IntegrityCost: 30,
				StressRelief:  25,
				RefusalStress: 50,
				TraumaProb:    0.4,
			},
		},
		CorruptionStages: map[CorruptionStage]CorruptionTemplate{
			StageFirstCompromise: {
				Title: "The Offer",
				Risk:  RiskMedium,
				Description: `A smooth-talking executive takes you aside. "We want to add your song to ` +
					`rotation, but radio doesn't work like it used to. There's a fee - $5000 upfront, ` +
					`and we'll make sure you get heavy play."`,
				Money:         5000,
				IntegrityCost: 20,
				ParanoiaGain:  10,
				Archetype:     "industry_executive",
			},
			StageMoralFlexibility: {
				Title: "The Bigger Deal",
				Risk:  RiskHigh,
				Description: `Your manager presents a new deal: $50,000 advance, but the label keeps 80% ` +
					`of streaming revenue. "Everyone does it this way," they say. You know it's predatory. ` +
					`You also know you need the money.`,
				Money:         50000,
				IntegrityCost: 30,
				ParanoiaGain:  10,
				Archetype:     "sleazy_manager",
			},
			StageActiveCorruption: {
				Title: "The Criminal Connection",
				Risk:  RiskExtreme,
				Description: `A man in expensive clothes approaches you after the show. "Transport packages ` +
					`during your tour. $10,000 per city, no questions asked." You know exactly what this means.`,
				Money:         100000,
				IntegrityCost: 40,
				ParanoiaGain:  30,
				Archetype:     "dealer",
			},
			StageDeepInvolvement: {
				Title: "The Point of No Return",
				Risk:  RiskExtreme,
				Description: `Your contact makes you an offer you can't refuse - literally. "You're in this ` +
					`with us now. We need guaranteed returns." The scheme would make you hundreds of ` +
					`thousands but commit you to serious federal crimes.`,
				Money:         500000,
				IntegrityCost: 50,
				ParanoiaGain:  50,
				Archetype:     "corrupt_cop",
			},
		},
		HorrorPool: []HorrorTemplate{
			{
				Title: "The Shrine",
				Risk:  RiskCritical,
				Description: "A fan invites you to their apartment. The walls are covered - thousands of " +
					"photos of you, some taken with telephoto lenses from outside your home. A lock of " +
					`hair in a frame. "We're meant to be together," they whisper as they lock the door.`,
				Threat: "stalker",
			},
			{
				Title: "The Voice",
				Risk:  RiskExtreme,
				Description: "You're alone in your hotel room when you hear it - whispers that aren't there. " +
					`The voice gets clearer: "They don't really love you. When they find out who you are, ` +
					`they'll leave. Everyone always does."`,
				Threat: "psychotic_break",
			},
			{
				Title: "The Letter",
				Risk:  RiskExtreme,
				Description: "A fan letter arrives that makes your blood run cold. They know details about " +
					"your childhood you've never spoken about publicly. They know where you live, what " +
					"route you take to the studio, what you ate for lunch yesterday.",
				Threat: "obsession",
			},
			{
				Title: "The Overdose",
				Risk:  RiskExtreme,
				Description: "During your show, a kid in the front row collapses - purple lips, not breathing. " +
					"They're wearing your merchandise. As they're wheeled out, you realize you've been " +
					"glamorizing exactly this lifestyle.",
				Threat: "guilt_trauma",
			},
		},
	}
}
