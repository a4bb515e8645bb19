package game

import (
	"gorm.io/gorm"
)

// LogCap bounds the career activity log. The log is most-recent-first and
// the oldest entries are evicted once the cap is reached.
const LogCap = 12

// Band size invariants. A career is never allowed to drop below MinMembers
// or grow beyond MaxMembers, whether by firing, hiring or a quit roll.
const (
	MinMembers = 2
	MaxMembers = 6
)

// ActionContext tags the action that triggered a weekly advance so member
// stat drift can react to what the band actually spent the week doing.
type ActionContext string

const (
	ContextNeutral  ActionContext = ""
	ContextRehearse ActionContext = "rehearse"
	ContextGig      ActionContext = "gig"
	ContextWrite    ActionContext = "write"
	ContextRest     ActionContext = "rest"
	ContextTrain    ActionContext = "train"
	ContextPromote  ActionContext = "promote"
)

// MemberRole is the instrument category a member covers.
type MemberRole string

const (
	RoleVocals MemberRole = "vocals"
	RoleGuitar MemberRole = "guitar"
	RoleBass   MemberRole = "bass"
	RoleDrums  MemberRole = "drums"
	RoleSynth  MemberRole = "synth"
	RoleDJ     MemberRole = "dj"
)

// Personality flavors a member; it has no mechanical effect beyond display
// and member generation.
type Personality string

const (
	PersonalitySteady        Personality = "steady"
	PersonalityVolatile      Personality = "volatile"
	PersonalityAmbitious     Personality = "ambitious"
	PersonalityLaidBack      Personality = "laid_back"
	PersonalityPerfectionist Personality = "perfectionist"
)

// MemberStats are clamped to [1,10] with one decimal of precision after
// every mutation (see ClampStat).
type MemberStats struct {
	Skill         float64 `json:"skill"`
	Creativity    float64 `json:"creativity"`
	StagePresence float64 `json:"stage_presence"`
	Reliability   float64 `json:"reliability"`
	Morale        float64 `json:"morale"`
	Drama         float64 `json:"drama"`
}

type Member struct {
	gorm.Model
	CareerID    uint        `json:"-"`
	MemberUUID  string      `json:"member_uuid" gorm:"index"`
	Name        string      `json:"name"`
	Role        MemberRole  `json:"role"`
	Personality Personality `json:"personality"`
	Stats       MemberStats `json:"stats" gorm:"embedded;embeddedPrefix:stat_"`
}

type Song struct {
	gorm.Model
	CareerID uint   `json:"-"`
	Title    string `json:"title"`
	// Quality is fixed at creation; Popularity is recomputed weekly.
	Quality    int `json:"quality"`
	Popularity int `json:"popularity"`
	Age        int `json:"age"`
	// Monotonically increasing accumulators.
	Earnings      int `json:"earnings"`
	Plays         int `json:"plays"`
	Streams       int `json:"streams"`
	WeeklyStreams int `json:"weekly_streams"`
	// FreshnessWeight scales the freshness term of the weekly stream count;
	// it is set from the studio tier at recording time.
	FreshnessWeight float64 `json:"freshness_weight"`
	VideoBoost      bool    `json:"video_boost"`
	// InAlbum is a one-way flag: once a song is pressed onto an album it is
	// never released back into the loose-singles pool.
	InAlbum bool `json:"in_album"`
}

type Album struct {
	gorm.Model
	CareerID     uint     `json:"-"`
	Name         string   `json:"name"`
	SongTitles   []string `json:"song_titles" gorm:"serializer:json"`
	Quality      int      `json:"quality"`
	Popularity   int      `json:"popularity"`
	ChartScore   int      `json:"chart_score"`
	Age          int      `json:"age"`
	PromoBoost   int      `json:"promo_boost"`
	ReleasedWeek int      `json:"released_week"`
}

// Trend is a transient market-wide popularity bonus. It is active while
// WeeksRemaining > 0 and only benefits songs matching the band's genre.
type Trend struct {
	Genre          string `json:"genre"`
	Modifier       int    `json:"modifier"`
	WeeksRemaining int    `json:"weeks_remaining"`
}

func (t Trend) Active() bool { return t.WeeksRemaining > 0 }

// PsycheState tracks the psychological axes that steer event generation.
// All fields are clamped to [0,100].
type PsycheState struct {
	AddictionRisk  int `json:"addiction_risk"`
	MoralIntegrity int `json:"moral_integrity"`
	StressLevel    int `json:"stress_level"`
	Paranoia       int `json:"paranoia"`
	Depression     int `json:"depression"`
}

// NarrativeState carries the ordered escalation stages for the substance and
// corruption event arcs. Horror events have no stage.
type NarrativeState struct {
	SubstanceStage  SubstanceStage  `json:"substance_stage"`
	CorruptionStage CorruptionStage `json:"corruption_stage"`
}

// CareerState is the aggregate root for one band career. It is owned
// exclusively by the active play session; every mutation flows through the
// engine or a service action.
type CareerState struct {
	gorm.Model
	Code       string `json:"code" gorm:"uniqueIndex"`
	OwnerEmail string `json:"owner_email" gorm:"index"`
	BandName   string `json:"band_name" gorm:"size:32"`
	Genre      string `json:"genre"`
	Difficulty string `json:"difficulty"`

	Week   int `json:"week"`
	Money  int `json:"money"` // may go negative; debt is allowed
	Fame   int `json:"fame"`
	Fans   int `json:"fans"`
	Morale int `json:"morale"`

	TourBan           int `json:"tour_ban"`
	TrainingCooldown  int `json:"training_cooldown"`
	PromotionCooldown int `json:"promotion_cooldown"`

	// Tier indices into the content tables; monotonically non-decreasing.
	StudioTier    int  `json:"studio_tier"`
	TransportTier int  `json:"transport_tier"`
	GearTier      int  `json:"gear_tier"`
	ManagerTier   int  `json:"manager_tier"`
	HasLawyer     bool `json:"has_lawyer"`

	ActiveTour         string `json:"active_tour"`
	TourWeeksRemaining int    `json:"tour_weeks_remaining"`

	GigsPlayed       int `json:"gigs_played"`
	TotalRevenue     int `json:"total_revenue"`
	TotalMerchandise int `json:"total_merchandise"`

	Trend     Trend          `json:"trend" gorm:"embedded;embeddedPrefix:trend_"`
	Psyche    PsycheState    `json:"psyche" gorm:"embedded;embeddedPrefix:psy_"`
	Narrative NarrativeState `json:"narrative" gorm:"embedded;embeddedPrefix:arc_"`

	Members []Member `json:"members"`
	Songs   []Song   `json:"songs"`
	Albums  []Album  `json:"albums"`

	// Log is most-recent-first and capped at LogCap entries.
	Log []string `json:"log" gorm:"serializer:json"`

	// CurrentEvent is the single pending narrative event awaiting a choice,
	// or nil when the event state machine is idle.
	CurrentEvent *Event `json:"current_event" gorm:"serializer:json"`
}

// AppendLog inserts an entry at the front of the log and evicts the oldest
// entries beyond LogCap.
func (c *CareerState) AppendLog(entry string) {
	if entry == "" {
		return
	}
	c.Log = append([]string{entry}, c.Log...)
	if len(c.Log) > LogCap {
		c.Log = c.Log[:LogCap]
	}
}

// MemberByUUID returns the member with the given UUID or nil.
func (c *CareerState) MemberByUUID(id string) *Member {
	for i := range c.Members {
		if c.Members[i].MemberUUID == id {
			return &c.Members[i]
		}
	}
	return nil
}

// SongByTitle returns the song with the given title or nil.
func (c *CareerState) SongByTitle(title string) *Song {
	for i := range c.Songs {
		if c.Songs[i].Title == title {
			return &c.Songs[i]
		}
	}
	return nil
}

// AlbumByName returns the album with the given name or nil.
func (c *CareerState) AlbumByName(name string) *Album {
	for i := range c.Albums {
		if c.Albums[i].Name == name {
			return &c.Albums[i]
		}
	}
	return nil
}

// SaveSlot stores a whole-object snapshot of a CareerState. Snapshots are
// plain JSON with a schema version so future format changes can migrate old
// saves instead of rejecting them.
type SaveSlot struct {
	gorm.Model
	OwnerEmail    string `json:"-" gorm:"index"`
	Key           string `json:"key" gorm:"uniqueIndex"`
	Name          string `json:"name"`
	SchemaVersion int    `json:"schema_version"`
	BandName      string `json:"band_name"`
	Week          int    `json:"week"`
	Data          []byte `json:"-" gorm:"type:blob"`
}

// SnapshotSchemaVersion is stamped into every save slot.
const SnapshotSchemaVersion = 1

// Profile stores unique account identity and aggregate career stats.
type Profile struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex"`
	DisplayName    string
	CareersStarted int
	WeeksSimulated int
	PeakFame       int
}

// Unify global profiles table name as "player_profiles"
func (Profile) TableName() string { return "player_profiles" }
