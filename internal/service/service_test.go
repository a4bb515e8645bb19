package service

import (
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
	"gorm.io/gorm"
)

// mockRepo is an in-memory SlotRepo shared by the service tests.
type mockRepo struct {
	careers map[string]*game.CareerState
	slots   map[string]*game.SaveSlot
	updated *game.CareerState
	profile struct {
		careers, weeks, fame int
	}
	nextID uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		careers: map[string]*game.CareerState{},
		slots:   map[string]*game.SaveSlot{},
	}
}

func (m *mockRepo) CreateCareer(c *game.CareerState) error {
	m.nextID++
	c.Model = gorm.Model{ID: m.nextID}
	m.careers[c.Code] = c
	return nil
}

func (m *mockRepo) GetCareerByCode(code string) (*game.CareerState, error) {
	if c, ok := m.careers[code]; ok {
		return c, nil
	}
	return nil, ErrCareerNotFound
}

func (m *mockRepo) ListCareersByOwner(email string) ([]game.CareerState, error) {
	var out []game.CareerState
	for _, c := range m.careers {
		if c.OwnerEmail == email {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateCareer(c *game.CareerState) error {
	m.updated = c
	m.careers[c.Code] = c
	return nil
}

func (m *mockRepo) DeleteCareer(code string) error {
	delete(m.careers, code)
	return nil
}

func (m *mockRepo) BumpProfileStats(email string, careersStarted, weeksSimulated, fame int) error {
	m.profile.careers += careersStarted
	m.profile.weeks += weeksSimulated
	if fame > m.profile.fame {
		m.profile.fame = fame
	}
	return nil
}

func (m *mockRepo) UpsertSaveSlot(s *game.SaveSlot) error {
	m.slots[s.Key] = s
	return nil
}

func (m *mockRepo) GetSaveSlot(ownerEmail, key string) (*game.SaveSlot, error) {
	if s, ok := m.slots[key]; ok && s.OwnerEmail == ownerEmail {
		return s, nil
	}
	return nil, ErrSaveNotFound
}

func (m *mockRepo) ListSaveSlots(ownerEmail string) ([]game.SaveSlot, error) {
	var out []game.SaveSlot
	for _, s := range m.slots {
		if s.OwnerEmail == ownerEmail {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockRepo) DeleteSaveSlot(ownerEmail, key string) error {
	if s, ok := m.slots[key]; ok && s.OwnerEmail == ownerEmail {
		delete(m.slots, key)
		return nil
	}
	return ErrSaveNotFound
}

func testContent() *game.Content {
	return &game.Content{
		StudioTiers: []game.StudioTier{
			{Name: "Garage", RecordCost: 500},
			{Name: "Indie Studio", RecordCost: 1200, QualityBonus: 8, PopBonus: 6, FreshnessBonus: 10, UpgradeCost: 4000},
		},
		TransportTiers: []game.TransportTier{
			{Name: "Borrowed Van"},
			{Name: "Used Van", UpgradeCost: 3000, Upkeep: 40},
		},
		GearTiers: []game.GearTier{
			{Name: "Pawn Shop"},
			{Name: "Working Gear", UpgradeCost: 2500, Upkeep: 30},
		},
		Venues: []game.Venue{
			{Name: "The Basement", Capacity: 60, TicketPrice: 5, BasePayout: 100},
			{Name: "Grand Hall", Capacity: 1200, TicketPrice: 22, BasePayout: 2200, MinFame: 45},
		},
		Tours: []game.TourPackage{
			{Name: "Club Circuit", Cost: 2000, Weeks: 3, WeeklyPayout: 900, WeeklyFame: 4},
		},
		Staff: game.StaffRates{
			ManagerUpkeep:   []int{0, 200},
			ManagerHireCost: []int{0, 1500},
			LawyerUpkeep:    300,
			LawyerRetainer:  2500,
		},
		Genres:      []string{"punk", "jazz"},
		SongTitles:  []string{"Static", "Glass Houses", "Neon Exit", "Borrowed Time"},
		MemberNames: []string{"Alex", "Sam", "Riley", "Jordan", "Casey", "Drew", "Morgan"},
		Events:      game.DefaultEventContent(),
	}
}

// seedCareer creates a career directly in the mock so tests control its code.
func seedCareer(m *mockRepo, code, owner string) *game.CareerState {
	c := &game.CareerState{
		Code:       code,
		OwnerEmail: owner,
		BandName:   "Test Band",
		Genre:      "punk",
		Difficulty: "normal",
		Money:      5000,
		Morale:     70,
		Psyche:     game.PsycheState{MoralIntegrity: 100},
		Members: []game.Member{
			{MemberUUID: "m1", Name: "Alex", Role: game.RoleGuitar, Stats: game.MemberStats{Skill: 5, Creativity: 5, StagePresence: 5, Reliability: 5, Morale: 5, Drama: 5}},
			{MemberUUID: "m2", Name: "Sam", Role: game.RoleDrums, Stats: game.MemberStats{Skill: 5, Creativity: 5, StagePresence: 5, Reliability: 5, Morale: 5, Drama: 5}},
		},
	}
	_ = m.CreateCareer(c)
	return c
}

// noEvent always rolls above every trigger chance.
func noEvent() rng.Source { return &rng.Script{Seq: []float64{0.99}} }

func songFixture(title string) game.Song {
	return game.Song{Title: title, Quality: 70, Popularity: 50, FreshnessWeight: 1}
}

func albumFixture(name string) game.Album {
	return game.Album{Name: name, Quality: 70}
}

// eventFixture is a minimal pending event for tests that only care about the
// event state machine, not the generated content.
func eventFixture() *game.Event {
	return &game.Event{
		ID:       "ev-test",
		Category: game.EventCorruption,
		Title:    "The Offer",
		Choices: []game.Choice{
			{ID: "accept", Text: "Take the deal", Immediate: game.ImmediateEffects{Money: 5000}, Psych: game.PsychEffects{MoralIntegrity: -20}, Escalates: true},
			{ID: "refuse", Text: "Turn it down", Psych: game.PsychEffects{MoralIntegrity: 10}},
		},
	}
}
