package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/rng"
)

var (
	ErrBandNameRequired  = errors.New("band name is required")
	ErrBandNameTooLong   = errors.New("band name exceeds 32 characters")
	ErrUnknownGenre      = errors.New("genre is not in the configured list")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// careerCodeAlphabet excludes lookalike characters so codes survive being
// read aloud or written down.
const careerCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const careerCodeLength = 6

var startingMoney = map[string]int{
	"easy":   3000,
	"normal": 1500,
	"hard":   800,
}

// NewCareerCode generates a short shareable career code.
func NewCareerCode() (string, error) {
	return gonanoid.Generate(careerCodeAlphabet, careerCodeLength)
}

// CreateCareer starts a new band career for the given account: a fresh code,
// two founding members and difficulty-scaled starting money.
func CreateCareer(repo CareerRepo, content *game.Content, ownerEmail, bandName, genre, difficulty string, r rng.Source) (*game.CareerState, error) {
	bandName = strings.TrimSpace(bandName)
	if bandName == "" {
		return nil, ErrBandNameRequired
	}
	if len(bandName) > 32 {
		return nil, ErrBandNameTooLong
	}
	if !containsFold(content.Genres, genre) {
		return nil, ErrUnknownGenre
	}
	if difficulty == "" {
		difficulty = "normal"
	}
	money, ok := startingMoney[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if r == nil {
		r = rng.Default()
	}

	code, err := NewCareerCode()
	if err != nil {
		return nil, err
	}

	c := &game.CareerState{
		Code:       code,
		OwnerEmail: ownerEmail,
		BandName:   bandName,
		Genre:      genre,
		Difficulty: difficulty,
		Money:      money,
		Morale:     70,
		Psyche:     game.PsycheState{MoralIntegrity: 100},
	}
	for i := 0; i < game.MinMembers; i++ {
		c.Members = append(c.Members, buildMember(c, content, r))
	}
	c.AppendLog(fmt.Sprintf("%s formed. Two kids, a borrowed van and $%d.", bandName, money))

	if err := repo.CreateCareer(c); err != nil {
		return nil, err
	}
	if err := repo.BumpProfileStats(ownerEmail, 1, 0, 0); err != nil {
		logging.Error("failed to bump profile on career start", err, logging.Fields{constants.LogFieldCareerCode: c.Code})
	}
	logging.Info("career created", logging.Fields{constants.LogFieldCareerCode: c.Code, constants.LogFieldBandName: bandName})
	return c, nil
}

// ListCareers returns the account's careers, most recently played first.
func ListCareers(repo CareerRepo, ownerEmail string) ([]game.CareerState, error) {
	return repo.ListCareersByOwner(ownerEmail)
}

// GetCareer loads one career after an ownership check.
func GetCareer(repo CareerRepo, code, ownerEmail string) (*game.CareerState, error) {
	return loadOwnedCareer(repo, code, ownerEmail)
}

// DeleteCareer removes a career and its members, songs and albums.
func DeleteCareer(repo CareerRepo, code, ownerEmail string) error {
	if _, err := loadOwnedCareer(repo, code, ownerEmail); err != nil {
		return err
	}
	return repo.DeleteCareer(code)
}

var memberRoles = []game.MemberRole{
	game.RoleVocals, game.RoleGuitar, game.RoleBass, game.RoleDrums, game.RoleSynth, game.RoleDJ,
}

var memberPersonalities = []game.Personality{
	game.PersonalitySteady, game.PersonalityVolatile, game.PersonalityAmbitious,
	game.PersonalityLaidBack, game.PersonalityPerfectionist,
}

// buildMember rolls a new band member: an unused name from the content pool
// and stats spread around the middle of the scale.
func buildMember(c *game.CareerState, content *game.Content, r rng.Source) game.Member {
	name := pickUnusedName(c, content, r)
	roll := func() float64 { return game.ClampStat(3.5 + r.Float64()*3) }
	return game.Member{
		MemberUUID:  uuid.NewString(),
		Name:        name,
		Role:        memberRoles[r.Intn(len(memberRoles))],
		Personality: memberPersonalities[r.Intn(len(memberPersonalities))],
		Stats: game.MemberStats{
			Skill:         roll(),
			Creativity:    roll(),
			StagePresence: roll(),
			Reliability:   roll(),
			Morale:        game.ClampStat(5 + r.Float64()*2),
			Drama:         game.ClampStat(2 + r.Float64()*3),
		},
	}
}

func pickUnusedName(c *game.CareerState, content *game.Content, r rng.Source) string {
	used := make(map[string]struct{}, len(c.Members))
	for i := range c.Members {
		used[c.Members[i].Name] = struct{}{}
	}
	free := make([]string, 0, len(content.MemberNames))
	for _, n := range content.MemberNames {
		if _, taken := used[n]; !taken {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return fmt.Sprintf("Session Player %d", len(c.Members)+1)
	}
	return free[r.Intn(len(free))]
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
