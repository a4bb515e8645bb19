package service

import (
	"errors"
	"fmt"

	"github.com/2nist/Band-Manager/internal/game"
	"github.com/2nist/Band-Manager/internal/rng"
)

// memberHireCost is the signing bonus for a new band member.
const memberHireCost = 800

var (
	ErrBandFull       = errors.New("the band is already full")
	ErrBandAtMinimum  = errors.New("the band cannot get any smaller")
	ErrMemberNotFound = errors.New("member not found")
)

// HireMember adds a new member to the band. Instant; no week passes.
func HireMember(repo CareerRepo, content *game.Content, code, ownerEmail string, r rng.Source) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if len(c.Members) >= game.MaxMembers {
		return nil, ErrBandFull
	}
	if c.Money < memberHireCost {
		return nil, ErrInsufficientFunds
	}
	if r == nil {
		r = rng.Default()
	}

	m := buildMember(c, content, r)
	c.Money -= memberHireCost
	c.Members = append(c.Members, m)
	c.AppendLog(fmt.Sprintf("%s joined on %s (-$%d signing bonus).", m.Name, m.Role, memberHireCost))

	if err := repo.UpdateCareer(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FireMember removes a member. The two-member floor holds, and the rest of
// the band takes it personally.
func FireMember(repo CareerRepo, code, ownerEmail, memberUUID string) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}
	if len(c.Members) <= game.MinMembers {
		return nil, ErrBandAtMinimum
	}
	idx := -1
	for i := range c.Members {
		if c.Members[i].MemberUUID == memberUUID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrMemberNotFound
	}

	name := c.Members[idx].Name
	c.Members = append(c.Members[:idx], c.Members[idx+1:]...)
	c.Morale = game.ClampMorale(c.Morale - 5)
	c.AppendLog(fmt.Sprintf("%s was let go. The room got quiet.", name))

	if err := repo.UpdateCareer(c); err != nil {
		return nil, err
	}
	return c, nil
}
