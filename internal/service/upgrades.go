package service

import (
	"errors"
	"fmt"

	"github.com/2nist/Band-Manager/internal/game"
)

var (
	ErrMaxTier        = errors.New("already at the top tier")
	ErrAlreadyLawyer  = errors.New("a lawyer is already on retainer")
	ErrUnknownUpgrade = errors.New("unknown upgrade target")
)

// Upgrade buys the next tier of studio, transport, gear or management, or
// puts a lawyer on retainer. Purchases are instant; they do not advance the
// week.
func Upgrade(repo CareerRepo, content *game.Content, code, ownerEmail, target string) (*game.CareerState, error) {
	c, err := loadOwnedCareer(repo, code, ownerEmail)
	if err != nil {
		return nil, err
	}

	var cost int
	var entry string
	switch target {
	case "studio":
		next := c.StudioTier + 1
		if next >= len(content.StudioTiers) {
			return nil, ErrMaxTier
		}
		cost = content.StudioTiers[next].UpgradeCost
		if c.Money < cost {
			return nil, ErrInsufficientFunds
		}
		c.StudioTier = next
		entry = fmt.Sprintf("Moved up to %s (-$%d).", content.StudioTiers[next].Name, cost)
	case "transport":
		next := c.TransportTier + 1
		if next >= len(content.TransportTiers) {
			return nil, ErrMaxTier
		}
		cost = content.TransportTiers[next].UpgradeCost
		if c.Money < cost {
			return nil, ErrInsufficientFunds
		}
		c.TransportTier = next
		entry = fmt.Sprintf("Bought a %s (-$%d).", content.TransportTiers[next].Name, cost)
	case "gear":
		next := c.GearTier + 1
		if next >= len(content.GearTiers) {
			return nil, ErrMaxTier
		}
		cost = content.GearTiers[next].UpgradeCost
		if c.Money < cost {
			return nil, ErrInsufficientFunds
		}
		c.GearTier = next
		entry = fmt.Sprintf("Upgraded to %s (-$%d).", content.GearTiers[next].Name, cost)
	case "manager":
		next := c.ManagerTier + 1
		if next >= len(content.Staff.ManagerHireCost) {
			return nil, ErrMaxTier
		}
		cost = content.Staff.ManagerHireCost[next]
		if c.Money < cost {
			return nil, ErrInsufficientFunds
		}
		c.ManagerTier = next
		entry = fmt.Sprintf("Hired a better manager (-$%d).", cost)
	case "lawyer":
		if c.HasLawyer {
			return nil, ErrAlreadyLawyer
		}
		cost = content.Staff.LawyerRetainer
		if c.Money < cost {
			return nil, ErrInsufficientFunds
		}
		c.HasLawyer = true
		entry = fmt.Sprintf("Put a lawyer on retainer (-$%d).", cost)
	default:
		return nil, ErrUnknownUpgrade
	}

	c.Money -= cost
	c.AppendLog(entry)
	if err := repo.UpdateCareer(c); err != nil {
		return nil, err
	}
	return c, nil
}
