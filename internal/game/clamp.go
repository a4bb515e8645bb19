package game

import "math"

// ClampMorale bounds band morale to [0,100].
func ClampMorale(v int) int {
	return ClampPercent(v)
}

// ClampPercent bounds a percentage-scale value to [0,100].
func ClampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampStat bounds a member stat to [1,10] and rounds to one decimal.
func ClampStat(v float64) float64 {
	if v < 1 {
		v = 1
	}
	if v > 10 {
		v = 10
	}
	return math.Round(v*10) / 10
}

// ClampPsyche normalizes every psychological axis to [0,100].
func ClampPsyche(p PsycheState) PsycheState {
	p.AddictionRisk = ClampPercent(p.AddictionRisk)
	p.MoralIntegrity = ClampPercent(p.MoralIntegrity)
	p.StressLevel = ClampPercent(p.StressLevel)
	p.Paranoia = ClampPercent(p.Paranoia)
	p.Depression = ClampPercent(p.Depression)
	return p
}
