package engine

import (
	"fmt"
	"math"
)

// streamPayoutPerThousand is the royalty paid per 1000 streams ($0.004 each).
const streamPayoutPerThousand = 4

// viralSpikeChance is the weekly probability a song catches a viral spike.
const viralSpikeChance = 0.03

// tickSongs recomputes every song's popularity and stream counts for the new
// week and returns the total royalty earned.
func (wc *weekContext) tickSongs(seasonal int) int {
	c := wc.c
	trendBonus := 0
	if c.Trend.Active() && c.Trend.Genre == c.Genre {
		trendBonus = c.Trend.Modifier
	}

	total := 0
	for i := range c.Songs {
		s := &c.Songs[i]
		s.Age++

		decayed := floorZero(s.Popularity - 5 + wc.r.Intn(3))
		freshness := floorZero(100 - s.Age*3)
		pop := floorZero((decayed+freshness)/2 + trendBonus + seasonal)
		if pop > 100 {
			pop = 100
		}
		if wc.r.Float64() < viralSpikeChance {
			pop += 25
			if pop > 100 {
				pop = 100
			}
			wc.note(fmt.Sprintf("\"%s\" went viral this week!", s.Title))
		}
		s.Popularity = pop

		videoBoost := 0
		if s.VideoBoost {
			videoBoost = 400
		}
		weekly := int(math.Floor(float64(pop)*60 + float64(freshness)*6*s.FreshnessWeight)) + videoBoost
		s.WeeklyStreams = weekly
		s.Streams += weekly

		radioPlays := pop / 12
		royalty := weekly*streamPayoutPerThousand/1000 + radioPlays*2
		s.Plays += radioPlays
		s.Earnings += royalty
		total += royalty
	}
	return total
}
