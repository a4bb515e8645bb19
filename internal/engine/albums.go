package engine

import "math"

// tickAlbums ages every album and recomputes its chart score from quality
// decay, a release-window freshness term and the remaining promo boost.
func (wc *weekContext) tickAlbums() {
	for i := range wc.c.Albums {
		a := &wc.c.Albums[i]
		a.Age++
		score := math.Floor(float64(a.Quality)*0.8) + float64(floorZero(14-a.Age)) + float64(floorZero(a.PromoBoost-1))
		a.ChartScore = floorZero(int(score))
		a.PromoBoost = decToZero(a.PromoBoost)
	}
}
