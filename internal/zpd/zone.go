// Package zpd classifies a learner's recent performance into a zone of
// proximal development and recommends the next difficulty level.
package zpd

import "math"

// Zone labels the relationship between recent performance and the
// learner's zone of proximal development.
type Zone string

const (
	ZoneFrustrationRisk Zone = "frustration_risk"
	ZoneBelowZPD        Zone = "below_zpd"
	ZoneOptimal         Zone = "optimal"
	ZoneAboveZPD        Zone = "above_zpd"
	ZoneBoredomRisk     Zone = "boredom_risk"
)

// Difficulty levels are a 1..6 ladder; every recommendation is clamped
// into this range.
const (
	MinLevel = 1
	MaxLevel = 6
)

// zoneTable maps success-rate bands to zones, highest band first.
// Bands are inclusive on their lower edge except boredom_risk, which
// requires strictly more than 0.90.
var zoneTable = []struct {
	floor     float64
	exclusive bool
	zone      Zone
}{
	{0.90, true, ZoneBoredomRisk},
	{0.85, false, ZoneAboveZPD},
	{0.60, false, ZoneOptimal},
	{0.50, false, ZoneBelowZPD},
	{math.Inf(-1), false, ZoneFrustrationRisk},
}

// ClassifyZone returns the zone for a recent success rate.
func ClassifyZone(rate float64) Zone {
	for _, band := range zoneTable {
		if band.exclusive {
			if rate > band.floor {
				return band.zone
			}
			continue
		}
		if rate >= band.floor {
			return band.zone
		}
	}
	return ZoneFrustrationRisk
}
