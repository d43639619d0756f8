package zpd

import (
	"math"
	"testing"
)

func TestClassifyZone(t *testing.T) {
	cases := []struct {
		rate float64
		want Zone
	}{
		{0.0, ZoneFrustrationRisk},
		{0.49, ZoneFrustrationRisk},
		{0.50, ZoneBelowZPD},
		{0.59, ZoneBelowZPD},
		{0.60, ZoneOptimal},
		{0.84, ZoneOptimal},
		{0.85, ZoneAboveZPD},
		{0.90, ZoneAboveZPD},
		{0.91, ZoneBoredomRisk},
		{1.0, ZoneBoredomRisk},
	}
	for _, tc := range cases {
		if got := ClassifyZone(tc.rate); got != tc.want {
			t.Errorf("ClassifyZone(%v) = %s, want %s", tc.rate, got, tc.want)
		}
	}
}

// runSequence feeds answers one at a time the way the engine does,
// growing the trailing window as history accumulates.
func runSequence(results []bool, difficulty int) Status {
	s := NewStatus(difficulty)
	for i := range results {
		lo := 0
		if i+1 > DefaultWindow {
			lo = i + 1 - DefaultWindow
		}
		s = Evaluate(s, results[lo:i+1], difficulty, DefaultWindow)
	}
	return s
}

func TestEvaluate_FourOfFiveStaysOptimal(t *testing.T) {
	s := runSequence([]bool{true, true, false, true, true}, 3)

	if s.Zone != ZoneOptimal {
		t.Errorf("Zone = %s, want optimal", s.Zone)
	}
	if s.RecommendedDifficulty != 3 {
		t.Errorf("RecommendedDifficulty = %d, want unchanged 3", s.RecommendedDifficulty)
	}
	if math.Abs(s.RecentSuccessRate-0.8233) > 0.005 {
		t.Errorf("RecentSuccessRate = %.4f, want ~0.8233", s.RecentSuccessRate)
	}
	if s.ConsecutiveCorrect != 2 || s.ConsecutiveIncorrect != 0 {
		t.Errorf("streaks = %d/%d, want 2/0", s.ConsecutiveCorrect, s.ConsecutiveIncorrect)
	}
}

func TestEvaluate_RecentMissWeighsMore(t *testing.T) {
	missLast := runSequence([]bool{true, true, true, true, false}, 3)
	missFirst := runSequence([]bool{false, true, true, true, true}, 3)
	if missLast.RecentSuccessRate >= missFirst.RecentSuccessRate {
		t.Errorf("miss-last rate %v should sit below miss-first rate %v",
			missLast.RecentSuccessRate, missFirst.RecentSuccessRate)
	}
}

func TestEvaluate_IncorrectStreakStepsDown(t *testing.T) {
	// Enough early wins to hold the rate in the optimal band; the two
	// trailing misses must still force a step down.
	s := runSequence([]bool{true, true, true, false, false}, 4)
	if s.ConsecutiveIncorrect != 2 {
		t.Fatalf("ConsecutiveIncorrect = %d, want 2", s.ConsecutiveIncorrect)
	}
	if s.RecommendedDifficulty != 3 {
		t.Errorf("RecommendedDifficulty = %d, want 3 (step down on 2 misses)", s.RecommendedDifficulty)
	}
}

func TestEvaluate_CorrectStreakStepsUp(t *testing.T) {
	s := runSequence([]bool{false, false, true, true, true}, 3)
	if s.ConsecutiveCorrect != 3 {
		t.Fatalf("ConsecutiveCorrect = %d, want 3", s.ConsecutiveCorrect)
	}
	if s.RecommendedDifficulty != 4 {
		t.Errorf("RecommendedDifficulty = %d, want 4 (step up on 3 hits)", s.RecommendedDifficulty)
	}
}

func TestEvaluate_StreaksPersistBeyondWindow(t *testing.T) {
	results := make([]bool, 8)
	for i := range results {
		results[i] = true
	}
	s := runSequence(results, 2)
	if s.ConsecutiveCorrect != 8 {
		t.Errorf("ConsecutiveCorrect = %d, want 8 (persists past the window)", s.ConsecutiveCorrect)
	}
	if s.Zone != ZoneBoredomRisk {
		t.Errorf("Zone = %s, want boredom_risk at 100%%", s.Zone)
	}
	if s.RecommendedDifficulty != 3 {
		t.Errorf("RecommendedDifficulty = %d, want 3", s.RecommendedDifficulty)
	}
}

func TestEvaluate_StreakResetsOnOppositeResult(t *testing.T) {
	s := runSequence([]bool{true, true, true, false}, 3)
	if s.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want reset to 0", s.ConsecutiveCorrect)
	}
	if s.ConsecutiveIncorrect != 1 {
		t.Errorf("ConsecutiveIncorrect = %d, want 1", s.ConsecutiveIncorrect)
	}
}

func TestEvaluate_ClampsToLevelBounds(t *testing.T) {
	down := runSequence([]bool{false, false, false, false, false}, MinLevel)
	if down.RecommendedDifficulty != MinLevel {
		t.Errorf("RecommendedDifficulty = %d, want floor %d", down.RecommendedDifficulty, MinLevel)
	}
	up := runSequence([]bool{true, true, true, true, true}, MaxLevel)
	if up.RecommendedDifficulty != MaxLevel {
		t.Errorf("RecommendedDifficulty = %d, want ceiling %d", up.RecommendedDifficulty, MaxLevel)
	}
}

func TestEvaluate_EmptyWindowKeepsStatus(t *testing.T) {
	prev := Status{Zone: ZoneOptimal, RecentSuccessRate: 0.7, RecommendedDifficulty: 3}
	got := Evaluate(prev, nil, 3, DefaultWindow)
	if got.Zone != prev.Zone || got.RecentSuccessRate != prev.RecentSuccessRate {
		t.Errorf("empty window changed status: %+v", got)
	}
}
