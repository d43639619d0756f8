package policy

import (
	"math/rand"
	"testing"

	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/bkt"
	"github.com/rsinha/adaptiq/internal/zpd"
)

func masteryAt(t *testing.T, pl float64) bkt.State {
	t.Helper()
	s, err := bkt.NewState(bkt.DefaultParams())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	s.PL = pl
	return s
}

func TestDecide_DomainThresholdScenario(t *testing.T) {
	// Same mastery state, two domains: general (0.80/0) declares at
	// 0.81, stem (0.85/3) does not.
	thresholds := DefaultDomainThresholds()
	in := Input{
		Mastery:              masteryAt(t, 0.81),
		ZPD:                  zpd.Status{Zone: zpd.ZoneOptimal, RecommendedDifficulty: 3},
		Behavioral:           behavior.None(),
		CurrentDifficulty:    3,
		AboveThresholdStreak: 1,
	}

	in.Threshold = thresholds["general"]
	if got := Decide(in); !got.MasteryAchieved {
		t.Error("general domain: mastery not declared at 0.81")
	} else if got.Reason != ReasonMasteryDeclared {
		t.Errorf("general domain: Reason = %s, want mastery_declared", got.Reason)
	}

	in.Threshold = thresholds["stem"]
	if got := Decide(in); got.MasteryAchieved {
		t.Error("stem domain: mastery declared at 0.81 below the 0.85 bar")
	}
}

func TestDecide_ConsistencyCountGatesMastery(t *testing.T) {
	in := Input{
		Mastery:              masteryAt(t, 0.96),
		ZPD:                  zpd.Status{Zone: zpd.ZoneOptimal, RecommendedDifficulty: 3},
		Behavioral:           behavior.None(),
		Threshold:            DefaultDomainThresholds()["medical"],
		CurrentDifficulty:    3,
		AboveThresholdStreak: 4,
	}
	if Decide(in).MasteryAchieved {
		t.Error("medical domain: declared with only 4 of 5 required consistent observations")
	}

	in.AboveThresholdStreak = 5
	if !Decide(in).MasteryAchieved {
		t.Error("medical domain: not declared with 5 consistent observations above 0.95")
	}
}

func TestDecide_FrustrationTipsBorderlineDown(t *testing.T) {
	in := Input{
		Mastery:           masteryAt(t, 0.4),
		ZPD:               zpd.Status{Zone: zpd.ZoneOptimal, RecommendedDifficulty: 3},
		Behavioral:        behavior.Hint{Indicator: behavior.IndicatorFrustration, Confidence: 0.67},
		Threshold:         DefaultDomainThresholds()["general"],
		CurrentDifficulty: 3,
	}
	got := Decide(in)
	if got.NewDifficulty != 2 {
		t.Errorf("NewDifficulty = %d, want 2 (frustration tips a held zone down)", got.NewDifficulty)
	}
	if got.Reason != ReasonDecreaseFrustration {
		t.Errorf("Reason = %s, want decrease_frustration", got.Reason)
	}
}

func TestDecide_FrustrationDoesNotStackOnZoneDecrease(t *testing.T) {
	in := Input{
		Mastery:           masteryAt(t, 0.3),
		ZPD:               zpd.Status{Zone: zpd.ZoneFrustrationRisk, RecommendedDifficulty: 2},
		Behavioral:        behavior.Hint{Indicator: behavior.IndicatorFrustration, Confidence: 1.0},
		Threshold:         DefaultDomainThresholds()["general"],
		CurrentDifficulty: 3,
	}
	got := Decide(in)
	if got.NewDifficulty != 2 {
		t.Errorf("NewDifficulty = %d, want 2 (no double penalty)", got.NewDifficulty)
	}
	if got.Reason != ReasonDecreasePerformance {
		t.Errorf("Reason = %s, want decrease_performance", got.Reason)
	}
}

func TestDecide_LowConfidenceHintIsIgnored(t *testing.T) {
	in := Input{
		Mastery:           masteryAt(t, 0.4),
		ZPD:               zpd.Status{Zone: zpd.ZoneOptimal, RecommendedDifficulty: 3},
		Behavioral:        behavior.Hint{Indicator: behavior.IndicatorFrustration, Confidence: 0.5},
		Threshold:         DefaultDomainThresholds()["general"],
		CurrentDifficulty: 3,
	}
	got := Decide(in)
	if got.NewDifficulty != 3 {
		t.Errorf("NewDifficulty = %d, want 3 (hint below confidence gate)", got.NewDifficulty)
	}
	if got.Reason != ReasonMaintainOptimal {
		t.Errorf("Reason = %s, want maintain_optimal", got.Reason)
	}
}

func TestDecide_BoredomTipsUp(t *testing.T) {
	in := Input{
		Mastery:           masteryAt(t, 0.6),
		ZPD:               zpd.Status{Zone: zpd.ZoneOptimal, RecommendedDifficulty: 4},
		Behavioral:        behavior.Hint{Indicator: behavior.IndicatorBoredom, Confidence: 0.8},
		Threshold:         DefaultDomainThresholds()["general"],
		CurrentDifficulty: 4,
	}
	got := Decide(in)
	if got.NewDifficulty != 5 {
		t.Errorf("NewDifficulty = %d, want 5", got.NewDifficulty)
	}
	if got.Reason != ReasonIncreaseBoredom {
		t.Errorf("Reason = %s, want increase_boredom", got.Reason)
	}
}

func TestDecide_BoredomDoesNotStackOnZoneIncrease(t *testing.T) {
	in := Input{
		Mastery:           masteryAt(t, 0.6),
		ZPD:               zpd.Status{Zone: zpd.ZoneBoredomRisk, RecommendedDifficulty: 5},
		Behavioral:        behavior.Hint{Indicator: behavior.IndicatorBoredom, Confidence: 1.0},
		Threshold:         DefaultDomainThresholds()["general"],
		CurrentDifficulty: 4,
	}
	got := Decide(in)
	if got.NewDifficulty != 5 {
		t.Errorf("NewDifficulty = %d, want 5 (no double boost)", got.NewDifficulty)
	}
	if got.Reason != ReasonIncreasePerformance {
		t.Errorf("Reason = %s, want increase_performance", got.Reason)
	}
}

// TestDecide_NeverMovesMoreThanOneLevel fuzzes the full input domain:
// whatever the zone recommends and whatever the behavioral hint says,
// the decision moves at most one level and stays on the ladder.
func TestDecide_NeverMovesMoreThanOneLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	zones := []zpd.Zone{
		zpd.ZoneFrustrationRisk, zpd.ZoneBelowZPD, zpd.ZoneOptimal,
		zpd.ZoneAboveZPD, zpd.ZoneBoredomRisk,
	}
	indicators := []behavior.Indicator{
		behavior.IndicatorNone, behavior.IndicatorFrustration, behavior.IndicatorBoredom,
	}
	thresholds := DefaultDomainThresholds()
	domains := []string{"general", "stem", "medical", "safety"}

	for i := 0; i < 5000; i++ {
		current := 1 + rng.Intn(6)
		in := Input{
			Mastery: masteryAt(t, rng.Float64()),
			ZPD: zpd.Status{
				Zone:                  zones[rng.Intn(len(zones))],
				RecentSuccessRate:     rng.Float64(),
				ConsecutiveCorrect:    rng.Intn(8),
				ConsecutiveIncorrect:  rng.Intn(8),
				RecommendedDifficulty: rng.Intn(10) - 1, // deliberately out of range sometimes
			},
			Behavioral: behavior.Hint{
				Indicator:  indicators[rng.Intn(len(indicators))],
				Confidence: rng.Float64(),
			},
			Threshold:            thresholds[domains[rng.Intn(len(domains))]],
			CurrentDifficulty:    current,
			AboveThresholdStreak: rng.Intn(8),
		}
		got := Decide(in)
		if got.NewDifficulty < zpd.MinLevel || got.NewDifficulty > zpd.MaxLevel {
			t.Fatalf("case %d: NewDifficulty = %d outside [1,6] for %+v", i, got.NewDifficulty, in)
		}
		if diff := got.NewDifficulty - current; diff < -1 || diff > 1 {
			t.Fatalf("case %d: moved %d levels for %+v", i, diff, in)
		}
	}
}
