package irt

import (
	"math"
	"testing"
)

// syntheticObservations builds a calibration sample whose thetas span
// [-2, 2] and whose outcomes follow the true item deterministically
// (correct when the true probability exceeds one half). Deterministic
// outcomes keep the test stable without a seeded RNG.
func syntheticObservations(truth ItemParams, n int) []AttemptObservation {
	obs := make([]AttemptObservation, n)
	for i := range obs {
		theta := -2.0 + 4.0*float64(i)/float64(n-1)
		obs[i] = AttemptObservation{
			Theta:   theta,
			Correct: Probability(theta, truth) > 0.5,
		}
	}
	return obs
}

func calibratedState(t *testing.T, truth ItemParams, obs []AttemptObservation) ItemState {
	t.Helper()
	s, err := NewItemState(ItemParams{Discrimination: 1.0, Difficulty: 0.0, Guessing: truth.Guessing})
	if err != nil {
		t.Fatalf("NewItemState: %v", err)
	}
	for _, o := range obs {
		s = RecordAttempt(s, o.Correct)
	}
	return s
}

func TestRecalibrate_BelowMinimumIsNoOp(t *testing.T) {
	truth := ItemParams{Discrimination: 1.2, Difficulty: 0.5, Guessing: 0.2}
	obs := syntheticObservations(truth, CalibrationMinAttempts-1)
	s := calibratedState(t, truth, obs)

	got := Recalibrate(s, obs)
	if got != s {
		t.Errorf("Recalibrate below %d attempts changed state: %+v != %+v", CalibrationMinAttempts, got, s)
	}
	if got.Calibrated {
		t.Error("item must not be marked calibrated below the attempt minimum")
	}
}

func TestRecalibrate_FitsWithinBounds(t *testing.T) {
	truth := ItemParams{Discrimination: 1.2, Difficulty: 0.5, Guessing: 0.2}
	obs := syntheticObservations(truth, 200)
	s := calibratedState(t, truth, obs)

	got := Recalibrate(s, obs)
	if !got.Calibrated {
		t.Fatal("item should be calibrated after a full fit")
	}
	if err := got.Params.Validate(); err != nil {
		t.Fatalf("refit parameters invalid: %v", err)
	}
	// The refit difficulty should land near the truth: the sample's
	// success rate is driven by a b=0.5 item.
	if math.Abs(got.Params.Difficulty-truth.Difficulty) > 0.75 {
		t.Errorf("Difficulty = %v, want near %v", got.Params.Difficulty, truth.Difficulty)
	}
}

func TestRecalibrate_Idempotent(t *testing.T) {
	truth := ItemParams{Discrimination: 1.5, Difficulty: -0.5, Guessing: 0.25}
	obs := syntheticObservations(truth, 120)
	s := calibratedState(t, truth, obs)

	once := Recalibrate(s, obs)
	twice := Recalibrate(once, obs)
	if once != twice {
		t.Errorf("repeated recalibration diverged: %+v != %+v", once, twice)
	}
}

func TestRecalibrate_ExtremeRatePinsDifficulty(t *testing.T) {
	truth := ItemParams{Discrimination: 1.0, Difficulty: -3.0, Guessing: 0.2}
	// Everyone answers correctly: the item can only be as easy as the
	// difficulty floor allows.
	obs := make([]AttemptObservation, 100)
	for i := range obs {
		obs[i] = AttemptObservation{Theta: -1.0 + 2.0*float64(i)/99.0, Correct: true}
	}
	s := calibratedState(t, truth, obs)

	got := Recalibrate(s, obs)
	if got.Params.Difficulty != MinDifficulty {
		t.Errorf("Difficulty = %v, want pinned at %v", got.Params.Difficulty, MinDifficulty)
	}
}

func TestRecalibrate_NarrowThetaSpreadKeepsDiscrimination(t *testing.T) {
	truth := ItemParams{Discrimination: 1.3, Difficulty: 0.0, Guessing: 0.2}
	obs := make([]AttemptObservation, 100)
	for i := range obs {
		// All learners cluster around theta = 0.1; no contrast to fit a.
		obs[i] = AttemptObservation{Theta: 0.1, Correct: i%2 == 0}
	}
	s := calibratedState(t, truth, obs)
	before := s.Params.Discrimination

	got := Recalibrate(s, obs)
	if got.Params.Discrimination != before {
		t.Errorf("Discrimination = %v, want unchanged %v under zero theta spread", got.Params.Discrimination, before)
	}
}
