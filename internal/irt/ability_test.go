package irt

import (
	"math"
	"testing"
)

func mixedResponses() []Response {
	item := func(b float64) ItemParams {
		return ItemParams{Discrimination: 1.0, Difficulty: b, Guessing: 0.2}
	}
	return []Response{
		{Correct: true, Item: item(-1.0)},
		{Correct: true, Item: item(0.0)},
		{Correct: false, Item: item(0.5)},
		{Correct: true, Item: item(0.0)},
		{Correct: false, Item: item(1.0)},
		{Correct: true, Item: item(-0.5)},
	}
}

func TestEstimateAbility_MixedResponses(t *testing.T) {
	est := EstimateAbility(mixedResponses(), 0.0)

	if math.IsNaN(est.Theta) || math.IsInf(est.Theta, 0) {
		t.Fatalf("Theta = %v, want finite", est.Theta)
	}
	if est.Theta < ThetaMin || est.Theta > ThetaMax {
		t.Errorf("Theta = %v outside [%v, %v]", est.Theta, ThetaMin, ThetaMax)
	}
	if math.Abs(est.Theta-0.50) > 0.05 {
		t.Errorf("Theta = %.4f, want ~0.50", est.Theta)
	}
	if est.StandardError <= 0 {
		t.Errorf("StandardError = %v, want > 0", est.StandardError)
	}
	if est.Method != MethodMLE {
		t.Errorf("Method = %s, want mle", est.Method)
	}
	if est.LowConfidence {
		t.Error("6 responses should not be flagged low-confidence")
	}
}

func TestEstimateAbility_AllCorrectTrendsUpward(t *testing.T) {
	easy := ItemParams{Discrimination: 1.0, Difficulty: -1.0, Guessing: 0.2}

	prevTheta := math.Inf(-1)
	prevSE := math.Inf(1)
	for n := 1; n <= 8; n++ {
		responses := make([]Response, n)
		for i := range responses {
			responses[i] = Response{Correct: true, Item: easy}
		}
		est := EstimateAbility(responses, 0.0)

		if est.Theta < prevTheta-1e-9 {
			t.Errorf("n=%d: Theta %v dropped below previous %v", n, est.Theta, prevTheta)
		}
		if est.StandardError >= prevSE {
			t.Errorf("n=%d: SE %v did not shrink below %v", n, est.StandardError, prevSE)
		}
		prevTheta, prevSE = est.Theta, est.StandardError
	}
}

func TestEstimateAbility_NoMixedEvidenceUsesEAP(t *testing.T) {
	easy := ItemParams{Discrimination: 1.0, Difficulty: -1.0, Guessing: 0.2}
	est := EstimateAbility([]Response{{Correct: true, Item: easy}}, 0.0)
	if est.Method != MethodEAP {
		t.Errorf("Method = %s, want eap for an all-correct vector", est.Method)
	}
	if !est.LowConfidence {
		t.Error("1 response must be flagged low-confidence")
	}
}

func TestEstimateAbility_EAPAnchorsToStartingTheta(t *testing.T) {
	// A single-outcome vector has no finite ML optimum, so estimation
	// takes the Bayesian path. A strong running estimate must carry
	// through it rather than snap back toward the population mean.
	easy := ItemParams{Discrimination: 1.0, Difficulty: -1.0, Guessing: 0.2}
	hard := ItemParams{Discrimination: 1.0, Difficulty: 1.0, Guessing: 0.2}

	up := EstimateAbility([]Response{{Correct: true, Item: easy}}, 2.5)
	if up.Method != MethodEAP {
		t.Fatalf("Method = %s, want eap", up.Method)
	}
	if up.Theta < 2.0 {
		t.Errorf("Theta = %.3f, want >= 2.0 (anchored near starting 2.5)", up.Theta)
	}

	down := EstimateAbility([]Response{{Correct: false, Item: hard}}, -2.5)
	if down.Theta > -2.0 {
		t.Errorf("Theta = %.3f, want <= -2.0 (anchored near starting -2.5)", down.Theta)
	}
}

func TestEstimateAbility_EmptyResponses(t *testing.T) {
	est := EstimateAbility(nil, 0.0)
	if est.Theta != 0 {
		t.Errorf("Theta = %v, want 0 (population mean)", est.Theta)
	}
	if est.StandardError <= 0 {
		t.Errorf("StandardError = %v, want > 0", est.StandardError)
	}
	if !est.LowConfidence {
		t.Error("empty response set must be low-confidence")
	}
}

func TestEstimateAbility_ExtremeStartStaysBounded(t *testing.T) {
	for _, theta0 := range []float64{-10, -4, 4, 10} {
		est := EstimateAbility(mixedResponses(), theta0)
		if est.Theta < ThetaMin || est.Theta > ThetaMax {
			t.Errorf("theta0=%v: Theta = %v outside bounds", theta0, est.Theta)
		}
		if est.StandardError <= 0 {
			t.Errorf("theta0=%v: SE = %v, want > 0", theta0, est.StandardError)
		}
	}
}

func TestSelectOptimalQuestion(t *testing.T) {
	candidates := []Candidate{
		{ID: "far", Params: ItemParams{Discrimination: 1.0, Difficulty: 2.5, Guessing: 0.2}},
		{ID: "near", Params: ItemParams{Discrimination: 1.0, Difficulty: 0.1, Guessing: 0.2}},
		{ID: "sharp", Params: ItemParams{Discrimination: 2.0, Difficulty: 0.0, Guessing: 0.2}},
	}

	got, ok := SelectOptimalQuestion(0.0, candidates)
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "sharp" {
		t.Errorf("selected %s, want sharp (highest discrimination at theta)", got.ID)
	}
}

func TestSelectOptimalQuestion_DeterministicTieBreak(t *testing.T) {
	// Identical items tie on information and difficulty distance, so the
	// lexically smallest id must win regardless of input order.
	same := ItemParams{Discrimination: 1.0, Difficulty: 1.0, Guessing: 0.2}
	for _, candidates := range [][]Candidate{
		{{ID: "a", Params: same}, {ID: "b", Params: same}},
		{{ID: "b", Params: same}, {ID: "a", Params: same}},
	} {
		got, ok := SelectOptimalQuestion(0.0, candidates)
		if !ok {
			t.Fatal("expected a selection")
		}
		if got.ID != "a" {
			t.Errorf("selected %s, want a (lexical tie-break)", got.ID)
		}
	}
}

func TestSelectOptimalQuestion_Empty(t *testing.T) {
	if _, ok := SelectOptimalQuestion(0.0, nil); ok {
		t.Error("expected no selection from empty candidates")
	}
}
