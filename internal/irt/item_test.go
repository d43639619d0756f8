package irt

import (
	"math"
	"testing"
)

func TestProbability_KnownValues(t *testing.T) {
	cases := []struct {
		theta float64
		p     ItemParams
		want  float64
	}{
		// At theta == b the logistic core is 0.5.
		{0.0, ItemParams{Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.2}, 0.6},
		{1.0, ItemParams{Discrimination: 1.0, Difficulty: 0.5, Guessing: 0.25}, 0.7168},
		{1.0, ItemParams{Discrimination: 1.0, Difficulty: 0.5, Guessing: 0.1}, 0.6602},
	}
	for _, tc := range cases {
		got := Probability(tc.theta, tc.p)
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("Probability(%v, %+v) = %.4f, want %.4f", tc.theta, tc.p, got, tc.want)
		}
	}
}

func TestProbability_Bounds(t *testing.T) {
	p := ItemParams{Discrimination: 2.5, Difficulty: 0, Guessing: 0.25}
	lo := Probability(ThetaMin, p)
	hi := Probability(ThetaMax, p)
	if lo < p.Guessing || lo > 1 {
		t.Errorf("low-theta probability %v outside [c, 1]", lo)
	}
	if hi <= lo || hi > 1 {
		t.Errorf("high-theta probability %v not above %v or above 1", hi, lo)
	}
}

func TestFisherInformation_PeaksNearDifficulty(t *testing.T) {
	p := ItemParams{Discrimination: 1.5, Difficulty: 1.0, Guessing: 0.0}
	at := FisherInformation(1.0, p)
	far := FisherInformation(-2.0, p)
	if at <= far {
		t.Errorf("information at b (%v) not above information far away (%v)", at, far)
	}
	if FisherInformation(0, p) < 0 {
		t.Error("information must be non-negative")
	}
}

func TestItemParams_Validate(t *testing.T) {
	cases := []struct {
		name    string
		p       ItemParams
		wantErr bool
	}{
		{"valid", ItemParams{1.0, 0.0, 0.2}, false},
		{"discrimination too low", ItemParams{0.3, 0.0, 0.2}, true},
		{"discrimination too high", ItemParams{3.0, 0.0, 0.2}, true},
		{"difficulty out of range", ItemParams{1.0, 3.5, 0.2}, true},
		{"guessing too high", ItemParams{1.0, 0.0, 0.4}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				if _, ok := err.(*ParameterError); !ok {
					t.Errorf("error type = %T, want *ParameterError", err)
				}
			}
		})
	}
}

func TestColdStartParams(t *testing.T) {
	p := ColdStartParams(1.0, 4, 4)
	if p.Difficulty != 1.0 {
		t.Errorf("Difficulty = %v, want 1.0 for complexity 4", p.Difficulty)
	}
	if p.Guessing != 0.25 {
		t.Errorf("Guessing = %v, want 0.25 for 4 options", p.Guessing)
	}

	// True/false items would imply c = 0.5; the bound caps it.
	tf := ColdStartParams(1.0, 3, 2)
	if tf.Guessing != MaxGuessing {
		t.Errorf("Guessing = %v, want clamped to %v", tf.Guessing, MaxGuessing)
	}

	// Free-response items have no options to guess from.
	free := ColdStartParams(1.2, 3, 0)
	if free.Guessing != 0.2 {
		t.Errorf("Guessing = %v, want 0.2 default", free.Guessing)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("cold-start params invalid: %v", err)
	}
}

func TestRecordAttempt(t *testing.T) {
	s, err := NewItemState(ItemParams{1.0, 0.0, 0.2})
	if err != nil {
		t.Fatalf("NewItemState: %v", err)
	}

	s = RecordAttempt(s, true)
	s = RecordAttempt(s, false)
	s = RecordAttempt(s, true)

	if s.AttemptCount != 3 {
		t.Errorf("AttemptCount = %d, want 3", s.AttemptCount)
	}
	if s.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", s.SuccessCount)
	}
	if math.Abs(s.ObservedRate-2.0/3.0) > 1e-9 {
		t.Errorf("ObservedRate = %v, want 2/3", s.ObservedRate)
	}
	if s.Calibrated {
		t.Error("item must not be calibrated from attempts alone")
	}
}
