package bkt

import (
	"math"
	"testing"
	"time"
)

func testNow() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func TestNewState_Defaults(t *testing.T) {
	s, err := NewState(DefaultParams())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.PL != DefaultPL0 {
		t.Errorf("PL = %v, want %v", s.PL, DefaultPL0)
	}
	if s.ConfidenceLower != 0 || s.ConfidenceUpper != 1 {
		t.Errorf("initial interval = [%v, %v], want [0, 1]", s.ConfidenceLower, s.ConfidenceUpper)
	}
	if s.Observations != 0 {
		t.Errorf("Observations = %d, want 0", s.Observations)
	}
}

func TestNewState_RejectsInvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		params Params
	}{
		{"guess plus slip too high", Params{PL0: 0.1, PT: 0.3, PG: 0.9, PS: 0.2}},
		{"guess too high", Params{PL0: 0.1, PT: 0.3, PG: 0.6, PS: 0.1}},
		{"slip too high", Params{PL0: 0.1, PT: 0.3, PG: 0.2, PS: 0.35}},
		{"negative learning rate", Params{PL0: 0.1, PT: -0.1, PG: 0.2, PS: 0.1}},
		{"prior above one", Params{PL0: 1.5, PT: 0.3, PG: 0.2, PS: 0.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewState(tc.params)
			if err == nil {
				t.Fatal("expected error")
			}
			if _, ok := err.(*ParameterError); !ok {
				t.Errorf("error type = %T, want *ParameterError", err)
			}
		})
	}
}

// Regression oracle: the default parameters applied to [T,T,F,T,T,T]
// via the observation-then-transition update.
func TestUpdate_Trajectory(t *testing.T) {
	want := []float64{0.5333, 0.8860, 0.6450, 0.9237, 0.9874, 0.9980}
	seq := []bool{true, true, false, true, true, true}

	s, err := NewState(DefaultParams())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for i, correct := range seq {
		s = Update(s, correct, testNow())
		if math.Abs(s.PL-want[i]) > 0.005 {
			t.Errorf("step %d: PL = %.4f, want %.4f", i+1, s.PL, want[i])
		}
	}
	if s.Observations != len(seq) {
		t.Errorf("Observations = %d, want %d", s.Observations, len(seq))
	}
}

func TestUpdate_CorrectNeverDecreases(t *testing.T) {
	for _, pl := range []float64{0, 0.01, 0.1, 0.5, 0.9, 0.99, 1} {
		s, _ := NewState(DefaultParams())
		s.PL = pl
		next := Update(s, true, testNow())
		if next.PL < pl {
			t.Errorf("PL %v decreased to %v after correct answer", pl, next.PL)
		}
		if next.PL < 0 || next.PL > 1 {
			t.Errorf("PL = %v out of [0,1]", next.PL)
		}
	}
}

func TestUpdate_IncorrectNeverIncreasesPosterior(t *testing.T) {
	// The observation update alone must not raise P(L) on a wrong answer.
	// The learning transition can still lift the final value, so compare
	// against the transition applied to the unchanged prior.
	for _, pl := range []float64{0, 0.1, 0.5, 0.9, 1} {
		s, _ := NewState(DefaultParams())
		s.PL = pl
		next := Update(s, false, testNow())
		ceiling := pl + (1-pl)*s.Params.PT
		if next.PL > ceiling+1e-12 {
			t.Errorf("PL %v rose to %v after incorrect answer (ceiling %v)", pl, next.PL, ceiling)
		}
		if next.PL < 0 || next.PL > 1 {
			t.Errorf("PL = %v out of [0,1]", next.PL)
		}
	}
}

func TestUpdate_BoundsUnderParameterSweep(t *testing.T) {
	for pg := 0.05; pg < 0.5; pg += 0.1 {
		for ps := 0.05; ps < 0.3; ps += 0.08 {
			if pg+ps >= 1 {
				continue
			}
			params := Params{PL0: 0.1, PT: 0.3, PG: pg, PS: ps}
			s, err := NewState(params)
			if err != nil {
				t.Fatalf("NewState(%+v): %v", params, err)
			}
			for i := 0; i < 30; i++ {
				s = Update(s, i%3 != 0, testNow())
				if s.PL < 0 || s.PL > 1 {
					t.Fatalf("PL = %v out of [0,1] for %+v", s.PL, params)
				}
			}
		}
	}
}

func TestConfidenceInterval_NarrowsWithObservations(t *testing.T) {
	s, _ := NewState(DefaultParams())

	s1 := Update(s, true, testNow())
	width1 := s1.ConfidenceUpper - s1.ConfidenceLower

	many := s
	for i := 0; i < 40; i++ {
		many = Update(many, true, testNow())
	}
	widthN := many.ConfidenceUpper - many.ConfidenceLower

	if widthN >= width1 {
		t.Errorf("interval width after 40 obs = %v, want narrower than %v", widthN, width1)
	}
	if many.ConfidenceLower < 0 || many.ConfidenceUpper > 1 {
		t.Errorf("interval [%v, %v] out of [0,1]", many.ConfidenceLower, many.ConfidenceUpper)
	}
}

func TestIsMastered(t *testing.T) {
	s, _ := NewState(DefaultParams())
	s.PL = 0.96
	if !s.IsMastered(DefaultMasteryThreshold) {
		t.Error("expected mastered at PL=0.96, threshold 0.95")
	}
	if s.IsMastered(0.97) {
		t.Error("expected not mastered at PL=0.96, threshold 0.97")
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	s, _ := NewState(DefaultParams())
	before := s
	Update(s, true, testNow())
	if s != before {
		t.Error("Update mutated its input state")
	}
}
