// Package bkt implements Bayesian Knowledge Tracing: a per-concept
// hidden Markov model that converts a stream of correct/incorrect
// observations into a mastery probability with confidence bounds.
//
// All operations are pure; Update returns a new State and never mutates
// its input, so callers can run many learners concurrently as long as
// each learner-concept timeline is applied in event order.
package bkt

import (
	"math"
	"time"
)

// ciZ is the z value for the 95% normal-approximation confidence interval.
const ciZ = 1.96

// State is the mastery state for one (learner, concept) pair.
type State struct {
	Params          Params    `json:"params"`
	PL              float64   `json:"p_l_current"`
	ConfidenceLower float64   `json:"confidence_lower"`
	ConfidenceUpper float64   `json:"confidence_upper"`
	Observations    int       `json:"observations"`
	LastUpdated     time.Time `json:"last_updated"`
}

// NewState creates the initial state for a freshly encountered concept.
// Returns a ParameterError if the parameters are outside their valid region.
func NewState(p Params) (State, error) {
	if err := p.Validate(); err != nil {
		return State{}, err
	}
	return State{
		Params:          p,
		PL:              p.PL0,
		ConfidenceLower: 0,
		ConfidenceUpper: 1,
	}, nil
}

// Update applies one correctness observation and the learning transition.
//
// Given the parameter constraints (P_G < 0.5, P_S < 0.3), a correct
// answer never decreases P(L) and an incorrect answer never increases
// it; the result is always in [0,1].
func Update(s State, correct bool, now time.Time) State {
	p := s.PL

	var posterior float64
	if correct {
		num := p * (1 - s.Params.PS)
		posterior = num / (num + (1-p)*s.Params.PG)
	} else {
		num := p * s.Params.PS
		posterior = num / (num + (1-p)*(1-s.Params.PG))
	}

	// Learning transition, always applied after the observation update.
	next := posterior + (1-posterior)*s.Params.PT

	out := s
	out.PL = clamp01(next)
	out.Observations = s.Observations + 1
	out.LastUpdated = now
	out.ConfidenceLower, out.ConfidenceUpper = confidenceInterval(out.PL, out.Observations)
	return out
}

// IsMastered reports whether the mastery probability has reached threshold.
func (s State) IsMastered(threshold float64) bool {
	return s.PL >= threshold
}

// confidenceInterval returns the normal-approximation interval around p.
// The half-width shrinks as 1/sqrt(n); with zero observations the
// interval is the full [0,1].
func confidenceInterval(p float64, n int) (lower, upper float64) {
	if n <= 0 {
		return 0, 1
	}
	half := ciZ * math.Sqrt(p*(1-p)/float64(n))
	return clamp01(p - half), clamp01(p + half)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
