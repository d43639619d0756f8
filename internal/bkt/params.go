package bkt

import "fmt"

// Default BKT parameters for a concept with no calibration history.
const (
	DefaultPL0 = 0.1 // prior probability the concept is already known
	DefaultPT  = 0.3 // learning rate per opportunity
	DefaultPG  = 0.2 // guess probability
	DefaultPS  = 0.1 // slip probability

	// DefaultMasteryThreshold is the mastery cutoff used when no
	// domain-specific threshold applies.
	DefaultMasteryThreshold = 0.95
)

// Params holds the four BKT parameters for a concept.
// They are fixed per concept unless explicitly recalibrated.
type Params struct {
	PL0 float64 `json:"p_l0"`
	PT  float64 `json:"p_t"`
	PG  float64 `json:"p_g"`
	PS  float64 `json:"p_s"`
}

// DefaultParams returns the cold-start parameter set.
func DefaultParams() Params {
	return Params{PL0: DefaultPL0, PT: DefaultPT, PG: DefaultPG, PS: DefaultPS}
}

// ParameterError reports a BKT parameter outside its valid region.
type ParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid BKT parameter %s=%.4f: %s", e.Param, e.Value, e.Reason)
}

// Validate checks the parameter constraints. P_G + P_S < 1 keeps the
// observation update well-defined; the tighter caps on P_G and P_S keep
// the model identifiable.
func (p Params) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"p_l0", p.PL0},
		{"p_t", p.PT},
		{"p_g", p.PG},
		{"p_s", p.PS},
	} {
		if c.value < 0 || c.value > 1 {
			return &ParameterError{Param: c.name, Value: c.value, Reason: "must be in [0,1]"}
		}
	}
	if p.PG+p.PS >= 1 {
		return &ParameterError{Param: "p_g", Value: p.PG, Reason: "p_g + p_s must be < 1"}
	}
	if p.PG >= 0.5 {
		return &ParameterError{Param: "p_g", Value: p.PG, Reason: "must be < 0.5"}
	}
	if p.PS >= 0.3 {
		return &ParameterError{Param: "p_s", Value: p.PS, Reason: "must be < 0.3"}
	}
	return nil
}
