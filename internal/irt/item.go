// Package irt implements the item side and learner side of a
// 3-parameter-logistic Item Response Theory model: item parameter
// bookkeeping and recalibration, ability (theta) estimation, and
// information-based adaptive item selection.
package irt

import (
	"fmt"
	"math"
)

// Parameter bounds for the 3PL model.
const (
	MinDiscrimination = 0.5
	MaxDiscrimination = 2.5
	MinDifficulty     = -3.0
	MaxDifficulty     = 3.0
	MinGuessing       = 0.0
	MaxGuessing       = 0.35

	ThetaMin = -4.0
	ThetaMax = 4.0

	// CalibrationMinAttempts is the attempt count below which
	// Recalibrate is a no-op and the item stays uncalibrated.
	CalibrationMinAttempts = 50
)

// ItemParams holds the 3PL parameters of a single question item.
type ItemParams struct {
	Discrimination float64 `json:"discrimination_a"`
	Difficulty     float64 `json:"difficulty_b"`
	Guessing       float64 `json:"guessing_c"`
}

// ParameterError reports an item parameter outside its declared bounds.
type ParameterError struct {
	Param  string
	Value  float64
	Lo, Hi float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid IRT parameter %s=%.4f: must be in [%.2f, %.2f]", e.Param, e.Value, e.Lo, e.Hi)
}

// Validate checks the parameters against their declared bounds.
func (p ItemParams) Validate() error {
	if p.Discrimination < MinDiscrimination || p.Discrimination > MaxDiscrimination {
		return &ParameterError{Param: "discrimination_a", Value: p.Discrimination, Lo: MinDiscrimination, Hi: MaxDiscrimination}
	}
	if p.Difficulty < MinDifficulty || p.Difficulty > MaxDifficulty {
		return &ParameterError{Param: "difficulty_b", Value: p.Difficulty, Lo: MinDifficulty, Hi: MaxDifficulty}
	}
	if p.Guessing < MinGuessing || p.Guessing > MaxGuessing {
		return &ParameterError{Param: "guessing_c", Value: p.Guessing, Lo: MinGuessing, Hi: MaxGuessing}
	}
	return nil
}

// Probability is the 3PL response function:
// P(correct) = c + (1-c) / (1 + e^(-a(theta-b))).
func Probability(theta float64, p ItemParams) float64 {
	return p.Guessing + (1-p.Guessing)/(1+math.Exp(-p.Discrimination*(theta-p.Difficulty)))
}

// FisherInformation is the Birnbaum item information at theta:
// I(theta) = a^2 * (1-P)/P * ((P-c)/(1-c))^2.
// Used to rank items by how much they tell us about theta.
func FisherInformation(theta float64, p ItemParams) float64 {
	prob := Probability(theta, p)
	if prob <= 0 || prob >= 1 {
		return 0
	}
	pStar := (prob - p.Guessing) / (1 - p.Guessing)
	return p.Discrimination * p.Discrimination * pStar * pStar * (1 - prob) / prob
}

// ItemState is the persistent calibration state of one question item.
type ItemState struct {
	Params       ItemParams `json:"params"`
	AttemptCount int        `json:"attempt_count"`
	SuccessCount int        `json:"success_count"`
	ObservedRate float64    `json:"observed_rate"`
	Calibrated   bool       `json:"calibrated"`
}

// NewItemState creates an item state from cold-start parameters.
func NewItemState(p ItemParams) (ItemState, error) {
	if err := p.Validate(); err != nil {
		return ItemState{}, err
	}
	return ItemState{Params: p}, nil
}

// ColdStartParams derives 3PL defaults from question metadata:
// discrimination from the question type, difficulty from the authored
// complexity (1-5, centered at 3), and guessing from the option count.
func ColdStartParams(discrimination float64, complexity int, optionCount int) ItemParams {
	a := clamp(discrimination, MinDiscrimination, MaxDiscrimination)
	b := clamp(float64(complexity-3), MinDifficulty, MaxDifficulty)

	c := 0.2
	if optionCount > 0 {
		c = 1.0 / float64(optionCount)
	}
	c = clamp(c, MinGuessing, MaxGuessing)

	return ItemParams{Discrimination: a, Difficulty: b, Guessing: c}
}

// RecordAttempt folds one attempt into the empirical statistics.
// Pure: returns a new state.
func RecordAttempt(s ItemState, correct bool) ItemState {
	out := s
	out.AttemptCount++
	if correct {
		out.SuccessCount++
	}
	out.ObservedRate = float64(out.SuccessCount) / float64(out.AttemptCount)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
