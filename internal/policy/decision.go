package policy

import (
	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/bkt"
	"github.com/rsinha/adaptiq/internal/zpd"
)

// DomainThreshold sets how demanding mastery declaration is for a
// domain: the probability bar and how many consecutive above-bar
// observations must precede the declaration.
type DomainThreshold struct {
	MasteryThreshold float64 `json:"mastery_threshold"`
	ConsistencyCount int     `json:"consistency_count"`
}

// DefaultDomainThresholds returns the built-in domain table. High-
// stakes domains demand both a higher bar and sustained evidence.
func DefaultDomainThresholds() map[string]DomainThreshold {
	return map[string]DomainThreshold{
		"general": {MasteryThreshold: 0.80, ConsistencyCount: 0},
		"stem":    {MasteryThreshold: 0.85, ConsistencyCount: 3},
		"medical": {MasteryThreshold: 0.95, ConsistencyCount: 5},
		"safety":  {MasteryThreshold: 0.95, ConsistencyCount: 5},
	}
}

// Reason tags why a decision moved (or held) the difficulty. For
// observability only; nothing branches on it downstream.
type Reason string

const (
	ReasonIncreasePerformance Reason = "increase_performance"
	ReasonIncreaseBoredom     Reason = "increase_boredom"
	ReasonDecreasePerformance Reason = "decrease_performance"
	ReasonDecreaseFrustration Reason = "decrease_frustration"
	ReasonMaintainOptimal     Reason = "maintain_optimal"
	ReasonMasteryDeclared     Reason = "mastery_declared"
)

// BehavioralConfidenceGate is the minimum hint confidence before a
// behavioral signal may tip the decision.
const BehavioralConfidenceGate = 0.6

// Decision is the reconciled outcome of one answer cycle.
type Decision struct {
	NewDifficulty   int    `json:"new_difficulty"`
	MasteryAchieved bool   `json:"mastery_achieved"`
	Reason          Reason `json:"reason"`
}

// Input gathers every signal Decide reconciles. AboveThresholdStreak
// is the caller-tracked count of consecutive observations with mastery
// probability above the domain threshold, including the current one.
type Input struct {
	Mastery              bkt.State
	ZPD                  zpd.Status
	Behavioral           behavior.Hint
	Threshold            DomainThreshold
	CurrentDifficulty    int
	AboveThresholdStreak int
}

// Decide reconciles the zone recommendation with the behavioral hint
// and the domain mastery bar. Difficulty moves at most one level per
// cycle and stays inside the ladder; a behavioral signal may tip the
// move but never stacks on top of a zone move in the same direction.
func Decide(in Input) Decision {
	current := clampLevel(in.CurrentDifficulty)
	next := clampLevel(in.ZPD.RecommendedDifficulty)

	zpdDecreased := next < current
	zpdIncreased := next > current

	behavioral := false
	if in.Behavioral.Confidence >= BehavioralConfidenceGate {
		switch in.Behavioral.Indicator {
		case behavior.IndicatorFrustration:
			if !zpdDecreased {
				next--
				behavioral = true
			}
		case behavior.IndicatorBoredom:
			if !zpdIncreased {
				next++
				behavioral = true
			}
		}
	}

	// One level per cycle, inside the ladder.
	next = clampLevel(clampStep(next, current))

	mastered := in.Mastery.PL >= in.Threshold.MasteryThreshold &&
		in.AboveThresholdStreak >= in.Threshold.ConsistencyCount

	return Decision{
		NewDifficulty:   next,
		MasteryAchieved: mastered,
		Reason:          reasonFor(next, current, behavioral, mastered),
	}
}

func reasonFor(next, current int, behavioral, mastered bool) Reason {
	if mastered {
		return ReasonMasteryDeclared
	}
	switch {
	case next > current && behavioral:
		return ReasonIncreaseBoredom
	case next > current:
		return ReasonIncreasePerformance
	case next < current && behavioral:
		return ReasonDecreaseFrustration
	case next < current:
		return ReasonDecreasePerformance
	default:
		return ReasonMaintainOptimal
	}
}

func clampStep(next, current int) int {
	if next > current+1 {
		return current + 1
	}
	if next < current-1 {
		return current - 1
	}
	return next
}

func clampLevel(level int) int {
	if level < zpd.MinLevel {
		return zpd.MinLevel
	}
	if level > zpd.MaxLevel {
		return zpd.MaxLevel
	}
	return level
}
