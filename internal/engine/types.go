// Package engine wires the mastery, ability, zone, and behavioral
// models into a single per-answer update pipeline, with state loaded
// from and saved to an injected store.
package engine

import (
	"fmt"
	"time"

	"github.com/rsinha/adaptiq/internal/behavior"
	"github.com/rsinha/adaptiq/internal/policy"
	"github.com/rsinha/adaptiq/internal/zpd"
)

// AnswerEvent is one answer from the quiz orchestrator.
type AnswerEvent struct {
	LearnerID  string
	ConceptID  string
	QuestionID string
	Domain     string

	// Question metadata used for item cold starts.
	QuestionType string
	Complexity   int // 1-5, 0 when unknown
	OptionCount  int // 0 for free-response questions

	Correct        bool
	ResponseTimeMs int
	ExpectedTimeMs int
	HintsUsed      int
	AttemptNumber  int
	Timestamp      time.Time
}

// ValidationError reports an answer event field outside its domain.
// The engine applies no state when it returns one.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer event: %s %s", e.Field, e.Reason)
}

// Validate checks the event against the interface contract.
func (ev AnswerEvent) Validate() error {
	switch {
	case ev.LearnerID == "":
		return &ValidationError{Field: "learner_id", Reason: "must not be empty"}
	case ev.ConceptID == "":
		return &ValidationError{Field: "concept_id", Reason: "must not be empty"}
	case ev.QuestionID == "":
		return &ValidationError{Field: "question_id", Reason: "must not be empty"}
	case ev.Domain == "":
		return &ValidationError{Field: "domain", Reason: "must not be empty"}
	case ev.QuestionType == "":
		return &ValidationError{Field: "question_type", Reason: "must not be empty"}
	case ev.ResponseTimeMs < 0:
		return &ValidationError{Field: "response_time_ms", Reason: "must be >= 0"}
	case ev.ExpectedTimeMs <= 0:
		return &ValidationError{Field: "expected_time_ms", Reason: "must be > 0"}
	case ev.HintsUsed < 0:
		return &ValidationError{Field: "hints_used", Reason: "must be >= 0"}
	case ev.AttemptNumber < 1:
		return &ValidationError{Field: "attempt_number", Reason: "must be >= 1"}
	}
	return nil
}

// Result is returned synchronously to the orchestrator after each
// answer: every model's updated view plus the reconciled decision.
type Result struct {
	MasteryProbability float64
	ConfidenceLower    float64
	ConfidenceUpper    float64
	IsMastered         bool

	Theta         float64
	ThetaSE       float64
	LowConfidence bool

	Zone                  zpd.Zone
	RecommendedDifficulty int

	BehavioralIndicator  behavior.Indicator
	BehavioralConfidence float64

	ItemCalibrated bool

	// Scaffolding support, populated when the decision lowers the
	// difficulty: what kind of help the recent misses suggest.
	ScaffoldingRecommended bool
	Scaffolding            policy.Scaffolding

	Decision policy.Decision
}
