package store

import (
	"context"
	"fmt"
	"time"
)

// StateKey joins a learner id with a concept or domain id for the
// snapshot maps. Both sides are opaque to the store.
func StateKey(learnerID, scopeID string) string {
	return learnerID + "/" + scopeID
}

// ConceptMasteryData is the persisted form of a per-(learner, concept)
// mastery state, including the consistency streak the decision policy
// tracks alongside it.
type ConceptMasteryData struct {
	PL0                  float64   `json:"p_l0"`
	PT                   float64   `json:"p_t"`
	PG                   float64   `json:"p_g"`
	PS                   float64   `json:"p_s"`
	PL                   float64   `json:"p_l_current"`
	ConfidenceLower      float64   `json:"confidence_lower"`
	ConfidenceUpper      float64   `json:"confidence_upper"`
	Observations         int       `json:"observations"`
	AboveThresholdStreak int       `json:"above_threshold_streak"`
	LastUpdated          time.Time `json:"last_updated"`
}

// ItemStateData is the persisted form of a per-question IRT state.
type ItemStateData struct {
	DiscriminationA float64 `json:"discrimination_a"`
	DifficultyB     float64 `json:"difficulty_b"`
	GuessingC       float64 `json:"guessing_c"`
	AttemptCount    int     `json:"attempt_count"`
	SuccessCount    int     `json:"success_count"`
	ObservedRate    float64 `json:"observed_rate"`
	Calibrated      bool    `json:"calibrated"`
}

// AbilityData is the persisted form of a per-(learner, domain) ability.
type AbilityData struct {
	Theta         float64 `json:"theta"`
	StandardError float64 `json:"standard_error"`
	Responses     int     `json:"responses_count"`
}

// ZPDData is the persisted form of a per-(learner, concept) zone
// status plus the current difficulty level for that pair.
type ZPDData struct {
	Zone                  string  `json:"zone"`
	RecentSuccessRate     float64 `json:"recent_success_rate"`
	ConsecutiveCorrect    int     `json:"consecutive_correct"`
	ConsecutiveIncorrect  int     `json:"consecutive_incorrect"`
	RecommendedDifficulty int     `json:"recommended_difficulty"`
	CurrentDifficulty     int     `json:"current_difficulty"`
}

// SnapshotData captures the full engine state at a point in time.
// Mastery and ZPD entries are keyed by StateKey(learner, concept),
// abilities by StateKey(learner, domain), items by question id.
type SnapshotData struct {
	Version   int                           `json:"version"`
	Mastery   map[string]ConceptMasteryData `json:"mastery,omitempty"`
	Items     map[string]ItemStateData      `json:"items,omitempty"`
	Abilities map[string]AbilityData        `json:"abilities,omitempty"`
	ZPD       map[string]ZPDData            `json:"zpd,omitempty"`
}

// CorruptStateError reports persisted state that violates its own
// invariants. Corrupted state is rejected at load, never repaired.
type CorruptStateError struct {
	Entity string
	Key    string
	Reason string
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt %s state for %q: %s", e.Entity, e.Key, e.Reason)
}

// Validate checks the snapshot invariants that cannot be expressed in
// the schema: probability ranges, count consistency, bounded theta.
func (d SnapshotData) Validate() error {
	for key, m := range d.Mastery {
		if m.PL < 0 || m.PL > 1 {
			return &CorruptStateError{Entity: "mastery", Key: key, Reason: fmt.Sprintf("p_l_current %v outside [0,1]", m.PL)}
		}
		if m.Observations < 0 {
			return &CorruptStateError{Entity: "mastery", Key: key, Reason: "negative observations"}
		}
		if m.PG+m.PS >= 1 {
			return &CorruptStateError{Entity: "mastery", Key: key, Reason: "p_g + p_s >= 1"}
		}
	}
	for key, it := range d.Items {
		if it.SuccessCount > it.AttemptCount {
			return &CorruptStateError{Entity: "item", Key: key, Reason: fmt.Sprintf("success_count %d > attempt_count %d", it.SuccessCount, it.AttemptCount)}
		}
		if it.AttemptCount < 0 || it.SuccessCount < 0 {
			return &CorruptStateError{Entity: "item", Key: key, Reason: "negative counts"}
		}
	}
	for key, a := range d.Abilities {
		if a.Theta < -4 || a.Theta > 4 {
			return &CorruptStateError{Entity: "ability", Key: key, Reason: fmt.Sprintf("theta %v outside [-4,4]", a.Theta)}
		}
		if a.StandardError <= 0 {
			return &CorruptStateError{Entity: "ability", Key: key, Reason: "standard_error not positive"}
		}
	}
	for key, z := range d.ZPD {
		if z.CurrentDifficulty < 1 || z.CurrentDifficulty > 6 {
			return &CorruptStateError{Entity: "zpd", Key: key, Reason: fmt.Sprintf("current_difficulty %d outside [1,6]", z.CurrentDifficulty)}
		}
	}
	return nil
}

// Snapshot represents a point-in-time capture of engine state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages engine state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	// Snapshots that fail invariant validation are rejected with a
	// *CorruptStateError.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures the data for a single processed answer.
type AnswerEventData struct {
	LearnerID       string
	ConceptID       string
	QuestionID      string
	Domain          string
	QuestionType    string
	Correct         bool
	ResponseTimeMs  int
	ExpectedTimeMs  int
	HintsUsed       int
	AttemptNumber   int
	DifficultyLevel int
	Theta           float64
}

// AnswerRecord is a stored answer with its ordering metadata.
type AnswerRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// BehaviorEventData captures one interaction-log entry.
type BehaviorEventData struct {
	LearnerID      string
	ConceptID      string
	EventType      string
	ResponseTimeMs int
	ExpectedTimeMs int
	HintsUsed      int
	Attempts       int
	Correct        *bool
	Timestamp      time.Time
}

// DecisionEventData captures one difficulty decision.
type DecisionEventData struct {
	LearnerID           string
	ConceptID           string
	Domain              string
	PreviousLevel       int
	NewLevel            int
	Reason              string
	MasteryAchieved     bool
	MasteryProbability  float64
	Zone                string
	BehavioralIndicator string
}

// ObservationRecord pairs an attempting learner's theta with the
// outcome, the unit of item recalibration.
type ObservationRecord struct {
	Theta   float64
	Correct bool
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAnswer records a processed answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendBehavior records an interaction-log entry.
	AppendBehavior(ctx context.Context, data BehaviorEventData) error

	// AppendDecision records a difficulty decision.
	AppendDecision(ctx context.Context, data DecisionEventData) error

	// RecentAnswers returns the last n answers for a (learner, concept)
	// pair, oldest first.
	RecentAnswers(ctx context.Context, learnerID, conceptID string, n int) ([]AnswerRecord, error)

	// RecentBehavior returns the last n interaction events for a
	// learner, oldest first.
	RecentBehavior(ctx context.Context, learnerID string, n int) ([]BehaviorEventData, error)

	// QuestionObservations returns up to limit (theta, correct) pairs
	// for a question, newest first.
	QuestionObservations(ctx context.Context, questionID string, limit int) ([]ObservationRecord, error)

	// QuestionIDs lists every question id present in the answer log.
	QuestionIDs(ctx context.Context) ([]string, error)
}
