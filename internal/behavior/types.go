// Package behavior detects affective patterns (frustration, boredom)
// from the learner's interaction event stream. Its output is advisory:
// the difficulty policy may let it tip a borderline call but never lets
// it override the numeric mastery signals outright.
package behavior

import "time"

// EventType identifies an interaction event.
type EventType string

const (
	EventAnswer       EventType = "answer"
	EventHintRequest  EventType = "hint_request"
	EventAbandon      EventType = "abandon"
	EventRapidAttempt EventType = "rapid_attempt"
	EventTimeout      EventType = "timeout"
)

// Event is one entry in the append-only interaction log.
type Event struct {
	Type           EventType
	ResponseTimeMs int
	ExpectedTimeMs int
	HintsUsed      int
	Attempts       int
	Correct        *bool // nil for non-answer events
	Timestamp      time.Time
}

// TimeRatio is response time over expected time; zero expectation
// yields zero rather than dividing.
func (e Event) TimeRatio() float64 {
	if e.ExpectedTimeMs <= 0 {
		return 0
	}
	return float64(e.ResponseTimeMs) / float64(e.ExpectedTimeMs)
}

// Indicator labels the detected affective state.
type Indicator string

const (
	IndicatorNone        Indicator = "none"
	IndicatorFrustration Indicator = "frustration"
	IndicatorBoredom     Indicator = "boredom"
)

// Hint is the advisory output consumed by the difficulty policy.
type Hint struct {
	Indicator    Indicator
	Confidence   float64
	DetectorName string
}

// None is the neutral hint returned when no pattern matches.
func None() Hint {
	return Hint{Indicator: IndicatorNone}
}
