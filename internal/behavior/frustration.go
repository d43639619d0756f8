package behavior

import "time"

const (
	// FrustrationWindow is the rolling window the frustration signals
	// are counted over, anchored at the newest event.
	FrustrationWindow = 10 * time.Second

	// RapidAnswerMs is the maximum response time (exclusive) for an
	// incorrect answer to count as a rapid attempt.
	RapidAnswerMs = 2000

	// RapidIncorrectSignal is how many rapid incorrect attempts in the
	// window raise the rapid-attempts signal.
	RapidIncorrectSignal = 3

	// ConsecutiveHintSignal is how many back-to-back hint requests
	// raise the hint-spam signal.
	ConsecutiveHintSignal = 4

	// StruggleRatio and RushRatio bound the rush-after-struggle
	// pattern: a slow answer (ratio above StruggleRatio) followed by an
	// abruptly fast one (ratio below RushRatio).
	StruggleRatio = 1.5
	RushRatio     = 0.5

	frustrationSignals    = 3
	minFrustrationSignals = 2
)

// FrustrationDetector fires when at least two of three signals appear
// inside the rolling window: repeated rapid wrong answers, a hint-
// request spree, or a rush-after-struggle timing collapse. Confidence
// scales with how many signals fired.
type FrustrationDetector struct{}

func (d *FrustrationDetector) Name() string { return "frustration" }

func (d *FrustrationDetector) Detect(history []Event) (Indicator, float64) {
	if len(history) == 0 {
		return IndicatorNone, 0
	}
	window := inWindow(history, history[len(history)-1].Timestamp)

	signals := 0
	if rapidIncorrect(window) >= RapidIncorrectSignal {
		signals++
	}
	if trailingHintRun(window) >= ConsecutiveHintSignal {
		signals++
	}
	if rushAfterStruggle(window) {
		signals++
	}

	if signals < minFrustrationSignals {
		return IndicatorNone, 0
	}
	return IndicatorFrustration, float64(signals) / frustrationSignals
}

// inWindow returns the trailing events within FrustrationWindow of the
// anchor timestamp.
func inWindow(history []Event, anchor time.Time) []Event {
	cutoff := anchor.Add(-FrustrationWindow)
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Timestamp.Before(cutoff) {
			return history[i+1:]
		}
	}
	return history
}

func rapidIncorrect(events []Event) int {
	n := 0
	for _, e := range events {
		switch e.Type {
		case EventRapidAttempt:
			n++
		case EventAnswer:
			if e.Correct != nil && !*e.Correct && e.ResponseTimeMs < RapidAnswerMs {
				n++
			}
		}
	}
	return n
}

func trailingHintRun(events []Event) int {
	run := 0
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != EventHintRequest {
			break
		}
		run++
	}
	return run
}

// rushAfterStruggle reports whether an answer well over expected time
// is later followed by one well under it.
func rushAfterStruggle(events []Event) bool {
	struggled := false
	for _, e := range events {
		if e.Type != EventAnswer {
			continue
		}
		ratio := e.TimeRatio()
		if ratio >= StruggleRatio {
			struggled = true
			continue
		}
		if struggled && ratio < RushRatio && ratio > 0 {
			return true
		}
	}
	return false
}
