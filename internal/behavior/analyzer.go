package behavior

// Detector is a rule-based affect detector over the trailing event
// history (oldest first, the final event being the one under analysis).
// Returns an indicator and confidence (0.0-1.0), or (none, 0) if the
// rule doesn't apply.
type Detector interface {
	Name() string
	Detect(history []Event) (Indicator, float64)
}

// DefaultDetectors returns detectors in priority order. Frustration
// outranks boredom: when both somehow fire, easing off is the safer
// intervention.
func DefaultDetectors() []Detector {
	return []Detector{
		&FrustrationDetector{},
		&BoredomDetector{},
	}
}

// Analyze runs detectors in order and returns the first match, or the
// neutral hint when no rule applies.
func Analyze(detectors []Detector, history []Event) Hint {
	for _, d := range detectors {
		ind, conf := d.Detect(history)
		if ind != IndicatorNone && ind != "" {
			return Hint{Indicator: ind, Confidence: conf, DetectorName: d.Name()}
		}
	}
	return None()
}
