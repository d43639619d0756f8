package behavior

const (
	// BoredomRatioMax is the response-time ratio (exclusive) below
	// which an answer reads as effortless.
	BoredomRatioMax = 0.5

	// BoredomMinAnswers is how many trailing effortless answers the
	// pattern must sustain.
	BoredomMinAnswers = 3

	// boredomSaturation is the streak length at which confidence
	// reaches 1.0; the minimum run lands at 0.6.
	boredomSaturation = 5
)

// BoredomDetector fires on a sustained run of fast, correct, hint-free
// answers: the learner is coasting well under the expected pace.
// Confidence grows with the length of the run.
type BoredomDetector struct{}

func (d *BoredomDetector) Name() string { return "boredom" }

func (d *BoredomDetector) Detect(history []Event) (Indicator, float64) {
	run := 0
	for i := len(history) - 1; i >= 0; i-- {
		e := history[i]
		if e.Type != EventAnswer {
			break
		}
		effortless := e.Correct != nil && *e.Correct &&
			e.HintsUsed == 0 &&
			e.TimeRatio() > 0 && e.TimeRatio() < BoredomRatioMax
		if !effortless {
			break
		}
		run++
	}

	if run < BoredomMinAnswers {
		return IndicatorNone, 0
	}
	conf := float64(run) / boredomSaturation
	if conf > 1 {
		conf = 1
	}
	return IndicatorBoredom, conf
}
