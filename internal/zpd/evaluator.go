package zpd

const (
	// DefaultWindow is how many trailing answers feed the success rate.
	DefaultWindow = 5

	// emaAlpha weights the newest result in the exponential moving
	// average; recent misses shift the zone faster than old ones.
	emaAlpha = 0.3
)

// Status is the per-(learner, concept) zone evaluation. Streak counters
// persist across evaluations; everything else is recomputed each call.
type Status struct {
	Zone                  Zone    `json:"zone"`
	RecentSuccessRate     float64 `json:"recent_success_rate"`
	ConsecutiveCorrect    int     `json:"consecutive_correct"`
	ConsecutiveIncorrect  int     `json:"consecutive_incorrect"`
	RecommendedDifficulty int     `json:"recommended_difficulty"`
}

// NewStatus is the zero-observation starting point at a difficulty.
func NewStatus(difficulty int) Status {
	return Status{
		Zone:                  ZoneOptimal,
		RecommendedDifficulty: clampLevel(difficulty),
	}
}

// Evaluate recomputes the status from the trailing answer window. The
// results are ordered oldest first and the final element is the answer
// being evaluated: streak counters advance by one per call, carrying
// over from prev, and reset on a result of the opposite sign. A window
// of zero or less falls back to DefaultWindow.
func Evaluate(prev Status, results []bool, currentDifficulty, window int) Status {
	current := clampLevel(currentDifficulty)
	if len(results) == 0 {
		out := prev
		out.RecommendedDifficulty = current
		return out
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if len(results) > window {
		results = results[len(results)-window:]
	}

	out := prev
	if results[len(results)-1] {
		out.ConsecutiveCorrect = prev.ConsecutiveCorrect + 1
		out.ConsecutiveIncorrect = 0
	} else {
		out.ConsecutiveIncorrect = prev.ConsecutiveIncorrect + 1
		out.ConsecutiveCorrect = 0
	}

	out.RecentSuccessRate = successEMA(results)
	out.Zone = ClassifyZone(out.RecentSuccessRate)
	out.RecommendedDifficulty = recommend(out, current)
	return out
}

// successEMA is the exponentially-weighted success rate over the
// window, newest result weighted highest, weights normalized so an
// all-correct window is exactly 1.
func successEMA(results []bool) float64 {
	var num, denom float64
	w := 1.0
	for i := len(results) - 1; i >= 0; i-- {
		if results[i] {
			num += w
		}
		denom += w
		w *= 1 - emaAlpha
	}
	return num / denom
}

// recommend maps the zone to a one-level move. Streaks override the
// zone: two straight misses always step down, three straight hits
// always step up.
func recommend(s Status, current int) int {
	switch {
	case s.ConsecutiveIncorrect >= 2:
		return clampLevel(current - 1)
	case s.ConsecutiveCorrect >= 3:
		return clampLevel(current + 1)
	}
	switch s.Zone {
	case ZoneFrustrationRisk, ZoneBelowZPD:
		return clampLevel(current - 1)
	case ZoneAboveZPD, ZoneBoredomRisk:
		return clampLevel(current + 1)
	default:
		return current
	}
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
