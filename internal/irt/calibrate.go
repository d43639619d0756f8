package irt

import (
	"math"
	"sort"
)

// AttemptObservation pairs the estimated ability of an attempting
// learner with the attempt outcome. Recalibration conditions on these
// thetas rather than assuming a uniform attempting population.
type AttemptObservation struct {
	Theta   float64
	Correct bool
}

// Recalibrate refits the item difficulty (and discrimination, when the
// observed thetas span enough range) against the empirical success rate
// of the attempting learners.
//
// Method: moment matching. Difficulty b is chosen by bisection so that
// the mean 3PL probability over the observed thetas equals the observed
// success rate; discrimination is re-estimated from the success-rate
// contrast between the lower and upper theta halves. Both land inside
// the declared bounds.
//
// With fewer than CalibrationMinAttempts attempts the call is a no-op
// returning the input unchanged. The fit is deterministic, so repeated
// calls without new attempts yield identical states.
func Recalibrate(s ItemState, obs []AttemptObservation) ItemState {
	if s.AttemptCount < CalibrationMinAttempts || len(obs) < CalibrationMinAttempts {
		return s
	}

	correct := 0
	for _, o := range obs {
		if o.Correct {
			correct++
		}
	}
	rate := float64(correct) / float64(len(obs))

	out := s
	out.ObservedRate = float64(s.SuccessCount) / float64(s.AttemptCount)

	if a, ok := fitDiscrimination(obs, s.Params.Guessing); ok {
		out.Params.Discrimination = a
	}
	out.Params.Difficulty = fitDifficulty(obs, out.Params, rate)
	out.Calibrated = true
	return out
}

// fitDifficulty solves for b such that the mean predicted probability
// over the observed thetas matches the observed rate. The mean is
// strictly decreasing in b, so bisection over the declared bounds
// converges; rates outside the reachable range pin b at a bound.
func fitDifficulty(obs []AttemptObservation, p ItemParams, rate float64) float64 {
	meanProb := func(b float64) float64 {
		trial := p
		trial.Difficulty = b
		var sum float64
		for _, o := range obs {
			sum += Probability(o.Theta, trial)
		}
		return sum / float64(len(obs))
	}

	lo, hi := MinDifficulty, MaxDifficulty
	if meanProb(lo) <= rate {
		return lo
	}
	if meanProb(hi) >= rate {
		return hi
	}
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if meanProb(mid) > rate {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// fitDiscrimination estimates a from the logit contrast between the
// lower-theta and upper-theta halves of the observations. Returns
// (0, false) when the theta spread is too small to identify a.
func fitDiscrimination(obs []AttemptObservation, guessing float64) (float64, bool) {
	sorted := make([]AttemptObservation, len(obs))
	copy(sorted, obs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Theta < sorted[j].Theta })

	mid := len(sorted) / 2
	loMean, loRate := halfStats(sorted[:mid])
	hiMean, hiRate := halfStats(sorted[mid:])

	spread := hiMean - loMean
	if spread < 0.5 {
		return 0, false
	}

	// Correct for guessing before taking logits, then clamp away from
	// the degenerate edges.
	loStar := clamp((loRate-guessing)/(1-guessing), 0.01, 0.99)
	hiStar := clamp((hiRate-guessing)/(1-guessing), 0.01, 0.99)

	a := (logit(hiStar) - logit(loStar)) / spread
	return clamp(a, MinDiscrimination, MaxDiscrimination), true
}

func halfStats(obs []AttemptObservation) (meanTheta, rate float64) {
	if len(obs) == 0 {
		return 0, 0
	}
	correct := 0
	for _, o := range obs {
		meanTheta += o.Theta
		if o.Correct {
			correct++
		}
	}
	meanTheta /= float64(len(obs))
	rate = float64(correct) / float64(len(obs))
	return meanTheta, rate
}

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}
