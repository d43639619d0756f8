package irt

import "math"

// Candidate pairs a question id with its current 3PL parameters for
// adaptive selection.
type Candidate struct {
	ID     string
	Params ItemParams
}

// SelectOptimalQuestion picks the candidate with maximum Fisher
// information at theta. Ties break toward the smallest |b - theta|,
// then toward the lexically smallest id for determinism. Returns false
// when the candidate list is empty.
func SelectOptimalQuestion(theta float64, candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	best := candidates[0]
	bestInfo := FisherInformation(theta, best.Params)

	for _, c := range candidates[1:] {
		info := FisherInformation(theta, c.Params)
		switch {
		case info > bestInfo+infoTieEpsilon:
			best, bestInfo = c, info
		case math.Abs(info-bestInfo) <= infoTieEpsilon:
			if closerDifficulty(theta, c, best) {
				best, bestInfo = c, info
			}
		}
	}
	return best, true
}

const infoTieEpsilon = 1e-9

func closerDifficulty(theta float64, a, b Candidate) bool {
	da := math.Abs(a.Params.Difficulty - theta)
	db := math.Abs(b.Params.Difficulty - theta)
	if da != db {
		return da < db
	}
	return a.ID < b.ID
}
