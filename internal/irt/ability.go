package irt

import "math"

const (
	convergenceTol = 0.001
	maxIterations  = 25

	// LowConfidenceResponses is the response count below which an
	// ability estimate is flagged low-confidence rather than withheld.
	LowConfidenceResponses = 5

	// eapGridStep is the quadrature step for the EAP fallback grid.
	eapGridStep = 0.1
)

// Estimation methods, recorded on the result for observability.
const (
	MethodMLE = "mle"
	MethodEAP = "eap"
)

// Response pairs one correctness outcome with the item parameters in
// effect when it was answered.
type Response struct {
	Correct bool
	Item    ItemParams
}

// AbilityEstimate is the learner-side result of ability estimation.
type AbilityEstimate struct {
	Theta         float64
	StandardError float64
	Responses     int
	LowConfidence bool
	Method        string
}

// EstimateAbility estimates theta from a response vector under the 3PL
// model. It runs Newton-Raphson (Fisher scoring) from theta0 and falls
// back to an EAP estimate against a unit-variance normal prior centered
// on theta0 when the iteration fails to converge or the information
// degenerates, so a running estimate carries through the Bayesian path
// too. The result is always finite and inside [ThetaMin, ThetaMax],
// with StandardError > 0.
func EstimateAbility(responses []Response, theta0 float64) AbilityEstimate {
	n := len(responses)
	if n == 0 {
		return AbilityEstimate{
			Theta:         clamp(theta0, ThetaMin, ThetaMax),
			StandardError: 1 / math.Sqrt(minInfo),
			LowConfidence: true,
			Method:        MethodEAP,
		}
	}

	// A response vector with no mixed evidence has no finite ML
	// optimum; go straight to the Bayesian estimate.
	var theta float64
	method := MethodMLE
	if allSameOutcome(responses) {
		theta = eapEstimate(responses, theta0)
		method = MethodEAP
	} else {
		var ok bool
		theta, ok = newtonRaphson(responses, theta0)
		if !ok {
			theta = eapEstimate(responses, theta0)
			method = MethodEAP
		}
	}

	theta = clamp(theta, ThetaMin, ThetaMax)
	info := totalInformation(responses, theta)
	se := 1 / math.Sqrt(math.Max(info, minInfo))

	return AbilityEstimate{
		Theta:         theta,
		StandardError: se,
		Responses:     n,
		LowConfidence: n < LowConfidenceResponses,
		Method:        method,
	}
}

// minInfo floors the total information so the standard error stays
// finite and strictly positive.
const minInfo = 1e-6

// newtonRaphson iterates theta_{n+1} = theta_n + L'(theta)/I(theta)
// (Fisher scoring: the expected information replaces -L''). Returns
// (theta, false) on non-convergence or a degenerate derivative.
func newtonRaphson(responses []Response, theta0 float64) (float64, bool) {
	theta := clamp(theta0, ThetaMin, ThetaMax)

	for i := 0; i < maxIterations; i++ {
		grad := logLikelihoodGradient(responses, theta)
		info := totalInformation(responses, theta)
		if !isFinite(grad) || !isFinite(info) || info < minInfo {
			return theta, false
		}

		next := clamp(theta+grad/info, ThetaMin, ThetaMax)
		if math.Abs(next-theta) < convergenceTol {
			return next, true
		}
		theta = next
	}
	return theta, false
}

// logLikelihoodGradient is dL/dtheta for the 3PL likelihood:
// sum over items of a_i (u_i - P_i)(P_i - c_i) / (P_i (1 - c_i)).
func logLikelihoodGradient(responses []Response, theta float64) float64 {
	var grad float64
	for _, r := range responses {
		prob := Probability(theta, r.Item)
		if prob <= 0 || prob >= 1 {
			continue
		}
		u := 0.0
		if r.Correct {
			u = 1.0
		}
		grad += r.Item.Discrimination * (u - prob) * (prob - r.Item.Guessing) / (prob * (1 - r.Item.Guessing))
	}
	return grad
}

func totalInformation(responses []Response, theta float64) float64 {
	var info float64
	for _, r := range responses {
		info += FisherInformation(theta, r.Item)
	}
	return info
}

// eapEstimate computes the Expected-A-Posteriori theta over a fixed
// quadrature grid with a unit-variance normal prior centered on
// priorMean, so the posterior stays anchored to the running estimate
// when the likelihood alone cannot pin theta down. It always
// terminates with a finite, in-range value.
func eapEstimate(responses []Response, priorMean float64) float64 {
	mu := clamp(priorMean, ThetaMin, ThetaMax)
	var num, denom float64
	for theta := ThetaMin; theta <= ThetaMax+eapGridStep/2; theta += eapGridStep {
		d := theta - mu
		w := math.Exp(-d*d/2) * likelihood(responses, theta)
		num += theta * w
		denom += w
	}
	if denom <= 0 || !isFinite(num/denom) {
		return mu
	}
	return num / denom
}

func likelihood(responses []Response, theta float64) float64 {
	l := 1.0
	for _, r := range responses {
		prob := Probability(theta, r.Item)
		if r.Correct {
			l *= prob
		} else {
			l *= 1 - prob
		}
	}
	return l
}

func allSameOutcome(responses []Response) bool {
	for _, r := range responses[1:] {
		if r.Correct != responses[0].Correct {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
