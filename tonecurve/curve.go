// Package tonecurve implements the PPR and RLOG analytic tone curves, the
// shared soft-knee/toe-clamp post-processing, and the monotonicity/C1
// validators that the frame pipeline runs as a first-frame self-check.
package tonecurve

import "github.com/lumacurve/tonecore/numerics"

// Evaluator is a tone curve: a single-valued, (ideally) monotonic,
// C1-continuous map from a PQ-normalized luminance proxy in [0,1] back to
// [0,1].
type Evaluator interface {
	// Apply evaluates the curve at x. Non-finite x yields 0, per the
	// failure policy in spec.md §4.3.
	Apply(x float64) float64
}

// softKnee compresses values above yknee so the curve approaches but never
// reaches 1. It is a no-op for y <= yknee.
func softKnee(y, yknee, alpha float64) float64 {
	if y <= yknee {
		return y
	}
	excess := y - yknee
	maxExcess := 1 - yknee
	n := numerics.SafeDiv(excess, maxExcess, 0)
	compressed := numerics.SafeDiv(n, 1+alpha*n, 0)
	return yknee + maxExcess*compressed
}

// toeClamp enforces a black-lift floor: any strictly positive output is
// raised to at least toe, while toeClamp(0) stays exactly 0.
func toeClamp(y, toe float64) float64 {
	if y > 0 && y < toe {
		return toe
	}
	return y
}

// postProcess applies the shared soft-knee, toe-clamp and final range
// protection every curve implementation uses after its own piecewise
// evaluation.
func postProcess(y, yknee, alpha, toe float64) float64 {
	y = softKnee(y, yknee, alpha)
	y = toeClamp(y, toe)
	return numerics.Saturate(y)
}
