package tonecurve

import "sort"

// Validation constants from spec.md §4.3.
const (
	uniformSampleCount = 4096
	focusSampleCount   = 256
	c1Epsilon          = 1e-3
	c1MaxJump          = 1e-3
)

// sampleGrid builds the combined uniform + focused sample set used by both
// validators: 4096 uniform points over [0,1] plus 256 points clustered
// within [center-radius, center+radius] (clipped to [0,1]), sorted
// ascending.
func sampleGrid(center, radius float64) []float64 {
	xs := make([]float64, 0, uniformSampleCount+focusSampleCount)
	for i := 0; i < uniformSampleCount; i++ {
		xs = append(xs, float64(i)/float64(uniformSampleCount-1))
	}

	lo, hi := center-radius, center+radius
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	span := hi - lo
	for i := 0; i < focusSampleCount; i++ {
		var x float64
		if focusSampleCount == 1 {
			x = lo
		} else {
			x = lo + span*float64(i)/float64(focusSampleCount-1)
		}
		xs = append(xs, x)
	}

	sort.Float64s(xs)
	return xs
}

// MonotonicityResult reports the outcome of the monotonicity validator.
type MonotonicityResult struct {
	Pass       bool
	Violations int
}

// CheckMonotonicity samples the curve on the 4096+256 grid focused around
// center (the pivot for PPR, the threshold for RLOG) with the given
// radius, and fails if any successor is less than its predecessor.
func CheckMonotonicity(e Evaluator, center, radius float64) MonotonicityResult {
	xs := sampleGrid(center, radius)

	violations := 0
	prev := e.Apply(xs[0])
	for _, x := range xs[1:] {
		y := e.Apply(x)
		if y < prev {
			violations++
		}
		prev = y
	}
	return MonotonicityResult{Pass: violations == 0, Violations: violations}
}

// C1Result reports the outcome of the C1-continuity validator.
type C1Result struct {
	Pass            bool
	MaxDerivativeGap float64
}

// CheckC1 estimates left/right derivatives at each interior point of the
// 4096+256 grid (focused around center with the given radius) using
// one-sided backward and forward differences with epsilon=1e-3, and fails
// if the maximum derivative jump exceeds 1e-3.
func CheckC1(e Evaluator, center, radius float64) C1Result {
	xs := sampleGrid(center, radius)

	var maxGap float64
	for _, x := range xs {
		if x-c1Epsilon < 0 || x+c1Epsilon > 1 {
			continue
		}
		left := (e.Apply(x) - e.Apply(x-c1Epsilon)) / c1Epsilon
		right := (e.Apply(x+c1Epsilon) - e.Apply(x)) / c1Epsilon
		gap := right - left
		if gap < 0 {
			gap = -gap
		}
		if gap > maxGap {
			maxGap = gap
		}
	}

	return C1Result{Pass: maxGap <= c1MaxJump, MaxDerivativeGap: maxGap}
}

// FocusWindow returns the (center, radius) pair used to cluster the
// validators' focused samples for a given curve: ±5% of the pivot for
// PPR, ±10% of the threshold for RLOG.
func (c PPR) FocusWindow() (center, radius float64) {
	return c.Pivot, 0.05 * c.Pivot
}

// FocusWindow for RLOG per spec.md §4.3.
func (c RLOG) FocusWindow() (center, radius float64) {
	return c.T, 0.10 * c.T
}
