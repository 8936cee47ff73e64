package pipeline

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// trimFraction is the fixed 1%-each-tail trim spec.md §4.6 step 8
// requires for the per-frame MaxRGB statistics.
const trimFraction = 0.01

// Statistics is the per-session snapshot spec.md §3/§6 describes:
// trimmed min/mean/max/variance of the output's MaxRGB, a cumulative
// frame counter, and the first-frame curve self-check flags.
type Statistics struct {
	TrimmedMin       float64
	TrimmedMean      float64
	TrimmedMax       float64
	Variance         float64
	FrameCount       uint64
	LastUpdate       time.Time
	Monotonic        bool
	C1Continuous     bool
	MaxDerivativeGap float64
}

// trimmedStats computes the 1%-each-tail trimmed min/mean/max/variance
// of samples, using gonum/stat for the mean/variance of the trimmed
// subset. samples is modified in place (sorted).
func trimmedStats(samples []float64) (min, mean, max, variance float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0, 0, 0
	}
	sort.Float64s(samples)

	trim := int(float64(n) * trimFraction)
	lo, hi := trim, n-trim
	if hi <= lo {
		lo, hi = 0, n
	}
	trimmed := samples[lo:hi]

	mean = stat.Mean(trimmed, nil)
	variance = stat.Variance(trimmed, nil)
	return trimmed[0], mean, trimmed[len(trimmed)-1], variance
}
