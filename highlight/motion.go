package highlight

import "math"

// motionHistoryLen is the fixed ring-buffer length the spec requires for
// the mean-motion suppression check.
const motionHistoryLen = 10

const (
	motionCurrentThreshold = 0.02
	motionMeanThreshold    = 0.01
)

// Motion tracks recent per-frame motion energy above the tone-curve pivot
// and decides whether highlight detail should be suppressed, per spec.md
// §4.4's motion protection clause.
type Motion struct {
	history []float64 // ring buffer, oldest first, len <= motionHistoryLen
}

// NewMotion returns an empty motion tracker.
func NewMotion() *Motion {
	return &Motion{history: make([]float64, 0, motionHistoryLen)}
}

// Energy computes motion energy between the current and previous luminance
// planes, restricted to pixels where the current luminance exceeds pivot,
// per spec.md §4.4: motion = sqrt(mean((lum_cur-lum_prev)^2)) clamped to
// [0,1].
func Energy(curLum, prevLum []float64, pivot float64) float64 {
	var sum float64
	var count int
	for i := range curLum {
		if curLum[i] <= pivot {
			continue
		}
		d := curLum[i] - prevLum[i]
		sum += d * d
		count++
	}
	if count == 0 {
		return 0
	}
	m := math.Sqrt(sum / float64(count))
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}

// Push records a new motion-energy sample, evicting the oldest once the
// ring reaches motionHistoryLen.
func (m *Motion) Push(energy float64) {
	m.history = append(m.history, energy)
	if len(m.history) > motionHistoryLen {
		m.history = m.history[1:]
	}
}

// Mean returns the mean of the recorded history, 0 if empty.
func (m *Motion) Mean() float64 {
	if len(m.history) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m.history {
		sum += v
	}
	return sum / float64(len(m.history))
}

// Adjust halves intensity when the current motion sample exceeds
// motionCurrentThreshold or the history mean exceeds motionMeanThreshold,
// and records the sample into history either way.
func (m *Motion) Adjust(intensity, currentEnergy float64) float64 {
	suppress := currentEnergy > motionCurrentThreshold || m.Mean() > motionMeanThreshold
	m.Push(currentEnergy)
	if suppress {
		return intensity / 2
	}
	return intensity
}
