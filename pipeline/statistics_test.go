package pipeline

import "testing"

func TestTrimmedStatsTrimsOutliers(t *testing.T) {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = 0.5
	}
	samples[0] = -100
	samples[99] = 100

	min, mean, max, _ := trimmedStats(samples)
	if min < 0 {
		t.Errorf("trimmed min = %v, want outlier excluded", min)
	}
	if max > 1 {
		t.Errorf("trimmed max = %v, want outlier excluded", max)
	}
	if mean < 0.49 || mean > 0.51 {
		t.Errorf("trimmed mean = %v, want ~0.5", mean)
	}
}

func TestTrimmedStatsEmptyIsZero(t *testing.T) {
	min, mean, max, variance := trimmedStats(nil)
	if min != 0 || mean != 0 || max != 0 || variance != 0 {
		t.Errorf("trimmedStats(nil) = (%v,%v,%v,%v), want all zero", min, mean, max, variance)
	}
}

func TestTrimmedStatsSmallSampleSkipsTrim(t *testing.T) {
	samples := []float64{0.1, 0.9}
	min, _, max, _ := trimmedStats(samples)
	if min != 0.1 || max != 0.9 {
		t.Errorf("small sample trimmed to (%v,%v), want untrimmed (0.1,0.9)", min, max)
	}
}
