package highlight

import (
	"math"
	"testing"
)

func TestSampleGridPointsCount(t *testing.T) {
	pts := SampleGridPoints(64, 64)
	if len(pts) != gridSamples {
		t.Fatalf("len(points) = %d, want %d", len(pts), gridSamples)
	}
	for _, p := range pts {
		if p[0] < 0 || p[0] >= 64 || p[1] < 0 || p[1] >= 64 {
			t.Errorf("point %v out of bounds", p)
		}
	}
}

func TestCheckFlickerConstantPasses(t *testing.T) {
	series := make([][]float64, gridSamples)
	for i := range series {
		s := make([]float64, 30)
		for j := range s {
			s[j] = 0.5
		}
		series[i] = s
	}
	res := CheckFlicker(series, 30)
	if !res.Pass {
		t.Errorf("constant series flagged as flicker: worst ratio %v", res.WorstRatio)
	}
}

func TestCheckFlickerDetectsBandEnergy(t *testing.T) {
	const fps = 30.0
	const n = 60
	series := make([][]float64, gridSamples)
	for i := range series {
		s := make([]float64, n)
		for j := range s {
			// 3 Hz oscillation sits inside the 1-6 Hz flicker band.
			s[j] = 0.5 + 0.4*math.Sin(2*math.Pi*3*float64(j)/fps)
		}
		series[i] = s
	}
	res := CheckFlicker(series, fps)
	if res.Pass {
		t.Errorf("3 Hz oscillation not flagged, worst ratio %v", res.WorstRatio)
	}
}

func TestCheckFlickerShortSequencePasses(t *testing.T) {
	series := [][]float64{{0.1, 0.2}}
	res := CheckFlicker(series, 30)
	if !res.Pass {
		t.Errorf("short sequence should trivially pass")
	}
}
