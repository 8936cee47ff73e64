package colorspace

import (
	"math"
	"testing"
)

// TestOKLabRoundTrip checks invariant 5 from spec.md §8: the OKLab round
// trip must agree within 1e-3 (L-infinity) for v in [0,1]^3.
func TestOKLabRoundTrip(t *testing.T) {
	samples := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 1, G: 1, B: 1},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0.18, G: 0.18, B: 0.18},
		{R: 0.9, G: 0.1, B: 0.4},
	}
	for _, s := range samples {
		lab := RGBToOKLab(s)
		back := OKLabToRGB(lab)
		if d := math.Max(math.Abs(back.R-s.R), math.Max(math.Abs(back.G-s.G), math.Abs(back.B-s.B))); d > 1e-3 {
			t.Errorf("round trip for %+v: got %+v, max abs diff %v exceeds 1e-3", s, back, d)
		}
	}
}

func TestOKLabNonFinite(t *testing.T) {
	lab := RGBToOKLab(RGB{R: math.NaN(), G: 0, B: 0})
	if lab != (Lab{}) {
		t.Errorf("RGBToOKLab(NaN,...) = %+v, want zero value", lab)
	}
	rgb := OKLabToRGB(Lab{L: math.Inf(1)})
	if rgb != (RGB{}) {
		t.Errorf("OKLabToRGB(Inf,...) = %+v, want zero value", rgb)
	}
}

func TestOKLabPreservesLightnessUnderChromaScale(t *testing.T) {
	lab := RGBToOKLab(RGB{R: 0.7, G: 0.3, B: 0.2})
	scaled := Lab{L: lab.L, A: lab.A * 1.2, B: lab.B * 1.2}
	if scaled.L != lab.L {
		t.Errorf("scaling a/b changed L: %v != %v", scaled.L, lab.L)
	}
}
