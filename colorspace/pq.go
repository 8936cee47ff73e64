// Package colorspace implements the PQ (ST 2084) transfer functions, the
// frozen working-domain matrix transforms, and OKLab conversion that the
// tone-mapping pipeline uses to move pixels between color spaces.
package colorspace

import (
	"math"

	"github.com/lumacurve/tonecore/numerics"
)

// ST 2084 constants.
const (
	pqM1    = 0.1593017578125
	pqM2    = 78.84375
	pqC1    = 0.8359375
	pqC2    = 18.8515625
	pqC3    = 18.6875
	pqScale = 10000 // cd/m^2
)

// EOTF maps a PQ-encoded value in [0,1] to display luminance in [0,10000]
// cd/m^2, per ST 2084. EOTF(0) = 0, EOTF(x) = 10000 for x >= 1, and any
// non-finite input yields 0.
func EOTF(x float64) float64 {
	if !numerics.IsFinite(x) {
		return 0
	}
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return pqScale
	}

	xm := numerics.SafePow(x, 1/pqM2, 0)
	num := math.Max(xm-pqC1, 0)
	den := pqC2 - pqC3*xm
	ratio := numerics.SafeDiv(num, den, 0)
	y := numerics.SafePow(ratio, 1/pqM1, 0)
	return pqScale * y
}

// OETF is the right inverse of EOTF: it maps display luminance in
// [0,10000] cd/m^2 back to a PQ-encoded value in [0,1]. OETF(0) = 0,
// OETF(y) = 1 for y >= 10000, and any non-finite input yields 0.
func OETF(y float64) float64 {
	if !numerics.IsFinite(y) {
		return 0
	}
	if y <= 0 {
		return 0
	}
	if y >= pqScale {
		return 1
	}

	yn := y / pqScale
	ym := numerics.SafePow(yn, pqM1, 0)
	num := pqC1 + pqC2*ym
	den := 1 + pqC3*ym
	ratio := numerics.SafeDiv(num, den, 0)
	return numerics.SafePow(ratio, pqM2, 0)
}

// EOTFVec and OETFVec apply the scalar transfer functions per channel.

// EOTFVec applies EOTF to each of r, g, b.
func EOTFVec(r, g, b float64) (float64, float64, float64) {
	return EOTF(r), EOTF(g), EOTF(b)
}

// OETFVec applies OETF to each of r, g, b.
func OETFVec(r, g, b float64) (float64, float64, float64) {
	return OETF(r), OETF(g), OETF(b)
}
