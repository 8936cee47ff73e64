// Package highlight implements the pivot-masked unsharp-mask highlight
// detail stage: a highlight mask, a separable Gaussian blur, motion
// protection, and a flicker frequency-band check.
package highlight

import "github.com/lumacurve/tonecore/numerics"

// Mask returns the highlight weight for a working-domain luminance proxy
// lum given the tone-curve pivot: 0 at or below the pivot, rising linearly
// to 1 at lum=1.
func Mask(lum, pivot float64) float64 {
	if lum <= pivot {
		return 0
	}
	return numerics.Clamp(numerics.SafeDiv(lum-pivot, 1-pivot, 0), 0, 1)
}
