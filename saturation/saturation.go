// Package saturation implements the per-pixel OKLab saturation pass and
// the two-stage gamut processor that follows it, per spec.md §4.5.
package saturation

import (
	"github.com/lumacurve/tonecore/colorspace"
	"github.com/lumacurve/tonecore/numerics"
)

// dciTrim is the conservative highlight-saturation trim applied in DCI
// compliance mode: a flat 7.5% reduction of sat_hi before the highlight
// blend.
const dciTrim = 0.925

// Params bundles the saturation controls the frame pipeline threads
// through per spec.md §3.
type Params struct {
	SatBase       float64
	SatHighlight  float64
	Pivot         float64
	DCICompliance bool
}

// Apply converts a working-domain linear RGB pixel to OKLab, scales
// chroma by the base and highlight saturation factors, and converts back
// to linear RGB. Lightness is never modified. lum is the MaxRGB of the
// working-domain pixel before conversion, used as the highlight-weight
// input so the weight reflects pre-OKLab luminance as the spec requires.
func Apply(c colorspace.RGB, lum float64, p Params) colorspace.RGB {
	lab := colorspace.RGBToOKLab(c)

	a := lab.A * p.SatBase
	b := lab.B * p.SatBase

	satHi := p.SatHighlight
	if p.DCICompliance {
		satHi *= dciTrim
	}
	aHi := lab.A * p.SatBase * satHi
	bHi := lab.B * p.SatBase * satHi

	w := numerics.Smoothstep(p.Pivot, 1, lum)
	a = numerics.Mix(a, aHi, w)
	b = numerics.Mix(b, bHi, w)

	return colorspace.OKLabToRGB(colorspace.Lab{L: lab.L, A: a, B: b})
}
