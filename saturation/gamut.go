package saturation

import (
	"github.com/lumacurve/tonecore/colorspace"
	"github.com/lumacurve/tonecore/numerics"
)

// gamutIterations bounds stage 2's OKLab perceptual-clamp retry loop.
const gamutIterations = 10

// chromaShrink is the per-retry chroma multiplier stage 2 applies when an
// iterate still lies outside the target gamut.
const chromaShrink = 0.9

// GamutBox describes the legal per-channel range for a target color
// space, used by both gamut stages.
type GamutBox struct {
	Min, Max float64
}

// StandardBox is the [0,1] box used by every gamut except the permissive
// ACEScg working range.
var StandardBox = GamutBox{Min: 0, Max: 1}

// ACEScgBox is the wider permissive range the spec carves out for
// ACEScg, allowing negative excursions down to -0.5 and values up to 2
// before stage 1 engages its scale cap.
var ACEScgBox = GamutBox{Min: -0.5, Max: 2}

func inGamut(c colorspace.RGB, box GamutBox) bool {
	return c.R >= box.Min && c.R <= box.Max &&
		c.G >= box.Min && c.G <= box.Max &&
		c.B >= box.Min && c.B <= box.Max
}

// GamutResult reports the two-stage gamut processor's outcome for a
// single pixel.
type GamutResult struct {
	Color         colorspace.RGB
	WasOutOfGamut bool
	Converged     bool
}

// CompressStage1 implements spec.md §4.5 stage 1 (linear compression): if
// the channel max exceeds the box's scale-cap threshold, scale all
// channels down by the same factor (preserving hue along the achromatic
// axis), then clamp negatives to the box minimum.
func CompressStage1(c colorspace.RGB, acesCg bool) colorspace.RGB {
	m := numerics.MaxRGB(c.R, c.G, c.B)
	box := StandardBox
	cap := 1.0
	if acesCg {
		box = ACEScgBox
		cap = 2.0
	}

	out := c
	if m > cap {
		scale := numerics.SafeDiv(cap, m, 1)
		out.R *= scale
		out.G *= scale
		out.B *= scale
	}

	out.R = clampMin(out.R, box.Min)
	out.G = clampMin(out.G, box.Min)
	out.B = clampMin(out.B, box.Min)

	return out
}

func clampMin(x, lo float64) float64 {
	if !numerics.IsFinite(x) || x < lo {
		return lo
	}
	return x
}

// ClampStage2 implements spec.md §4.5 stage 2 (perceptual clamp): convert
// to OKLab, then iterate converting back to RGB and shrinking chroma by
// chromaShrink until the result lies inside the box or the iteration
// budget is exhausted, in which case the last iterate is coordinate-
// clamped to the box. Lightness is held fixed throughout.
func ClampStage2(c colorspace.RGB, box GamutBox) GamutResult {
	wasOOG := !inGamut(c, box)
	if !wasOOG {
		return GamutResult{Color: c, WasOutOfGamut: false, Converged: true}
	}

	lab := colorspace.RGBToOKLab(c)
	a, b := lab.A, lab.B
	var last colorspace.RGB

	for i := 0; i < gamutIterations; i++ {
		candidate := colorspace.OKLabToRGB(colorspace.Lab{L: lab.L, A: a, B: b})
		last = candidate
		if inGamut(candidate, box) {
			return GamutResult{Color: candidate, WasOutOfGamut: true, Converged: true}
		}
		a *= chromaShrink
		b *= chromaShrink
	}

	clamped := colorspace.RGB{
		R: numerics.Clamp(last.R, box.Min, box.Max),
		G: numerics.Clamp(last.G, box.Min, box.Max),
		B: numerics.Clamp(last.B, box.Min, box.Max),
	}
	return GamutResult{Color: clamped, WasOutOfGamut: true, Converged: false}
}

// Process runs the full two-stage gamut processor for a pixel leaving the
// working domain: stage 1 always runs; stage 2 runs when dciCompliance is
// set or stage 1's result is still outside box.
func Process(c colorspace.RGB, acesCg, dciCompliance bool, box GamutBox) GamutResult {
	stage1 := CompressStage1(c, acesCg)
	if dciCompliance || !inGamut(stage1, box) {
		return ClampStage2(stage1, box)
	}
	return GamutResult{Color: stage1, WasOutOfGamut: false, Converged: true}
}
