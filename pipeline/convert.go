package pipeline

import (
	"github.com/lumacurve/tonecore/colorspace"
	"github.com/lumacurve/tonecore/frame"
)

// gamutFor maps a frame color-space tag to the frozen gamut matrix set
// to use for it. Rec709 carries no dedicated frozen matrix; it is routed
// through the P3-D65 matrix pair as the nearest available primaries set.
func gamutFor(space frame.ColorSpace) colorspace.Gamut {
	switch space {
	case frame.BT2020PQ:
		return colorspace.GamutBT2020
	case frame.P3D65, frame.Rec709:
		return colorspace.GamutP3D65
	case frame.ACEScg:
		return colorspace.GamutACEScg
	default:
		return colorspace.GamutBT2020
	}
}

// toWorkingDomain converts a pixel from its frame's native color space
// into the BT.2020 + PQ-normalized working domain, per spec.md §4.6
// step 2. Frames already tagged BT2020PQ pass through their gamut
// unchanged (they are defined to already carry PQ-normalized signal),
// non-finite channels included, so the caller can detect and report
// them. For other tags a non-finite input becomes (0,0,0).
func toWorkingDomain(p frame.Pixel, space frame.ColorSpace) (r, g, b float64) {
	if space == frame.BT2020PQ {
		return float64(p.R), float64(p.G), float64(p.B)
	}
	from := gamutFor(space)
	or, og, ob, ok := colorspace.Transform(from, colorspace.GamutBT2020, float64(p.R), float64(p.G), float64(p.B))
	if !ok {
		return 0, 0, 0
	}
	return or, og, ob
}

// fromWorkingDomain converts a working-domain (BT.2020+PQ) pixel back to
// the requested output color space, per spec.md §4.6 step 7.
func fromWorkingDomain(r, g, b float64, space frame.ColorSpace) (float64, float64, float64, bool) {
	if space == frame.BT2020PQ {
		return r, g, b, true
	}
	to := gamutFor(space)
	return colorspace.Transform(colorspace.GamutBT2020, to, r, g, b)
}
