package highlight

import "github.com/lumacurve/tonecore/numerics"

// usmThreshold is the fixed per-channel unsharp threshold below which the
// detail delta is discarded rather than amplified.
const usmThreshold = 0.03

// Pixel mirrors frame.Pixel's (R,G,B) shape; highlight stays independent
// of the frame package so it can be unit tested against raw planes.
type Pixel struct {
	R, G, B float64
}

// Plane is a row-major width*height grid of a single channel.
type Plane struct {
	Width, Height int
	Data          []float64
}

func newPlane(width, height int) Plane {
	return Plane{Width: width, Height: height, Data: make([]float64, width*height)}
}

func (p Plane) at(x, y int) float64 { return p.Data[y*p.Width+x] }

func (p Plane) toFloat32() []float32 {
	out := make([]float32, len(p.Data))
	for i, v := range p.Data {
		out[i] = float32(v)
	}
	return out
}

func planeFromFloat32(src []float32, width, height int) Plane {
	p := newPlane(width, height)
	for i, v := range src {
		p.Data[i] = float64(v)
	}
	return p
}

// Usm applies the pivot-masked unsharp-mask highlight-detail stage to a
// single working-domain frame's three channel planes, per spec.md §4.4
// steps 1-4. effectiveIntensity is the motion-adjusted highlight_detail
// amount (see Motion.Adjust). pivot is the active tone-curve pivot.
func Usm(r, g, b Plane, effectiveIntensity, pivot float64) (outR, outG, outB Plane) {
	width, height := r.Width, r.Height
	blurR := blurPlane(r.toFloat32(), width, height)
	blurG := blurPlane(g.toFloat32(), width, height)
	blurB := blurPlane(b.toFloat32(), width, height)
	br := planeFromFloat32(blurR, width, height)
	bg := planeFromFloat32(blurG, width, height)
	bb := planeFromFloat32(blurB, width, height)

	outR, outG, outB = newPlane(width, height), newPlane(width, height), newPlane(width, height)

	for i := 0; i < width*height; i++ {
		rv, gv, bv := r.Data[i], g.Data[i], b.Data[i]
		lum := numerics.MaxRGB(rv, gv, bv)
		mask := Mask(lum, pivot)

		dr := unsharpDelta(rv-br.Data[i], effectiveIntensity)
		dg := unsharpDelta(gv-bg.Data[i], effectiveIntensity)
		db := unsharpDelta(bv-bb.Data[i], effectiveIntensity)

		outR.Data[i] = numerics.Saturate(rv + dr*mask)
		outG.Data[i] = numerics.Saturate(gv + dg*mask)
		outB.Data[i] = numerics.Saturate(bv + db*mask)
	}
	return outR, outG, outB
}

func unsharpDelta(d, amount float64) float64 {
	if !numerics.IsFinite(d) {
		return 0
	}
	if d > -usmThreshold && d < usmThreshold {
		return 0
	}
	return d * amount
}
