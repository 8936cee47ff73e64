package tonecurve

import "github.com/lumacurve/tonecore/numerics"

// PPR (Pivoted Power-Rational) is a power-in-shadows, rational-in-highlights
// tone curve with a C1 blend around a mid-gray pivot.
type PPR struct {
	Pivot     float64 // p: mid-gray pivot in [0.05, 0.30].
	GammaS    float64 // shadow exponent.
	GammaH    float64 // highlight exponent.
	ShoulderH float64 // highlight denominator coefficient h.
	YKnee     float64
	Alpha     float64
	Toe       float64
}

// pprWindowFraction is the half-width of the shadow/highlight blend
// window, expressed as a fraction of the pivot (Δ = 0.1·p).
const pprWindowFraction = 0.1

// shadow evaluates the pure power segment y_s(x) = p·(x/p)^γs.
func (c PPR) shadow(x float64) float64 {
	ratio := numerics.SafeDiv(x, c.Pivot, 0)
	return c.Pivot * numerics.SafePow(ratio, c.GammaS, 0)
}

// highlight evaluates the pure rational segment for x > p:
// u = (x-p)/(1-p), y_h(x) = p + (u/(1+h·u))^γh · (1-p).
func (c PPR) highlight(x float64) float64 {
	u := numerics.SafeDiv(x-c.Pivot, 1-c.Pivot, 0)
	shaped := numerics.SafeDiv(u, 1+c.ShoulderH*u, 0)
	return c.Pivot + numerics.SafePow(shaped, c.GammaH, 0)*(1-c.Pivot)
}

// Apply evaluates the PPR curve at x, per spec.md §4.3.
//
// At x == p exactly, both segments evaluate to p algebraically; this
// implementation additionally pins the value to p explicitly at that
// point before blending (see DESIGN.md's "PPR pivot pinning" decision),
// following the convention the distilled source itself uses rather than
// the continuous-formula-only reading — both satisfy monotonicity and C1
// under the spec's 1e-3 threshold.
func (c PPR) Apply(x float64) float64 {
	if !numerics.IsFinite(x) {
		return 0
	}

	delta := pprWindowFraction * c.Pivot
	lo, hi := c.Pivot-delta, c.Pivot+delta

	var y float64
	switch {
	case x == c.Pivot:
		y = c.Pivot
	case x < lo:
		y = c.shadow(x)
	case x > hi:
		y = c.highlight(x)
	default:
		ys := c.shadow(x)
		yh := c.highlight(x)
		t := numerics.Smoothstep(lo, hi, x)
		y = numerics.Mix(ys, yh, t)
	}

	return postProcess(y, c.YKnee, c.Alpha, c.Toe)
}
