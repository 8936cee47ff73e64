package tonecurve

import "github.com/lumacurve/tonecore/numerics"

// RLOG (Rational Logarithmic) is a logarithmic-in-shadows,
// rational-in-highlights tone curve with a C1 splice at a threshold t.
type RLOG struct {
	A     float64 // rlog_a: shadow log slope.
	B     float64 // rlog_b: highlight numerator.
	C     float64 // rlog_c: highlight denominator.
	T     float64 // rlog_t: splice threshold in (0,1).
	YKnee float64
	Alpha float64
	Toe   float64
}

// rlogWindowHalfWidth is the fixed splice half-width δ=0.05.
const rlogWindowHalfWidth = 0.05

// dark evaluates the logarithmic shadow segment y_d(x) = log(1+a·x)/log(1+a).
func (c RLOG) dark(x float64) float64 {
	num := numerics.SafeLog(1+c.A*x, 0)
	den := numerics.SafeLog(1+c.A, 0)
	return numerics.SafeDiv(num, den, 0)
}

// highlightRaw evaluates y_h_raw(x) = b·x / (1+c·x), before the
// continuity scale is applied.
func (c RLOG) highlightRaw(x float64) float64 {
	return numerics.SafeDiv(c.B*x, 1+c.C*x, 0)
}

// continuityScale computes s = y_d(t) / y_h_raw(t), falling back to 1 if
// the highlight branch is degenerate at the threshold.
func (c RLOG) continuityScale() float64 {
	return numerics.SafeDiv(c.dark(c.T), c.highlightRaw(c.T), 1)
}

// Apply evaluates the RLOG curve at x, per spec.md §4.3.
func (c RLOG) Apply(x float64) float64 {
	if !numerics.IsFinite(x) {
		return 0
	}

	lo, hi := c.T-rlogWindowHalfWidth, c.T+rlogWindowHalfWidth

	var y float64
	switch {
	case x < lo:
		y = c.dark(x)
	case x > hi:
		s := c.continuityScale()
		y = s * c.highlightRaw(x)
	default:
		yd := c.dark(x)
		s := c.continuityScale()
		yh := s * c.highlightRaw(x)
		t := numerics.Smoothstep(lo, hi, x)
		y = numerics.Mix(yd, yh, t)
	}

	return postProcess(y, c.YKnee, c.Alpha, c.Toe)
}
