package config

import "github.com/lumacurve/tonecore/faults"

// fieldRange is the admissible [Min, Max] range for one numeric field of
// a Bundle, together with accessors and the error code a correction on
// this field should raise, mirroring the table-driven validation style
// this tree's config packages use elsewhere (Name/Update/Validate).
type fieldRange struct {
	Name    string
	Get     func(*Bundle) float64
	Set     func(*Bundle, float64)
	Min     float64
	Max     float64
	Default float64
	Code    faults.Code
}

// Fields describes every numeric field of a Bundle: its range, its
// documented default, and which error code a correction on it raises.
// Clamping replaces an out-of-range or non-finite value with the range
// midpoint (Min+Max)/2, not with Default.
var Fields = []fieldRange{
	{"pivot_pq", func(b *Bundle) float64 { return b.PivotPQ }, func(b *Bundle, v float64) { b.PivotPQ = v }, 0.05, 0.30, 0.18, faults.RANGE_PIVOT},
	{"gamma_s", func(b *Bundle) float64 { return b.GammaS }, func(b *Bundle, v float64) { b.GammaS = v }, 1.0, 1.6, 1.25, faults.RANGE_KNEE},
	{"gamma_h", func(b *Bundle) float64 { return b.GammaH }, func(b *Bundle, v float64) { b.GammaH = v }, 0.8, 1.4, 1.10, faults.RANGE_KNEE},
	{"shoulder_h", func(b *Bundle) float64 { return b.ShoulderH }, func(b *Bundle, v float64) { b.ShoulderH = v }, 0.5, 3.0, 1.5, faults.RANGE_KNEE},
	{"rlog_a", func(b *Bundle) float64 { return b.RlogA }, func(b *Bundle, v float64) { b.RlogA = v }, 1.0, 16.0, 8.0, faults.RANGE_KNEE},
	{"rlog_b", func(b *Bundle) float64 { return b.RlogB }, func(b *Bundle, v float64) { b.RlogB = v }, 0.8, 1.2, 1.0, faults.RANGE_KNEE},
	{"rlog_c", func(b *Bundle) float64 { return b.RlogC }, func(b *Bundle, v float64) { b.RlogC = v }, 0.5, 3.0, 1.5, faults.RANGE_KNEE},
	{"rlog_t", func(b *Bundle) float64 { return b.RlogT }, func(b *Bundle, v float64) { b.RlogT = v }, 0.4, 0.7, 0.55, faults.RANGE_KNEE},
	{"yknee", func(b *Bundle) float64 { return b.YKnee }, func(b *Bundle, v float64) { b.YKnee = v }, 0.95, 0.99, 0.97, faults.RANGE_KNEE},
	{"alpha", func(b *Bundle) float64 { return b.Alpha }, func(b *Bundle, v float64) { b.Alpha = v }, 0.2, 1.0, 0.6, faults.RANGE_KNEE},
	{"toe", func(b *Bundle) float64 { return b.Toe }, func(b *Bundle, v float64) { b.Toe = v }, 0.0, 0.01, 0.002, faults.RANGE_KNEE},
	{"black_lift", func(b *Bundle) float64 { return b.BlackLift }, func(b *Bundle, v float64) { b.BlackLift = v }, 0.0, 0.02, 0.002, faults.RANGE_KNEE},
	{"highlight_detail", func(b *Bundle) float64 { return b.HighlightDetail }, func(b *Bundle, v float64) { b.HighlightDetail = v }, 0.0, 1.0, 0.2, faults.RANGE_KNEE},
	{"sat_base", func(b *Bundle) float64 { return b.SatBase }, func(b *Bundle, v float64) { b.SatBase = v }, 0.0, 2.0, 1.0, faults.RANGE_KNEE},
	{"sat_hi", func(b *Bundle) float64 { return b.SatHi }, func(b *Bundle, v float64) { b.SatHi = v }, 0.0, 2.0, 0.95, faults.RANGE_KNEE},
}
