package config

import "math"

// IsValid reports whether every numeric field is finite and within its
// documented range, per spec.md §4.7.
func IsValid(b Bundle) bool {
	if b.Curve != CurvePPR && b.Curve != CurveRLOG {
		return false
	}
	for _, f := range Fields {
		v := f.Get(&b)
		if !isFinite(v) || v < f.Min || v > f.Max {
			return false
		}
	}
	return true
}

// ClampToValid returns a copy of b with every non-finite or out-of-range
// field replaced by its range midpoint, per spec.md §3.
func ClampToValid(b Bundle) Bundle {
	out := b
	for _, f := range Fields {
		v := f.Get(&out)
		if !isFinite(v) || v < f.Min || v > f.Max {
			v = (f.Min + f.Max) / 2
		}
		f.Set(&out, v)
	}
	if out.Curve != CurvePPR && out.Curve != CurveRLOG {
		out.Curve = CurvePPR
	}
	return out
}

// Correction describes one field that ValidateAndCorrect adjusted.
type Correction struct {
	Field     string
	Was       float64
	Now       float64
	NonFinite bool
}

// ValidateAndCorrect clamps b in place (via a returned corrected copy)
// and reports every field that was changed, alongside whether any
// correction was applied at all. Per spec.md §4.7, callers emit
// RANGE_PIVOT for the pivot field, RANGE_KNEE for every other numeric
// field, and NAN_INF for any field that was non-finite before clamping —
// the field's faults.Code (see Fields) and Correction.NonFinite together
// tell the caller which to raise.
func ValidateAndCorrect(b Bundle) (Bundle, []Correction, bool) {
	out := b
	var corrections []Correction

	for _, f := range Fields {
		v := f.Get(&out)
		nonFinite := !isFinite(v)
		clamped := v
		if nonFinite || v < f.Min || v > f.Max {
			clamped = (f.Min + f.Max) / 2
		}

		if clamped != v || nonFinite {
			corrections = append(corrections, Correction{
				Field:     f.Name,
				Was:       v,
				Now:       clamped,
				NonFinite: nonFinite,
			})
			f.Set(&out, clamped)
		}
	}

	if out.Curve != CurvePPR && out.Curve != CurveRLOG {
		corrections = append(corrections, Correction{Field: "curve", NonFinite: false})
		out.Curve = CurvePPR
	}

	return out, corrections, len(corrections) > 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
