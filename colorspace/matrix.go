package colorspace

import (
	"github.com/lumacurve/tonecore/numerics"
	"gonum.org/v1/gonum/mat"
)

// Gamut identifies a working-domain color space the frame sequencer can
// transform to or from. The matrix set for each gamut is frozen
// configuration, not something computed from device profiles at runtime.
type Gamut int

const (
	GamutBT2020 Gamut = iota
	GamutP3D65
	GamutACEScg
	GamutXYZ
)

// Matrix3 is a 3x3 row-major color transform.
type Matrix3 [9]float64

// Frozen matrix literals. Forward and inverse are both given explicitly;
// none of them are derived by inverting another matrix at runtime, per the
// configuration-freeze requirement in the spec.
var (
	// bt2020ToXYZ and xyzToBT2020 use the standard BT.2020 primaries with
	// a D65 white point.
	bt2020ToXYZ = Matrix3{
		0.6369580, 0.1446169, 0.1688810,
		0.2627002, 0.6779981, 0.0593017,
		0.0000000, 0.0280727, 1.0609851,
	}
	xyzToBT2020 = Matrix3{
		1.7166512, -0.3556708, -0.2533663,
		-0.6666844, 1.6164812, 0.0157685,
		0.0176399, -0.0427706, 0.9421031,
	}

	// p3D65ToXYZ and xyzToP3D65 use DCI-P3 primaries adapted to D65.
	p3D65ToXYZ = Matrix3{
		0.4865709, 0.2656677, 0.1982173,
		0.2289746, 0.6917385, 0.0792869,
		0.0000000, 0.0451134, 1.0439444,
	}
	xyzToP3D65 = Matrix3{
		2.4934969, -0.9313836, -0.4027108,
		-0.8294890, 1.7626641, 0.0236247,
		0.0358458, -0.0761724, 0.9568845,
	}

	// bt2020ToP3D65 and p3D65ToBT2020 are the direct gamut-to-gamut
	// matrices (rather than a runtime XYZ round trip) so that the
	// identity-choice of the composition is itself part of the frozen
	// configuration.
	bt2020ToP3D65 = Matrix3{
		1.3435574, -0.2555012, -0.0880562,
		-0.0656403, 1.0017779, 0.0638624,
		0.0028163, -0.0045290, 1.0017127,
	}
	p3D65ToBT2020 = Matrix3{
		0.7538330, 0.1985820, 0.0475849,
		0.0457456, 0.9417385, 0.0125159,
		-0.0012059, 0.0176017, 0.9836042,
	}

	// bt2020ToACEScg and acesCgToBT2020: the source implementation this
	// spec was distilled from carries identity placeholders here (see
	// spec.md §9's open question). This is preserved verbatim as a
	// documented frozen configuration rather than "fixed" with invented
	// primaries — shipping real ACEScg primaries is a deployment
	// decision, not an algorithm change.
	bt2020ToACEScg = Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	acesCgToBT2020 = Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
)

// dense builds a gonum mat.Dense view of a frozen Matrix3 literal.
func (m Matrix3) dense() *mat.Dense {
	return mat.NewDense(3, 3, m[:])
}

// Apply multiplies the frozen matrix m by the column vector (r, g, b)
// using gonum's linear algebra rather than a hand-unrolled multiply, and
// returns the transformed triplet. Non-finite inputs yield (0,0,0).
func (m Matrix3) Apply(r, g, b float64) (float64, float64, float64) {
	if !numerics.IsFinite(r) || !numerics.IsFinite(g) || !numerics.IsFinite(b) {
		return 0, 0, 0
	}

	var in, out mat.Dense
	in.SetRawMatrix(rawColumn(r, g, b))
	out.Mul(m.dense(), &in)

	or, og, ob := out.At(0, 0), out.At(1, 0), out.At(2, 0)
	if !numerics.IsFinite(or) || !numerics.IsFinite(og) || !numerics.IsFinite(ob) {
		return 0, 0, 0
	}
	return or, og, ob
}

func rawColumn(r, g, b float64) mat.RawMatrix {
	return mat.RawMatrix{Rows: 3, Cols: 1, Stride: 1, Data: []float64{r, g, b}}
}

// matrixFor returns the frozen matrix for a from->to gamut pair, or
// false if none is wired. The "working domain" is always BT.2020+PQ, so in
// practice one side of every pair used by the pipeline is GamutBT2020.
func matrixFor(from, to Gamut) (Matrix3, bool) {
	switch {
	case from == to:
		return Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}, true
	case from == GamutBT2020 && to == GamutP3D65:
		return bt2020ToP3D65, true
	case from == GamutP3D65 && to == GamutBT2020:
		return p3D65ToBT2020, true
	case from == GamutBT2020 && to == GamutACEScg:
		return bt2020ToACEScg, true
	case from == GamutACEScg && to == GamutBT2020:
		return acesCgToBT2020, true
	case from == GamutBT2020 && to == GamutXYZ:
		return bt2020ToXYZ, true
	case from == GamutXYZ && to == GamutBT2020:
		return xyzToBT2020, true
	case from == GamutP3D65 && to == GamutXYZ:
		return p3D65ToXYZ, true
	case from == GamutXYZ && to == GamutP3D65:
		return xyzToP3D65, true
	default:
		return Matrix3{}, false
	}
}

// Transform converts (r,g,b) from one working gamut to another using the
// frozen matrix for that pair. It reports false if no frozen matrix exists
// for the requested pair (e.g. ACEScg<->P3D65 is not wired; route through
// BT2020, the working domain, instead).
func Transform(from, to Gamut, r, g, b float64) (float64, float64, float64, bool) {
	m, ok := matrixFor(from, to)
	if !ok {
		return 0, 0, 0, false
	}
	or, og, ob := m.Apply(r, g, b)
	return or, og, ob, true
}
