package colorspace

import (
	"math"
	"testing"
)

func TestMatrixApplyNonFinite(t *testing.T) {
	r, g, b := bt2020ToXYZ.Apply(math.NaN(), 1, 1)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Apply with NaN input = (%v,%v,%v), want (0,0,0)", r, g, b)
	}
}

func TestMatrixApplyIdentityWhite(t *testing.T) {
	// A BT.2020 white point should map to a positive-valued XYZ triplet
	// (D65 white: X~0.950, Y=1.0, Z~1.089).
	x, y, z := bt2020ToXYZ.Apply(1, 1, 1)
	if x <= 0 || y <= 0 || z <= 0 {
		t.Errorf("white point transform produced non-positive component: (%v,%v,%v)", x, y, z)
	}
}

func TestTransformSamePairIsIdentity(t *testing.T) {
	r, g, b, ok := Transform(GamutBT2020, GamutBT2020, 0.3, 0.6, 0.9)
	if !ok {
		t.Fatal("Transform(BT2020, BT2020) reported not ok")
	}
	if r != 0.3 || g != 0.6 || b != 0.9 {
		t.Errorf("identity transform = (%v,%v,%v), want (0.3,0.6,0.9)", r, g, b)
	}
}

func TestTransformUnwiredPairFails(t *testing.T) {
	_, _, _, ok := Transform(GamutACEScg, GamutP3D65, 0.1, 0.1, 0.1)
	if ok {
		t.Error("Transform(ACEScg, P3D65) unexpectedly succeeded; no frozen matrix exists for this pair")
	}
}

func TestACEScgPlaceholderIsIdentity(t *testing.T) {
	r, g, b, ok := Transform(GamutBT2020, GamutACEScg, 0.2, 0.4, 0.6)
	if !ok {
		t.Fatal("Transform(BT2020, ACEScg) reported not ok")
	}
	if r != 0.2 || g != 0.4 || b != 0.6 {
		t.Errorf("ACEScg placeholder matrix = (%v,%v,%v), want identity passthrough (0.2,0.4,0.6)", r, g, b)
	}
}
