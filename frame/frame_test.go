package frame

import (
	"math"
	"testing"
)

func TestNewValid(t *testing.T) {
	f := New(4, 3, BT2020PQ)
	if !f.Valid() {
		t.Fatal("New frame should be valid")
	}
	if len(f.Data) != 4*3*Channels {
		t.Errorf("len(Data) = %d, want %d", len(f.Data), 4*3*Channels)
	}
}

func TestAtSet(t *testing.T) {
	f := New(2, 2, Rec709)
	p := Pixel{R: 0.1, G: 0.2, B: 0.3}
	f.Set(1, 1, p)
	if got := f.At(1, 1); got != p {
		t.Errorf("At(1,1) = %+v, want %+v", got, p)
	}
	if got := f.At(0, 0); got != (Pixel{}) {
		t.Errorf("At(0,0) = %+v, want zero value", got)
	}
}

func TestSanitizeNonFinite(t *testing.T) {
	f := New(1, 2, BT2020PQ)
	f.Set(0, 0, Pixel{R: float32(math.NaN()), G: 1, B: 1})
	f.Set(0, 1, Pixel{R: 0.5, G: 0.5, B: 0.5})

	n := f.SanitizeNonFinite()
	if n != 1 {
		t.Errorf("SanitizeNonFinite replaced %d pixels, want 1", n)
	}
	if got := f.At(0, 0); got != Black {
		t.Errorf("At(0,0) = %+v after sanitize, want Black", got)
	}
	if got := f.At(0, 1); got != (Pixel{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("unaffected pixel changed: %+v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := New(1, 1, P3D65)
	f.Set(0, 0, Pixel{R: 1, G: 1, B: 1})
	c := f.Clone()
	c.Set(0, 0, Pixel{})
	if got := f.At(0, 0); got != (Pixel{R: 1, G: 1, B: 1}) {
		t.Errorf("original mutated by clone: %+v", got)
	}
}
