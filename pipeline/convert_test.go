package pipeline

import (
	"testing"

	"github.com/lumacurve/tonecore/colorspace"
	"github.com/lumacurve/tonecore/frame"
)

func TestGamutForMapsAllTags(t *testing.T) {
	cases := map[frame.ColorSpace]colorspace.Gamut{
		frame.BT2020PQ: colorspace.GamutBT2020,
		frame.P3D65:    colorspace.GamutP3D65,
		frame.ACEScg:   colorspace.GamutACEScg,
		frame.Rec709:   colorspace.GamutP3D65,
	}
	for space, want := range cases {
		if got := gamutFor(space); got != want {
			t.Errorf("gamutFor(%v) = %v, want %v", space, got, want)
		}
	}
}

func TestToWorkingDomainPassthroughForBT2020PQ(t *testing.T) {
	p := frame.Pixel{R: 0.4, G: 0.3, B: 0.2}
	r, g, b := toWorkingDomain(p, frame.BT2020PQ)
	if r != float64(p.R) || g != float64(p.G) || b != float64(p.B) {
		t.Errorf("toWorkingDomain passthrough = (%v,%v,%v), want unchanged", r, g, b)
	}
}

func TestFromWorkingDomainPassthroughForBT2020PQ(t *testing.T) {
	r, g, b, ok := fromWorkingDomain(0.4, 0.3, 0.2, frame.BT2020PQ)
	if !ok || r != 0.4 || g != 0.3 || b != 0.2 {
		t.Errorf("fromWorkingDomain passthrough = (%v,%v,%v,%v), want unchanged", r, g, b, ok)
	}
}

func TestToWorkingDomainRoundTripsThroughP3(t *testing.T) {
	r, g, b := toWorkingDomain(frame.Pixel{R: 0.5, G: 0.5, B: 0.5}, frame.P3D65)
	back, ok := fromWorkingDomainRGB(r, g, b, frame.P3D65)
	if !ok {
		t.Fatal("fromWorkingDomain reported not ok")
	}
	if diff := back.R - 0.5; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("round trip R = %v, want ~0.5", back.R)
	}
}

func fromWorkingDomainRGB(r, g, b float64, space frame.ColorSpace) (frame.Pixel, bool) {
	or, og, ob, ok := fromWorkingDomain(r, g, b, space)
	return frame.Pixel{R: float32(or), G: float32(og), B: float32(ob)}, ok
}
