// Package pipeline implements the per-frame orchestrator (C6): it walks
// every pixel through the working-domain conversion, tone curve,
// highlight detail, saturation, and gamut stages, and maintains the
// running statistics and first-frame curve self-check spec.md §4.6
// describes.
package pipeline

import (
	"time"

	"github.com/lumacurve/tonecore/colorspace"
	"github.com/lumacurve/tonecore/config"
	"github.com/lumacurve/tonecore/faults"
	"github.com/lumacurve/tonecore/frame"
	"github.com/lumacurve/tonecore/highlight"
	"github.com/lumacurve/tonecore/numerics"
	"github.com/lumacurve/tonecore/saturation"
	"github.com/lumacurve/tonecore/tonecurve"
)

// Pipeline owns an immutable, validated parameter bundle and its
// compiled tone curve (cloned once at construction, per spec.md §5's
// concurrency model: the bundle and curve are never mutated after
// initialization) plus the small amount of cross-frame state the
// highlight-detail and statistics stages require.
type Pipeline struct {
	bundle config.Bundle
	curve  tonecurve.Evaluator
	handler *faults.Handler

	motion *highlight.Motion

	deterministic bool
	dciCompliance bool

	firstFrameChecked bool

	samples []float64 // not written by ProcessFrame; statistics are computed from each frame's own samples
	stats   Statistics
}

// New constructs a Pipeline from a validated parameter bundle. Callers
// should run config.ValidateAndCorrect before calling New; New itself
// re-validates defensively and clamps if necessary, raising RANGE_PIVOT
// (pivot) or RANGE_KNEE (other fields) through handler for any field it
// had to correct, or NAN_INF when the field was non-finite.
func New(bundle config.Bundle, handler *faults.Handler) *Pipeline {
	corrected, corrections, changed := config.ValidateAndCorrect(bundle)
	if changed && handler != nil {
		for _, c := range corrections {
			code := faults.RANGE_KNEE
			if c.Field == "pivot_pq" {
				code = faults.RANGE_PIVOT
			}
			if c.NonFinite {
				code = faults.NAN_INF
			}
			handler.Raise(code, c.Field, c.Now, "parameter out of range, clamped", "clamped")
		}
	}

	return &Pipeline{
		bundle:  corrected,
		curve:   compileCurve(corrected),
		handler: handler,
		motion:  highlight.NewMotion(),
	}
}

func compileCurve(b config.Bundle) tonecurve.Evaluator {
	if b.Curve == config.CurveRLOG {
		return tonecurve.RLOG{A: b.RlogA, B: b.RlogB, C: b.RlogC, T: b.RlogT, YKnee: b.YKnee, Alpha: b.Alpha, Toe: b.Toe}
	}
	return tonecurve.PPR{Pivot: b.PivotPQ, GammaS: b.GammaS, GammaH: b.GammaH, ShoulderH: b.ShoulderH, YKnee: b.YKnee, Alpha: b.Alpha, Toe: b.Toe}
}

// SetMode updates the deterministic/DCI-compliance flags without
// rebuilding the pipeline, mirroring the set_mode entry in the External
// API (spec.md §6). Neither flag affects the frozen parameter bundle or
// compiled curve.
func (p *Pipeline) SetMode(deterministic, dciCompliance bool) {
	p.deterministic = deterministic
	p.dciCompliance = dciCompliance
}

// Statistics returns a copy of the current running statistics snapshot.
func (p *Pipeline) Statistics() Statistics {
	return p.stats
}

// raise routes an error through the handler if one is installed,
// returning the resulting fallback tier. Without a handler the code's
// own tier is still returned, so fallback behavior does not depend on
// whether a handler is installed.
func (p *Pipeline) raise(code faults.Code, field string, value float64, message, action string) faults.Tier {
	if p.handler == nil {
		return code.Tier()
	}
	return p.handler.Raise(code, field, value, message, action)
}

// ProcessFrame walks input through the full C6 sequence and returns a
// new frame tagged outSpace. prev, if non-nil, is the previous frame in
// the same working domain used for motion protection; pass nil for the
// first frame of a sequence or whenever frames are not temporally
// contiguous.
func (p *Pipeline) ProcessFrame(input *frame.Frame, prev *frame.Frame, outSpace frame.ColorSpace) (*frame.Frame, error) {
	width, height := input.Width, input.Height
	out := frame.New(width, height, outSpace)

	wr := make([]float64, width*height)
	wg := make([]float64, width*height)
	wb := make([]float64, width*height)

	var prevLum []float64
	if prev != nil && prev.Width == width && prev.Height == height {
		prevLum = make([]float64, width*height)
	}

	tierHit := faults.TierNone

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			px := input.At(x, y)

			r, g, b := toWorkingDomain(px, input.Space)
			if !numerics.IsFinite(r) || !numerics.IsFinite(g) || !numerics.IsFinite(b) {
				tierHit = maxTier(tierHit, p.raise(faults.NAN_INF, "", 0, "non-finite pixel in working-domain conversion", "zeroed"))
				r, g, b = 0, 0, 0
			}

			m := numerics.MaxRGB(r, g, b)
			if m > 0 {
				mp := p.curve.Apply(m)
				scale := numerics.SafeDiv(mp, m, 0)
				r = numerics.Saturate(r * scale)
				g = numerics.Saturate(g * scale)
				b = numerics.Saturate(b * scale)
			}

			wr[i], wg[i], wb[i] = r, g, b
			if prevLum != nil {
				pr, pg, pb := toWorkingDomain(prev.At(x, y), prev.Space)
				pm := numerics.MaxRGB(pr, pg, pb)
				if pm > 0 {
					pm = numerics.Saturate(p.curve.Apply(pm))
				} else {
					pm = 0
				}
				prevLum[i] = pm
			}
		}
	}

	if p.bundle.HighlightDetail > 0 {
		intensity := p.bundle.HighlightDetail
		if prevLum != nil {
			curLum := make([]float64, width*height)
			for i := range curLum {
				curLum[i] = numerics.MaxRGB(wr[i], wg[i], wb[i])
			}
			energy := highlight.Energy(curLum, prevLum, p.bundle.PivotPQ)
			intensity = p.motion.Adjust(intensity, energy)
		}

		rp := highlight.Plane{Width: width, Height: height, Data: wr}
		gp := highlight.Plane{Width: width, Height: height, Data: wg}
		bp := highlight.Plane{Width: width, Height: height, Data: wb}
		outR, outG, outB := highlight.Usm(rp, gp, bp, intensity, p.bundle.PivotPQ)
		wr, wg, wb = outR.Data, outG.Data, outB.Data
	}

	satParams := saturation.Params{
		SatBase:       p.bundle.SatBase,
		SatHighlight:  p.bundle.SatHi,
		Pivot:         p.bundle.PivotPQ,
		DCICompliance: p.dciCompliance || p.bundle.DCICompliance,
	}

	targetGamut := gamutFor(outSpace)
	box := saturation.StandardBox
	acesCg := targetGamut == colorspace.GamutACEScg
	if acesCg {
		box = saturation.ACEScgBox
	}

	samples := make([]float64, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			lum := numerics.MaxRGB(wr[i], wg[i], wb[i])
			c := colorspace.RGB{R: wr[i], G: wg[i], B: wb[i]}
			c = saturation.Apply(c, lum, satParams)

			res := saturation.Process(c, acesCg, satParams.DCICompliance, box)
			if res.WasOutOfGamut && !res.Converged {
				tierHit = maxTier(tierHit, p.raise(faults.GAMUT_OOG, "", 0, "perceptual clamp did not converge", "coordinate-clamped"))
			}
			c = res.Color

			or, og, ob, ok := fromWorkingDomain(c.R, c.G, c.B, outSpace)
			if !ok {
				or, og, ob = 0, 0, 0
			}
			or, og, ob = numerics.Saturate(or), numerics.Saturate(og), numerics.Saturate(ob)

			out.Set(x, y, frame.Pixel{R: float32(or), G: float32(og), B: float32(ob)})
			samples = append(samples, numerics.MaxRGB(or, og, ob))
		}
	}

	if tierHit == faults.TierHardFallback {
		p.applyHardFallback(input, out, outSpace)
	}

	p.updateStatistics(samples)

	if !p.firstFrameChecked {
		p.firstFrameChecked = true
		p.runCurveSelfCheck()
	}

	return out, nil
}

func maxTier(a, b faults.Tier) faults.Tier {
	if b > a {
		return b
	}
	return a
}

// applyHardFallback implements spec.md §4.8's tier 3: the frame's
// luminance map is replaced by identity y=x, saturation and gamut stages
// are bypassed, and only the working-domain round trip still applies.
func (p *Pipeline) applyHardFallback(input, out *frame.Frame, outSpace frame.ColorSpace) {
	width, height := input.Width, input.Height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := input.At(x, y)
			r, g, b := toWorkingDomain(px, input.Space)
			or, og, ob, ok := fromWorkingDomain(r, g, b, outSpace)
			if !ok {
				or, og, ob = 0, 0, 0
			}
			out.Set(x, y, frame.Pixel{
				R: float32(numerics.Saturate(or)),
				G: float32(numerics.Saturate(og)),
				B: float32(numerics.Saturate(ob)),
			})
		}
	}
}

// updateStatistics replaces the trimmed statistics with those of this
// frame's MaxRGB samples and increments the cumulative frame counter, per
// spec.md §4.6 step 8.
func (p *Pipeline) updateStatistics(samples []float64) {
	min, mean, max, variance := trimmedStats(samples)
	p.stats.TrimmedMin = min
	p.stats.TrimmedMean = mean
	p.stats.TrimmedMax = max
	p.stats.Variance = variance
	p.stats.FrameCount++
	p.stats.LastUpdate = time.Now()
}

// runCurveSelfCheck runs the monotonicity and C1 validators against the
// compiled curve once, on the first frame after (re)initialization, per
// spec.md §4.6 step 9 and §2's "C3 additionally runs a self-validation
// the first frame".
func (p *Pipeline) runCurveSelfCheck() {
	var center, radius float64
	switch c := p.curve.(type) {
	case tonecurve.PPR:
		center, radius = c.FocusWindow()
	case tonecurve.RLOG:
		center, radius = c.FocusWindow()
	default:
		return
	}

	mono := tonecurve.CheckMonotonicity(p.curve, center, radius)
	c1 := tonecurve.CheckC1(p.curve, center, radius)

	p.stats.Monotonic = mono.Pass
	p.stats.C1Continuous = c1.Pass
	p.stats.MaxDerivativeGap = c1.MaxDerivativeGap

	if !mono.Pass || !c1.Pass {
		p.raise(faults.RANGE_KNEE, "", 0, "curve self-check failed monotonicity/continuity", "tier1 fallback")
	}
}
