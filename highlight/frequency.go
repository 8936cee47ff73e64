package highlight

import "github.com/mjibson/go-dsp/fft"

// gridSamples is the fixed 4x4 sample count spec.md §4.4 requires for the
// flicker check.
const gridSamples = 16

// bandLowHz, bandHighHz bound the flicker frequency band the check guards
// against, and bandEnergyRatioMax is the fraction of total spectrum energy
// that band may hold before the check fails.
const (
	bandLowHz          = 1.0
	bandHighHz         = 6.0
	bandEnergyRatioMax = 0.20
)

// SampleGridPoints returns the pixel coordinates of the fixed 4x4 grid,
// offset by width/8 and height/8, used to sample luminance for the
// flicker check.
func SampleGridPoints(width, height int) [][2]int {
	pts := make([][2]int, 0, gridSamples)
	ox, oy := width/8, height/8
	stepX := width / 4
	stepY := height / 4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			x := (ox + col*stepX) % width
			y := (oy + row*stepY) % height
			pts = append(pts, [2]int{x, y})
		}
	}
	return pts
}

// FrequencyResult reports the flicker check's outcome.
type FrequencyResult struct {
	Pass       bool
	WorstRatio float64 // highest band-energy/total-energy ratio across sample points
}

// CheckFlicker computes, for each of the 16 fixed sample points' luminance
// time series, a DFT via fft.FFTReal and verifies that energy in the
// bandLowHz-bandHighHz band never exceeds bandEnergyRatioMax of the total
// spectrum energy, per spec.md §4.4. series is indexed [sample][frameIdx];
// fps is the capture frame rate. At least 3 frames are required; shorter
// sequences trivially pass (nothing to analyze yet).
func CheckFlicker(series [][]float64, fps float64) FrequencyResult {
	if len(series) == 0 || len(series[0]) < 3 || fps <= 0 {
		return FrequencyResult{Pass: true}
	}

	n := len(series[0])
	freqStep := fps / float64(n)

	worst := 0.0
	for _, s := range series {
		spectrum := fft.FFTReal(s)
		var total, band float64
		for k, c := range spectrum {
			mag2 := real(c)*real(c) + imag(c)*imag(c)
			total += mag2
			freq := float64(k) * freqStep
			// Mirror the upper half of the spectrum onto the same band,
			// since FFTReal returns the full two-sided transform.
			if freq > fps/2 {
				freq = fps - freq
			}
			if freq >= bandLowHz && freq <= bandHighHz {
				band += mag2
			}
		}
		if total <= 0 {
			continue
		}
		ratio := band / total
		if ratio > worst {
			worst = ratio
		}
	}

	return FrequencyResult{
		Pass:       worst <= bandEnergyRatioMax,
		WorstRatio: worst,
	}
}
