package colorspace

import "github.com/lumacurve/tonecore/numerics"

// Lab is a color in the OKLab perceptually uniform space. L is lightness;
// a and b are the green-red and blue-yellow chroma axes. Modifying a/b
// changes chroma without moving perceived lightness.
type Lab struct {
	L, A, B float64
}

// RGB is a linear-light color triplet in the pipeline's working gamut.
type RGB struct {
	R, G, B float64
}

// linearRGBToLMS and lmsPrimeToOKLab are Björn Ottosson's published OKLab
// constants, applied to linear-light RGB.
var linearRGBToLMS = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

var lmsPrimeToOKLab = [3][3]float64{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

var oklabToLMSPrime = [3][3]float64{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

var lmsToLinearRGB = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.0215836149, 2.3058756930, -0.0415175482},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

func mulVec3(m [3][3]float64, x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// RGBToOKLab converts a linear-light RGB triplet to OKLab. Non-finite
// inputs yield (0,0,0).
func RGBToOKLab(c RGB) Lab {
	if !numerics.IsFinite(c.R) || !numerics.IsFinite(c.G) || !numerics.IsFinite(c.B) {
		return Lab{}
	}

	l, m, s := mulVec3(linearRGBToLMS, c.R, c.G, c.B)
	lp, mp, sp := numerics.CbrtSigned(l), numerics.CbrtSigned(m), numerics.CbrtSigned(s)
	L, a, b := mulVec3(lmsPrimeToOKLab, lp, mp, sp)
	return Lab{L: L, A: a, B: b}
}

// OKLabToRGB converts an OKLab triplet back to linear-light RGB. Non-finite
// inputs yield (0,0,0).
func OKLabToRGB(c Lab) RGB {
	if !numerics.IsFinite(c.L) || !numerics.IsFinite(c.A) || !numerics.IsFinite(c.B) {
		return RGB{}
	}

	lp, mp, sp := mulVec3(oklabToLMSPrime, c.L, c.A, c.B)
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp
	r, g, b := mulVec3(lmsToLinearRGB, l, m, s)
	return RGB{R: r, G: g, B: b}
}
