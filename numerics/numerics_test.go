package numerics

import (
	"math"
	"testing"
)

func TestSaturate(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below zero", -0.5, 0},
		{"in range", 0.5, 0.5},
		{"above one", 1.5, 1},
		{"nan", math.NaN(), 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Saturate(test.in); got != test.want {
				t.Errorf("Saturate(%v) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}

func TestSafePow(t *testing.T) {
	tests := []struct {
		name         string
		b, e, fb     float64
		want         float64
	}{
		{"normal", 2, 3, -1, 8},
		{"nan base", math.NaN(), 2, -1, -1},
		{"inf exponent", 2, math.Inf(1), -1, -1},
		{"negative base non-integer exponent", -2, 0.5, -1, -1},
		{"negative base integer exponent", -2, 2, -1, 4},
		{"zero base non-positive exponent", 0, -1, -1, -1},
		{"zero base positive exponent", 0, 2, -1, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := SafePow(test.b, test.e, test.fb); got != test.want {
				t.Errorf("SafePow(%v, %v, %v) = %v, want %v", test.b, test.e, test.fb, got, test.want)
			}
		})
	}
}

func TestSafeLog(t *testing.T) {
	if got := SafeLog(0, -1); got != -1 {
		t.Errorf("SafeLog(0, -1) = %v, want -1", got)
	}
	if got := SafeLog(-5, -1); got != -1 {
		t.Errorf("SafeLog(-5, -1) = %v, want -1", got)
	}
	if got := SafeLog(math.E, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("SafeLog(e, 0) = %v, want ~1", got)
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(1, 0, 99); got != 99 {
		t.Errorf("SafeDiv(1, 0, 99) = %v, want 99", got)
	}
	if got := SafeDiv(1, 1e-9, 99); got != 99 {
		t.Errorf("SafeDiv near-zero divisor = %v, want 99", got)
	}
	if got := SafeDiv(10, 2, 99); got != 5 {
		t.Errorf("SafeDiv(10, 2, 99) = %v, want 5", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(0, 1, -1); got != 0 {
		t.Errorf("Smoothstep below window = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 2); got != 1 {
		t.Errorf("Smoothstep above window = %v, want 1", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Errorf("Smoothstep midpoint = %v, want 0.5", got)
	}
}

func TestMix(t *testing.T) {
	if got := Mix(0, 10, 0.5); got != 5 {
		t.Errorf("Mix(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Mix(0, 10, 2); got != 10 {
		t.Errorf("Mix clamps t above 1: got %v, want 10", got)
	}
	if got := Mix(0, 10, -2); got != 0 {
		t.Errorf("Mix clamps t below 0: got %v, want 0", got)
	}
}

func TestCbrtSigned(t *testing.T) {
	if got := CbrtSigned(27); math.Abs(got-3) > 1e-9 {
		t.Errorf("CbrtSigned(27) = %v, want 3", got)
	}
	if got := CbrtSigned(-27); math.Abs(got+3) > 1e-9 {
		t.Errorf("CbrtSigned(-27) = %v, want -3", got)
	}
	if got := CbrtSigned(0); got != 0 {
		t.Errorf("CbrtSigned(0) = %v, want 0", got)
	}
}

func TestMaxRGB(t *testing.T) {
	if got := MaxRGB(0.1, 0.9, 0.3); got != 0.9 {
		t.Errorf("MaxRGB = %v, want 0.9", got)
	}
}
