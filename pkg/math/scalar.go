package math

import "math"

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// InverseLerp returns where v lies between a and b, clamped to [0, 1].
// Equal or non-finite bounds yield 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	t := (v - a) / (b - a)
	if math.IsNaN(t) {
		return 0
	}
	return Clamp01(t)
}
