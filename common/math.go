package common

import "math"

// Epsilon is the magnitude below which inertial accumulators are considered settled.
const Epsilon float32 = 0.001

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v clamped to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Decay scales an inertial accumulator by the inertia factor and snaps it to zero
// once its magnitude falls below Epsilon.
//
// Parameters:
//   - v: the current accumulator value
//   - inertia: multiplier applied each frame (0 = no carry-over, 1 = never decays)
//
// Returns:
//   - float32: the decayed value
func Decay(v, inertia float32) float32 {
	v *= inertia
	if Abs(v) < Epsilon {
		return 0
	}
	return v
}

// Abs returns the absolute value of a float32.
func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
