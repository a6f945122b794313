// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"
)

type Float interface {
	float64 | float32
}

// Lerp blends a and b, f=0 is a and f=1 is b.
func Lerp[K Float](a, b, f K) K {
	return a + (b-a)*f
}

// Frac returns the fractional part of x, always in [0,1).
func Frac(x float64) float64 {
	f := x - gmath.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
