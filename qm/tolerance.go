package qm

import (
	"math"

	"github.com/ajroetker/go-quickmath/lane"
)

// ApproxEqual reports whether a and b differ by at most tol.
//
// Two NaNs compare equal, infinities compare equal only to an infinity of
// the same sign, and exactly equal values (including ±0) always match.
func ApproxEqual[T lane.Primitive](a, b, tol T) bool {
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return math.IsNaN(fa) && math.IsNaN(fb)
	}
	if math.IsInf(fa, 0) || math.IsInf(fb, 0) {
		return false
	}
	return math.Abs(fa-fb) <= float64(tol)
}
