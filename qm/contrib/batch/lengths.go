// Copyright 2026 go-quickmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package batch

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/ajroetker/go-quickmath/qm"
)

func checkLen(n int, s ...[]float64) {
	for _, x := range s {
		if len(x) != n {
			panic("batch: slice length mismatch")
		}
	}
}

// Lengths2 sets dst[i] to the length of the point (xs[i], ys[i]).
func Lengths2(dst, xs, ys []float64) {
	checkLen(len(dst), xs, ys)
	vecmath.Magnitude(dst, xs, ys)
}

// LengthsSquared2 sets dst[i] to xs[i]² + ys[i]².
func LengthsSquared2(dst, xs, ys []float64) {
	checkLen(len(dst), xs, ys)
	vecmath.Power(dst, xs, ys)
}

// MulComponents sets dst[i] = a[i] * b[i].
func MulComponents(dst, a, b []float64) {
	checkLen(len(dst), a, b)
	vecmath.MulBlock(dst, a, b)
}

// ScaleComponents sets dst[i] = src[i] * s.
func ScaleComponents(dst, src []float64, s float64) {
	checkLen(len(dst), src)
	vecmath.ScaleBlock(dst, src, s)
}

// TransformBlock2 is Transform2 over whole columns using the block kernels.
// Every column must have the same length and dst must not alias src.
func TransformBlock2(m qm.Matrix2x2d, dst, src [2][]float64) {
	transformBlock(m.At, dst[:], src[:])
}

// TransformBlock3 is Transform3 over whole columns using the block kernels.
// Every column must have the same length and dst must not alias src.
func TransformBlock3(m qm.Matrix3x3d, dst, src [3][]float64) {
	transformBlock(m.At, dst[:], src[:])
}

// TransformBlock4 is Transform4 over whole columns using the block kernels.
// Every column must have the same length and dst must not alias src.
func TransformBlock4(m qm.Matrix4x4d, dst, src [4][]float64) {
	transformBlock(m.At, dst[:], src[:])
}

// transformBlock computes dst[r] = Σ_c at(r, c) * src[c] one column at a time.
func transformBlock(at func(r, c int) float64, dst, src [][]float64) {
	n := len(src[0])
	checkLen(n, src...)
	checkLen(n, dst...)
	if n == 0 {
		return
	}
	tmp := make([]float64, n)
	for r, d := range dst {
		vecmath.ScaleBlock(d, src[0], at(r, 0))
		for c := 1; c < len(src); c++ {
			vecmath.ScaleBlock(tmp, src[c], at(r, c))
			vecmath.AddBlockInPlace(d, tmp)
		}
	}
}
