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
	"github.com/ajroetker/go-quickmath/lane"
	"github.com/ajroetker/go-quickmath/qm"
)

func minLen[T any](cols ...[]T) int {
	if len(cols) == 0 {
		return 0
	}
	n := len(cols[0])
	for _, c := range cols[1:] {
		n = min(n, len(c))
	}
	return n
}

// Transform2 sets dst[*][i] to m × (src[0][i], src[1][i]) and returns the
// number of points written.
func Transform2[T lane.Primitive](m qm.Matrix2x2[T], dst, src [2][]T) int {
	n := minLen(dst[0], dst[1], src[0], src[1])
	for i := 0; i < n; i++ {
		v := m.MulVector(qm.Vec2(src[0][i], src[1][i]))
		dst[0][i], dst[1][i] = v.At(0), v.At(1)
	}
	return n
}

// Transform3 sets dst[*][i] to m × (src[0][i], src[1][i], src[2][i]) and
// returns the number of points written.
func Transform3[T lane.Primitive](m qm.Matrix3x3[T], dst, src [3][]T) int {
	n := minLen(dst[0], dst[1], dst[2], src[0], src[1], src[2])
	for i := 0; i < n; i++ {
		v := m.MulVector(qm.Vec3(src[0][i], src[1][i], src[2][i]))
		dst[0][i], dst[1][i], dst[2][i] = v.At(0), v.At(1), v.At(2)
	}
	return n
}

// Transform4 is Transform3 for homogeneous coordinates.
func Transform4[T lane.Primitive](m qm.Matrix4x4[T], dst, src [4][]T) int {
	n := minLen(dst[0], dst[1], dst[2], dst[3], src[0], src[1], src[2], src[3])
	for i := 0; i < n; i++ {
		v := m.MulVector(qm.Vec4(src[0][i], src[1][i], src[2][i], src[3][i]))
		a := v.Array()
		dst[0][i], dst[1][i], dst[2][i], dst[3][i] = a[0], a[1], a[2], a[3]
	}
	return n
}

// Pack gathers one vector per point from the columns. It returns nil when the
// number of columns differs from the vector width; otherwise the result has
// as many vectors as the shortest column has elements.
//
//	pts := batch.Pack[[3]float32](xs, ys, zs)
func Pack[A lane.Array[T], T lane.Primitive](cols ...[]T) []qm.Vector[T, A] {
	var a A
	if len(cols) != len(a) {
		return nil
	}
	n := minLen(cols...)
	out := make([]qm.Vector[T, A], n)
	for i := range out {
		for j := 0; j < len(a); j++ {
			a[j] = cols[j][i]
		}
		out[i] = qm.FromArray[T](a)
	}
	return out
}

// Unpack scatters vs into one freshly allocated column per component.
func Unpack[T lane.Primitive, A lane.Array[T]](vs []qm.Vector[T, A]) [][]T {
	var a A
	cols := make([][]T, len(a))
	for j := range cols {
		cols[j] = make([]T, len(vs))
	}
	for i, v := range vs {
		a = v.Array()
		for j := 0; j < len(a); j++ {
			cols[j][i] = a[j]
		}
	}
	return cols
}
