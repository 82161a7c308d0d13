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

package lane

// This file provides the array (scalar) implementation of every lane
// operation. Arithmetic first offers the operands to packedBinary; builds with
// packed kernels (packed_avx2.go) take over the shapes they support and the
// loop below handles everything else.

type binop int

const (
	opAdd binop = iota
	opSub
	opMul
	opDiv
)

// Broadcast creates a lane with every element set to value.
func Broadcast[T Primitive, A Array[T]](value T) A {
	var a A
	for i := 0; i < len(a); i++ {
		a[i] = value
	}
	return a
}

// Load creates a lane from src. The length of src must equal the lane width;
// otherwise Load returns the zero lane and false.
func Load[T Primitive, A Array[T]](src []T) (A, bool) {
	var a A
	if len(src) != len(a) {
		return a, false
	}
	for i := 0; i < len(a); i++ {
		a[i] = src[i]
	}
	return a, true
}

// Store writes the lane to dst and returns the number of elements written,
// which is min(len(dst), width).
func Store[T Primitive, A Array[T]](a A, dst []T) int {
	n := min(len(dst), len(a))
	for i := 0; i < n; i++ {
		dst[i] = a[i]
	}
	return n
}

// Add performs element-wise addition.
func Add[T Primitive, A Array[T]](a, b A) A {
	var r A
	if packedBinary(opAdd, &r, &a, &b) {
		return r
	}
	for i := 0; i < len(r); i++ {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Primitive, A Array[T]](a, b A) A {
	var r A
	if packedBinary(opSub, &r, &a, &b) {
		return r
	}
	for i := 0; i < len(r); i++ {
		r[i] = a[i] - b[i]
	}
	return r
}

// Mul performs element-wise multiplication. Integer lanes multiply as signed
// 32-bit values and keep the low 32 bits of the product.
func Mul[T Primitive, A Array[T]](a, b A) A {
	var r A
	if packedBinary(opMul, &r, &a, &b) {
		return r
	}
	for i := 0; i < len(r); i++ {
		r[i] = a[i] * b[i]
	}
	return r
}

// Div performs element-wise division.
// Floating-point division by zero produces ±Inf or NaN per IEEE 754.
// Integer division by zero panics.
func Div[T Primitive, A Array[T]](a, b A) A {
	var r A
	if packedBinary(opDiv, &r, &a, &b) {
		return r
	}
	for i := 0; i < len(r); i++ {
		r[i] = a[i] / b[i]
	}
	return r
}

// Neg negates every element.
func Neg[T Primitive, A Array[T]](a A) A {
	var r A
	for i := 0; i < len(r); i++ {
		r[i] = -a[i]
	}
	return r
}

// Sum returns the sum of all elements, accumulated from lane 0 upwards.
func Sum[T Primitive, A Array[T]](a A) T {
	var s T
	for i := 0; i < len(a); i++ {
		s += a[i]
	}
	return s
}

// Dot returns the sum of the element-wise products of a and b.
func Dot[T Primitive, A Array[T]](a, b A) T {
	return Sum[T](Mul[T](a, b))
}

func compare[T Primitive, A Array[T]](a, b A, rel func(x, y T) bool) Mask {
	m := Mask{n: uint8(len(a))}
	for i := 0; i < len(a); i++ {
		if rel(a[i], b[i]) {
			m.set(i)
		}
	}
	return m
}

// Equal returns a mask of the lanes where a == b.
func Equal[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a mask of the lanes where a != b.
func NotEqual[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x != y })
}

// Less returns a mask of the lanes where a < b.
func Less[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a mask of the lanes where a <= b.
func LessEqual[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x <= y })
}

// Greater returns a mask of the lanes where a > b.
func Greater[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a mask of the lanes where a >= b.
func GreaterEqual[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x >= y })
}

// And returns a mask of the lanes where both a and b are nonzero.
func And[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x != 0 && y != 0 })
}

// Or returns a mask of the lanes where a or b is nonzero.
func Or[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return x != 0 || y != 0 })
}

// Xor returns a mask of the lanes where exactly one of a and b is nonzero.
func Xor[T Primitive, A Array[T]](a, b A) Mask {
	return compare[T](a, b, func(x, y T) bool { return (x != 0) != (y != 0) })
}

// Not returns a mask of the lanes where a is zero.
func Not[T Primitive, A Array[T]](a A) Mask {
	m := Mask{n: uint8(len(a))}
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			m.set(i)
		}
	}
	return m
}
