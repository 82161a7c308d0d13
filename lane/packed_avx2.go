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

//go:build amd64 && amd64.v3 && goexperiment.simd && !purego

package lane

import "simd/archsimd"

// This file maps lane shapes onto archsimd register types:
//
//	[3]float32, [4]float32 -> Float32x4 (width 3 is padded)
//	[8]float32             -> Float32x8
//	[2]float64             -> Float64x2
//	[3]float64, [4]float64 -> Float64x4 (width 3 is padded)
//	[8]float64             -> see packed_f64x8_*.go
//	[3]int32, [4]int32     -> Int32x4 (add/sub)
//	[8]int32               -> Int32x8 (add/sub)
//
// [2]float32 and [2]int32 have no 64-bit register type and stay arrays.
// Integer multiply and divide stay on the array loop so that every build
// multiplies int32 lanes with plain signed semantics.

func packedShape(p any) bool {
	switch p.(type) {
	case *[3]float32, *[4]float32, *[8]float32,
		*[2]float64, *[3]float64, *[4]float64, *[8]float64,
		*[3]int32, *[4]int32, *[8]int32:
		return true
	}
	return false
}

func packedBinary(op binop, dst, a, b any) bool {
	switch d := dst.(type) {
	case *[4]float32:
		x, y := a.(*[4]float32), b.(*[4]float32)
		f32x4(op, archsimd.LoadFloat32x4Slice(x[:]), archsimd.LoadFloat32x4Slice(y[:])).StoreSlice(d[:])
	case *[3]float32:
		var x, y, r [4]float32
		copy(x[:], a.(*[3]float32)[:])
		copy(y[:], b.(*[3]float32)[:])
		f32x4(op, archsimd.LoadFloat32x4Slice(x[:]), archsimd.LoadFloat32x4Slice(y[:])).StoreSlice(r[:])
		copy(d[:], r[:3])
	case *[8]float32:
		x, y := a.(*[8]float32), b.(*[8]float32)
		f32x8(op, archsimd.LoadFloat32x8Slice(x[:]), archsimd.LoadFloat32x8Slice(y[:])).StoreSlice(d[:])
	case *[2]float64:
		x, y := a.(*[2]float64), b.(*[2]float64)
		f64x2(op, archsimd.LoadFloat64x2Slice(x[:]), archsimd.LoadFloat64x2Slice(y[:])).StoreSlice(d[:])
	case *[4]float64:
		x, y := a.(*[4]float64), b.(*[4]float64)
		f64x4(op, archsimd.LoadFloat64x4Slice(x[:]), archsimd.LoadFloat64x4Slice(y[:])).StoreSlice(d[:])
	case *[3]float64:
		var x, y, r [4]float64
		copy(x[:], a.(*[3]float64)[:])
		copy(y[:], b.(*[3]float64)[:])
		f64x4(op, archsimd.LoadFloat64x4Slice(x[:]), archsimd.LoadFloat64x4Slice(y[:])).StoreSlice(r[:])
		copy(d[:], r[:3])
	case *[8]float64:
		f64x8(op, d, a.(*[8]float64), b.(*[8]float64))
	case *[4]int32:
		if op != opAdd && op != opSub {
			return false
		}
		x, y := a.(*[4]int32), b.(*[4]int32)
		i32x4(op, archsimd.LoadInt32x4Slice(x[:]), archsimd.LoadInt32x4Slice(y[:])).StoreSlice(d[:])
	case *[3]int32:
		if op != opAdd && op != opSub {
			return false
		}
		var x, y, r [4]int32
		copy(x[:], a.(*[3]int32)[:])
		copy(y[:], b.(*[3]int32)[:])
		i32x4(op, archsimd.LoadInt32x4Slice(x[:]), archsimd.LoadInt32x4Slice(y[:])).StoreSlice(r[:])
		copy(d[:], r[:3])
	case *[8]int32:
		if op != opAdd && op != opSub {
			return false
		}
		x, y := a.(*[8]int32), b.(*[8]int32)
		i32x8(op, archsimd.LoadInt32x8Slice(x[:]), archsimd.LoadInt32x8Slice(y[:])).StoreSlice(d[:])
	default:
		return false
	}
	return true
}

func f32x4(op binop, x, y archsimd.Float32x4) archsimd.Float32x4 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func f32x8(op binop, x, y archsimd.Float32x8) archsimd.Float32x8 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func f64x2(op binop, x, y archsimd.Float64x2) archsimd.Float64x2 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func f64x4(op binop, x, y archsimd.Float64x4) archsimd.Float64x4 {
	switch op {
	case opAdd:
		return x.Add(y)
	case opSub:
		return x.Sub(y)
	case opMul:
		return x.Mul(y)
	default:
		return x.Div(y)
	}
}

func i32x4(op binop, x, y archsimd.Int32x4) archsimd.Int32x4 {
	if op == opSub {
		return x.Sub(y)
	}
	return x.Add(y)
}

func i32x8(op binop, x, y archsimd.Int32x8) archsimd.Int32x8 {
	if op == opSub {
		return x.Sub(y)
	}
	return x.Add(y)
}
