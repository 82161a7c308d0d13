// Package lane provides the fixed-width lane storage and elementwise operators
// underneath the qm vector and matrix types.
//
// A lane is a plain Go array ([2]T, [3]T, [4]T or [8]T). Every operator has a
// scalar loop over the array. Builds that enable packed registers route the
// arithmetic for supported shapes through archsimd kernels instead:
//
//	GOAMD64=v3 GOEXPERIMENT=simd go build ./...   // 128/256-bit kernels
//	GOAMD64=v4 GOEXPERIMENT=simd go build ./...   // adds 512-bit float64x8
//	go build -tags purego ./...                   // arrays only
//
// The choice is made by build constraints, so a given binary always uses the
// same representation for a given (primitive, width) pair. Results are the same
// on every backend; the packed path is a performance detail.
//
// Basic usage:
//
//	a := lane.Broadcast[float32, [4]float32](2)
//	b := [4]float32{1, 2, 3, 4}
//	sum := lane.Add[float32](a, b)
//	ok := lane.Less[float32](b, sum).AllTrue()
package lane

// Floats is a constraint for floating-point primitives.
type Floats interface {
	~float32 | ~float64
}

// Primitive is a constraint for the element types a lane can hold.
type Primitive interface {
	~float32 | ~float64 | ~int32
}

// Array is a constraint for the supported lane shapes of element type T.
type Array[T Primitive] interface {
	[2]T | [3]T | [4]T | [8]T
}
