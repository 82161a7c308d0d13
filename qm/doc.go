// Package qm provides fixed-width vectors and 2x2/3x3/4x4 matrices over
// float32, float64 and int32.
//
// Vectors are generic over the primitive T and the lane array A, so a
// 3-element float32 vector is Vector[float32, [3]float32], spelled Vector3f
// through the aliases in this package. Arithmetic runs through package lane,
// which uses packed SIMD registers when the build enables them.
//
// Basic usage:
//
//	v := qm.Vec3[float32](1, 2, 3)
//	m := qm.Identity3x3f
//	w := m.MulVector(v).AddScalar(1) // {2, 3, 4}
//
//	n := qm.New2x2(1.0, 2.0, 3.0, 4.0)
//	det := n.Determinant() // -2
//	inv := n.Inverse()
//
// Nothing in this package returns errors. Constructors given a sequence of
// the wrong length return the zero value, float division by zero produces
// IEEE special values, and inverting a singular matrix is not detected.
package qm
