package qm

import "github.com/ajroetker/go-quickmath/lane"

// Width aliases.
type (
	Vector2[T lane.Primitive] = Vector[T, [2]T]
	Vector3[T lane.Primitive] = Vector[T, [3]T]
	Vector4[T lane.Primitive] = Vector[T, [4]T]
	Vector8[T lane.Primitive] = Vector[T, [8]T]
)

// float32 vectors and matrices.
type (
	Vector2f   = Vector2[float32]
	Vector3f   = Vector3[float32]
	Vector4f   = Vector4[float32]
	Vector8f   = Vector8[float32]
	Matrix2x2f = Matrix2x2[float32]
	Matrix3x3f = Matrix3x3[float32]
	Matrix4x4f = Matrix4x4[float32]
)

// float64 vectors and matrices.
type (
	Vector2d   = Vector2[float64]
	Vector3d   = Vector3[float64]
	Vector4d   = Vector4[float64]
	Vector8d   = Vector8[float64]
	Matrix2x2d = Matrix2x2[float64]
	Matrix3x3d = Matrix3x3[float64]
	Matrix4x4d = Matrix4x4[float64]
)

// int32 vectors and matrices.
type (
	Vector2i   = Vector2[int32]
	Vector3i   = Vector3[int32]
	Vector4i   = Vector4[int32]
	Vector8i   = Vector8[int32]
	Matrix2x2i = Matrix2x2[int32]
	Matrix3x3i = Matrix3x3[int32]
	Matrix4x4i = Matrix4x4[int32]
)

// Identity matrices for the named aliases. They are set once during package
// initialization and must be treated as read-only; copies are independent
// values.
var (
	Identity2x2f = Identity2x2[float32]()
	Identity3x3f = Identity3x3[float32]()
	Identity4x4f = Identity4x4[float32]()

	Identity2x2d = Identity2x2[float64]()
	Identity3x3d = Identity3x3[float64]()
	Identity4x4d = Identity4x4[float64]()

	Identity2x2i = Identity2x2[int32]()
	Identity3x3i = Identity3x3[int32]()
	Identity4x4i = Identity4x4[int32]()
)
