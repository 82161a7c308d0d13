package qm

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-quickmath/lane"
)

// Vector is a fixed-width tuple of N primitives, where N is the length of the
// lane array A. Vectors are values: every operation returns a new Vector
// except the *Assign, Inc/Dec and SetAt forms, which update the receiver.
//
// The zero value is the all-zero vector. Elements are stored contiguously in
// index order.
type Vector[T lane.Primitive, A lane.Array[T]] struct {
	lanes A
}

// Splat returns a vector with every element set to p.
//
//	v := qm.Splat[[3]float32](1.5) // {1.5, 1.5, 1.5}
func Splat[A lane.Array[T], T lane.Primitive](p T) Vector[T, A] {
	return Vector[T, A]{lanes: lane.Broadcast[T, A](p)}
}

// FromArray returns a vector holding the elements of a.
func FromArray[T lane.Primitive, A lane.Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{lanes: a}
}

// FromSlice returns a vector holding the elements of s. If len(s) is not the
// vector width, the result is the zero vector; the mismatch is not reported.
func FromSlice[A lane.Array[T], T lane.Primitive](s []T) Vector[T, A] {
	a, _ := lane.Load[T, A](s)
	return Vector[T, A]{lanes: a}
}

// Vec2 returns the 2-element vector {x, y}.
func Vec2[T lane.Primitive](x, y T) Vector2[T] {
	return Vector2[T]{lanes: [2]T{x, y}}
}

// Vec3 returns the 3-element vector {x, y, z}.
func Vec3[T lane.Primitive](x, y, z T) Vector3[T] {
	return Vector3[T]{lanes: [3]T{x, y, z}}
}

// Vec4 returns the 4-element vector {x, y, z, w}.
func Vec4[T lane.Primitive](x, y, z, w T) Vector4[T] {
	return Vector4[T]{lanes: [4]T{x, y, z, w}}
}

// Vec8 returns the 8-element vector {a, b, c, d, e, f, g, h}.
func Vec8[T lane.Primitive](a, b, c, d, e, f, g, h T) Vector8[T] {
	return Vector8[T]{lanes: [8]T{a, b, c, d, e, f, g, h}}
}

// Len returns the number of elements.
func (v Vector[T, A]) Len() int {
	return len(v.lanes)
}

// At returns element i. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T {
	return v.lanes[i]
}

// SetAt sets element i to x. It panics if i is out of range.
func (v *Vector[T, A]) SetAt(i int, x T) {
	v.lanes[i] = x
}

// Array returns the elements as an array.
func (v Vector[T, A]) Array() A {
	return v.lanes
}

func (v Vector[T, A]) String() string {
	return fmt.Sprint(v.lanes)
}

// Add returns v + o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	return Vector[T, A]{lanes: lane.Add[T](v.lanes, o.lanes)}
}

// Sub returns v - o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	return Vector[T, A]{lanes: lane.Sub[T](v.lanes, o.lanes)}
}

// Mul returns the element-wise product of v and o.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	return Vector[T, A]{lanes: lane.Mul[T](v.lanes, o.lanes)}
}

// Div returns the element-wise quotient of v and o. Float division by zero
// yields ±Inf or NaN; integer division by zero panics.
func (v Vector[T, A]) Div(o Vector[T, A]) Vector[T, A] {
	return Vector[T, A]{lanes: lane.Div[T](v.lanes, o.lanes)}
}

// Neg returns -v.
func (v Vector[T, A]) Neg() Vector[T, A] {
	return Vector[T, A]{lanes: lane.Neg[T](v.lanes)}
}

// AddScalar returns v + s with s broadcast to every element.
func (v Vector[T, A]) AddScalar(s T) Vector[T, A] {
	return v.Add(Splat[A](s))
}

// SubScalar returns v - s with s broadcast to every element.
func (v Vector[T, A]) SubScalar(s T) Vector[T, A] {
	return v.Sub(Splat[A](s))
}

// MulScalar returns v scaled by s.
func (v Vector[T, A]) MulScalar(s T) Vector[T, A] {
	return v.Mul(Splat[A](s))
}

// DivScalar returns v divided element-wise by s.
func (v Vector[T, A]) DivScalar(s T) Vector[T, A] {
	return v.Div(Splat[A](s))
}

// ScalarSub returns s - v with s broadcast to every element.
func ScalarSub[T lane.Primitive, A lane.Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return Splat[A](s).Sub(v)
}

// ScalarDiv returns s / v with s broadcast to every element.
func ScalarDiv[T lane.Primitive, A lane.Array[T]](s T, v Vector[T, A]) Vector[T, A] {
	return Splat[A](s).Div(v)
}

// AddAssign sets v to v + o.
func (v *Vector[T, A]) AddAssign(o Vector[T, A]) {
	*v = v.Add(o)
}

// SubAssign sets v to v - o.
func (v *Vector[T, A]) SubAssign(o Vector[T, A]) {
	*v = v.Sub(o)
}

// MulAssign sets v to the element-wise product of v and o.
func (v *Vector[T, A]) MulAssign(o Vector[T, A]) {
	*v = v.Mul(o)
}

// DivAssign sets v to the element-wise quotient of v and o.
func (v *Vector[T, A]) DivAssign(o Vector[T, A]) {
	*v = v.Div(o)
}

// AddScalarAssign adds s to every element of v.
func (v *Vector[T, A]) AddScalarAssign(s T) {
	*v = v.AddScalar(s)
}

// SubScalarAssign subtracts s from every element of v.
func (v *Vector[T, A]) SubScalarAssign(s T) {
	*v = v.SubScalar(s)
}

// MulScalarAssign scales v by s.
func (v *Vector[T, A]) MulScalarAssign(s T) {
	*v = v.MulScalar(s)
}

// DivScalarAssign divides every element of v by s.
func (v *Vector[T, A]) DivScalarAssign(s T) {
	*v = v.DivScalar(s)
}

// Inc adds one to every element and returns the new value.
func (v *Vector[T, A]) Inc() Vector[T, A] {
	v.AddScalarAssign(1)
	return *v
}

// Dec subtracts one from every element and returns the new value.
func (v *Vector[T, A]) Dec() Vector[T, A] {
	v.SubScalarAssign(1)
	return *v
}

// PostInc adds one to every element and returns the previous value.
func (v *Vector[T, A]) PostInc() Vector[T, A] {
	old := *v
	v.AddScalarAssign(1)
	return old
}

// PostDec subtracts one from every element and returns the previous value.
func (v *Vector[T, A]) PostDec() Vector[T, A] {
	old := *v
	v.SubScalarAssign(1)
	return old
}

// Comparisons hold only when the relation holds for every element.
// NotEqual is the negation of Equal: it holds when any element differs.

// Equal reports whether every element of v equals the matching element of o.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	return lane.Equal[T](v.lanes, o.lanes).AllTrue()
}

// NotEqual reports whether any element of v differs from o.
func (v Vector[T, A]) NotEqual(o Vector[T, A]) bool {
	return !v.Equal(o)
}

// Less reports whether every element of v is less than the matching element of o.
func (v Vector[T, A]) Less(o Vector[T, A]) bool {
	return lane.Less[T](v.lanes, o.lanes).AllTrue()
}

// LessEqual reports whether every element of v is <= the matching element of o.
func (v Vector[T, A]) LessEqual(o Vector[T, A]) bool {
	return lane.LessEqual[T](v.lanes, o.lanes).AllTrue()
}

// Greater reports whether every element of v is greater than the matching element of o.
func (v Vector[T, A]) Greater(o Vector[T, A]) bool {
	return lane.Greater[T](v.lanes, o.lanes).AllTrue()
}

// GreaterEqual reports whether every element of v is >= the matching element of o.
func (v Vector[T, A]) GreaterEqual(o Vector[T, A]) bool {
	return lane.GreaterEqual[T](v.lanes, o.lanes).AllTrue()
}

// EqualMask returns the per-element result of v == o.
func (v Vector[T, A]) EqualMask(o Vector[T, A]) lane.Mask {
	return lane.Equal[T](v.lanes, o.lanes)
}

// LessMask returns the per-element result of v < o.
func (v Vector[T, A]) LessMask(o Vector[T, A]) lane.Mask {
	return lane.Less[T](v.lanes, o.lanes)
}

// LessEqualMask returns the per-element result of v <= o.
func (v Vector[T, A]) LessEqualMask(o Vector[T, A]) lane.Mask {
	return lane.LessEqual[T](v.lanes, o.lanes)
}

// GreaterMask returns the per-element result of v > o.
func (v Vector[T, A]) GreaterMask(o Vector[T, A]) lane.Mask {
	return lane.Greater[T](v.lanes, o.lanes)
}

// GreaterEqualMask returns the per-element result of v >= o.
func (v Vector[T, A]) GreaterEqualMask(o Vector[T, A]) lane.Mask {
	return lane.GreaterEqual[T](v.lanes, o.lanes)
}

// And reports whether, for every element, both v and o are nonzero.
func (v Vector[T, A]) And(o Vector[T, A]) bool {
	return lane.And[T](v.lanes, o.lanes).AllTrue()
}

// Or reports whether, for every element, v or o is nonzero.
func (v Vector[T, A]) Or(o Vector[T, A]) bool {
	return lane.Or[T](v.lanes, o.lanes).AllTrue()
}

// Xor reports whether, for every element, exactly one of v and o is nonzero.
func (v Vector[T, A]) Xor(o Vector[T, A]) bool {
	return lane.Xor[T](v.lanes, o.lanes).AllTrue()
}

// AllPositive reports whether every element is greater than zero.
func (v Vector[T, A]) AllPositive() bool {
	var zero A
	return lane.Greater[T](v.lanes, zero).AllTrue()
}

// AllNonZero reports whether every element is nonzero.
func (v Vector[T, A]) AllNonZero() bool {
	return !lane.Not[T](v.lanes).AnyTrue()
}

// IsZero reports whether every element is zero.
func (v Vector[T, A]) IsZero() bool {
	return lane.Not[T](v.lanes).AllTrue()
}

// Dot returns the dot product of v and o.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	return lane.Dot[T](v.lanes, o.lanes)
}

// Sum returns the sum of the elements.
func (v Vector[T, A]) Sum() T {
	return lane.Sum[T](v.lanes)
}

// LengthSquared returns v·v.
func (v Vector[T, A]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vector[T, A]) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

// ApproxEqual reports whether every element of v is within tol of o.
// See ApproxEqual for the NaN and infinity rules.
func (v Vector[T, A]) ApproxEqual(o Vector[T, A], tol T) bool {
	for i := 0; i < len(v.lanes); i++ {
		if !ApproxEqual(v.lanes[i], o.lanes[i], tol) {
			return false
		}
	}
	return true
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// NaN elements.
func Normalize[T lane.Floats, A lane.Array[T]](v Vector[T, A]) Vector[T, A] {
	return v.DivScalar(T(v.Length()))
}

// Cross returns the cross product a × b.
func Cross[T lane.Primitive](a, b Vector3[T]) Vector3[T] {
	return Vec3(
		a.lanes[1]*b.lanes[2]-a.lanes[2]*b.lanes[1],
		a.lanes[2]*b.lanes[0]-a.lanes[0]*b.lanes[2],
		a.lanes[0]*b.lanes[1]-a.lanes[1]*b.lanes[0],
	)
}
