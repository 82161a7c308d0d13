package qm

import (
	"fmt"

	"github.com/ajroetker/go-quickmath/lane"
)

// Matrix2x2 is a 2x2 matrix stored as two row vectors. The four elements are
// contiguous in row-major order. The zero value is the zero matrix.
type Matrix2x2[T lane.Primitive] struct {
	rows [2]Vector2[T]
}

// Identity2x2 returns the 2x2 identity matrix.
func Identity2x2[T lane.Primitive]() Matrix2x2[T] {
	return Scalar2x2(T(1))
}

// Scalar2x2 returns p times the identity: p on the diagonal, zero elsewhere.
func Scalar2x2[T lane.Primitive](p T) Matrix2x2[T] {
	return New2x2(
		p, 0,
		0, p,
	)
}

// New2x2 returns the matrix with the given elements in row-major order.
func New2x2[T lane.Primitive](a, b, c, d T) Matrix2x2[T] {
	return FromRows2x2(Vec2(a, b), Vec2(c, d))
}

// FromRows2x2 returns the matrix with rows x and y.
func FromRows2x2[T lane.Primitive](x, y Vector2[T]) Matrix2x2[T] {
	return Matrix2x2[T]{rows: [2]Vector2[T]{x, y}}
}

// FromSlice2x2 returns the matrix whose row-major elements are s. If len(s)
// is not 4 the zero matrix is returned; the mismatch is not reported.
func FromSlice2x2[T lane.Primitive](s []T) Matrix2x2[T] {
	if len(s) != 4 {
		return Matrix2x2[T]{}
	}
	return New2x2(s[0], s[1], s[2], s[3])
}

// Row returns row i.
func (m Matrix2x2[T]) Row(i int) Vector2[T] {
	return m.rows[i]
}

// SetRow replaces row i with v.
func (m *Matrix2x2[T]) SetRow(i int, v Vector2[T]) {
	m.rows[i] = v
}

// Column gathers element i of every row.
func (m Matrix2x2[T]) Column(i int) Vector2[T] {
	return Vec2(m.rows[0].lanes[i], m.rows[1].lanes[i])
}

// At returns the element in row r, column c.
func (m Matrix2x2[T]) At(r, c int) T {
	return m.rows[r].lanes[c]
}

// SetAt sets the element in row r, column c.
func (m *Matrix2x2[T]) SetAt(r, c int, x T) {
	m.rows[r].lanes[c] = x
}

// Rows returns the row vectors.
func (m Matrix2x2[T]) Rows() [2]Vector2[T] {
	return m.rows
}

// Elements returns the elements in row-major order.
func (m Matrix2x2[T]) Elements() [4]T {
	x, y := m.rows[0].lanes, m.rows[1].lanes
	return [4]T{x[0], x[1], y[0], y[1]}
}

// X returns row 0.
func (m Matrix2x2[T]) X() Vector2[T] { return m.rows[0] }

// Y returns row 1.
func (m Matrix2x2[T]) Y() Vector2[T] { return m.rows[1] }

// Transpose returns the matrix whose rows are the columns of m.
func (m Matrix2x2[T]) Transpose() Matrix2x2[T] {
	return FromRows2x2(m.Column(0), m.Column(1))
}

// Determinant returns ad - bc.
func (m Matrix2x2[T]) Determinant() T {
	x, y := m.rows[0].lanes, m.rows[1].lanes
	return x[0]*y[1] - x[1]*y[0]
}

// Cofactor returns the signed minor of element (r, c).
func (m Matrix2x2[T]) Cofactor(r, c int) T {
	minor := m.rows[1-r].lanes[1-c]
	if (r+c)%2 == 1 {
		return -minor
	}
	return minor
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix2x2[T]) Adjugate() Matrix2x2[T] {
	x, y := m.rows[0].lanes, m.rows[1].lanes
	return New2x2(
		y[1], -x[1],
		-y[0], x[0],
	)
}

// Inverse returns Adjugate() scaled by 1/Determinant(). A singular matrix is
// not detected: float matrices produce Inf/NaN elements and integer matrices
// panic on the division.
func (m Matrix2x2[T]) Inverse() Matrix2x2[T] {
	return m.Adjugate().MulScalar(T(1) / m.Determinant())
}

// Mul returns the matrix product m × o.
func (m Matrix2x2[T]) Mul(o Matrix2x2[T]) Matrix2x2[T] {
	var out Matrix2x2[T]
	for i, r := range m.rows {
		out.rows[i] = o.rows[0].MulScalar(r.lanes[0]).
			Add(o.rows[1].MulScalar(r.lanes[1]))
	}
	return out
}

// MulVector returns m × v.
func (m Matrix2x2[T]) MulVector(v Vector2[T]) Vector2[T] {
	return Vec2(m.rows[0].Dot(v), m.rows[1].Dot(v))
}

// Add returns the element-wise sum m + o.
func (m Matrix2x2[T]) Add(o Matrix2x2[T]) Matrix2x2[T] {
	return FromRows2x2(m.rows[0].Add(o.rows[0]), m.rows[1].Add(o.rows[1]))
}

// Sub returns the element-wise difference m - o.
func (m Matrix2x2[T]) Sub(o Matrix2x2[T]) Matrix2x2[T] {
	return FromRows2x2(m.rows[0].Sub(o.rows[0]), m.rows[1].Sub(o.rows[1]))
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix2x2[T]) MulScalar(s T) Matrix2x2[T] {
	return FromRows2x2(m.rows[0].MulScalar(s), m.rows[1].MulScalar(s))
}

// DivScalar returns m with every element divided by s.
func (m Matrix2x2[T]) DivScalar(s T) Matrix2x2[T] {
	return FromRows2x2(m.rows[0].DivScalar(s), m.rows[1].DivScalar(s))
}

// AddAssign sets m to m + o.
func (m *Matrix2x2[T]) AddAssign(o Matrix2x2[T]) { *m = m.Add(o) }

// SubAssign sets m to m - o.
func (m *Matrix2x2[T]) SubAssign(o Matrix2x2[T]) { *m = m.Sub(o) }

// MulAssign sets m to m × o.
func (m *Matrix2x2[T]) MulAssign(o Matrix2x2[T]) { *m = m.Mul(o) }

// ScaleAssign multiplies every element of m by s.
func (m *Matrix2x2[T]) ScaleAssign(s T) { *m = m.MulScalar(s) }

// Equal reports whether every element of m equals the matching element of o.
func (m Matrix2x2[T]) Equal(o Matrix2x2[T]) bool {
	return m.rows[0].Equal(o.rows[0]) && m.rows[1].Equal(o.rows[1])
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Matrix2x2[T]) ApproxEqual(o Matrix2x2[T], tol T) bool {
	return m.rows[0].ApproxEqual(o.rows[0], tol) && m.rows[1].ApproxEqual(o.rows[1], tol)
}

func (m Matrix2x2[T]) String() string {
	return fmt.Sprint(m.rows)
}
