package qm

import (
	"fmt"

	"github.com/ajroetker/go-quickmath/lane"
)

// Matrix3x3 is a 3x3 matrix stored as three row vectors. The nine elements
// are contiguous in row-major order. The zero value is the zero matrix.
type Matrix3x3[T lane.Primitive] struct {
	rows [3]Vector3[T]
}

// Identity3x3 returns the 3x3 identity matrix.
func Identity3x3[T lane.Primitive]() Matrix3x3[T] {
	return Scalar3x3(T(1))
}

// Scalar3x3 returns p times the identity.
func Scalar3x3[T lane.Primitive](p T) Matrix3x3[T] {
	return New3x3(
		p, 0, 0,
		0, p, 0,
		0, 0, p,
	)
}

// New3x3 returns the matrix with the given elements in row-major order.
func New3x3[T lane.Primitive](a, b, c, d, e, f, g, h, i T) Matrix3x3[T] {
	return FromRows3x3(Vec3(a, b, c), Vec3(d, e, f), Vec3(g, h, i))
}

// FromRows3x3 returns the matrix with rows x, y and z.
func FromRows3x3[T lane.Primitive](x, y, z Vector3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{rows: [3]Vector3[T]{x, y, z}}
}

// FromSlice3x3 returns the matrix whose row-major elements are s. If len(s)
// is not 9 the zero matrix is returned; the mismatch is not reported.
func FromSlice3x3[T lane.Primitive](s []T) Matrix3x3[T] {
	var m Matrix3x3[T]
	if len(s) != 9 {
		return m
	}
	for i := range m.rows {
		m.rows[i] = FromSlice[[3]T](s[3*i : 3*i+3])
	}
	return m
}

// Row returns row i.
func (m Matrix3x3[T]) Row(i int) Vector3[T] {
	return m.rows[i]
}

// SetRow replaces row i with v.
func (m *Matrix3x3[T]) SetRow(i int, v Vector3[T]) {
	m.rows[i] = v
}

// Column gathers element i of every row.
func (m Matrix3x3[T]) Column(i int) Vector3[T] {
	return Vec3(m.rows[0].lanes[i], m.rows[1].lanes[i], m.rows[2].lanes[i])
}

// At returns the element in row r, column c.
func (m Matrix3x3[T]) At(r, c int) T {
	return m.rows[r].lanes[c]
}

// SetAt sets the element in row r, column c.
func (m *Matrix3x3[T]) SetAt(r, c int, x T) {
	m.rows[r].lanes[c] = x
}

// Rows returns the row vectors.
func (m Matrix3x3[T]) Rows() [3]Vector3[T] {
	return m.rows
}

// Elements returns the elements in row-major order.
func (m Matrix3x3[T]) Elements() [9]T {
	var out [9]T
	for i, r := range m.rows {
		copy(out[3*i:], r.lanes[:])
	}
	return out
}

// X returns row 0.
func (m Matrix3x3[T]) X() Vector3[T] { return m.rows[0] }

// Y returns row 1.
func (m Matrix3x3[T]) Y() Vector3[T] { return m.rows[1] }

// Z returns row 2.
func (m Matrix3x3[T]) Z() Vector3[T] { return m.rows[2] }

// Transpose returns the matrix whose rows are the columns of m.
func (m Matrix3x3[T]) Transpose() Matrix3x3[T] {
	return FromRows3x3(m.Column(0), m.Column(1), m.Column(2))
}

// Minor returns the 2x2 matrix left after deleting row r and column c.
func (m Matrix3x3[T]) Minor(r, c int) Matrix2x2[T] {
	var out Matrix2x2[T]
	oi := 0
	for i := range 3 {
		if i == r {
			continue
		}
		oj := 0
		for j := range 3 {
			if j == c {
				continue
			}
			out.rows[oi].lanes[oj] = m.rows[i].lanes[j]
			oj++
		}
		oi++
	}
	return out
}

// Cofactor returns the determinant of Minor(r, c), negated when r+c is odd.
func (m Matrix3x3[T]) Cofactor(r, c int) T {
	d := m.Minor(r, c).Determinant()
	if (r+c)%2 == 1 {
		return -d
	}
	return d
}

// Determinant expands along the first row over the 2x2 minors.
func (m Matrix3x3[T]) Determinant() T {
	var det T
	for j := range 3 {
		det += m.rows[0].lanes[j] * m.Cofactor(0, j)
	}
	return det
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix3x3[T]) Adjugate() Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := range 3 {
		for j := range 3 {
			out.rows[i].lanes[j] = m.Cofactor(j, i)
		}
	}
	return out
}

// Inverse returns Adjugate() scaled by 1/Determinant(). A singular matrix is
// not detected: float matrices produce Inf/NaN elements and integer matrices
// panic on the division.
func (m Matrix3x3[T]) Inverse() Matrix3x3[T] {
	return m.Adjugate().MulScalar(T(1) / m.Determinant())
}

// Mul returns the matrix product m × o.
func (m Matrix3x3[T]) Mul(o Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i, r := range m.rows {
		out.rows[i] = o.rows[0].MulScalar(r.lanes[0]).
			Add(o.rows[1].MulScalar(r.lanes[1])).
			Add(o.rows[2].MulScalar(r.lanes[2]))
	}
	return out
}

// MulVector returns m × v.
func (m Matrix3x3[T]) MulVector(v Vector3[T]) Vector3[T] {
	return Vec3(m.rows[0].Dot(v), m.rows[1].Dot(v), m.rows[2].Dot(v))
}

func (m Matrix3x3[T]) mapRows(f func(i int, r Vector3[T]) Vector3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i, r := range m.rows {
		out.rows[i] = f(i, r)
	}
	return out
}

// Add returns the element-wise sum m + o.
func (m Matrix3x3[T]) Add(o Matrix3x3[T]) Matrix3x3[T] {
	return m.mapRows(func(i int, r Vector3[T]) Vector3[T] { return r.Add(o.rows[i]) })
}

// Sub returns the element-wise difference m - o.
func (m Matrix3x3[T]) Sub(o Matrix3x3[T]) Matrix3x3[T] {
	return m.mapRows(func(i int, r Vector3[T]) Vector3[T] { return r.Sub(o.rows[i]) })
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix3x3[T]) MulScalar(s T) Matrix3x3[T] {
	return m.mapRows(func(_ int, r Vector3[T]) Vector3[T] { return r.MulScalar(s) })
}

// DivScalar returns m with every element divided by s.
func (m Matrix3x3[T]) DivScalar(s T) Matrix3x3[T] {
	return m.mapRows(func(_ int, r Vector3[T]) Vector3[T] { return r.DivScalar(s) })
}

// AddAssign sets m to m + o.
func (m *Matrix3x3[T]) AddAssign(o Matrix3x3[T]) { *m = m.Add(o) }

// SubAssign sets m to m - o.
func (m *Matrix3x3[T]) SubAssign(o Matrix3x3[T]) { *m = m.Sub(o) }

// MulAssign sets m to m × o.
func (m *Matrix3x3[T]) MulAssign(o Matrix3x3[T]) { *m = m.Mul(o) }

// ScaleAssign multiplies every element of m by s.
func (m *Matrix3x3[T]) ScaleAssign(s T) { *m = m.MulScalar(s) }

// Equal reports whether every element of m equals the matching element of o.
func (m Matrix3x3[T]) Equal(o Matrix3x3[T]) bool {
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Matrix3x3[T]) ApproxEqual(o Matrix3x3[T], tol T) bool {
	for i := range m.rows {
		if !m.rows[i].ApproxEqual(o.rows[i], tol) {
			return false
		}
	}
	return true
}

func (m Matrix3x3[T]) String() string {
	return fmt.Sprint(m.rows)
}
