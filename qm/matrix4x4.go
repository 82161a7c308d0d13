package qm

import (
	"fmt"

	"github.com/ajroetker/go-quickmath/lane"
)

// Matrix4x4 is a 4x4 matrix stored as four row vectors. The sixteen elements
// are contiguous in row-major order, so a Matrix4x4f has the memory layout
// graphics APIs expect for a row-major float4x4. The zero value is the zero
// matrix.
type Matrix4x4[T lane.Primitive] struct {
	rows [4]Vector4[T]
}

// Identity4x4 returns the 4x4 identity matrix.
func Identity4x4[T lane.Primitive]() Matrix4x4[T] {
	return Scalar4x4(T(1))
}

// Scalar4x4 returns p times the identity.
func Scalar4x4[T lane.Primitive](p T) Matrix4x4[T] {
	return New4x4(
		p, 0, 0, 0,
		0, p, 0, 0,
		0, 0, p, 0,
		0, 0, 0, p,
	)
}

// New4x4 returns the matrix with the given elements in row-major order.
func New4x4[T lane.Primitive](
	a, b, c, d,
	e, f, g, h,
	i, j, k, l,
	m, n, o, p T,
) Matrix4x4[T] {
	return FromRows4x4(
		Vec4(a, b, c, d),
		Vec4(e, f, g, h),
		Vec4(i, j, k, l),
		Vec4(m, n, o, p),
	)
}

// FromRows4x4 returns the matrix with rows x, y, z and w.
func FromRows4x4[T lane.Primitive](x, y, z, w Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{rows: [4]Vector4[T]{x, y, z, w}}
}

// FromSlice4x4 returns the matrix whose row-major elements are s. If len(s)
// is not 16 the zero matrix is returned; the mismatch is not reported.
func FromSlice4x4[T lane.Primitive](s []T) Matrix4x4[T] {
	var m Matrix4x4[T]
	if len(s) != 16 {
		return m
	}
	for i := range m.rows {
		m.rows[i] = FromSlice[[4]T](s[4*i : 4*i+4])
	}
	return m
}

// Row returns row i.
func (m Matrix4x4[T]) Row(i int) Vector4[T] {
	return m.rows[i]
}

// SetRow replaces row i with v.
func (m *Matrix4x4[T]) SetRow(i int, v Vector4[T]) {
	m.rows[i] = v
}

// Column gathers element i of every row.
func (m Matrix4x4[T]) Column(i int) Vector4[T] {
	return Vec4(m.rows[0].lanes[i], m.rows[1].lanes[i], m.rows[2].lanes[i], m.rows[3].lanes[i])
}

// At returns the element in row r, column c.
func (m Matrix4x4[T]) At(r, c int) T {
	return m.rows[r].lanes[c]
}

// SetAt sets the element in row r, column c.
func (m *Matrix4x4[T]) SetAt(r, c int, x T) {
	m.rows[r].lanes[c] = x
}

// Rows returns the row vectors.
func (m Matrix4x4[T]) Rows() [4]Vector4[T] {
	return m.rows
}

// Elements returns the elements in row-major order.
func (m Matrix4x4[T]) Elements() [16]T {
	var out [16]T
	for i, r := range m.rows {
		copy(out[4*i:], r.lanes[:])
	}
	return out
}

// X returns row 0.
func (m Matrix4x4[T]) X() Vector4[T] { return m.rows[0] }

// Y returns row 1.
func (m Matrix4x4[T]) Y() Vector4[T] { return m.rows[1] }

// Z returns row 2.
func (m Matrix4x4[T]) Z() Vector4[T] { return m.rows[2] }

// W returns row 3.
func (m Matrix4x4[T]) W() Vector4[T] { return m.rows[3] }

// Transpose returns the matrix whose rows are the columns of m.
func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	return FromRows4x4(m.Column(0), m.Column(1), m.Column(2), m.Column(3))
}

// Minor returns the 3x3 matrix left after deleting row r and column c.
func (m Matrix4x4[T]) Minor(r, c int) Matrix3x3[T] {
	var out Matrix3x3[T]
	oi := 0
	for i := range 4 {
		if i == r {
			continue
		}
		oj := 0
		for j := range 4 {
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
func (m Matrix4x4[T]) Cofactor(r, c int) T {
	d := m.Minor(r, c).Determinant()
	if (r+c)%2 == 1 {
		return -d
	}
	return d
}

// Determinant expands along the first row over the 3x3 minors, which in turn
// expand over their 2x2 minors.
func (m Matrix4x4[T]) Determinant() T {
	var det T
	for j := range 4 {
		det += m.rows[0].lanes[j] * m.Cofactor(0, j)
	}
	return det
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Matrix4x4[T]) Adjugate() Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := range 4 {
		for j := range 4 {
			out.rows[i].lanes[j] = m.Cofactor(j, i)
		}
	}
	return out
}

// Inverse returns Adjugate() scaled by 1/Determinant(). A singular matrix is
// not detected: float matrices produce Inf/NaN elements and integer matrices
// panic on the division.
func (m Matrix4x4[T]) Inverse() Matrix4x4[T] {
	return m.Adjugate().MulScalar(T(1) / m.Determinant())
}

// Mul returns the matrix product m × o.
func (m Matrix4x4[T]) Mul(o Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i, r := range m.rows {
		out.rows[i] = o.rows[0].MulScalar(r.lanes[0]).
			Add(o.rows[1].MulScalar(r.lanes[1])).
			Add(o.rows[2].MulScalar(r.lanes[2])).
			Add(o.rows[3].MulScalar(r.lanes[3]))
	}
	return out
}

// MulVector returns m × v.
func (m Matrix4x4[T]) MulVector(v Vector4[T]) Vector4[T] {
	return Vec4(m.rows[0].Dot(v), m.rows[1].Dot(v), m.rows[2].Dot(v), m.rows[3].Dot(v))
}

func (m Matrix4x4[T]) mapRows(f func(i int, r Vector4[T]) Vector4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i, r := range m.rows {
		out.rows[i] = f(i, r)
	}
	return out
}

// Add returns the element-wise sum m + o.
func (m Matrix4x4[T]) Add(o Matrix4x4[T]) Matrix4x4[T] {
	return m.mapRows(func(i int, r Vector4[T]) Vector4[T] { return r.Add(o.rows[i]) })
}

// Sub returns the element-wise difference m - o.
func (m Matrix4x4[T]) Sub(o Matrix4x4[T]) Matrix4x4[T] {
	return m.mapRows(func(i int, r Vector4[T]) Vector4[T] { return r.Sub(o.rows[i]) })
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix4x4[T]) MulScalar(s T) Matrix4x4[T] {
	return m.mapRows(func(_ int, r Vector4[T]) Vector4[T] { return r.MulScalar(s) })
}

// DivScalar returns m with every element divided by s.
func (m Matrix4x4[T]) DivScalar(s T) Matrix4x4[T] {
	return m.mapRows(func(_ int, r Vector4[T]) Vector4[T] { return r.DivScalar(s) })
}

// AddAssign sets m to m + o.
func (m *Matrix4x4[T]) AddAssign(o Matrix4x4[T]) { *m = m.Add(o) }

// SubAssign sets m to m - o.
func (m *Matrix4x4[T]) SubAssign(o Matrix4x4[T]) { *m = m.Sub(o) }

// MulAssign sets m to m × o.
func (m *Matrix4x4[T]) MulAssign(o Matrix4x4[T]) { *m = m.Mul(o) }

// ScaleAssign multiplies every element of m by s.
func (m *Matrix4x4[T]) ScaleAssign(s T) { *m = m.MulScalar(s) }

// Equal reports whether every element of m equals the matching element of o.
func (m Matrix4x4[T]) Equal(o Matrix4x4[T]) bool {
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every element of m is within tol of o.
func (m Matrix4x4[T]) ApproxEqual(o Matrix4x4[T], tol T) bool {
	for i := range m.rows {
		if !m.rows[i].ApproxEqual(o.rows[i], tol) {
			return false
		}
	}
	return true
}

func (m Matrix4x4[T]) String() string {
	return fmt.Sprint(m.rows)
}
