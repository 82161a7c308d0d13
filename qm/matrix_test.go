package qm

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-quickmath/lane"
)

func sample2x2[T lane.Primitive]() Matrix2x2[T] {
	return New2x2[T](1, 2, 3, 4)
}

func sample3x3[T lane.Primitive]() Matrix3x3[T] {
	return New3x3[T](
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	)
}

func sample4x4[T lane.Primitive]() Matrix4x4[T] {
	return New4x4[T](
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0,
	)
}

func TestTransposeInvolution(t *testing.T) {
	checkTranspose[float32](t)
	checkTranspose[float64](t)
	checkTranspose[int32](t)
}

func checkTranspose[T lane.Primitive](t *testing.T) {
	t.Helper()
	m2, m3, m4 := sample2x2[T](), sample3x3[T](), sample4x4[T]()
	assert.Equal(t, m2, m2.Transpose().Transpose())
	assert.Equal(t, m3, m3.Transpose().Transpose())
	assert.Equal(t, m4, m4.Transpose().Transpose())

	tr := m4.Transpose()
	for r := range 4 {
		for c := range 4 {
			assert.Equal(t, m4.At(r, c), tr.At(c, r), "%T (%d,%d)", m4, r, c)
		}
	}
}

func TestIdentityNeutral(t *testing.T) {
	checkIdentity[float32](t)
	checkIdentity[float64](t)
	checkIdentity[int32](t)
}

func checkIdentity[T lane.Primitive](t *testing.T) {
	t.Helper()
	m2, m3, m4 := sample2x2[T](), sample3x3[T](), sample4x4[T]()
	i2, i3, i4 := Identity2x2[T](), Identity3x3[T](), Identity4x4[T]()

	assert.Equal(t, m2, i2.Mul(m2))
	assert.Equal(t, m2, m2.Mul(i2))
	assert.Equal(t, m3, i3.Mul(m3))
	assert.Equal(t, m3, m3.Mul(i3))
	assert.Equal(t, m4, i4.Mul(m4))
	assert.Equal(t, m4, m4.Mul(i4))

	assert.Equal(t, T(1), i2.Determinant())
	assert.Equal(t, T(1), i3.Determinant())
	assert.Equal(t, T(1), i4.Determinant())
}

func TestIdentityVars(t *testing.T) {
	assert.Equal(t, Identity2x2[float32](), Identity2x2f)
	assert.Equal(t, Identity3x3[float64](), Identity3x3d)
	assert.Equal(t, Identity4x4[int32](), Identity4x4i)

	m := Identity2x2f
	m.SetAt(0, 0, 5)
	assert.Equal(t, float32(1), Identity2x2f.At(0, 0))
}

func TestScalarMatrix(t *testing.T) {
	s := Scalar3x3[float64](2.5)
	for r := range 3 {
		for c := range 3 {
			want := 0.0
			if r == c {
				want = 2.5
			}
			assert.Equal(t, want, s.At(r, c))
		}
	}
	assert.Equal(t, Vec3[float64](2.5, 5, 7.5), s.MulVector(Vec3[float64](1, 2, 3)))
}

func TestMatrixConstruction(t *testing.T) {
	m := New3x3[int32](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	assert.Equal(t, int32(6), m.At(1, 2))
	assert.Equal(t, Vec3[int32](4, 5, 6), m.Row(1))
	assert.Equal(t, Vec3[int32](2, 5, 8), m.Column(1))
	assert.Equal(t, Vec3[int32](1, 2, 3), m.X())
	assert.Equal(t, Vec3[int32](7, 8, 9), m.Z())
	assert.Equal(t, [9]int32{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Elements())

	fromRows := FromRows3x3(m.Row(0), m.Row(1), m.Row(2))
	assert.Equal(t, m, fromRows)

	e := m.Elements()
	assert.Equal(t, m, FromSlice3x3(e[:]))

	m.SetRow(0, Vec3[int32](0, 0, 0))
	m.SetAt(2, 2, 90)
	assert.Equal(t, [9]int32{0, 0, 0, 4, 5, 6, 7, 8, 90}, m.Elements())
}

func TestMatrixConstructionRoundTrip4x4(t *testing.T) {
	var vals [16]float32
	for i := range vals {
		vals[i] = float32(i) * 0.5
	}
	m := FromSlice4x4(vals[:])
	for r := range 4 {
		for c := range 4 {
			assert.Equal(t, vals[4*r+c], m.At(r, c))
		}
		assert.Equal(t, [4]float32(vals[4*r:4*r+4]), m.Row(r).Array())
	}
	assert.Equal(t, vals, m.Elements())
	assert.Equal(t, Vec4[float32](6, 6.5, 7, 7.5), m.W())
	assert.Equal(t, m.Column(3), m.Transpose().Row(3))
}

func TestMatrixMalformedLength(t *testing.T) {
	assert.Equal(t, Matrix2x2f{}, FromSlice2x2([]float32{1, 2, 3}))
	assert.Equal(t, Matrix3x3d{}, FromSlice3x3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
	assert.Equal(t, Matrix4x4i{}, FromSlice4x4([]int32(nil)))
	assert.Equal(t, Matrix2x2i{}, FromSlice2x2(make([]int32, 9)))
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, -2.0, New2x2(1.0, 2.0, 3.0, 4.0).Determinant())
	assert.Equal(t, int32(-2), sample2x2[int32]().Determinant())
	assert.Equal(t, float32(4), sample3x3[float32]().Determinant())
	assert.Equal(t, int32(30), sample4x4[int32]().Determinant())
	assert.Equal(t, 30.0, sample4x4[float64]().Determinant())

	singular := New3x3[float64](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	assert.Equal(t, 0.0, singular.Determinant())
}

func TestMinorCofactorAdjugate(t *testing.T) {
	m := sample3x3[int32]()
	assert.Equal(t, New2x2[int32](2, -1, -1, 2), m.Minor(0, 0))
	assert.Equal(t, New2x2[int32](-1, -1, 0, 2), m.Minor(0, 1))
	assert.Equal(t, int32(3), m.Cofactor(0, 0))
	assert.Equal(t, int32(2), m.Cofactor(0, 1))

	want := New3x3[int32](
		3, 2, 1,
		2, 4, 2,
		1, 2, 3,
	)
	assert.Equal(t, want, m.Adjugate())
	assert.Equal(t, Scalar3x3(m.Determinant()), m.Mul(m.Adjugate()))

	m2 := sample2x2[float64]()
	assert.Equal(t, New2x2(4.0, -2.0, -3.0, 1.0), m2.Adjugate())
	assert.Equal(t, 4.0, m2.Cofactor(0, 0))
	assert.Equal(t, -3.0, m2.Cofactor(0, 1))
	assert.Equal(t, -2.0, m2.Cofactor(1, 0))

	m4 := sample4x4[int32]()
	assert.Equal(t, Scalar4x4(m4.Determinant()), m4.Adjugate().Mul(m4))
	assert.Equal(t, New3x3[int32](1, 2, -1, 3, 0, 5, 1, 5, 0), m4.Minor(2, 1))
}

func TestInverse(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		m := sample2x2[float64]()
		inv := m.Inverse()
		want := [4]float64{-2, 1, 1.5, -0.5}
		if diff := cmp.Diff(want, inv.Elements(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Inverse mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, inv.Mul(m).ApproxEqual(Identity2x2d, 1e-12))
		assert.True(t, m.Mul(inv).ApproxEqual(Identity2x2d, 1e-12))
	})
	t.Run("3x3", func(t *testing.T) {
		m := sample3x3[float32]()
		inv := m.Inverse()
		want := [9]float32{0.75, 0.5, 0.25, 0.5, 1, 0.5, 0.25, 0.5, 0.75}
		if diff := cmp.Diff(want, inv.Elements(), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("Inverse mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, inv.Mul(m).ApproxEqual(Identity3x3f, 1e-5))
	})
	t.Run("4x4", func(t *testing.T) {
		m := sample4x4[float64]()
		assert.True(t, m.Inverse().Mul(m).ApproxEqual(Identity4x4d, 1e-12))

		mf := sample4x4[float32]()
		assert.True(t, mf.Inverse().Mul(mf).ApproxEqual(Identity4x4f, 1e-5))
	})
	t.Run("int32_unimodular", func(t *testing.T) {
		m := New2x2[int32](2, 1, 1, 1)
		require.Equal(t, int32(1), m.Determinant())
		assert.Equal(t, New2x2[int32](1, -1, -1, 2), m.Inverse())
		assert.Equal(t, Identity2x2i, m.Inverse().Mul(m))
	})
}

func TestInverseSingular(t *testing.T) {
	inv := New2x2(1.0, 2.0, 2.0, 4.0).Inverse()
	for _, x := range inv.Elements() {
		assert.True(t, math.IsInf(x, 0) || math.IsNaN(x), "element %v is finite", x)
	}

	assert.Panics(t, func() { _ = New2x2[int32](1, 2, 2, 4).Inverse() })
}

func TestMatrixMul(t *testing.T) {
	a := New2x2[int32](1, 2, 3, 4)
	b := New2x2[int32](5, 6, 7, 8)
	assert.Equal(t, New2x2[int32](19, 22, 43, 50), a.Mul(b))
	assert.Equal(t, New2x2[int32](23, 34, 31, 46), b.Mul(a))

	a.MulAssign(b)
	assert.Equal(t, New2x2[int32](19, 22, 43, 50), a)
}

func TestMatrixMulVector(t *testing.T) {
	assert.Equal(t, Vec3[float32](1, 2, 3), Identity3x3f.MulVector(Vec3[float32](1, 2, 3)))
	assert.Equal(t, Vec2[int32](3, 7), sample2x2[int32]().MulVector(Vec2[int32](1, 1)))

	m := sample4x4[float64]()
	v := Vec4[float64](1, 2, 3, 4)
	got := m.MulVector(v)
	for r := range 4 {
		assert.Equal(t, m.Row(r).Dot(v), got.At(r))
	}
	assert.Equal(t, Vec4[float64](3, 23, 4, 16), got)
}

func TestMatrixElementwise(t *testing.T) {
	a := sample3x3[float64]()
	b := Identity3x3d

	sum := a.Add(b)
	assert.Equal(t, 3.0, sum.At(0, 0))
	assert.Equal(t, -1.0, sum.At(0, 1))
	assert.Equal(t, a, sum.Sub(b))
	assert.Equal(t, a.Add(a), a.MulScalar(2))
	assert.Equal(t, a, a.MulScalar(4).DivScalar(4))

	c := a
	c.AddAssign(b)
	assert.Equal(t, sum, c)
	c.SubAssign(b)
	assert.Equal(t, a, c)
	c.ScaleAssign(-1)
	assert.Equal(t, a.MulScalar(-1), c)

	m4 := sample4x4[int32]()
	d := m4
	d.AddAssign(m4)
	d.SubAssign(m4)
	assert.True(t, d.Equal(m4))
	assert.False(t, d.Equal(Identity4x4i))
	d.ScaleAssign(3)
	assert.Equal(t, m4.MulScalar(3), d)
	assert.Equal(t, m4, d.DivScalar(3))

	m2 := sample2x2[float32]()
	m2.AddAssign(Identity2x2f)
	m2.SubAssign(Identity2x2f)
	m2.ScaleAssign(2)
	assert.Equal(t, New2x2[float32](2, 4, 6, 8), m2)
	assert.Equal(t, sample2x2[float32](), m2.DivScalar(2))
}

func TestMatrixApproxEqual(t *testing.T) {
	a := sample3x3[float64]()
	b := a.Add(Scalar3x3(1e-9))
	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b, 1e-6))
	assert.False(t, a.ApproxEqual(b, 1e-12))
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "[[1 2] [3 4]]", sample2x2[int32]().String())
	assert.Equal(t, "[[1 0 0] [0 1 0] [0 0 1]]", Identity3x3i.String())
}

func BenchmarkMatrix4x4fMul(b *testing.B) {
	m := sample4x4[float32]()
	acc := Identity4x4f
	for b.Loop() {
		acc = acc.Mul(m)
	}
	_ = acc
}

func BenchmarkMatrix4x4dInverse(b *testing.B) {
	m := sample4x4[float64]()
	var inv Matrix4x4d
	for b.Loop() {
		inv = m.Inverse()
	}
	_ = inv
}
