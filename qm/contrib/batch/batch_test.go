package batch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-quickmath/qm"
)

func TestTransform2(t *testing.T) {
	rot := qm.New2x2[float32](0, -1, 1, 0)
	xs := []float32{1, 0, 2}
	ys := []float32{0, 1, 3}
	outX := make([]float32, 3)
	outY := make([]float32, 3)

	n := Transform2(rot, [2][]float32{outX, outY}, [2][]float32{xs, ys})
	require.Equal(t, 3, n)
	assert.Equal(t, []float32{0, -1, -3}, outX)
	assert.Equal(t, []float32{1, 0, 2}, outY)
}

func TestTransform3ShortestColumn(t *testing.T) {
	m := qm.Scalar3x3[int32](2)
	src := [3][]int32{{1, 2, 3, 4}, {5, 6}, {7, 8, 9}}
	dst := [3][]int32{make([]int32, 4), make([]int32, 4), make([]int32, 4)}

	n := Transform3(m, dst, src)
	require.Equal(t, 2, n)
	assert.Equal(t, []int32{2, 4, 0, 0}, dst[0])
	assert.Equal(t, []int32{10, 12, 0, 0}, dst[1])
	assert.Equal(t, []int32{14, 16, 0, 0}, dst[2])
}

func TestTransform4InPlace(t *testing.T) {
	// Translation by (1, 2, 3) in row-vector-on-the-right form.
	m := qm.New4x4(
		1.0, 0.0, 0.0, 1.0,
		0.0, 1.0, 0.0, 2.0,
		0.0, 0.0, 1.0, 3.0,
		0.0, 0.0, 0.0, 1.0,
	)
	cols := [4][]float64{{0, 10}, {0, 20}, {0, 30}, {1, 1}}

	n := Transform4(m, cols, cols)
	require.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 11}, cols[0])
	assert.Equal(t, []float64{2, 22}, cols[1])
	assert.Equal(t, []float64{3, 33}, cols[2])
	assert.Equal(t, []float64{1, 1}, cols[3])
}

func TestTransformEmpty(t *testing.T) {
	assert.Equal(t, 0, Transform2(qm.Identity2x2d, [2][]float64{}, [2][]float64{}))
}

func TestPackUnpack(t *testing.T) {
	xs := []float32{1, 2, 3}
	ys := []float32{4, 5, 6}
	zs := []float32{7, 8, 9, 10}

	pts := Pack[[3]float32](xs, ys, zs)
	require.Len(t, pts, 3)
	assert.Equal(t, qm.Vec3[float32](1, 4, 7), pts[0])
	assert.Equal(t, qm.Vec3[float32](3, 6, 9), pts[2])

	cols := Unpack(pts)
	require.Len(t, cols, 3)
	assert.Equal(t, xs, cols[0])
	assert.Equal(t, ys, cols[1])
	assert.Equal(t, zs[:3], cols[2])

	assert.Nil(t, Pack[[4]float32](xs, ys, zs))
	assert.Empty(t, Pack[[2]int32]([]int32{}, []int32{1}))
}

func TestLengths2(t *testing.T) {
	xs := []float64{3, 6, 0, -5}
	ys := []float64{4, 8, 0, 12}
	dst := make([]float64, len(xs))

	Lengths2(dst, xs, ys)
	if diff := cmp.Diff([]float64{5, 10, 0, 13}, dst, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Lengths2 mismatch (-want +got):\n%s", diff)
	}

	LengthsSquared2(dst, xs, ys)
	assert.Equal(t, []float64{25, 100, 0, 169}, dst)

	for i := range xs {
		v := qm.Vec2(xs[i], ys[i])
		assert.InDelta(t, v.Length(), math.Sqrt(dst[i]), 1e-12)
	}
}

func TestMulScaleComponents(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 2, 2, 0.5, -1}
	dst := make([]float64, len(a))

	MulComponents(dst, a, b)
	assert.Equal(t, []float64{2, 4, 6, 2, -5}, dst)

	ScaleComponents(dst, a, 3)
	assert.Equal(t, []float64{3, 6, 9, 12, 15}, dst)
}

func TestLengthMismatchPanics(t *testing.T) {
	short := make([]float64, 2)
	long := make([]float64, 3)

	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { Lengths2(short, long, long) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { LengthsSquared2(long, long, short) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { MulComponents(long, short, long) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() { ScaleComponents(long, short, 1) })
	assert.PanicsWithValue(t, "batch: slice length mismatch", func() {
		TransformBlock2(qm.Identity2x2d, [2][]float64{long, long}, [2][]float64{long, short})
	})
}

func TestTransformBlockMatchesTransform(t *testing.T) {
	const n = 37
	var src, want, got [4][]float64
	for c := range src {
		src[c] = make([]float64, n)
		want[c] = make([]float64, n)
		got[c] = make([]float64, n)
		for i := range src[c] {
			src[c][i] = float64(i*(c+1)) * 0.25
		}
	}
	m := qm.New4x4(
		1.0, 2.0, 0.0, -1.0,
		0.5, 1.0, 3.0, 0.0,
		0.0, -2.0, 1.0, 4.0,
		1.0, 1.0, 1.0, 1.0,
	)

	Transform4(m, want, src)
	TransformBlock4(m, got, src)
	for c := range got {
		if diff := cmp.Diff(want[c], got[c], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("column %d mismatch (-Transform4 +TransformBlock4):\n%s", c, diff)
		}
	}

	m3 := qm.New3x3(
		0.0, 1.0, 0.0,
		-1.0, 0.0, 0.0,
		0.0, 0.0, 2.0,
	)
	var dst3 [3][]float64
	for c := range dst3 {
		dst3[c] = make([]float64, n)
	}
	TransformBlock3(m3, dst3, [3][]float64{src[0], src[1], src[2]})
	assert.Equal(t, src[1], dst3[0])
	assert.Equal(t, 2*src[2][n-1], dst3[2][n-1])
	for i := range n {
		assert.Equal(t, -src[0][i], dst3[1][i])
	}

	dst2 := [2][]float64{make([]float64, n), make([]float64, n)}
	TransformBlock2(qm.Identity2x2d, dst2, [2][]float64{src[0], src[1]})
	assert.Equal(t, src[0], dst2[0])
	assert.Equal(t, src[1], dst2[1])
}

func BenchmarkTransform3(b *testing.B) {
	const n = 1024
	var src, dst [3][]float32
	for c := range src {
		src[c] = make([]float32, n)
		dst[c] = make([]float32, n)
		for i := range src[c] {
			src[c][i] = float32(i + c)
		}
	}
	m := qm.Scalar3x3[float32](1.5)
	for b.Loop() {
		Transform3(m, dst, src)
	}
}

func BenchmarkTransformBlock3(b *testing.B) {
	const n = 1024
	var src, dst [3][]float64
	for c := range src {
		src[c] = make([]float64, n)
		dst[c] = make([]float64, n)
		for i := range src[c] {
			src[c][i] = float64(i + c)
		}
	}
	m := qm.Scalar3x3(1.5)
	for b.Loop() {
		TransformBlock3(m, dst, src)
	}
}
