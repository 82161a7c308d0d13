//go:build purego || !amd64 || !amd64.v3 || !goexperiment.simd

package lane

// Scalar builds have no packed kernels. These hooks are inlined away and the
// operators in ops_base.go run their array loops.

func packedShape(p any) bool {
	return false
}

func packedBinary(op binop, dst, a, b any) bool {
	return false
}
