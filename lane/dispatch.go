package lane

// Level identifies the register family a build uses for packed lanes.
type Level int

const (
	// LevelScalar indicates plain arrays and elementwise loops.
	LevelScalar Level = iota

	// LevelAVX2 indicates 128/256-bit packed registers (GOAMD64=v3).
	LevelAVX2

	// LevelAVX512 indicates AVX2 plus 512-bit float64x8 lanes (GOAMD64=v4).
	LevelAVX512
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// CurrentLevel returns the lane backend compiled into this binary.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the widest packed register in bytes used by this
// binary: 0 for scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current lane backend, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// Packed reports whether lanes of shape A are held in packed registers for
// arithmetic in this build (addition and subtraction only for int32 lanes).
// Shapes without a packed representation use the array loops; results are
// identical either way.
func Packed[T Primitive, A Array[T]]() bool {
	var a A
	return packedShape(&a)
}
