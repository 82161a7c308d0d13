package lane

// Features describes the SIMD extensions of the machine running the binary.
// It is informational: lane selection is fixed at build time and never
// consults it. Comparing it with CurrentLevel shows whether a build leaves
// wider registers unused.
type Features struct {
	Architecture string

	// x86/amd64
	HasSSE2    bool
	HasAVX     bool
	HasAVX2    bool
	HasFMA     bool
	HasAVX512F bool

	// arm64
	HasNEON bool
}

// HostFeatures returns the SIMD extensions reported by the CPU.
func HostFeatures() Features {
	return hostFeatures()
}

// BestLevel returns the widest Level the host could run if the binary were
// built for it.
func (f Features) BestLevel() Level {
	switch {
	case f.HasAVX512F && f.HasAVX2:
		return LevelAVX512
	case f.HasAVX2 && f.HasFMA:
		return LevelAVX2
	default:
		return LevelScalar
	}
}
