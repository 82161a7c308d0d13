package lane

import "math/bits"

// Mask represents the per-lane result of a comparison or logical operation.
// Bit i is set when the relation holds for lane i. It is the width-wise
// result; reducing it to a single bool is done with AllTrue or AnyTrue.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less or Greater instead.
type Mask struct {
	bits uint8
	n    uint8
}

func (m *Mask) set(i int) {
	m.bits |= 1 << i
}

// NumLanes returns the number of lanes in this mask.
func (m Mask) NumLanes() int {
	return int(m.n)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask) AllTrue() bool {
	full := uint8(uint16(1)<<m.n - 1)
	return m.bits == full
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask) CountTrue() int {
	return bits.OnesCount8(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= int(m.n) {
		return false
	}
	return m.bits&(1<<i) != 0
}
