package abi

import "math"

// PairSize is the size of an offset+length indirection slot.
const PairSize = 8

// PayloadAlign is the alignment applied to every payload appended to the
// trailing variable-data region.
const PayloadAlign = 4

const (
	MaxStringSize  = 1 << 24 // 16 MB max string payload
	MaxArrayLength = 1 << 20 // 1M max elements
	MaxMessageSize = 1 << 30 // 1 GB max message buffer
	MaxFixedRegion = 1 << 16 // 64 KB max header + fixed slots
)

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// FitsWidth reports whether n can be stored in an unsigned integer of the
// given byte width.
func FitsWidth(n uint64, width uint32) bool {
	switch width {
	case 1:
		return n <= math.MaxUint8
	case 2:
		return n <= math.MaxUint16
	case 4:
		return n <= math.MaxUint32
	case 8:
		return true
	default:
		return false
	}
}
