package layout

import (
	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
)

// Info is the computed layout of one field list.
type Info struct {
	// Offsets holds the absolute offset of each field, in declaration order.
	Offsets []uint32
	// Size is the fixed-region size, excluding the header.
	Size uint32
}

type Calculator struct {
	cache map[string]Info
}

func NewCalculator() *Calculator {
	return &Calculator{
		cache: make(map[string]Info),
	}
}

// Fields lays out slots of the given sizes back to back, starting at start.
// Slots are not padded; the wire format packs them in declaration order.
func (c *Calculator) Fields(sizes []uint32, start uint32) (Info, error) {
	offsets := make([]uint32, len(sizes))
	offset := start

	for i, size := range sizes {
		offsets[i] = offset

		next, ok := abi.SafeAddU32(offset, size)
		if !ok || next > abi.MaxFixedRegion {
			return Info{}, errors.New(errors.PhaseLayout, errors.KindOverflow).
				Value(uint64(offset) + uint64(size)).
				Detail("slot %d of size %d at offset %d exceeds the %d byte fixed region limit", i, size, offset, abi.MaxFixedRegion).
				Build()
		}
		offset = next
	}

	return Info{Offsets: offsets, Size: offset - start}, nil
}

// Struct returns the cached layout of a named struct, computing it from
// sizes on first use. Struct bodies always start at 0.
func (c *Calculator) Struct(name string, sizes []uint32) (Info, error) {
	if cached, ok := c.cache[name]; ok {
		return cached, nil
	}

	info, err := c.Fields(sizes, 0)
	if err != nil {
		return Info{}, err
	}

	c.cache[name] = info
	return info, nil
}
