// Package layout computes field offsets and fixed-region sizes for message
// and struct field lists.
//
// # Layout Rules
//
// The fixed region holds one slot per field in declaration order:
//   - Scalars: slot size equals the scalar width (u8=1, u32=4, u64=8)
//   - Strings, arrays, referenced byte arrays: one (offset, length) pair, 8 bytes
//   - Inline byte arrays: N bytes
//   - Inline structs: the struct's own fixed size
//
// Slots are packed without padding. A message's first slot starts right after
// its header; a struct's first slot starts at 0.
//
// # Usage
//
//	c := layout.NewCalculator()
//	info, err := c.Fields([]uint32{8, 4, 8}, 20)
//	// info.Offsets == [20, 28, 32], info.Size == 20
//
// This package is internal to the schema package.
package layout
