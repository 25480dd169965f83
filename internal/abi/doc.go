// Package abi holds the small arithmetic and sizing rules shared by the
// schema layout calculator and the wire runtime.
//
// # Wire Rules
//
//	Slot kind            Size
//	──────────────────────────
//	u8                   1
//	u16                  2
//	u32/i32              4
//	u64/i64              8
//	offset+length pair   8 (u32 offset, u32 length)
//
// Payloads in the trailing region start on PayloadAlign boundaries.
//
// This package is internal to the module.
package abi
