// Package wire is the runtime used by generated message accessors.
//
// # Message Layout
//
//	+--------+---------------------------+------------------------+
//	| header | fixed region (one slot    | trailing variable data |
//	|        | per field, schema order)  | (payloads, 4-aligned)  |
//	+--------+---------------------------+------------------------+
//	         ^ body start: pair offsets are relative to this byte
//
// Scalars are stored inline in the message byte order. Strings, arrays and
// referenced byte arrays store an (offset, length) pair of two u32 values in
// their slot. An array pair locates a sub-region of element slots: 8-byte
// pairs for strings and records, 4-byte values for u32 arrays.
//
// # Reading
//
//	m, err := wire.NewMessage(buf, wire.LittleEndian, 12, 16)
//	id, err := wire.ReadU32(m, 12)
//	names, err := wire.ReadStringArray(m, 20, count)
//
// Every reader bounds-checks before it touches the buffer and returns a
// copy, so results stay valid after the buffer is reused. A pair of (0, 0)
// reads as empty. A non-empty pair must lie inside the body and must not
// point into the fixed region. Errors are *errors.Error values in
// errors.PhaseDecode.
//
// # Writing
//
//	b := wire.NewBuilder(wire.LittleEndian, 12, 16)
//	err := wire.PutU32(b, 12, 7)
//	err = wire.PutStringArray(b, 20, []string{"a", "b"})
//	buf := b.Bytes()
//
// Writers report errors.PhaseEncode errors. Array writers do not touch the
// size field; generated setters write it with PutCount.
package wire
