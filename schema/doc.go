// Package schema turns declarative message schemas into validated,
// laid-out descriptor lists.
//
// A schema document lists messages, each an ordered list of fields. Every
// field has a type tag that selects a Descriptor variant, and the variant
// decides the field's Go types, its documentation, its slot size in the
// fixed region and the runtime function that reads it.
//
// # Pipeline
//
//	doc, err := schema.Load("basic-connect.yaml") // YAML or JSON, shape-checked
//	s, err := schema.Build(doc)                   // descriptors, references, offsets
//
// Build runs one validation pass per field list and collects every problem
// before failing; the returned error combines them (go.uber.org/multierr)
// and each one names the offending message and field. On error no schema is
// returned.
//
// # Type Tags
//
//	u8 u16 u32 u64 i32 i64   inline scalars
//	string                   8-byte pair -> payload
//	string-array             8-byte pair -> N pairs -> payloads
//	byte-array               N inline bytes (array-size)
//	ref-byte-array           8-byte pair -> payload
//	u32-array                8-byte pair -> N uint32 values
//	struct                   inline struct body (struct-type)
//	struct-array             8-byte pair -> N pairs -> struct bodies
//
// Array types name an earlier unsigned u8, u16 or u32 field holding their
// element count with array-size-field.
//
// # WIT
//
// FromWIT converts WebAssembly Interface Type records into a Document, so
// messages shared with a WebAssembly component can be described once.
package schema
