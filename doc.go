// Package msggen generates typed Go accessors for binary messages described
// by a schema.
//
// A message is a header, a fixed region of field slots in schema order, and
// a trailing region of variable-length data. Strings, byte arrays and arrays
// are stored in the fixed region as an (offset, length) pair pointing into
// the trailing region. Offsets are relative to the body, the first byte after
// the header, and every payload starts on a 4-byte boundary. Array lengths
// come from a separate size field of the same message or struct.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	msggen/
//	├── schema/          Schema documents, validation and layout computation
//	├── codegen/         Go source generation from a built schema
//	├── wire/            Runtime used by generated code: readers and builders
//	│   └── wasmmem/     Copy messages in and out of wazero guest memory
//	├── dynamic/         Schema-driven encode and decode without generated code
//	├── config/          msggen.toml project configuration
//	├── errors/          Structured error types for debugging
//	├── example/         Checked-in generated package with tests
//	└── cmd/msggen/      Command-line generator, layout printer and TUI
//
// # Quick Start
//
// Describe a message in YAML:
//
//	messages:
//	  - name: values
//	    fields:
//	      - {name: id, type: u32}
//	      - {name: count, type: u32}
//	      - {name: values, type: string-array, array-size-field: count}
//
// Generate accessors:
//
//	msggen -schema values.yaml -package messages -o values_gen.go
//
// Read a message:
//
//	m, err := messages.ValuesMessage(buf)
//	if err != nil {
//	    return err
//	}
//	var values []string
//	if err := messages.ValuesGetValues(m, &values); err != nil {
//	    return err
//	}
//
// Every out parameter may be nil, in which case the field is not read and
// nothing is allocated. Results never alias the message buffer.
//
// # Building Messages
//
// Unless a message is marked readonly, the generator also emits a builder
// constructor and one setter per field. Setting an array also writes its size
// field:
//
//	b := messages.NewValuesBuilder()
//	_ = messages.ValuesSetID(b, 7)
//	_ = messages.ValuesSetValues(b, []string{"a", "bc"})
//	buf := b.Bytes()
//
// # Thread Safety
//
// A wire.Message is immutable and safe for concurrent reads. A wire.Builder
// is not thread-safe and should be used by a single goroutine.
package msggen
