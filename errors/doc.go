// Package errors provides structured error types for msggen.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type, schema type tag, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSchema, errors.KindInvalidReference).
//		Path("subscriber-ready-status", "telephone-numbers").
//		WireType("string-array").
//		Detail("size field %q is declared after the array", "telephone-numbers-count").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing(errors.PhaseSchema, path, "name")
//	err := errors.OutOfBounds(errors.PhaseDecode, path, offset, length, size)
//
// Generation-time errors use PhaseLoad, PhaseSchema, PhaseLayout and PhaseGenerate.
// Generated readers and writers report PhaseDecode and PhaseEncode errors.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
