// Package codegen emits Go accessors for a validated schema.
//
// For a message named "subscriber-ready-status" with a u32 field
// "ready-state" the generated file contains:
//
//	const (
//		SubscriberReadyStatusHeaderSize = 0
//		SubscriberReadyStatusFixedSize  = ...
//		subscriberReadyStatusReadyStateOffset = 0
//	)
//
//	func SubscriberReadyStatusMessage(buf []byte) (*wire.Message, error)
//	func SubscriberReadyStatusGetReadyState(m *wire.Message, out *uint32) error
//	func SubscriberReadyStatusParse(m *wire.Message, readyState *uint32, ...) error
//	func NewSubscriberReadyStatusBuilder() *wire.Builder
//	func SubscriberReadyStatusSetReadyState(b *wire.Builder, v uint32) error
//
// Getters return nil without touching the buffer when out is nil. Array
// getters read their size field first and decode exactly that many
// elements; array setters store len(v) in the size field. Readonly messages
// get no builder or setters.
//
// Each struct type becomes a Go struct plus unexported read and write
// helpers used by struct and struct-array fields.
//
// The file starts with a "Code generated" line, the schema fingerprint and
// the generator options. ReadFingerprint and ReadOptions recover them to
// detect stale output.
package codegen
