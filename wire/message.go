package wire

import (
	"encoding/binary"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
)

// Byte orders accepted by NewMessage and NewBuilder.
var (
	LittleEndian binary.ByteOrder = binary.LittleEndian
	BigEndian    binary.ByteOrder = binary.BigEndian
)

// Message is a read-only view of an encoded message: a header, a fixed
// region of field slots, and a trailing variable-data region. Offsets stored
// in pairs are relative to the body, the byte right after the header.
//
// A Message never modifies its buffer, so any number of goroutines may read
// the same Message concurrently.
type Message struct {
	buf    []byte
	order  binary.ByteOrder
	header uint32
	fixed  uint32
}

// NewMessage wraps buf. It fails if buf cannot hold the header and the fixed
// region.
func NewMessage(buf []byte, order binary.ByteOrder, header, fixed uint32) (*Message, error) {
	end, ok := abi.SafeAddU32(header, fixed)
	if !ok {
		return nil, errors.Overflow(errors.PhaseDecode, nil, uint64(header)+uint64(fixed), "u32")
	}
	if uint64(len(buf)) < uint64(end) {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Value(len(buf)).
			Detail("message of %d bytes is shorter than its %d byte header and fixed region", len(buf), end).
			Build()
	}
	if len(buf) > abi.MaxMessageSize {
		return nil, errors.Overflow(errors.PhaseDecode, nil, len(buf), "message size limit")
	}
	if order == nil {
		order = LittleEndian
	}
	return &Message{buf: buf, order: order, header: header, fixed: fixed}, nil
}

// Bytes returns the underlying buffer.
func (m *Message) Bytes() []byte { return m.buf }

// Len returns the message size in bytes.
func (m *Message) Len() int { return len(m.buf) }

// Header returns the header bytes.
func (m *Message) Header() []byte { return m.buf[:m.header] }

// Body returns everything after the header.
func (m *Message) Body() []byte { return m.buf[m.header:] }

// Order returns the message byte order.
func (m *Message) Order() binary.ByteOrder { return m.order }

// HeaderSize returns the header size.
func (m *Message) HeaderSize() uint32 { return m.header }

// FixedSize returns the size of the fixed region.
func (m *Message) FixedSize() uint32 { return m.fixed }

// span bounds-checks an absolute range and returns it without copying.
func (m *Message) span(at, n uint32) ([]byte, error) {
	end, ok := abi.SafeAddU32(at, n)
	if !ok || uint64(end) > uint64(len(m.buf)) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, at, n, len(m.buf))
	}
	return m.buf[at:end], nil
}

// pair reads the offset+length pair stored at the absolute position at.
func (m *Message) pair(at uint32) (offset, length uint32, err error) {
	b, err := m.span(at, abi.PairSize)
	if err != nil {
		return 0, 0, err
	}
	return m.order.Uint32(b), m.order.Uint32(b[4:]), nil
}

// locate resolves a body-relative pair into an absolute position. An empty
// pair is always valid; otherwise the range must lie in the body and must not
// start inside the fixed region.
func (m *Message) locate(offset, length uint32) (uint32, error) {
	if length == 0 {
		return 0, nil
	}
	body := uint64(len(m.buf)) - uint64(m.header)
	if offset < m.fixed || uint64(offset)+uint64(length) > body {
		return 0, errors.OutOfBounds(errors.PhaseDecode, nil, offset, length, int(body))
	}
	return m.header + offset, nil
}

// payload resolves the pair stored at at and returns the referenced bytes
// without copying.
func (m *Message) payload(at uint32) ([]byte, error) {
	offset, length, err := m.pair(at)
	if err != nil {
		return nil, err
	}
	abs, err := m.locate(offset, length)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return nil, nil
	}
	return m.buf[abs : abs+length], nil
}

// elements resolves the pair at at as a sub-region of count elements of
// elemSize bytes and returns the absolute position of the first element.
// The count is checked against the bytes the pair covers before any
// allocation happens.
func (m *Message) elements(at, count, elemSize uint32) (uint32, error) {
	if count > abi.MaxArrayLength {
		return 0, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Value(count).
			Detail("element count %d exceeds maximum %d", count, abi.MaxArrayLength).
			Build()
	}

	offset, length, err := m.pair(at)
	if err != nil {
		return 0, err
	}
	need, ok := abi.SafeMulU32(count, elemSize)
	if !ok || need > length {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Value(count).
			Detail("element count %d inconsistent with %d available bytes", count, length).
			Build()
	}
	return m.locate(offset, length)
}
