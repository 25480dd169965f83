package wire

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
)

// Builder assembles a message. It starts with a zeroed header and fixed
// region; Put functions fill slots and append payloads to the trailing
// region, each padded to a 4-byte boundary relative to the body.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	buf    []byte
	order  binary.ByteOrder
	header uint32
	fixed  uint32
}

// NewBuilder allocates a builder for a message with the given header and
// fixed region sizes.
func NewBuilder(order binary.ByteOrder, header, fixed uint32) *Builder {
	if order == nil {
		order = LittleEndian
	}
	return &Builder{
		buf:    make([]byte, header+fixed, header+fixed+64),
		order:  order,
		header: header,
		fixed:  fixed,
	}
}

// Bytes returns the encoded message. The slice is owned by the builder until
// the builder is discarded or reset.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the current message size.
func (b *Builder) Len() int { return len(b.buf) }

// Header returns the writable header bytes.
func (b *Builder) Header() []byte { return b.buf[:b.header] }

// Message wraps the bytes built so far for reading.
func (b *Builder) Message() (*Message, error) {
	return NewMessage(b.buf, b.order, b.header, b.fixed)
}

// Reset drops every payload and zeroes the header and fixed region.
func (b *Builder) Reset() {
	b.buf = b.buf[:b.header+b.fixed]
	clear(b.buf)
}

func (b *Builder) slot(at, n uint32) ([]byte, error) {
	end, ok := abi.SafeAddU32(at, n)
	if !ok || uint64(end) > uint64(len(b.buf)) {
		return nil, errors.OutOfBounds(errors.PhaseEncode, nil, at, n, len(b.buf))
	}
	return b.buf[at:end], nil
}

// reserve appends n zeroed bytes to the trailing region and returns their
// body-relative offset and absolute position.
func (b *Builder) reserve(n uint32) (offset, abs uint32, err error) {
	start := b.header + abi.AlignTo(uint32(len(b.buf))-b.header, abi.PayloadAlign)
	size := abi.AlignTo(n, abi.PayloadAlign)
	if uint64(start)+uint64(size) > abi.MaxMessageSize {
		return 0, 0, errors.New(errors.PhaseEncode, errors.KindOverflow).
			Value(uint64(start) + uint64(size)).
			Detail("message would exceed %d bytes", abi.MaxMessageSize).
			Build()
	}
	b.buf = append(b.buf, make([]byte, start+size-uint32(len(b.buf)))...)
	return start - b.header, start, nil
}

func (b *Builder) putPair(at, offset, length uint32) error {
	s, err := b.slot(at, abi.PairSize)
	if err != nil {
		return err
	}
	b.order.PutUint32(s, offset)
	b.order.PutUint32(s[4:], length)
	return nil
}

// putPayload appends data and points the pair at at to it. Empty data is
// stored as the pair (0, 0).
func (b *Builder) putPayload(at uint32, data []byte) error {
	if _, err := b.slot(at, abi.PairSize); err != nil {
		return err
	}
	if len(data) == 0 {
		return b.putPair(at, 0, 0)
	}
	offset, abs, err := b.reserve(uint32(len(data)))
	if err != nil {
		return err
	}
	copy(b.buf[abs:], data)
	return b.putPair(at, offset, uint32(len(data)))
}

func PutU8(b *Builder, at uint32, v uint8) error {
	s, err := b.slot(at, 1)
	if err != nil {
		return err
	}
	s[0] = v
	return nil
}

func PutU16(b *Builder, at uint32, v uint16) error {
	s, err := b.slot(at, 2)
	if err != nil {
		return err
	}
	b.order.PutUint16(s, v)
	return nil
}

func PutU32(b *Builder, at uint32, v uint32) error {
	s, err := b.slot(at, 4)
	if err != nil {
		return err
	}
	b.order.PutUint32(s, v)
	return nil
}

func PutU64(b *Builder, at uint32, v uint64) error {
	s, err := b.slot(at, 8)
	if err != nil {
		return err
	}
	b.order.PutUint64(s, v)
	return nil
}

func PutI32(b *Builder, at uint32, v int32) error {
	return PutU32(b, at, uint32(v))
}

func PutI64(b *Builder, at uint32, v int64) error {
	return PutU64(b, at, uint64(v))
}

// PutCount writes an element count into a size field of the given width,
// rejecting counts the field cannot hold.
func PutCount(b *Builder, at, width uint32, n int) error {
	if n < 0 || !abi.FitsWidth(uint64(n), width) {
		return errors.Overflow(errors.PhaseEncode, nil, n, fmt.Sprintf("u%d", width*8))
	}
	switch width {
	case 1:
		return PutU8(b, at, uint8(n))
	case 2:
		return PutU16(b, at, uint16(n))
	case 4:
		return PutU32(b, at, uint32(n))
	default:
		return PutU64(b, at, uint64(n))
	}
}

// PutString appends s as UTF-8 and stores its pair at at.
func PutString(b *Builder, at uint32, s string) error {
	if len(s) > abi.MaxStringSize {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Detail("string size %d exceeds maximum %d", len(s), abi.MaxStringSize).
			Build()
	}
	if !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
	}
	if s == "" {
		return b.putPayload(at, nil)
	}
	return b.putPayload(at, []byte(s))
}

// PutStringUTF16 appends s as UTF-16 in the message byte order.
func PutStringUTF16(b *Builder, at uint32, s string) error {
	if !utf8.ValidString(s) {
		return errors.InvalidUTF8(errors.PhaseEncode, nil, []byte(s))
	}
	if s == "" {
		return b.putPayload(at, nil)
	}
	data, err := utf16Encoding(b.order).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "encode UTF-16 payload")
	}
	if len(data) > abi.MaxStringSize {
		return errors.New(errors.PhaseEncode, errors.KindOverflow).
			Detail("string size %d exceeds maximum %d", len(data), abi.MaxStringSize).
			Build()
	}
	return b.putPayload(at, data)
}

// PutStringArray appends one element pair per string, then the strings, and
// stores the pair locating the element pairs at at.
func PutStringArray(b *Builder, at uint32, v []string) error {
	return putStrings(b, at, v, PutString)
}

// PutStringArrayUTF16 is PutStringArray for UTF-16 payloads.
func PutStringArrayUTF16(b *Builder, at uint32, v []string) error {
	return putStrings(b, at, v, PutStringUTF16)
}

func putStrings(b *Builder, at uint32, v []string, put func(*Builder, uint32, string) error) error {
	base, err := b.elements(at, len(v), abi.PairSize)
	if err != nil {
		return err
	}
	for i, s := range v {
		if err := put(b, base+uint32(i)*abi.PairSize, s); err != nil {
			return element(err, uint32(i))
		}
	}
	return nil
}

// PutBytes appends v and stores its pair at at.
func PutBytes(b *Builder, at uint32, v []byte) error {
	return b.putPayload(at, v)
}

// PutFixedBytes copies exactly n bytes inline at at.
func PutFixedBytes(b *Builder, at uint32, v []byte, n uint32) error {
	if uint32(len(v)) != n {
		return errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Value(len(v)).
			Detail("got %d bytes, want exactly %d", len(v), n).
			Build()
	}
	s, err := b.slot(at, n)
	if err != nil {
		return err
	}
	copy(s, v)
	return nil
}

// PutU32Array appends v contiguously and stores its pair at at.
func PutU32Array(b *Builder, at uint32, v []uint32) error {
	base, err := b.elements(at, len(v), 4)
	if err != nil {
		return err
	}
	for i, x := range v {
		b.order.PutUint32(b.buf[base+uint32(i)*4:], x)
	}
	return nil
}

// PutStructArray appends one element pair per record followed by the record
// bodies, each size bytes, and calls write to fill each body at its absolute
// position.
func PutStructArray[T any](b *Builder, at uint32, v []T, size uint32, write func(*Builder, uint32, *T) error) error {
	base, err := b.elements(at, len(v), abi.PairSize)
	if err != nil {
		return err
	}
	for i := range v {
		offset, abs, err := b.reserve(size)
		if err != nil {
			return element(err, uint32(i))
		}
		if err := b.putPair(base+uint32(i)*abi.PairSize, offset, size); err != nil {
			return element(err, uint32(i))
		}
		if err := write(b, abs, &v[i]); err != nil {
			return element(err, uint32(i))
		}
	}
	return nil
}

// elements reserves a zeroed sub-region for n elements of elemSize bytes,
// stores its pair at at and returns the absolute position of the first
// element. An empty array is stored as the pair (0, 0).
func (b *Builder) elements(at uint32, n int, elemSize uint32) (uint32, error) {
	if _, err := b.slot(at, abi.PairSize); err != nil {
		return 0, err
	}
	if n > abi.MaxArrayLength {
		return 0, errors.New(errors.PhaseEncode, errors.KindOverflow).
			Value(n).
			Detail("element count %d exceeds maximum %d", n, abi.MaxArrayLength).
			Build()
	}
	if n == 0 {
		return 0, b.putPair(at, 0, 0)
	}
	length := uint32(n) * elemSize
	offset, abs, err := b.reserve(length)
	if err != nil {
		return 0, err
	}
	return abs, b.putPair(at, offset, length)
}
