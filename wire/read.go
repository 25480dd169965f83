package wire

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
)

func ReadU8(m *Message, at uint32) (uint8, error) {
	b, err := m.span(at, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func ReadU16(m *Message, at uint32) (uint16, error) {
	b, err := m.span(at, 2)
	if err != nil {
		return 0, err
	}
	return m.order.Uint16(b), nil
}

func ReadU32(m *Message, at uint32) (uint32, error) {
	b, err := m.span(at, 4)
	if err != nil {
		return 0, err
	}
	return m.order.Uint32(b), nil
}

func ReadU64(m *Message, at uint32) (uint64, error) {
	b, err := m.span(at, 8)
	if err != nil {
		return 0, err
	}
	return m.order.Uint64(b), nil
}

func ReadI32(m *Message, at uint32) (int32, error) {
	v, err := ReadU32(m, at)
	return int32(v), err
}

func ReadI64(m *Message, at uint32) (int64, error) {
	v, err := ReadU64(m, at)
	return int64(v), err
}

// ReadString decodes the UTF-8 string referenced by the pair at at. The
// result is a copy and never aliases the message buffer.
func ReadString(m *Message, at uint32) (string, error) {
	data, err := m.payload(at)
	if err != nil {
		return "", err
	}
	return decodeUTF8(data)
}

// ReadStringUTF16 decodes a UTF-16 string in the message byte order.
func ReadStringUTF16(m *Message, at uint32) (string, error) {
	data, err := m.payload(at)
	if err != nil {
		return "", err
	}
	return decodeUTF16(m, data)
}

// ReadStringArray decodes count UTF-8 strings. The pair at at locates count
// element pairs, each of which locates one string.
func ReadStringArray(m *Message, at, count uint32) ([]string, error) {
	return readStrings(m, at, count, ReadString)
}

// ReadStringArrayUTF16 is ReadStringArray for UTF-16 payloads.
func ReadStringArrayUTF16(m *Message, at, count uint32) ([]string, error) {
	return readStrings(m, at, count, ReadStringUTF16)
}

func readStrings(m *Message, at, count uint32, read func(*Message, uint32) (string, error)) ([]string, error) {
	base, err := m.elements(at, count, abi.PairSize)
	if err != nil {
		return nil, err
	}

	out := make([]string, count)
	for i := uint32(0); i < count; i++ {
		s, err := read(m, base+i*abi.PairSize)
		if err != nil {
			return nil, element(err, i)
		}
		out[i] = s
	}
	return out, nil
}

// ReadBytes returns a copy of the payload referenced by the pair at at.
func ReadBytes(m *Message, at uint32) ([]byte, error) {
	data, err := m.payload(at)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ReadFixedBytes returns a copy of the n bytes stored inline at at.
func ReadFixedBytes(m *Message, at, n uint32) ([]byte, error) {
	data, err := m.span(at, n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, data)
	return out, nil
}

// ReadU32Array decodes count uint32 values stored contiguously in the
// region referenced by the pair at at.
func ReadU32Array(m *Message, at, count uint32) ([]uint32, error) {
	base, err := m.elements(at, count, 4)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i := uint32(0); i < count; i++ {
		out[i] = m.order.Uint32(m.buf[base+i*4:])
	}
	return out, nil
}

// ReadStructArray decodes count records. The pair at at locates count element
// pairs; each element pair locates a record body of at least size bytes,
// which read decodes from its absolute position.
func ReadStructArray[T any](m *Message, at, count, size uint32, read func(*Message, uint32) (T, error)) ([]T, error) {
	base, err := m.elements(at, count, abi.PairSize)
	if err != nil {
		return nil, err
	}

	out := make([]T, count)
	for i := uint32(0); i < count; i++ {
		offset, length, err := m.pair(base + i*abi.PairSize)
		if err != nil {
			return nil, element(err, i)
		}
		if length < size {
			return nil, element(errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Value(length).
				Detail("record of %d bytes is shorter than its %d byte fixed size", length, size).
				Build(), i)
		}
		abs, err := m.locate(offset, length)
		if err != nil {
			return nil, element(err, i)
		}
		v, err := read(m, abs)
		if err != nil {
			return nil, element(err, i)
		}
		out[i] = v
	}
	return out, nil
}

func decodeUTF8(data []byte) (string, error) {
	if len(data) > abi.MaxStringSize {
		return "", errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("string size %d exceeds maximum %d", len(data), abi.MaxStringSize).
			Build()
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, nil, data)
	}
	return string(data), nil
}

func decodeUTF16(m *Message, data []byte) (string, error) {
	if len(data) > abi.MaxStringSize {
		return "", errors.New(errors.PhaseDecode, errors.KindOverflow).
			Detail("string size %d exceeds maximum %d", len(data), abi.MaxStringSize).
			Build()
	}
	if len(data)%2 != 0 {
		return "", errors.InvalidData(errors.PhaseDecode, nil, fmt.Sprintf("UTF-16 payload has odd length %d", len(data)))
	}
	if len(data) == 0 {
		return "", nil
	}
	out, err := utf16Encoding(m.order).NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode UTF-16 payload")
	}
	return string(out), nil
}

func utf16Encoding(order binary.ByteOrder) encoding.Encoding {
	if order == BigEndian {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}
