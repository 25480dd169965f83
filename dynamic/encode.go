package dynamic

import (
	"fmt"
	"math"
	"sort"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
	"github.com/wippyai/msggen/wire"
)

// Encode builds msg from values keyed by field name. Missing fields are left
// zero, and size fields are filled from the length of their arrays. A size
// field given explicitly must match its array's length. Scalars accept any
// Go integer type, and float64 with an integral value as decoded from JSON.
func Encode(msg *schema.Message, s *schema.Schema, values map[string]any) ([]byte, error) {
	if msg == nil || s == nil {
		return nil, errors.InvalidInput(errors.PhaseEncode, "nil message or schema")
	}
	b := wire.NewBuilder(s.Endian.Order(), msg.HeaderSize, msg.FixedSize)
	e := encoder{b: b, utf16: s.Encoding == schema.EncodingUTF16LE}
	if err := e.fields(msg.Fields, 0, values); err != nil {
		return nil, wire.WithPath(err, msg.Name)
	}
	return b.Bytes(), nil
}

type encoder struct {
	b     *wire.Builder
	utf16 bool
}

func (e encoder) fields(fields []schema.Field, base uint32, values map[string]any) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name()] = true
	}
	var unknown []string
	for name := range values {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.NotFound(errors.PhaseEncode, []string{unknown[0]}, "field", unknown[0])
	}

	for _, f := range fields {
		v, ok := values[f.Name()]
		if !ok {
			continue
		}
		n, err := e.field(f, base+f.Offset, v)
		if err != nil {
			return wire.WithPath(err, f.Name())
		}
		if f.SizeField < 0 {
			continue
		}

		sf := fields[f.SizeField]
		if given, ok := values[sf.Name()]; ok {
			if c, err := toUint(given, sf.WireSize()*8); err != nil || c != uint64(n) {
				return errors.New(errors.PhaseEncode, errors.KindInvalidData).
					Path(sf.Name()).
					Value(given).
					Detail("size field %q is %v but %q has %d elements", sf.Name(), given, f.Name(), n).
					Build()
			}
		}
		if err := wire.PutCount(e.b, base+sf.Offset, sf.WireSize(), n); err != nil {
			return wire.WithPath(err, sf.Name())
		}
	}
	return nil
}

// field encodes one value and returns the element count for arrays.
func (e encoder) field(f schema.Field, at uint32, v any) (int, error) {
	b := e.b
	switch desc := f.Descriptor.(type) {
	case *schema.Scalar:
		bits := desc.WireSize() * 8
		if desc.Kind() == schema.KindI32 || desc.Kind() == schema.KindI64 {
			n, err := toInt(v, bits)
			if err != nil {
				return 0, err
			}
			if bits == 32 {
				return 0, wire.PutI32(b, at, int32(n))
			}
			return 0, wire.PutI64(b, at, n)
		}
		n, err := toUint(v, bits)
		if err != nil {
			return 0, err
		}
		switch bits {
		case 8:
			return 0, wire.PutU8(b, at, uint8(n))
		case 16:
			return 0, wire.PutU16(b, at, uint16(n))
		case 32:
			return 0, wire.PutU32(b, at, uint32(n))
		default:
			return 0, wire.PutU64(b, at, n)
		}

	case *schema.String:
		s, ok := v.(string)
		if !ok {
			return 0, mismatch(v, f)
		}
		if e.utf16 {
			return 0, wire.PutStringUTF16(b, at, s)
		}
		return 0, wire.PutString(b, at, s)

	case *schema.StringArray:
		list, err := toStrings(v, f)
		if err != nil {
			return 0, err
		}
		if e.utf16 {
			return len(list), wire.PutStringArrayUTF16(b, at, list)
		}
		return len(list), wire.PutStringArray(b, at, list)

	case *schema.ByteArray:
		data, ok := v.([]byte)
		if !ok {
			return 0, mismatch(v, f)
		}
		return 0, wire.PutFixedBytes(b, at, data, desc.Size())

	case *schema.RefByteArray:
		data, ok := v.([]byte)
		if !ok {
			return 0, mismatch(v, f)
		}
		return 0, wire.PutBytes(b, at, data)

	case *schema.U32Array:
		list, err := toU32s(v, f)
		if err != nil {
			return 0, err
		}
		return len(list), wire.PutU32Array(b, at, list)

	case *schema.Struct:
		fields, err := toMap(v, f)
		if err != nil {
			return 0, err
		}
		return 0, e.fields(desc.StructType().Fields, at, fields)

	case *schema.StructArray:
		list, err := toMaps(v, f)
		if err != nil {
			return 0, err
		}
		st := desc.StructType()
		return len(list), wire.PutStructArray(b, at, list, st.Size, func(b *wire.Builder, abs uint32, fields *map[string]any) error {
			return encoder{b: b, utf16: e.utf16}.fields(st.Fields, abs, *fields)
		})
	}

	return 0, errors.Unsupported(errors.PhaseEncode, "field type "+f.Kind().String())
}

func mismatch(v any, f schema.Field) error {
	return errors.TypeMismatch(errors.PhaseEncode, nil, fmt.Sprintf("%T", v), f.Kind().String())
}

func toUint(v any, bits uint32) (uint64, error) {
	var n uint64
	switch x := v.(type) {
	case uint8:
		n = uint64(x)
	case uint16:
		n = uint64(x)
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	case uint:
		n = uint64(x)
	case int, int8, int16, int32, int64:
		i, _ := toInt(x, 64)
		if i < 0 {
			return 0, errors.Overflow(errors.PhaseEncode, nil, v, fmt.Sprintf("u%d", bits))
		}
		n = uint64(i)
	case float64:
		if x < 0 || x != math.Trunc(x) || x >= 1<<64 {
			return 0, errors.Overflow(errors.PhaseEncode, nil, v, fmt.Sprintf("u%d", bits))
		}
		n = uint64(x)
	default:
		return 0, errors.TypeMismatch(errors.PhaseEncode, nil, fmt.Sprintf("%T", v), fmt.Sprintf("u%d", bits))
	}
	if bits < 64 && n > 1<<bits-1 {
		return 0, errors.Overflow(errors.PhaseEncode, nil, v, fmt.Sprintf("u%d", bits))
	}
	return n, nil
}

func toInt(v any, bits uint32) (int64, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, errors.Overflow(errors.PhaseEncode, nil, v, fmt.Sprintf("i%d", bits))
		}
		n = int64(x)
	default:
		return 0, errors.TypeMismatch(errors.PhaseEncode, nil, fmt.Sprintf("%T", v), fmt.Sprintf("i%d", bits))
	}
	if bits == 32 && (n < math.MinInt32 || n > math.MaxInt32) {
		return 0, errors.Overflow(errors.PhaseEncode, nil, v, "i32")
	}
	return n, nil
}

func toStrings(v any, f schema.Field) ([]string, error) {
	switch x := v.(type) {
	case []string:
		return x, nil
	case []any:
		out := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, wire.WithPath(mismatch(e, f), fmt.Sprintf("[%d]", i))
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, mismatch(v, f)
}

func toU32s(v any, f schema.Field) ([]uint32, error) {
	switch x := v.(type) {
	case []uint32:
		return x, nil
	case []any:
		out := make([]uint32, len(x))
		for i, e := range x {
			n, err := toUint(e, 32)
			if err != nil {
				return nil, wire.WithPath(err, fmt.Sprintf("[%d]", i))
			}
			out[i] = uint32(n)
		}
		return out, nil
	}
	return nil, mismatch(v, f)
}

func toMap(v any, f schema.Field) (map[string]any, error) {
	switch x := v.(type) {
	case map[string]any:
		return x, nil
	case Record:
		return x.Map(), nil
	}
	return nil, mismatch(v, f)
}

func toMaps(v any, f schema.Field) ([]map[string]any, error) {
	switch x := v.(type) {
	case []map[string]any:
		return x, nil
	case []Record:
		out := make([]map[string]any, len(x))
		for i, r := range x {
			out[i] = r.Map()
		}
		return out, nil
	case []any:
		out := make([]map[string]any, len(x))
		for i, e := range x {
			m, err := toMap(e, f)
			if err != nil {
				return nil, wire.WithPath(err, fmt.Sprintf("[%d]", i))
			}
			out[i] = m
		}
		return out, nil
	}
	return nil, mismatch(v, f)
}
