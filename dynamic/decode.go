package dynamic

import (
	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
	"github.com/wippyai/msggen/wire"
)

// Decode reads every field of msg from buf, walking the schema with the
// same readers generated accessors call.
func Decode(msg *schema.Message, s *schema.Schema, buf []byte) (Record, error) {
	if msg == nil || s == nil {
		return Record{}, errors.InvalidInput(errors.PhaseDecode, "nil message or schema")
	}
	m, err := wire.NewMessage(buf, s.Endian.Order(), msg.HeaderSize, msg.FixedSize)
	if err != nil {
		return Record{}, wire.WithPath(err, msg.Name)
	}
	d := decoder{m: m, utf16: s.Encoding == schema.EncodingUTF16LE}
	r, err := d.fields(msg.Name, msg.Fields, 0)
	if err != nil {
		return Record{}, wire.WithPath(err, msg.Name)
	}
	return r, nil
}

type decoder struct {
	m     *wire.Message
	utf16 bool
}

// fields decodes a field list whose offsets are relative to base.
func (d decoder) fields(name string, fields []schema.Field, base uint32) (Record, error) {
	r := Record{Name: name, Fields: make([]Value, len(fields))}
	for i, f := range fields {
		var count uint32
		if f.SizeField >= 0 {
			count = countOf(r.Fields[f.SizeField].Value)
		}
		v, err := d.field(f, base+f.Offset, count)
		if err != nil {
			return Record{}, wire.WithPath(err, f.Name())
		}
		r.Fields[i] = Value{Name: f.Name(), Kind: f.Kind(), Value: v}
	}
	return r, nil
}

func (d decoder) field(f schema.Field, at, count uint32) (any, error) {
	m := d.m
	switch desc := f.Descriptor.(type) {
	case *schema.Scalar:
		switch desc.Kind() {
		case schema.KindU8:
			return wire.ReadU8(m, at)
		case schema.KindU16:
			return wire.ReadU16(m, at)
		case schema.KindU32:
			return wire.ReadU32(m, at)
		case schema.KindU64:
			return wire.ReadU64(m, at)
		case schema.KindI32:
			return wire.ReadI32(m, at)
		case schema.KindI64:
			return wire.ReadI64(m, at)
		}

	case *schema.String:
		if d.utf16 {
			return wire.ReadStringUTF16(m, at)
		}
		return wire.ReadString(m, at)

	case *schema.StringArray:
		if d.utf16 {
			return wire.ReadStringArrayUTF16(m, at, count)
		}
		return wire.ReadStringArray(m, at, count)

	case *schema.ByteArray:
		return wire.ReadFixedBytes(m, at, desc.Size())

	case *schema.RefByteArray:
		return wire.ReadBytes(m, at)

	case *schema.U32Array:
		return wire.ReadU32Array(m, at, count)

	case *schema.Struct:
		st := desc.StructType()
		return d.fields(st.Name, st.Fields, at)

	case *schema.StructArray:
		st := desc.StructType()
		return wire.ReadStructArray(m, at, count, st.Size, func(_ *wire.Message, abs uint32) (Record, error) {
			return d.fields(st.Name, st.Fields, abs)
		})
	}

	return nil, errors.Unsupported(errors.PhaseDecode, "field type "+f.Kind().String())
}

func countOf(v any) uint32 {
	switch n := v.(type) {
	case uint8:
		return uint32(n)
	case uint16:
		return uint32(n)
	case uint32:
		return n
	}
	return 0
}
