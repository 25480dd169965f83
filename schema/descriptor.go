package schema

import (
	"fmt"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
)

// Shape is a Go parameter type together with the documentation that goes
// with it in generated code.
type Shape struct {
	GoType string
	Doc    string
}

// Descriptor describes how one field is declared, documented, sized and read.
// The variant set is closed: Scalar, String, StringArray, ByteArray,
// RefByteArray, U32Array, Struct and StructArray.
type Descriptor interface {
	Name() string
	Kind() Kind
	Doc() string

	// Public is the field's type in generated struct fields.
	Public() Shape
	// Input is the setter parameter.
	Input() Shape
	// Output is the getter out parameter; it is always a pointer.
	Output() Shape

	// WireSize is the number of bytes the field takes in the fixed region.
	WireSize() uint32
	IsArray() bool

	// Reader names the runtime function that decodes the field.
	Reader() string
	// Writer names the runtime function that encodes the field.
	Writer() string

	descriptor()
}

// ArrayDescriptor is implemented by variants whose element count comes from
// an earlier size field.
type ArrayDescriptor interface {
	Descriptor
	// ElementSize is the size of one element slot in the sub-region. The
	// runtime reader named by Reader is written for exactly this width.
	ElementSize() uint32
	// SizeFieldName is the name of the scalar holding the element count.
	SizeFieldName() string
}

type base struct {
	name string
	doc  string
	kind Kind
}

func (b *base) Name() string  { return b.name }
func (b *base) Kind() Kind    { return b.kind }
func (b *base) Doc() string   { return b.doc }
func (b *base) IsArray() bool { return b.kind.IsArray() }
func (*base) descriptor()     {}

// Scalar is a fixed-width integer stored inline.
type Scalar struct {
	base
}

var scalarTypes = map[Kind]string{
	KindU8:  "uint8",
	KindU16: "uint16",
	KindU32: "uint32",
	KindU64: "uint64",
	KindI32: "int32",
	KindI64: "int64",
}

var scalarFuncs = map[Kind]string{
	KindU8:  "U8",
	KindU16: "U16",
	KindU32: "U32",
	KindU64: "U64",
	KindI32: "I32",
	KindI64: "I64",
}

func (s *Scalar) Public() Shape {
	return Shape{GoType: scalarTypes[s.kind], Doc: s.doc}
}

func (s *Scalar) Input() Shape {
	return Shape{GoType: scalarTypes[s.kind], Doc: fmt.Sprintf("The '%s' field.", s.name)}
}

func (s *Scalar) Output() Shape {
	return Shape{
		GoType: "*" + scalarTypes[s.kind],
		Doc:    fmt.Sprintf("Return location for the '%s' field, or nil if it is not needed.", s.name),
	}
}

func (s *Scalar) WireSize() uint32 { return s.kind.ScalarSize() }
func (s *Scalar) Reader() string   { return "wire.Read" + scalarFuncs[s.kind] }
func (s *Scalar) Writer() string   { return "wire.Put" + scalarFuncs[s.kind] }

// String is a text field referenced through an offset+length pair.
type String struct {
	base
	encoding Encoding
}

func (s *String) Public() Shape {
	return Shape{GoType: "string", Doc: s.doc}
}

func (s *String) Input() Shape {
	return Shape{GoType: "string", Doc: fmt.Sprintf("The '%s' field, given as a constant string.", s.name)}
}

func (s *String) Output() Shape {
	return Shape{
		GoType: "*string",
		Doc: fmt.Sprintf("Return location for a newly allocated string, or nil if the '%s' field is not needed. "+
			"The caller owns the returned value.", s.name),
	}
}

func (s *String) WireSize() uint32 { return abi.PairSize }

func (s *String) Reader() string {
	if s.encoding == EncodingUTF16LE {
		return "wire.ReadStringUTF16"
	}
	return "wire.ReadString"
}

func (s *String) Writer() string {
	if s.encoding == EncodingUTF16LE {
		return "wire.PutStringUTF16"
	}
	return "wire.PutString"
}

// StringArray is a list of strings: the field's pair locates N element
// pairs, each of which locates one string.
type StringArray struct {
	base
	sizeField string
	encoding  Encoding
}

func (s *StringArray) Public() Shape {
	return Shape{GoType: "[]string", Doc: s.doc}
}

func (s *StringArray) Input() Shape {
	return Shape{GoType: "[]string", Doc: fmt.Sprintf("The '%s' field, given as an array of strings.", s.name)}
}

func (s *StringArray) Output() Shape {
	return Shape{
		GoType: "*[]string",
		Doc: fmt.Sprintf("Return location for a newly allocated array of strings, or nil if the '%s' field is not needed. "+
			"The caller owns the returned array and each string it contains.", s.name),
	}
}

func (s *StringArray) WireSize() uint32      { return abi.PairSize }
func (s *StringArray) ElementSize() uint32   { return abi.PairSize }
func (s *StringArray) SizeFieldName() string { return s.sizeField }

func (s *StringArray) Reader() string {
	if s.encoding == EncodingUTF16LE {
		return "wire.ReadStringArrayUTF16"
	}
	return "wire.ReadStringArray"
}

func (s *StringArray) Writer() string {
	if s.encoding == EncodingUTF16LE {
		return "wire.PutStringArrayUTF16"
	}
	return "wire.PutStringArray"
}

// ByteArray is a fixed number of bytes stored inline.
type ByteArray struct {
	base
	size uint32
}

// Size is the inline byte count.
func (s *ByteArray) Size() uint32 { return s.size }

func (s *ByteArray) Public() Shape {
	return Shape{GoType: "[]byte", Doc: s.doc}
}

func (s *ByteArray) Input() Shape {
	return Shape{GoType: "[]byte", Doc: fmt.Sprintf("The '%s' field, given as exactly %d bytes.", s.name, s.size)}
}

func (s *ByteArray) Output() Shape {
	return Shape{
		GoType: "*[]byte",
		Doc: fmt.Sprintf("Return location for a newly allocated copy of the %d bytes of the '%s' field, or nil if it is not needed. "+
			"The caller owns the returned slice.", s.size, s.name),
	}
}

func (s *ByteArray) WireSize() uint32 { return s.size }
func (s *ByteArray) Reader() string   { return "wire.ReadFixedBytes" }
func (s *ByteArray) Writer() string   { return "wire.PutFixedBytes" }

// RefByteArray is a variable-length byte payload referenced through a pair.
type RefByteArray struct {
	base
}

func (s *RefByteArray) Public() Shape {
	return Shape{GoType: "[]byte", Doc: s.doc}
}

func (s *RefByteArray) Input() Shape {
	return Shape{GoType: "[]byte", Doc: fmt.Sprintf("The '%s' field, given as a byte slice.", s.name)}
}

func (s *RefByteArray) Output() Shape {
	return Shape{
		GoType: "*[]byte",
		Doc: fmt.Sprintf("Return location for a newly allocated byte slice, or nil if the '%s' field is not needed. "+
			"The caller owns the returned slice.", s.name),
	}
}

func (s *RefByteArray) WireSize() uint32 { return abi.PairSize }
func (s *RefByteArray) Reader() string   { return "wire.ReadBytes" }
func (s *RefByteArray) Writer() string   { return "wire.PutBytes" }

// U32Array is a list of uint32 values stored contiguously in the trailing
// region.
type U32Array struct {
	base
	sizeField string
}

func (s *U32Array) Public() Shape {
	return Shape{GoType: "[]uint32", Doc: s.doc}
}

func (s *U32Array) Input() Shape {
	return Shape{GoType: "[]uint32", Doc: fmt.Sprintf("The '%s' field, given as an array of uint32 values.", s.name)}
}

func (s *U32Array) Output() Shape {
	return Shape{
		GoType: "*[]uint32",
		Doc: fmt.Sprintf("Return location for a newly allocated array of uint32 values, or nil if the '%s' field is not needed. "+
			"The caller owns the returned array.", s.name),
	}
}

func (s *U32Array) WireSize() uint32      { return abi.PairSize }
func (s *U32Array) ElementSize() uint32   { return 4 }
func (s *U32Array) SizeFieldName() string { return s.sizeField }
func (s *U32Array) Reader() string        { return "wire.ReadU32Array" }
func (s *U32Array) Writer() string        { return "wire.PutU32Array" }

// Struct is a nested record stored inline.
type Struct struct {
	base
	structType *StructType
}

// StructType returns the nested record's type.
func (s *Struct) StructType() *StructType { return s.structType }

func (s *Struct) Public() Shape {
	return Shape{GoType: s.structType.GoName, Doc: s.doc}
}

func (s *Struct) Input() Shape {
	return Shape{
		GoType: s.structType.GoName,
		Doc:    fmt.Sprintf("The '%s' field, given as a %s value.", s.name, s.structType.GoName),
	}
}

func (s *Struct) Output() Shape {
	return Shape{
		GoType: "*" + s.structType.GoName,
		Doc: fmt.Sprintf("Return location for the '%s' field, or nil if it is not needed. "+
			"The caller owns every string and slice it contains.", s.name),
	}
}

func (s *Struct) WireSize() uint32 { return s.structType.Size }
func (s *Struct) Reader() string   { return "read" + s.structType.GoName }
func (s *Struct) Writer() string   { return "write" + s.structType.GoName }

// StructArray is a list of records: the field's pair locates N element
// pairs, each of which locates one record body.
type StructArray struct {
	base
	sizeField  string
	structType *StructType
}

// StructType returns the element type.
func (s *StructArray) StructType() *StructType { return s.structType }

func (s *StructArray) Public() Shape {
	return Shape{GoType: "[]" + s.structType.GoName, Doc: s.doc}
}

func (s *StructArray) Input() Shape {
	return Shape{
		GoType: "[]" + s.structType.GoName,
		Doc:    fmt.Sprintf("The '%s' field, given as an array of %s values.", s.name, s.structType.GoName),
	}
}

func (s *StructArray) Output() Shape {
	return Shape{
		GoType: "*[]" + s.structType.GoName,
		Doc: fmt.Sprintf("Return location for a newly allocated array of %s values, or nil if the '%s' field is not needed. "+
			"The caller owns the returned array and everything it contains.", s.structType.GoName, s.name),
	}
}

func (s *StructArray) WireSize() uint32      { return abi.PairSize }
func (s *StructArray) ElementSize() uint32   { return abi.PairSize }
func (s *StructArray) SizeFieldName() string { return s.sizeField }
func (s *StructArray) Reader() string        { return "wire.ReadStructArray" }
func (s *StructArray) Writer() string        { return "wire.PutStructArray" }

// NewDescriptor constructs the descriptor for one field spec. Keys required
// by the chosen variant are checked here; references to other fields are
// resolved later by Build.
func NewDescriptor(spec FieldSpec, opts Options) (Descriptor, error) {
	if spec.Name == "" {
		return nil, errors.FieldMissing(errors.PhaseSchema, nil, "name")
	}
	path := []string{spec.Name}
	if !validName(spec.Name) {
		return nil, errors.New(errors.PhaseSchema, errors.KindInvalidInput).
			Path(path...).
			Detail("name %q must start with a letter and contain only letters, digits, '-' and '_'", spec.Name).
			Build()
	}
	if spec.Type == "" {
		return nil, errors.FieldMissing(errors.PhaseSchema, path, "type")
	}

	kind, ok := ParseKind(spec.Type)
	if !ok {
		return nil, errors.New(errors.PhaseSchema, errors.KindUnsupported).
			Path(path...).
			WireType(spec.Type).
			Detail("unknown type tag %q", spec.Type).
			Build()
	}

	if err := checkKeys(spec, kind, path); err != nil {
		return nil, err
	}

	b := base{name: spec.Name, doc: spec.Doc, kind: kind}
	if kind.IsScalar() {
		return &Scalar{base: b}, nil
	}

	switch kind {
	case KindString:
		return &String{base: b, encoding: opts.Encoding}, nil

	case KindStringArray:
		return &StringArray{base: b, sizeField: spec.ArraySizeField, encoding: opts.Encoding}, nil

	case KindByteArray:
		return &ByteArray{base: b, size: spec.ArraySize}, nil

	case KindRefByteArray:
		return &RefByteArray{base: b}, nil

	case KindU32Array:
		return &U32Array{base: b, sizeField: spec.ArraySizeField}, nil

	case KindStruct, KindStructArray:
		st, ok := opts.Structs[spec.StructType]
		if !ok {
			return nil, errors.NotFound(errors.PhaseSchema, path, "struct type", spec.StructType)
		}
		if kind == KindStruct {
			return &Struct{base: b, structType: st}, nil
		}
		return &StructArray{base: b, sizeField: spec.ArraySizeField, structType: st}, nil
	}

	return nil, errors.Unsupported(errors.PhaseSchema, "type tag "+spec.Type)
}

// checkKeys rejects missing variant keys and keys that do not apply.
func checkKeys(spec FieldSpec, kind Kind, path []string) error {
	if kind.IsArray() {
		if spec.ArraySizeField == "" {
			return errors.FieldMissing(errors.PhaseSchema, path, "array-size-field")
		}
	} else if spec.ArraySizeField != "" {
		return notApplicable(path, "array-size-field", kind)
	}

	if kind == KindByteArray {
		if spec.ArraySize == 0 {
			return errors.FieldMissing(errors.PhaseSchema, path, "array-size")
		}
		if spec.ArraySize > abi.MaxFixedRegion {
			return errors.Overflow(errors.PhaseSchema, path, spec.ArraySize, "fixed region")
		}
	} else if spec.ArraySize != 0 {
		return notApplicable(path, "array-size", kind)
	}

	if kind == KindStruct || kind == KindStructArray {
		if spec.StructType == "" {
			return errors.FieldMissing(errors.PhaseSchema, path, "struct-type")
		}
	} else if spec.StructType != "" {
		return notApplicable(path, "struct-type", kind)
	}

	return nil
}

func notApplicable(path []string, key string, kind Kind) error {
	return errors.New(errors.PhaseSchema, errors.KindInvalidInput).
		Path(path...).
		WireType(kind.String()).
		Detail("key %q does not apply to type %q", key, kind).
		Build()
}

func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return name != ""
}
