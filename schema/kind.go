package schema

// Kind is a field's type tag.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindI32
	KindI64
	KindString
	KindStringArray
	KindByteArray
	KindRefByteArray
	KindU32Array
	KindStruct
	KindStructArray
)

var kindNames = [...]string{
	KindU8:           "u8",
	KindU16:          "u16",
	KindU32:          "u32",
	KindU64:          "u64",
	KindI32:          "i32",
	KindI64:          "i64",
	KindString:       "string",
	KindStringArray:  "string-array",
	KindByteArray:    "byte-array",
	KindRefByteArray: "ref-byte-array",
	KindU32Array:     "u32-array",
	KindStruct:       "struct",
	KindStructArray:  "struct-array",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a schema type tag to its Kind.
func ParseKind(tag string) (Kind, bool) {
	for k, name := range kindNames {
		if name == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsScalar reports whether the kind is stored inline as one integer.
func (k Kind) IsScalar() bool {
	return k <= KindI64
}

// IsArray reports whether the kind takes its element count from a size field.
func (k Kind) IsArray() bool {
	switch k {
	case KindStringArray, KindU32Array, KindStructArray:
		return true
	default:
		return false
	}
}

// ScalarSize returns the width in bytes of a scalar kind, 0 otherwise.
func (k Kind) ScalarSize() uint32 {
	switch k {
	case KindU8:
		return 1
	case KindU16:
		return 2
	case KindU32, KindI32:
		return 4
	case KindU64, KindI64:
		return 8
	default:
		return 0
	}
}

// CanSize reports whether a scalar of this kind may hold an array count.
func (k Kind) CanSize() bool {
	return k == KindU8 || k == KindU16 || k == KindU32
}
