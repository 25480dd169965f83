package schema

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"u8", KindU8},
		{"u16", KindU16},
		{"u32", KindU32},
		{"u64", KindU64},
		{"i32", KindI32},
		{"i64", KindI64},
		{"string", KindString},
		{"string-array", KindStringArray},
		{"byte-array", KindByteArray},
		{"ref-byte-array", KindRefByteArray},
		{"u32-array", KindU32Array},
		{"struct", KindStruct},
		{"struct-array", KindStructArray},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if tc.want == "unknown" {
				return
			}
			k, ok := ParseKind(tc.want)
			if !ok || k != tc.kind {
				t.Errorf("ParseKind(%q) = %v/%v, want %v", tc.want, k, ok, tc.kind)
			}
		})
	}

	if _, ok := ParseKind("f32"); ok {
		t.Error("ParseKind accepted f32")
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind    Kind
		scalar  bool
		array   bool
		canSize bool
		size    uint32
	}{
		{KindU8, true, false, true, 1},
		{KindU16, true, false, true, 2},
		{KindU32, true, false, true, 4},
		{KindU64, true, false, false, 8},
		{KindI32, true, false, false, 4},
		{KindI64, true, false, false, 8},
		{KindString, false, false, false, 0},
		{KindStringArray, false, true, false, 0},
		{KindByteArray, false, false, false, 0},
		{KindRefByteArray, false, false, false, 0},
		{KindU32Array, false, true, false, 0},
		{KindStruct, false, false, false, 0},
		{KindStructArray, false, true, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.IsScalar(); got != tc.scalar {
				t.Errorf("IsScalar() = %v, want %v", got, tc.scalar)
			}
			if got := tc.kind.IsArray(); got != tc.array {
				t.Errorf("IsArray() = %v, want %v", got, tc.array)
			}
			if got := tc.kind.CanSize(); got != tc.canSize {
				t.Errorf("CanSize() = %v, want %v", got, tc.canSize)
			}
			if got := tc.kind.ScalarSize(); got != tc.size {
				t.Errorf("ScalarSize() = %d, want %d", got, tc.size)
			}
		})
	}
}
