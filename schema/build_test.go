package schema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/wippyai/msggen/errors"
)

func valuesDocument() *Document {
	return &Document{
		Messages: []MessageSpec{{
			Name:       "values",
			HeaderSize: 12,
			Fields: []FieldSpec{
				{Name: "id", Type: "u32"},
				{Name: "count", Type: "u32"},
				{Name: "values", Type: "string-array", ArraySizeField: "count"},
			},
		}},
	}
}

func TestBuildLayout(t *testing.T) {
	SetLogger(zaptest.NewLogger(t))
	defer SetLogger(zap.NewNop())

	s, err := Build(valuesDocument())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	m, ok := s.Message("values")
	if !ok {
		t.Fatal("message values not found")
	}
	if m.GoName != "Values" {
		t.Errorf("GoName: got %q, want Values", m.GoName)
	}
	if m.FixedSize != 16 {
		t.Errorf("FixedSize: got %d, want 16", m.FixedSize)
	}

	var offsets []uint32
	for _, f := range m.Fields {
		offsets = append(offsets, f.Offset)
	}
	if diff := cmp.Diff([]uint32{12, 16, 20}, offsets); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}

	values, _ := m.Field("values")
	if values.SizeField != 1 {
		t.Errorf("SizeField: got %d, want 1", values.SizeField)
	}
	if m.Fields[values.SizeField].Name() != "count" {
		t.Errorf("size field resolves to %q, want count", m.Fields[values.SizeField].Name())
	}
	id, _ := m.Field("id")
	if id.SizeField != -1 {
		t.Errorf("id SizeField: got %d, want -1", id.SizeField)
	}
}

func TestBuildThirdOffset(t *testing.T) {
	doc := &Document{Messages: []MessageSpec{{
		Name:       "m",
		HeaderSize: 20,
		Fields: []FieldSpec{
			{Name: "a", Type: "string"},
			{Name: "n", Type: "u32"},
			{Name: "b", Type: "string-array", ArraySizeField: "n"},
		},
	}}}

	s, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := s.Messages[0].Fields[2].Offset; got != 20+12 {
		t.Errorf("third offset: got %d, want %d", got, 20+12)
	}
}

func TestBuildStructs(t *testing.T) {
	doc := &Document{
		Structs: []StructSpec{
			{Name: "uuid-pair", Fields: []FieldSpec{
				{Name: "uuid", Type: "byte-array", ArraySize: 16},
				{Name: "cid", Type: "u32"},
			}},
			{Name: "device-service-element", Fields: []FieldSpec{
				{Name: "service", Type: "struct", StructType: "uuid-pair"},
				{Name: "dss-payload", Type: "u32"},
				{Name: "cids-count", Type: "u32"},
				{Name: "cids", Type: "u32-array", ArraySizeField: "cids-count"},
			}},
		},
		Messages: []MessageSpec{{
			Name: "device-services",
			Fields: []FieldSpec{
				{Name: "services-count", Type: "u32"},
				{Name: "max-dss-sessions", Type: "u32"},
				{Name: "services", Type: "struct-array", StructType: "device-service-element", ArraySizeField: "services-count"},
			},
		}},
	}

	s, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	pair, ok := s.Struct("uuid-pair")
	if !ok || pair.Size != 20 {
		t.Fatalf("uuid-pair: got %+v", pair)
	}
	elem, _ := s.Struct("device-service-element")
	if elem.Size != 20+4+4+8 {
		t.Errorf("element size: got %d, want 36", elem.Size)
	}
	var offsets []uint32
	for _, f := range elem.Fields {
		offsets = append(offsets, f.Offset)
	}
	if diff := cmp.Diff([]uint32{0, 20, 24, 28}, offsets); diff != "" {
		t.Errorf("struct offsets mismatch (-want +got):\n%s", diff)
	}

	m, _ := s.Message("device-services")
	services, _ := m.Field("services")
	sa, ok := services.Descriptor.(*StructArray)
	if !ok || sa.StructType() != elem {
		t.Errorf("services descriptor: got %T", services.Descriptor)
	}
}

func TestBuildReferenceErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSpec
		kind   errors.Kind
		detail string
	}{
		{
			name: "declared later",
			fields: []FieldSpec{
				{Name: "values", Type: "string-array", ArraySizeField: "count"},
				{Name: "count", Type: "u32"},
			},
			kind:   errors.KindInvalidReference,
			detail: "declared after",
		},
		{
			name: "self reference",
			fields: []FieldSpec{
				{Name: "values", Type: "string-array", ArraySizeField: "values"},
			},
			kind:   errors.KindInvalidReference,
			detail: "itself",
		},
		{
			name: "undeclared",
			fields: []FieldSpec{
				{Name: "values", Type: "string-array", ArraySizeField: "count"},
			},
			kind:   errors.KindNotFound,
			detail: `"count" not found`,
		},
		{
			name: "not a scalar",
			fields: []FieldSpec{
				{Name: "count", Type: "string"},
				{Name: "values", Type: "string-array", ArraySizeField: "count"},
			},
			kind:   errors.KindTypeMismatch,
			detail: "unsigned",
		},
		{
			name: "signed scalar",
			fields: []FieldSpec{
				{Name: "count", Type: "i32"},
				{Name: "values", Type: "u32-array", ArraySizeField: "count"},
			},
			kind:   errors.KindTypeMismatch,
			detail: "unsigned",
		},
		{
			name: "shared size field",
			fields: []FieldSpec{
				{Name: "count", Type: "u32"},
				{Name: "a", Type: "string-array", ArraySizeField: "count"},
				{Name: "b", Type: "string-array", ArraySizeField: "count"},
			},
			kind:   errors.KindInvalidReference,
			detail: `already holds the count of "a"`,
		},
		{
			name: "duplicate field",
			fields: []FieldSpec{
				{Name: "id", Type: "u32"},
				{Name: "id", Type: "u16"},
			},
			kind:   errors.KindDuplicate,
			detail: `"id"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Build(&Document{Messages: []MessageSpec{{Name: "msg", Fields: tc.fields}}})
			if err == nil {
				t.Fatal("expected error")
			}
			if s != nil {
				t.Error("schema should be nil on error")
			}

			errs := multierr.Errors(err)
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			var se *errors.Error
			if !errors.As(errs[0], &se) {
				t.Fatalf("error is %T, want *errors.Error", errs[0])
			}
			if se.Kind != tc.kind {
				t.Errorf("Kind: got %s, want %s", se.Kind, tc.kind)
			}
			if len(se.Path) == 0 || se.Path[0] != "msg" {
				t.Errorf("Path: got %v, want msg prefix", se.Path)
			}
			if !strings.Contains(se.Detail, tc.detail) {
				t.Errorf("Detail %q does not contain %q", se.Detail, tc.detail)
			}
		})
	}
}

func TestBuildCollectsAllErrors(t *testing.T) {
	doc := &Document{
		Endian: "middle",
		Messages: []MessageSpec{
			{Name: "first", Fields: []FieldSpec{
				{Name: "a", Type: "f32"},
				{Type: "u32"},
			}},
			{Name: "second", Fields: []FieldSpec{
				{Name: "values", Type: "string-array", ArraySizeField: "count"},
			}},
			{Name: "first", Fields: nil},
		},
	}

	s, err := Build(doc)
	if s != nil {
		t.Fatal("schema should be nil on error")
	}

	var got [][]string
	for _, e := range multierr.Errors(err) {
		var se *errors.Error
		if !errors.As(e, &se) {
			t.Fatalf("error is %T, want *errors.Error", e)
		}
		got = append(got, append([]string{string(se.Kind)}, se.Path...))
	}

	want := [][]string{
		{"unsupported", "endian"},
		{"unsupported", "first", "a"},
		{"field_missing", "first", "#1"},
		{"not_found", "second", "values"},
		{"duplicate", "first"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBrokenSizeFieldReportedOnce(t *testing.T) {
	_, err := Build(&Document{Messages: []MessageSpec{{Name: "m", Fields: []FieldSpec{
		{Name: "count", Type: "u33"},
		{Name: "values", Type: "string-array", ArraySizeField: "count"},
	}}}})
	if n := len(multierr.Errors(err)); n != 1 {
		t.Errorf("got %d errors, want 1: %v", n, err)
	}
}

func TestBuildOptions(t *testing.T) {
	doc := valuesDocument()
	doc.Endian = "big"
	doc.StringEncoding = "utf-16le"

	s, err := Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Endian != BigEndian || s.Encoding != EncodingUTF16LE {
		t.Errorf("options: got %s/%s", s.Endian, s.Encoding)
	}
	values, _ := s.Messages[0].Field("values")
	if values.Reader() != "wire.ReadStringArrayUTF16" {
		t.Errorf("Reader: got %q", values.Reader())
	}

	if _, err := Build(&Document{StringEncoding: "latin-1"}); err == nil {
		t.Error("unknown encoding accepted")
	}
	if _, err := Build(nil); err == nil {
		t.Error("nil document accepted")
	}
}

func TestBuildStructOrder(t *testing.T) {
	doc := &Document{
		Structs: []StructSpec{
			{Name: "outer", Fields: []FieldSpec{{Name: "inner", Type: "struct", StructType: "inner"}}},
			{Name: "inner", Fields: []FieldSpec{{Name: "x", Type: "u32"}}},
		},
		Messages: []MessageSpec{{Name: "m"}},
	}
	_, err := Build(doc)
	if errors.KindOf(err) != errors.KindNotFound {
		t.Errorf("got %v, want not_found for a struct used before it is declared", err)
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Build(valuesDocument())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, _ := Build(valuesDocument())
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal schemas have different fingerprints")
	}

	doc := valuesDocument()
	doc.Messages[0].Fields[0].Type = "u64"
	c, _ := Build(doc)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different schemas share a fingerprint")
	}

	doc = valuesDocument()
	doc.Messages[0].Readonly = true
	d, _ := Build(doc)
	if a.Fingerprint() == d.Fingerprint() {
		t.Error("readonly flag does not affect the fingerprint")
	}
}
