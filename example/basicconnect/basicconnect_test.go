package basicconnect

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/msggen/codegen"
	"github.com/wippyai/msggen/dynamic"
	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
)

func loadSchema(t *testing.T) *schema.Schema {
	t.Helper()
	doc, err := schema.Load("basic-connect.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, err := schema.Build(doc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	src, err := os.ReadFile("basicconnect_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := codegen.ReadFingerprint(src)
	if !ok {
		t.Fatal("generated file has no fingerprint")
	}
	if want := loadSchema(t).Fingerprint(); got != want {
		t.Errorf("basicconnect_gen.go is stale: fingerprint %016x, schema %016x; run go generate", got, want)
	}
	opts, ok := codegen.ReadOptions(src)
	if want := codegen.New(codegen.WithPackage("basicconnect")).Options(); !ok || opts != want {
		t.Errorf("generator options: got %q (%v), want %q; run go generate", opts, ok, want)
	}
}

func TestLayoutConstants(t *testing.T) {
	s := loadSchema(t)
	for _, tc := range []struct {
		name          string
		header, fixed uint32
	}{
		{"values", ValuesHeaderSize, ValuesFixedSize},
		{"subscriber-ready-status", SubscriberReadyStatusHeaderSize, SubscriberReadyStatusFixedSize},
		{"device-services", DeviceServicesHeaderSize, DeviceServicesFixedSize},
		{"connect", ConnectHeaderSize, ConnectFixedSize},
	} {
		m, ok := s.Message(tc.name)
		if !ok {
			t.Fatalf("message %s missing", tc.name)
		}
		if m.HeaderSize != tc.header || m.FixedSize != tc.fixed {
			t.Errorf("%s: generated (%d, %d), schema (%d, %d)",
				tc.name, tc.header, tc.fixed, m.HeaderSize, m.FixedSize)
		}
	}
	if DeviceServiceElementSize != 36 {
		t.Errorf("DeviceServiceElementSize = %d, want 36", DeviceServiceElementSize)
	}
}

func TestValuesWireFormat(t *testing.T) {
	b := NewValuesBuilder()
	if err := ValuesSetID(b, 7); err != nil {
		t.Fatal(err)
	}
	if err := ValuesSetValues(b, []string{"a", "bc"}); err != nil {
		t.Fatal(err)
	}
	buf := b.Bytes()

	if len(buf) != 40 {
		t.Errorf("message length: got %d, want 40", len(buf))
	}
	if got := binary.LittleEndian.Uint32(buf[4:]); got != 2 {
		t.Errorf("count: got %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(buf[8:]); got != 16 {
		t.Errorf("values offset: got %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(buf[12:]); got != 16 {
		t.Errorf("values length: got %d, want 16", got)
	}

	m, err := ValuesMessage(buf)
	if err != nil {
		t.Fatalf("ValuesMessage: %v", err)
	}
	var (
		id     uint32
		count  uint32
		values []string
	)
	if err := ValuesParse(m, &id, &count, &values); err != nil {
		t.Fatalf("ValuesParse: %v", err)
	}
	if id != 7 || count != 2 || !cmp.Equal([]string{"a", "bc"}, values) {
		t.Errorf("parsed id=%d count=%d values=%q", id, count, values)
	}

	// The generated accessors and the schema-driven decoder agree.
	s := loadSchema(t)
	msg, _ := s.Message("values")
	rec, err := dynamic.Decode(msg, s, buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := rec.String(); got != "id: 7\ncount: 2\nvalues: [\"a\" \"bc\"]\n" {
		t.Errorf("decoded record: %q", got)
	}
}

func TestValuesRepeatedDecode(t *testing.T) {
	b := NewValuesBuilder()
	if err := ValuesSetID(b, 1); err != nil {
		t.Fatal(err)
	}
	if err := ValuesSetValues(b, []string{"a", "bb"}); err != nil {
		t.Fatal(err)
	}
	m, err := ValuesMessage(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	before := append([]byte(nil), b.Bytes()...)

	for i := 0; i < 3; i++ {
		var (
			id, count uint32
			values    []string
		)
		if err := ValuesParse(m, &id, &count, &values); err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
		if id != 1 || count != 2 || !cmp.Equal([]string{"a", "bb"}, values) {
			t.Fatalf("decode %d: id=%d count=%d values=%q", i, id, count, values)
		}
		values[0] = "changed"
	}
	if !cmp.Equal(before, m.Bytes()) {
		t.Error("decoding modified the message buffer")
	}

	// Scalars decode without allocating; only the caller-owned array does.
	var id uint32
	if allocs := testing.AllocsPerRun(100, func() { _ = ValuesGetID(m, &id) }); allocs != 0 {
		t.Errorf("scalar getter allocated %v times", allocs)
	}
}

func TestNilOutSkipsField(t *testing.T) {
	b := NewValuesBuilder()
	if err := ValuesSetValues(b, []string{"x", "y", "z"}); err != nil {
		t.Fatal(err)
	}
	m, err := b.Message()
	if err != nil {
		t.Fatal(err)
	}

	allocs := testing.AllocsPerRun(100, func() {
		if err := ValuesParse(m, nil, nil, nil); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("parse with nil outs allocated %v times", allocs)
	}

	// A nil out is not read at all, so a corrupt slot goes unnoticed.
	buf := append([]byte(nil), b.Bytes()...)
	binary.LittleEndian.PutUint32(buf[valuesValuesOffset:], 0xfffffff0)
	m, _ = ValuesMessage(buf)
	if err := ValuesGetValues(m, nil); err != nil {
		t.Errorf("nil out: %v", err)
	}
	var values []string
	if err := ValuesGetValues(m, &values); errors.KindOf(err) != errors.KindOutOfBounds {
		t.Errorf("corrupt values: got %v, want out of bounds", err)
	}
	if values != nil {
		t.Errorf("out was written on failure: %q", values)
	}
}

func TestSubscriberReadyStatusRoundTrip(t *testing.T) {
	b := NewSubscriberReadyStatusBuilder()
	copy(b.Header(), "HDR")
	for _, err := range []error{
		SubscriberReadyStatusSetReadyState(b, 1),
		SubscriberReadyStatusSetSubscriberID(b, "310150123456789"),
		SubscriberReadyStatusSetSIMIccid(b, ""),
		SubscriberReadyStatusSetReadyInfo(b, 4),
		SubscriberReadyStatusSetTelephoneNumbers(b, []string{"+15550100", "+15550101"}),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	m, err := SubscriberReadyStatusMessage(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if string(m.Header()[:3]) != "HDR" {
		t.Errorf("header: %q", m.Header())
	}
	// Pair offsets are relative to the body, so the first payload sits
	// right after the fixed region.
	if got := binary.LittleEndian.Uint32(b.Bytes()[subscriberReadyStatusSubscriberIDOffset:]); got != SubscriberReadyStatusFixedSize {
		t.Errorf("subscriber-id offset: got %d, want %d", got, SubscriberReadyStatusFixedSize)
	}

	var (
		state, info, n uint32
		imsi, iccid    string
		numbers        []string
	)
	if err := SubscriberReadyStatusParse(m, &state, &imsi, &iccid, &info, &n, &numbers); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if state != 1 || info != 4 || n != 2 {
		t.Errorf("scalars: state=%d info=%d count=%d", state, info, n)
	}
	if imsi != "310150123456789" || iccid != "" {
		t.Errorf("strings: imsi=%q iccid=%q", imsi, iccid)
	}
	if diff := cmp.Diff([]string{"+15550100", "+15550101"}, numbers); diff != "" {
		t.Errorf("telephone-numbers (-want +got):\n%s", diff)
	}
}

func TestConnectRoundTrip(t *testing.T) {
	contextType := []byte{
		0x7e, 0x5e, 0x2a, 0x7e, 0x4e, 0x6f, 0x72, 0x72,
		0x73, 0x6b, 0x65, 0x6e, 0x7e, 0x5e, 0x2a, 0x7e,
	}
	service := DeviceServiceElement{
		DeviceService:   contextType,
		DssPayload:      3,
		MaxDssInstances: 1,
		Cids:            []uint32{1, 2, 3},
	}

	b := NewConnectBuilder()
	for _, err := range []error{
		ConnectSetSessionID(b, 9),
		ConnectSetContextType(b, contextType),
		ConnectSetAccessString(b, "internet"),
		ConnectSetCookie(b, []byte{0xde, 0xad, 0xbe}),
		ConnectSetService(b, service),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	m, err := ConnectMessage(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	var (
		session uint32
		ctx     []byte
		access  string
		cookie  []byte
		got     DeviceServiceElement
	)
	if err := ConnectParse(m, &session, &ctx, &access, &cookie, &got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if session != 9 || access != "internet" {
		t.Errorf("session=%d access=%q", session, access)
	}
	if !cmp.Equal(contextType, ctx) || !cmp.Equal([]byte{0xde, 0xad, 0xbe}, cookie) {
		t.Errorf("bytes: context-type=%x cookie=%x", ctx, cookie)
	}

	// The writer fills the size field from the array.
	service.CidsCount = 3
	if diff := cmp.Diff(service, got); diff != "" {
		t.Errorf("service (-want +got):\n%s", diff)
	}

	// Read results are copies.
	ctx[0] = 0
	var again []byte
	if err := ConnectGetContextType(m, &again); err != nil {
		t.Fatal(err)
	}
	if again[0] != 0x7e {
		t.Error("context-type aliases the message buffer")
	}
}

func TestConnectSetterErrors(t *testing.T) {
	b := NewConnectBuilder()
	err := ConnectSetContextType(b, []byte{1, 2, 3})
	if errors.KindOf(err) != errors.KindInvalidData {
		t.Fatalf("short context-type: got %v, want invalid data", err)
	}
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %T is not *errors.Error", err)
	}
	if diff := cmp.Diff([]string{"connect", "context-type"}, e.Path); diff != "" {
		t.Errorf("error path (-want +got):\n%s", diff)
	}

	err = ConnectSetAccessString(b, "\xff")
	if errors.KindOf(err) != errors.KindInvalidUTF8 {
		t.Errorf("invalid access-string: got %v, want invalid UTF-8", err)
	}
}

func TestDeviceServicesFromDynamicEncoder(t *testing.T) {
	s := loadSchema(t)
	msg, _ := s.Message("device-services")
	uuid := make([]byte, 16)
	uuid[0] = 0xa2

	buf, err := dynamic.Encode(msg, s, map[string]any{
		"max-dss-sessions": uint32(2),
		"device-services": []map[string]any{
			{"device-service": uuid, "dss-payload": uint32(1), "cids": []uint32{1, 2}},
			{"device-service": make([]byte, 16), "cids": []uint32{}},
		},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	m, err := DeviceServicesMessage(buf)
	if err != nil {
		t.Fatal(err)
	}
	var (
		count, sessions uint32
		services        []DeviceServiceElement
	)
	if err := DeviceServicesParse(m, &count, &sessions, &services); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []DeviceServiceElement{
		{DeviceService: uuid, DssPayload: 1, CidsCount: 2, Cids: []uint32{1, 2}},
		{DeviceService: make([]byte, 16), Cids: []uint32{}},
	}
	if count != 2 || sessions != 2 {
		t.Errorf("count=%d sessions=%d", count, sessions)
	}
	if diff := cmp.Diff(want, services); diff != "" {
		t.Errorf("device-services (-want +got):\n%s", diff)
	}
}

func TestDeviceServicesCountBeyondData(t *testing.T) {
	s := loadSchema(t)
	msg, _ := s.Message("device-services")
	buf, err := dynamic.Encode(msg, s, map[string]any{
		"device-services": []map[string]any{{"device-service": make([]byte, 16)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	binary.LittleEndian.PutUint32(buf[deviceServicesDeviceServicesCountOffset:], 1<<20)

	m, err := DeviceServicesMessage(buf)
	if err != nil {
		t.Fatal(err)
	}
	var services []DeviceServiceElement
	if err := DeviceServicesGetDeviceServices(m, &services); err == nil {
		t.Fatal("count beyond the data should fail")
	}
}

func TestShortBuffer(t *testing.T) {
	if _, err := ValuesMessage(make([]byte, ValuesFixedSize-1)); err == nil {
		t.Error("buffer shorter than the fixed region should fail")
	}
	if _, err := SubscriberReadyStatusMessage(make([]byte, SubscriberReadyStatusFixedSize)); err == nil {
		t.Error("buffer without room for the header should fail")
	}
}
