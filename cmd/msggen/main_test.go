package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/msggen/config"
	"github.com/wippyai/msggen/schema"
)

const valuesYAML = `
messages:
  - name: values
    header-size: 0
    fields:
      - {name: id, type: u32}
      - {name: count, type: u32}
      - {name: values, type: string-array, array-size-field: count}
`

// valuesHex is id=7, values=["a","bc"] laid out with the values schema.
const valuesHex = "07000000 02000000 10000000 10000000" +
	" 20000000 01000000 24000000 02000000" +
	" 61000000 62630000"

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte(valuesYAML), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func loadValues(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := loadSchema([]string{writeSchema(t)}, "")
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}
	return s
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
		ok   bool
	}{
		{"0a0b", []byte{0x0a, 0x0b}, true},
		{"0x0a 0b", []byte{0x0a, 0x0b}, true},
		{"0a:0b\n", []byte{0x0a, 0x0b}, true},
		{"0a0", nil, false},
		{"zz", nil, false},
	}
	for _, tc := range tests {
		got, err := parseHex(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("parseHex(%q): err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && !bytes.Equal(got, tc.want) {
			t.Errorf("parseHex(%q) = %x, want %x", tc.in, got, tc.want)
		}
	}
}

func TestRunDecode(t *testing.T) {
	s := loadValues(t)

	var out bytes.Buffer
	if err := runDecode(&out, s, "", valuesHex); err != nil {
		t.Fatalf("runDecode: %v", err)
	}
	want := "id: 7\ncount: 2\nvalues: [\"a\" \"bc\"]\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("decode output mismatch (-want +got):\n%s", diff)
	}

	if err := runDecode(&out, s, "nope", valuesHex); err == nil {
		t.Error("unknown message should fail")
	}
	if err := runDecode(&out, s, "values", "07000000"); err == nil {
		t.Error("short buffer should fail")
	}
}

func TestPrintLayout(t *testing.T) {
	s := loadValues(t)

	var out bytes.Buffer
	if err := printLayout(&out, s, false); err != nil {
		t.Fatalf("printLayout: %v", err)
	}
	text := out.String()
	for _, want := range []string{"values (header 0, fixed 16)", "string-array", "FIELD", "ELEM", "count"} {
		if !strings.Contains(text, want) {
			t.Errorf("layout does not contain %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("unstyled layout contains escape sequences")
	}
}

func TestLayoutTableElementSize(t *testing.T) {
	s := loadValues(t)
	msg, _ := s.Message("values")

	var row []string
	for _, line := range strings.Split(layoutTable(msg.Fields, false), "\n") {
		if !strings.Contains(line, "string-array") {
			continue
		}
		for _, cell := range strings.Split(strings.Trim(line, "│"), "│") {
			row = append(row, strings.TrimSpace(cell))
		}
	}
	want := []string{"values", "string-array", "8", "8", "8", "count"}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("values row mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAndCheck(t *testing.T) {
	schemaPath := writeSchema(t)
	out := filepath.Join(t.TempDir(), "values_gen.go")
	cfg := config.Default()
	cfg.Schemas = []string{schemaPath}
	cfg.Output = out
	cfg.Package = "values"

	s, err := loadSchema(cfg.Schemas, "")
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}

	if err := runCheck(s, cfg); err == nil {
		t.Error("check of a missing file should fail")
	}
	if err := runGenerate(s, cfg); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if err := runCheck(s, cfg); err != nil {
		t.Errorf("check after generate: %v", err)
	}

	src, _ := os.ReadFile(out)
	if !bytes.Contains(src, []byte("package values")) {
		t.Errorf("generated file has the wrong package:\n%s", src)
	}

	other, err := schema.Build(&schema.Document{Messages: []schema.MessageSpec{{
		Name:   "values",
		Fields: []schema.FieldSpec{{Name: "id", Type: "u64"}},
	}}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := runCheck(other, cfg); err == nil || !strings.Contains(err.Error(), "stale") {
		t.Errorf("check against a changed schema: got %v, want stale", err)
	}
}

func TestCheckGeneratorOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Schemas = []string{writeSchema(t)}
	cfg.Output = filepath.Join(t.TempDir(), "values_gen.go")
	cfg.Package = "values"

	s, err := loadSchema(cfg.Schemas, "")
	if err != nil {
		t.Fatalf("loadSchema: %v", err)
	}
	if err := runGenerate(s, cfg); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	tests := []struct {
		name   string
		change func(*config.Config)
		stale  bool
	}{
		{"unchanged", func(*config.Config) {}, false},
		{"other package", func(c *config.Config) { c.Package = "other" }, true},
		{"getters only", func(c *config.Config) { c.GenerateSetters = false }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cfg
			tc.change(&c)
			err := runCheck(s, c)
			if tc.stale {
				if err == nil || !strings.Contains(err.Error(), "options") {
					t.Errorf("got %v, want stale options", err)
				}
			} else if err != nil {
				t.Errorf("runCheck: %v", err)
			}
		})
	}
}

type syncRecorder struct {
	bytes.Buffer
	synced int
}

func (r *syncRecorder) Sync() error {
	r.synced++
	return nil
}

func TestFailFlushesLogger(t *testing.T) {
	var code int
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = os.Exit })

	rec := &syncRecorder{}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), rec, zap.DebugLevel)
	logger := zap.New(core)
	logger.Info("generated accessors")

	fail(logger, fmt.Errorf("boom"))
	if rec.synced == 0 {
		t.Error("logger was not synced before exit")
	}
	if code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
	if !strings.Contains(rec.String(), "generated accessors") {
		t.Errorf("log output lost: %q", rec.String())
	}
}

func TestLoadConfigDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	if err := os.WriteFile(config.DefaultFile, []byte(`package = "fromfile"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Package != "fromfile" {
		t.Errorf("Package: got %q, want fromfile", cfg.Package)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.yaml, ,b.yaml ")
	if diff := cmp.Diff([]string{"a.yaml", "b.yaml"}, got); diff != "" {
		t.Errorf("splitList mismatch (-want +got):\n%s", diff)
	}
}

func TestInteractiveModel(t *testing.T) {
	s := loadValues(t)
	cfg := config.Default()
	m := newInteractiveModel(s, cfg)

	msg := m.generate()
	m.Update(msg)
	if m.err != nil {
		t.Fatalf("generate: %v", m.err)
	}
	sigs := accessorSignatures(m.source, "Values")
	if len(sigs) != 9 {
		t.Errorf("got %d accessor signatures, want 9: %v", len(sigs), sigs)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateLayout {
		t.Errorf("enter: state %d, want layout", m.state)
	}
	if !strings.Contains(m.View(), "Layout of") {
		t.Errorf("layout view:\n%s", m.View())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if m.state != stateDecodeInput {
		t.Fatalf("d: state %d, want decode input", m.state)
	}
	m.input.SetValue(valuesHex)
	m.Update(m.decode())
	if m.state != stateShowResult || m.err != nil {
		t.Fatalf("decode: state %d, err %v", m.state, m.err)
	}
	if !strings.Contains(m.result, "id: 7") {
		t.Errorf("decode result:\n%s", m.result)
	}
}
