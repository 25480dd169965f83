package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/msggen/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
package = "basicconnect"
output = "basicconnect_gen.go"
schemas = ["basic-connect.yaml", "  ", "/abs/sms.yaml"]
generate-setters = false
`)
	dir := filepath.Dir(path)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		Package:         "basicconnect",
		Output:          filepath.Join(dir, "basicconnect_gen.go"),
		Schemas:         []string{filepath.Join(dir, "basic-connect.yaml"), "/abs/sms.yaml"},
		GenerateSetters: false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `schemas = ["a.yaml"]`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Package != "messages" {
		t.Errorf("Package: got %q, want messages", cfg.Package)
	}
	if !cfg.GenerateSetters {
		t.Error("GenerateSetters should default to true")
	}
	if cfg.Output != "" {
		t.Errorf("Output: got %q, want empty", cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind errors.Kind
	}{
		{"unknown key", `pakage = "x"`, errors.KindInvalidInput},
		{"bad package", `package = "my-pkg"`, errors.KindInvalidInput},
		{"keyword package", `package = "func"`, errors.KindInvalidInput},
		{"wrong type", `schemas = "a.yaml"`, errors.KindInvalidData},
		{"syntax", `package = `, errors.KindInvalidData},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			var se *errors.Error
			if !errors.As(err, &se) {
				t.Fatalf("got %v, want *errors.Error", err)
			}
			if se.Phase != errors.PhaseConfig || se.Kind != tc.kind {
				t.Errorf("got %s/%s, want config/%s", se.Phase, se.Kind, tc.kind)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("got %v, want os.ErrNotExist in chain", err)
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); errors.KindOf(err) != errors.KindFieldMissing {
		t.Errorf("no schemas: got %v, want field_missing", err)
	}
	cfg.Schemas = []string{"a.yaml"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	cfg.Package = "_"
	if err := cfg.Validate(); errors.KindOf(err) != errors.KindInvalidInput {
		t.Errorf("blank package: got %v, want invalid_input", err)
	}
}
