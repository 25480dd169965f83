package schema

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/msggen/errors"
)

//go:embed document.schema.json
var documentSchemaJSON []byte

var documentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(documentSchemaJSON, rs); err != nil {
		return nil, err
	}
	return rs, nil
})

// Load reads and parses a schema document from a YAML or JSON file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	Logger().Debug("schema document loaded",
		zap.String("path", path),
		zap.Int("structs", len(doc.Structs)),
		zap.Int("messages", len(doc.Messages)))
	return doc, nil
}

// Parse decodes a schema document. The document's shape is checked against
// an embedded JSON Schema first, so unknown keys and mistyped values are
// reported with their location before any descriptor is built. Key paths in
// those errors follow the JSON pointer of the offending value.
func Parse(data []byte) (*Document, error) {
	isJSON := bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))

	var raw any
	var err error
	if isJSON {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Load("parse schema document", err)
	}
	if raw == nil {
		return nil, errors.InvalidInput(errors.PhaseLoad, "empty schema document")
	}

	if err := validateShape(raw); err != nil {
		return nil, err
	}

	var doc Document
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	}
	if err != nil {
		return nil, errors.Load("decode schema document", err)
	}
	return &doc, nil
}

func validateShape(raw any) error {
	rs, err := documentSchema()
	if err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "compile document schema")
	}

	canonical, err := json.Marshal(raw)
	if err != nil {
		return errors.Load("schema document is not JSON-compatible", err)
	}

	keyErrs, err := rs.ValidateBytes(context.Background(), canonical)
	if err != nil {
		return errors.Load("validate schema document", err)
	}

	var errs error
	for _, ke := range keyErrs {
		errs = multierr.Append(errs, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Path(pointerPath(ke.PropertyPath)...).
			Value(ke.InvalidValue).
			Detail("%s", ke.Message).
			Build())
	}
	return errs
}

func pointerPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Merge combines documents loaded from several files into one. Byte order
// and string encoding must agree wherever they are set.
func Merge(docs ...*Document) (*Document, error) {
	out := &Document{}
	for _, d := range docs {
		if d.Endian != "" {
			if out.Endian != "" && out.Endian != d.Endian {
				return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
					Path("endian").
					Detail("documents disagree on byte order: %q and %q", out.Endian, d.Endian).
					Build()
			}
			out.Endian = d.Endian
		}
		if d.StringEncoding != "" {
			if out.StringEncoding != "" && out.StringEncoding != d.StringEncoding {
				return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
					Path("string-encoding").
					Detail("documents disagree on string encoding: %q and %q", out.StringEncoding, d.StringEncoding).
					Build()
			}
			out.StringEncoding = d.StringEncoding
		}
		out.Structs = append(out.Structs, d.Structs...)
		out.Messages = append(out.Messages, d.Messages...)
	}
	return out, nil
}
