package schema

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/msggen/errors"
)

// WITOptions controls how WIT records are turned into messages.
type WITOptions struct {
	// Endian and StringEncoding are copied into the document.
	Endian         string
	StringEncoding string
	// HeaderSize is given to every message.
	HeaderSize uint32
	// Readonly marks every message read-only.
	Readonly bool
}

// CountSuffix is appended to a list field's name to find its size field.
const CountSuffix = "-count"

// LoadWIT reads a WIT package in JSON form (as produced by wasm-tools
// component wit --json) and converts its records.
func LoadWIT(path string, opts WITOptions) (*Document, error) {
	res, err := wit.LoadJSON(path)
	if err != nil {
		return nil, errors.Load("read WIT "+path, err)
	}
	return FromWIT(res, opts)
}

// FromWIT converts the named records of a WIT resolve into a schema
// document. Records used by other records become structs; the rest become
// messages. A list field takes its element count from the field named
// "<list>-count", which must precede it.
func FromWIT(res *wit.Resolve, opts WITOptions) (*Document, error) {
	if res == nil {
		return nil, errors.InvalidInput(errors.PhaseLoad, "nil WIT resolve")
	}

	nested := make(map[*wit.TypeDef]bool)
	for _, td := range res.TypeDefs {
		if r, ok := td.Kind.(*wit.Record); ok {
			for _, f := range r.Fields {
				if rec := nestedRecord(f.Type); rec != nil {
					nested[rec] = true
				}
			}
		}
	}

	doc := &Document{
		Endian:         opts.Endian,
		StringEncoding: opts.StringEncoding,
	}

	var errs error
	for _, td := range res.TypeDefs {
		r, ok := td.Kind.(*wit.Record)
		if !ok || td.Name == nil {
			continue
		}
		name := *td.Name

		fields := make([]FieldSpec, 0, len(r.Fields))
		for _, f := range r.Fields {
			spec, err := witField(name, f)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			fields = append(fields, spec)
		}

		if nested[td] {
			doc.Structs = append(doc.Structs, StructSpec{Name: name, Doc: td.Docs.Contents, Fields: fields})
			continue
		}
		doc.Messages = append(doc.Messages, MessageSpec{
			Name:       name,
			Doc:        td.Docs.Contents,
			Fields:     fields,
			HeaderSize: opts.HeaderSize,
			Readonly:   opts.Readonly,
		})
	}

	if errs != nil {
		return nil, errs
	}
	Logger().Debug("WIT records converted",
		zap.Int("structs", len(doc.Structs)),
		zap.Int("messages", len(doc.Messages)))
	return doc, nil
}

func witField(record string, f wit.Field) (FieldSpec, error) {
	spec := FieldSpec{Name: f.Name, Doc: f.Docs.Contents}

	if tag := witScalar(f.Type); tag != "" {
		spec.Type = tag
		return spec, nil
	}

	td, ok := f.Type.(*wit.TypeDef)
	if !ok {
		return spec, witUnsupported(record, f.Name, f.Type)
	}
	td = unalias(td)

	switch kind := td.Kind.(type) {
	case *wit.Record:
		if td.Name == nil {
			return spec, witUnsupported(record, f.Name, f.Type)
		}
		spec.Type = KindStruct.String()
		spec.StructType = *td.Name
		return spec, nil

	case *wit.List:
		spec.ArraySizeField = f.Name + CountSuffix
		switch elem := kind.Type.(type) {
		case wit.String:
			spec.Type = KindStringArray.String()
		case wit.U8:
			spec.Type = KindRefByteArray.String()
			spec.ArraySizeField = ""
		case wit.U32:
			spec.Type = KindU32Array.String()
		case *wit.TypeDef:
			rec := unalias(elem)
			if _, isRecord := rec.Kind.(*wit.Record); !isRecord || rec.Name == nil {
				return spec, witUnsupported(record, f.Name, f.Type)
			}
			spec.Type = KindStructArray.String()
			spec.StructType = *rec.Name
		default:
			return spec, witUnsupported(record, f.Name, f.Type)
		}
		return spec, nil
	}

	return spec, witUnsupported(record, f.Name, f.Type)
}

func witScalar(t wit.Type) string {
	switch t.(type) {
	case wit.U8:
		return KindU8.String()
	case wit.U16:
		return KindU16.String()
	case wit.U32:
		return KindU32.String()
	case wit.U64:
		return KindU64.String()
	case wit.S32:
		return KindI32.String()
	case wit.S64:
		return KindI64.String()
	case wit.String:
		return KindString.String()
	}
	return ""
}

// nestedRecord returns the record a field refers to directly or as a list
// element, if any.
func nestedRecord(t wit.Type) *wit.TypeDef {
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return nil
	}
	td = unalias(td)
	switch kind := td.Kind.(type) {
	case *wit.Record:
		return td
	case *wit.List:
		if elem, ok := kind.Type.(*wit.TypeDef); ok {
			elem = unalias(elem)
			if _, isRecord := elem.Kind.(*wit.Record); isRecord {
				return elem
			}
		}
	}
	return nil
}

// unalias follows type aliases (type foo = bar) to the defining TypeDef.
func unalias(td *wit.TypeDef) *wit.TypeDef {
	for range 16 {
		next, ok := td.Kind.(*wit.TypeDef)
		if !ok {
			return td
		}
		td = next
	}
	return td
}

func witUnsupported(record, field string, t wit.Type) error {
	name := fmt.Sprintf("%T", t)
	if td, ok := t.(*wit.TypeDef); ok {
		name = fmt.Sprintf("%T", unalias(td).Kind)
	}
	return errors.New(errors.PhaseLoad, errors.KindUnsupported).
		Path(record, field).
		Detail("WIT type %s has no wire representation", strings.TrimPrefix(name, "*")).
		Build()
}
