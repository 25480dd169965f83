package schema

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema/internal/layout"
)

// Encoding selects the payload encoding of string fields.
type Encoding uint8

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF16LE
)

func (e Encoding) String() string {
	if e == EncodingUTF16LE {
		return "utf-16le"
	}
	return "utf-8"
}

// Endian selects the byte order of scalars and pairs.
type Endian uint8

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// Order returns the matching encoding/binary byte order.
func (e Endian) Order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Options carries document-wide settings into descriptor construction.
type Options struct {
	// Structs resolves struct-type references. Only struct types declared
	// before the field being built are present.
	Structs  map[string]*StructType
	Encoding Encoding
}

// Field is a descriptor placed in a field list.
type Field struct {
	Descriptor
	// Offset is the absolute offset of the field's slot. For struct fields it
	// is relative to the start of the struct body.
	Offset uint32
	// SizeField is the index of the size field in the same list, or -1.
	SizeField int
}

// StructType is a named record usable by struct and struct-array fields.
type StructType struct {
	Name   string
	GoName string
	Doc    string
	Fields []Field
	// Size is the struct's fixed size.
	Size uint32
}

// Message is one validated message with its computed layout.
type Message struct {
	Name       string
	GoName     string
	Doc        string
	Fields     []Field
	HeaderSize uint32
	// FixedSize is the size of the fixed region, excluding the header.
	FixedSize uint32
	Readonly  bool
}

// Field looks up a field by schema name.
func (m *Message) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name() == name {
			return f, true
		}
	}
	return Field{}, false
}

// Schema is a validated set of messages. It is immutable once built.
type Schema struct {
	Structs  []*StructType
	Messages []*Message
	Endian   Endian
	Encoding Encoding
}

// Message looks up a message by schema name.
func (s *Schema) Message(name string) (*Message, bool) {
	for _, m := range s.Messages {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Struct looks up a struct type by schema name.
func (s *Schema) Struct(name string) (*StructType, bool) {
	for _, st := range s.Structs {
		if st.Name == name {
			return st, true
		}
	}
	return nil, false
}

// Fingerprint hashes everything that affects generated code. Two schemas with
// the same fingerprint produce the same accessors.
func (s *Schema) Fingerprint() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "msggen/1 %s %s\n", s.Endian, s.Encoding)
	for _, st := range s.Structs {
		fmt.Fprintf(d, "struct %s %d\n", st.Name, st.Size)
		writeFields(d, st.Fields)
	}
	for _, m := range s.Messages {
		fmt.Fprintf(d, "message %s %d %d %t\n", m.Name, m.HeaderSize, m.FixedSize, m.Readonly)
		writeFields(d, m.Fields)
	}
	return d.Sum64()
}

func writeFields(d *xxhash.Digest, fields []Field) {
	for _, f := range fields {
		fmt.Fprintf(d, "  %s %s %d %d %d", f.Name(), f.Kind(), f.WireSize(), f.Offset, f.SizeField)
		switch v := f.Descriptor.(type) {
		case *Struct:
			fmt.Fprintf(d, " %s", v.StructType().Name)
		case *StructArray:
			fmt.Fprintf(d, " %s", v.StructType().Name)
		}
		fmt.Fprintf(d, " %q\n", f.Doc())
	}
}

// Build validates a document and computes every layout. All problems found
// are returned together, combined with multierr; on any error the schema is
// nil.
func Build(doc *Document) (*Schema, error) {
	if doc == nil {
		return nil, errors.InvalidInput(errors.PhaseSchema, "nil document")
	}

	var errs error
	endian, err := parseEndian(doc.Endian)
	errs = multierr.Append(errs, err)
	encoding, err := parseEncoding(doc.StringEncoding)
	errs = multierr.Append(errs, err)

	s := &Schema{Endian: endian, Encoding: encoding}
	calc := layout.NewCalculator()
	opts := Options{Encoding: encoding, Structs: make(map[string]*StructType)}

	for i, spec := range doc.Structs {
		if err := checkName(spec.Name, "structs", i); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := opts.Structs[spec.Name]; dup {
			errs = multierr.Append(errs, errors.Duplicate(errors.PhaseSchema, []string{spec.Name}, "struct", spec.Name))
			continue
		}

		fields, err := buildFields(spec.Name, spec.Fields, opts)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		info, err := calc.Struct(spec.Name, slotSizes(fields))
		if err != nil {
			errs = multierr.Append(errs, within(err, spec.Name))
			continue
		}
		place(fields, info)

		st := &StructType{
			Name:   spec.Name,
			GoName: GoName(spec.Name),
			Doc:    spec.Doc,
			Fields: fields,
			Size:   info.Size,
		}
		opts.Structs[spec.Name] = st
		s.Structs = append(s.Structs, st)
		Logger().Debug("struct laid out", zap.String("struct", st.Name), zap.Uint32("size", st.Size))
	}

	seen := make(map[string]bool, len(doc.Messages))
	for i, spec := range doc.Messages {
		if err := checkName(spec.Name, "messages", i); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if seen[spec.Name] {
			errs = multierr.Append(errs, errors.Duplicate(errors.PhaseSchema, []string{spec.Name}, "message", spec.Name))
			continue
		}
		seen[spec.Name] = true

		fields, err := buildFields(spec.Name, spec.Fields, opts)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		info, err := calc.Fields(slotSizes(fields), spec.HeaderSize)
		if err != nil {
			errs = multierr.Append(errs, within(err, spec.Name))
			continue
		}
		place(fields, info)

		m := &Message{
			Name:       spec.Name,
			GoName:     GoName(spec.Name),
			Doc:        spec.Doc,
			Fields:     fields,
			HeaderSize: spec.HeaderSize,
			FixedSize:  info.Size,
			Readonly:   spec.Readonly,
		}
		s.Messages = append(s.Messages, m)

		for _, f := range fields {
			Logger().Debug("field placed",
				zap.String("message", m.Name),
				zap.String("field", f.Name()),
				zap.Stringer("type", f.Kind()),
				zap.Uint32("offset", f.Offset))
		}
	}

	if errs != nil {
		Logger().Debug("schema rejected", zap.Int("errors", len(multierr.Errors(errs))))
		return nil, errs
	}
	return s, nil
}

// buildFields constructs and cross-checks one field list in a single pass.
// Size field references that are not yet declared are settled after the
// pass, to tell a later declaration apart from a missing one.
func buildFields(owner string, specs []FieldSpec, opts Options) ([]Field, error) {
	type pending struct {
		field string
		ref   string
	}

	var errs error
	var unresolved []pending
	fields := make([]Field, 0, len(specs))
	// index maps a field name to its position in fields, or -1 when the
	// field itself failed and was already reported.
	index := make(map[string]int, len(specs))
	// claimed maps a size field's position to the array it counts.
	claimed := make(map[int]string)

	for i, spec := range specs {
		d, err := NewDescriptor(spec, opts)
		if err != nil {
			if spec.Name == "" {
				errs = multierr.Append(errs, within(err, owner, fmt.Sprintf("#%d", i)))
				continue
			}
			errs = multierr.Append(errs, within(err, owner))
			if _, dup := index[spec.Name]; !dup {
				index[spec.Name] = -1
			}
			continue
		}

		if _, dup := index[spec.Name]; dup {
			errs = multierr.Append(errs, errors.Duplicate(errors.PhaseSchema, []string{owner, spec.Name}, "field", spec.Name))
			continue
		}

		f := Field{Descriptor: d, SizeField: -1}
		if arr, ok := d.(ArrayDescriptor); ok {
			ref := arr.SizeFieldName()
			j, declared := index[ref]
			switch {
			case ref == spec.Name:
				errs = multierr.Append(errs, errors.New(errors.PhaseSchema, errors.KindInvalidReference).
					Path(owner, spec.Name).
					Value(ref).
					Detail("size field %q refers to the array itself", ref).
					Build())
			case !declared:
				unresolved = append(unresolved, pending{field: spec.Name, ref: ref})
			case j < 0:
			default:
				sf := fields[j]
				if !sf.Kind().CanSize() {
					errs = multierr.Append(errs, errors.New(errors.PhaseSchema, errors.KindTypeMismatch).
						Path(owner, spec.Name).
						WireType(sf.Kind().String()).
						Value(ref).
						Detail("size field %q must be an unsigned u8, u16 or u32 scalar", ref).
						Build())
					break
				}
				if other, taken := claimed[j]; taken {
					errs = multierr.Append(errs, errors.New(errors.PhaseSchema, errors.KindInvalidReference).
						Path(owner, spec.Name).
						Value(ref).
						Detail("size field %q already holds the count of %q", ref, other).
						Build())
					break
				}
				claimed[j] = spec.Name
				f.SizeField = j
			}
		}

		index[spec.Name] = len(fields)
		fields = append(fields, f)
		Logger().Debug("descriptor built",
			zap.String("owner", owner),
			zap.String("field", spec.Name),
			zap.Stringer("type", d.Kind()),
			zap.Uint32("wire_size", d.WireSize()))
	}

	for _, p := range unresolved {
		if _, later := index[p.ref]; later {
			errs = multierr.Append(errs, errors.New(errors.PhaseSchema, errors.KindInvalidReference).
				Path(owner, p.field).
				Value(p.ref).
				Detail("size field %q is declared after %q", p.ref, p.field).
				Build())
			continue
		}
		errs = multierr.Append(errs, errors.NotFound(errors.PhaseSchema, []string{owner, p.field}, "size field", p.ref))
	}

	if errs != nil {
		return nil, errs
	}
	return fields, nil
}

func slotSizes(fields []Field) []uint32 {
	sizes := make([]uint32, len(fields))
	for i, f := range fields {
		sizes[i] = f.WireSize()
	}
	return sizes
}

func place(fields []Field, info layout.Info) {
	for i := range fields {
		fields[i].Offset = info.Offsets[i]
	}
}

func checkName(name, list string, i int) error {
	if name == "" {
		return errors.FieldMissing(errors.PhaseSchema, []string{list, fmt.Sprintf("#%d", i)}, "name")
	}
	if !validName(name) {
		return errors.New(errors.PhaseSchema, errors.KindInvalidInput).
			Path(name).
			Detail("name %q must start with a letter and contain only letters, digits, '-' and '_'", name).
			Build()
	}
	return nil
}

// within prefixes the path of every structured error in err.
func within(err error, prefix ...string) error {
	for _, e := range multierr.Errors(err) {
		var se *errors.Error
		if errors.As(e, &se) {
			se.Path = append(append([]string(nil), prefix...), se.Path...)
		}
	}
	return err
}

func parseEndian(s string) (Endian, error) {
	switch s {
	case "", "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	}
	return 0, errors.New(errors.PhaseSchema, errors.KindUnsupported).
		Path("endian").
		Detail("unknown byte order %q", s).
		Build()
}

func parseEncoding(s string) (Encoding, error) {
	switch s {
	case "", "utf-8":
		return EncodingUTF8, nil
	case "utf-16le":
		return EncodingUTF16LE, nil
	}
	return 0, errors.New(errors.PhaseSchema, errors.KindUnsupported).
		Path("string-encoding").
		Detail("unknown string encoding %q", s).
		Build()
}
