package codegen

import (
	"bufio"
	"bytes"
	"fmt"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
)

// WirePath is the import path of the runtime package generated code calls.
const WirePath = "github.com/wippyai/msggen/wire"

// DefaultPackage is the package clause used when none is configured.
const DefaultPackage = "messages"

const (
	fingerprintPrefix = "// Schema fingerprint: "
	optionsPrefix     = "// Generator options: "
)

// Generator turns a validated schema into Go source.
type Generator struct {
	pkg     string
	source  string
	setters bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) Option {
	return func(g *Generator) { g.pkg = name }
}

// WithSetters controls whether builders and setters are emitted for
// messages that are not readonly. The default is true.
func WithSetters(enabled bool) Option {
	return func(g *Generator) { g.setters = enabled }
}

// WithSource records the schema file name in the generated header.
func WithSource(path string) Option {
	return func(g *Generator) { g.source = path }
}

// New returns a Generator with the given options applied.
func New(opts ...Option) *Generator {
	g := &Generator{pkg: DefaultPackage, setters: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate emits the accessors for every message and struct in s. On any
// error no source is returned.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "nil schema")
	}
	if !token.IsIdentifier(g.pkg) {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Value(g.pkg).
			Detail("package name %q is not a Go identifier", g.pkg).
			Build()
	}

	f := g.file(s)
	if err := checkCollisions(f); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, f); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "execute template")
	}

	src, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		Logger().Debug("unformatted output", zap.ByteString("src", buf.Bytes()))
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "format generated source")
	}

	Logger().Info("generated accessors",
		zap.String("package", g.pkg),
		zap.Int("messages", len(f.Messages)),
		zap.Int("structs", len(f.Structs)),
		zap.Int("bytes", len(src)),
		zap.String("fingerprint", f.Fingerprint))
	return src, nil
}

// Options renders the settings that shape the generated code. The string is
// written to the header so a check can tell output produced with other
// options apart from current output.
func (g *Generator) Options() string {
	return fmt.Sprintf("package=%s setters=%t", g.pkg, g.setters)
}

// ReadOptions extracts the generator options line from the header of a file
// produced by Generate.
func ReadOptions(src []byte) (string, bool) {
	v, ok := headerValue(src, optionsPrefix)
	return strings.TrimSpace(v), ok
}

// ReadFingerprint extracts the schema fingerprint from the header of a file
// produced by Generate.
func ReadFingerprint(src []byte) (uint64, bool) {
	hex, ok := headerValue(src, fingerprintPrefix)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// headerValue returns the rest of the first comment line before the package
// clause that starts with prefix.
func headerValue(src []byte, prefix string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "package ") {
			break
		}
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return v, true
		}
	}
	return "", false
}

// fileData is the template input for one generated file.
type fileData struct {
	Package     string
	Source      string
	Fingerprint string
	Options     string
	NeedsWire   bool
	Writers     bool
	Structs     []structData
	Messages    []messageData
}

type structData struct {
	Name    string
	GoName  string
	Doc     string
	Size    uint32
	Writers bool
	Fields  []fieldData
}

type messageData struct {
	Name       string
	GoName     string
	Doc        string
	Order      string
	HeaderSize uint32
	FixedSize  uint32
	Setters    bool
	Fields     []fieldData
}

// fieldData carries precomputed call expressions so the templates stay free
// of per-variant branching.
type fieldData struct {
	Name   string
	GoName string
	Doc    string
	Const  string
	Offset uint32

	Public  string
	InType  string
	InDoc   string
	OutType string
	OutDoc  string
	Param   string

	// Read evaluates to (value, error).
	Read string
	// CountRead evaluates to (count, error) for array getters.
	CountRead string
	CountName string
	// StructRead is the statement target form used inside struct readers.
	StructRead string

	Write       string
	CountWrite  string
	StructWrite string
	StructCount string
}

func (g *Generator) file(s *schema.Schema) *fileData {
	f := &fileData{
		Package:     g.pkg,
		Source:      g.source,
		Fingerprint: fmt.Sprintf("%016x", s.Fingerprint()),
		Options:     g.Options(),
		NeedsWire:   len(s.Messages) > 0 || len(s.Structs) > 0,
	}

	order := "wire.LittleEndian"
	if s.Endian == schema.BigEndian {
		order = "wire.BigEndian"
	}

	for _, m := range s.Messages {
		md := messageData{
			Name:       m.Name,
			GoName:     m.GoName,
			Doc:        m.Doc,
			Order:      order,
			HeaderSize: m.HeaderSize,
			FixedSize:  m.FixedSize,
			Setters:    g.setters && !m.Readonly,
		}
		prefix := schema.LowerGoName(m.Name)
		for _, fld := range m.Fields {
			fd := newField(prefix, fld)
			off := fd.Const
			fd.Read = readCall(fld.Descriptor, off, "uint32(count)")
			fd.Write = writeCall(fld.Descriptor, off, "v", "&v")
			if fld.SizeField >= 0 {
				sf := m.Fields[fld.SizeField]
				sfConst := offsetConst(prefix, sf.Name())
				fd.CountName = sf.Name()
				fd.CountRead = readCall(sf.Descriptor, sfConst, "")
				fd.CountWrite = fmt.Sprintf("wire.PutCount(b, %s, %d, len(v))", sfConst, sf.WireSize())
			}
			md.Fields = append(md.Fields, fd)
		}
		md.Fields = withParams(md.Fields)
		if md.Setters {
			f.Writers = true
		}
		f.Messages = append(f.Messages, md)
	}

	for _, st := range s.Structs {
		sd := structData{Name: st.Name, GoName: st.GoName, Doc: st.Doc, Size: st.Size, Writers: f.Writers}
		prefix := schema.LowerGoName(st.Name)
		for _, fld := range st.Fields {
			fd := newField(prefix, fld)
			at := "at+" + fd.Const
			count := ""
			if fld.SizeField >= 0 {
				sf := st.Fields[fld.SizeField]
				count = "uint32(v." + schema.GoName(sf.Name()) + ")"
				fd.CountName = sf.Name()
				fd.StructCount = fmt.Sprintf("wire.PutCount(b, at+%s, %d, len(v.%s))",
					offsetConst(prefix, sf.Name()), sf.WireSize(), fd.GoName)
			}
			fd.StructRead = readCall(fld.Descriptor, at, count)
			fd.StructWrite = writeCall(fld.Descriptor, at, "v."+fd.GoName, "&v."+fd.GoName)
			sd.Fields = append(sd.Fields, fd)
		}
		f.Structs = append(f.Structs, sd)
	}
	return f
}

func newField(prefix string, fld schema.Field) fieldData {
	in, out, pub := fld.Input(), fld.Output(), fld.Public()
	return fieldData{
		Name:    fld.Name(),
		GoName:  schema.GoName(fld.Name()),
		Doc:     pub.Doc,
		Const:   offsetConst(prefix, fld.Name()),
		Offset:  fld.Offset,
		Public:  pub.GoType,
		InType:  in.GoType,
		InDoc:   in.Doc,
		OutType: out.GoType,
		OutDoc:  out.Doc,
	}
}

func offsetConst(prefix, field string) string {
	return prefix + schema.GoName(field) + "Offset"
}

// readCall renders the reader invocation for d at the offset expression at.
// count is the element count expression for array variants.
func readCall(d schema.Descriptor, at, count string) string {
	switch v := d.(type) {
	case *schema.ByteArray:
		return fmt.Sprintf("%s(m, %s, %d)", v.Reader(), at, v.Size())
	case *schema.StructArray:
		st := v.StructType()
		return fmt.Sprintf("%s(m, %s, %s, %sSize, read%s)", v.Reader(), at, count, st.GoName, st.GoName)
	case schema.ArrayDescriptor:
		return fmt.Sprintf("%s(m, %s, %s)", v.Reader(), at, count)
	default:
		return fmt.Sprintf("%s(m, %s)", d.Reader(), at)
	}
}

// writeCall renders the writer invocation storing val at at. ref is the
// address of val, used by struct writers.
func writeCall(d schema.Descriptor, at, val, ref string) string {
	switch v := d.(type) {
	case *schema.ByteArray:
		return fmt.Sprintf("%s(b, %s, %s, %d)", v.Writer(), at, val, v.Size())
	case *schema.Struct:
		return fmt.Sprintf("%s(b, %s, %s)", v.Writer(), at, ref)
	case *schema.StructArray:
		st := v.StructType()
		return fmt.Sprintf("%s(b, %s, %s, %sSize, write%s)", v.Writer(), at, val, st.GoName, st.GoName)
	default:
		return fmt.Sprintf("%s(b, %s, %s)", d.Writer(), at, val)
	}
}

// withParams assigns distinct Parse parameter names, steering clear of
// keywords, predeclared identifiers and the names the Parse body itself
// uses. A name already taken by an earlier field gets a numeric suffix.
func withParams(fields []fieldData) []fieldData {
	used := make(map[string]bool, len(fields))
	for i := range fields {
		p := schema.LowerGoName(fields[i].Name)
		if reservedParam(p) {
			p += "Out"
		}
		name := p
		for n := 2; used[name] || reservedParam(name); n++ {
			name = p + strconv.Itoa(n)
		}
		used[name] = true
		fields[i].Param = name
	}
	return fields
}

func reservedParam(name string) bool {
	switch name {
	case "m", "err", "wire":
		return true
	}
	return token.IsKeyword(name) || types.Universe.Lookup(name) != nil
}

// checkCollisions reports top-level identifiers that two schema names map
// to, such as "sim-id" and "sim_id".
func checkCollisions(f *fileData) error {
	var errs error
	owners := make(map[string]string)
	declare := func(ident, owner string) bool {
		if prev, dup := owners[ident]; dup {
			errs = multierr.Append(errs, errors.New(errors.PhaseGenerate, errors.KindDuplicate).
				Path(strings.Split(owner, ".")...).
				Value(ident).
				Detail("identifier %s is also generated for %q", ident, prev).
				Build())
			return false
		}
		owners[ident] = owner
		return true
	}

	for _, st := range f.Structs {
		declare(st.GoName, st.Name)
		declare(st.GoName+"Size", st.Name)
		declare("read"+st.GoName, st.Name)
		if f.Writers {
			declare("write"+st.GoName, st.Name)
		}
		for _, fd := range st.Fields {
			declare(fd.Const, st.Name+"."+fd.Name)
		}
	}

	for _, m := range f.Messages {
		declare(m.GoName+"HeaderSize", m.Name)
		declare(m.GoName+"FixedSize", m.Name)
		declare(m.GoName+"Message", m.Name)
		declare(m.GoName+"Parse", m.Name)
		if m.Setters {
			declare("New"+m.GoName+"Builder", m.Name)
		}
		for _, fd := range m.Fields {
			owner := m.Name + "." + fd.Name
			// Field names that share a constant share every accessor name too.
			if !declare(fd.Const, owner) {
				continue
			}
			declare(m.GoName+"Get"+fd.GoName, owner)
			if m.Setters {
				declare(m.GoName+"Set"+fd.GoName, owner)
			}
		}
	}

	if errs != nil {
		Logger().Debug("identifier collisions", zap.Int("count", len(multierr.Errors(errs))))
	}
	return errs
}

// comment renders text as // comment lines.
func comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(l), " ")
	}
	return strings.Join(lines, "\n")
}

var funcs = template.FuncMap{
	"comment":  comment,
	"quote":    strconv.Quote,
	"wirePath": func() string { return strconv.Quote(WirePath) },
}

func newTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Delims("«", "»").Funcs(funcs).Parse(body))
}

var fileTemplate = newTemplate("file", fileBody)
