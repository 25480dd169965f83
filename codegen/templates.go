package codegen

const fileBody = `// Code generated by msggen. DO NOT EDIT.
«- if .Source»
// Source: «.Source»
«- end»
// Schema fingerprint: «.Fingerprint»
// Generator options: «.Options»

package «.Package»
«- if .NeedsWire»

import «wirePath»
«- end»
«range .Structs»
«template "struct" .»
«- end»
«range .Messages»
«template "message" .»
«- end»

«define "struct"»
«- comment (printf "%s is the '%s' struct." .GoName .Name)»
«- with .Doc»
//
«comment .»
«- end»
type «.GoName» struct {
«- range .Fields»
«- with .Doc»
	«comment .»
«- end»
	«.GoName» «.Public»
«- end»
}

const (
	// «.GoName»Size is the fixed size of one '«.Name»' record.
	«.GoName»Size = «.Size»
«- range .Fields»
	«.Const» = «.Offset»
«- end»
)

// read«.GoName» decodes the '«.Name»' record whose body starts at at.
func read«.GoName»(m *wire.Message, at uint32) («.GoName», error) {
«- if .Fields»
	var v «.GoName»
	var err error
«- range .Fields»
	if v.«.GoName», err = «.StructRead»; err != nil {
		return «$.GoName»{}, wire.WithPath(err, «quote .Name»)
	}
«- end»
	return v, nil
«- else»
	return «.GoName»{}, nil
«- end»
}
«- if .Writers»

// write«.GoName» encodes v as a '«.Name»' record whose body starts at at.
// Size fields are overwritten with the length of the array they describe.
func write«.GoName»(b *wire.Builder, at uint32, v *«.GoName») error {
«- range .Fields»
«- if .StructCount»
	if err := «.StructCount»; err != nil {
		return wire.WithPath(err, «quote .CountName»)
	}
«- end»
	if err := «.StructWrite»; err != nil {
		return wire.WithPath(err, «quote .Name»)
	}
«- end»
	return nil
}
«- end»
«end»

«define "message"»
«- $m := .»
// Layout of the '«.Name»' message.
const (
	«.GoName»HeaderSize = «.HeaderSize»
	«.GoName»FixedSize = «.FixedSize»
«- range .Fields»
	«.Const» = «.Offset»
«- end»
)

// «.GoName»Message wraps buf as a '«.Name»' message. It fails when buf is
// shorter than the header and fixed region.
«- with .Doc»
//
«comment .»
«- end»
func «.GoName»Message(buf []byte) (*wire.Message, error) {
	return wire.NewMessage(buf, «.Order», «.GoName»HeaderSize, «.GoName»FixedSize)
}
«range .Fields»
// «$m.GoName»Get«.GoName» reads the '«.Name»' field of a '«$m.Name»' message.
«- with .Doc»
//
«comment .»
«- end»
//
«comment (printf "out: %s" .OutDoc)»
func «$m.GoName»Get«.GoName»(m *wire.Message, out «.OutType») error {
	if out == nil {
		return nil
	}
«- if .CountRead»
	count, err := «.CountRead»
	if err != nil {
		return wire.WithPath(err, «quote $m.Name», «quote .CountName»)
	}
«- end»
	v, err := «.Read»
	if err != nil {
		return wire.WithPath(err, «quote $m.Name», «quote .Name»)
	}
	*out = v
	return nil
}
«end»
// «.GoName»Parse reads every field of a '«.Name»' message. Any out parameter
// may be nil, in which case that field is not read.
func «.GoName»Parse(m *wire.Message«range .Fields», «.Param» «.OutType»«end») error {
«- range .Fields»
	if err := «$m.GoName»Get«.GoName»(m, «.Param»); err != nil {
		return err
	}
«- end»
	return nil
}
«- if .Setters»

// New«.GoName»Builder returns a builder for a '«.Name»' message with a zeroed
// header and fixed region.
func New«.GoName»Builder() *wire.Builder {
	return wire.NewBuilder(«.Order», «.GoName»HeaderSize, «.GoName»FixedSize)
}
«range .Fields»
// «$m.GoName»Set«.GoName» writes the '«.Name»' field of a '«$m.Name»' message.
«- if .CountWrite»
// The '«.CountName»' field is set to len(v).
«- end»
//
«comment (printf "v: %s" .InDoc)»
func «$m.GoName»Set«.GoName»(b *wire.Builder, v «.InType») error {
«- if .CountWrite»
	if err := «.CountWrite»; err != nil {
		return wire.WithPath(err, «quote $m.Name», «quote .CountName»)
	}
«- end»
	if err := «.Write»; err != nil {
		return wire.WithPath(err, «quote $m.Name», «quote .Name»)
	}
	return nil
}
«end»
«- end»
«end»
`
