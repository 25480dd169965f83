package dynamic

import (
	"fmt"
	"strings"

	"github.com/wippyai/msggen/schema"
)

// Value is one decoded field.
type Value struct {
	// Value holds uint8, uint16, uint32, uint64, int32, int64, string,
	// []string, []byte, []uint32, Record or []Record depending on Kind.
	Value any
	Name  string
	Kind  schema.Kind
}

// Record is a decoded message or struct, fields in schema order.
type Record struct {
	Name   string
	Fields []Value
}

// Get returns the value of a field by schema name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Map converts the record into the form Encode accepts. Nested records are
// converted as well.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Fields))
	for _, f := range r.Fields {
		switch v := f.Value.(type) {
		case Record:
			out[f.Name] = v.Map()
		case []Record:
			list := make([]any, len(v))
			for i, e := range v {
				list[i] = e.Map()
			}
			out[f.Name] = list
		default:
			out[f.Name] = v
		}
	}
	return out
}

// String renders the record one field per line, nested records indented.
func (r Record) String() string {
	var b strings.Builder
	r.write(&b, "")
	return b.String()
}

func (r Record) write(b *strings.Builder, indent string) {
	for _, f := range r.Fields {
		switch v := f.Value.(type) {
		case Record:
			fmt.Fprintf(b, "%s%s:\n", indent, f.Name)
			v.write(b, indent+"  ")
		case []Record:
			fmt.Fprintf(b, "%s%s: [%d]\n", indent, f.Name, len(v))
			for i, e := range v {
				fmt.Fprintf(b, "%s  [%d]:\n", indent, i)
				e.write(b, indent+"    ")
			}
		case string:
			fmt.Fprintf(b, "%s%s: %q\n", indent, f.Name, v)
		case []string:
			fmt.Fprintf(b, "%s%s: %q\n", indent, f.Name, v)
		case []byte:
			fmt.Fprintf(b, "%s%s: % x\n", indent, f.Name, v)
		default:
			fmt.Fprintf(b, "%s%s: %v\n", indent, f.Name, v)
		}
	}
}
