package schema

// FieldSpec is one field entry of a schema document, as written.
type FieldSpec struct {
	Name           string `yaml:"name" json:"name"`
	Type           string `yaml:"type" json:"type"`
	Doc            string `yaml:"doc,omitempty" json:"doc,omitempty"`
	ArraySizeField string `yaml:"array-size-field,omitempty" json:"array-size-field,omitempty"`
	StructType     string `yaml:"struct-type,omitempty" json:"struct-type,omitempty"`
	ArraySize      uint32 `yaml:"array-size,omitempty" json:"array-size,omitempty"`
}

// MessageSpec is one message entry of a schema document.
type MessageSpec struct {
	Name       string      `yaml:"name" json:"name"`
	Doc        string      `yaml:"doc,omitempty" json:"doc,omitempty"`
	Fields     []FieldSpec `yaml:"fields" json:"fields"`
	HeaderSize uint32      `yaml:"header-size,omitempty" json:"header-size,omitempty"`
	Readonly   bool        `yaml:"readonly,omitempty" json:"readonly,omitempty"`
}

// StructSpec is one struct type entry of a schema document.
type StructSpec struct {
	Name   string      `yaml:"name" json:"name"`
	Doc    string      `yaml:"doc,omitempty" json:"doc,omitempty"`
	Fields []FieldSpec `yaml:"fields" json:"fields"`
}

// Document is a parsed, not yet validated, schema document.
type Document struct {
	Endian         string        `yaml:"endian,omitempty" json:"endian,omitempty"`
	StringEncoding string        `yaml:"string-encoding,omitempty" json:"string-encoding,omitempty"`
	Structs        []StructSpec  `yaml:"structs,omitempty" json:"structs,omitempty"`
	Messages       []MessageSpec `yaml:"messages" json:"messages"`
}
