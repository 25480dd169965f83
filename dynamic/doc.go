// Package dynamic reads and writes messages by walking a validated schema at
// run time, without generated code.
//
// It calls the same wire readers and writers as generated accessors, so a
// buffer decodes identically either way. The msggen command uses it to
// decode hex dumps, and tests use it to check wire semantics for schemas
// that have no generated package.
//
//	s, _ := schema.Build(doc)
//	msg, _ := s.Message("values")
//	buf, err := dynamic.Encode(msg, s, map[string]any{
//		"id":     uint32(7),
//		"values": []string{"a", "b"},
//	})
//	rec, err := dynamic.Decode(msg, s, buf)
//	fmt.Print(rec) // id: 7, count: 2, values: ["a" "b"]
package dynamic
