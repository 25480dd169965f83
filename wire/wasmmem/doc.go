// Package wasmmem moves messages between Go and the linear memory of a
// WebAssembly guest running under wazero.
//
// A guest that produces a message hands back its address and length;
// Message copies those bytes out and wraps them so generated accessors can
// decode them:
//
//	m, err := wasmmem.Message(mod.Memory(), ptr, size, wire.LittleEndian,
//		basicconnect.ValuesHeaderSize, basicconnect.ValuesFixedSize)
//	var names []string
//	err = basicconnect.ValuesGetValues(m, &names)
//
// Messages built on the host go the other way with Write.
package wasmmem
