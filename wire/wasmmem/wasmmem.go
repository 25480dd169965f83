package wasmmem

import (
	"encoding/binary"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/internal/abi"
	"github.com/wippyai/msggen/wire"
)

// Read copies length bytes at addr out of guest memory. The copy stays valid
// after the guest grows or rewrites its memory.
func Read(mem api.Memory, addr, length uint32) ([]byte, error) {
	if mem == nil {
		return nil, errors.InvalidInput(errors.PhaseDecode, "nil guest memory")
	}
	if length > abi.MaxMessageSize {
		return nil, errors.Overflow(errors.PhaseDecode, nil, length, "message size limit")
	}
	view, ok := mem.Read(addr, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseDecode, nil, addr, length, int(mem.Size()))
	}
	out := make([]byte, length)
	copy(out, view)
	return out, nil
}

// Message reads a message out of guest memory and wraps it for generated
// accessors.
func Message(mem api.Memory, addr, length uint32, order binary.ByteOrder, header, fixed uint32) (*wire.Message, error) {
	buf, err := Read(mem, addr, length)
	if err != nil {
		return nil, err
	}
	return wire.NewMessage(buf, order, header, fixed)
}

// Write copies an encoded message into guest memory at addr.
func Write(mem api.Memory, addr uint32, msg []byte) error {
	if mem == nil {
		return errors.InvalidInput(errors.PhaseEncode, "nil guest memory")
	}
	if !mem.Write(addr, msg) {
		return errors.OutOfBounds(errors.PhaseEncode, nil, addr, uint32(len(msg)), int(mem.Size()))
	}
	return nil
}
