package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/wippyai/msggen/dynamic"
	"github.com/wippyai/msggen/errors"
	"github.com/wippyai/msggen/schema"
	"github.com/wippyai/msggen/wire/wasmmem"
)

// runDecodeGuest instantiates a WASM module without running its start
// functions, so only data segments populate memory, and decodes length
// bytes at addr as the named message.
func runDecodeGuest(ctx context.Context, w io.Writer, s *schema.Schema, name, path string, addr, length uint64) error {
	msg, err := pickMessage(s, name)
	if err != nil {
		return err
	}
	if addr > math.MaxUint32 {
		return errors.Overflow(errors.PhaseDecode, []string{"addr"}, addr, "uint32")
	}
	if length > math.MaxUint32 {
		return errors.Overflow(errors.PhaseDecode, []string{"len"}, length, "uint32")
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read module: %w", err)
	}

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		return fmt.Errorf("compile %s: %w", path, err)
	}
	for _, fn := range compiled.ImportedFunctions() {
		if mod, _, _ := fn.Import(); mod == wasi_snapshot_preview1.ModuleName {
			if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
				return fmt.Errorf("instantiate WASI: %w", err)
			}
			break
		}
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("guest").WithStartFunctions())
	if err != nil {
		return fmt.Errorf("instantiate %s: %w", path, err)
	}
	mem := mod.Memory()
	if mem == nil {
		return errors.InvalidInput(errors.PhaseDecode, path+" defines no memory")
	}

	buf, err := wasmmem.Read(mem, uint32(addr), uint32(length))
	if err != nil {
		return err
	}
	rec, err := dynamic.Decode(msg, s, buf)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, rec.String())
	return err
}
