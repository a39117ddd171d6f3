package codegen

import (
	"fmt"

	"chocogen/internal/asm"
	"chocogen/internal/ast"
	"chocogen/internal/desc"
	"chocogen/internal/runtime"
)

// HeapReg is the callee-saved register holding the heap size in pages,
// kept live across the call into heap.init (§4.7).
const HeapReg = asm.S1

// HeapPtrReg and HeapBoundReg hold the bump-allocator's free pointer and
// upper bound, set on return from heap.init.
const (
	HeapPtrReg   = asm.S2
	HeapBoundReg = asm.S3
)

// Generate drives the whole compilation per §4.7: data section (prototypes,
// dispatch tables, globals), text section (entry preamble, top-level code,
// function bodies, runtime routines, custom code), then the trailing
// constant-pool data block. boolClass/intClass/strClass are the built-in
// descriptors needed to box False/True/ints/strings; store is the runtime
// resource store to read fragments from (§4.8).
func (ctx *Context) Generate(topLevel []ast.Stmt, boolClass, intClass, strClass *desc.Class, store *runtime.Store) (string, error) {
	ctx.Sink.DataSection()
	ctx.EmitSymbolicConstants()
	ctx.EmitPrototypes()
	ctx.EmitGlobals()

	ctx.Sink.TextSection()
	ctx.emitEntryPreamble()

	if err := ctx.Emitter.EmitTopLevel(ctx, topLevel); err != nil {
		return "", fmt.Errorf("emitting top-level statements: %w", err)
	}

	for _, f := range ctx.Funcs {
		if err := EmitFuncBody(ctx, f); err != nil {
			return "", fmt.Errorf("emitting body of %s: %w", f.FQName, err)
		}
	}

	binder := runtime.NewBinder(store, ctx.Pool)
	for _, name := range []string{"alloc", "alloc2", "abort", "heap.init"} {
		text, err := binder.Fragment(name)
		if err != nil {
			return "", fmt.Errorf("inlining runtime routine %q: %w", name, err)
		}
		ctx.Sink.Write("%s", text)
	}

	// Built-in functions (print, len, input, object.__init__) carry a
	// desc.RuntimeBodyEmitter rather than a statement list: their text also
	// comes from the resource store, keyed by fully-qualified name, rather
	// than from walking a body (§4.5, §4.8).
	for _, f := range ctx.Funcs {
		if !f.Builtin {
			continue
		}
		text, err := binder.Fragment(f.FQName)
		if err != nil {
			return "", fmt.Errorf("inlining built-in %q: %w", f.FQName, err)
		}
		ctx.Sink.Write("%s", text)
	}

	if err := ctx.Emitter.EmitCustom(ctx); err != nil {
		return "", fmt.Errorf("emitting custom routines: %w", err)
	}

	ctx.Sink.DataSection()
	ctx.EmitConstantPool(boolClass, intClass, strClass)

	return ctx.Sink.String(), nil
}

// emitEntryPreamble writes the fixed `main:` entry sequence (§4.7):
// computes the heap size, calls heap.init, installs the resulting
// pointer/bound, then clears the frame pointer and return address to
// signal "no caller" to anything that walks the activation-record chain.
func (ctx *Context) emitEntryPreamble() {
	ctx.Sink.GlobalLabel(asm.NewLabel("main"))
	ctx.Sink.LoadImm(HeapReg, HeapDefaultPages)
	ctx.Sink.Move(asm.A0, HeapReg)
	ctx.Sink.Call(asm.NewLabel("heap.init"))
	ctx.Sink.Move(HeapPtrReg, asm.A0)
	ctx.Sink.Move(HeapBoundReg, asm.A1)
	ctx.Sink.LoadImm(asm.Fp, 0)
	ctx.Sink.LoadImm(asm.Ra, 0)
}
