// Package codegen implements the data-section emitter (C7), the
// text-section driver (C8), and the pluggable code-emitter contract (C10)
// that ties user-supplied instruction selection into the two of them.
package codegen

import (
	"fmt"
	"strings"

	"chocogen/internal/asm"
	"chocogen/internal/constpool"
	"chocogen/internal/desc"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// HeaderSize is the fixed object-header size, in words: type tag, size
// word, dispatch-table address (§3).
const HeaderSize = 3

// Offset constants for the fixed ABI layout (§6): int/bool payload and
// string length share offset 12 (the first attribute slot after the
// 3-word header); string bytes and list elements share offset 16.
const (
	AttrPayloadOffset = asm.WordSize * HeaderSize // 12
	StringBytesOffset = AttrPayloadOffset + asm.WordSize
	ListElemsOffset   = AttrPayloadOffset + asm.WordSize
)

// HeapDefaultPages is the default heap size in 4-KiB pages (32 MiB, §4.7).
const HeapDefaultPages = 32 * 1024 / 4

// Context is the per-compilation state every codegen component threads
// through: the assembly sink, the constant pool, and the label allocator,
// plus the flat descriptor lists the program analyzer produced. It plays
// the role of the teacher's backend.Asm + shared lir.Module bundle, but as
// one explicit value rather than several package-level or channel-fed
// pieces, per §9's "pass them as parameters of a CodeGenContext; no
// process-wide singletons".
type Context struct {
	Sink    *asm.Sink
	Pool    *constpool.Pool
	Labels  *asm.LabelAllocator
	Classes []*desc.Class
	Funcs   []*desc.Func
	Globals []*desc.GlobalVar
	Emitter Emitter
}

// ---------------------
// ----- Functions -----
// ---------------------

// NewContext builds a Context ready to drive a full compilation.
func NewContext(classes []*desc.Class, funcs []*desc.Func, globals []*desc.GlobalVar, emitter Emitter) *Context {
	return &Context{
		Sink:    asm.NewSink(),
		Pool:    constpool.New(),
		Labels:  &asm.LabelAllocator{},
		Classes: classes,
		Funcs:   funcs,
		Globals: globals,
		Emitter: emitter,
	}
}

// AttrOffset returns the byte offset of attribute index i from the start
// of an object (§6: "word_size * (HEADER_SIZE + index)").
func AttrOffset(i int) int {
	return asm.WordSize * (HeaderSize + i)
}

// MethodOffset returns the byte offset of method index i within a dispatch
// table (§6: "word_size * index for methods").
func MethodOffset(i int) int {
	return asm.WordSize * i
}

// DumpDescriptors returns a human-readable listing of every class,
// function and global descriptor registered on ctx, in registration
// order, one section per kind. It is grounded in the teacher's
// lir.Module.String/lir.Function.String pretty-printers: a
// strings.Builder filled by walking each slice and delegating per-entry
// formatting to fmt.Fprintf, with no effect on the generated assembly.
// Useful for debugging and golden-file testing.
func (ctx *Context) DumpDescriptors() string {
	var sb strings.Builder

	sb.WriteString("Classes:\n")
	for _, c := range ctx.Classes {
		fmt.Fprintf(&sb, "  %s (tag %d)\n", c.Name, c.Tag)
		for i, a := range c.Attrs {
			fmt.Fprintf(&sb, "    attr %d: %s %s\n", i, a.Name, a.Type.String())
		}
		for i, m := range c.Methods {
			fmt.Fprintf(&sb, "    method %d: %s\n", i, m.FQName)
		}
	}

	sb.WriteString("Globals:\n")
	for _, g := range ctx.Globals {
		fmt.Fprintf(&sb, "  %s %s\n", g.Name, g.Type.String())
	}

	sb.WriteString("Functions:\n")
	for _, f := range ctx.Funcs {
		fmt.Fprintf(&sb, "  %s(%d params, %d locals) -> %s\n", f.FQName, len(f.Params), len(f.Locals), f.Return.String())
	}

	return sb.String()
}
