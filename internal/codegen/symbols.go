package codegen

import "chocogen/internal/asm"

// EmitSymbolicConstants defines, once, the fixed vocabulary of symbolic
// constants the runtime-library fragments depend on (§4.8): syscall
// numbers and the fixed attribute offsets for int/str/list payloads. Must
// run before any fragment referencing them is inlined, so it belongs in
// the data-section preamble (§4.7's "re-enters the data section" note
// does not apply here — these are defined once, up front).
func (ctx *Context) EmitSymbolicConstants() {
	ctx.Sink.Equiv("sbrk", asm.SyscallBrk)
	ctx.Sink.Equiv("print_string", asm.SyscallWrite)
	ctx.Sink.Equiv("read_string", 63)
	ctx.Sink.Equiv("exit2", asm.SyscallExit)

	ctx.Sink.Equiv("error_argument", asm.ErrArgument)
	ctx.Sink.Equiv("error_div_zero", asm.ErrDivideByZero)
	ctx.Sink.Equiv("error_out_of_bounds", asm.ErrOutOfBounds)
	ctx.Sink.Equiv("error_none_access", asm.ErrNoneAccess)
	ctx.Sink.Equiv("error_out_of_memory", asm.ErrOutOfMemory)
	ctx.Sink.Equiv("error_unimplemented", asm.ErrUnimplemented)

	ctx.Sink.Equiv(".__int__", AttrPayloadOffset)
	ctx.Sink.Equiv(".__bool__", AttrPayloadOffset)
	ctx.Sink.Equiv(".__str__", StringBytesOffset)
	ctx.Sink.Equiv(".__elts__", ListElemsOffset)

	// Fixed low type tags assigned by registerBuiltins, needed by the
	// print/len runtime fragments to dispatch on an object's header.
	ctx.Sink.Equiv("tag_object", 0)
	ctx.Sink.Equiv("tag_int", 1)
	ctx.Sink.Equiv("tag_bool", 2)
	ctx.Sink.Equiv("tag_str", 3)
}
