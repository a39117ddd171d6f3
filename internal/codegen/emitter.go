package codegen

import (
	"chocogen/internal/ast"
	"chocogen/internal/desc"
)

// Emitter is the Code Emitter Interface (C10): the abstract surface the
// core requires from any pluggable instruction-selection consumer. The
// core never inspects what an Emitter writes into the sink; it only
// supplies descriptors, label minting, offset arithmetic, and the sink
// itself (§4.10).
type Emitter interface {
	// EmitTopLevel appends, for the program's top-level statement list,
	// whatever instructions make that code run as the body of main,
	// immediately after the entry preamble.
	EmitTopLevel(ctx *Context, body []ast.Stmt) error

	// EmitBody appends the instruction sequence for one function body.
	// Precondition: f's symbol table, params, locals, statements, and code
	// label are all populated. Postcondition: entering via f.Label with a
	// target-ABI-compliant call executes the statements and returns.
	EmitBody(ctx *Context, f *desc.Func) error

	// EmitCustom is a hook for any additional helper routine an Emitter
	// needs that isn't one particular function's body — e.g. shared
	// out-of-line slow paths jumped to from emitted bodies.
	EmitCustom(ctx *Context) error
}

// EmitFuncBody dispatches body emission through a Func's own BodyEmitter if
// it has one (built-ins carry desc.RuntimeBodyEmitter, a no-op, since their
// text comes from the runtime-library binder instead), otherwise through
// the Context's pluggable Emitter. This lets C8 invoke "each descriptor's
// emitter callback" uniformly per §4.7, without switching on Builtin
// itself.
func EmitFuncBody(ctx *Context, f *desc.Func) error {
	if f.Emitter != nil {
		return f.Emitter.EmitBody(f, ctx.Sink)
	}
	return ctx.Emitter.EmitBody(ctx, f)
}
