// Package rtstub is a minimal reference implementation of codegen.Emitter,
// used only by this module's own tests to exercise the core without
// pulling in a full expression/statement compiler — which is explicitly
// the pluggable consumer's job, out of scope here (§1, §4.10). Its
// prologue/epilogue shape is grounded in the teacher's
// backend/riscv/function.go genFunction: grow the stack, save the old
// frame pointer and return address, set up the new frame pointer, and
// mirror the sequence on the way out.
package rtstub

import (
	"fmt"

	"chocogen/internal/asm"
	"chocogen/internal/ast"
	"chocogen/internal/codegen"
	"chocogen/internal/desc"
)

// Emitter is a Stub implementation of codegen.Emitter. It understands just
// enough of the statement/expression grammar to make end-to-end tests
// observable: Pass, Return (bare or with an int/bool literal or a
// parameter/local identifier), and nothing else. Any unsupported
// construct emits a jump to the runtime abort routine with the
// not-yet-implemented error code, which is a legitimate, documented
// runtime behavior (§7) rather than a Go-level failure.
type Emitter struct{}

// EmitBody writes f's prologue, its statement list, and its epilogue.
func (Emitter) EmitBody(ctx *codegen.Context, f *desc.Func) error {
	n := len(f.Params) + desc.ReservedSlots + len(f.Locals)
	frame := asm.WordSize * n
	sink := ctx.Sink

	sink.GlobalLabel(f.Label)
	sink.Ins2Imm("addi", asm.Sp, asm.Sp, -frame)
	sink.LoadStore("sw", asm.Ra, frame-asm.WordSize, asm.Sp)
	sink.LoadStore("sw", asm.Fp, frame-2*asm.WordSize, asm.Sp)
	sink.Ins2Imm("addi", asm.Fp, asm.Sp, frame)

	if err := emitStmts(ctx, f, f.Body); err != nil {
		return fmt.Errorf("function %s: %w", f.FQName, err)
	}

	sink.Label(epilogueLabel(f))
	sink.LoadStore("lw", asm.Ra, frame-asm.WordSize, asm.Sp)
	sink.LoadStore("lw", asm.Fp, frame-2*asm.WordSize, asm.Sp)
	sink.Ins2Imm("addi", asm.Sp, asm.Sp, frame)
	sink.Ret()
	return nil
}

// EmitTopLevel emits the module's top-level statements inline, in main's
// own frame (there are no locals to index beyond the reserved slots, since
// top-level code has no StackVars of its own to number).
func (Emitter) EmitTopLevel(ctx *codegen.Context, body []ast.Stmt) error {
	return emitStmts(ctx, nil, body)
}

// EmitCustom emits nothing: the stub needs no additional helper routines
// beyond what the runtime-library binder already inlines.
func (Emitter) EmitCustom(ctx *codegen.Context) error {
	return nil
}

func epilogueLabel(f *desc.Func) asm.Label {
	return asm.NewLabel(f.Label.String() + "$epilogue")
}

func emitStmts(ctx *codegen.Context, f *desc.Func, stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := emitStmt(ctx, f, s); err != nil {
			return err
		}
	}
	return nil
}

func emitStmt(ctx *codegen.Context, f *desc.Func, s ast.Stmt) error {
	switch st := s.(type) {
	case ast.PassStmt:
		return nil
	case ast.ReturnStmt:
		return emitReturn(ctx, f, st)
	default:
		emitUnimplemented(ctx)
		return nil
	}
}

// emitReturn loads the return value (if any) into a0 and jumps to the
// function's epilogue. A bare return, or a return of a literal kind this
// stub doesn't recognize, returns a zero/null a0; an identifier that is not
// a parameter or local of f (or any identifier at top level) emits the
// not-yet-implemented abort instead.
func emitReturn(ctx *codegen.Context, f *desc.Func, st ast.ReturnStmt) error {
	sink := ctx.Sink
	switch v := st.Value.(type) {
	case nil:
		sink.LoadImm(asm.A0, 0)
	case ast.LiteralExpr:
		emitLiteralInto(ctx, asm.A0, v.Lit)
	case ast.Identifier:
		if f == nil {
			emitUnimplemented(ctx)
		} else {
			emitLoadLocal(ctx, f, v.Name)
		}
	default:
		emitUnimplemented(ctx)
	}
	if f != nil {
		sink.Jump(epilogueLabel(f))
	} else {
		sink.Ret()
	}
	return nil
}

func emitLiteralInto(ctx *codegen.Context, reg asm.Reg, lit ast.Literal) {
	switch v := lit.(type) {
	case ast.IntLiteral:
		ctx.Sink.LoadImm(reg, int(v))
	case ast.BoolLiteral:
		if bool(v) {
			ctx.Sink.LoadImm(reg, 1)
		} else {
			ctx.Sink.LoadImm(reg, 0)
		}
	case ast.NoneLiteral:
		ctx.Sink.LoadImm(reg, 0)
	case ast.StringLiteral:
		ctx.Sink.LoadAddr(reg, ctx.Pool.String(string(v)))
	default:
		ctx.Sink.LoadImm(reg, 0)
	}
}

// emitLoadLocal loads the named parameter or local's activation-record
// slot into a0, using Func.VarIndex for the offset (§4.3).
func emitLoadLocal(ctx *codegen.Context, f *desc.Func, name string) {
	idx, err := f.VarIndex(name)
	if err != nil {
		emitUnimplemented(ctx)
		return
	}
	ctx.Sink.LoadStore("lw", asm.A0, idx*asm.WordSize, asm.Fp)
}

// emitUnimplemented jumps to the runtime abort routine with the
// not-yet-implemented error code, for any construct this reference stub
// doesn't cover.
func emitUnimplemented(ctx *codegen.Context) {
	ctx.Sink.LoadImm(asm.A0, asm.ErrUnimplemented)
	ctx.Sink.Jump(asm.NewLabel("abort"))
}
