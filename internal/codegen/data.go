package codegen

import (
	"chocogen/internal/asm"
	"chocogen/internal/ast"
	"chocogen/internal/desc"
)

// EmitPrototypes writes one prototype object per class, in registration
// order (built-ins first, then user classes in source order), followed by
// a dispatch table for every class that has one (§4.6 steps 1-2).
func (ctx *Context) EmitPrototypes() {
	for _, c := range ctx.Classes {
		ctx.emitPrototype(c)
	}
	for _, c := range ctx.Classes {
		if !c.DispatchTable.IsZero() {
			ctx.emitDispatchTable(c)
		}
	}
}

// emitPrototype writes one class's prototype object: header (tag, size,
// dispatch-table address) followed by one word per attribute holding its
// initial value (§4.6 step 1, §8 Property 6).
func (ctx *Context) emitPrototype(c *desc.Class) {
	ctx.Sink.Comment(c.Name + " prototype")
	ctx.Sink.GlobalLabel(c.Prototype)
	size := HeaderSize + len(c.Attrs)
	ctx.Sink.Word(c.Tag)
	ctx.Sink.Word(size)
	ctx.Sink.WordAddr(c.DispatchTable)
	for _, a := range c.Attrs {
		ctx.emitInitialValue(a.Type, a.Init)
	}
	ctx.Sink.Align(2)
}

// emitDispatchTable writes one word per method, in method-table order,
// pointing to that method's code label (§4.6 step 2, §8 Property 3).
func (ctx *Context) emitDispatchTable(c *desc.Class) {
	ctx.Sink.Comment(c.Name + " dispatch table")
	ctx.Sink.GlobalLabel(c.DispatchTable)
	for _, m := range c.Methods {
		ctx.Sink.WordAddr(m.Label)
	}
	ctx.Sink.Align(2)
}

// EmitGlobals writes, for each top-level variable, a global label followed
// by one word holding its initial encoding (§4.6 step 3).
func (ctx *Context) EmitGlobals() {
	for _, g := range ctx.Globals {
		ctx.Sink.GlobalLabel(g.Label)
		ctx.emitInitialValue(g.Type, g.Init)
	}
}

// emitInitialValue writes the single word that represents a declaration's
// initial value, following §4.9's "initial-value emission" rule: int/bool
// encode inline, None-of-class-type is a null address, and everything else
// (strings) references the constant pool, interning on first use.
func (ctx *Context) emitInitialValue(t ast.Type, lit ast.Literal) {
	switch v := lit.(type) {
	case nil:
		ctx.Sink.Word(0)
	case ast.IntLiteral:
		ctx.Sink.Word(int(v))
	case ast.BoolLiteral:
		if bool(v) {
			ctx.Sink.Word(1)
		} else {
			ctx.Sink.Word(0)
		}
	case ast.NoneLiteral:
		if ast.IsSpecial(t) {
			ctx.Sink.Word(0)
		} else {
			ctx.Sink.WordAddr(ctx.Pool.FromLiteral(v))
		}
	case ast.StringLiteral:
		ctx.Sink.WordAddr(ctx.Pool.String(string(v)))
	default:
		ctx.Sink.Word(0)
	}
}

// EmitConstantPool writes the trailing constants block: the False/True
// singletons, then every interned string, then every interned int, all in
// insertion order (§4.9). This runs last because bodies and runtime
// routines discover new constants while they're being emitted (§4.7).
func (ctx *Context) EmitConstantPool(boolClass, intClass, strClass *desc.Class) {
	ctx.Sink.Comment("boxed False/True singletons")
	ctx.emitBoxedBool(ctx.Pool.FalseLabel(), false, boolClass)
	ctx.emitBoxedBool(ctx.Pool.TrueLabel(), true, boolClass)

	for _, s := range ctx.Pool.Strings() {
		ctx.emitBoxedString(ctx.Pool.StringLabel(s), s, strClass)
	}
	for _, n := range ctx.Pool.Ints() {
		ctx.emitBoxedInt(n, intClass)
	}
}

func (ctx *Context) emitBoxedBool(label asm.Label, v bool, boolClass *desc.Class) {
	ctx.Sink.GlobalLabel(label)
	ctx.Sink.Word(boolClass.Tag)
	ctx.Sink.Word(HeaderSize + 1)
	ctx.Sink.WordAddr(boolClass.DispatchTable)
	if v {
		ctx.Sink.Word(1)
	} else {
		ctx.Sink.Word(0)
	}
	ctx.Sink.Align(2)
}

func (ctx *Context) emitBoxedInt(n int32, intClass *desc.Class) {
	ctx.Sink.GlobalLabel(ctx.Pool.IntLabel(n))
	ctx.Sink.Word(intClass.Tag)
	ctx.Sink.Word(HeaderSize + 1)
	ctx.Sink.WordAddr(intClass.DispatchTable)
	ctx.Sink.Word(int(n))
	ctx.Sink.Align(2)
}

func (ctx *Context) emitBoxedString(l asm.Label, s string, strClass *desc.Class) {
	ctx.Sink.GlobalLabel(l)
	words := 1 + (len(s)+1+3)/4 // length word + nul-terminated payload, word-padded
	ctx.Sink.Word(strClass.Tag)
	ctx.Sink.Word(HeaderSize + words)
	ctx.Sink.WordAddr(strClass.DispatchTable)
	ctx.Sink.Word(len(s))
	ctx.Sink.Asciz(s)
	ctx.Sink.Align(2)
}
