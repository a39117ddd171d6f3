package analyzer

import (
	"chocogen/internal/asm"
	"chocogen/internal/ast"
	"chocogen/internal/desc"
	"chocogen/internal/symtab"
)

// registerBuiltins creates and registers the built-in classes (object,
// int, bool, str, and the synthetic list class) and built-in functions
// (print, len, input), per §4.5: "The built-ins object, int, bool, str,
// and a synthetic list class are created and registered before user
// analysis begins, along with built-in functions print(arg), len(arg), and
// input(), each with a descriptor whose emitter is the runtime-library
// binder. The built-in object.__init__(self) is registered as a method of
// object."
//
// Tag assignment follows the fixed order required by §3: object, int,
// bool, str occupy consecutive low tags in that order; the list class uses
// the fixed tag -1 and has no dispatch table.
func registerBuiltins(global *symtab.Table[desc.Descriptor]) (classes []*desc.Class, funcs []*desc.Func) {
	object := desc.NewClass("object", 0, true)
	initFn := &desc.Func{
		Name:    "__init__",
		FQName:  "object.__init__",
		Label:   asm.FuncLabel("object.__init__"),
		Return:  ast.NoneType,
		Scope:   symtab.New[desc.Descriptor](global),
		Emitter: desc.RuntimeBodyEmitter{},
		Builtin: true,
	}
	self := desc.NewStackVar("self", ast.ClassType{Name: "object"}, nil, initFn, true)
	initFn.Params = []*desc.StackVar{self}
	object.AddMethod(initFn)

	intClass := desc.NewClass("int", 1, true)
	intClass.Methods = desc.CloneMethods(object)
	intClass.AddAttribute(desc.NewAttr("__int__", ast.IntType, nil))

	boolClass := desc.NewClass("bool", 2, true)
	boolClass.Methods = desc.CloneMethods(object)
	boolClass.AddAttribute(desc.NewAttr("__bool__", ast.BoolType, nil))

	strClass := desc.NewClass("str", 3, true)
	strClass.Methods = desc.CloneMethods(object)
	// String length/payload are emitted by the data-section emitter's
	// special string layout (§4.6, §4.9), not as ordinary Attr slots.

	listClass := desc.NewClass(".list", desc.ListTag, false)
	listClass.Methods = desc.CloneMethods(object)

	classes = []*desc.Class{object, intClass, boolClass, strClass, listClass}
	for _, c := range classes {
		global.Put(c.Name, c)
	}
	funcs = append(funcs, initFn)

	print := builtinFunc("print", []ast.Type{ast.ObjectType}, ast.NoneType, global)
	length := builtinFunc("len", []ast.Type{ast.ObjectType}, ast.IntType, global)
	input := builtinFunc("input", nil, ast.StrType, global)
	for _, f := range []*desc.Func{print, length, input} {
		global.Put(f.Name, f)
		funcs = append(funcs, f)
	}
	return classes, funcs
}

// builtinFunc constructs a top-level, depth-0 built-in function descriptor
// whose body is supplied by the runtime-library binder (C9) rather than by
// the pluggable code emitter.
func builtinFunc(name string, paramTypes []ast.Type, ret ast.Type, global *symtab.Table[desc.Descriptor]) *desc.Func {
	f := &desc.Func{
		Name:    name,
		FQName:  name,
		Label:   asm.FuncLabel(name),
		Return:  ret,
		Scope:   symtab.New[desc.Descriptor](global),
		Emitter: desc.RuntimeBodyEmitter{},
		Builtin: true,
	}
	for i, t := range paramTypes {
		p := desc.NewStackVar(paramName(i), t, nil, f, true)
		f.Params = append(f.Params, p)
	}
	return f
}

// paramName synthesizes a positional parameter name for built-ins, whose
// actual argument names are not meaningful (they're never referenced by a
// user symbol table lookup).
func paramName(i int) string {
	names := []string{"arg", "arg2", "arg3"}
	if i < len(names) {
		return names[i]
	}
	return "argN"
}
