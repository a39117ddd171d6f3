package desc

import (
	"fmt"

	"chocogen/internal/asm"
	"chocogen/internal/ast"
	"chocogen/internal/symtab"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// BodyEmitter emits the instruction sequence for one function body. User
// functions are all backed by the same pluggable consumer (C10); built-in
// functions are backed by RuntimeBodyEmitter, whose actual text is inlined
// separately by the runtime-library binder (§4.5, §4.7) rather than
// generated per call, so its EmitBody is a no-op.
type BodyEmitter interface {
	EmitBody(f *Func, sink *asm.Sink) error
}

// RuntimeBodyEmitter is the BodyEmitter installed on built-in function
// descriptors (print, len, input, object.__init__). Their bodies are not generated by
// walking a statement list — there isn't one — they are the verbatim
// runtime-library fragments inlined once by the text-section driver
// (§4.7 step "appends the runtime routines ... by dropping their text
// verbatim"). EmitBody therefore intentionally emits nothing.
type RuntimeBodyEmitter struct{}

// EmitBody is a no-op: see RuntimeBodyEmitter's doc comment.
func (RuntimeBodyEmitter) EmitBody(*Func, *asm.Sink) error { return nil }

// Func is a function or method descriptor (§3). FQName is the fully
// qualified name used to derive Label ("$<fqname>"); Name is the simple,
// unqualified name used for method-table lookup and override matching
// (§4.3's Class.add_method operates on simple names).
type Func struct {
	Name    string // Simple name, e.g. "f".
	FQName  string // Fully qualified, e.g. "A.f" or "f" at top level.
	Label   asm.Label
	Depth   int // Static lexical nesting depth; 0 for top-level functions and methods.
	Return  ast.Type
	Params  []*StackVar
	Locals  []*StackVar
	Body    []ast.Stmt
	Scope   *symtab.Table[Descriptor]
	Parent  *Func // nil for depth-0 functions.
	Emitter BodyEmitter
	Builtin bool
}

// ---------------------
// ----- Constants -----
// ---------------------

// ReservedSlots is the number of activation-record slots reserved between
// parameters and locals: the saved frame pointer and saved return address
// (§3's Func descriptor invariant).
const ReservedSlots = 2

// ---------------------
// ----- Functions -----
// ---------------------

// NewFunc constructs an empty Func descriptor with a fresh symbol table
// parented on enclosing (§4.5 step 3a). The caller is responsible for then
// populating Params, Locals and Body (steps 3b-3e).
func NewFunc(fqName, simpleName string, depth int, ret ast.Type, parent *Func, enclosing *symtab.Table[Descriptor]) *Func {
	return &Func{
		Name:   simpleName,
		FQName: fqName,
		Label:  asm.FuncLabel(fqName),
		Depth:  depth,
		Return: ret,
		Scope:  symtab.New[Descriptor](enclosing),
		Parent: parent,
	}
}

// VarIndex returns the 0-based activation-record slot index of name, using
// the parameter/local layout of §3: if name is the i-th parameter (0-based)
// its index is i; if it is the j-th local its index is
// len(Params) + ReservedSlots + j. VarIndex returns an unknown-name error
// when name is neither a parameter nor a local of f — per §7 this signals a
// compiler-bug condition, since non-locals and globals must be resolved
// through the symbol table instead (§4.3). StackVar.Index is the panicking
// entry point built on top of this; callers that can legitimately encounter
// an unresolved name (e.g. a pluggable emitter degrading gracefully) should
// call VarIndex directly instead of going through that wrapper.
func (f *Func) VarIndex(name string) (int, error) {
	for i, p := range f.Params {
		if p.Name == name {
			return i, nil
		}
	}
	for j, l := range f.Locals {
		if l.Name == name {
			return len(f.Params) + ReservedSlots + j, nil
		}
	}
	return 0, fmt.Errorf("compiler bug: %q is neither a parameter nor a local of function %q", name, f.FQName)
}
