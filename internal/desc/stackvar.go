package desc

import "chocogen/internal/ast"

// StackVar is a parameter or local variable descriptor, created when its
// enclosing function is analyzed (§3). Its activation-record slot comes
// from its name's position in the owning Func's Params or Locals slice, via
// Func.VarIndex; IsParam is not consulted there.
type StackVar struct {
	Name    string
	Type    ast.Type
	Init    ast.Literal // nil for parameters and uninitialized locals.
	Owner   *Func
	IsParam bool
}

// NewStackVar builds a stack variable descriptor owned by fn.
func NewStackVar(name string, typ ast.Type, init ast.Literal, fn *Func, isParam bool) *StackVar {
	return &StackVar{Name: name, Type: typ, Init: init, Owner: fn, IsParam: isParam}
}

// Index returns sv's 0-based activation-record slot index, delegating to
// its owning Func.VarIndex (§4.3).
func (sv *StackVar) Index() int {
	idx, err := sv.Owner.VarIndex(sv.Name)
	if err != nil {
		panic(err)
	}
	return idx
}
