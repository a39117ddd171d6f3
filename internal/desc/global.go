package desc

import (
	"chocogen/internal/asm"
	"chocogen/internal/ast"
)

// GlobalVar is a top-level variable descriptor. Created during declaration
// analysis (§4.5 step 1); immutable thereafter; emitted once into the data
// section (§4.6 step 3).
type GlobalVar struct {
	Name  string
	Type  ast.Type
	Init  ast.Literal // nil if uninitialized.
	Label asm.Label   // "$<name>".
}

// NewGlobalVar builds the descriptor and its fixed "$<name>" label.
func NewGlobalVar(name string, typ ast.Type, init ast.Literal) *GlobalVar {
	return &GlobalVar{Name: name, Type: typ, Init: init, Label: asm.GlobalVarLabel(name)}
}
