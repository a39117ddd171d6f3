package desc

import "chocogen/internal/ast"

// Attr is a class attribute descriptor: a static type plus an optional
// initial literal, held by a Class in declaration order (including
// inherited attributes copied from the super-class, §4.5 step 2).
type Attr struct {
	Name string
	Type ast.Type
	Init ast.Literal // nil if uninitialized (encodes as a null address for class types, §4.9).
}

// NewAttr builds an attribute descriptor.
func NewAttr(name string, typ ast.Type, init ast.Literal) *Attr {
	return &Attr{Name: name, Type: typ, Init: init}
}
