package ast

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Literal is a source-level constant value attached to a declaration's
// initializer or a literal expression node.
type Literal interface {
	Type() Type
	String() string
	isLiteral()
}

// IntLiteral is a boxed or inline int constant, e.g. `x:int = 5`.
type IntLiteral int32

// BoolLiteral is the `True`/`False` constant.
type BoolLiteral bool

// StringLiteral is a quoted string constant.
type StringLiteral string

// NoneLiteral is the `None` constant; its static type is supplied by the
// declaration it initializes, not by the literal itself.
type NoneLiteral struct{}

// ---------------------
// ----- Functions -----
// ---------------------

func (IntLiteral) isLiteral()    {}
func (BoolLiteral) isLiteral()   {}
func (StringLiteral) isLiteral() {}
func (NoneLiteral) isLiteral()   {}

// Type returns ast.IntType.
func (IntLiteral) Type() Type { return IntType }

// Type returns ast.BoolType.
func (BoolLiteral) Type() Type { return BoolType }

// Type returns ast.StrType.
func (StringLiteral) Type() Type { return StrType }

// Type returns ast.NoneType.
func (NoneLiteral) Type() Type { return NoneType }

// String formats the literal the way it would be spelled in source.
func (l IntLiteral) String() string { return fmt.Sprintf("%d", int32(l)) }

// String formats the literal the way it would be spelled in source.
func (l BoolLiteral) String() string {
	if l {
		return "True"
	}
	return "False"
}

// String formats the literal the way it would be spelled in source.
func (l StringLiteral) String() string { return fmt.Sprintf("%q", string(l)) }

// String returns "None".
func (NoneLiteral) String() string { return "None" }
