package ast

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Expr is any expression node. Every concrete variant carries its own
// inferred static Type, as guaranteed by the input contract (§6): semantic
// analysis has already run and every expression resolves to exactly one
// Type. The code generator core never inspects these beyond structural
// bookkeeping (e.g. literal deduplication into the constant pool); emitting
// instructions for them is the pluggable consumer's job (§4.10).
type Expr interface {
	Type() Type
	isExpr()
}

// BinaryOp enumerates the binary operators available to the source
// language's typed subset.
type BinaryOp int

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpFloorDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLe
	OpGt
	OpGe
	OpIs
	OpAnd
	OpOr
	OpConcat // string/list concatenation via '+'.
)

const (
	OpNeg UnaryOp = iota
	OpNot
)

// Identifier references a name resolved by the enclosing symbol table: a
// parameter, local, global, attribute-implicit self, or a captured
// nonlocal/global.
type Identifier struct {
	Name string
	Typ  Type
}

// LiteralExpr wraps a Literal so it can appear as an Expr.
type LiteralExpr struct {
	Lit Literal
	Typ Type // Usually Lit.Type(), but None literals take the declared type.
}

// UnaryExpr applies a unary operator to an operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Typ     Type
}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Expr
	Typ         Type
}

// CallExpr calls a top-level function by name.
type CallExpr struct {
	Callee string
	Args   []Expr
	Typ    Type
}

// MethodCallExpr dispatches a method call through an object's receiver.
type MethodCallExpr struct {
	Receiver Expr
	Method   string
	Args     []Expr
	Typ      Type
}

// NewInstanceExpr allocates and initializes a new instance of a class.
type NewInstanceExpr struct {
	Class string
	Typ   Type
}

// AttrExpr reads an object's attribute.
type AttrExpr struct {
	Receiver Expr
	Attr     string
	Typ      Type
}

// IndexExpr indexes into a list or string.
type IndexExpr struct {
	Target Expr
	Index  Expr
	Typ    Type
}

// ListExpr constructs a list literal from its elements.
type ListExpr struct {
	Elems []Expr
	Typ   Type
}

// ---------------------
// ----- Functions -----
// ---------------------

func (Identifier) isExpr()      {}
func (LiteralExpr) isExpr()     {}
func (UnaryExpr) isExpr()       {}
func (BinaryExpr) isExpr()      {}
func (CallExpr) isExpr()        {}
func (MethodCallExpr) isExpr()  {}
func (NewInstanceExpr) isExpr() {}
func (AttrExpr) isExpr()        {}
func (IndexExpr) isExpr()       {}
func (ListExpr) isExpr()        {}

// Type returns the identifier's resolved static type.
func (i Identifier) Type() Type { return i.Typ }

// Type returns the literal expression's static type.
func (l LiteralExpr) Type() Type { return l.Typ }

// Type returns the unary expression's result type.
func (u UnaryExpr) Type() Type { return u.Typ }

// Type returns the binary expression's result type.
func (b BinaryExpr) Type() Type { return b.Typ }

// Type returns the call's result type.
func (c CallExpr) Type() Type { return c.Typ }

// Type returns the method call's result type.
func (m MethodCallExpr) Type() Type { return m.Typ }

// Type returns the instantiated class type.
func (n NewInstanceExpr) Type() Type { return n.Typ }

// Type returns the attribute's static type.
func (a AttrExpr) Type() Type { return a.Typ }

// Type returns the indexed element's static type.
func (x IndexExpr) Type() Type { return x.Typ }

// Type returns the list literal's static type.
func (l ListExpr) Type() Type { return l.Typ }
