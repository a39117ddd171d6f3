package ast

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Decl is any entry that may appear in a function's declaration block,
// ahead of its statement list: a local variable, a `global`/`nonlocal`
// capture, or a nested function definition. The program analyzer (C6)
// handles locals and global/nonlocal declarations in one pass, in slice
// order, and then nested functions in a second pass, so every nested
// function sees every local regardless of where it sits in this slice
// (§4.5 step 3).
type Decl interface {
	isDecl()
}

// VarDef declares a name with a static type and optional literal
// initializer. Used for globals, class attributes, function parameters
// (Init always nil) and function locals.
type VarDef struct {
	Name string
	Type Type
	Init Literal // nil if uninitialized (parameters; attributes with no default).
}

// GlobalDecl is a `global x` declaration inside a function body: x is
// bound, within this function, to the GlobalVar descriptor of the same
// name at the top level.
type GlobalDecl struct {
	Name string
}

// NonlocalDecl is a `nonlocal x` declaration inside a nested function: x
// must already resolve to a StackVar through the lexical parent chain. It
// installs no new binding; it is purely a contract on code generation
// (§4.5 step 3c).
type NonlocalDecl struct {
	Name string
}

// ---------------------
// ----- Functions -----
// ---------------------

func (*VarDef) isDecl()       {}
func (*GlobalDecl) isDecl()   {}
func (*NonlocalDecl) isDecl() {}
func (*FuncDef) isDecl()      {}

// ClassDef is a top-level class declaration.
type ClassDef struct {
	Name    string
	Super   string // Name of the super-class; "object" for the root built-ins.
	Attrs   []*VarDef
	Methods []*FuncDef
}

// FuncDef is a function or method definition. Nested FuncDefs appear in
// their enclosing function's Decls.
type FuncDef struct {
	Name   string
	Params []*VarDef
	Return Type
	Decls  []Decl
	Body   []Stmt
}

// Program is the root of the annotated tree: the whole compilation unit.
type Program struct {
	Globals []*VarDef
	Classes []*ClassDef
	Funcs   []*FuncDef
	Body    []Stmt
}
