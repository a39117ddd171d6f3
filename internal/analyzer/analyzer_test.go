package analyzer

import (
	"testing"

	"chocogen/internal/ast"
	"chocogen/internal/desc"
)

// TestAnalyzeRegistersBuiltins checks that built-in classes keep the fixed
// tag order and that the global table resolves them by name (§3).
func TestAnalyzeRegistersBuiltins(t *testing.T) {
	res, err := Analyze(&ast.Program{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	wantTags := map[string]int{"object": 0, "int": 1, "bool": 2, "str": 3, ".list": -1}
	for name := range wantTags {
		d, ok := res.Global.Get(name)
		if !ok {
			t.Fatalf("global table missing built-in %q", name)
		}
		if _, ok := d.(*desc.Class); !ok {
			t.Errorf("global entry %q is not a *desc.Class: %T", name, d)
		}
	}
	for _, c := range res.Classes {
		if want, ok := wantTags[c.Name]; ok && c.Tag != want {
			t.Errorf("class %q has tag %d, want %d", c.Name, c.Tag, want)
		}
	}
}

// TestUserClassTagsStartAtFour checks that user classes are assigned
// monotonically increasing tags starting at 4, in source order (§3).
func TestUserClassTagsStartAtFour(t *testing.T) {
	prog := &ast.Program{
		Classes: []*ast.ClassDef{
			{Name: "A", Super: "object"},
			{Name: "B", Super: "object"},
		},
	}
	res, err := Analyze(prog)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var a, b *desc.Class
	for _, c := range res.Classes {
		switch c.Name {
		case "A":
			a = c
		case "B":
			b = c
		}
	}
	if a == nil || b == nil {
		t.Fatal("analysis result missing user classes A and/or B")
	}
	if a.Tag != 4 {
		t.Errorf("A.Tag = %d, want 4", a.Tag)
	}
	if b.Tag != 5 {
		t.Errorf("B.Tag = %d, want 5", b.Tag)
	}
}

// TestSubclassOverridesMethodInPlace is Scenario S3: a subclass overriding
// a super-class method keeps the inherited method's dispatch slot.
func TestSubclassOverridesMethodInPlace(t *testing.T) {
	prog := &ast.Program{
		Classes: []*ast.ClassDef{
			{
				Name:  "Animal",
				Super: "object",
				Methods: []*ast.FuncDef{
					{Name: "speak", Params: []*ast.VarDef{{Name: "self", Type: ast.ClassType{Name: "Animal"}}}, Return: ast.NoneType},
				},
			},
			{
				Name:  "Dog",
				Super: "Animal",
				Methods: []*ast.FuncDef{
					{Name: "speak", Params: []*ast.VarDef{{Name: "self", Type: ast.ClassType{Name: "Dog"}}}, Return: ast.NoneType},
				},
			},
		},
	}
	res, err := Analyze(prog)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var animal, dog *desc.Class
	for _, c := range res.Classes {
		switch c.Name {
		case "Animal":
			animal = c
		case "Dog":
			dog = c
		}
	}
	if animal == nil || dog == nil {
		t.Fatal("analysis result missing Animal and/or Dog")
	}

	wantIdx := animal.MethodIndex("speak")
	if wantIdx < 0 {
		t.Fatal("Animal has no speak method registered")
	}
	if got := dog.MethodIndex("speak"); got != wantIdx {
		t.Errorf("Dog.MethodIndex(speak) = %d, want %d (same slot as Animal)", got, wantIdx)
	}
	if dog.Methods[wantIdx].FQName != "Dog.speak" {
		t.Errorf("Dog's speak slot holds %q, want \"Dog.speak\"", dog.Methods[wantIdx].FQName)
	}
}

// TestNestedFunctionCapturesNonlocal is Scenario S5: a nested function
// declaring `nonlocal x` must resolve x to the enclosing function's local,
// and analysis must not fail or install a new binding for it.
func TestNestedFunctionCapturesNonlocal(t *testing.T) {
	inner := &ast.FuncDef{
		Name: "inner",
		Decls: []ast.Decl{
			&ast.NonlocalDecl{Name: "x"},
		},
		Body: []ast.Stmt{ast.PassStmt{}},
	}
	outer := &ast.FuncDef{
		Name: "outer",
		Decls: []ast.Decl{
			&ast.VarDef{Name: "x", Type: ast.IntType, Init: ast.IntLiteral(0)},
			inner,
		},
		Body: []ast.Stmt{ast.PassStmt{}},
	}
	prog := &ast.Program{Funcs: []*ast.FuncDef{outer}}

	res, err := Analyze(prog)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var outerFn, innerFn *desc.Func
	for _, f := range res.Funcs {
		switch f.FQName {
		case "outer":
			outerFn = f
		case "outer.inner":
			innerFn = f
		}
	}
	if outerFn == nil || innerFn == nil {
		t.Fatal("analysis result missing outer and/or outer.inner")
	}
	if innerFn.Depth != 1 {
		t.Errorf("inner.Depth = %d, want 1", innerFn.Depth)
	}
	if innerFn.Parent != outerFn {
		t.Error("inner.Parent does not point to outer")
	}
	if _, err := outerFn.VarIndex("x"); err != nil {
		t.Errorf("outer.VarIndex(x) failed: %v", err)
	}
	// nonlocal installs no binding of its own in inner's scope: it must
	// still resolve only through the parent chain (§4.5 step 3c).
	if innerFn.Scope.Declares("x") {
		t.Error("inner's own scope declares x directly; nonlocal must not install a binding")
	}
	if _, ok := innerFn.Scope.Get("x"); !ok {
		t.Error("inner.Scope.Get(x) failed to resolve through the parent chain")
	}
}

// TestNonlocalWithoutEnclosingBindingFails checks that a nonlocal
// declaration with no matching enclosing local is an analysis error, not a
// silently accepted no-op (§4.5 step 3c, §7).
func TestNonlocalWithoutEnclosingBindingFails(t *testing.T) {
	inner := &ast.FuncDef{
		Name:  "inner",
		Decls: []ast.Decl{&ast.NonlocalDecl{Name: "missing"}},
		Body:  []ast.Stmt{ast.PassStmt{}},
	}
	outer := &ast.FuncDef{
		Name:  "outer",
		Decls: []ast.Decl{inner},
		Body:  []ast.Stmt{ast.PassStmt{}},
	}
	prog := &ast.Program{Funcs: []*ast.FuncDef{outer}}

	if _, err := Analyze(prog); err == nil {
		t.Fatal("Analyze accepted a nonlocal with no matching enclosing local")
	}
}
