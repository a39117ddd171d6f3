package llvmverify

import (
	"testing"

	"chocogen/internal/ast"
	"chocogen/internal/desc"
)

// TestCheckClassLayoutAgreesWithAttrCount checks that a class descriptor's
// attribute count matches the independently built LLVM struct field count
// (§8 Property 6, cross-checked a second way).
func TestCheckClassLayoutAgreesWithAttrCount(t *testing.T) {
	v := New()
	defer v.Dispose()

	c := desc.NewClass("Point", 4, true)
	c.AddAttribute(desc.NewAttr("x", ast.IntType, nil))
	c.AddAttribute(desc.NewAttr("y", ast.IntType, nil))

	if err := v.CheckClassLayout(c); err != nil {
		t.Errorf("CheckClassLayout: %v", err)
	}
}

// TestCheckClassLayoutHeaderOnlyClass guards the boundary case of a class
// with no attributes at all: the struct type must still agree on the
// 3-word header alone.
func TestCheckClassLayoutHeaderOnlyClass(t *testing.T) {
	v := New()
	defer v.Dispose()

	c := desc.NewClass("Empty", 4, true)
	if err := v.CheckClassLayout(c); err != nil {
		t.Errorf("CheckClassLayout on a header-only class: %v", err)
	}
}

// TestCheckDispatchArityAgreesWithParamCount checks that a method
// descriptor's parameter count matches the independently built LLVM
// function type's parameter count (§8 Property 3).
func TestCheckDispatchArityAgreesWithParamCount(t *testing.T) {
	v := New()
	defer v.Dispose()

	c := desc.NewClass("Greeter", 4, true)
	m := &desc.Func{
		Name:   "greet",
		FQName: "Greeter.greet",
		Params: []*desc.StackVar{
			desc.NewStackVar("self", ast.ClassType{Name: "Greeter"}, nil, nil, true),
			desc.NewStackVar("name", ast.StrType, nil, nil, true),
		},
	}
	c.AddMethod(m)

	if err := v.CheckDispatchArity(c); err != nil {
		t.Errorf("CheckDispatchArity: %v", err)
	}
}
