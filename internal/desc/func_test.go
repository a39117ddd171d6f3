package desc

import (
	"testing"

	"chocogen/internal/ast"
)

// TestVarIndexLayout checks the activation-record slot arithmetic of §3:
// params occupy 0..n-1, then ReservedSlots slots, then locals.
func TestVarIndexLayout(t *testing.T) {
	f := NewFunc("f", "f", 0, ast.IntType, nil, nil)
	f.Params = []*StackVar{
		NewStackVar("a", ast.IntType, nil, f, true),
		NewStackVar("b", ast.IntType, nil, f, true),
	}
	f.Locals = []*StackVar{
		NewStackVar("x", ast.IntType, nil, f, false),
		NewStackVar("y", ast.IntType, nil, f, false),
	}

	tests := []struct {
		name string
		want int
	}{
		{"a", 0},
		{"b", 1},
		{"x", 2 + ReservedSlots},
		{"y", 3 + ReservedSlots},
	}
	for _, tt := range tests {
		got, err := f.VarIndex(tt.name)
		if err != nil {
			t.Fatalf("VarIndex(%q) returned error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("VarIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// TestVarIndexUnknownNameErrors checks that a name that is neither a
// parameter nor a local is reported as an error, not silently resolved.
func TestVarIndexUnknownNameErrors(t *testing.T) {
	f := NewFunc("f", "f", 0, ast.IntType, nil, nil)
	if _, err := f.VarIndex("nope"); err == nil {
		t.Fatal("VarIndex on an unknown name returned no error")
	}
}

// TestStackVarIndexDelegatesToOwner checks StackVar.Index against its
// owning Func's VarIndex.
func TestStackVarIndexDelegatesToOwner(t *testing.T) {
	f := NewFunc("g", "g", 0, ast.IntType, nil, nil)
	p := NewStackVar("p", ast.IntType, nil, f, true)
	f.Params = []*StackVar{p}

	if got := p.Index(); got != 0 {
		t.Errorf("StackVar.Index() = %d, want 0", got)
	}
}
