package constpool

import (
	"testing"

	"chocogen/internal/ast"
)

// TestInterningDedupesByValue checks that repeated int and string literals
// collapse to one pool entry each (§8 Property 5, Scenario S4).
func TestInterningDedupesByValue(t *testing.T) {
	p := New()

	l1 := p.String("hi")
	l2 := p.String("hi")
	l3 := p.String("hi")
	if l1 != l2 || l2 != l3 {
		t.Fatalf("repeated string literal produced distinct labels: %v, %v, %v", l1, l2, l3)
	}
	if got := p.Strings(); len(got) != 1 || got[0] != "hi" {
		t.Fatalf("Strings() = %v, want exactly one entry \"hi\"", got)
	}

	i1 := p.Int(5)
	i2 := p.Int(5)
	if i1 != i2 {
		t.Fatalf("repeated int literal produced distinct labels: %v, %v", i1, i2)
	}
	if got := p.Ints(); len(got) != 1 || got[0] != 5 {
		t.Fatalf("Ints() = %v, want exactly one entry 5", got)
	}
}

// TestFalseTrueSingletons checks the fixed const_0/const_1 labeling order
// (§4.4, §8 Scenario S1).
func TestFalseTrueSingletons(t *testing.T) {
	p := New()
	if got, want := p.FalseLabel().String(), "const_0"; got != want {
		t.Errorf("FalseLabel() = %q, want %q", got, want)
	}
	if got, want := p.TrueLabel().String(), "const_1"; got != want {
		t.Errorf("TrueLabel() = %q, want %q", got, want)
	}
}

// TestFromLiteral checks every literal kind's mapping, including that None
// produces the zero (null-address) label.
func TestFromLiteral(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		lit  ast.Literal
		want string
	}{
		{"none", ast.NoneLiteral{}, ""},
		{"true", ast.BoolLiteral(true), "const_1"},
		{"false", ast.BoolLiteral(false), "const_0"},
		{"int", ast.IntLiteral(7), "const_2"},
		{"string", ast.StringLiteral("x"), "const_3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.FromLiteral(tt.lit).String(); got != tt.want {
				t.Errorf("FromLiteral(%v) = %q, want %q", tt.lit, got, tt.want)
			}
		})
	}
}

// TestStringLabelPanicsWhenNotInterned guards the compiler-bug invariant
// in StringLabel.
func TestStringLabelPanicsWhenNotInterned(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("StringLabel on a never-interned string did not panic")
		}
	}()
	New().StringLabel("never interned")
}
