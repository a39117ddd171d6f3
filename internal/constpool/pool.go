// Package constpool implements the Constant Pool (C5): a deduplicating
// mapping from source-level literal values to unique labels, keyed by
// value rather than by the literal node's identity in the tree (§4.4).
package constpool

import (
	"chocogen/internal/asm"
	"chocogen/internal/ast"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Pool is the per-compilation constant pool (§9: "logically per-
// compilation", never a process-wide singleton). Emission order for each
// kind is its map's insertion order (§4.4, §4.9), which this type
// preserves with parallel slices alongside the lookup maps.
type Pool struct {
	ints    []int32
	intIdx  map[int32]asm.Label
	strs    []string
	strIdx  map[string]asm.Label
	next    int
	falseL  asm.Label
	trueL   asm.Label
}

// ---------------------
// ----- Functions -----
// ---------------------

// New returns an empty Pool with the False/True singleton labels
// precomputed at const_0/const_1 (§4.4, §4.9).
func New() *Pool {
	p := &Pool{
		intIdx: make(map[int32]asm.Label, 16),
		strIdx: make(map[string]asm.Label, 16),
	}
	p.falseL = p.mint()
	p.trueL = p.mint()
	return p
}

// mint allocates and returns the next const_<n> label.
func (p *Pool) mint() asm.Label {
	l := asm.ConstLabel(p.next)
	p.next++
	return l
}

// FalseLabel returns the fixed label of the boxed False singleton.
func (p *Pool) FalseLabel() asm.Label { return p.falseL }

// TrueLabel returns the fixed label of the boxed True singleton.
func (p *Pool) TrueLabel() asm.Label { return p.trueL }

// Int interns an int literal, returning its label. Repeated calls with the
// same value return the same label (Testable Property 5).
func (p *Pool) Int(v int32) asm.Label {
	if l, ok := p.intIdx[v]; ok {
		return l
	}
	l := p.mint()
	p.intIdx[v] = l
	p.ints = append(p.ints, v)
	return l
}

// String interns a string literal, returning its label.
func (p *Pool) String(s string) asm.Label {
	if l, ok := p.strIdx[s]; ok {
		return l
	}
	l := p.mint()
	p.strIdx[s] = l
	p.strs = append(p.strs, s)
	return l
}

// FromLiteral returns the label for any literal value: True/False go to
// their singleton labels, None becomes the zero (null-address) Label, and
// int/string literals are interned. Booleans and ints whose static type is
// `int`/`bool` are not looked up here at all by the data-section emitter —
// those encode inline (§4.6) — FromLiteral exists for the cases that do
// need a pool label: boxed ints created via explicit boxing, and strings.
func (p *Pool) FromLiteral(lit ast.Literal) asm.Label {
	switch v := lit.(type) {
	case ast.NoneLiteral:
		return asm.Label{}
	case ast.BoolLiteral:
		if bool(v) {
			return p.trueL
		}
		return p.falseL
	case ast.IntLiteral:
		return p.Int(int32(v))
	case ast.StringLiteral:
		return p.String(string(v))
	default:
		return asm.Label{}
	}
}

// Ints returns the interned int values in insertion order.
func (p *Pool) Ints() []int32 {
	return p.ints
}

// Strings returns the interned string values in insertion order.
func (p *Pool) Strings() []string {
	return p.strs
}

// StringLabel returns the label of an already-interned string, panicking
// if it was never interned — a compiler-bug condition, not a user error.
func (p *Pool) StringLabel(s string) asm.Label {
	l, ok := p.strIdx[s]
	if !ok {
		panic("compiler bug: string " + s + " was never interned")
	}
	return l
}

// IntLabel returns the label of an already-interned int, panicking if it
// was never interned — a compiler-bug condition, not a user error.
func (p *Pool) IntLabel(v int32) asm.Label {
	l, ok := p.intIdx[v]
	if !ok {
		panic("compiler bug: int constant was never interned")
	}
	return l
}
