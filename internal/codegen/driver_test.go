package codegen_test

import (
	"strings"
	"testing"

	"chocogen/internal/analyzer"
	"chocogen/internal/ast"
	"chocogen/internal/codegen"
	"chocogen/internal/desc"
	"chocogen/internal/rtstub"
	"chocogen/internal/runtime"
)

// builtinClasses locates the three built-in classes Generate needs, failing
// the test immediately if analysis didn't register them.
func builtinClasses(t *testing.T, classes []*desc.Class) (boolC, intC, strC *desc.Class) {
	t.Helper()
	for _, c := range classes {
		switch c.Name {
		case "bool":
			boolC = c
		case "int":
			intC = c
		case "str":
			strC = c
		}
	}
	if boolC == nil || intC == nil || strC == nil {
		t.Fatalf("analysis result missing a built-in class: bool=%v int=%v str=%v", boolC, intC, strC)
	}
	return
}

// generate runs the full analyzer->codegen pipeline over prog with the
// reference rtstub.Emitter, the way cmd/chocogen's compile does.
func generate(t *testing.T, prog *ast.Program) string {
	t.Helper()
	result, err := analyzer.Analyze(prog)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	boolC, intC, strC := builtinClasses(t, result.Classes)
	ctx := codegen.NewContext(result.Classes, result.Funcs, result.Globals, rtstub.Emitter{})
	text, err := ctx.Generate(prog.Body, boolC, intC, strC, runtime.Default)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return text
}

// TestEmptyProgramGeneratesEntryPoint is Scenario S1: an empty program still
// produces a valid main entry point and every built-in prototype/dispatch
// table, with no further statements.
func TestEmptyProgramGeneratesEntryPoint(t *testing.T) {
	text := generate(t, &ast.Program{})

	if !strings.Contains(text, ".globl\tmain\nmain:\n") {
		t.Error("output does not define a global main label")
	}
	if !strings.Contains(text, "$object$prototype:") {
		t.Error("output is missing the object class prototype")
	}
	if !strings.Contains(text, "$int$prototype:") {
		t.Error("output is missing the int class prototype")
	}
	if !strings.Contains(text, "const_0:") || !strings.Contains(text, "const_1:") {
		t.Error("output is missing the False/True singleton constants")
	}
}

// TestGenerateIsDeterministic is Testable Property 1: compiling the same
// program twice from scratch produces byte-identical output.
func TestGenerateIsDeterministic(t *testing.T) {
	prog := &ast.Program{
		Globals: []*ast.VarDef{
			{Name: "x", Type: ast.IntType, Init: ast.IntLiteral(5)},
		},
	}
	first := generate(t, prog)
	second := generate(t, prog)
	if first != second {
		t.Error("Generate produced different output across two runs of the same program")
	}
}

// TestSingleGlobalIntEncodesInline is Scenario S2: a single global int
// variable is emitted as a plain, unboxed word under its "$x" label, not as
// a constant-pool reference (§4.9's "int/bool encode inline" rule).
func TestSingleGlobalIntEncodesInline(t *testing.T) {
	prog := &ast.Program{
		Globals: []*ast.VarDef{
			{Name: "x", Type: ast.IntType, Init: ast.IntLiteral(42)},
		},
	}
	text := generate(t, prog)

	if !strings.Contains(text, ".globl\t$x\n$x:\n\t.word\t42\n") {
		t.Errorf("output does not contain the expected inline global encoding for x, got:\n%s", text)
	}
}

// TestStringLiteralInterning is Scenario S4: two globals initialized to the
// same string literal share one constant-pool entry.
func TestStringLiteralInterning(t *testing.T) {
	prog := &ast.Program{
		Globals: []*ast.VarDef{
			{Name: "a", Type: ast.StrType, Init: ast.StringLiteral("hi")},
			{Name: "b", Type: ast.StrType, Init: ast.StringLiteral("hi")},
		},
	}
	text := generate(t, prog)

	if n := strings.Count(text, `.asciz	"hi"`); n != 1 {
		t.Errorf(`output contains %d copies of the interned string "hi", want exactly 1`, n)
	}
}

// TestRuntimeFragmentsInlinedOnce checks that every fixed runtime routine
// and every built-in function body appears exactly once in the output,
// regardless of how many built-in calls a program makes (§4.7, §4.8).
func TestRuntimeFragmentsInlinedOnce(t *testing.T) {
	text := generate(t, &ast.Program{})

	for _, label := range []string{"alloc:", "alloc2:", "abort:", "heap.init:", "$print:", "$len:", "$input:"} {
		if n := strings.Count(text, "\n"+label); n != 1 {
			t.Errorf("label %q appears %d times in output, want exactly 1", label, n)
		}
	}
}
