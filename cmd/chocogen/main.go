// Command chocogen drives the code-generation pipeline over an in-memory
// annotated program tree. Lexing, parsing and semantic analysis are
// external collaborators (§1); this binary exists to wire the stages
// together and report fatal errors the way the teacher's run()/main() does
// — a returned error bubbles up to a single os.Exit(1) site — trimmed down
// from the teacher's main.go, which also owns CLI flags, output-file
// writers, and an LLVM-backend toggle that have no home in this scope.
package main

import (
	"fmt"
	"os"

	"chocogen/internal/analyzer"
	"chocogen/internal/ast"
	"chocogen/internal/codegen"
	"chocogen/internal/desc"
	"chocogen/internal/rtstub"
	"chocogen/internal/runtime"
)

// compile runs the full pipeline over prog and returns the generated
// assembly text, or the first fatal error encountered.
func compile(prog *ast.Program) (string, error) {
	result, err := analyzer.Analyze(prog)
	if err != nil {
		return "", fmt.Errorf("analysis error: %w", err)
	}

	var boolClass, intClass, strClass *desc.Class
	for _, c := range result.Classes {
		switch c.Name {
		case "bool":
			boolClass = c
		case "int":
			intClass = c
		case "str":
			strClass = c
		}
	}
	if boolClass == nil || intClass == nil || strClass == nil {
		return "", fmt.Errorf("code generation error: built-in classes missing from analysis result")
	}

	ctx := codegen.NewContext(result.Classes, result.Funcs, result.Globals, rtstub.Emitter{})
	text, err := ctx.Generate(prog.Body, boolClass, intClass, strClass, runtime.Default)
	if err != nil {
		return "", fmt.Errorf("code generation error: %w", err)
	}
	return text, nil
}

func main() {
	// No source-level frontend is wired here (§1): main is a placeholder
	// entry point so the module builds as a command, with the empty
	// program as its trivial input. Real invocations construct an
	// *ast.Program some other way and call compile directly.
	text, err := compile(&ast.Program{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "chocogen: %s\n", err)
		os.Exit(1)
	}
	fmt.Print(text)
}
