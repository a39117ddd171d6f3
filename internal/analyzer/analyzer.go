// Package analyzer implements the Program Analyzer (C6): it walks the
// annotated program tree and populates the global symbol table and the
// flat lists of classes, functions and globals that the rest of the
// pipeline consumes (§4.5).
package analyzer

import (
	"fmt"

	"chocogen/internal/ast"
	"chocogen/internal/desc"
	"chocogen/internal/symtab"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Result is everything the Program Analyzer produces: the populated global
// symbol table plus the flat registration-order lists the rest of the
// pipeline (constant pool aside) needs.
type Result struct {
	Global  *symtab.Table[desc.Descriptor]
	Globals []*desc.GlobalVar
	Classes []*desc.Class
	Funcs   []*desc.Func // Every function, flat: built-ins, methods, top-level, and nested.
}

// ---------------------
// ----- Functions -----
// ---------------------

// Analyze runs the full declaration-analysis pass over prog and returns the
// populated Result, or the first assertion-style error encountered
// (§4.5, §7 — the input contract guarantees a validated tree, so any
// failure here indicates a bug upstream of this package).
func Analyze(prog *ast.Program) (*Result, error) {
	global := symtab.New[desc.Descriptor](nil)
	res := &Result{Global: global}

	builtinClasses, builtinFuncs := registerBuiltins(global)
	res.Classes = append(res.Classes, builtinClasses...)
	res.Funcs = append(res.Funcs, builtinFuncs...)

	byName := make(map[string]*desc.Class, len(builtinClasses)+len(prog.Classes))
	for _, c := range builtinClasses {
		byName[c.Name] = c
	}

	// Step 1: globals first, so that later `global x` declarations inside
	// functions resolve (§4.5 step 1).
	for _, g := range prog.Globals {
		gv := desc.NewGlobalVar(g.Name, g.Type, g.Init)
		res.Globals = append(res.Globals, gv)
		global.Put(g.Name, gv)
	}

	// Step 2: top-level classes. object, int, bool, str occupy tags 0-3;
	// user classes start at 4 and increment in source order (§3).
	tag := 4
	for _, cd := range prog.Classes {
		super, ok := byName[cd.Super]
		if !ok {
			return nil, fmt.Errorf("assertion failure: super-class %q of %q not found", cd.Super, cd.Name)
		}
		cls := desc.NewClass(cd.Name, tag, true)
		tag++
		cls.Attrs = desc.CloneAttrs(super)
		cls.Methods = desc.CloneMethods(super)
		for _, a := range cd.Attrs {
			cls.AddAttribute(desc.NewAttr(a.Name, a.Type, a.Init))
		}
		for _, m := range cd.Methods {
			fn, err := analyzeFunc(m, 0, nil, global, cd.Name, &res.Funcs)
			if err != nil {
				return nil, err
			}
			cls.AddMethod(fn)
		}
		res.Classes = append(res.Classes, cls)
		byName[cd.Name] = cls
		global.Put(cd.Name, cls)
	}

	// Step 2 (continued): top-level functions.
	for _, fd := range prog.Funcs {
		fn, err := analyzeFunc(fd, 0, nil, global, "", &res.Funcs)
		if err != nil {
			return nil, err
		}
		global.Put(fd.Name, fn)
	}

	return res, nil
}

// analyzeFunc implements §4.5 step 3's four phases for one function or
// method definition. qualifier is the enclosing class name for a method,
// or "" for a free function; parent/enclosing establish the lexical
// nesting this descriptor is analyzed at. Every Func created — including
// nested ones discovered in phase (d) — is appended to acc so the caller
// ends up with the complete flat function list (§4.5: "the resulting
// descriptor is appended to the global function list").
func analyzeFunc(fd *ast.FuncDef, depth int, parent *desc.Func, enclosing *symtab.Table[desc.Descriptor], qualifier string, acc *[]*desc.Func) (*desc.Func, error) {
	fqName := fd.Name
	if qualifier != "" {
		fqName = qualifier + "." + fd.Name
	} else if parent != nil {
		fqName = parent.FQName + "." + fd.Name
	}

	// Phase (a): construct the descriptor with a fresh symbol table.
	fn := desc.NewFunc(fqName, fd.Name, depth, fd.Return, parent, enclosing)
	*acc = append(*acc, fn)

	// Phase (b): register parameters.
	for _, p := range fd.Params {
		sv := desc.NewStackVar(p.Name, p.Type, nil, fn, true)
		fn.Params = append(fn.Params, sv)
		fn.Scope.Put(p.Name, sv)
	}

	// Phase (c): local-declaration pass.
	for _, d := range fd.Decls {
		switch dd := d.(type) {
		case *ast.VarDef:
			sv := desc.NewStackVar(dd.Name, dd.Type, dd.Init, fn, false)
			fn.Locals = append(fn.Locals, sv)
			fn.Scope.Put(dd.Name, sv)
		case *ast.GlobalDecl:
			gv, ok := enclosingGlobal(enclosing).Get(dd.Name)
			if !ok {
				return nil, fmt.Errorf("assertion failure: global %q referenced by %q is not declared", dd.Name, fqName)
			}
			fn.Scope.Put(dd.Name, gv)
		case *ast.NonlocalDecl:
			if err := validateNonlocal(fn, dd.Name); err != nil {
				return nil, err
			}
			// Installs nothing: §4.5 step 3c — this is a contract on code
			// generation, not a shadowing binding.
		}
	}

	// Phase (d): nested-function pass, run only after every local of this
	// function is in place (§4.5's two-pass guarantee, Testable Property 8).
	for _, d := range fd.Decls {
		nfd, ok := d.(*ast.FuncDef)
		if !ok {
			continue
		}
		nested, err := analyzeFunc(nfd, depth+1, fn, fn.Scope, "", acc)
		if err != nil {
			return nil, err
		}
		fn.Scope.Put(nfd.Name, nested)
	}

	// Phase (e): attach the statement body.
	fn.Body = fd.Body

	return fn, nil
}

// enclosingGlobal walks up to the process-wide global table, which is the
// root of every scope's parent chain.
func enclosingGlobal(t *symtab.Table[desc.Descriptor]) *symtab.Table[desc.Descriptor] {
	for t.Parent() != nil {
		t = t.Parent()
	}
	return t
}

// validateNonlocal checks that name already resolves, through fn's lexical
// parent chain, to a StackVar — never installing anything (§4.5 step 3c).
func validateNonlocal(fn *desc.Func, name string) error {
	parent := fn.Scope.Parent()
	if parent == nil {
		return fmt.Errorf("assertion failure: nonlocal %q declared with no enclosing function scope", name)
	}
	d, ok := parent.Get(name)
	if !ok {
		return fmt.Errorf("assertion failure: nonlocal %q does not resolve to an enclosing local", name)
	}
	if _, isStackVar := d.(*desc.StackVar); !isStackVar {
		return fmt.Errorf("assertion failure: nonlocal %q does not resolve to a stack variable", name)
	}
	return nil
}
