// Package runtime implements the Runtime-Library Binder (C9): it reads
// named assembly fragments from the embedded resource store and rewrites
// their literal placeholders against the constant pool (§4.8).
package runtime

import (
	"embed"
	"fmt"

	rtfiles "chocogen/resources/runtime"
)

// Store is a read-only collection of named `.s` text fragments. The
// teacher reads runtime/library text via plain ioutil.ReadFile against a
// path supplied on the command line (src/util/args.go); an embedded
// filesystem is the idiomatic modern-Go upgrade of the same idea and
// removes the need to ship the fragments as a separate install step,
// see DESIGN.md.
type Store struct {
	fsys embed.FS
}

// Default is the resource store built from the module's embedded runtime
// fragments.
var Default = &Store{fsys: rtfiles.FS}

// Fragment reads the raw, unrewritten text of the named resource (e.g.
// "alloc", "heap.init"). A missing resource is fatal per §6/§7.
func (s *Store) Fragment(name string) (string, error) {
	path := name + ".s"
	b, err := s.fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("missing runtime resource fragment %q: %w", name, err)
	}
	return string(b), nil
}
