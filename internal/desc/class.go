package desc

import "chocogen/internal/asm"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Class is a class descriptor (§3): its ordered attribute and method
// tables include inherited members, with overrides substituted in place so
// that subclass slot indices are identical to the super-class's (§4.3,
// Testable Property 2).
type Class struct {
	Name          string
	Tag           int
	Attrs         []*Attr
	Methods       []*Func
	Prototype     asm.Label
	DispatchTable asm.Label // Zero Label for the synthetic list class, which has no dispatch table.
}

// ---------------------
// ----- Constants -----
// ---------------------

// ListTag is the fixed, negative type tag of the synthetic list class
// (§3): it is never assigned by the monotone built-in/user-class counter
// and never gets a dispatch table.
const ListTag = -1

// ---------------------
// ----- Functions -----
// ---------------------

// NewClass constructs a class descriptor with the standard
// "$<name>$prototype"/"$<name>$dispatchTable" labels. Pass
// hasDispatchTable=false to mark a class (only the list class) as having
// none; its DispatchTable is then the zero asm.Label.
func NewClass(name string, tag int, hasDispatchTable bool) *Class {
	c := &Class{
		Name:      name,
		Tag:       tag,
		Prototype: asm.ClassPrototypeLabel(name),
	}
	if hasDispatchTable {
		c.DispatchTable = asm.ClassDispatchTableLabel(name)
	}
	return c
}

// AttributeIndex returns the 0-based index of the named attribute, or -1
// if the class has no such attribute (§4.3; the caller must assert
// non-negative, per §7).
func (c *Class) AttributeIndex(name string) int {
	for i, a := range c.Attrs {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// MethodIndex returns the 0-based dispatch-table index of the named
// method, or -1 if the class has no such method.
func (c *Class) MethodIndex(name string) int {
	for i, m := range c.Methods {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// AddMethod installs f into the class's method table: if a method with the
// same simple name already exists (inherited from a super-class), f
// replaces it in place, preserving the slot index for every subclass
// (override correctness, Testable Property 3). Otherwise f is appended as
// a new slot.
func (c *Class) AddMethod(f *Func) {
	if i := c.MethodIndex(f.Name); i >= 0 {
		c.Methods[i] = f
		return
	}
	c.Methods = append(c.Methods, f)
}

// AddAttribute appends a new attribute. Attributes cannot be overridden
// (§3): callers must never call this for a name already present; the
// program analyzer enforces this by construction since it only calls
// AddAttribute for attributes declared directly in c's own body, after
// copying the super-class's attribute list verbatim.
func (c *Class) AddAttribute(a *Attr) {
	c.Attrs = append(c.Attrs, a)
}

// CloneAttrs returns a fresh copy of the super-class's attribute slice, for
// seeding a subclass's own Attrs before appending its own declarations
// (§4.5 step 2: "a new Class whose attribute and method tables start as
// copies of the super's").
func CloneAttrs(super *Class) []*Attr {
	out := make([]*Attr, len(super.Attrs))
	copy(out, super.Attrs)
	return out
}

// CloneMethods returns a fresh copy of the super-class's method slice, for
// seeding a subclass's own Methods before AddMethod overrides/appends.
func CloneMethods(super *Class) []*Func {
	out := make([]*Func, len(super.Methods))
	copy(out, super.Methods)
	return out
}
