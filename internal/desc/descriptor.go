// Package desc implements the Descriptor Model (C4): the immutable,
// ABI-relevant description of every class, function, global, attribute and
// stack variable in a compiled program. All descriptors are immutable after
// analysis except a Func's statement body and local symbol table, both
// filled in during analysis and frozen afterwards (§4.3).
package desc

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Descriptor is the sum type named in §3: every kind of declared entity
// the analyzer produces.
type Descriptor interface {
	isDescriptor()
}

// ---------------------
// ----- Functions -----
// ---------------------

func (*GlobalVar) isDescriptor() {}
func (*StackVar) isDescriptor()  {}
func (*Attr) isDescriptor()      {}
func (*Func) isDescriptor()      {}
func (*Class) isDescriptor()     {}
