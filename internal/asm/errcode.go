package asm

// Error codes raised by generated code and trapped by the runtime's abort
// routine (§3, §7). These are shared by internal/runtime (which binds them
// into the abort fragment) and any pluggable expression/statement emitter
// that needs to raise one directly (e.g. a bounds check before a list
// index).
const (
	ErrArgument      = 1
	ErrDivideByZero  = 2
	ErrOutOfBounds   = 3
	ErrNoneAccess    = 4
	ErrOutOfMemory   = 5
	ErrUnimplemented = 6
)
