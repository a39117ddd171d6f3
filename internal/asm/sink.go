package asm

import (
	"fmt"
	"strings"
)

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Sink is an append-only buffer of assembly text. Unlike the teacher's
// channel-fed util.Writer, a Sink is not meant to be shared between
// goroutines: per §5 a compilation's assembly output is single-threaded
// state owned by one codegen.Context.
type Sink struct {
	sb     strings.Builder
	issued map[string]bool // Labels already defined, for the §4.1 "each label at most once" invariant.
}

// ---------------------
// ----- Constants -----
// ---------------------

// WordSize is the backend's word size in bytes. Fixed to 4 for 32-bit
// RISC-V, as this implementation targets no other width (§3).
const WordSize = 4

// ---------------------
// ----- Functions -----
// ---------------------

// NewSink returns an empty Sink ready for writing.
func NewSink() *Sink {
	return &Sink{issued: make(map[string]bool, 64)}
}

// String returns the accumulated assembly text.
func (s *Sink) String() string {
	return s.sb.String()
}

// Write appends a formatted line verbatim (no implicit tab/newline);
// callers are responsible for their own formatting when they need something
// the named helpers below don't cover.
func (s *Sink) Write(format string, args ...interface{}) {
	fmt.Fprintf(&s.sb, format, args...)
}

// Comment appends a single-line comment. No comment is written if text is
// empty, so call sites can pass an optional comment without branching.
func (s *Sink) Comment(text string) {
	if text == "" {
		return
	}
	s.Write("\t# %s\n", text)
}

// DataSection starts (or resumes) the data section.
func (s *Sink) DataSection() {
	s.Write(".data\n")
}

// TextSection starts (or resumes) the text section.
func (s *Sink) TextSection() {
	s.Write(".text\n")
}

// Align emits a power-of-two alignment directive.
func (s *Sink) Align(pow2 int) {
	s.Write(".align %d\n", pow2)
}

// Equiv defines a symbolic constant: `.equiv @name, value`.
func (s *Sink) Equiv(name string, value int) {
	s.Write(".equiv @%s, %d\n", name, value)
}

// GlobalLabel emits a global label definition, e.g. `main:` preceded by
// `.globl main`. Panics if the label was already defined, enforcing the
// "each label written exactly once" invariant (§4.1, Testable Property 4).
func (s *Sink) GlobalLabel(l Label) {
	s.defineOnce(l)
	s.Write(".globl\t%s\n%s:\n", l.String(), l.String())
}

// Label emits a local label definition without a `.globl` directive.
func (s *Sink) Label(l Label) {
	s.defineOnce(l)
	s.Write("%s:\n", l.String())
}

// defineOnce records l as issued, panicking if it was already defined.
func (s *Sink) defineOnce(l Label) {
	if s.issued[l.String()] {
		panic(fmt.Sprintf("assembly label %q defined more than once", l.String()))
	}
	s.issued[l.String()] = true
}

// Word emits a single `.word` literal.
func (s *Sink) Word(v int) {
	s.Write("\t.word\t%d\n", v)
}

// WordAddr emits a single word containing the address of l, or a literal
// zero word if l is the zero Label (a null address, e.g. an uninitialized
// `None` attribute).
func (s *Sink) WordAddr(l Label) {
	if l.IsZero() {
		s.Word(0)
		return
	}
	s.Write("\t.word\t%s\n", l.String())
}

// Asciz emits a null-terminated, escaped ASCII string literal. Go's %q verb
// already produces exactly the backslash/newline/tab/quote escaping the
// assembler's .asciz directive expects.
func (s *Sink) Asciz(str string) {
	s.Write("\t.asciz\t%q\n", str)
}
