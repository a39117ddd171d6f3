package asm

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Reg is a RISC-V integer register, named the way the teacher's
// backend/riscv/riscv.go aliases them (zero, ra, sp, fp, a0-a7, t0-t6,
// s0-s11).
type Reg string

// ---------------------
// ----- Constants -----
// ---------------------

// Integer register aliases, per the RISC-V calling convention.
const (
	Zero Reg = "zero"
	Ra   Reg = "ra"
	Sp   Reg = "sp"
	Gp   Reg = "gp"
	Tp   Reg = "tp"
	Fp   Reg = "s0"

	A0 Reg = "a0"
	A1 Reg = "a1"
	A2 Reg = "a2"
	A3 Reg = "a3"
	A4 Reg = "a4"
	A5 Reg = "a5"
	A6 Reg = "a6"
	A7 Reg = "a7"

	T0 Reg = "t0"
	T1 Reg = "t1"
	T2 Reg = "t2"
	T3 Reg = "t3"
	T4 Reg = "t4"
	T5 Reg = "t5"
	T6 Reg = "t6"

	S1  Reg = "s1"
	S2  Reg = "s2"
	S3  Reg = "s3"
	S4  Reg = "s4"
	S5  Reg = "s5"
	S6  Reg = "s6"
	S7  Reg = "s7"
	S8  Reg = "s8"
	S9  Reg = "s9"
	S10 Reg = "s10"
	S11 Reg = "s11"
)

// Syscall numbers used by the runtime (exposed for internal/runtime's
// placeholder rewriting and for any emitter that inlines a raw ecall).
const (
	SyscallWrite = 64
	SyscallExit  = 93
	SyscallBrk   = 214 // sbrk-equivalent used by heap.init, see resources/runtime/heap.init.s.
)

// ---------------------
// ----- Functions -----
// ---------------------

// Ins1 writes a one-operand instruction, e.g. `call foo` or `jr ra`.
func (s *Sink) Ins1(op string, rs1 string) {
	s.Write("\t%s\t%s\n", op, rs1)
}

// Ins2 writes a two-operand instruction, e.g. `mv a0, a1`.
func (s *Sink) Ins2(op string, rd, rs1 Reg) {
	s.Write("\t%s\t%s, %s\n", op, rd, rs1)
}

// Ins2Imm writes a register-register-immediate instruction, e.g.
// `addi sp, sp, -16`.
func (s *Sink) Ins2Imm(op string, rd, rs1 Reg, imm int) {
	s.Write("\t%s\t%s, %s, %d\n", op, rd, rs1, imm)
}

// Ins3 writes a three-register instruction, e.g. `add a0, a1, a2`.
func (s *Sink) Ins3(op string, rd, rs1, rs2 Reg) {
	s.Write("\t%s\t%s, %s, %s\n", op, rd, rs1, rs2)
}

// LoadStore writes a load or store instruction with a register+offset
// memory operand, e.g. `lw a0, 12(a1)`.
func (s *Sink) LoadStore(op string, reg Reg, offset int, base Reg) {
	s.Write("\t%s\t%s, %d(%s)\n", op, reg, offset, base)
}

// LoadImm loads a signed immediate into rd via the `li` pseudo-instruction.
func (s *Sink) LoadImm(rd Reg, imm int) {
	s.Write("\tli\t%s, %d\n", rd, imm)
}

// LoadAddr loads the address of a label into rd via the `la` pseudo-instruction.
func (s *Sink) LoadAddr(rd Reg, l Label) {
	s.Write("\tla\t%s, %s\n", rd, l.String())
}

// Lui loads an upper immediate into rd.
func (s *Sink) Lui(rd Reg, imm int) {
	s.Write("\tlui\t%s, %d\n", rd, imm)
}

// Move copies rs1 into rd via the `mv` pseudo-instruction.
func (s *Sink) Move(rd, rs1 Reg) {
	s.Write("\tmv\t%s, %s\n", rd, rs1)
}

// Branch writes a two-register conditional branch to label l, e.g.
// `beq a0, a1, label_3`.
func (s *Sink) Branch(op string, rs1, rs2 Reg, l Label) {
	s.Write("\t%s\t%s, %s, %s\n", op, rs1, rs2, l.String())
}

// Jump writes an unconditional jump to label l via the `j` pseudo-instruction.
func (s *Sink) Jump(l Label) {
	s.Write("\tj\t%s\n", l.String())
}

// Call writes a call to label l via the `call` pseudo-instruction, which
// also sets `ra`.
func (s *Sink) Call(l Label) {
	s.Write("\tcall\t%s\n", l.String())
}

// Ret writes the `ret` pseudo-instruction.
func (s *Sink) Ret() {
	s.Write("\tret\n")
}

// Ecall writes the `ecall` instruction (system call trap).
func (s *Sink) Ecall() {
	s.Write("\tecall\n")
}
