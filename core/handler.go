package core

// Context is the minimal view of simulator state an opcode's Execute method
// needs: reading and writing registers and memory, and reporting CCR
// updates. The vm package supplies the concrete implementation; handlers in
// the opcodes package depend only on this interface, keeping the encoding
// and decoding logic free of any dependency on the simulator.
type Context interface {
	ReadRegister(r Register, size OpSize) MemoryValue
	WriteRegister(r Register, v MemoryValue)
	ReadMemory(addr uint32, size OpSize) (MemoryValue, error)
	WriteMemory(addr uint32, v MemoryValue) error
	SetFlags(c ConditionCode)
	Flags() ConditionCode
	Halt()
}

// Handler is the contract every opcode and assembler directive satisfies.
// An opcode table built from Handlers replaces the reflection-based module
// lookup of the system this one is modeled on: mnemonics are dispatched
// through a static map instead of being discovered at runtime.
type Handler interface {
	// Mnemonic returns the opcode name this handler matches, e.g. "MOVE".
	Mnemonic() string

	// Validate reports whether the given size suffix and operand text are
	// a legal use of this opcode.
	Validate(size OpSize, operands string) error

	// WordLength returns the number of 16-bit words this instruction
	// occupies once assembled, given its size suffix and raw operand
	// text. It must not depend on any label's resolved address, since it
	// is called during the assembler's layout pass before addresses are
	// known.
	WordLength(size OpSize, operands string) (int, error)

	// Assemble parses the operand text and returns the instruction's
	// complete machine-code words (opcode word followed by any extension
	// words). Label references must already be replaced by their
	// "($addr).L" text; no handler calls resolveAddr, and the assembler
	// passes nil for it.
	Assemble(size OpSize, operands string, resolveAddr func(label string) (uint32, bool)) ([]uint16, error)

	// Execute performs this instruction's runtime effect against ctx. It
	// receives the already-fetched opcode word and the operand words
	// following it (the instruction's own extension words), and returns
	// the number of simulated clock cycles consumed. A handler that
	// encodes its own size in the opcode word (as MOVE does) decodes it
	// from opcodeWord itself rather than being told.
	Execute(ctx Context, opcodeWord uint16, ext []uint16) (cycles int, err error)

	// IsExecutable reports whether this handler represents a runtime
	// instruction (true) or a pure assembler directive such as DC, ORG,
	// EQU, or END that never appears in the simulator's fetch/execute
	// loop (false).
	IsExecutable() bool

	// Matches reports whether opcodeWord's fixed bit pattern identifies
	// this instruction, letting the simulator's decode step find the
	// right handler for a fetched word without reflection or a parallel
	// decode table. Directive handlers that are never executable always
	// return false.
	Matches(opcodeWord uint16) bool
}
