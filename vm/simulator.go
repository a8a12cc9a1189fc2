package vm

import (
	"fmt"

	"github.com/lookbusy1344/m68k-emulator/assembler"
	"github.com/lookbusy1344/m68k-emulator/asmerr"
	"github.com/lookbusy1344/m68k-emulator/core"
	"github.com/lookbusy1344/m68k-emulator/opcodes"
)

// M68K is the simulator: a CPU, a flat memory image, and the fetch/decode/
// execute loop that drives them. It satisfies core.Context so that opcode
// Execute implementations in the opcodes package can run against it
// without that package importing vm.
type M68K struct {
	CPU     *CPU
	Memory  *Memory
	Halted  bool
	Cycles  uint64
	Steps   uint64
	MaxSteps uint64
}

// New returns a simulator with a zeroed CPU and memory image.
func New() *M68K {
	return &M68K{CPU: NewCPU(), Memory: NewMemory()}
}

// LoadListFile installs an assembled program: it copies the list file's
// memory image in and sets PC to its starting execution address.
func (m *M68K) LoadListFile(list *assembler.ListFile) {
	m.Memory.LoadListFile(list.Memory)
	m.CPU.PC = list.StartingExecutionAddress
	m.Halted = false
}

// ReadRegister implements core.Context.
func (m *M68K) ReadRegister(r core.Register, size core.OpSize) core.MemoryValue {
	return m.CPU.Read(r, size)
}

// WriteRegister implements core.Context.
func (m *M68K) WriteRegister(r core.Register, v core.MemoryValue) {
	m.CPU.Write(r, v)
}

// ReadMemory implements core.Context.
func (m *M68K) ReadMemory(addr uint32, size core.OpSize) (core.MemoryValue, error) {
	v, err := m.Memory.Read(addr, size)
	if err != nil {
		if f, ok := err.(*asmerr.Fault); ok {
			f.PC = m.CPU.PC
		}
		return v, err
	}
	return v, nil
}

// WriteMemory implements core.Context.
func (m *M68K) WriteMemory(addr uint32, v core.MemoryValue) error {
	err := m.Memory.Write(addr, v)
	if err != nil {
		if f, ok := err.(*asmerr.Fault); ok {
			f.PC = m.CPU.PC
		}
	}
	return err
}

// SetFlags implements core.Context.
func (m *M68K) SetFlags(c core.ConditionCode) { m.CPU.CCR = c }

// Flags implements core.Context.
func (m *M68K) Flags() core.ConditionCode { return m.CPU.CCR }

// Halt implements core.Context.
func (m *M68K) Halt() { m.Halted = true }

// Step fetches, decodes, and executes one instruction, advancing PC past
// it. It returns false once the simulator halts (via SIMHALT) or the step
// budget in MaxSteps is exhausted, in either case without error; it
// returns a non-nil error for a bus fault, alignment fault, or undecodable
// opcode word.
func (m *M68K) Step() (bool, error) {
	if m.Halted {
		return false, nil
	}
	if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
		return false, nil
	}

	pc := m.CPU.PC
	opcodeWord, err := m.Memory.Read(pc, core.WORD)
	if err != nil {
		return false, err
	}
	word := uint16(opcodeWord.Unsigned())

	handler, ok := decode(word)
	if !ok {
		return false, asmerr.NewDecodeFault(pc, word)
	}

	m.CPU.PC = pc + 2
	ext, err := m.fetchExtensionWords(handler, word)
	if err != nil {
		return false, err
	}
	m.CPU.PC += uint32(len(ext)) * 2

	cycles, err := handler.Execute(m, word, ext)
	if err != nil {
		return false, err
	}
	m.Cycles += uint64(cycles)
	m.Steps++
	return !m.Halted, nil
}

// Run steps the simulator until it halts, runs out of step budget, or
// hits an error.
func (m *M68K) Run() error {
	for {
		more, err := m.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// decode scans the static opcode registry for a handler whose Matches
// recognizes word. This linear scan over a handful of executable opcodes
// replaces the teacher's bit-pattern switch statement with the same
// static-table style the assembler side uses, so that adding an
// instruction never requires touching the decode loop itself.
func decode(word uint16) (core.Handler, bool) {
	for _, h := range opcodes.Registry {
		if h.IsExecutable() && h.Matches(word) {
			return h, true
		}
	}
	return nil, false
}

// fetchExtensionWords reads however many 16-bit extension words follow the
// opcode word at the simulator's (already-advanced) PC. It works out how
// many words to read the same way the assembler worked out how many words
// to emit: by decoding the addressing-mode fields out of the opcode word
// itself, rather than asking the handler for a count up front.
func (m *M68K) fetchExtensionWords(handler core.Handler, opcodeWord uint16) ([]uint16, error) {
	n, err := extensionWordCount(handler, opcodeWord)
	if err != nil {
		return nil, err
	}
	ext := make([]uint16, n)
	for i := 0; i < n; i++ {
		v, err := m.Memory.Read(m.CPU.PC+uint32(i*2), core.WORD)
		if err != nil {
			return nil, err
		}
		ext[i] = uint16(v.Unsigned())
	}
	return ext, nil
}

// extensionWordCount determines how many extension words a decoded
// instruction needs, based on its mnemonic and the effective-address mode
// fields packed into its opcode word.
func extensionWordCount(handler core.Handler, opcodeWord uint16) (int, error) {
	switch handler.Mnemonic() {
	case "MOVE":
		size := moveSizeFromOpcode(opcodeWord)
		destField := uint8(opcodeWord>>6) & 0b111111
		srcField := uint8(opcodeWord) & 0b111111
		n := 0
		n += eaExtensionWords(srcField>>3, srcField&0b111, size)
		n += eaExtensionWords(destField&0b111, destField>>3, size)
		return n, nil
	case "LEA":
		srcField := uint8(opcodeWord) & 0b111111
		return eaExtensionWords(srcField>>3, srcField&0b111, core.LONG), nil
	case "SIMHALT":
		return 0, nil
	default:
		return 0, fmt.Errorf("no extension-word rule for opcode %q", handler.Mnemonic())
	}
}

// moveSizeFromOpcode duplicates the size decoding opcodes.Move keeps
// private; it is small enough, and specific enough to MOVE's own bit
// layout, that sharing it across packages isn't worth a new export.
func moveSizeFromOpcode(opcodeWord uint16) core.OpSize {
	switch (opcodeWord >> 12) & 0b11 {
	case 0b01:
		return core.BYTE
	case 0b11:
		return core.WORD
	default:
		return core.LONG
	}
}

// eaExtensionWords reports how many extension words an effective-address
// mode/register field pair consumes, mirroring core.EAMode.ExtensionWords
// without first having to materialize the EAMode (which, for an absolute
// or immediate operand, would require having already read those words).
func eaExtensionWords(mode, reg uint8, size core.OpSize) int {
	if mode != 0b111 {
		return 0
	}
	switch reg {
	case 0b000: // absolute word
		return 1
	case 0b001: // absolute long
		return 2
	case 0b100: // immediate
		if size == core.LONG {
			return 2
		}
		return 1
	default:
		return 0
	}
}
