// Package vm implements the M68K simulator: a flat 16 MiB memory image, a
// register file, and a fetch/decode/execute loop that runs the machine code
// an assembler.ListFile produces.
package vm

import "github.com/lookbusy1344/m68k-emulator/core"

// CPU holds the M68K programmer-visible register file: eight data
// registers, eight address registers (A7 doubling as the stack pointer),
// the program counter, and the condition code register.
type CPU struct {
	D    [8]uint32
	A    [8]uint32
	PC   uint32
	CCR  core.ConditionCode
}

// NewCPU returns a CPU with every register zeroed, the stack pointer A7
// included; callers that need a stack set A7 themselves.
func NewCPU() *CPU {
	return &CPU{}
}

// Reset zeroes every register and clears the condition codes.
func (c *CPU) Reset() {
	*c = CPU{}
}

// Read returns the value of register r truncated/widened to size. Reading
// PC or an address register at BYTE size is nonsensical but not
// disallowed; the low byte is returned.
func (c *CPU) Read(r core.Register, size core.OpSize) core.MemoryValue {
	var full uint32
	switch {
	case r.IsData():
		full = c.D[r.Index()]
	case r.IsAddress():
		full = c.A[r.Index()]
	case r == core.PC:
		full = c.PC
	case r == core.SR:
		full = uint32(c.CCR.ToByte())
	}
	return core.MustFromUnsigned(size, uint64(full)&mask(size))
}

// Write stores v into register r. Writing a data register at BYTE or WORD
// size leaves the upper bytes of the register untouched, matching the
// M68K convention that Dn is addressed at sub-word granularity; writing an
// address register always sign-extends to the full 32 bits, since address
// registers have no sub-word form.
func (c *CPU) Write(r core.Register, v core.MemoryValue) {
	switch {
	case r.IsData():
		full := c.D[r.Index()]
		shift := v.Width().Bits()
		keep := uint32(0)
		if shift < 32 {
			keep = ^(uint32(mask(v.Width())))
		}
		c.D[r.Index()] = full&keep | uint32(v.Unsigned())
	case r.IsAddress():
		c.A[r.Index()] = uint32(v.SignExtend(core.LONG).Unsigned())
	case r == core.PC:
		c.PC = uint32(v.Unsigned())
	case r == core.SR:
		c.CCR.FromByte(byte(v.Unsigned()))
	}
}

func mask(size core.OpSize) uint64 {
	if size.Bits() >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size.Bits()) - 1
}
