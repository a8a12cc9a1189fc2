package opcodes

import (
	"github.com/lookbusy1344/m68k-emulator/core"
)

// fakeContext is a minimal in-memory core.Context used to unit test opcode
// Execute implementations without pulling in the full vm package.
type fakeContext struct {
	regs    map[core.Register]core.MemoryValue
	mem     map[uint32]byte
	flags   core.ConditionCode
	halted  bool
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		regs: make(map[core.Register]core.MemoryValue),
		mem:  make(map[uint32]byte),
	}
}

func (c *fakeContext) ReadRegister(r core.Register, size core.OpSize) core.MemoryValue {
	v, ok := c.regs[r]
	if !ok {
		return core.NewMemoryValue(size)
	}
	return v.WithWidth(size)
}

func (c *fakeContext) WriteRegister(r core.Register, v core.MemoryValue) {
	c.regs[r] = v.SignExtend(core.LONG)
}

func (c *fakeContext) ReadMemory(addr uint32, size core.OpSize) (core.MemoryValue, error) {
	b := make([]byte, size.Bytes())
	for i := range b {
		b[i] = c.mem[addr+uint32(i)]
	}
	return core.FromBytes(size, b)
}

func (c *fakeContext) WriteMemory(addr uint32, v core.MemoryValue) error {
	for i, b := range v.Bytes() {
		c.mem[addr+uint32(i)] = b
	}
	return nil
}

func (c *fakeContext) SetFlags(cc core.ConditionCode) { c.flags = cc }
func (c *fakeContext) Flags() core.ConditionCode      { return c.flags }
func (c *fakeContext) Halt()                          { c.halted = true }
