package vm

import (
	"github.com/lookbusy1344/m68k-emulator/asmerr"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// MemorySize is the full 24-bit M68K address space.
const MemorySize = 1 << 24

// Memory is the simulator's flat, big-endian 16 MiB address space. Unlike
// the segmented, permission-checked memory model this package is adapted
// from, M68K's address space here has no segments: every assembled program
// shares one undivided array, matching the simulator's lack of a memory
// protection unit.
type Memory struct {
	bytes [MemorySize]byte
}

// NewMemory returns a zeroed 16 MiB memory image.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadListFile copies every byte an assembler.ListFile's sparse memory map
// defines into the simulator's flat image.
func (m *Memory) LoadListFile(sparse map[uint32]byte) {
	for addr, b := range sparse {
		if addr < MemorySize {
			m.bytes[addr] = b
		}
	}
}

// ReadByte reads a single byte at addr.
func (m *Memory) ReadByte(addr uint32) (byte, error) {
	if addr >= MemorySize {
		return 0, asmerr.NewBusFault(0, addr, "read past end of memory")
	}
	return m.bytes[addr], nil
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint32, v byte) error {
	if addr >= MemorySize {
		return asmerr.NewBusFault(0, addr, "write past end of memory")
	}
	m.bytes[addr] = v
	return nil
}

// Read fetches a big-endian value of the given size at addr. Word and
// long-word accesses at an odd address fail with an AddressError fault,
// matching real M68K hardware's alignment requirement; byte accesses have
// no alignment restriction.
func (m *Memory) Read(addr uint32, size core.OpSize) (core.MemoryValue, error) {
	if size != core.BYTE && addr%2 != 0 {
		return core.MemoryValue{}, asmerr.NewAddressFault(0, addr)
	}
	n := size.Bytes()
	if uint64(addr)+uint64(n) > MemorySize {
		return core.MemoryValue{}, asmerr.NewBusFault(0, addr, "read past end of memory")
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = m.bytes[addr+uint32(i)]
	}
	return core.FromBytes(size, b)
}

// Write stores a big-endian value of the given size at addr, subject to
// the same alignment and bounds rules as Read.
func (m *Memory) Write(addr uint32, v core.MemoryValue) error {
	size := v.Width()
	if size != core.BYTE && addr%2 != 0 {
		return asmerr.NewAddressFault(0, addr)
	}
	n := size.Bytes()
	if uint64(addr)+uint64(n) > MemorySize {
		return asmerr.NewBusFault(0, addr, "write past end of memory")
	}
	for i, b := range v.Bytes() {
		m.bytes[addr+uint32(i)] = b
	}
	return nil
}
