// Package assembler implements the two/three-pass driver that lowers M68K
// assembly source into a ListFile: a resolved-address symbol table plus a
// sparse memory image ready for the simulator to load and run.
package assembler

// MaxMemoryLocation is one past the highest address the assembler or
// simulator will ever reference: M68K's 24-bit address bus covers 16 MiB.
const MaxMemoryLocation = 1 << 24

// ListFile is the output of assembling a source program: the starting
// execution address named by its END directive, the resolved addresses of
// every label it defined, and the assembled bytes themselves, stored
// sparsely since most of the 16 MiB address space is never written.
type ListFile struct {
	StartingExecutionAddress uint32
	Symbols                  map[string]uint32
	Memory                   map[uint32]byte
}

// NewListFile returns an empty ListFile ready to be populated by Parse.
func NewListFile() *ListFile {
	return &ListFile{
		Symbols: make(map[string]uint32),
		Memory:  make(map[uint32]byte),
	}
}

// SetWord writes a big-endian 16-bit word at addr.
func (l *ListFile) SetWord(addr uint32, word uint16) {
	l.Memory[addr] = byte(word >> 8)
	l.Memory[addr+1] = byte(word)
}

// GetByte reads a single byte at addr, returning 0 for any address never
// written by assembly (uninitialized memory reads as zero).
func (l *ListFile) GetByte(addr uint32) byte {
	return l.Memory[addr]
}

// DefineSymbol records label's resolved address.
func (l *ListFile) DefineSymbol(label string, addr uint32) {
	l.Symbols[label] = addr
}
