package opcodes

import (
	"fmt"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// Move implements the MOVE instruction: copy a value from a source
// effective address to a destination effective address, sized B/W/L.
type Move struct{}

func (Move) Mnemonic() string { return "MOVE" }

func (Move) IsExecutable() bool { return true }

func (m Move) Validate(size core.OpSize, operands string) error {
	parts := asmutil.SplitOperands(operands)
	if len(parts) != 2 {
		return fmt.Errorf("MOVE requires exactly 2 operands, got %d", len(parts))
	}
	src, err := ParseOperand(parts[0], size)
	if err != nil {
		return fmt.Errorf("MOVE source: %w", err)
	}
	dest, err := ParseOperand(parts[1], size)
	if err != nil {
		return fmt.Errorf("MOVE destination: %w", err)
	}
	if src.Kind == core.ARD {
		return fmt.Errorf("MOVE source may not be an address register directly (use MOVEA)")
	}
	if dest.Kind == core.ARD {
		return fmt.Errorf("MOVE destination may not be an address register directly (use MOVEA)")
	}
	if dest.Kind == core.IMM {
		return fmt.Errorf("MOVE destination may not be immediate")
	}
	return nil
}

func (m Move) WordLength(size core.OpSize, operands string) (int, error) {
	parts := asmutil.SplitOperands(operands)
	if len(parts) != 2 {
		return 0, fmt.Errorf("MOVE requires exactly 2 operands, got %d", len(parts))
	}
	src, err := ParseOperand(parts[0], size)
	if err != nil {
		return 0, err
	}
	dest, err := ParseOperand(parts[1], size)
	if err != nil {
		return 0, err
	}
	length := 1
	length += src.ExtensionWords(size)
	length += dest.ExtensionWords(size)
	return length, nil
}

func (m Move) Assemble(size core.OpSize, operands string, resolveAddr func(string) (uint32, bool)) ([]uint16, error) {
	if err := m.Validate(size, operands); err != nil {
		return nil, err
	}
	parts := asmutil.SplitOperands(operands)
	src, err := ParseOperand(parts[0], size)
	if err != nil {
		return nil, err
	}
	dest, err := ParseOperand(parts[1], size)
	if err != nil {
		return nil, err
	}

	var sizeBits uint16
	switch size {
	case core.BYTE:
		sizeBits = 0b01
	case core.WORD:
		sizeBits = 0b11
	case core.LONG:
		sizeBits = 0b10
	}

	opcodeWord := uint16(0b00)<<14 | sizeBits<<12 |
		uint16(dest.EncodeRegFirst())<<6 |
		uint16(src.EncodeModeFirst())

	words := []uint16{opcodeWord}
	words = append(words, extensionWords(src, size)...)
	words = append(words, extensionWords(dest, size)...)
	return words, nil
}

// extensionWords renders an EAMode's extension data as 16-bit words in
// program order. Long immediates and absolute long addresses occupy two
// words (high word first); byte and word immediates occupy a single
// zero-padded word regardless of their own width.
func extensionWords(e core.EAMode, size core.OpSize) []uint16 {
	switch e.Kind {
	case core.IMM:
		if size == core.LONG {
			v := e.Immediate.Unsigned()
			return []uint16{uint16(v >> 16), uint16(v)}
		}
		return []uint16{uint16(e.Immediate.Unsigned())}
	case core.AWA:
		return []uint16{uint16(e.Address)}
	case core.ALA:
		return []uint16{uint16(e.Address >> 16), uint16(e.Address)}
	default:
		return nil
	}
}

// moveSize decodes MOVE's size field (opcode word bits 13-12) back into an
// OpSize. It panics on the reserved 00 encoding, which Matches excludes.
func moveSize(opcodeWord uint16) core.OpSize {
	switch (opcodeWord >> 12) & 0b11 {
	case 0b01:
		return core.BYTE
	case 0b11:
		return core.WORD
	case 0b10:
		return core.LONG
	default:
		panic("moveSize: reserved size field")
	}
}

func (Move) Matches(opcodeWord uint16) bool {
	if opcodeWord>>14 != 0b00 {
		return false
	}
	return (opcodeWord>>12)&0b11 != 0b00
}

func (m Move) Execute(ctx core.Context, opcodeWord uint16, ext []uint16) (int, error) {
	size := moveSize(opcodeWord)
	destMode := uint8(opcodeWord>>6) & 0b111111
	srcMode := uint8(opcodeWord) & 0b111111

	srcEA, extN, err := core.DecodeEAMode(srcMode>>3, srcMode&0b111, size, widen(ext))
	if err != nil {
		return 0, err
	}
	rest := ext[extN:]
	destEA, _, err := core.DecodeEAMode(destMode&0b111, destMode>>3, size, widen(rest))
	if err != nil {
		return 0, err
	}

	val, err := readOperand(ctx, srcEA, size)
	if err != nil {
		return 0, err
	}
	if err := writeOperand(ctx, destEA, val); err != nil {
		return 0, err
	}

	flags := ctx.Flags()
	flags.N = val.MSB()
	flags.Z = val.IsZero()
	flags.V = false
	flags.C = false
	ctx.SetFlags(flags)

	return 4, nil
}

func widen(words []uint16) []uint32 {
	out := make([]uint32, len(words))
	for i, w := range words {
		out[i] = uint32(w)
	}
	return out
}

// readOperand fetches the value an EAMode refers to, applying
// postincrement/predecrement register-adjustment side effects.
func readOperand(ctx core.Context, e core.EAMode, size core.OpSize) (core.MemoryValue, error) {
	switch e.Kind {
	case core.DRD, core.ARD:
		return ctx.ReadRegister(e.Reg, size), nil
	case core.IMM:
		return e.Immediate, nil
	case core.ALA, core.AWA:
		return ctx.ReadMemory(e.Address, size)
	case core.ARI:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		return ctx.ReadMemory(uint32(addr), size)
	case core.ARIPI:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		v, err := ctx.ReadMemory(uint32(addr), size)
		if err != nil {
			return core.MemoryValue{}, err
		}
		step := stepSize(e.Reg, size)
		newAddr := core.MustFromUnsigned(core.LONG, (addr+uint64(step))&0xFFFFFFFF)
		ctx.WriteRegister(e.Reg, newAddr)
		return v, nil
	case core.ARIPD:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		step := stepSize(e.Reg, size)
		newAddr := (addr - uint64(step)) & 0xFFFFFFFF
		ctx.WriteRegister(e.Reg, core.MustFromUnsigned(core.LONG, newAddr))
		return ctx.ReadMemory(uint32(newAddr), size)
	default:
		return core.MemoryValue{}, fmt.Errorf("unreadable effective address mode %v", e.Kind)
	}
}

// writeOperand stores a value at the location an EAMode refers to, applying
// postincrement/predecrement register-adjustment side effects.
func writeOperand(ctx core.Context, e core.EAMode, v core.MemoryValue) error {
	switch e.Kind {
	case core.DRD:
		ctx.WriteRegister(e.Reg, v)
		return nil
	case core.ARD:
		ctx.WriteRegister(e.Reg, v.SignExtend(core.LONG))
		return nil
	case core.ALA, core.AWA:
		return ctx.WriteMemory(e.Address, v)
	case core.ARI:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		return ctx.WriteMemory(uint32(addr), v)
	case core.ARIPI:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		if err := ctx.WriteMemory(uint32(addr), v); err != nil {
			return err
		}
		step := stepSize(e.Reg, v.Width())
		ctx.WriteRegister(e.Reg, core.MustFromUnsigned(core.LONG, (addr+uint64(step))&0xFFFFFFFF))
		return nil
	case core.ARIPD:
		addr := ctx.ReadRegister(e.Reg, core.LONG).Unsigned()
		step := stepSize(e.Reg, v.Width())
		newAddr := (addr - uint64(step)) & 0xFFFFFFFF
		ctx.WriteRegister(e.Reg, core.MustFromUnsigned(core.LONG, newAddr))
		return ctx.WriteMemory(uint32(newAddr), v)
	default:
		return fmt.Errorf("unwritable effective address mode %v", e.Kind)
	}
}

// stepSize returns the amount a post-increment/pre-decrement adjusts its
// address register by: the operand size in bytes, except that byte access
// through the stack pointer A7 always steps by 2 to keep the stack word
// aligned.
func stepSize(reg core.Register, size core.OpSize) int {
	if size == core.BYTE && reg == core.SP {
		return 2
	}
	return size.Bytes()
}
