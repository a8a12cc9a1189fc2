package opcodes

import (
	"fmt"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// LEA ("Load Effective Address") computes a source operand's address,
// without dereferencing it, and stores it in an address register. It is
// always long-sized; LEA ignores any size suffix given to it.
type LEA struct{}

func (LEA) Mnemonic() string { return "LEA" }

func (LEA) IsExecutable() bool { return true }

func (LEA) parse(operands string) (src core.EAMode, dest core.Register, err error) {
	parts := asmutil.SplitOperands(operands)
	if len(parts) != 2 {
		return core.EAMode{}, 0, fmt.Errorf("LEA requires exactly 2 operands, got %d", len(parts))
	}
	src, err = ParseOperand(parts[0], core.LONG)
	if err != nil {
		return core.EAMode{}, 0, fmt.Errorf("LEA source: %w", err)
	}
	switch src.Kind {
	case core.ARI, core.ALA, core.AWA:
	default:
		return core.EAMode{}, 0, fmt.Errorf("LEA source must be memory-indirect or absolute, got %v", src.Kind)
	}
	dest, ok := core.ParseRegister(parts[1])
	if !ok || !dest.IsAddress() {
		return core.EAMode{}, 0, fmt.Errorf("LEA destination must be an address register, got %q", parts[1])
	}
	return src, dest, nil
}

func (l LEA) Validate(_ core.OpSize, operands string) error {
	_, _, err := l.parse(operands)
	return err
}

func (l LEA) WordLength(_ core.OpSize, operands string) (int, error) {
	src, _, err := l.parse(operands)
	if err != nil {
		return 0, err
	}
	return 1 + src.ExtensionWords(core.LONG), nil
}

func (l LEA) Assemble(_ core.OpSize, operands string, resolveAddr func(string) (uint32, bool)) ([]uint16, error) {
	src, dest, err := l.parse(operands)
	if err != nil {
		return nil, err
	}
	opcodeWord := uint16(0b0100)<<12 | uint16(dest.Index())<<9 | uint16(0b111)<<6 | uint16(src.EncodeModeFirst())
	words := []uint16{opcodeWord}
	words = append(words, extensionWords(src, core.LONG)...)
	return words, nil
}

func (LEA) Matches(opcodeWord uint16) bool {
	if opcodeWord>>12 != 0b0100 {
		return false
	}
	if (opcodeWord>>6)&0b111 != 0b111 {
		return false
	}
	mode := (opcodeWord >> 3) & 0b111
	reg := opcodeWord & 0b111
	if mode == 0b010 {
		return true
	}
	return mode == 0b111 && reg != 0b100
}

func (l LEA) Execute(ctx core.Context, opcodeWord uint16, ext []uint16) (int, error) {
	destReg := core.A0 + core.Register((opcodeWord>>9)&0b111)
	srcField := uint8(opcodeWord) & 0b111111
	srcEA, _, err := core.DecodeEAMode(srcField>>3&0b111, srcField&0b111, core.LONG, widen(ext))
	if err != nil {
		return 0, err
	}
	addr, err := effectiveAddress(ctx, srcEA)
	if err != nil {
		return 0, err
	}
	ctx.WriteRegister(destReg, core.MustFromUnsigned(core.LONG, uint64(addr)))
	return 4, nil
}

// effectiveAddress returns the raw address an indirect or absolute EAMode
// refers to, without reading the memory at that address.
func effectiveAddress(ctx core.Context, e core.EAMode) (uint32, error) {
	switch e.Kind {
	case core.ARI:
		return uint32(ctx.ReadRegister(e.Reg, core.LONG).Unsigned()), nil
	case core.ALA, core.AWA:
		return e.Address, nil
	default:
		return 0, fmt.Errorf("mode %v has no effective address", e.Kind)
	}
}
