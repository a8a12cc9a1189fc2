package opcodes

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/core"
)

// SIMHALT is a simulator-only pseudo-instruction that stops execution. It
// takes no operands and assembles to a single reserved opcode word that
// does not correspond to any real M68K instruction.
type SIMHALT struct{}

// simhaltOpcode is an unused M68K opcode word (the 1010-line "unimplemented
// instruction" trap range) repurposed as the simulator's stop signal.
const simhaltOpcode uint16 = 0xA000

func (SIMHALT) Mnemonic() string { return "SIMHALT" }

func (SIMHALT) IsExecutable() bool { return true }

func (SIMHALT) Validate(_ core.OpSize, operands string) error {
	if strings.TrimSpace(operands) != "" {
		return fmt.Errorf("SIMHALT takes no operands")
	}
	return nil
}

func (SIMHALT) WordLength(_ core.OpSize, _ string) (int, error) { return 1, nil }

func (s SIMHALT) Assemble(_ core.OpSize, operands string, resolveAddr func(string) (uint32, bool)) ([]uint16, error) {
	if err := s.Validate(core.WORD, operands); err != nil {
		return nil, err
	}
	return []uint16{simhaltOpcode}, nil
}

func (SIMHALT) Matches(opcodeWord uint16) bool {
	return opcodeWord == simhaltOpcode
}

func (SIMHALT) Execute(ctx core.Context, _ uint16, _ []uint16) (int, error) {
	ctx.Halt()
	return 4, nil
}
