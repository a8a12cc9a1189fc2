package opcodes

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// parseAddressOperand parses an ORG/END operand, which may be a bare
// numeric literal ("$1000") or, after the assembler has substituted a
// label reference, the "($addr).L"/"($addr).W" wrapped form label
// substitution produces.
func parseAddressOperand(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") {
		body := strings.TrimPrefix(s, "(")
		if idx := strings.LastIndex(body, ")."); idx >= 0 {
			body = body[:idx]
		} else {
			body = strings.TrimSuffix(body, ")")
		}
		return asmutil.ParseLiteral(body)
	}
	return asmutil.ParseLiteral(s)
}

// ORG, EQU, and END are assembler preprocessor directives: they never
// assemble to machine-code words of their own and never execute. The
// assembler driver special-cases them by mnemonic during both its layout
// and emission passes (ORG resets the location counter, EQU binds a symbol
// without consuming memory, END records the program's entry point), so
// their Handler implementations exist only to make the registry complete
// and to give Validate a place to live.

// ORG sets the assembler's current location counter for subsequent
// instructions and directives.
type ORG struct{}

func (ORG) Mnemonic() string    { return "ORG" }
func (ORG) IsExecutable() bool  { return false }
func (ORG) WordLength(core.OpSize, string) (int, error) { return 0, nil }

func (ORG) Validate(_ core.OpSize, operands string) error {
	_, err := (ORG{}).Address(operands)
	if err != nil {
		return fmt.Errorf("ORG: %w", err)
	}
	return nil
}

func (o ORG) Assemble(_ core.OpSize, operands string, _ func(string) (uint32, bool)) ([]uint16, error) {
	return nil, o.Validate(core.WORD, operands)
}

func (ORG) Matches(uint16) bool { return false }

func (ORG) Execute(core.Context, uint16, []uint16) (int, error) {
	return 0, fmt.Errorf("ORG is not executable")
}

// Address parses an ORG directive's operand into the address to relocate
// to.
func (ORG) Address(operands string) (uint32, error) {
	v, err := parseAddressOperand(operands)
	if err != nil {
		return 0, err
	}
	return core.SafeAddress(v)
}

// EQU binds a label to a constant value, computed at assemble time rather
// than occupying memory.
type EQU struct{}

func (EQU) Mnemonic() string    { return "EQU" }
func (EQU) IsExecutable() bool  { return false }
func (EQU) WordLength(core.OpSize, string) (int, error) { return 0, nil }

func (EQU) Validate(_ core.OpSize, operands string) error {
	_, err := asmutil.ParseLiteral(operands)
	return err
}

func (e EQU) Assemble(_ core.OpSize, operands string, _ func(string) (uint32, bool)) ([]uint16, error) {
	return nil, e.Validate(core.WORD, operands)
}

func (EQU) Matches(uint16) bool { return false }

func (EQU) Execute(core.Context, uint16, []uint16) (int, error) {
	return 0, fmt.Errorf("EQU is not executable")
}

// END gives the program's starting execution address. It does not stop
// assembly: any lines that follow it are still assembled and emitted, just
// as the three-pass driver processes every other directive in source order.
type END struct{}

func (END) Mnemonic() string    { return "END" }
func (END) IsExecutable() bool  { return false }
func (END) WordLength(core.OpSize, string) (int, error) { return 0, nil }

func (END) Validate(_ core.OpSize, operands string) error {
	_, err := (END{}).Address(operands)
	if err != nil {
		return fmt.Errorf("END: %w", err)
	}
	return nil
}

func (e END) Assemble(_ core.OpSize, operands string, _ func(string) (uint32, bool)) ([]uint16, error) {
	return nil, e.Validate(core.WORD, operands)
}

func (END) Matches(uint16) bool { return false }

func (END) Execute(core.Context, uint16, []uint16) (int, error) {
	return 0, fmt.Errorf("END is not executable")
}

// Address parses an END directive's operand into the starting execution
// address.
func (END) Address(operands string) (uint32, error) {
	v, err := parseAddressOperand(operands)
	if err != nil {
		return 0, err
	}
	return core.SafeAddress(v)
}
