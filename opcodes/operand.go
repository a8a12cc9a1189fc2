// Package opcodes implements the static table of M68K opcode and directive
// handlers: MOVE, DC, LEA, SIMHALT, and the assembler-only directives ORG,
// EQU, and END. Each handler satisfies core.Handler and is registered by
// name in a map literal, replacing the reflection-based module discovery
// the system this one is modeled on uses.
package opcodes

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// ParseOperand parses a single already-comma-split operand into an EAMode.
// By the time an operand reaches this function the assembler has already
// substituted any label reference with its literal "($addr).L" or
// "($00000000).L" placeholder form, so ParseOperand itself only ever sees
// register names, parenthesized indirect forms, immediates, and absolute
// address literals.
func ParseOperand(s string, size core.OpSize) (core.EAMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.EAMode{}, fmt.Errorf("empty operand")
	}

	if strings.HasPrefix(s, "#") {
		v, err := asmutil.ParseLiteral(s)
		if err != nil {
			if ch, ok := asmutil.ParseCharLiteral(strings.TrimPrefix(s, "#")); ok {
				v = ch
			} else {
				return core.EAMode{}, fmt.Errorf("invalid immediate %q: %w", s, err)
			}
		}
		mv, err := core.FromSigned(size, v)
		if err != nil {
			mv, err = core.FromUnsigned(size, uint64(v))
			if err != nil {
				return core.EAMode{}, fmt.Errorf("immediate %q: %w", s, err)
			}
		}
		return core.NewImmediateMode(mv), nil
	}

	if strings.HasPrefix(s, "-(") && strings.HasSuffix(s, ")") {
		reg, ok := core.ParseRegister(s[2 : len(s)-1])
		if !ok || !reg.IsAddress() {
			return core.EAMode{}, fmt.Errorf("invalid predecrement operand %q", s)
		}
		return core.NewRegisterMode(core.ARIPD, reg), nil
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")+") {
		inner := s[1 : len(s)-2]
		if reg, ok := core.ParseRegister(inner); ok && reg.IsAddress() {
			return core.NewRegisterMode(core.ARIPI, reg), nil
		}
		return core.EAMode{}, fmt.Errorf("invalid postincrement operand %q", s)
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		inner := s[1 : len(s)-1]
		if reg, ok := core.ParseRegister(inner); ok && reg.IsAddress() {
			return core.NewRegisterMode(core.ARI, reg), nil
		}
		// absolute address form with no size suffix: ($addr)
		return parseAbsolute(s)
	}

	// absolute address form: ($addr).L or ($addr).W
	if strings.HasPrefix(s, "(") && strings.Contains(s, ").") {
		return parseAbsolute(s)
	}

	if reg, ok := core.ParseRegister(s); ok {
		if reg.IsData() {
			return core.NewRegisterMode(core.DRD, reg), nil
		}
		if reg.IsAddress() {
			return core.NewRegisterMode(core.ARD, reg), nil
		}
	}

	return core.EAMode{}, fmt.Errorf("unrecognized operand %q", s)
}

// parseAbsolute parses "($AAAA).L" / "($AAAA).W" forms, and the bare
// "$AAAA" form produced when a caller already knows it wants an absolute
// address and has stripped the size suffix.
func parseAbsolute(s string) (core.EAMode, error) {
	kind := core.ALA
	body := s
	if idx := strings.LastIndex(s, ")."); idx >= 0 {
		body = s[:idx+1]
		switch strings.ToUpper(s[idx+2:]) {
		case "W":
			kind = core.AWA
		case "L":
			kind = core.ALA
		default:
			return core.EAMode{}, fmt.Errorf("invalid absolute address size in %q", s)
		}
	}
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	v, err := asmutil.ParseLiteral(body)
	if err != nil {
		return core.EAMode{}, fmt.Errorf("invalid absolute address %q: %w", s, err)
	}
	return core.NewAbsoluteMode(kind, uint32(v)), nil
}
