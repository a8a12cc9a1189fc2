package opcodes

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/m68k-emulator/asmutil"
	"github.com/lookbusy1344/m68k-emulator/core"
)

// DC ("Define Constant") lays down literal byte values in the assembled
// output. It is not executable: the simulator's fetch/execute loop never
// sees a DC, since its bytes are simply pre-loaded memory.
type DC struct{}

func (DC) Mnemonic() string { return "DC" }

func (DC) IsExecutable() bool { return false }

// dcBytes expands a DC operand list into the literal bytes it assembles to:
// quoted strings expand to their ASCII byte values, numeric literals expand
// to size-many zero-padded bytes. The trailing padding that rounds the
// whole sequence up to a width boundary (2 bytes for W, 4 for L) is applied
// by the caller, not here, since it depends on the full sequence length.
func dcBytes(size core.OpSize, operands string) ([]byte, error) {
	parts := asmutil.SplitOperands(operands)
	if len(parts) == 0 {
		return nil, fmt.Errorf("DC requires at least one operand")
	}
	var out []byte
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') && p[len(p)-1] == p[0] {
			quote := p[0]
			str := p[1 : len(p)-1]
			if strings.Contains(str, string(quote)+string(quote)) {
				return nil, fmt.Errorf("DC string literal %q contains an unescaped quote", p)
			}
			out = append(out, []byte(str)...)
			continue
		}
		v, err := asmutil.ParseLiteral(p)
		if err != nil {
			return nil, fmt.Errorf("DC literal %q: %w", p, err)
		}
		mv, err := core.FromUnsigned(size, uint64(v)&mask64(size))
		if err != nil {
			return nil, fmt.Errorf("DC literal %q: %w", p, err)
		}
		out = append(out, mv.Bytes()...)
	}
	return out, nil
}

func mask64(size core.OpSize) uint64 {
	if size.Bits() >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << size.Bits()) - 1
}

// padTo rounds b up to a multiple of n bytes by appending zero bytes.
func padTo(b []byte, n int) []byte {
	if rem := len(b) % n; rem != 0 {
		b = append(b, make([]byte, n-rem)...)
	}
	return b
}

func (DC) Validate(size core.OpSize, operands string) error {
	if size != core.BYTE && size != core.WORD && size != core.LONG {
		return fmt.Errorf("DC: invalid size")
	}
	_, err := dcBytes(size, operands)
	return err
}

func (d DC) WordLength(size core.OpSize, operands string) (int, error) {
	b, err := dcBytes(size, operands)
	if err != nil {
		return 0, err
	}
	switch size {
	case core.WORD:
		b = padTo(b, 2)
	case core.LONG:
		b = padTo(b, 4)
	}
	words := (len(b) + 1) / 2
	return words, nil
}

func (d DC) Assemble(size core.OpSize, operands string, resolveAddr func(string) (uint32, bool)) ([]uint16, error) {
	b, err := dcBytes(size, operands)
	if err != nil {
		return nil, err
	}
	switch size {
	case core.WORD:
		b = padTo(b, 2)
	case core.LONG:
		b = padTo(b, 4)
	}
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	words := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		words = append(words, uint16(b[i])<<8|uint16(b[i+1]))
	}
	return words, nil
}

func (DC) Matches(uint16) bool { return false }

func (DC) Execute(ctx core.Context, opcodeWord uint16, ext []uint16) (int, error) {
	return 0, fmt.Errorf("DC is not executable")
}
