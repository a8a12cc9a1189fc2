package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Register identifies one of the M68K programmer-visible registers.
type Register int

const (
	D0 Register = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	PC
	SR
)

// SP is the conventional alias for A7, the stack pointer.
const SP = A7

// IsData reports whether r is one of the data registers D0-D7.
func (r Register) IsData() bool {
	return r >= D0 && r <= D7
}

// IsAddress reports whether r is one of the address registers A0-A7.
func (r Register) IsAddress() bool {
	return r >= A0 && r <= A7
}

// Index returns the 0-7 register-file index for a data or address register.
// It is meaningless for PC and SR.
func (r Register) Index() int {
	switch {
	case r.IsData():
		return int(r - D0)
	case r.IsAddress():
		return int(r - A0)
	default:
		return -1
	}
}

func (r Register) String() string {
	switch {
	case r.IsData():
		return fmt.Sprintf("D%d", r.Index())
	case r.IsAddress():
		if r == A7 {
			return "A7"
		}
		return fmt.Sprintf("A%d", r.Index())
	case r == PC:
		return "PC"
	case r == SR:
		return "SR"
	default:
		return "?"
	}
}

// ParseRegister parses a register name such as "D3", "A6", "SP", "PC".
func ParseRegister(s string) (Register, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "SP":
		return A7, true
	case "PC":
		return PC, true
	case "SR", "CCR":
		return SR, true
	}
	if len(s) == 2 {
		n, err := strconv.Atoi(s[1:])
		if err == nil && n >= 0 && n <= 7 {
			switch s[0] {
			case 'D':
				return D0 + Register(n), true
			case 'A':
				return A0 + Register(n), true
			}
		}
	}
	return 0, false
}

// ConditionCode holds the five flag bits of the M68K status register's
// condition code byte: X (extend), N (negative), Z (zero), V (overflow),
// C (carry).
type ConditionCode struct {
	X bool
	N bool
	Z bool
	V bool
	C bool
}

// ToByte packs the flags into a single byte in CCR bit order (XNZVC in bits
// 4-0); bits 7-5 are always zero for the covered opcode subset.
func (c ConditionCode) ToByte() byte {
	var b byte
	if c.X {
		b |= 1 << 4
	}
	if c.N {
		b |= 1 << 3
	}
	if c.Z {
		b |= 1 << 2
	}
	if c.V {
		b |= 1 << 1
	}
	if c.C {
		b |= 1 << 0
	}
	return b
}

// FromByte unpacks a CCR byte into its component flags.
func (c *ConditionCode) FromByte(b byte) {
	c.X = b&(1<<4) != 0
	c.N = b&(1<<3) != 0
	c.Z = b&(1<<2) != 0
	c.V = b&(1<<1) != 0
	c.C = b&(1<<0) != 0
}

func (c ConditionCode) String() string {
	flag := func(set bool, letter string) string {
		if set {
			return letter
		}
		return "-"
	}
	return flag(c.X, "X") + flag(c.N, "N") + flag(c.Z, "Z") + flag(c.V, "V") + flag(c.C, "C")
}
