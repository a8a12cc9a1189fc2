package core

import "fmt"

// MemoryValue is a fixed-width unsigned integer carrier parameterized by an
// OpSize. It is the arithmetic and bitwise substrate of the simulator:
// every register and every memory access is represented as one of these.
//
// The invariant 0 <= bits < 2^(8*width) is maintained by every constructor
// and every arithmetic operation; overflow wraps rather than panics, and
// callers that need to know whether a wrap occurred use Add and Sub, whose
// results additionally report the V/C condition-code inputs.
type MemoryValue struct {
	bits  uint64
	width OpSize
}

// mask returns the bitmask for a given width (2^(8*width) - 1).
func mask(width OpSize) uint64 {
	if width.Bits() >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width.Bits()) - 1
}

// NewMemoryValue constructs a zero-valued MemoryValue of the given width.
func NewMemoryValue(width OpSize) MemoryValue {
	return MemoryValue{bits: 0, width: width}
}

// FromUnsigned constructs a MemoryValue from a non-negative integer. It
// returns an OutOfRange error if the value does not fit in width.
func FromUnsigned(width OpSize, v uint64) (MemoryValue, error) {
	if v > mask(width) {
		return MemoryValue{}, fmt.Errorf("%w: value %d does not fit in %s", ErrOutOfRange, v, width)
	}
	return MemoryValue{bits: v, width: width}, nil
}

// MustFromUnsigned is FromUnsigned but panics on error; it exists for
// constructing compile-time-known constants in tests and opcode tables.
func MustFromUnsigned(width OpSize, v uint64) MemoryValue {
	mv, err := FromUnsigned(width, v)
	if err != nil {
		panic(err)
	}
	return mv
}

// FromSigned constructs a MemoryValue from a signed integer by taking its
// two's-complement representation at the given width. It returns an
// OutOfRange error if the value does not fit in a signed integer of that
// width.
func FromSigned(width OpSize, v int64) (MemoryValue, error) {
	lo := -(int64(1) << (width.Bits() - 1))
	hi := (int64(1) << (width.Bits() - 1)) - 1
	if v < lo || v > hi {
		return MemoryValue{}, fmt.Errorf("%w: value %d does not fit in signed %s", ErrOutOfRange, v, width)
	}
	return MemoryValue{bits: uint64(v) & mask(width), width: width}, nil
}

// FromBytes constructs a MemoryValue from a big-endian byte sequence whose
// length must equal width.Bytes().
func FromBytes(width OpSize, b []byte) (MemoryValue, error) {
	if len(b) != width.Bytes() {
		return MemoryValue{}, fmt.Errorf("%w: expected %d bytes for %s, got %d", ErrOutOfRange, width.Bytes(), width, len(b))
	}
	var v uint64
	for _, by := range b {
		v = v<<8 | uint64(by)
	}
	return MemoryValue{bits: v, width: width}, nil
}

// Width returns the operation size of this value.
func (m MemoryValue) Width() OpSize { return m.width }

// Unsigned returns the unsigned interpretation of the stored bits.
func (m MemoryValue) Unsigned() uint64 { return m.bits }

// Signed returns the two's-complement signed interpretation of the stored
// bits.
func (m MemoryValue) Signed() int64 {
	if !m.MSB() {
		return int64(m.bits)
	}
	return int64(m.bits) - (int64(1) << m.width.Bits())
}

// MSB reports whether the most significant bit of the value is set, i.e.
// whether the value is negative under a signed interpretation.
func (m MemoryValue) MSB() bool {
	return m.bits&(uint64(1)<<(m.width.Bits()-1)) != 0
}

// IsZero reports whether the stored value is zero.
func (m MemoryValue) IsZero() bool { return m.bits == 0 }

// Bytes returns the big-endian byte representation of this value; the
// returned slice always has length m.Width().Bytes().
func (m MemoryValue) Bytes() []byte {
	n := m.width.Bytes()
	out := make([]byte, n)
	v := m.bits
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func (m MemoryValue) String() string {
	return fmt.Sprintf("%s:0x%0*X", m.width, m.width.Bytes()*2, m.bits)
}

// WithWidth reinterprets the low bits of m at a new width, truncating or
// zero-extending as needed. It does not sign-extend; callers that need
// sign-extension should use SignExtend.
func (m MemoryValue) WithWidth(width OpSize) MemoryValue {
	return MemoryValue{bits: m.bits & mask(width), width: width}
}

// SignExtend reinterprets m at a wider width, propagating the sign bit.
func (m MemoryValue) SignExtend(width OpSize) MemoryValue {
	if width.Bits() <= m.width.Bits() {
		return m.WithWidth(width)
	}
	v := m.Signed()
	return MemoryValue{bits: uint64(v) & mask(width), width: width}
}

// arithResult bundles a width-preserving wrapped result with the V/C flags
// of the operation that produced it, letting opcode Execute implementations
// update the CCR without recomputing overflow/carry themselves.
type arithResult struct {
	Value    MemoryValue
	Overflow bool
	Carry    bool
}

// Add returns the width-preserving wrapped sum of m and other, which must
// share a width, along with the overflow (signed) and carry (unsigned) flags.
func (m MemoryValue) Add(other MemoryValue) arithResult {
	w := m.width
	sum := m.bits + other.bits
	wrapped := sum & mask(w)
	carry := sum > mask(w)
	aSign := m.MSB()
	bSign := other.MSB()
	rSign := MemoryValue{bits: wrapped, width: w}.MSB()
	overflow := aSign == bSign && aSign != rSign
	return arithResult{Value: MemoryValue{bits: wrapped, width: w}, Overflow: overflow, Carry: carry}
}

// Sub returns the width-preserving wrapped difference m-other, along with
// the overflow (signed) and carry (unsigned, set when NO borrow occurs, the
// M68K/ARM convention) flags.
func (m MemoryValue) Sub(other MemoryValue) arithResult {
	w := m.width
	diff := (m.bits - other.bits) & mask(w)
	carry := m.bits >= other.bits
	aSign := m.MSB()
	bSign := other.MSB()
	rSign := MemoryValue{bits: diff, width: w}.MSB()
	overflow := aSign != bSign && aSign != rSign
	return arithResult{Value: MemoryValue{bits: diff, width: w}, Overflow: overflow, Carry: carry}
}

// Mul returns the width-preserving wrapped product of m and other.
func (m MemoryValue) Mul(other MemoryValue) MemoryValue {
	return MemoryValue{bits: (m.bits * other.bits) & mask(m.width), width: m.width}
}

// Div returns the width-preserving quotient of m and other. Division by
// zero returns a zero value rather than panicking; callers that need to
// detect it should check other.IsZero() first.
func (m MemoryValue) Div(other MemoryValue) MemoryValue {
	if other.bits == 0 {
		return MemoryValue{bits: 0, width: m.width}
	}
	return MemoryValue{bits: (m.bits / other.bits) & mask(m.width), width: m.width}
}

// Mod returns the width-preserving remainder of m divided by other.
func (m MemoryValue) Mod(other MemoryValue) MemoryValue {
	if other.bits == 0 {
		return MemoryValue{bits: 0, width: m.width}
	}
	return MemoryValue{bits: (m.bits % other.bits) & mask(m.width), width: m.width}
}

// And returns the bitwise AND of m and other.
func (m MemoryValue) And(other MemoryValue) MemoryValue {
	return MemoryValue{bits: m.bits & other.bits & mask(m.width), width: m.width}
}

// Or returns the bitwise OR of m and other.
func (m MemoryValue) Or(other MemoryValue) MemoryValue {
	return MemoryValue{bits: (m.bits | other.bits) & mask(m.width), width: m.width}
}

// Xor returns the bitwise XOR of m and other.
func (m MemoryValue) Xor(other MemoryValue) MemoryValue {
	return MemoryValue{bits: (m.bits ^ other.bits) & mask(m.width), width: m.width}
}

// Not returns the bitwise complement of m, width-preserving.
func (m MemoryValue) Not() MemoryValue {
	return MemoryValue{bits: ^m.bits & mask(m.width), width: m.width}
}

// ShiftLeftLogical shifts m left by n bits, width-preserving.
func (m MemoryValue) ShiftLeftLogical(n uint) MemoryValue {
	if n >= m.width.Bits() {
		return MemoryValue{bits: 0, width: m.width}
	}
	return MemoryValue{bits: (m.bits << n) & mask(m.width), width: m.width}
}

// ShiftRightLogical shifts m right by n bits with zero fill.
func (m MemoryValue) ShiftRightLogical(n uint) MemoryValue {
	if n >= m.width.Bits() {
		return MemoryValue{bits: 0, width: m.width}
	}
	return MemoryValue{bits: m.bits >> n, width: m.width}
}

// ShiftRightArithmetic shifts m right by n bits, propagating the sign bit.
func (m MemoryValue) ShiftRightArithmetic(n uint) MemoryValue {
	signed := m.Signed() >> n
	return MemoryValue{bits: uint64(signed) & mask(m.width), width: m.width}
}

// Equal reports whether m and other have the same width and value.
func (m MemoryValue) Equal(other MemoryValue) bool {
	return m.width == other.width && m.bits == other.bits
}

// Less reports whether m is less than other under a signed interpretation.
// Both values must share a width.
func (m MemoryValue) Less(other MemoryValue) bool {
	return m.Signed() < other.Signed()
}
