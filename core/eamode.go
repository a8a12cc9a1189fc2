package core

import "fmt"

// EAModeKind identifies the addressing-mode family of an EAMode, independent
// of which register or extension value it carries.
type EAModeKind int

const (
	// DRD is data register direct: Dn.
	DRD EAModeKind = iota
	// ARD is address register direct: An.
	ARD
	// ARI is address register indirect: (An).
	ARI
	// ARIPI is address register indirect with postincrement: (An)+.
	ARIPI
	// ARIPD is address register indirect with predecrement: -(An).
	ARIPD
	// IMM is immediate data: #<data>.
	IMM
	// ALA is absolute long address: (xxx).L.
	ALA
	// AWA is absolute word address: (xxx).W.
	AWA
)

func (k EAModeKind) String() string {
	switch k {
	case DRD:
		return "DRD"
	case ARD:
		return "ARD"
	case ARI:
		return "ARI"
	case ARIPI:
		return "ARIPI"
	case ARIPD:
		return "ARIPD"
	case IMM:
		return "IMM"
	case ALA:
		return "ALA"
	case AWA:
		return "AWA"
	default:
		return "?"
	}
}

// binary mode field values, per the M68K effective-address encoding.
const (
	modeFieldDRD   = 0b000
	modeFieldARD   = 0b001
	modeFieldARI   = 0b010
	modeFieldARIPI = 0b011
	modeFieldARIPD = 0b100
	modeFieldExt   = 0b111

	regFieldAWA = 0b000
	regFieldALA = 0b001
	regFieldIMM = 0b100
)

// EAMode is an effective-address operand: an addressing mode together with
// whatever register or extension data it carries. For DRD/ARD/ARI/ARIPI/
// ARIPD, Reg identifies the register; for IMM, Immediate holds the literal
// value; for ALA/AWA, Address holds the absolute address.
type EAMode struct {
	Kind      EAModeKind
	Reg       Register
	Immediate MemoryValue
	Address   uint32
}

// NewRegisterMode builds an EAMode for one of the register-indirect family
// of modes (DRD, ARD, ARI, ARIPI, ARIPD).
func NewRegisterMode(kind EAModeKind, reg Register) EAMode {
	return EAMode{Kind: kind, Reg: reg}
}

// NewImmediateMode builds an IMM EAMode carrying the given literal value.
func NewImmediateMode(v MemoryValue) EAMode {
	return EAMode{Kind: IMM, Immediate: v}
}

// NewAbsoluteMode builds an ALA or AWA EAMode carrying the given address.
func NewAbsoluteMode(kind EAModeKind, addr uint32) EAMode {
	return EAMode{Kind: kind, Address: addr}
}

func (e EAMode) String() string {
	switch e.Kind {
	case DRD, ARD:
		return e.Reg.String()
	case ARI:
		return fmt.Sprintf("(%s)", e.Reg)
	case ARIPI:
		return fmt.Sprintf("(%s)+", e.Reg)
	case ARIPD:
		return fmt.Sprintf("-(%s)", e.Reg)
	case IMM:
		return fmt.Sprintf("#%s", e.Immediate)
	case ALA:
		return fmt.Sprintf("($%08X).L", e.Address)
	case AWA:
		return fmt.Sprintf("($%04X).W", e.Address)
	default:
		return "?"
	}
}

// modeRegFields returns the 3-bit mode field and 3-bit register field used
// to encode this EAMode, following the M68K convention that extended modes
// (IMM/ALA/AWA) all share mode field 111 and distinguish themselves by
// register field.
func (e EAMode) modeRegFields() (mode, reg uint8) {
	switch e.Kind {
	case DRD:
		return modeFieldDRD, uint8(e.Reg.Index())
	case ARD:
		return modeFieldARD, uint8(e.Reg.Index())
	case ARI:
		return modeFieldARI, uint8(e.Reg.Index())
	case ARIPI:
		return modeFieldARIPI, uint8(e.Reg.Index())
	case ARIPD:
		return modeFieldARIPD, uint8(e.Reg.Index())
	case IMM:
		return modeFieldExt, regFieldIMM
	case ALA:
		return modeFieldExt, regFieldALA
	case AWA:
		return modeFieldExt, regFieldAWA
	default:
		return 0, 0
	}
}

// EncodeModeFirst returns the 6-bit field with the mode in the top 3 bits
// and the register in the bottom 3, as used for a MOVE instruction's
// source operand.
func (e EAMode) EncodeModeFirst() uint8 {
	mode, reg := e.modeRegFields()
	return mode<<3 | reg
}

// EncodeRegFirst returns the 6-bit field with the register in the top 3
// bits and the mode in the bottom 3, as used for a MOVE instruction's
// destination operand and for most other instructions' single operand.
func (e EAMode) EncodeRegFirst() uint8 {
	mode, reg := e.modeRegFields()
	return reg<<3 | mode
}

// ExtensionWords returns the number of 16-bit extension words this operand
// consumes following the opcode word, given the operation size it is used
// at (relevant only for IMM, where byte and word immediates both occupy a
// single zero-padded extension word and long immediates occupy two).
func (e EAMode) ExtensionWords(size OpSize) int {
	switch e.Kind {
	case IMM:
		if size == LONG {
			return 2
		}
		return 1
	case AWA:
		return 1
	case ALA:
		return 2
	default:
		return 0
	}
}

// DecodeEAMode reconstructs an EAMode from its 3-bit mode field and 3-bit
// register field, consuming any needed extension words from ext (already
// byte-swapped into machine-native uint32 values, one per extension word
// slot, in program order). It returns the decoded mode and the count of
// extension words consumed from ext.
func DecodeEAMode(mode, reg uint8, size OpSize, ext []uint32) (EAMode, int, error) {
	switch mode {
	case modeFieldDRD:
		return NewRegisterMode(DRD, D0+Register(reg)), 0, nil
	case modeFieldARD:
		return NewRegisterMode(ARD, A0+Register(reg)), 0, nil
	case modeFieldARI:
		return NewRegisterMode(ARI, A0+Register(reg)), 0, nil
	case modeFieldARIPI:
		return NewRegisterMode(ARIPI, A0+Register(reg)), 0, nil
	case modeFieldARIPD:
		return NewRegisterMode(ARIPD, A0+Register(reg)), 0, nil
	case modeFieldExt:
		switch reg {
		case regFieldAWA:
			if len(ext) < 1 {
				return EAMode{}, 0, fmt.Errorf("absolute word address: missing extension word")
			}
			return NewAbsoluteMode(AWA, ext[0]), 1, nil
		case regFieldALA:
			if len(ext) < 2 {
				return EAMode{}, 0, fmt.Errorf("absolute long address: missing extension word")
			}
			return NewAbsoluteMode(ALA, ext[0]<<16|ext[1]), 2, nil
		case regFieldIMM:
			if size == LONG {
				if len(ext) < 2 {
					return EAMode{}, 0, fmt.Errorf("immediate: missing extension word")
				}
				v, err := FromUnsigned(size, uint64(ext[0]<<16|ext[1])&mask(size))
				if err != nil {
					return EAMode{}, 0, err
				}
				return NewImmediateMode(v), 2, nil
			}
			if len(ext) < 1 {
				return EAMode{}, 0, fmt.Errorf("immediate: missing extension word")
			}
			v, err := FromUnsigned(size, uint64(ext[0])&mask(size))
			if err != nil {
				return EAMode{}, 0, err
			}
			return NewImmediateMode(v), 1, nil
		}
	}
	return EAMode{}, 0, fmt.Errorf("invalid effective address mode/register fields: %03b/%03b", mode, reg)
}
