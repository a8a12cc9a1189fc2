package core

import "testing"

func TestEAModeEncodeModeFirstAndRegFirst(t *testing.T) {
	e := NewRegisterMode(DRD, D3)
	if got, want := e.EncodeModeFirst(), uint8(0b000_011); got != want {
		t.Errorf("DRD D3 mode-first = %06b, want %06b", got, want)
	}
	if got, want := e.EncodeRegFirst(), uint8(0b011_000); got != want {
		t.Errorf("DRD D3 reg-first = %06b, want %06b", got, want)
	}
}

func TestEAModeImmediateFields(t *testing.T) {
	v := MustFromUnsigned(WORD, 0x1234)
	e := NewImmediateMode(v)
	if got, want := e.EncodeModeFirst(), uint8(0b111_100); got != want {
		t.Errorf("IMM mode-first = %06b, want %06b", got, want)
	}
}

func TestEAModeAbsoluteFields(t *testing.T) {
	ala := NewAbsoluteMode(ALA, 0xAAAA)
	if got, want := ala.EncodeModeFirst(), uint8(0b111_001); got != want {
		t.Errorf("ALA mode-first = %06b, want %06b", got, want)
	}
	awa := NewAbsoluteMode(AWA, 0xBBBB)
	if got, want := awa.EncodeModeFirst(), uint8(0b111_000); got != want {
		t.Errorf("AWA mode-first = %06b, want %06b", got, want)
	}
}

func TestEAModeExtensionWords(t *testing.T) {
	tests := []struct {
		name string
		e    EAMode
		size OpSize
		want int
	}{
		{"imm byte", NewImmediateMode(MustFromUnsigned(BYTE, 1)), BYTE, 1},
		{"imm word", NewImmediateMode(MustFromUnsigned(WORD, 1)), WORD, 1},
		{"imm long", NewImmediateMode(MustFromUnsigned(LONG, 1)), LONG, 2},
		{"awa", NewAbsoluteMode(AWA, 0), WORD, 1},
		{"ala", NewAbsoluteMode(ALA, 0), WORD, 2},
		{"drd", NewRegisterMode(DRD, D0), WORD, 0},
	}
	for _, tt := range tests {
		if got := tt.e.ExtensionWords(tt.size); got != tt.want {
			t.Errorf("%s: ExtensionWords = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDecodeEAModeRegisterDirect(t *testing.T) {
	e, n, err := DecodeEAMode(modeFieldDRD, 5, WORD, nil)
	if err != nil {
		t.Fatalf("DecodeEAMode: %v", err)
	}
	if n != 0 {
		t.Errorf("consumed %d extension words, want 0", n)
	}
	if e.Kind != DRD || e.Reg != D5 {
		t.Errorf("decoded %v, want DRD D5", e)
	}
}

func TestDecodeEAModeAbsoluteWord(t *testing.T) {
	e, n, err := DecodeEAMode(modeFieldExt, regFieldAWA, WORD, []uint32{0xBBBB})
	if err != nil {
		t.Fatalf("DecodeEAMode: %v", err)
	}
	if n != 1 {
		t.Errorf("consumed %d extension words, want 1", n)
	}
	if e.Kind != AWA || e.Address != 0xBBBB {
		t.Errorf("decoded %v, want AWA 0xBBBB", e)
	}
}

func TestDecodeEAModeImmediateMissingExtension(t *testing.T) {
	if _, _, err := DecodeEAMode(modeFieldExt, regFieldIMM, WORD, nil); err == nil {
		t.Errorf("expected error decoding immediate with no extension words")
	}
}

func TestDecodeEAModeAbsoluteLong(t *testing.T) {
	e, n, err := DecodeEAMode(modeFieldExt, regFieldALA, WORD, []uint32{0x0000, 0x2000})
	if err != nil {
		t.Fatalf("DecodeEAMode: %v", err)
	}
	if n != 2 {
		t.Errorf("consumed %d extension words, want 2", n)
	}
	if e.Kind != ALA || e.Address != 0x00002000 {
		t.Errorf("decoded %v, want ALA 0x00002000", e)
	}
}

func TestDecodeEAModeImmediateLong(t *testing.T) {
	e, n, err := DecodeEAMode(modeFieldExt, regFieldIMM, LONG, []uint32{0xDEAD, 0xBEEF})
	if err != nil {
		t.Fatalf("DecodeEAMode: %v", err)
	}
	if n != 2 {
		t.Errorf("consumed %d extension words, want 2", n)
	}
	if e.Immediate.Unsigned() != 0xDEADBEEF {
		t.Errorf("decoded immediate %#x, want 0xDEADBEEF", e.Immediate.Unsigned())
	}
}

func TestDecodeEAModeImmediateLongMissingExtension(t *testing.T) {
	if _, _, err := DecodeEAMode(modeFieldExt, regFieldIMM, LONG, []uint32{0xDEAD}); err == nil {
		t.Errorf("expected error decoding long immediate with only one extension word")
	}
}
