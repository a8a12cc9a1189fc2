package opcodes

import (
	"testing"

	"github.com/lookbusy1344/m68k-emulator/core"
)

func TestLEAValidateRejectsNonAddressDest(t *testing.T) {
	var l LEA
	if err := l.Validate(core.LONG, "(A0), D1"); err == nil {
		t.Errorf("expected error for data-register destination")
	}
	if err := l.Validate(core.LONG, "(A0), A1"); err != nil {
		t.Errorf("expected valid LEA, got %v", err)
	}
}

func TestLEAValidateRejectsRegisterDirectSource(t *testing.T) {
	var l LEA
	if err := l.Validate(core.LONG, "D0, A1"); err == nil {
		t.Errorf("expected error for register-direct source")
	}
}

func TestLEAExecute(t *testing.T) {
	var l LEA
	words, err := l.Assemble(core.LONG, "($001000).L, A2", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	ctx := newFakeContext()
	if _, err := l.Execute(ctx, words[0], words[1:]); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := ctx.ReadRegister(core.A2, core.LONG).Unsigned(); got != 0x001000 {
		t.Errorf("A2 = %#x, want 0x001000", got)
	}
}

func TestSIMHALTExecuteHalts(t *testing.T) {
	var s SIMHALT
	ctx := newFakeContext()
	if _, err := s.Execute(ctx, simhaltOpcode, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ctx.halted {
		t.Errorf("expected SIMHALT to halt the context")
	}
}

func TestSIMHALTRejectsOperands(t *testing.T) {
	var s SIMHALT
	if err := s.Validate(core.WORD, "D0"); err == nil {
		t.Errorf("expected error for SIMHALT with an operand")
	}
}
