package assembler

import "testing"

func TestParseMoveAndHalt(t *testing.T) {
	src := "    MOVE.B #$05, D0\n    SIMHALT\n    END $000000\n"
	list, issues := Parse(src)
	if issues.HasErrors() {
		t.Fatalf("unexpected errors: %v", issues.Errors())
	}
	if list.StartingExecutionAddress != 0 {
		t.Errorf("StartingExecutionAddress = %#x, want 0", list.StartingExecutionAddress)
	}
	// MOVE.B #$05, D0 assembles to one opcode word plus one extension word.
	if list.GetByte(0) == 0 && list.GetByte(1) == 0 {
		t.Errorf("expected a nonzero opcode word at address 0")
	}
}

func TestParseLabeledOrgAndMoveL(t *testing.T) {
	src := "        ORG $1000\nSTART:  MOVE.L #$12345678, D1\n        SIMHALT\n        END START\n"
	list, issues := Parse(src)
	if issues.HasErrors() {
		t.Fatalf("unexpected errors: %v", issues.Errors())
	}
	addr, ok := list.Symbols["START"]
	if !ok || addr != 0x1000 {
		t.Fatalf("START = %#x, %v, want 0x1000, true", addr, ok)
	}
	if list.StartingExecutionAddress != 0x1000 {
		t.Errorf("StartingExecutionAddress = %#x, want 0x1000", list.StartingExecutionAddress)
	}
}

func TestParseDCString(t *testing.T) {
	src := "DATA:   DC.B 'Hai!'\n        END $000000\n"
	list, issues := Parse(src)
	if issues.HasErrors() {
		t.Fatalf("unexpected errors: %v", issues.Errors())
	}
	addr := list.Symbols["DATA"]
	want := []byte("Hai!")
	for i, b := range want {
		if got := list.GetByte(addr + uint32(i)); got != b {
			t.Errorf("byte %d = %#x, want %#x", i, got, b)
		}
	}
}

func TestParseInvalidMoveToAddressRegister(t *testing.T) {
	src := "    MOVE.W D0, A0\n    END $000000\n"
	_, issues := Parse(src)
	if !issues.HasErrors() {
		t.Fatalf("expected an error for MOVE to an address register")
	}
}

func TestParseDuplicateLabel(t *testing.T) {
	src := "FOO: MOVE.B D0, D1\nFOO: MOVE.B D2, D3\n     END $000000\n"
	_, issues := Parse(src)
	if !issues.HasErrors() {
		t.Fatalf("expected a duplicate-label error")
	}
	found := false
	for _, e := range issues.Errors() {
		if e.Kind.String() == "DuplicateLabel" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DuplicateLabel issue, got %v", issues.Errors())
	}
}

func TestParseOrgOutOfRange(t *testing.T) {
	src := "    ORG $FFFFFF\n    DC.L $01\n    END $000000\n"
	_, issues := Parse(src)
	if !issues.HasErrors() {
		t.Fatalf("expected an out-of-range error for DC.L spilling past 2^24")
	}
}

func TestParseEquate(t *testing.T) {
	src := "COUNT EQU $0A\n    MOVE.B #COUNT, D0\n    END $000000\n"
	list, issues := Parse(src)
	if issues.HasErrors() {
		t.Fatalf("unexpected errors: %v", issues.Errors())
	}
	if list.GetByte(3) != 0x0A {
		t.Errorf("expected equate-substituted immediate 0x0A, got %#x", list.GetByte(3))
	}
}
