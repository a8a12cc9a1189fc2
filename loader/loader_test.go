package loader

import (
	"testing"

	"github.com/lookbusy1344/m68k-emulator/assembler"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	src := "START:  MOVE.L #$1, D0\n    SIMHALT\n    END START\n"
	list, issues := assembler.Parse(src)
	if issues.HasErrors() {
		t.Fatalf("assembly issues: %v", issues.Errors())
	}

	text := Marshal(list)
	got, err := Unmarshal(text)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.StartingExecutionAddress != list.StartingExecutionAddress {
		t.Errorf("StartingExecutionAddress = %#x, want %#x", got.StartingExecutionAddress, list.StartingExecutionAddress)
	}
	if len(got.Memory) != len(list.Memory) {
		t.Fatalf("Memory length = %d, want %d", len(got.Memory), len(list.Memory))
	}
	for addr, b := range list.Memory {
		if got.Memory[addr] != b {
			t.Errorf("Memory[%#x] = %#x, want %#x", addr, got.Memory[addr], b)
		}
	}
	for name, addr := range list.Symbols {
		if got.Symbols[name] != addr {
			t.Errorf("Symbols[%q] = %#x, want %#x", name, got.Symbols[name], addr)
		}
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	src := "START:  MOVE.L #$1, D0\n    SIMHALT\n    END START\n"
	list, issues := assembler.Parse(src)
	if issues.HasErrors() {
		t.Fatalf("assembly issues: %v", issues.Errors())
	}

	first := Marshal(list)
	second := Marshal(list)
	if first != second {
		t.Errorf("Marshal is not deterministic across calls")
	}
}

func TestUnmarshalRejectsMalformedRecord(t *testing.T) {
	_, err := Unmarshal("START 1000\nBYTE ZZZZZZ 00\n")
	if err == nil {
		t.Fatal("expected error for invalid hex address")
	}
}

func TestUnmarshalRejectsUnknownRecordKind(t *testing.T) {
	_, err := Unmarshal("FOO bar\n")
	if err == nil {
		t.Fatal("expected error for unknown record kind")
	}
}

func TestUnmarshalEmptyInput(t *testing.T) {
	list, err := Unmarshal("")
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if list.StartingExecutionAddress != 0 {
		t.Errorf("StartingExecutionAddress = %#x, want 0", list.StartingExecutionAddress)
	}
	if len(list.Memory) != 0 {
		t.Errorf("Memory should be empty, got %d entries", len(list.Memory))
	}
}
