package opcodes

import (
	"testing"

	"github.com/lookbusy1344/m68k-emulator/core"
)

func TestORGValidateRange(t *testing.T) {
	var o ORG
	if err := o.Validate(core.WORD, "$1000"); err != nil {
		t.Errorf("ORG $1000 should be valid: %v", err)
	}
	if err := o.Validate(core.WORD, "$1000000"); err == nil {
		t.Errorf("ORG at 2^24 should be out of range")
	}
}

func TestENDValidateRange(t *testing.T) {
	var e END
	if err := e.Validate(core.WORD, "$400"); err != nil {
		t.Errorf("END $400 should be valid: %v", err)
	}
	if err := e.Validate(core.WORD, "-1"); err == nil {
		t.Errorf("negative END address should be invalid")
	}
}

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"MOVE", "DC", "LEA", "SIMHALT", "ORG", "EQU", "END"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) not found in registry", name)
		}
	}
	if _, ok := Lookup("MOVEM"); ok {
		t.Errorf("MOVEM should not be registered")
	}
}

func TestMatchesDispatchesByOpcodeWord(t *testing.T) {
	var m Move
	words, err := m.Assemble(core.WORD, "D0, D1", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !m.Matches(words[0]) {
		t.Errorf("Move.Matches(%#04x) = false, want true", words[0])
	}
	if !(SIMHALT{}).Matches(simhaltOpcode) {
		t.Errorf("SIMHALT.Matches(simhaltOpcode) = false, want true")
	}
	if (DC{}).Matches(words[0]) {
		t.Errorf("DC should never match any opcode word")
	}
}

func TestIsDirective(t *testing.T) {
	if !IsDirective("ORG") || !IsDirective("EQU") || !IsDirective("END") {
		t.Errorf("ORG/EQU/END should be directives")
	}
	if IsDirective("MOVE") {
		t.Errorf("MOVE should not be a directive")
	}
}
