package asmutil

import (
	"reflect"
	"testing"
)

func TestStripComments(t *testing.T) {
	tests := []struct{ in, want string }{
		{"MOVE.B D0, D1 ; move it", "MOVE.B D0, D1 "},
		{"MOVE.B D0, D1 * comment", "MOVE.B D0, D1 "},
		{"MOVE.B D0, D1", "MOVE.B D0, D1"},
		{"; just a comment", ""},
	}
	for _, tt := range tests {
		if got := StripComments(tt.in); got != tt.want {
			t.Errorf("StripComments(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabelSplitting(t *testing.T) {
	line := "START: MOVE.B #1, D0"
	if !HasLabel(line) {
		t.Fatalf("expected %q to have a label", line)
	}
	if got, want := GetLabel(line), "START"; got != want {
		t.Errorf("GetLabel = %q, want %q", got, want)
	}
	if got, want := StripLabel(line), "MOVE.B #1, D0"; got != want {
		t.Errorf("StripLabel = %q, want %q", got, want)
	}

	indented := "        MOVE.B #1, D0"
	if HasLabel(indented) {
		t.Fatalf("indented line should not have a label")
	}
	if got := GetLabel(indented); got != "" {
		t.Errorf("GetLabel(indented) = %q, want empty", got)
	}
	if got, want := StripLabel(indented), "MOVE.B #1, D0"; got != want {
		t.Errorf("StripLabel(indented) = %q, want %q", got, want)
	}
}

func TestGetOpcodeAndStripOpcode(t *testing.T) {
	inst := "MOVE.B #1, D0"
	if got, want := GetOpcode(inst), "MOVE.B"; got != want {
		t.Errorf("GetOpcode = %q, want %q", got, want)
	}
	if got, want := StripOpcode(inst), "#1, D0"; got != want {
		t.Errorf("StripOpcode = %q, want %q", got, want)
	}
	if got := StripOpcode("SIMHALT"); got != "" {
		t.Errorf("StripOpcode with no operands = %q, want empty", got)
	}
}

func TestSplitMnemonic(t *testing.T) {
	m, s := SplitMnemonic("MOVE.L")
	if m != "MOVE" || s != "L" {
		t.Errorf("SplitMnemonic(MOVE.L) = %q, %q", m, s)
	}
	m, s = SplitMnemonic("SIMHALT")
	if m != "SIMHALT" || s != "" {
		t.Errorf("SplitMnemonic(SIMHALT) = %q, %q", m, s)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"$1A2B", 0x1A2B, false},
		{"%1011", 0b1011, false},
		{"@17", 15, false},
		{"42", 42, false},
		{"#42", 42, false},
		{"-$10", -16, false},
		{"", 0, true},
		{"$ZZ", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLiteral(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLiteral(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLiteral(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseCharLiteral(t *testing.T) {
	v, ok := ParseCharLiteral("'A'")
	if !ok || v != 'A' {
		t.Errorf("ParseCharLiteral('A') = %d, %v, want 65, true", v, ok)
	}
	if _, ok := ParseCharLiteral("$10"); ok {
		t.Errorf("ParseCharLiteral($10) should not be recognized as a char literal")
	}
}

func TestSplitOperands(t *testing.T) {
	got := SplitOperands("'Hai, there', $AB, D0")
	want := []string{"'Hai, there'", "$AB", "D0"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitOperands = %#v, want %#v", got, want)
	}
}
