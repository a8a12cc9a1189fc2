package core

import "testing"

func TestParseRegister(t *testing.T) {
	tests := []struct {
		in   string
		want Register
		ok   bool
	}{
		{"D0", D0, true},
		{"d3", D3, true},
		{"A7", A7, true},
		{"SP", A7, true},
		{"PC", PC, true},
		{"D8", 0, false},
		{"X1", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRegister(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseRegister(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseRegister(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConditionCodeRoundTrip(t *testing.T) {
	c := ConditionCode{X: true, N: false, Z: true, V: false, C: true}
	b := c.ToByte()
	var c2 ConditionCode
	c2.FromByte(b)
	if c2 != c {
		t.Errorf("round trip mismatch: got %+v, want %+v", c2, c)
	}
}

func TestConditionCodeString(t *testing.T) {
	c := ConditionCode{Z: true}
	if got, want := c.String(), "--Z--"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
