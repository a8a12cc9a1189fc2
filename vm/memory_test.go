package vm

import (
	"errors"
	"testing"

	"github.com/lookbusy1344/m68k-emulator/asmerr"
	"github.com/lookbusy1344/m68k-emulator/core"
)

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	m := NewMemory()
	v := core.MustFromUnsigned(core.LONG, 0xDEADBEEF)
	if err := m.Write(0x1000, v); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := m.Read(0x1000, core.LONG)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("round trip = %v, want %v", got, v)
	}
}

func TestMemoryAddressErrorOnOddWordAccess(t *testing.T) {
	m := NewMemory()
	_, err := m.Read(0x1001, core.WORD)
	var f *asmerr.Fault
	if !errors.As(err, &f) || f.Kind != asmerr.AddressError {
		t.Fatalf("expected AddressError fault, got %v", err)
	}
}

func TestMemoryByteAccessHasNoAlignmentRestriction(t *testing.T) {
	m := NewMemory()
	if err := m.WriteByte(0x1001, 0x42); err != nil {
		t.Fatalf("WriteByte at odd address should succeed: %v", err)
	}
}

func TestMemoryBusFaultPastEnd(t *testing.T) {
	m := NewMemory()
	_, err := m.Read(MemorySize-2, core.LONG)
	var f *asmerr.Fault
	if !errors.As(err, &f) || f.Kind != asmerr.BusError {
		t.Fatalf("expected BusError fault, got %v", err)
	}
}
