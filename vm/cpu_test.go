package vm

import (
	"testing"

	"github.com/lookbusy1344/m68k-emulator/core"
)

func TestCPUWriteDataRegisterPreservesUpperBytes(t *testing.T) {
	c := NewCPU()
	c.Write(core.D0, core.MustFromUnsigned(core.LONG, 0x11223344))
	c.Write(core.D0, core.MustFromUnsigned(core.BYTE, 0xFF))
	if got, want := c.D[0], uint32(0x112233FF); got != want {
		t.Errorf("D0 = %#x, want %#x", got, want)
	}
}

func TestCPUWriteAddressRegisterSignExtends(t *testing.T) {
	c := NewCPU()
	c.Write(core.A0, core.MustFromUnsigned(core.WORD, 0x8000))
	if got, want := c.A[0], uint32(0xFFFF8000); got != want {
		t.Errorf("A0 = %#x, want %#x", got, want)
	}
}

func TestCPURead(t *testing.T) {
	c := NewCPU()
	c.D[3] = 0xABCD1234
	got := c.Read(core.D3, core.WORD)
	if got.Unsigned() != 0x1234 {
		t.Errorf("D3 read as word = %#x, want 0x1234", got.Unsigned())
	}
}
