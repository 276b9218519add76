package bus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRAMMirroring(t *testing.T) {
	b := New()

	b.Write(0x0000, 0x11)
	for _, addr := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := b.Read(addr); got != 0x11 {
			t.Errorf("mirror %04X = %02X, want 11", addr, got)
		}
	}

	b.Write(0x1FFF, 0x22)
	if got := b.Read(0x07FF); got != 0x22 {
		t.Errorf("write through mirror failed: got %02X", got)
	}
}

func TestUpperMemory(t *testing.T) {
	b := New()

	b.Write(0x8000, 0xA9)
	if got := b.Read(0x8000); got != 0xA9 {
		t.Errorf("upper memory read = %02X, want A9", got)
	}
	b.Write(0xFFFF, 0x80)
	if got := b.Read(0xFFFF); got != 0x80 {
		t.Errorf("top of memory read = %02X, want 80", got)
	}
}

func TestClockRunsProgram(t *testing.T) {
	b := New()

	// Reset vector -> $8000: LDA #$42, STA $0010.
	b.Load(0x8000, []byte{0xA9, 0x42, 0x85, 0x10})
	b.Load(0xFFFC, []byte{0x00, 0x80})
	b.Reset()

	before := b.SystemClocks
	b.Clock()
	b.Clock()
	if got := b.Read(0x0010); got != 0x42 {
		t.Errorf("program result = %02X, want 42", got)
	}
	if b.SystemClocks != before+5 {
		t.Errorf("SystemClocks advanced by %d, want 5", b.SystemClocks-before)
	}
}

func TestPauseAndStep(t *testing.T) {
	b := New()
	b.Load(0x8000, []byte{0xE8, 0xE8, 0xE8}) // INX x3
	b.Load(0xFFFC, []byte{0x00, 0x80})
	b.Reset()

	b.SetPaused(true)
	if n := b.Clock(); n != 0 {
		t.Errorf("paused Clock ran %d cycles, want 0", n)
	}
	if b.CPU.X != 0 {
		t.Error("paused Clock executed an instruction")
	}

	b.RequestStep()
	if n := b.Clock(); n != 2 {
		t.Errorf("stepped Clock ran %d cycles, want 2", n)
	}
	if b.CPU.X != 1 {
		t.Errorf("step executed X=%d instructions, want 1", b.CPU.X)
	}
	if n := b.Clock(); n != 0 {
		t.Error("step request should arm a single step only")
	}

	b.SetPaused(false)
	if n := b.Clock(); n != 2 {
		t.Errorf("resumed Clock ran %d cycles, want 2", n)
	}
}

func TestGetMemoryBlock(t *testing.T) {
	b := New()
	b.Load(0x0200, []byte{1, 2, 3, 4})

	block := b.GetMemoryBlock(0x0200, 4)
	for i, want := range []byte{1, 2, 3, 4} {
		if block[i] != want {
			t.Errorf("block[%d] = %02X, want %02X", i, block[i], want)
		}
	}
}

func TestSetInterrupt(t *testing.T) {
	b := New()
	b.Load(0xFFFA, []byte{0x00, 0xA0}) // NMI vector
	b.Load(0xFFFC, []byte{0x00, 0x80})
	b.Reset()

	b.SetInterrupt(true, true)
	b.Clock()
	if b.CPU.PC != 0xA000 {
		t.Errorf("NMI via bus not taken: PC=%04X", b.CPU.PC)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.gob")

	b := New()
	b.Load(0x8000, []byte{0xA9, 0x42}) // LDA #$42
	b.Load(0xFFFC, []byte{0x00, 0x80})
	b.Reset()
	b.Clock()
	b.Write(0x0300, 0x77)

	if err := b.SaveState(path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	b2 := New()
	if err := b2.LoadState(path); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if b2.CPU.A != 0x42 || b2.CPU.PC != 0x8002 {
		t.Errorf("restored CPU A=%02X PC=%04X", b2.CPU.A, b2.CPU.PC)
	}
	if got := b2.Read(0x0300); got != 0x77 {
		t.Errorf("restored RAM = %02X, want 77", got)
	}
	if b2.SystemClocks != b.SystemClocks {
		t.Errorf("restored clocks = %d, want %d", b2.SystemClocks, b.SystemClocks)
	}
}

func TestFlatRAM(t *testing.T) {
	r := NewFlatRAM()
	r.Write(0x07FF, 0x10)
	if got := r.Read(0x0FFF); got != 0 {
		t.Errorf("flat RAM must not mirror: got %02X", got)
	}
	if got := r.Read(0x07FF); got != 0x10 {
		t.Errorf("flat RAM read = %02X, want 10", got)
	}
	r.Clear()
	if got := r.Read(0x07FF); got != 0 {
		t.Errorf("Clear left %02X", got)
	}
}
