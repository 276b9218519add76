package cpu

import (
	"testing"
)

type mockBus struct {
	ram [65536]byte
}

func (b *mockBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

func setupCPU(t *testing.T) (*CPU, *mockBus) {
	t.Helper()
	c := New()
	bus := &mockBus{}
	c.ConnectBus(bus)
	c.PC = 0x8000
	return c, bus
}

func load(bus *mockBus, addr uint16, bytes ...byte) {
	for i, b := range bytes {
		bus.ram[addr+uint16(i)] = b
	}
}

func TestLoadStore(t *testing.T) {
	c, bus := setupCPU(t)

	load(bus, 0x8000, 0xA9, 0x42) // LDA #$42
	c.Step()
	if c.A != 0x42 {
		t.Error("LDA IMM failed")
	}

	load(bus, 0x8002, 0x8D, 0x10, 0x01) // STA $0110
	c.Step()
	if bus.ram[0x0110] != 0x42 {
		t.Error("STA ABS failed")
	}
}

func TestLoadFlags(t *testing.T) {
	c, bus := setupCPU(t)

	load(bus, 0x8000, 0xA9, 0x00) // LDA #$00
	c.Step()
	if c.P&FlagZ == 0 || c.P&FlagN != 0 {
		t.Errorf("LDA #$00 flags wrong: P=%02X", c.P)
	}

	load(bus, 0x8002, 0xA9, 0x80) // LDA #$80
	c.Step()
	if c.P&FlagN == 0 || c.P&FlagZ != 0 {
		t.Errorf("LDA #$80 flags wrong: P=%02X", c.P)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	c, _ := setupCPU(t)

	// Bit 5 always reads as 1; every other bit, B included, round-trips.
	for v := 0; v < 256; v++ {
		c.SetStatus(byte(v))
		if got, want := c.Status(), byte(v)|FlagU; got != want {
			t.Fatalf("Status() after SetStatus(%02X) = %02X, want %02X", v, got, want)
		}
	}
}

func TestArithmeticOverflow(t *testing.T) {
	c, bus := setupCPU(t)

	// 0x50 + 0x50 = 0xA0: signed overflow, negative, no carry.
	c.A = 0x50
	c.P &^= FlagC
	load(bus, 0x8000, 0x69, 0x50) // ADC #$50
	c.Step()
	if c.A != 0xA0 {
		t.Errorf("ADC result = %02X, want A0", c.A)
	}
	if c.P&FlagV == 0 {
		t.Error("ADC should set V on 0x50+0x50")
	}
	if c.P&FlagN == 0 || c.P&FlagC != 0 || c.P&FlagZ != 0 {
		t.Errorf("ADC flags wrong: P=%02X", c.P)
	}
}

func TestSBCBorrow(t *testing.T) {
	c, bus := setupCPU(t)

	c.A = 10
	c.P |= FlagC               // no borrow pending
	load(bus, 0x8000, 0xE9, 5) // SBC #$05
	c.Step()
	if c.A != 5 {
		t.Errorf("SBC result = %d, want 5", c.A)
	}
	if c.P&FlagC == 0 {
		t.Error("SBC should set C when no borrow occurs")
	}

	// 0xEB is an alias for SBC #imm.
	c.A = 5
	load(bus, 0x8002, 0xEB, 10)
	c.Step()
	if c.A != 0xFB {
		t.Errorf("SBC alias result = %02X, want FB", c.A)
	}
	if c.P&FlagC != 0 {
		t.Error("SBC alias should clear C on borrow")
	}
}

func TestStackWrap(t *testing.T) {
	c, _ := setupCPU(t)

	c.SP = 0x00
	c.push(0xAA)
	if c.SP != 0xFF {
		t.Errorf("SP after push at 0x00 = %02X, want FF", c.SP)
	}
	if got := c.pull(); got != 0xAA {
		t.Errorf("pull after wrap = %02X, want AA", got)
	}
	if c.SP != 0x00 {
		t.Errorf("SP after pull = %02X, want 00", c.SP)
	}
}

func TestPHPAndPLP(t *testing.T) {
	c, bus := setupCPU(t)

	c.P = FlagC | FlagN | FlagU
	load(bus, 0x8000, 0x08) // PHP
	c.Step()
	pushed := bus.ram[stackBase+uint16(c.SP)+1]
	if pushed&FlagB == 0 || pushed&FlagU == 0 {
		t.Errorf("PHP pushed %02X, want bits 4 and 5 set", pushed)
	}

	// PLP takes bits 0-3 and 6-7 from the stack and keeps the register's
	// bits 4-5.
	bus.ram[stackBase+uint16(c.SP)+1] = 0xFF
	c.P = FlagU
	load(bus, 0x8001, 0x28) // PLP
	c.Step()
	if c.P&0xCF != 0xCF {
		t.Errorf("PLP did not adopt pulled bits: P=%02X", c.P)
	}
	if c.P&FlagB != 0 {
		t.Errorf("PLP adopted the B bit from the stack: P=%02X", c.P)
	}
}

func TestBranchCycles(t *testing.T) {
	c, bus := setupCPU(t)

	// Not taken: 2 cycles.
	load(bus, 0x8000, 0xF0, 0x10) // BEQ +16, Z clear
	if got := c.Step(); got != 2 {
		t.Errorf("branch not taken = %d cycles, want 2", got)
	}
	if c.PC != 0x8002 {
		t.Errorf("branch not taken PC = %04X, want 8002", c.PC)
	}

	// Taken, same page: 3 cycles.
	c.PC = 0x8002
	c.P |= FlagZ
	load(bus, 0x8002, 0xF0, 0x10) // BEQ +16
	if got := c.Step(); got != 3 {
		t.Errorf("branch taken = %d cycles, want 3", got)
	}
	if c.PC != 0x8014 {
		t.Errorf("branch taken PC = %04X, want 8014", c.PC)
	}

	// Taken, page crossed: 4 cycles.
	c.PC = 0x80F0
	load(bus, 0x80F0, 0xF0, 0x7F) // BEQ +127 lands on 0x8171
	if got := c.Step(); got != 4 {
		t.Errorf("branch crossing = %d cycles, want 4", got)
	}
	if c.PC != 0x8171 {
		t.Errorf("branch crossing PC = %04X, want 8171", c.PC)
	}

	// Backward across a page.
	c.PC = 0x8002
	load(bus, 0x8002, 0xF0, 0xF0) // BEQ -16 lands on 0x7FF4
	if got := c.Step(); got != 4 {
		t.Errorf("backward crossing = %d cycles, want 4", got)
	}
	if c.PC != 0x7FF4 {
		t.Errorf("backward crossing PC = %04X, want 7FF4", c.PC)
	}
}

func TestPageCrossPenalty(t *testing.T) {
	c, bus := setupCPU(t)

	// LDA $80FF,X with X=1 crosses into $8100.
	c.X = 1
	bus.ram[0x8100] = 0x99
	load(bus, 0x8000, 0xBD, 0xFF, 0x80)
	if got := c.Step(); got != 5 {
		t.Errorf("LDA abs,X crossing = %d cycles, want 5", got)
	}
	if c.A != 0x99 {
		t.Errorf("LDA abs,X crossing read %02X, want 99", c.A)
	}

	// Same access without a crossing stays at 4 cycles.
	c.PC = 0x8003
	c.X = 0
	bus.ram[0x80FF] = 0x55
	load(bus, 0x8003, 0xBD, 0xFF, 0x80)
	if got := c.Step(); got != 4 {
		t.Errorf("LDA abs,X same page = %d cycles, want 4", got)
	}

	// Stores never pay the penalty.
	c.PC = 0x8006
	c.X = 1
	load(bus, 0x8006, 0x9D, 0xFF, 0x80) // STA $80FF,X
	if got := c.Step(); got != 5 {
		t.Errorf("STA abs,X = %d cycles, want 5", got)
	}
}

func TestJMPIndirectBug(t *testing.T) {
	c, bus := setupCPU(t)

	// Pointer at $30FF: low byte from $30FF, high from $3000 (not $3100).
	bus.ram[0x30FF] = 0x80
	bus.ram[0x3000] = 0x40
	bus.ram[0x3100] = 0x50
	load(bus, 0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	c.Step()
	if c.PC != 0x4080 {
		t.Errorf("JMP (ind) wrap PC = %04X, want 4080", c.PC)
	}
}

func TestZeroPageIndexedWrap(t *testing.T) {
	c, bus := setupCPU(t)

	// $FF + X=1 wraps to $00 within page zero.
	c.X = 1
	bus.ram[0x0000] = 0x77
	load(bus, 0x8000, 0xB5, 0xFF) // LDA $FF,X
	c.Step()
	if c.A != 0x77 {
		t.Errorf("LDA zp,X wrap read %02X, want 77", c.A)
	}

	// (zp,X) pointer wraps too: pointer bytes at $FF and $00.
	c.PC = 0x8002
	c.X = 0
	bus.ram[0x00FF] = 0x34
	bus.ram[0x0000] = 0x12
	bus.ram[0x1234] = 0x88
	load(bus, 0x8002, 0xA1, 0xFF) // LDA ($FF,X)
	c.Step()
	if c.A != 0x88 {
		t.Errorf("LDA (zp,X) wrap read %02X, want 88", c.A)
	}
}

func TestJSRAndRTS(t *testing.T) {
	c, bus := setupCPU(t)

	load(bus, 0x8000, 0x20, 0x00, 0x90) // JSR $9000
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("JSR PC = %04X, want 9000", c.PC)
	}
	// JSR pushes the address of its own last byte.
	hi := bus.ram[stackBase+uint16(c.SP)+2]
	lo := bus.ram[stackBase+uint16(c.SP)+1]
	if ret := uint16(hi)<<8 | uint16(lo); ret != 0x8002 {
		t.Errorf("JSR pushed %04X, want 8002", ret)
	}

	load(bus, 0x9000, 0x60) // RTS
	c.Step()
	if c.PC != 0x8003 {
		t.Errorf("RTS PC = %04X, want 8003", c.PC)
	}
}

func TestBRKAndRTI(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[IRQVector] = 0x00
	bus.ram[IRQVector+1] = 0x90
	c.P = FlagU | FlagC
	load(bus, 0x8000, 0x00) // BRK
	if got := c.Step(); got != 7 {
		t.Errorf("BRK = %d cycles, want 7", got)
	}
	if c.PC != 0x9000 {
		t.Errorf("BRK PC = %04X, want 9000", c.PC)
	}
	if c.P&FlagI == 0 {
		t.Error("BRK should set I")
	}
	pushed := bus.ram[stackBase+uint16(c.SP)+1]
	if pushed&FlagB == 0 {
		t.Errorf("BRK pushed P=%02X, want B set", pushed)
	}
	// BRK skips its padding byte: the pushed return address is PC+2.
	hi := bus.ram[stackBase+uint16(c.SP)+3]
	lo := bus.ram[stackBase+uint16(c.SP)+2]
	if ret := uint16(hi)<<8 | uint16(lo); ret != 0x8002 {
		t.Errorf("BRK pushed return %04X, want 8002", ret)
	}

	load(bus, 0x9000, 0x40) // RTI
	c.Step()
	if c.PC != 0x8002 {
		t.Errorf("RTI PC = %04X, want 8002", c.PC)
	}
	if c.P&FlagC == 0 {
		t.Error("RTI should restore C from the stack")
	}
}

func TestIRQMaskedByI(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[IRQVector] = 0x00
	bus.ram[IRQVector+1] = 0x90
	load(bus, 0x8000, 0xEA) // NOP

	c.P |= FlagI
	c.SetIRQ(true)
	c.Step()
	if c.PC != 0x8001 {
		t.Errorf("masked IRQ should not be taken: PC=%04X", c.PC)
	}

	// Clearing I lets the level-triggered line through at the next boundary.
	c.P &^= FlagI
	if got := c.Step(); got != interruptCycles {
		t.Errorf("IRQ service = %d cycles, want %d", got, interruptCycles)
	}
	if c.PC != 0x9000 {
		t.Errorf("IRQ PC = %04X, want 9000", c.PC)
	}
	pushed := bus.ram[stackBase+uint16(c.SP)+1]
	if pushed&FlagB != 0 {
		t.Errorf("IRQ pushed P=%02X, want B clear", pushed)
	}
}

func TestNMIBeatsIRQ(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[NMIVector] = 0x00
	bus.ram[NMIVector+1] = 0xA0
	bus.ram[IRQVector] = 0x00
	bus.ram[IRQVector+1] = 0x90

	c.P &^= FlagI
	c.SetIRQ(true)
	c.SetNMI(true)
	c.Step()
	if c.PC != 0xA000 {
		t.Errorf("NMI should win over IRQ: PC=%04X", c.PC)
	}
	// The IRQ line is still asserted and fires next.
	c.P &^= FlagI
	c.Step()
	if c.PC != 0x9000 {
		t.Errorf("pending IRQ should fire after NMI: PC=%04X", c.PC)
	}
}

func TestNMIEdgeTriggered(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[NMIVector] = 0x00
	bus.ram[NMIVector+1] = 0xA0
	load(bus, 0x8000, 0xEA, 0xEA) // NOP NOP

	c.SetNMI(true)
	c.Step()
	if c.PC != 0xA000 {
		t.Fatalf("NMI not taken: PC=%04X", c.PC)
	}

	// Holding the line high does not retrigger.
	c.PC = 0x8000
	c.SetNMI(true)
	c.Step()
	if c.PC != 0x8001 {
		t.Errorf("level-held NMI retriggered: PC=%04X", c.PC)
	}

	// A fresh rising edge does.
	c.SetNMI(false)
	c.SetNMI(true)
	c.Step()
	if c.PC != 0xA000 {
		t.Errorf("rising edge NMI not taken: PC=%04X", c.PC)
	}
}

func TestJamHalts(t *testing.T) {
	c, bus := setupCPU(t)

	load(bus, 0x8000, 0x02)
	c.Step()
	if !c.Halted() {
		t.Fatal("JAM did not halt the processor")
	}
	if c.PC != 0x8000 {
		t.Errorf("JAM PC = %04X, want 8000", c.PC)
	}

	// A halted core ignores steps and interrupts.
	c.SetNMI(true)
	if got := c.Step(); got != 0 {
		t.Errorf("halted Step = %d cycles, want 0", got)
	}
	if c.PC != 0x8000 {
		t.Errorf("halted core moved: PC=%04X", c.PC)
	}

	// Only Reset recovers.
	bus.ram[ResetVector] = 0x00
	bus.ram[ResetVector+1] = 0xC0
	c.Reset()
	if c.Halted() {
		t.Error("Reset did not clear the halt")
	}
	if c.PC != 0xC000 {
		t.Errorf("Reset PC = %04X, want C000", c.PC)
	}
}

func TestReset(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[ResetVector] = 0x34
	bus.ram[ResetVector+1] = 0x12
	c.A, c.X, c.Y, c.SP, c.P = 1, 2, 3, 0x80, 0xFF
	c.Reset()
	if c.PC != 0x1234 {
		t.Errorf("Reset PC = %04X, want 1234", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("Reset SP = %02X, want FD", c.SP)
	}
	if c.P != FlagI|FlagU {
		t.Errorf("Reset P = %02X, want %02X", c.P, FlagI|FlagU)
	}
	if c.A != 0 || c.X != 0 || c.Y != 0 {
		t.Error("Reset should clear the registers")
	}
}

func TestIllegalLAXAndSAX(t *testing.T) {
	c, bus := setupCPU(t)

	bus.ram[0x0010] = 0x5A
	load(bus, 0x8000, 0xA7, 0x10) // LAX $10
	c.Step()
	if c.A != 0x5A || c.X != 0x5A {
		t.Errorf("LAX A=%02X X=%02X, want 5A 5A", c.A, c.X)
	}

	c.A, c.X = 0xF0, 0x3C
	load(bus, 0x8002, 0x87, 0x20) // SAX $20
	c.Step()
	if bus.ram[0x0020] != 0x30 {
		t.Errorf("SAX wrote %02X, want 30", bus.ram[0x0020])
	}
	if c.A != 0xF0 || c.X != 0x3C {
		t.Error("SAX must not change A or X")
	}
}

func TestIllegalDCPAndISB(t *testing.T) {
	c, bus := setupCPU(t)

	c.A = 0x40
	bus.ram[0x0010] = 0x41
	load(bus, 0x8000, 0xC7, 0x10) // DCP $10
	c.Step()
	if bus.ram[0x0010] != 0x40 {
		t.Errorf("DCP memory = %02X, want 40", bus.ram[0x0010])
	}
	if c.P&FlagZ == 0 || c.P&FlagC == 0 {
		t.Errorf("DCP compare flags wrong: P=%02X", c.P)
	}

	c.A = 0x10
	c.P |= FlagC
	bus.ram[0x0011] = 0x01
	load(bus, 0x8002, 0xE7, 0x11) // ISB $11
	c.Step()
	if bus.ram[0x0011] != 0x02 {
		t.Errorf("ISB memory = %02X, want 02", bus.ram[0x0011])
	}
	if c.A != 0x0E {
		t.Errorf("ISB A = %02X, want 0E", c.A)
	}
}

func TestIllegalARR(t *testing.T) {
	c, bus := setupCPU(t)

	// A=0xFF & 0xFF = 0xFF, rotate right with C=1: 0xFF. C=bit6=1,
	// V=bit6^bit5=0.
	c.A = 0xFF
	c.P |= FlagC
	load(bus, 0x8000, 0x6B, 0xFF) // ARR #$FF
	c.Step()
	if c.A != 0xFF {
		t.Errorf("ARR A = %02X, want FF", c.A)
	}
	if c.P&FlagC == 0 {
		t.Error("ARR should copy bit 6 into C")
	}
	if c.P&FlagV != 0 {
		t.Error("ARR V should be bit6 xor bit5")
	}

	// A=0x80 & 0x80, C=0: result 0x40. C=bit6=1, V=bit6^bit5=1.
	c.A = 0x80
	c.P &^= FlagC
	load(bus, 0x8002, 0x6B, 0x80)
	c.Step()
	if c.A != 0x40 {
		t.Errorf("ARR A = %02X, want 40", c.A)
	}
	if c.P&FlagC == 0 || c.P&FlagV == 0 {
		t.Errorf("ARR flags wrong: P=%02X", c.P)
	}
}

func TestIllegalAXS(t *testing.T) {
	c, bus := setupCPU(t)

	c.A, c.X = 0xF0, 0x3F
	load(bus, 0x8000, 0xCB, 0x10) // AXS #$10: X = (A&X) - imm
	c.Step()
	if c.X != 0x20 {
		t.Errorf("AXS X = %02X, want 20", c.X)
	}
	if c.P&FlagC == 0 {
		t.Error("AXS should set C when no borrow occurs")
	}
}

func TestIllegalLXAMagic(t *testing.T) {
	c, bus := setupCPU(t)

	c.A = 0xFF
	load(bus, 0x8000, 0xAB, 0x55) // LXA #$55
	c.Step()
	// (A | magic) & imm with magic 0xEE.
	want := (byte(0xFF) | 0xEE) & 0x55
	if c.A != want || c.X != want {
		t.Errorf("LXA A=%02X X=%02X, want %02X", c.A, c.X, want)
	}
}

func TestIllegalSHXCorruption(t *testing.T) {
	c, bus := setupCPU(t)

	// No crossing: value is X & (high(base)+1), stored at base+Y.
	c.X = 0xFF
	c.Y = 0x01
	load(bus, 0x8000, 0x9E, 0x10, 0x30) // SHX $3010,Y
	c.Step()
	if bus.ram[0x3011] != 0x31 {
		t.Errorf("SHX wrote %02X, want 31", bus.ram[0x3011])
	}

	// Crossing: high byte of the target is replaced by the stored value.
	c.PC = 0x8003
	c.X = 0x12
	c.Y = 0xFF
	load(bus, 0x8003, 0x9E, 0x10, 0x30) // SHX $3010,Y -> $310F crossed
	c.Step()
	// value = X & (high(base)+1) = 0x12 & 0x31 = 0x10, address becomes $100F.
	if bus.ram[0x100F] != 0x10 {
		t.Errorf("SHX crossed wrote %02X at corrupted address, want 10", bus.ram[0x100F])
	}
}

func TestStateRoundTrip(t *testing.T) {
	c, bus := setupCPU(t)

	load(bus, 0x8000, 0xA9, 0x42) // LDA #$42
	c.Step()
	c.SetIRQ(true)
	saved := c.SaveState()

	c2 := New()
	c2.ConnectBus(bus)
	c2.LoadState(saved)
	if c2.A != 0x42 || c2.PC != 0x8002 || c2.Cycles != c.Cycles {
		t.Errorf("restored state mismatch: A=%02X PC=%04X", c2.A, c2.PC)
	}
	if !c2.irqLine {
		t.Error("restored state lost the IRQ line")
	}
}

func TestOpcodeTableComplete(t *testing.T) {
	for op := 0; op < 256; op++ {
		def := &optable[op]
		if def.exec == nil {
			t.Errorf("opcode %02X has no executor", op)
		}
		if def.name == "" {
			t.Errorf("opcode %02X has no name", op)
		}
		if def.cycles == 0 {
			t.Errorf("opcode %02X has zero base cycles", op)
		}
	}
}
