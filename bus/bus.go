package bus

import (
	"sync"

	"nes6502/cpu"
)

// Bus wires the CPU to the console memory map: 2KiB of internal RAM
// mirrored across $0000-$1FFF, and a flat backing array for everything
// above it so programs and vectors can live anywhere in the 64KiB space.
type Bus struct {
	CPU *cpu.CPU

	ram [2048]byte
	ext [0x10000 - 0x2000]byte

	// SystemClocks counts CPU cycles consumed since power-on or the
	// last snapshot restore.
	SystemClocks uint64

	mu      sync.Mutex
	paused  bool
	stepReq bool
}

// New creates a Bus with a fresh CPU attached.
func New() *Bus {
	b := &Bus{CPU: cpu.New()}
	b.CPU.ConnectBus(b)
	return b
}

// Read reads a byte from the bus.
func (b *Bus) Read(addr uint16) byte {
	if addr <= 0x1FFF {
		return b.ram[addr&0x07FF]
	}
	return b.ext[addr-0x2000]
}

// Write writes a byte to the bus.
func (b *Bus) Write(addr uint16, data byte) {
	if addr <= 0x1FFF {
		b.ram[addr&0x07FF] = data
		return
	}
	b.ext[addr-0x2000] = data
}

// Load copies a program image into the bus starting at addr.
func (b *Bus) Load(addr uint16, data []byte) {
	for i, v := range data {
		b.Write(addr+uint16(i), v)
	}
}

// Reset performs a hardware reset. Memory contents are preserved.
func (b *Bus) Reset() {
	b.CPU.Reset()
	b.SystemClocks += 7
}

// Clock advances the machine by one CPU instruction and returns the
// cycles it consumed. While paused it does nothing unless a single step
// was requested.
func (b *Bus) Clock() int {
	b.mu.Lock()
	if b.paused && !b.stepReq {
		b.mu.Unlock()
		return 0
	}
	b.stepReq = false
	b.mu.Unlock()

	n := b.CPU.Step()
	b.SystemClocks += uint64(n)
	return n
}

// SetPaused suspends or resumes the clock.
func (b *Bus) SetPaused(paused bool) {
	b.mu.Lock()
	b.paused = paused
	b.mu.Unlock()
}

// Paused reports whether the clock is suspended.
func (b *Bus) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

// RequestStep arms a single instruction step while paused.
func (b *Bus) RequestStep() {
	b.mu.Lock()
	b.stepReq = true
	b.mu.Unlock()
}

// GetCPUState returns the CPU register values.
func (b *Bus) GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles uint64, halted bool) {
	c := b.CPU
	return c.A, c.X, c.Y, c.SP, c.Status(), c.PC, c.Cycles, c.Halted()
}

// SetCPUState overwrites the CPU register values.
func (b *Bus) SetCPUState(a, x, y, sp, p byte, pc uint16) {
	c := b.CPU
	c.A, c.X, c.Y, c.SP, c.PC = a, x, y, sp, pc
	c.SetStatus(p)
}

// SetInterrupt drives one of the interrupt lines. nmi selects the NMI
// line, otherwise the IRQ line is driven.
func (b *Bus) SetInterrupt(nmi, asserted bool) {
	if nmi {
		b.CPU.SetNMI(asserted)
		return
	}
	b.CPU.SetIRQ(asserted)
}

// GetMemoryBlock copies size bytes starting at addr. The read wraps at
// the top of the address space.
func (b *Bus) GetMemoryBlock(addr uint16, size int) []byte {
	block := make([]byte, size)
	for i := range block {
		block[i] = b.Read(addr + uint16(i))
	}
	return block
}
