package cpu

// Bus defines the interface for the CPU to interact with the bus.
// Mapping addresses to RAM, ROM or I/O is the host's job; the core only
// issues byte reads and writes.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// Status flag bits of the P register.
const (
	FlagC byte = 1 << 0 // Carry
	FlagZ byte = 1 << 1 // Zero
	FlagI byte = 1 << 2 // Interrupt disable
	FlagD byte = 1 << 3 // Decimal (settable but inert on this hardware)
	FlagB byte = 1 << 4 // Break (meaningful only in pushed copies)
	FlagU byte = 1 << 5 // Unused, reads as 1
	FlagV byte = 1 << 6 // Overflow
	FlagN byte = 1 << 7 // Negative
)

// Interrupt vectors and the stack page.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE

	stackBase uint16 = 0x0100
)

// Every interrupt entry sequence (reset, NMI, IRQ, BRK) costs seven cycles.
const interruptCycles = 7

// CPU represents the 6502 CPU.
type CPU struct {
	// Program Counter
	PC uint16

	// Stack Pointer
	SP byte

	// Accumulator
	A byte

	// Index Register X
	X byte

	// Index Register Y
	Y byte

	// Processor Status
	P byte

	// Cycles counts every cycle consumed since construction or reset.
	Cycles uint64

	bus Bus

	halted     bool
	nmiLine    bool
	nmiPending bool
	irqLine    bool
}

// New creates a new CPU instance.
func New() *CPU {
	return &CPU{SP: 0xFD, P: FlagI | FlagU}
}

// ConnectBus connects the CPU to the bus.
func (c *CPU) ConnectBus(bus Bus) {
	c.bus = bus
}

// Reset puts the CPU through the reset sequence: interrupts disabled, PC
// loaded from the reset vector, and a halted processor brought back to life.
// The real chip decrements SP three times without writing; we model the net
// effect by setting SP to 0xFD.
func (c *CPU) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = FlagI | FlagU
	c.PC = c.read16(ResetVector)

	c.halted = false
	c.nmiPending = false

	c.Cycles += interruptCycles
}

// Step executes exactly one instruction, or services one pending interrupt
// instead of fetching, and returns the cycles consumed. A halted CPU consumes
// nothing until Reset. Effects on registers and memory are fully applied
// before Step returns.
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(NMIVector)
		return interruptCycles
	}
	if c.irqLine && c.P&FlagI == 0 {
		c.serviceInterrupt(IRQVector)
		return interruptCycles
	}

	opcode := c.bus.Read(c.PC)
	def := &optable[opcode]

	addr, crossed := c.resolve(def.mode)
	cycles := int(def.cycles) + def.exec(c, addr, crossed)
	if crossed && def.pageCycle {
		cycles++
	}

	c.Cycles += uint64(cycles)
	return cycles
}

// Halted reports whether a JAM opcode stopped the processor. Only Reset
// clears the condition.
func (c *CPU) Halted() bool {
	return c.halted
}

// SetNMI drives the NMI line. The line is edge-triggered: each rising edge
// latches exactly one pending NMI, serviced at the next instruction boundary.
func (c *CPU) SetNMI(asserted bool) {
	if asserted && !c.nmiLine {
		c.nmiPending = true
	}
	c.nmiLine = asserted
}

// SetIRQ drives the IRQ line. The line is level-triggered: while asserted and
// the interrupt-disable flag is clear, an IRQ is serviced at every boundary.
func (c *CPU) SetIRQ(asserted bool) {
	c.irqLine = asserted
}

// Status returns the status register byte. Bit 5 always reads as 1.
func (c *CPU) Status() byte {
	return c.P | FlagU
}

// SetStatus writes the status register. Bit 5 is forced to 1; every other
// bit, including Break, is stored as given.
func (c *CPU) SetStatus(v byte) {
	c.P = v | FlagU
}

// serviceInterrupt performs the hardware interrupt entry: PC and status are
// pushed (Break clear, since no BRK instruction was executed), interrupts are
// disabled, and control transfers through the vector.
func (c *CPU) serviceInterrupt(vector uint16) {
	c.push16(c.PC)
	c.push((c.P &^ FlagB) | FlagU)
	c.P |= FlagI
	c.PC = c.read16(vector)
	c.Cycles += interruptCycles
}

func (c *CPU) setFlag(flag byte, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// setZN updates the Zero and Negative flags from a result byte.
func (c *CPU) setZN(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

// push writes a byte at the stack pointer and decrements it. The pointer
// wraps within the stack page; the hardware has no overflow detection.
func (c *CPU) push(v byte) {
	c.bus.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

// pull increments the stack pointer and reads the byte there.
func (c *CPU) pull() byte {
	c.SP++
	return c.bus.Read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) pull16() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// read16 reads a little-endian word.
func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hi := uint16(c.bus.Read(addr + 1))
	return hi<<8 | lo
}
