package cpu

// AddrMode identifies how an instruction locates its operand.
type AddrMode int

const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // (zp,X)
	IndirectY // (zp),Y
)

// resolve computes the effective operand address for the given mode, starting
// from the opcode byte at PC, and advances PC past the whole instruction.
// For Relative the returned address is the branch target. The bool reports
// whether the indexed access (or branch target) crossed a page boundary,
// which certain opcodes pay an extra cycle for.
func (c *CPU) resolve(mode AddrMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		c.PC++
		return 0, false

	case Immediate:
		addr := c.PC + 1
		c.PC += 2
		return addr, false

	case ZeroPage:
		addr := uint16(c.bus.Read(c.PC + 1))
		c.PC += 2
		return addr, false

	case ZeroPageX:
		// Indexing wraps within page zero.
		addr := uint16(c.bus.Read(c.PC+1) + c.X)
		c.PC += 2
		return addr, false

	case ZeroPageY:
		addr := uint16(c.bus.Read(c.PC+1) + c.Y)
		c.PC += 2
		return addr, false

	case Relative:
		offset := int8(c.bus.Read(c.PC + 1))
		c.PC += 2
		target := uint16(int32(c.PC) + int32(offset))
		return target, !samePage(c.PC, target)

	case Absolute:
		addr := c.read16(c.PC + 1)
		c.PC += 3
		return addr, false

	case AbsoluteX:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.X)
		c.PC += 3
		return addr, !samePage(base, addr)

	case AbsoluteY:
		base := c.read16(c.PC + 1)
		addr := base + uint16(c.Y)
		c.PC += 3
		return addr, !samePage(base, addr)

	case Indirect:
		ptr := c.read16(c.PC + 1)
		c.PC += 3
		return c.read16Bug(ptr), false

	case IndirectX:
		zp := c.bus.Read(c.PC+1) + c.X
		c.PC += 2
		return c.read16ZeroPage(zp), false

	case IndirectY:
		zp := c.bus.Read(c.PC + 1)
		base := c.read16ZeroPage(zp)
		addr := base + uint16(c.Y)
		c.PC += 2
		return addr, !samePage(base, addr)
	}
	return 0, false
}

// read16Bug reads a word reproducing the indirect-jump defect: a pointer whose
// low byte is 0xFF fetches its high byte from the start of the same page.
func (c *CPU) read16Bug(addr uint16) uint16 {
	lo := uint16(c.bus.Read(addr))
	hiAddr := addr&0xFF00 | uint16(byte(addr)+1)
	hi := uint16(c.bus.Read(hiAddr))
	return hi<<8 | lo
}

// read16ZeroPage reads a word from page zero, wrapping within the page.
func (c *CPU) read16ZeroPage(zp byte) uint16 {
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

// samePage reports whether two addresses share a 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}
