package cpu

// Executors for the undocumented opcodes. The stable ones combine two
// documented operations on the same operand; real software depends on them,
// so none may degrade to a plain NOP. The unstable ones follow the
// visual6502-documented model with magic constant 0xEE, which is what the
// behavioral trace corpus was generated against.

// xaaMagic is the constant the accumulator floats toward in the two unstable
// immediate ops (ANE 0x8B, LXA 0xAB).
const xaaMagic = 0xEE

// LAX loads A and X with the same byte.
func (c *CPU) lax(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
	return 0
}

// SAX stores A AND X. No flags change.
func (c *CPU) sax(addr uint16, _ bool) int {
	c.bus.Write(addr, c.A&c.X)
	return 0
}

// DCP decrements memory, then compares A against the result.
func (c *CPU) dcp(addr uint16, _ bool) int {
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.compare(c.A, v)
	return 0
}

// ISB increments memory, then subtracts the result from A.
func (c *CPU) isb(addr uint16, _ bool) int {
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.addWithCarry(^v)
	return 0
}

// SLO shifts memory left, then ORs the result into A.
func (c *CPU) slo(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.setFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.bus.Write(addr, v)
	c.A |= v
	c.setZN(c.A)
	return 0
}

// RLA rotates memory left, then ANDs the result into A.
func (c *CPU) rla(addr uint16, _ bool) int {
	v := c.rolValue(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.A &= v
	c.setZN(c.A)
	return 0
}

// SRE shifts memory right, then XORs the result into A.
func (c *CPU) sre(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.setFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.bus.Write(addr, v)
	c.A ^= v
	c.setZN(c.A)
	return 0
}

// RRA rotates memory right, then adds the result to A with carry.
func (c *CPU) rra(addr uint16, _ bool) int {
	v := c.rorValue(c.bus.Read(addr))
	c.bus.Write(addr, v)
	c.addWithCarry(v)
	return 0
}

// ANC is AND immediate with Carry mirroring the Negative result.
func (c *CPU) anc(addr uint16, _ bool) int {
	c.A &= c.bus.Read(addr)
	c.setZN(c.A)
	c.setFlag(FlagC, c.A&0x80 != 0)
	return 0
}

// ALR is AND immediate followed by LSR A.
func (c *CPU) alr(addr uint16, _ bool) int {
	c.A &= c.bus.Read(addr)
	c.setFlag(FlagC, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
	return 0
}

// ARR is AND immediate followed by ROR A, with Carry taken from result bit 6
// and Overflow from bit 6 XOR bit 5.
func (c *CPU) arr(addr uint16, _ bool) int {
	v := c.A & c.bus.Read(addr)
	v >>= 1
	if c.P&FlagC != 0 {
		v |= 0x80
	}
	c.A = v
	c.setZN(v)
	c.setFlag(FlagC, v&0x40 != 0)
	c.setFlag(FlagV, (v>>6)&1 != (v>>5)&1)
	return 0
}

// AXS sets X to (A AND X) minus the immediate, with CMP-style carry.
func (c *CPU) axs(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	t := c.A & c.X
	c.setFlag(FlagC, t >= v)
	c.X = t - v
	c.setZN(c.X)
	return 0
}

// LAS loads A, X and SP with memory AND SP.
func (c *CPU) las(addr uint16, _ bool) int {
	v := c.bus.Read(addr) & c.SP
	c.A = v
	c.X = v
	c.SP = v
	c.setZN(v)
	return 0
}

// XAA (ANE) sets A to (A OR magic) AND X AND the immediate.
func (c *CPU) xaa(addr uint16, _ bool) int {
	c.A = (c.A | xaaMagic) & c.X & c.bus.Read(addr)
	c.setZN(c.A)
	return 0
}

// LXA sets A and X to (A OR magic) AND the immediate.
func (c *CPU) lxa(addr uint16, _ bool) int {
	v := (c.A | xaaMagic) & c.bus.Read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
	return 0
}

// shStore implements the SHA/SHX/SHY family: the stored value is the source
// ANDed with the base address high byte plus one, and on a page cross that
// value replaces the high byte of the target address.
func (c *CPU) shStore(addr uint16, crossed bool, src byte) {
	h := byte(addr >> 8)
	if !crossed {
		h++
	}
	v := src & h
	if crossed {
		addr = uint16(v)<<8 | addr&0x00FF
	}
	c.bus.Write(addr, v)
}

func (c *CPU) sha(addr uint16, crossed bool) int {
	c.shStore(addr, crossed, c.A&c.X)
	return 0
}

func (c *CPU) shx(addr uint16, crossed bool) int {
	c.shStore(addr, crossed, c.X)
	return 0
}

func (c *CPU) shy(addr uint16, crossed bool) int {
	c.shStore(addr, crossed, c.Y)
	return 0
}

// TAS copies A AND X into SP, then stores like SHA.
func (c *CPU) tas(addr uint16, crossed bool) int {
	c.SP = c.A & c.X
	c.shStore(addr, crossed, c.SP)
	return 0
}
