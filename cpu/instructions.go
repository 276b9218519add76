package cpu

// Executors for the documented instruction set. Each takes the resolved
// operand address and the page-crossed flag from the addressing stage and
// returns any extra cycles beyond the opcode's base cost (branches only).
// Flags outside an instruction's documented set are never touched.

// --- Load / store ---

func (c *CPU) lda(addr uint16, _ bool) int {
	c.A = c.bus.Read(addr)
	c.setZN(c.A)
	return 0
}

func (c *CPU) ldx(addr uint16, _ bool) int {
	c.X = c.bus.Read(addr)
	c.setZN(c.X)
	return 0
}

func (c *CPU) ldy(addr uint16, _ bool) int {
	c.Y = c.bus.Read(addr)
	c.setZN(c.Y)
	return 0
}

func (c *CPU) sta(addr uint16, _ bool) int {
	c.bus.Write(addr, c.A)
	return 0
}

func (c *CPU) stx(addr uint16, _ bool) int {
	c.bus.Write(addr, c.X)
	return 0
}

func (c *CPU) sty(addr uint16, _ bool) int {
	c.bus.Write(addr, c.Y)
	return 0
}

// --- Register transfers ---

func (c *CPU) tax(_ uint16, _ bool) int {
	c.X = c.A
	c.setZN(c.X)
	return 0
}

func (c *CPU) tay(_ uint16, _ bool) int {
	c.Y = c.A
	c.setZN(c.Y)
	return 0
}

func (c *CPU) txa(_ uint16, _ bool) int {
	c.A = c.X
	c.setZN(c.A)
	return 0
}

func (c *CPU) tya(_ uint16, _ bool) int {
	c.A = c.Y
	c.setZN(c.A)
	return 0
}

func (c *CPU) tsx(_ uint16, _ bool) int {
	c.X = c.SP
	c.setZN(c.X)
	return 0
}

// TXS is the one transfer that sets no flags.
func (c *CPU) txs(_ uint16, _ bool) int {
	c.SP = c.X
	return 0
}

// --- Stack ---

func (c *CPU) pha(_ uint16, _ bool) int {
	c.push(c.A)
	return 0
}

// PHP pushes the status byte with Break and bit 5 set, like BRK does.
func (c *CPU) php(_ uint16, _ bool) int {
	c.push(c.P | FlagB | FlagU)
	return 0
}

func (c *CPU) pla(_ uint16, _ bool) int {
	c.A = c.pull()
	c.setZN(c.A)
	return 0
}

// PLP loads NV-DIZC from the pulled byte; the register's own bits 4 and 5
// are kept, since the hardware has no storage behind them.
func (c *CPU) plp(_ uint16, _ bool) int {
	c.P = c.pull()&^(FlagB|FlagU) | c.P&(FlagB|FlagU)
	return 0
}

// --- Arithmetic ---

// addWithCarry is the shared core of ADC, SBC and the illegal RRA/ISB ops.
// Decimal mode is inert on this hardware, so there is no BCD path.
func (c *CPU) addWithCarry(value byte) {
	carry := uint16(0)
	if c.P&FlagC != 0 {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry

	result := byte(sum)
	// Signed overflow: both operands share a sign that differs from the result's.
	c.setFlag(FlagV, (c.A^result)&(value^result)&0x80 != 0)
	c.setFlag(FlagC, sum > 0xFF)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(addr uint16, _ bool) int {
	c.addWithCarry(c.bus.Read(addr))
	return 0
}

// SBC is ADC of the operand's complement.
func (c *CPU) sbc(addr uint16, _ bool) int {
	c.addWithCarry(^c.bus.Read(addr))
	return 0
}

func (c *CPU) compare(reg, value byte) {
	c.setFlag(FlagC, reg >= value)
	c.setZN(reg - value)
}

func (c *CPU) cmp(addr uint16, _ bool) int {
	c.compare(c.A, c.bus.Read(addr))
	return 0
}

func (c *CPU) cpx(addr uint16, _ bool) int {
	c.compare(c.X, c.bus.Read(addr))
	return 0
}

func (c *CPU) cpy(addr uint16, _ bool) int {
	c.compare(c.Y, c.bus.Read(addr))
	return 0
}

// --- Logical ---

func (c *CPU) and(addr uint16, _ bool) int {
	c.A &= c.bus.Read(addr)
	c.setZN(c.A)
	return 0
}

func (c *CPU) ora(addr uint16, _ bool) int {
	c.A |= c.bus.Read(addr)
	c.setZN(c.A)
	return 0
}

func (c *CPU) eor(addr uint16, _ bool) int {
	c.A ^= c.bus.Read(addr)
	c.setZN(c.A)
	return 0
}

// BIT copies operand bits 7 and 6 into N and V; Z reflects A AND operand.
func (c *CPU) bit(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.setFlag(FlagN, v&0x80 != 0)
	c.setFlag(FlagV, v&0x40 != 0)
	c.setFlag(FlagZ, c.A&v == 0)
	return 0
}

// --- Shifts and rotates ---

func (c *CPU) aslAcc(_ uint16, _ bool) int {
	c.setFlag(FlagC, c.A&0x80 != 0)
	c.A <<= 1
	c.setZN(c.A)
	return 0
}

func (c *CPU) asl(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.setFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) lsrAcc(_ uint16, _ bool) int {
	c.setFlag(FlagC, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
	return 0
}

func (c *CPU) lsr(addr uint16, _ bool) int {
	v := c.bus.Read(addr)
	c.setFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) rolAcc(_ uint16, _ bool) int {
	c.A = c.rolValue(c.A)
	return 0
}

func (c *CPU) rol(addr uint16, _ bool) int {
	v := c.rolValue(c.bus.Read(addr))
	c.bus.Write(addr, v)
	return 0
}

func (c *CPU) rolValue(v byte) byte {
	carryIn := c.P & FlagC
	c.setFlag(FlagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) rorAcc(_ uint16, _ bool) int {
	c.A = c.rorValue(c.A)
	return 0
}

func (c *CPU) ror(addr uint16, _ bool) int {
	v := c.rorValue(c.bus.Read(addr))
	c.bus.Write(addr, v)
	return 0
}

func (c *CPU) rorValue(v byte) byte {
	carryIn := (c.P & FlagC) << 7
	c.setFlag(FlagC, v&0x01 != 0)
	v = v>>1 | carryIn
	c.setZN(v)
	return v
}

// --- Increments and decrements ---

func (c *CPU) inc(addr uint16, _ bool) int {
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) dec(addr uint16, _ bool) int {
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) inx(_ uint16, _ bool) int {
	c.X++
	c.setZN(c.X)
	return 0
}

func (c *CPU) dex(_ uint16, _ bool) int {
	c.X--
	c.setZN(c.X)
	return 0
}

func (c *CPU) iny(_ uint16, _ bool) int {
	c.Y++
	c.setZN(c.Y)
	return 0
}

func (c *CPU) dey(_ uint16, _ bool) int {
	c.Y--
	c.setZN(c.Y)
	return 0
}

// --- Jumps and calls ---

func (c *CPU) jmp(addr uint16, _ bool) int {
	c.PC = addr
	return 0
}

// JSR pushes the address of its own last byte; RTS adds one back.
func (c *CPU) jsr(addr uint16, _ bool) int {
	c.push16(c.PC - 1)
	c.PC = addr
	return 0
}

func (c *CPU) rts(_ uint16, _ bool) int {
	c.PC = c.pull16() + 1
	return 0
}

func (c *CPU) rti(_ uint16, _ bool) int {
	c.P = c.pull()&^(FlagB|FlagU) | c.P&(FlagB|FlagU)
	c.PC = c.pull16()
	return 0
}

// --- Branches ---

// branch redirects PC when taken: one extra cycle, two if the target sits on
// a different page than the next instruction.
func (c *CPU) branch(target uint16, crossed bool, taken bool) int {
	if !taken {
		return 0
	}
	c.PC = target
	if crossed {
		return 2
	}
	return 1
}

func (c *CPU) bcc(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagC == 0)
}

func (c *CPU) bcs(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagC != 0)
}

func (c *CPU) bne(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagZ == 0)
}

func (c *CPU) beq(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagZ != 0)
}

func (c *CPU) bpl(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagN == 0)
}

func (c *CPU) bmi(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagN != 0)
}

func (c *CPU) bvc(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagV == 0)
}

func (c *CPU) bvs(addr uint16, crossed bool) int {
	return c.branch(addr, crossed, c.P&FlagV != 0)
}

// --- Flag changes ---

func (c *CPU) clc(_ uint16, _ bool) int { c.P &^= FlagC; return 0 }
func (c *CPU) sec(_ uint16, _ bool) int { c.P |= FlagC; return 0 }
func (c *CPU) cli(_ uint16, _ bool) int { c.P &^= FlagI; return 0 }
func (c *CPU) sei(_ uint16, _ bool) int { c.P |= FlagI; return 0 }
func (c *CPU) clv(_ uint16, _ bool) int { c.P &^= FlagV; return 0 }
func (c *CPU) cld(_ uint16, _ bool) int { c.P &^= FlagD; return 0 }
func (c *CPU) sed(_ uint16, _ bool) int { c.P |= FlagD; return 0 }

// --- System ---

// BRK pushes the address two past the opcode (the byte after BRK is padding),
// then the status with Break set, disables interrupts and takes the IRQ/BRK
// vector. Hardware IRQ/NMI run the same sequence with Break clear.
func (c *CPU) brk(_ uint16, _ bool) int {
	c.push16(c.PC + 1)
	c.push(c.P | FlagB | FlagU)
	c.P |= FlagI
	c.PC = c.read16(IRQVector)
	return 0
}

func (c *CPU) nop(_ uint16, _ bool) int {
	return 0
}

// jam models the halt opcodes: PC stays on the offending opcode and the
// processor refuses further work until Reset.
func (c *CPU) jam(_ uint16, _ bool) int {
	c.PC--
	c.halted = true
	return 0
}
