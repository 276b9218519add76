package cpu

// execFunc applies one operation to the resolved operand and returns extra
// cycles beyond the opcode's base cost.
type execFunc func(c *CPU, addr uint16, crossed bool) int

// opdef is one row of the dispatch table: operation, addressing mode, base
// cycle cost, and whether a crossed page boundary adds a cycle. Stores and
// read-modify-write opcodes carry the indexing penalty in their base cost.
type opdef struct {
	name      string
	mode      AddrMode
	cycles    byte
	pageCycle bool
	exec      execFunc
}

// optable maps every opcode byte to its behavior. All 256 entries are
// populated; the undocumented ones reproduce the hardware behavior rather
// than falling back to NOP. JAM entries stop the processor.
var optable = [256]opdef{
	// 0x00
	0x00: {"BRK", Implied, 7, false, (*CPU).brk},
	0x01: {"ORA", IndirectX, 6, false, (*CPU).ora},
	0x02: {"JAM", Implied, 2, false, (*CPU).jam},
	0x03: {"SLO", IndirectX, 8, false, (*CPU).slo},
	0x04: {"NOP", ZeroPage, 3, false, (*CPU).nop},
	0x05: {"ORA", ZeroPage, 3, false, (*CPU).ora},
	0x06: {"ASL", ZeroPage, 5, false, (*CPU).asl},
	0x07: {"SLO", ZeroPage, 5, false, (*CPU).slo},
	0x08: {"PHP", Implied, 3, false, (*CPU).php},
	0x09: {"ORA", Immediate, 2, false, (*CPU).ora},
	0x0A: {"ASL", Accumulator, 2, false, (*CPU).aslAcc},
	0x0B: {"ANC", Immediate, 2, false, (*CPU).anc},
	0x0C: {"NOP", Absolute, 4, false, (*CPU).nop},
	0x0D: {"ORA", Absolute, 4, false, (*CPU).ora},
	0x0E: {"ASL", Absolute, 6, false, (*CPU).asl},
	0x0F: {"SLO", Absolute, 6, false, (*CPU).slo},
	// 0x10
	0x10: {"BPL", Relative, 2, false, (*CPU).bpl},
	0x11: {"ORA", IndirectY, 5, true, (*CPU).ora},
	0x12: {"JAM", Implied, 2, false, (*CPU).jam},
	0x13: {"SLO", IndirectY, 8, false, (*CPU).slo},
	0x14: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0x15: {"ORA", ZeroPageX, 4, false, (*CPU).ora},
	0x16: {"ASL", ZeroPageX, 6, false, (*CPU).asl},
	0x17: {"SLO", ZeroPageX, 6, false, (*CPU).slo},
	0x18: {"CLC", Implied, 2, false, (*CPU).clc},
	0x19: {"ORA", AbsoluteY, 4, true, (*CPU).ora},
	0x1A: {"NOP", Implied, 2, false, (*CPU).nop},
	0x1B: {"SLO", AbsoluteY, 7, false, (*CPU).slo},
	0x1C: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0x1D: {"ORA", AbsoluteX, 4, true, (*CPU).ora},
	0x1E: {"ASL", AbsoluteX, 7, false, (*CPU).asl},
	0x1F: {"SLO", AbsoluteX, 7, false, (*CPU).slo},
	// 0x20
	0x20: {"JSR", Absolute, 6, false, (*CPU).jsr},
	0x21: {"AND", IndirectX, 6, false, (*CPU).and},
	0x22: {"JAM", Implied, 2, false, (*CPU).jam},
	0x23: {"RLA", IndirectX, 8, false, (*CPU).rla},
	0x24: {"BIT", ZeroPage, 3, false, (*CPU).bit},
	0x25: {"AND", ZeroPage, 3, false, (*CPU).and},
	0x26: {"ROL", ZeroPage, 5, false, (*CPU).rol},
	0x27: {"RLA", ZeroPage, 5, false, (*CPU).rla},
	0x28: {"PLP", Implied, 4, false, (*CPU).plp},
	0x29: {"AND", Immediate, 2, false, (*CPU).and},
	0x2A: {"ROL", Accumulator, 2, false, (*CPU).rolAcc},
	0x2B: {"ANC", Immediate, 2, false, (*CPU).anc},
	0x2C: {"BIT", Absolute, 4, false, (*CPU).bit},
	0x2D: {"AND", Absolute, 4, false, (*CPU).and},
	0x2E: {"ROL", Absolute, 6, false, (*CPU).rol},
	0x2F: {"RLA", Absolute, 6, false, (*CPU).rla},
	// 0x30
	0x30: {"BMI", Relative, 2, false, (*CPU).bmi},
	0x31: {"AND", IndirectY, 5, true, (*CPU).and},
	0x32: {"JAM", Implied, 2, false, (*CPU).jam},
	0x33: {"RLA", IndirectY, 8, false, (*CPU).rla},
	0x34: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0x35: {"AND", ZeroPageX, 4, false, (*CPU).and},
	0x36: {"ROL", ZeroPageX, 6, false, (*CPU).rol},
	0x37: {"RLA", ZeroPageX, 6, false, (*CPU).rla},
	0x38: {"SEC", Implied, 2, false, (*CPU).sec},
	0x39: {"AND", AbsoluteY, 4, true, (*CPU).and},
	0x3A: {"NOP", Implied, 2, false, (*CPU).nop},
	0x3B: {"RLA", AbsoluteY, 7, false, (*CPU).rla},
	0x3C: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0x3D: {"AND", AbsoluteX, 4, true, (*CPU).and},
	0x3E: {"ROL", AbsoluteX, 7, false, (*CPU).rol},
	0x3F: {"RLA", AbsoluteX, 7, false, (*CPU).rla},
	// 0x40
	0x40: {"RTI", Implied, 6, false, (*CPU).rti},
	0x41: {"EOR", IndirectX, 6, false, (*CPU).eor},
	0x42: {"JAM", Implied, 2, false, (*CPU).jam},
	0x43: {"SRE", IndirectX, 8, false, (*CPU).sre},
	0x44: {"NOP", ZeroPage, 3, false, (*CPU).nop},
	0x45: {"EOR", ZeroPage, 3, false, (*CPU).eor},
	0x46: {"LSR", ZeroPage, 5, false, (*CPU).lsr},
	0x47: {"SRE", ZeroPage, 5, false, (*CPU).sre},
	0x48: {"PHA", Implied, 3, false, (*CPU).pha},
	0x49: {"EOR", Immediate, 2, false, (*CPU).eor},
	0x4A: {"LSR", Accumulator, 2, false, (*CPU).lsrAcc},
	0x4B: {"ALR", Immediate, 2, false, (*CPU).alr},
	0x4C: {"JMP", Absolute, 3, false, (*CPU).jmp},
	0x4D: {"EOR", Absolute, 4, false, (*CPU).eor},
	0x4E: {"LSR", Absolute, 6, false, (*CPU).lsr},
	0x4F: {"SRE", Absolute, 6, false, (*CPU).sre},
	// 0x50
	0x50: {"BVC", Relative, 2, false, (*CPU).bvc},
	0x51: {"EOR", IndirectY, 5, true, (*CPU).eor},
	0x52: {"JAM", Implied, 2, false, (*CPU).jam},
	0x53: {"SRE", IndirectY, 8, false, (*CPU).sre},
	0x54: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0x55: {"EOR", ZeroPageX, 4, false, (*CPU).eor},
	0x56: {"LSR", ZeroPageX, 6, false, (*CPU).lsr},
	0x57: {"SRE", ZeroPageX, 6, false, (*CPU).sre},
	0x58: {"CLI", Implied, 2, false, (*CPU).cli},
	0x59: {"EOR", AbsoluteY, 4, true, (*CPU).eor},
	0x5A: {"NOP", Implied, 2, false, (*CPU).nop},
	0x5B: {"SRE", AbsoluteY, 7, false, (*CPU).sre},
	0x5C: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0x5D: {"EOR", AbsoluteX, 4, true, (*CPU).eor},
	0x5E: {"LSR", AbsoluteX, 7, false, (*CPU).lsr},
	0x5F: {"SRE", AbsoluteX, 7, false, (*CPU).sre},
	// 0x60
	0x60: {"RTS", Implied, 6, false, (*CPU).rts},
	0x61: {"ADC", IndirectX, 6, false, (*CPU).adc},
	0x62: {"JAM", Implied, 2, false, (*CPU).jam},
	0x63: {"RRA", IndirectX, 8, false, (*CPU).rra},
	0x64: {"NOP", ZeroPage, 3, false, (*CPU).nop},
	0x65: {"ADC", ZeroPage, 3, false, (*CPU).adc},
	0x66: {"ROR", ZeroPage, 5, false, (*CPU).ror},
	0x67: {"RRA", ZeroPage, 5, false, (*CPU).rra},
	0x68: {"PLA", Implied, 4, false, (*CPU).pla},
	0x69: {"ADC", Immediate, 2, false, (*CPU).adc},
	0x6A: {"ROR", Accumulator, 2, false, (*CPU).rorAcc},
	0x6B: {"ARR", Immediate, 2, false, (*CPU).arr},
	0x6C: {"JMP", Indirect, 5, false, (*CPU).jmp},
	0x6D: {"ADC", Absolute, 4, false, (*CPU).adc},
	0x6E: {"ROR", Absolute, 6, false, (*CPU).ror},
	0x6F: {"RRA", Absolute, 6, false, (*CPU).rra},
	// 0x70
	0x70: {"BVS", Relative, 2, false, (*CPU).bvs},
	0x71: {"ADC", IndirectY, 5, true, (*CPU).adc},
	0x72: {"JAM", Implied, 2, false, (*CPU).jam},
	0x73: {"RRA", IndirectY, 8, false, (*CPU).rra},
	0x74: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0x75: {"ADC", ZeroPageX, 4, false, (*CPU).adc},
	0x76: {"ROR", ZeroPageX, 6, false, (*CPU).ror},
	0x77: {"RRA", ZeroPageX, 6, false, (*CPU).rra},
	0x78: {"SEI", Implied, 2, false, (*CPU).sei},
	0x79: {"ADC", AbsoluteY, 4, true, (*CPU).adc},
	0x7A: {"NOP", Implied, 2, false, (*CPU).nop},
	0x7B: {"RRA", AbsoluteY, 7, false, (*CPU).rra},
	0x7C: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0x7D: {"ADC", AbsoluteX, 4, true, (*CPU).adc},
	0x7E: {"ROR", AbsoluteX, 7, false, (*CPU).ror},
	0x7F: {"RRA", AbsoluteX, 7, false, (*CPU).rra},
	// 0x80
	0x80: {"NOP", Immediate, 2, false, (*CPU).nop},
	0x81: {"STA", IndirectX, 6, false, (*CPU).sta},
	0x82: {"NOP", Immediate, 2, false, (*CPU).nop},
	0x83: {"SAX", IndirectX, 6, false, (*CPU).sax},
	0x84: {"STY", ZeroPage, 3, false, (*CPU).sty},
	0x85: {"STA", ZeroPage, 3, false, (*CPU).sta},
	0x86: {"STX", ZeroPage, 3, false, (*CPU).stx},
	0x87: {"SAX", ZeroPage, 3, false, (*CPU).sax},
	0x88: {"DEY", Implied, 2, false, (*CPU).dey},
	0x89: {"NOP", Immediate, 2, false, (*CPU).nop},
	0x8A: {"TXA", Implied, 2, false, (*CPU).txa},
	0x8B: {"XAA", Immediate, 2, false, (*CPU).xaa},
	0x8C: {"STY", Absolute, 4, false, (*CPU).sty},
	0x8D: {"STA", Absolute, 4, false, (*CPU).sta},
	0x8E: {"STX", Absolute, 4, false, (*CPU).stx},
	0x8F: {"SAX", Absolute, 4, false, (*CPU).sax},
	// 0x90
	0x90: {"BCC", Relative, 2, false, (*CPU).bcc},
	0x91: {"STA", IndirectY, 6, false, (*CPU).sta},
	0x92: {"JAM", Implied, 2, false, (*CPU).jam},
	0x93: {"SHA", IndirectY, 6, false, (*CPU).sha},
	0x94: {"STY", ZeroPageX, 4, false, (*CPU).sty},
	0x95: {"STA", ZeroPageX, 4, false, (*CPU).sta},
	0x96: {"STX", ZeroPageY, 4, false, (*CPU).stx},
	0x97: {"SAX", ZeroPageY, 4, false, (*CPU).sax},
	0x98: {"TYA", Implied, 2, false, (*CPU).tya},
	0x99: {"STA", AbsoluteY, 5, false, (*CPU).sta},
	0x9A: {"TXS", Implied, 2, false, (*CPU).txs},
	0x9B: {"TAS", AbsoluteY, 5, false, (*CPU).tas},
	0x9C: {"SHY", AbsoluteX, 5, false, (*CPU).shy},
	0x9D: {"STA", AbsoluteX, 5, false, (*CPU).sta},
	0x9E: {"SHX", AbsoluteY, 5, false, (*CPU).shx},
	0x9F: {"SHA", AbsoluteY, 5, false, (*CPU).sha},
	// 0xA0
	0xA0: {"LDY", Immediate, 2, false, (*CPU).ldy},
	0xA1: {"LDA", IndirectX, 6, false, (*CPU).lda},
	0xA2: {"LDX", Immediate, 2, false, (*CPU).ldx},
	0xA3: {"LAX", IndirectX, 6, false, (*CPU).lax},
	0xA4: {"LDY", ZeroPage, 3, false, (*CPU).ldy},
	0xA5: {"LDA", ZeroPage, 3, false, (*CPU).lda},
	0xA6: {"LDX", ZeroPage, 3, false, (*CPU).ldx},
	0xA7: {"LAX", ZeroPage, 3, false, (*CPU).lax},
	0xA8: {"TAY", Implied, 2, false, (*CPU).tay},
	0xA9: {"LDA", Immediate, 2, false, (*CPU).lda},
	0xAA: {"TAX", Implied, 2, false, (*CPU).tax},
	0xAB: {"LXA", Immediate, 2, false, (*CPU).lxa},
	0xAC: {"LDY", Absolute, 4, false, (*CPU).ldy},
	0xAD: {"LDA", Absolute, 4, false, (*CPU).lda},
	0xAE: {"LDX", Absolute, 4, false, (*CPU).ldx},
	0xAF: {"LAX", Absolute, 4, false, (*CPU).lax},
	// 0xB0
	0xB0: {"BCS", Relative, 2, false, (*CPU).bcs},
	0xB1: {"LDA", IndirectY, 5, true, (*CPU).lda},
	0xB2: {"JAM", Implied, 2, false, (*CPU).jam},
	0xB3: {"LAX", IndirectY, 5, true, (*CPU).lax},
	0xB4: {"LDY", ZeroPageX, 4, false, (*CPU).ldy},
	0xB5: {"LDA", ZeroPageX, 4, false, (*CPU).lda},
	0xB6: {"LDX", ZeroPageY, 4, false, (*CPU).ldx},
	0xB7: {"LAX", ZeroPageY, 4, false, (*CPU).lax},
	0xB8: {"CLV", Implied, 2, false, (*CPU).clv},
	0xB9: {"LDA", AbsoluteY, 4, true, (*CPU).lda},
	0xBA: {"TSX", Implied, 2, false, (*CPU).tsx},
	0xBB: {"LAS", AbsoluteY, 4, true, (*CPU).las},
	0xBC: {"LDY", AbsoluteX, 4, true, (*CPU).ldy},
	0xBD: {"LDA", AbsoluteX, 4, true, (*CPU).lda},
	0xBE: {"LDX", AbsoluteY, 4, true, (*CPU).ldx},
	0xBF: {"LAX", AbsoluteY, 4, true, (*CPU).lax},
	// 0xC0
	0xC0: {"CPY", Immediate, 2, false, (*CPU).cpy},
	0xC1: {"CMP", IndirectX, 6, false, (*CPU).cmp},
	0xC2: {"NOP", Immediate, 2, false, (*CPU).nop},
	0xC3: {"DCP", IndirectX, 8, false, (*CPU).dcp},
	0xC4: {"CPY", ZeroPage, 3, false, (*CPU).cpy},
	0xC5: {"CMP", ZeroPage, 3, false, (*CPU).cmp},
	0xC6: {"DEC", ZeroPage, 5, false, (*CPU).dec},
	0xC7: {"DCP", ZeroPage, 5, false, (*CPU).dcp},
	0xC8: {"INY", Implied, 2, false, (*CPU).iny},
	0xC9: {"CMP", Immediate, 2, false, (*CPU).cmp},
	0xCA: {"DEX", Implied, 2, false, (*CPU).dex},
	0xCB: {"AXS", Immediate, 2, false, (*CPU).axs},
	0xCC: {"CPY", Absolute, 4, false, (*CPU).cpy},
	0xCD: {"CMP", Absolute, 4, false, (*CPU).cmp},
	0xCE: {"DEC", Absolute, 6, false, (*CPU).dec},
	0xCF: {"DCP", Absolute, 6, false, (*CPU).dcp},
	// 0xD0
	0xD0: {"BNE", Relative, 2, false, (*CPU).bne},
	0xD1: {"CMP", IndirectY, 5, true, (*CPU).cmp},
	0xD2: {"JAM", Implied, 2, false, (*CPU).jam},
	0xD3: {"DCP", IndirectY, 8, false, (*CPU).dcp},
	0xD4: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0xD5: {"CMP", ZeroPageX, 4, false, (*CPU).cmp},
	0xD6: {"DEC", ZeroPageX, 6, false, (*CPU).dec},
	0xD7: {"DCP", ZeroPageX, 6, false, (*CPU).dcp},
	0xD8: {"CLD", Implied, 2, false, (*CPU).cld},
	0xD9: {"CMP", AbsoluteY, 4, true, (*CPU).cmp},
	0xDA: {"NOP", Implied, 2, false, (*CPU).nop},
	0xDB: {"DCP", AbsoluteY, 7, false, (*CPU).dcp},
	0xDC: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0xDD: {"CMP", AbsoluteX, 4, true, (*CPU).cmp},
	0xDE: {"DEC", AbsoluteX, 7, false, (*CPU).dec},
	0xDF: {"DCP", AbsoluteX, 7, false, (*CPU).dcp},
	// 0xE0
	0xE0: {"CPX", Immediate, 2, false, (*CPU).cpx},
	0xE1: {"SBC", IndirectX, 6, false, (*CPU).sbc},
	0xE2: {"NOP", Immediate, 2, false, (*CPU).nop},
	0xE3: {"ISB", IndirectX, 8, false, (*CPU).isb},
	0xE4: {"CPX", ZeroPage, 3, false, (*CPU).cpx},
	0xE5: {"SBC", ZeroPage, 3, false, (*CPU).sbc},
	0xE6: {"INC", ZeroPage, 5, false, (*CPU).inc},
	0xE7: {"ISB", ZeroPage, 5, false, (*CPU).isb},
	0xE8: {"INX", Implied, 2, false, (*CPU).inx},
	0xE9: {"SBC", Immediate, 2, false, (*CPU).sbc},
	0xEA: {"NOP", Implied, 2, false, (*CPU).nop},
	0xEB: {"SBC", Immediate, 2, false, (*CPU).sbc},
	0xEC: {"CPX", Absolute, 4, false, (*CPU).cpx},
	0xED: {"SBC", Absolute, 4, false, (*CPU).sbc},
	0xEE: {"INC", Absolute, 6, false, (*CPU).inc},
	0xEF: {"ISB", Absolute, 6, false, (*CPU).isb},
	// 0xF0
	0xF0: {"BEQ", Relative, 2, false, (*CPU).beq},
	0xF1: {"SBC", IndirectY, 5, true, (*CPU).sbc},
	0xF2: {"JAM", Implied, 2, false, (*CPU).jam},
	0xF3: {"ISB", IndirectY, 8, false, (*CPU).isb},
	0xF4: {"NOP", ZeroPageX, 4, false, (*CPU).nop},
	0xF5: {"SBC", ZeroPageX, 4, false, (*CPU).sbc},
	0xF6: {"INC", ZeroPageX, 6, false, (*CPU).inc},
	0xF7: {"ISB", ZeroPageX, 6, false, (*CPU).isb},
	0xF8: {"SED", Implied, 2, false, (*CPU).sed},
	0xF9: {"SBC", AbsoluteY, 4, true, (*CPU).sbc},
	0xFA: {"NOP", Implied, 2, false, (*CPU).nop},
	0xFB: {"ISB", AbsoluteY, 7, false, (*CPU).isb},
	0xFC: {"NOP", AbsoluteX, 4, true, (*CPU).nop},
	0xFD: {"SBC", AbsoluteX, 4, true, (*CPU).sbc},
	0xFE: {"INC", AbsoluteX, 7, false, (*CPU).inc},
	0xFF: {"ISB", AbsoluteX, 7, false, (*CPU).isb},
}

// Mnemonic returns the instruction name for an opcode byte.
func Mnemonic(op byte) string {
	return optable[op].name
}

// ModeOf returns the addressing mode an opcode uses.
func ModeOf(op byte) AddrMode {
	return optable[op].mode
}

// OperandBytes returns how many operand bytes a mode consumes after the
// opcode byte.
func OperandBytes(mode AddrMode) int {
	switch mode {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}
