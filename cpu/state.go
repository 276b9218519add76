package cpu

// State is a snapshot of everything the core needs to resume execution,
// including the interrupt lines. It gob-encodes cleanly.
type State struct {
	PC             uint16
	SP, A, X, Y, P byte
	Cycles         uint64
	Halted         bool
	NmiLine        bool
	NmiPending     bool
	IrqLine        bool
}

func (c *CPU) SaveState() State {
	return State{c.PC, c.SP, c.A, c.X, c.Y, c.P, c.Cycles, c.halted, c.nmiLine, c.nmiPending, c.irqLine}
}

func (c *CPU) LoadState(s State) {
	c.PC, c.SP, c.A, c.X, c.Y, c.P = s.PC, s.SP, s.A, s.X, s.Y, s.P
	c.Cycles, c.halted, c.nmiLine, c.nmiPending, c.irqLine = s.Cycles, s.Halted, s.NmiLine, s.NmiPending, s.IrqLine
}
