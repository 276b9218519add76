package remote

import (
	"fmt"
	"log"
)

// Machine is the slice of the system bus a debug session needs.
type Machine interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
	Reset()
	Clock() int
	RequestStep()
	GetCPUState() (a, x, y, sp, p byte, pc uint16, cycles uint64, halted bool)
	SetCPUState(a, x, y, sp, p byte, pc uint16)
	SetInterrupt(nmi, asserted bool)
}

type session struct {
	logger  *log.Logger
	conn    clientConn
	machine Machine
	closed  bool
}

// serve runs the command loop until the client says bye or the
// transport fails.
func (s *session) serve() {
	for !s.closed {
		if err := s.serveNextCmd(); err != nil {
			s.logger.Printf("closing connection: %v", err)
			break
		}
	}
	s.conn.close()
	s.logger.Printf("connection closed")
}

func (s *session) regs() (a, x, y, sp, p byte, pc uint16) {
	a, x, y, sp, p, pc, _, _ = s.machine.GetCPUState()
	return
}

func (s *session) serveNextCmd() error {
	hdr, err := s.conn.inB()
	if err != nil {
		return err
	}

	switch opbyte(hdr) {
	case opbyteBye:
		s.closed = true
		return nil

	case opbyteTick:
		s.machine.RequestStep()
		if s.machine.Clock() == 0 {
			return s.conn.out(failResponse())
		}
		return s.conn.out(ackResponse())

	case opbyteWriteA, opbyteWriteX, opbyteWriteY, opbyteWriteS, opbyteWriteP:
		val, err := s.conn.inB()
		if err != nil {
			return err
		}
		a, x, y, sp, p, pc := s.regs()
		switch opbyte(hdr) {
		case opbyteWriteA:
			a = val
		case opbyteWriteX:
			x = val
		case opbyteWriteY:
			y = val
		case opbyteWriteS:
			sp = val
		case opbyteWriteP:
			p = val
		}
		s.machine.SetCPUState(a, x, y, sp, p, pc)
		return s.conn.out(ackResponse())

	case opbyteReadA:
		a, _, _, _, _, _ := s.regs()
		return s.conn.out(ackResponse(a))
	case opbyteReadX:
		_, x, _, _, _, _ := s.regs()
		return s.conn.out(ackResponse(x))
	case opbyteReadY:
		_, _, y, _, _, _ := s.regs()
		return s.conn.out(ackResponse(y))
	case opbyteReadS:
		_, _, _, sp, _, _ := s.regs()
		return s.conn.out(ackResponse(sp))
	case opbyteReadP:
		_, _, _, _, p, _ := s.regs()
		return s.conn.out(ackResponse(p))

	case opbyteWritePc:
		pc, err := s.conn.inW()
		if err != nil {
			return err
		}
		a, x, y, sp, p, _ := s.regs()
		s.machine.SetCPUState(a, x, y, sp, p, pc)
		return s.conn.out(ackResponse())

	case opbyteReadPc:
		_, _, _, _, _, pc := s.regs()
		return s.conn.out(ackResponse(byte(pc>>8), byte(pc)))

	case opbyteReadBus:
		addr, err := s.conn.inW()
		if err != nil {
			return err
		}
		return s.conn.out(ackResponse(s.machine.Read(addr)))

	case opbyteWriteBus:
		addr, err := s.conn.inW()
		if err != nil {
			return err
		}
		val, err := s.conn.inB()
		if err != nil {
			return err
		}
		s.machine.Write(addr, val)
		return s.conn.out(ackResponse())

	case opbyteReset:
		s.machine.Reset()
		return s.conn.out(ackResponse())

	case opbyteNmi, opbyteIrq:
		val, err := s.conn.inB()
		if err != nil {
			return err
		}
		s.machine.SetInterrupt(opbyte(hdr) == opbyteNmi, val != 0)
		return s.conn.out(ackResponse())

	default:
		return fmt.Errorf("unknown opbyte %#x", hdr)
	}
}
