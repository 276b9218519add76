// Package remote exposes the machine over a compact binary protocol
// for remote debug clients, carried over raw TCP or a WebSocket. Every
// command is a single opbyte followed by its operands, and every
// response starts with an ack or fail byte. Words travel big-endian.
package remote

type opbyte uint8

const (
	// 0x: response type. Every response starts with one of these.
	opbyteAck  = opbyte(0x00)
	opbyteFail = opbyte(0x01)

	// 1x: session control.
	opbyteBye  = opbyte(0x10) // close the connection
	opbyteTick = opbyte(0x1F) // run the CPU for one instruction

	// 2x: register access.
	opbyteWriteA  = opbyte(0x20)
	opbyteReadA   = opbyte(0x21)
	opbyteWriteX  = opbyte(0x22)
	opbyteReadX   = opbyte(0x23)
	opbyteWriteY  = opbyte(0x24)
	opbyteReadY   = opbyte(0x25)
	opbyteWriteS  = opbyte(0x26)
	opbyteReadS   = opbyte(0x27)
	opbyteWriteP  = opbyte(0x28)
	opbyteReadP   = opbyte(0x29)
	opbyteWritePc = opbyte(0x2A)
	opbyteReadPc  = opbyte(0x2B)

	// 3x: bus and machine control.
	opbyteReadBus  = opbyte(0x30) // word address -> byte
	opbyteWriteBus = opbyte(0x31) // word address, byte value
	opbyteReset    = opbyte(0x32)
	opbyteNmi      = opbyte(0x33) // byte: 0 deassert, else assert
	opbyteIrq      = opbyte(0x34) // byte: 0 deassert, else assert
)

// clientConn abstracts the transport; the TCP and WebSocket drivers
// both satisfy it.
type clientConn interface {
	out(buf []byte) error
	inB() (uint8, error)
	inW() (uint16, error)
	close()
}

func ackResponse(rest ...byte) []byte {
	return append([]byte{byte(opbyteAck)}, rest...)
}

func failResponse() []byte {
	return []byte{byte(opbyteFail)}
}
