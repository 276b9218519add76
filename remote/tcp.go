package remote

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
)

type tcpClientConn struct {
	conn   net.Conn
	reader *bufio.Reader
	closed bool
}

// ServeTCP accepts debug clients on the listener until it is closed.
// Each client gets its own session goroutine.
func ServeTCP(listener net.Listener, m Machine) error {
	log.Printf("remote debug TCP server on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		log.Printf("new client connection from %s", conn.RemoteAddr())
		go ServeConn(conn, m)
	}
}

// ServeConn runs one debug session over an established connection and
// blocks until it ends.
func ServeConn(conn net.Conn, m Machine) {
	clientConn := &tcpClientConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
	s := &session{
		logger:  log.New(log.Writer(), fmt.Sprintf("[client/%s] ", conn.RemoteAddr()), log.Flags()),
		conn:    clientConn,
		machine: m,
	}
	s.serve()
}

func (c *tcpClientConn) close() {
	if !c.closed {
		c.closed = true
		c.conn.Close()
	}
}

func (c *tcpClientConn) out(buf []byte) error {
	_, err := c.conn.Write(buf)
	return err
}

func (c *tcpClientConn) inB() (uint8, error) {
	return c.reader.ReadByte()
}

func (c *tcpClientConn) inW() (uint16, error) {
	var bytes [2]uint8
	if _, err := io.ReadFull(c.reader, bytes[:]); err != nil {
		return 0, err
	}
	return uint16(bytes[0])<<8 | uint16(bytes[1]), nil
}
