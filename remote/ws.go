package remote

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

type wsClientConn struct {
	conn   *websocket.Conn
	closed bool
	msgBuf []uint8
}

var wsUpgrader = websocket.Upgrader{}

// WSHandler returns an http.Handler that upgrades requests to
// WebSocket debug sessions. Commands and responses travel as binary
// messages with the same framing as the TCP transport.
func WSHandler(m Machine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade error: %v", err)
			return
		}
		log.Printf("new client connection from %s", r.RemoteAddr)

		s := &session{
			logger:  log.New(log.Writer(), fmt.Sprintf("[client/%s] ", conn.RemoteAddr()), log.Flags()),
			conn:    &wsClientConn{conn: conn},
			machine: m,
		}
		s.serve()
	})
}

func (c *wsClientConn) close() {
	if !c.closed {
		c.closed = true
		c.conn.Close()
	}
}

func (c *wsClientConn) out(buf []byte) error {
	return c.conn.WriteMessage(websocket.BinaryMessage, buf)
}

func (c *wsClientConn) recvMsg() error {
	tp, msg, err := c.conn.ReadMessage()
	if err != nil {
		return err
	}
	if tp != websocket.BinaryMessage {
		return errors.New("expected binary message, got something else")
	}
	c.msgBuf = append(c.msgBuf, msg...)
	return nil
}

func (c *wsClientConn) inB() (uint8, error) {
	for len(c.msgBuf) < 1 {
		if err := c.recvMsg(); err != nil {
			return 0, err
		}
	}
	res := c.msgBuf[0]
	c.msgBuf = c.msgBuf[1:]
	return res, nil
}

func (c *wsClientConn) inW() (uint16, error) {
	for len(c.msgBuf) < 2 {
		if err := c.recvMsg(); err != nil {
			return 0, err
		}
	}
	res := uint16(c.msgBuf[0])<<8 | uint16(c.msgBuf[1])
	c.msgBuf = c.msgBuf[2:]
	return res, nil
}
