package debugview

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

type client struct {
	id   string
	conn *websocket.Conn

	// gorilla connections allow one concurrent writer
	writeMu sync.Mutex
	sent    uint64
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		id:   uuid.New().String(),
		conn: conn,
	}
}

// send writes frame unless a frame with the same or a later version was
// already written.
func (c *client) send(frame Frame, version uint64, timeout time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if version <= c.sent {
		return nil
	}

	if timeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
	}
	if err := c.conn.WriteJSON(frame); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	c.sent = version
	return nil
}

func (c *client) close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
