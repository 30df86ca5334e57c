package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/fonetik/wugboard/protocol"
)

// client is one websocket connection. Gorilla conns do not tolerate
// concurrent writers, so every send goes through the mutex.
type client struct {
	id   string
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (c *client) send(msg *protocol.ServerMessage) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Debug().Err(err).Str("conn", c.id).Msg("write failed")
	}
}

func (c *client) close() {
	_ = c.conn.Close()
}
