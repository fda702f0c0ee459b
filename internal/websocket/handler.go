package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches a connection to the hub and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, handler MessageHandler) {
	client := &Client{
		Id:      "ws_" + uuid.NewString(),
		Hub:     hub,
		Conn:    c,
		Send:    make(chan []byte, sendBuffer),
		handler: handler,
	}
	if !hub.join(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

// join registers a client. It fails when the hub has already stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
