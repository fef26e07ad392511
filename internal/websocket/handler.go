package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an agent dashboard connection to the hub.
func ServeWs(hub *Hub, c *websocket.Conn, agentID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, AgentID: agentID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
