package services

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is one library change pushed to connected clients.
type Event struct {
	Type    string `json:"type"`
	MovieID uint   `json:"movieId,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var (
	clientsMu sync.Mutex
	clients   = make(map[*websocket.Conn]bool)
)

// WebSocketHandler upgrades the connection and keeps it registered until the
// client goes away. Clients only listen; inbound messages are discarded.
func WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}

	clientsMu.Lock()
	clients[conn] = true
	clientsMu.Unlock()

	go func() {
		defer func() {
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends an event to every connected client, dropping clients whose
// write fails.
func Broadcast(event Event) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	for conn := range clients {
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(clients, conn)
		}
	}
}
