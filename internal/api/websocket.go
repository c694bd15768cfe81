package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Pantry event types
const (
	EventItemAdded    = "item-added"
	EventItemRemoved  = "item-removed"
	EventRecipeCooked = "recipe-cooked"
)

// PantryEvent represents a pantry change pushed to connected clients
type PantryEvent struct {
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	Item      string    `json:"item,omitempty"`
	Recipe    string    `json:"recipe,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Hub tracks connected WebSocket clients and fans events out to them
type Hub struct {
	mu      sync.Mutex
	clients map[*WSConnection]bool
}

func newHub() *Hub {
	return &Hub{clients: make(map[*WSConnection]bool)}
}

func (h *Hub) register(c *WSConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) unregister(c *WSConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Broadcast sends an event to every connected client. Clients with full
// buffers are skipped rather than blocked on.
func (h *Hub) Broadcast(event PantryEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping event")
		}
	}
}

// WSConnection maintains the WebSocket connection with the client
type WSConnection struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// handleWebSocket handles WebSocket connections
func (p *PantryAPI) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &WSConnection{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  p.hub,
	}
	p.hub.register(wsConn)

	// Start the read and write pumps
	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump drains messages from the WebSocket connection. The event
// stream is one-way; reads exist to detect disconnects and answer pings.
func (c *WSConnection) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512 * 1024) // 512KB
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps events from the hub to the WebSocket connection
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// The channel was closed
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
