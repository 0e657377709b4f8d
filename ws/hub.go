package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans events out to every connected client. Flashcard generation is
// request-scoped, so one global channel is enough; there are no per-resource
// rooms.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.writePump(client)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

// Broadcast drops the message for clients whose send buffer is full rather
// than blocking the caller.
func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return len(h.Clients)
}

func (h *Hub) writePump(client *Client) {
	defer func() {
		client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		client.Conn.Close()
	}()
	for msg := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

type generatedEvent struct {
	Type  string `json:"type"`
	SetID string `json:"set_id"`
	Count int    `json:"count"`
}

// BroadcastFlashcardsGenerated tells listeners that an ingestion run just
// persisted cards for a set.
func BroadcastFlashcardsGenerated(setID string, count int) {
	data, err := json.Marshal(generatedEvent{
		Type:  "flashcards_generated",
		SetID: setID,
		Count: count,
	})
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(data)
}

// BroadcastSetListChanged signals that the set listing should be refreshed.
func BroadcastSetListChanged() {
	H.Broadcast([]byte(`{"type": "set_list_changed"}`))
}
