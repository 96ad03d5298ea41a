package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a real-time game event to be sent to clients: a join, a
// gesture landing, the outcome, proof activity, or a terminal transition.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single client connection (a user watching a game).
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Hub manages all watched games and their clients.
type Hub struct {
	games map[uint]map[Client]bool
	mu    sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		games: make(map[uint]map[Client]bool),
	}
}

// Subscribe adds a new client to a specific game.
func (h *Hub) Subscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]bool)
	}
	h.games[gameID][client] = true
}

// Unsubscribe removes a client from a game.
func (h *Hub) Unsubscribe(gameID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.games, gameID)
			}
		}
	}
}

// Broadcast sends an event to all clients watching a specific game.
func (h *Hub) Broadcast(gameID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.games[gameID]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			return
		}

		for client := range clients {
			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full, maybe they are disconnected or slow.
				// The unsubscribe logic will handle cleaning this up eventually.
			}
		}
	}
}
