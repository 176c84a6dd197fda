package websocket

import (
	"sync"
)

// Hub maintains the set of active clients, indexed by user UUID so
// invitation events can be pushed to a specific user's connections.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Users mapping (userUUID -> clients)
	users map[string]map[*Client]bool

	// Mutex for users map
	usersMux sync.RWMutex

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

var hub *Hub

// InitHub creates and starts the global hub
func InitHub() {
	hub = NewHub()
	go hub.Run()
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		users:      make(map[string]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

			h.usersMux.Lock()
			if _, ok := h.users[client.userUUID]; !ok {
				h.users[client.userUUID] = make(map[*Client]bool)
			}
			h.users[client.userUUID][client] = true
			h.usersMux.Unlock()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.usersMux.Lock()
				if clients, ok := h.users[client.userUUID]; ok {
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.users, client.userUUID)
					}
				}
				h.usersMux.Unlock()
			}
		}
	}
}

// sendToUser delivers a message to every connection the user has open.
// Connections with a full send buffer are skipped rather than blocked on.
func (h *Hub) sendToUser(userUUID string, message []byte) {
	h.usersMux.RLock()
	defer h.usersMux.RUnlock()

	for client := range h.users[userUUID] {
		select {
		case client.send <- message:
		default:
		}
	}
}
