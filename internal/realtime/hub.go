package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

// Client is one websocket session of a user. A user may hold several
// (phone + web), all scoped under the same user room.
type Client struct {
	UserID uuid.UUID
	Send   chan []byte
	Conn   *websocket.Conn
}

type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub fans events out to every live session of a user. Sends are
// fire-and-forget: a slow consumer gets dropped, never waited on.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client

	mu     sync.RWMutex
	logger *logger.Logger
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[*Client]bool)
			}
			h.clients[client.UserID][client] = true
			h.mu.Unlock()
		case client := <-h.Unregister:
			h.mu.Lock()
			if sessions, ok := h.clients[client.UserID]; ok {
				if _, ok := sessions[client]; ok {
					delete(sessions, client)
					close(client.Send)
					if len(sessions) == 0 {
						delete(h.clients, client.UserID)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// EmitToUser delivers an event to every session of userID. No-op when
// the user has no live session; non-blocking when a session is slow.
func (h *Hub) EmitToUser(userID uuid.UUID, event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		h.logger.Error("failed to encode realtime event", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			// Slow consumer: drop the event, no delivery guarantee.
		}
	}
}
