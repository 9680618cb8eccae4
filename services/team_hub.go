package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	TeamID uint
	Conn   *websocket.Conn
}

// TeamHub fans chat messages and feed events out to every connected member
// of a team.
type TeamHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewTeamHub() *TeamHub {
	return &TeamHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *TeamHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.TeamID] == nil {
		h.clients[c.TeamID] = make(map[*WSClient]struct{})
	}
	h.clients[c.TeamID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *TeamHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.TeamID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.TeamID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *TeamHub) Broadcast(teamID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[teamID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
