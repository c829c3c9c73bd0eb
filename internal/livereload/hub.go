package livereload

import (
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// Path is the websocket endpoint pages connect to.
const Path = "/ws/reload"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// message is the only frame the hub sends.
type message struct {
	Type string `json:"type"`
}

// Hub tracks connected pages and tells them to reload.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get(Path, h.ServeHTTP)
}

// ServeHTTP upgrades the request and keeps the connection until the page
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Count returns the number of connected pages.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends a reload message to every connected page. Pages that
// cannot be written to are dropped.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(message{Type: "reload"}); err != nil {
			log.Printf("livereload: websocket write: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
