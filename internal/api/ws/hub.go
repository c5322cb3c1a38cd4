// Package ws streams WhatsApp status updates to dashboard listeners.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
)

const (
	sendBuffer = 16
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type snapshotter interface {
	Snapshot(message string) whatsapp.Status
}

type client struct {
	conn *websocket.Conn
	send chan whatsapp.Status
}

// Hub keeps the set of connected listeners. Broadcast never blocks: a
// listener whose buffer is full misses the update.
type Hub struct {
	tracker  snapshotter
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub creates a Hub that greets every new listener with the current
// status taken from tracker.
func NewHub(tracker snapshotter) *Hub {
	return &Hub{
		tracker: tracker,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Register upgrades the request and subscribes the connection until it closes.
func (h *Hub) Register(c *ginext.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := &client{conn: conn, send: make(chan whatsapp.Status, sendBuffer)}

	h.mu.Lock()
	cl.send <- h.tracker.Snapshot("subscribed to whatsapp status")
	h.clients[cl] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	zlog.Logger.Debug().Int("listeners", count).Msg("whatsapp status listener connected")

	go h.writeLoop(cl)
	h.readLoop(cl)
}

// Broadcast queues s for every listener.
func (h *Hub) Broadcast(s whatsapp.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for cl := range h.clients {
		select {
		case cl.send <- s:
		default:
			zlog.Logger.Warn().Msg("whatsapp status listener is slow, dropping update")
		}
	}
}

// Len returns the number of connected listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every listener.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for cl := range h.clients {
		delete(h.clients, cl)
		close(cl.send)
	}
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// readLoop discards inbound frames; it only exists to notice a closed
// connection and to answer pongs.
func (h *Hub) readLoop(cl *client) {
	defer func() {
		h.unregister(cl)
		_ = cl.conn.Close()
		zlog.Logger.Debug().Msg("whatsapp status listener disconnected")
	}()

	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case s, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(s); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
