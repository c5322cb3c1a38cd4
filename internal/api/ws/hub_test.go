package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/hire-notifier/internal/whatsapp"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", hub.Register)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func read(t *testing.T, conn *websocket.Conn) whatsapp.Status {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var s whatsapp.Status
	require.NoError(t, conn.ReadJSON(&s))
	return s
}

func TestHub_SnapshotOnConnect(t *testing.T) {
	tracker := whatsapp.NewTracker(clockwork.NewFakeClock(), 5*time.Minute)
	hub := NewHub(tracker)

	conn := dial(t, hub)

	s := read(t, conn)
	assert.Equal(t, "disconnected", s.State)
	assert.False(t, s.Connected)
	assert.False(t, s.PairingNeeded)
	assert.Equal(t, "subscribed to whatsapp status", s.Message)
}

func TestHub_Broadcast(t *testing.T) {
	tracker := whatsapp.NewTracker(clockwork.NewFakeClock(), 5*time.Minute)
	hub := NewHub(tracker)

	first := dial(t, hub)
	second := dial(t, hub)
	read(t, first)
	read(t, second)

	require.Equal(t, 2, hub.Len())

	hub.Broadcast(whatsapp.Status{State: "connected", Connected: true, Message: "whatsapp client is ready"})

	for _, conn := range []*websocket.Conn{first, second} {
		s := read(t, conn)
		assert.True(t, s.Connected)
		assert.Equal(t, "whatsapp client is ready", s.Message)
	}
}

func TestHub_UnregisterOnClose(t *testing.T) {
	tracker := whatsapp.NewTracker(clockwork.NewFakeClock(), 5*time.Minute)
	hub := NewHub(tracker)

	conn := dial(t, hub)
	read(t, conn)
	require.Equal(t, 1, hub.Len())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.Len() == 0 }, 2*time.Second, 10*time.Millisecond)

	// no listeners left, must not block or panic
	hub.Broadcast(whatsapp.Status{State: "disconnected"})
}
