package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/ecommerce-realtime/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForListeners(t *testing.T, hub *realtime.Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Count() == n }, 2*time.Second, 10*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg realtime.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg.Event
}

func TestPublishReachesEveryListener(t *testing.T) {
	hub := realtime.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitForListeners(t, hub, 2)

	hub.Publish("cartUpdated")

	assert.Equal(t, "cartUpdated", readEvent(t, a))
	assert.Equal(t, "cartUpdated", readEvent(t, b))
}

func TestLateListenerGetsNoReplay(t *testing.T) {
	hub := realtime.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	hub.Publish("updateProducts")

	conn := dial(t, srv)
	waitForListeners(t, hub, 1)
	hub.Publish("productDeleted")

	assert.Equal(t, "productDeleted", readEvent(t, conn))
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := realtime.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv)
	waitForListeners(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForListeners(t, hub, 0)

	// publishing with nobody listening is fine
	hub.Publish("cartUpdated")
}

func TestCloseDisconnectsListeners(t *testing.T) {
	hub := realtime.NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv)
	waitForListeners(t, hub, 1)

	hub.Close()
	assert.Equal(t, 0, hub.Count())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestCountingPublisher(t *testing.T) {
	hub := realtime.NewHub()
	var counted []string
	p := realtime.CountingPublisher{Next: hub, Count: func(e string) { counted = append(counted, e) }}

	p.Publish("a")
	p.Publish("b")
	assert.Equal(t, []string{"a", "b"}, counted)
}
