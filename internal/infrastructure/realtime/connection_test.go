package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestSocket spins up a loopback websocket server that drains inbound
// frames and returns the client side of the connection.
func dialTestSocket(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		go func() {
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}))
	t.Cleanup(srv.Close)

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func TestConnectionSendAfterCloseReturnsError(t *testing.T) {
	conn := NewConnection("alice", dialTestSocket(t))
	conn.Start()

	require.NoError(t, conn.Send([]byte(`{"event":"message"}`)))

	conn.Close(websocket.CloseNormalClosure, "bye")

	for i := 0; i < 100; i++ {
		assert.Error(t, conn.Send([]byte("late")))
	}
}

func TestConnectionConcurrentSendDuringClose(t *testing.T) {
	conn := NewConnection("alice", dialTestSocket(t))
	conn.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = conn.Send([]byte("payload"))
			}
		}()
	}

	conn.Close(websocket.CloseGoingAway, "shutting down")
	wg.Wait()

	assert.Error(t, conn.Send([]byte("after close")))
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	conn := NewConnection("alice", dialTestSocket(t))
	conn.Start()

	conn.Close(websocket.CloseNormalClosure, "first")
	assert.NotPanics(t, func() {
		conn.Close(websocket.CloseNormalClosure, "second")
	})
}
