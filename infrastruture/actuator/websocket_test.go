package actuator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// controllerStub upgrades the connection and acknowledges every
// command it receives with "OK".
func controllerStub(t *testing.T, reply bool) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			if !reply {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte("OK")); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocket(t *testing.T) {
	t.Run("Command round trip", func(t *testing.T) {
		srv := controllerStub(t, true)
		defer srv.Close()

		ws, err := Dial(wsURL(srv), 0)
		require.NoError(t, err)
		defer ws.Close()

		require.NoError(t, ws.Send("RIGHT"))
		ack, err := ws.Ack()
		require.NoError(t, err)
		assert.Equal(t, "OK", ack)
	})

	t.Run("Acknowledgement deadline", func(t *testing.T) {
		srv := controllerStub(t, false)
		defer srv.Close()

		ws, err := Dial(wsURL(srv), 50*time.Millisecond)
		require.NoError(t, err)
		defer ws.Close()

		require.NoError(t, ws.Send("UP"))
		_, err = ws.Ack()
		assert.Error(t, err)
	})

	t.Run("Empty url", func(t *testing.T) {
		_, err := Dial("", 0)
		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("Unreachable controller", func(t *testing.T) {
		_, err := Dial("ws://127.0.0.1:1/controller", time.Second)
		assert.Error(t, err)
	})
}
