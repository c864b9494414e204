// Package actuator relays navigation commands to an external robot
// controller and waits for its acknowledgements.
package actuator

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

var ErrEmptyURL = errors.New("actuator url is empty")

// WebSocket is a command/acknowledgement channel over a single
// websocket connection. Send writes the command as a text message; Ack
// blocks on the next message from the controller.
type WebSocket struct {
	conn    *websocket.Conn
	timeout time.Duration
}

// Dial connects to the controller endpoint. A zero timeout keeps every
// acknowledgement wait unbounded; a positive timeout arms a read
// deadline per Ack call.
func Dial(url string, timeout time.Duration) (*WebSocket, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing actuator: %w", err)
	}

	return &WebSocket{conn: conn, timeout: timeout}, nil
}

// Send forwards one command to the controller.
func (w *WebSocket) Send(command string) error {
	return w.conn.WriteMessage(websocket.TextMessage, []byte(command))
}

// Ack blocks until the controller answers and returns the payload.
func (w *WebSocket) Ack() (string, error) {
	if w.timeout > 0 {
		if err := w.conn.SetReadDeadline(time.Now().Add(w.timeout)); err != nil {
			return "", err
		}
	}

	_, payload, err := w.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// Close announces a normal closure and releases the connection.
func (w *WebSocket) Close() error {
	_ = w.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return w.conn.Close()
}
