package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// WSTransport carries chat messages over the gateway's websocket endpoint.
type WSTransport struct {
	conn   *websocket.Conn
	logger *slog.Logger

	incoming chan Message
	done     chan struct{}

	// writeMu serializes writes; gorilla connections allow one
	// concurrent writer.
	writeMu sync.Mutex

	closeOnce sync.Once
}

// DialWS connects to the gateway chat endpoint, e.g.
// "ws://localhost:8090/ws/chat".
func DialWS(ctx context.Context, url string, logger *slog.Logger) (*WSTransport, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	t := &WSTransport{
		conn:     conn,
		logger:   logger,
		incoming: make(chan Message, 16),
		done:     make(chan struct{}),
	}
	go t.readLoop()
	return t, nil
}

// Send writes the message as JSON.
func (t *WSTransport) Send(ctx context.Context, m Message) error {
	select {
	case <-t.done:
		return ErrTransportClosed
	default:
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.conn.WriteJSON(m)
}

// Incoming yields messages read from the connection.
func (t *WSTransport) Incoming() <-chan Message {
	return t.incoming
}

// Close tears down the connection and closes the Incoming channel.
func (t *WSTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		err = t.conn.Close()
	})
	return err
}

// readLoop pushes inbound messages until the connection drops.
func (t *WSTransport) readLoop() {
	defer close(t.incoming)
	for {
		var m Message
		if err := t.conn.ReadJSON(&m); err != nil {
			select {
			case <-t.done:
				// Expected on Close.
			default:
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					t.logger.Warn("chat: websocket read failed", "error", err)
				}
			}
			return
		}
		m.Inbound = true
		select {
		case <-t.done:
			return
		case t.incoming <- m:
		}
	}
}
