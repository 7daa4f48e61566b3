package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skilllink-dev/skilllink/pkg/chat"
)

// handleChat upgrades the connection and simulates the other party: every
// message the client sends gets a canned reply, the same rotation the
// in-process mock transport uses.
func (g *Gateway) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("chat upgrade failed", "error", err)
		return
	}

	party := chat.NewMockTransport(chat.WithReplyLatency(200 * time.Millisecond))
	defer party.Close()

	// One writer goroutine; gorilla connections allow a single
	// concurrent writer.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for m := range party.Incoming() {
			if err := conn.WriteJSON(m); err != nil {
				return
			}
		}
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
	}()

	for {
		var m chat.Message
		if err := conn.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				g.logger.Warn("chat read failed", "error", err)
			}
			break
		}
		if err := party.Send(r.Context(), m); err != nil {
			break
		}
	}

	party.Close()
	wg.Wait()
	conn.Close()
}
