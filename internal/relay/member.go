package relay

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Member is one client's live connection. The session store holds it as an
// opaque handle; the relay is the only code that touches its internals.
//
// All websocket writes happen on the write pump goroutine, fed by the
// buffered send channel. Enqueueing never blocks: a peer whose buffer is
// full is disconnected rather than allowed to stall its session.
type Member struct {
	conn *websocket.Conn
	send chan []byte

	// sessionID is the id of the bound session, empty while unbound.
	// Only the connection's own read loop touches it.
	sessionID string

	done      chan struct{}
	closeOnce sync.Once
}

func newMember(conn *websocket.Conn, sendBuffer int) *Member {
	return &Member{
		conn: conn,
		// Minimum buffer of 1 keeps enqueue non-blocking even when
		// misconfigured to zero.
		send: make(chan []byte, max(sendBuffer, 1)),
		done: make(chan struct{}),
	}
}

// enqueue hands msg to the write pump without blocking. It reports false if
// the member's buffer is full or the member is already closed.
func (m *Member) enqueue(msg []byte) bool {
	select {
	case <-m.done:
		return false
	default:
	}

	select {
	case m.send <- msg:
		return true
	default:
		return false
	}
}

// close releases the connection. Safe for repeated and concurrent calls; the
// read loop observes the closed transport and runs its cleanup path.
func (m *Member) close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

// writePump serializes all writes to the websocket connection. It exits when
// the member is closed or a write fails, closing the underlying transport
// either way.
func (m *Member) writePump(writeTimeout, pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		m.conn.Close()
	}()

	for {
		select {
		case msg := <-m.send:
			m.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := m.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			m.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := m.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-m.done:
			return
		}
	}
}
