package relay

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/pairpad/pairpad/internal/session"
	"github.com/pairpad/pairpad/pkg/logger"
)

// Relay accepts websocket connections, binds each to a session on request,
// and fans out every state change to the session's other members.
//
// One goroutine reads each connection, one drains its send buffer; the
// session store is the only synchronization point between connections.
type Relay struct {
	store    *session.Store[*Member]
	log      *slog.Logger
	upgrader websocket.Upgrader
	cfg      Config
}

// New creates a Relay on top of the given store.
func New(store *session.Store[*Member], opts ...Option) *Relay {
	if store == nil {
		panic("relay: nil store")
	}

	cfg := defaultRelayConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.NewNoop()
	}

	return &Relay{
		store: store,
		log:   cfg.log,
		cfg:   cfg.Config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients are served from a separate origin; the
			// relay carries no credentials worth protecting here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler returns the websocket endpoint. The handler goroutine becomes the
// connection's read loop and does not return until the connection closes.
func (r *Relay) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		conn, err := r.upgrader.Upgrade(w, req, nil)
		if err != nil {
			r.log.Warn("websocket upgrade failed", logger.Error(err))
			return
		}
		r.serve(conn)
	}
}

func (r *Relay) serve(conn *websocket.Conn) {
	m := newMember(conn, r.cfg.SendBuffer)
	go m.writePump(r.cfg.WriteTimeout, r.cfg.PingInterval)

	defer func() {
		if m.sessionID != "" {
			r.store.Leave(m.sessionID, m)
			r.log.Debug("member left session", logger.SessionID(m.sessionID))
		}
		m.close()
	}()

	conn.SetReadLimit(r.cfg.ReadLimit)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// Normal closes and transport faults end up here alike;
			// both take the same cleanup path.
			return
		}
		r.dispatch(m, data)
	}
}

// dispatch decodes one inbound frame and applies it. Malformed or unexpected
// events are logged and dropped; they never terminate the connection.
func (r *Relay) dispatch(m *Member, data []byte) {
	var ev inboundEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		r.log.Warn("malformed event dropped", logger.Error(err))
		return
	}

	switch ev.Type {
	case eventJoin:
		r.handleJoin(m, ev.SessionID)

	case eventCodeChange:
		if m.sessionID == "" {
			return
		}
		payload := encode(codeUpdateEvent{Type: eventCodeUpdate, Code: ev.Code})
		err := r.store.SetDocument(m.sessionID, ev.Code, m, func(peer *Member) {
			r.deliver(peer, payload)
		})
		if err != nil {
			r.log.Warn("edit on unknown session", logger.SessionID(m.sessionID))
		}

	case eventLanguageChange:
		if m.sessionID == "" {
			return
		}
		payload := encode(languageUpdateEvent{Type: eventLanguageUpdate, Language: ev.Language})
		err := r.store.SetLanguage(m.sessionID, ev.Language, func(peer *Member) {
			r.deliver(peer, payload)
		})
		if err != nil {
			r.log.Warn("language change on unknown session", logger.SessionID(m.sessionID))
		}

	default:
		r.log.Warn("unknown event type dropped", slog.String("type", ev.Type))
	}
}

func (r *Relay) handleJoin(m *Member, id string) {
	if m.sessionID != "" {
		// Already bound; a connection belongs to at most one session.
		r.log.Debug("duplicate join ignored", logger.SessionID(m.sessionID))
		return
	}

	// The callback runs under the session lock: binding the member and
	// handing it the init snapshot are atomic with respect to concurrent
	// edits, so no update can arrive ahead of init.
	_, err := r.store.Join(id, m, func(snap session.Snapshot) {
		m.sessionID = id
		m.enqueue(encode(initEvent{
			Type:     eventInit,
			Code:     snap.Document,
			Language: snap.Language,
		}))
	})
	if err != nil {
		m.enqueue(encode(errorEvent{Type: eventError, Error: "session not found"}))
		r.log.Debug("join for unknown session", logger.SessionID(id))
		return
	}

	r.log.Debug("member joined session", logger.SessionID(id))
}

// deliver enqueues a payload for one peer, disconnecting the peer if its
// buffer is full so a slow consumer never stalls the rest of the session.
// It runs under the session lock, so it must stay non-blocking.
func (r *Relay) deliver(peer *Member, payload []byte) {
	if !peer.enqueue(payload) {
		r.log.Warn("dropping slow consumer", logger.SessionID(peer.sessionID))
		peer.close()
	}
}
