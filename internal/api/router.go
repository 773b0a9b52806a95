package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pairpad/pairpad/internal/session"
	"github.com/pairpad/pairpad/pkg/logger"
)

// SessionDirectory is the slice of the session store the REST surface needs:
// creating sessions and validating shareable links before a client attaches.
type SessionDirectory interface {
	Create() string
	Get(id string) (session.Snapshot, error)
}

type handlers struct {
	sessions SessionDirectory
	log      *slog.Logger
}

// NewRouter assembles the HTTP surface: session management endpoints, the
// health probe, and the websocket mount for the realtime relay.
func NewRouter(sessions SessionDirectory, ws http.Handler, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.NewNoop()
	}
	h := &handlers{sessions: sessions, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(allowCORS)

	r.Post("/api/sessions", h.createSession)
	r.Get("/api/sessions/{sessionID}", h.getSession)
	r.Get("/health", h.health)
	if ws != nil {
		r.Get("/ws", ws.ServeHTTP)
	}

	return r
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Create()
	h.log.Info("session created", logger.SessionID(id))
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": id})
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	snap, err := h.sessions.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Session not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId": id,
		"code":      snap.Document,
		"language":  snap.Language,
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
