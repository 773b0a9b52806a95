package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pairpad/pairpad/internal/api"
	"github.com/pairpad/pairpad/internal/session"
)

func newTestServer(t *testing.T) (*session.Store[string], *httptest.Server) {
	t.Helper()

	store := session.New[string]()
	srv := httptest.NewServer(api.NewRouter(store, nil, nil))
	t.Cleanup(srv.Close)
	return store, srv
}

func decode(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreateSession(t *testing.T) {
	t.Parallel()

	store, srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	require.NotEmpty(t, body["sessionId"])

	snap, err := store.Get(body["sessionId"])
	require.NoError(t, err)
	assert.Equal(t, session.DefaultDocument, snap.Document)
	assert.Equal(t, session.DefaultLanguage, snap.Language)
}

func TestGetSession(t *testing.T) {
	t.Parallel()

	t.Run("existing session", func(t *testing.T) {
		t.Parallel()

		store, srv := newTestServer(t)
		id := store.Create()
		require.NoError(t, store.SetDocument(id, "x=1", "", nil))

		resp, err := http.Get(srv.URL + "/api/sessions/" + id)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, id, body["sessionId"])
		assert.Equal(t, "x=1", body["code"])
		assert.Equal(t, session.DefaultLanguage, body["language"])
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		t.Parallel()

		_, srv := newTestServer(t)

		resp, err := http.Get(srv.URL + "/api/sessions/invalid-id")
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decode(t, resp)
		assert.Equal(t, "Session not found", body["error"])
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestCORS(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/sessions", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
