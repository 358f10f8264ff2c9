package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"designpro/internal/arch"
	"designpro/internal/arch/layout"
	"designpro/internal/chat"
)

type scriptedAdvisor struct {
	reply string
	err   error
}

func (a *scriptedAdvisor) Advise(ctx context.Context, query string, history []chat.Message) (string, error) {
	return a.reply, a.err
}

func newTestHandler(t *testing.T, adv chat.Advisor) (*Handler, *chat.Session) {
	t.Helper()
	session := chat.NewSession(adv)
	h, err := New(session, arch.SystemNodes(), arch.SystemConnections(), layout.Default(), nil)
	require.NoError(t, err)
	return h, session
}

func waitIdle(t *testing.T, s *chat.Session) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("session never returned to idle")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDiagramEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{reply: "ok"})
	mux := NewMux(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagram", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Equal(t, 11, strings.Count(body, "<rect "))
	require.Equal(t, 10, strings.Count(body, "<path "))

	// Second request hits the render cache and stays byte-identical.
	rec2 := httptest.NewRecorder()
	mux.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/diagram", nil))
	require.Equal(t, body, rec2.Body.String())
}

func TestChatEndpointAcceptsAndResolves(t *testing.T) {
	h, session := newTestHandler(t, &scriptedAdvisor{reply: "use optimistic locking"})
	mux := NewMux(h)

	payload := bytes.NewBufferString(`{"message":"How to handle double booking?"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", payload))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Accepted bool           `json:"accepted"`
		Messages []chat.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.True(t, out.Accepted)
	require.NotEmpty(t, out.Messages)

	waitIdle(t, session)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/conversation", nil))
	var conv struct {
		Messages []chat.Message `json:"messages"`
		Pending  bool           `json:"pending"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conv))
	require.Len(t, conv.Messages, 2)
	require.Equal(t, "use optimistic locking", conv.Messages[1].Text)
	require.False(t, conv.Pending)
}

func TestChatEndpointRejectsBlankMessage(t *testing.T) {
	h, session := newTestHandler(t, &scriptedAdvisor{reply: "unused"})
	mux := NewMux(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"  "}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Accepted    bool     `json:"accepted"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.False(t, out.Accepted)
	require.Len(t, out.Suggestions, 3)
	require.Empty(t, session.Messages())
}

func TestChatEndpointRejectsBadJSON(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{})
	mux := NewMux(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{})
	mux := NewMux(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schemas", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var schemas struct {
		Tables []arch.SchemaTable `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schemas))
	require.Len(t, schemas.Tables, 4)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/approach", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var approach struct {
		Steps []arch.ApproachStep `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approach))
	require.Len(t, approach.Steps, 5)
}

func TestExportUnavailableWithoutStore(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{})
	mux := NewMux(h)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/diagram/export", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagram/exports", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMethodGuards(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{})
	mux := NewMux(h)

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/chat"},
		{http.MethodPost, "/api/conversation"},
		{http.MethodPost, "/api/diagram"},
		{http.MethodGet, "/api/diagram/export"},
		{http.MethodPost, "/api/schemas"},
		{http.MethodPost, "/api/approach"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t, &scriptedAdvisor{})
	mux := NewMux(h)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, http.StatusOK, rec.Code)
}
