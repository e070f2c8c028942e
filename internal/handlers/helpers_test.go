package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agora-forum/agora/internal/middleware"
)

// memoryBlacklist is an in-process stand-in for the Redis-backed token
// blacklist.
type memoryBlacklist struct {
	tokens map[string]bool
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{tokens: map[string]bool{}}
}

func (b *memoryBlacklist) Add(_ context.Context, token string, _ time.Duration) error {
	b.tokens[token] = true
	return nil
}

func (b *memoryBlacklist) Contains(_ context.Context, token string) (bool, error) {
	return b.tokens[token], nil
}

// newTestRouter returns an engine that injects uid as the authenticated
// user, standing in for the auth middleware.
func newTestRouter(uid uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if uid != uuid.Nil {
			c.Set(middleware.UserIDKey, uid)
		}
	})
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(t, json.NewEncoder(buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performAuthedRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(t, json.NewEncoder(buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
