package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/graphexplorer/core/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxlog.FromContext(r.Context()).Info("inside")
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/graph", nil)
		rec := httptest.NewRecorder()

		RequestID(base)(handler).ServeHTTP(rec, req)

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "request_id="+id)
	})

	t.Run("reuses the caller id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/graph", nil)
		req.Header.Set(RequestIDHeader, "trace-42")
		rec := httptest.NewRecorder()

		RequestID(base)(handler).ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), "request_id=trace-42")
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/graph", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
		rec := httptest.NewRecorder()

		RequestID(base)(handler).ServeHTTP(rec, req)

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
}
