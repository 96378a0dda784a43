package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vportnov/airport-api/internal/platform/logger"
)

func loggedRequest(t *testing.T, buf *bytes.Buffer, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(buf, nil))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(logger.WithContext(req.Context(), log))

	rr := httptest.NewRecorder()
	RequestLogger(handler).ServeHTTP(rr, req)
	return rr
}

func TestRequestLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	})

	var buf bytes.Buffer
	rr := loggedRequest(t, &buf, next, "/api/crews/")

	assert.Equal(t, http.StatusCreated, rr.Code)

	line := buf.String()
	assert.Contains(t, line, `"msg":"request completed"`)
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"path":"/api/crews/"`)
	assert.Contains(t, line, `"status":201`)
	assert.Contains(t, line, `"bytes":10`)
}

func TestRequestLogger_LinePerRequestAndDefaultStatus(t *testing.T) {
	// A handler that never calls WriteHeader still logs a 200.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	var buf bytes.Buffer
	loggedRequest(t, &buf, next, "/api/flights/")
	loggedRequest(t, &buf, next, "/api/airports/")

	assert.Equal(t, 2, strings.Count(buf.String(), `"msg":"request completed"`))
	assert.Equal(t, 2, strings.Count(buf.String(), `"status":200`))
}
